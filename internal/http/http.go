package http

import (
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/appcontext"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/http/middleware"
	"github.com/gin-gonic/gin"
)

type APIService struct {
	engine  *gin.Engine
	context *appcontext.Context
}

func NewHTTPService(ctx *appcontext.Context) *APIService {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORSMiddleware())

	service := &APIService{
		engine:  engine,
		context: ctx,
	}
	service.setupRoutes()
	return service
}

func (h *APIService) Engine() *gin.Engine {
	return h.engine
}

func (h *APIService) setupRoutes() {
	v1 := h.engine.Group("/api/v1")
	h.setupAuthRoutes(v1)
	h.setupEmpresaRoutes(v1)
	h.setupTrabajoRoutes(v1)
	h.setupFormacionRoutes(v1)
	h.setupEventoRoutes(v1)
	h.setupUserRoutes(v1)
	h.setupNotificationRoutes(v1)
	h.setupSearchRoutes(v1)
	h.setupStatsRoutes(v1)

	v1.POST("/contact", SendContactMessage(h.context))
}

func (h *APIService) setupAuthRoutes(group *gin.RouterGroup) {
	auth := group.Group("/auth")

	auth.POST("/register", Register(h.context))
	auth.POST("/login", Login(h.context))
	auth.POST("/logout", Logout(h.context))
	auth.POST("/forgot-password", ForgotPassword(h.context))
	auth.GET("/me", middleware.JWTAuthMiddleware(), GetUserInfo(h.context))
	auth.POST("/change-password", middleware.JWTAuthMiddleware(), ChangePassword(h.context))
}

func (h *APIService) setupEmpresaRoutes(group *gin.RouterGroup) {
	empresas := group.Group("/empresas")

	empresas.GET("/", GetEmpresas(h.context))
	empresas.POST("/", middleware.JWTAuthMiddleware(), middleware.AdminMiddleware(h.context), SaveEmpresa(h.context))
	empresas.DELETE("/", middleware.JWTAuthMiddleware(), middleware.AdminMiddleware(h.context), DeleteEmpresa(h.context))
}

func (h *APIService) setupTrabajoRoutes(group *gin.RouterGroup) {
	trabajos := group.Group("/trabajos")

	trabajos.GET("/", GetTrabajos(h.context))
	trabajos.GET("/:id", GetTrabajoByID(h.context))
	trabajos.POST("/", middleware.JWTAuthMiddleware(), middleware.AdminMiddleware(h.context), SaveTrabajo(h.context))
	trabajos.DELETE("/", middleware.JWTAuthMiddleware(), middleware.AdminMiddleware(h.context), DeleteTrabajo(h.context))
}

func (h *APIService) setupFormacionRoutes(group *gin.RouterGroup) {
	formaciones := group.Group("/formaciones")

	formaciones.GET("/", GetFormaciones(h.context))
	formaciones.POST("/", middleware.JWTAuthMiddleware(), middleware.AdminMiddleware(h.context), SaveFormacion(h.context))
	formaciones.DELETE("/", middleware.JWTAuthMiddleware(), middleware.AdminMiddleware(h.context), DeleteFormacion(h.context))

	group.GET("/tipos-formaciones", GetTiposFormaciones(h.context))
	group.GET("/titulaciones", GetTitulaciones(h.context))
}

func (h *APIService) setupEventoRoutes(group *gin.RouterGroup) {
	eventos := group.Group("/eventos")

	eventos.GET("/", GetEventos(h.context))
	eventos.POST("/", middleware.JWTAuthMiddleware(), middleware.AdminMiddleware(h.context), SaveEvento(h.context))
	eventos.DELETE("/", middleware.JWTAuthMiddleware(), middleware.AdminMiddleware(h.context), DeleteEvento(h.context))
}

func (h *APIService) setupUserRoutes(group *gin.RouterGroup) {
	group.GET("/users", middleware.JWTAuthMiddleware(), GetUsers(h.context))
	group.PUT("/profile", middleware.JWTAuthMiddleware(), UpdateProfile(h.context))
}

func (h *APIService) setupNotificationRoutes(group *gin.RouterGroup) {
	notifs := group.Group("/notifications")
	notifs.Use(middleware.JWTAuthMiddleware())

	notifs.GET("/", GetNotifications(h.context))
	notifs.PUT("/:id/read", MarkNotificationRead(h.context))
}

func (h *APIService) setupSearchRoutes(group *gin.RouterGroup) {
	group.GET("/search", SearchOfertas(h.context))
}

func (h *APIService) setupStatsRoutes(group *gin.RouterGroup) {
	group.GET("/stats", GetStats(h.context))
}
