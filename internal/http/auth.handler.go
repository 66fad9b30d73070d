package http

import (
	"errors"
	"net/http"

	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/appcontext"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/entity"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/services"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type registerRequest struct {
	DNI          string `json:"dni"`
	Nombres      string `json:"names"`
	Apellidos    string `json:"last_names"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	TitulacionID uint   `json:"degree_id"`
}

func validateRegister(req registerRequest) string {
	switch {
	case req.DNI == "":
		return "El DNI es obligatorio"
	case req.Nombres == "":
		return "Los nombres son obligatorios"
	case req.Apellidos == "":
		return "Los apellidos son obligatorios"
	case req.Email == "":
		return "El correo es obligatorio"
	case req.Password == "":
		return "La contraseña es obligatoria"
	case req.TitulacionID == 0:
		return "La titulación es obligatoria"
	}
	return ""
}

func Register(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request registerRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			respondError(c, http.StatusBadRequest, "Datos inválidos")
			return
		}

		if msg := validateRegister(request); msg != "" {
			respondError(c, http.StatusBadRequest, msg)
			return
		}

		var existing entity.Usuario
		err := ctx.DB.Where("dni = ? OR email = ?", request.DNI, request.Email).First(&existing).Error
		if err == nil {
			respondError(c, http.StatusBadRequest, "El DNI o correo ya está registrado")
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.Logger.Error("Failed to check existing user", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		hash, err := utils.HashPassword(request.Password)
		if err != nil {
			ctx.Logger.Error("Failed to hash password", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		titulacionID := request.TitulacionID
		user := entity.Usuario{
			DNI:          request.DNI,
			Nombres:      request.Nombres,
			Apellidos:    request.Apellidos,
			Email:        request.Email,
			TitulacionID: &titulacionID,
			PasswordHash: hash,
		}

		if err := ctx.DB.Create(&user).Error; err != nil {
			ctx.Logger.Error("Failed to create user", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, user, "Registro completado")
	}
}

func Login(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type loginRequest struct {
			DNI      string `json:"dni"`
			Password string `json:"password"`
		}

		var request loginRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			respondError(c, http.StatusBadRequest, "Datos inválidos")
			return
		}

		if request.DNI == "" || request.Password == "" {
			respondError(c, http.StatusBadRequest, "El DNI y la contraseña son obligatorios")
			return
		}

		var user entity.Usuario
		if err := ctx.DB.Preload("Titulacion").First(&user, "dni = ?", request.DNI).Error; err != nil {
			respondError(c, http.StatusUnauthorized, "Credenciales inválidas")
			return
		}

		if !utils.CheckPassword(user.PasswordHash, request.Password) {
			respondError(c, http.StatusUnauthorized, "Credenciales inválidas")
			return
		}

		tokenString, err := utils.GenerateJWT(user.DNI, user.EsAdmin)
		if err != nil {
			ctx.Logger.Error("Failed to generate JWT token", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		c.SetCookie("token", tokenString, 24*60*60, "/", "", false, true)
		respondOK(c, gin.H{"token": tokenString, "user": user}, "Inicio de sesión exitoso")
	}
}

func Logout(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("token", "", -1, "/", "", false, true)
		respondOK(c, nil, "Sesión cerrada")
	}
}

func GetUserInfo(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		dni, err := utils.GetDNIFromClaims(c)
		if err != nil {
			ctx.Logger.Error("Failed to get DNI from claims", zap.Error(err))
			respondError(c, http.StatusUnauthorized, "No autenticado")
			return
		}

		var user entity.Usuario
		if err := ctx.DB.Preload("Titulacion").First(&user, "dni = ?", dni).Error; err != nil {
			ctx.Logger.Error("Failed to find user", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, user, "")
	}
}

func ChangePassword(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type changePasswordRequest struct {
			OldPassword string `json:"old_password"`
			NewPassword string `json:"new_password"`
		}

		var request changePasswordRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			respondError(c, http.StatusBadRequest, "Datos inválidos")
			return
		}

		if request.OldPassword == "" || request.NewPassword == "" {
			respondError(c, http.StatusBadRequest, "La contraseña actual y la nueva son obligatorias")
			return
		}

		dni, err := utils.GetDNIFromClaims(c)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "No autenticado")
			return
		}

		var user entity.Usuario
		if err := ctx.DB.First(&user, "dni = ?", dni).Error; err != nil {
			ctx.Logger.Error("Failed to find user", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		if !utils.CheckPassword(user.PasswordHash, request.OldPassword) {
			respondError(c, http.StatusUnauthorized, "La contraseña actual no es correcta")
			return
		}

		hash, err := utils.HashPassword(request.NewPassword)
		if err != nil {
			ctx.Logger.Error("Failed to hash password", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		updates := map[string]interface{}{
			"password_hash":         hash,
			"debe_cambiar_password": false,
		}
		if err := ctx.DB.Model(&user).Updates(updates).Error; err != nil {
			ctx.Logger.Error("Failed to update password", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, nil, "Contraseña actualizada")
	}
}

func ForgotPassword(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type forgotPasswordRequest struct {
			DNI   string `json:"dni"`
			Email string `json:"email"`
		}

		var request forgotPasswordRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			respondError(c, http.StatusBadRequest, "Datos inválidos")
			return
		}

		if request.DNI == "" && request.Email == "" {
			respondError(c, http.StatusBadRequest, "El DNI o el correo son obligatorios")
			return
		}

		var user entity.Usuario
		query := ctx.DB
		if request.DNI != "" {
			query = query.Where("dni = ?", request.DNI)
		} else {
			query = query.Where("email = ?", request.Email)
		}
		if err := query.First(&user).Error; err != nil {
			respondError(c, http.StatusBadRequest, "Usuario no encontrado")
			return
		}

		tempPassword, err := utils.GenerateTempPassword()
		if err != nil {
			ctx.Logger.Error("Failed to generate temporary password", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		hash, err := utils.HashPassword(tempPassword)
		if err != nil {
			ctx.Logger.Error("Failed to hash password", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		updates := map[string]interface{}{
			"password_hash":         hash,
			"debe_cambiar_password": true,
		}
		if err := ctx.DB.Model(&user).Updates(updates).Error; err != nil {
			ctx.Logger.Error("Failed to store temporary password", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		if err := services.SendTempPasswordEmail(user.Email, user.Nombres, tempPassword, ctx.FrontendURL+"/login"); err != nil {
			ctx.Logger.Error("Failed to send temporary password email", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, nil, "Se ha enviado una contraseña temporal al correo registrado")
	}
}
