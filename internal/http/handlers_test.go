package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/appcontext"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/entity"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func testContext() *appcontext.Context {
	return &appcontext.Context{Logger: zap.NewNop()}
}

// testDBContext returns a context backed by a throwaway sqlite database, so
// handlers can be exercised past their validation layer.
func testDBContext(t *testing.T) *appcontext.Context {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "alumni.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Titulacion{},
		&entity.Empresa{},
		&entity.Usuario{},
		&entity.Trabajo{},
		&entity.Notificacion{},
	))

	return &appcontext.Context{DB: db, Logger: zap.NewNop()}
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestDeleteWithoutIDReturns403(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := testContext()

	tests := []struct {
		name    string
		path    string
		handler gin.HandlerFunc
	}{
		{name: "empresas", path: "/empresas", handler: DeleteEmpresa(ctx)},
		{name: "trabajos", path: "/trabajos", handler: DeleteTrabajo(ctx)},
		{name: "formaciones", path: "/formaciones", handler: DeleteFormacion(ctx)},
		{name: "eventos", path: "/eventos", handler: DeleteEvento(ctx)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.DELETE(tt.path, tt.handler)

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
			env := decodeEnvelope(t, w)
			assert.False(t, env.IsSuccess)
			assert.NotEmpty(t, env.Message)
		})
	}
}

func TestSaveRejectsMissingRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := testContext()

	tests := []struct {
		name    string
		path    string
		handler gin.HandlerFunc
		body    string
	}{
		{name: "empresa without name", path: "/empresas", handler: SaveEmpresa(ctx), body: `{"color_rgb":"10,20,30"}`},
		{name: "trabajo without puesto", path: "/trabajos", handler: SaveTrabajo(ctx), body: `{"degree_id":1,"empresa_id":2}`},
		{name: "trabajo without empresa", path: "/trabajos", handler: SaveTrabajo(ctx), body: `{"puesto":"Docente","degree_id":1}`},
		{name: "formacion without tipo", path: "/formaciones", handler: SaveFormacion(ctx), body: `{"name":"Curso","degree_id":1}`},
		{name: "evento without fecha", path: "/eventos", handler: SaveEvento(ctx), body: `{"name":"Feria"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST(tt.path, tt.handler)

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			env := decodeEnvelope(t, w)
			assert.False(t, env.IsSuccess)
			assert.NotEmpty(t, env.Message)
		})
	}
}

func TestSaveEventoRejectsMalformedFecha(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/eventos", SaveEvento(testContext()))

	req := httptest.NewRequest(http.MethodPost, "/eventos", strings.NewReader(`{"name":"Feria","fecha":"05/03/2024"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decodeEnvelope(t, w).IsSuccess)
}

func TestLoginRequiresCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing both", body: `{}`},
		{name: "missing password", body: `{"dni":"0801199901234"}`},
		{name: "missing dni", body: `{"password":"secreto"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/login", Login(testContext()))

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			env := decodeEnvelope(t, w)
			assert.False(t, env.IsSuccess)
			assert.Nil(t, env.Data)
		})
	}
}

func TestForgotPasswordRequiresIdentifier(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/forgot-password", ForgotPassword(testContext()))

	req := httptest.NewRequest(http.MethodPost, "/forgot-password", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decodeEnvelope(t, w).IsSuccess)
}

func TestSearchRequiresQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/search", SearchOfertas(testContext()))

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decodeEnvelope(t, w).IsSuccess)
}

func TestMarkNotificationReadRejectsBadID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/notifications/:id/read", func(c *gin.Context) {
		c.Set("claims", &utils.Claims{DNI: "0801199901234"})
	}, MarkNotificationRead(testContext()))

	req := httptest.NewRequest(http.MethodPut, "/notifications/abc/read", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decodeEnvelope(t, w).IsSuccess)
}

func TestNotificationEndpointsRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/notifications", GetNotifications(testContext()))

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := testDBContext(t)

	hash, err := utils.HashPassword("correcta123")
	require.NoError(t, err)
	require.NoError(t, ctx.DB.Create(&entity.Usuario{
		DNI:          "0801199901234",
		Nombres:      "Ana",
		Apellidos:    "Mejía",
		Email:        "ana@example.com",
		PasswordHash: hash,
	}).Error)

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown dni", body: `{"dni":"0801200005678","password":"correcta123"}`},
		{name: "wrong password", body: `{"dni":"0801199901234","password":"incorrecta"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/login", Login(ctx))

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			env := decodeEnvelope(t, w)
			assert.False(t, env.IsSuccess)
			assert.Equal(t, "Credenciales inválidas", env.Message)
			assert.Nil(t, env.Data)
		})
	}
}

func TestLoginWithValidCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "clave-de-prueba")
	ctx := testDBContext(t)

	hash, err := utils.HashPassword("correcta123")
	require.NoError(t, err)
	require.NoError(t, ctx.DB.Create(&entity.Usuario{
		DNI:          "0801199901234",
		Nombres:      "Ana",
		Apellidos:    "Mejía",
		Email:        "ana@example.com",
		PasswordHash: hash,
	}).Error)

	r := gin.New()
	r.POST("/login", Login(ctx))

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"dni":"0801199901234","password":"correcta123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.IsSuccess)

	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])
	user, ok := data["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "0801199901234", user["dni"])
	assert.NotContains(t, user, "password_hash")
}

func TestGetTrabajoByID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := testDBContext(t)

	require.NoError(t, ctx.DB.Create(&entity.Titulacion{Name: "Matemáticas"}).Error)
	require.NoError(t, ctx.DB.Create(&entity.Empresa{Name: "Instituto Central"}).Error)
	require.NoError(t, ctx.DB.Create(&entity.Trabajo{
		Puesto:       "Docente de Matemáticas",
		TitulacionID: 1,
		EmpresaID:    1,
	}).Error)

	r := gin.New()
	r.GET("/trabajos/:id", GetTrabajoByID(ctx))

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/trabajos/9999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w)
		assert.False(t, env.IsSuccess)
		assert.Equal(t, "Trabajo no encontrado", env.Message)
	})

	t.Run("existing id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/trabajos/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		assert.True(t, env.IsSuccess)
		trabajo, ok := env.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Docente de Matemáticas", trabajo["puesto"])
		assert.Equal(t, "Instituto Central", trabajo["empresa"].(map[string]interface{})["name"])
	})
}

func TestSaveTrabajoInsertAndUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := testDBContext(t)

	require.NoError(t, ctx.DB.Create(&entity.Titulacion{Name: "Matemáticas"}).Error)
	require.NoError(t, ctx.DB.Create(&entity.Empresa{Name: "Instituto Central"}).Error)

	r := gin.New()
	r.POST("/trabajos", SaveTrabajo(ctx))

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/trabajos", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	count := func() int64 {
		var n int64
		require.NoError(t, ctx.DB.Model(&entity.Trabajo{}).Count(&n).Error)
		return n
	}

	// A negative id means insert, same as an omitted one.
	w := post(`{"id":-1,"puesto":"Docente de Matemáticas","degree_id":1,"empresa_id":1}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Trabajo creado", decodeEnvelope(t, w).Message)
	assert.Equal(t, int64(1), count())

	var notifs int64
	require.NoError(t, ctx.DB.Model(&entity.Notificacion{}).Where("tipo = ?", entity.NotificacionTrabajo).Count(&notifs).Error)
	assert.Equal(t, int64(1), notifs)

	var created entity.Trabajo
	require.NoError(t, ctx.DB.First(&created).Error)

	// A positive id updates the existing row in place.
	w = post(fmt.Sprintf(`{"id":%d,"puesto":"Coordinador Académico","degree_id":1,"empresa_id":1}`, created.ID))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Trabajo actualizado", decodeEnvelope(t, w).Message)
	assert.Equal(t, int64(1), count())

	var updated entity.Trabajo
	require.NoError(t, ctx.DB.First(&updated, created.ID).Error)
	assert.Equal(t, "Coordinador Académico", updated.Puesto)

	// Updating a row that does not exist fails instead of inserting.
	w = post(`{"id":9999,"puesto":"Docente","degree_id":1,"empresa_id":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1), count())

	// An omitted id inserts a fresh row.
	w = post(`{"puesto":"Docente de Física","degree_id":1,"empresa_id":1}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), count())
}
