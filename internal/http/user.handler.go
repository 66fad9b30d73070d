package http

import (
	"net/http"
	"strconv"

	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/appcontext"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/entity"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetUsers lists graduate profiles, paginated, optionally filtered by DNI.
func GetUsers(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
		if err != nil || pageSize < 1 || pageSize > 100 {
			pageSize = 10
		}

		dni := c.Query("dni")

		countQuery := ctx.DB.Model(&entity.Usuario{})
		if dni != "" {
			countQuery = countQuery.Where("dni = ?", dni)
		}

		var total int64
		if err := countQuery.Count(&total).Error; err != nil {
			ctx.Logger.Error("Failed to count users", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		listQuery := ctx.DB.Preload("Titulacion")
		if dni != "" {
			listQuery = listQuery.Where("dni = ?", dni)
		}

		var users []entity.Usuario
		if err := listQuery.
			Order("apellidos, nombres").
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&users).Error; err != nil {
			ctx.Logger.Error("Failed to get users", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, gin.H{
			"users":     users,
			"total":     total,
			"page":      page,
			"page_size": pageSize,
		}, "")
	}
}

// UpdateProfile updates the authenticated user's own row. An avatar sent as a
// data-URL is stored in the bucket under the DNI, replacing any previous one.
func UpdateProfile(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		type profileRequest struct {
			Nombres         string `json:"names"`
			Apellidos       string `json:"last_names"`
			Telefono        string `json:"phone"`
			Direccion       string `json:"address"`
			FechaNacimiento string `json:"birthdate"`
			TitulacionID    uint   `json:"degree_id"`
			Avatar          string `json:"avatar"`
		}

		var request profileRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			respondError(c, http.StatusBadRequest, "Datos inválidos")
			return
		}

		if request.Nombres == "" || request.Apellidos == "" {
			respondError(c, http.StatusBadRequest, "Los nombres y apellidos son obligatorios")
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

		updates := map[string]interface{}{
			"nombres":   request.Nombres,
			"apellidos": request.Apellidos,
			"telefono":  request.Telefono,
			"direccion": request.Direccion,
		}

		if request.TitulacionID > 0 {
			updates["titulacion_id"] = request.TitulacionID
		}

		if request.FechaNacimiento != "" {
			fecha, err := utils.ParseISODatetime(request.FechaNacimiento)
			if err != nil {
				respondError(c, http.StatusBadRequest, "Fecha de nacimiento inválida")
				return
			}
			updates["fecha_nacimiento"] = fecha
		}

		if request.Avatar != "" {
			data, err := utils.DecodeDataURL(request.Avatar)
			if err != nil {
				ctx.Logger.Error("Failed to decode avatar", zap.Error(err))
				respondError(c, http.StatusBadRequest, "Imagen inválida")
				return
			}
			avatarURL, err := utils.UploadImage(c.Request.Context(), ctx, "avatars/"+dni, data)
			if err != nil {
				ctx.Logger.Error("Failed to upload avatar", zap.Error(err))
				respondError(c, http.StatusInternalServerError, err.Error())
				return
			}
			updates["avatar_url"] = avatarURL
		}

		if err := ctx.DB.Model(&user).Updates(updates).Error; err != nil {
			ctx.Logger.Error("Failed to update profile", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, user, "Perfil actualizado")
	}
}
