package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/appcontext"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/entity"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type empresaRequest struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	ColorRGB  string `json:"color_rgb"`
	TextColor string `json:"text_color"`
	URL       string `json:"url"`
}

func validateEmpresa(req empresaRequest) string {
	if req.Name == "" {
		return "El nombre de la empresa es obligatorio"
	}
	return ""
}

func GetEmpresas(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var empresas []entity.Empresa
		if err := ctx.DB.Order("created_at DESC").Find(&empresas).Error; err != nil {
			ctx.Logger.Error("Failed to get empresas", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		var plazasRaw []struct {
			EmpresaID uint
			Count     int64
		}
		if err := ctx.DB.Model(&entity.Trabajo{}).
			Select("empresa_id, COUNT(*) as count").
			Group("empresa_id").
			Scan(&plazasRaw).Error; err != nil {
			ctx.Logger.Error("Failed to count plazas", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		plazas := make(map[uint]int64, len(plazasRaw))
		for _, row := range plazasRaw {
			plazas[row.EmpresaID] = row.Count
		}
		for i := range empresas {
			empresas[i].Plazas = plazas[empresas[i].ID]
		}

		respondOK(c, empresas, "")
	}
}

// SaveEmpresa creates or updates a company; the request updates when it
// carries an id greater than zero and inserts otherwise. Image payloads sent
// as data-URLs are uploaded to the bucket under a fresh UUID.
func SaveEmpresa(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request empresaRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			respondError(c, http.StatusBadRequest, "Datos inválidos")
			return
		}

		if msg := validateEmpresa(request); msg != "" {
			respondError(c, http.StatusBadRequest, msg)
			return
		}

		imageURL := request.ImageURL
		if strings.HasPrefix(imageURL, "data:") {
			data, err := utils.DecodeDataURL(imageURL)
			if err != nil {
				ctx.Logger.Error("Failed to decode image", zap.Error(err))
				respondError(c, http.StatusBadRequest, "Imagen inválida")
				return
			}
			uploaded, err := utils.UploadImage(c.Request.Context(), ctx, "empresas/"+uuid.NewString(), data)
			if err != nil {
				ctx.Logger.Error("Failed to upload image", zap.Error(err))
				respondError(c, http.StatusInternalServerError, err.Error())
				return
			}
			imageURL = uploaded
		}

		empresa := entity.Empresa{
			Name:      request.Name,
			ImageURL:  imageURL,
			ColorRGB:  request.ColorRGB,
			TextColor: request.TextColor,
			URL:       request.URL,
		}

		if isUpdate(request.ID) {
			var existing entity.Empresa
			if err := ctx.DB.First(&existing, request.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					respondError(c, http.StatusNotFound, "Empresa no encontrada")
					return
				}
				ctx.Logger.Error("Failed to fetch empresa", zap.Error(err))
				respondError(c, http.StatusInternalServerError, err.Error())
				return
			}
			if err := ctx.DB.Model(&existing).Updates(map[string]interface{}{
				"name":       empresa.Name,
				"image_url":  empresa.ImageURL,
				"color_rgb":  empresa.ColorRGB,
				"text_color": empresa.TextColor,
				"url":        empresa.URL,
			}).Error; err != nil {
				ctx.Logger.Error("Failed to update empresa", zap.Error(err))
				respondError(c, http.StatusInternalServerError, err.Error())
				return
			}
			respondOK(c, existing, "Empresa actualizada")
			return
		}

		if err := ctx.DB.Create(&empresa).Error; err != nil {
			ctx.Logger.Error("Failed to create empresa", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, empresa, "Empresa creada")
	}
}

func DeleteEmpresa(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			respondError(c, http.StatusForbidden, "Id no proporcionado")
			return
		}

		if err := ctx.DB.Delete(&entity.Empresa{}, "id = ?", id).Error; err != nil {
			ctx.Logger.Error("Failed to delete empresa", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, nil, "Empresa eliminada")
	}
}
