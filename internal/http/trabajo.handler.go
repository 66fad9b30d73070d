package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/appcontext"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/entity"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type trabajoRequest struct {
	ID                 int64   `json:"id"`
	Puesto             string  `json:"puesto"`
	TitulacionID       uint    `json:"degree_id"`
	EmpresaID          uint    `json:"empresa_id"`
	Salario            float64 `json:"salario"`
	Ubicacion          string  `json:"ubicacion"`
	TipoOferta         string  `json:"tipo_oferta"`
	Jornada            string  `json:"jornada"`
	Contrato           string  `json:"contrato"`
	ExperienciaLaboral string  `json:"experiencia_laboral"`
	Idiomas            string  `json:"idiomas"`
	Description        string  `json:"description"`
}

func validateTrabajo(req trabajoRequest) string {
	switch {
	case req.Puesto == "":
		return "El puesto es obligatorio"
	case req.TitulacionID == 0:
		return "La titulación es obligatoria"
	case req.EmpresaID == 0:
		return "La empresa es obligatoria"
	}
	return ""
}

func GetTrabajos(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var trabajos []entity.Trabajo
		if err := ctx.DB.Preload("Titulacion").Preload("Empresa").Order("created_at DESC").Find(&trabajos).Error; err != nil {
			ctx.Logger.Error("Failed to get trabajos", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, trabajos, "")
	}
}

func GetTrabajoByID(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var trabajo entity.Trabajo
		err := ctx.DB.Preload("Titulacion").Preload("Empresa").First(&trabajo, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondError(c, http.StatusNotFound, "Trabajo no encontrado")
				return
			}
			ctx.Logger.Error("Failed to get trabajo", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, trabajo, "")
	}
}

func SaveTrabajo(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request trabajoRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			respondError(c, http.StatusBadRequest, "Datos inválidos")
			return
		}

		if msg := validateTrabajo(request); msg != "" {
			respondError(c, http.StatusBadRequest, msg)
			return
		}

		trabajo := entity.Trabajo{
			Puesto:             request.Puesto,
			TitulacionID:       request.TitulacionID,
			EmpresaID:          request.EmpresaID,
			Salario:            request.Salario,
			Ubicacion:          request.Ubicacion,
			TipoOferta:         request.TipoOferta,
			Jornada:            request.Jornada,
			Contrato:           request.Contrato,
			ExperienciaLaboral: request.ExperienciaLaboral,
			Idiomas:            request.Idiomas,
			Description:        request.Description,
		}

		if isUpdate(request.ID) {
			var existing entity.Trabajo
			if err := ctx.DB.First(&existing, request.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					respondError(c, http.StatusNotFound, "Trabajo no encontrado")
					return
				}
				ctx.Logger.Error("Failed to fetch trabajo", zap.Error(err))
				respondError(c, http.StatusInternalServerError, err.Error())
				return
			}
			if err := ctx.DB.Model(&existing).Updates(map[string]interface{}{
				"puesto":              trabajo.Puesto,
				"titulacion_id":       trabajo.TitulacionID,
				"empresa_id":          trabajo.EmpresaID,
				"salario":             trabajo.Salario,
				"ubicacion":           trabajo.Ubicacion,
				"tipo_oferta":         trabajo.TipoOferta,
				"jornada":             trabajo.Jornada,
				"contrato":            trabajo.Contrato,
				"experiencia_laboral": trabajo.ExperienciaLaboral,
				"idiomas":             trabajo.Idiomas,
				"description":         trabajo.Description,
			}).Error; err != nil {
				ctx.Logger.Error("Failed to update trabajo", zap.Error(err))
				respondError(c, http.StatusInternalServerError, err.Error())
				return
			}
			syncTrabajoIndex(ctx, existing.ID)
			respondOK(c, existing, "Trabajo actualizado")
			return
		}

		if err := ctx.DB.Create(&trabajo).Error; err != nil {
			ctx.Logger.Error("Failed to create trabajo", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		notif := entity.Notificacion{
			Content: fmt.Sprintf("Nueva oferta de trabajo: %s", trabajo.Puesto),
			Tipo:    entity.NotificacionTrabajo,
		}
		if err := ctx.DB.Create(&notif).Error; err != nil {
			ctx.Logger.Error("Failed to create notification", zap.Error(err))
		}

		syncTrabajoIndex(ctx, trabajo.ID)
		respondOK(c, trabajo, "Trabajo creado")
	}
}

// syncTrabajoIndex refreshes the search document for the job, reloading the
// row so the company name is present. Index failures are logged, not fatal.
func syncTrabajoIndex(ctx *appcontext.Context, id uint) {
	var trabajo entity.Trabajo
	if err := ctx.DB.Preload("Empresa").First(&trabajo, id).Error; err != nil {
		ctx.Logger.Error("Failed to load trabajo for indexing", zap.Error(err))
		return
	}
	if err := utils.IndexDocument(ctx, utils.TrabajoToDocument(&trabajo)); err != nil {
		ctx.Logger.Error("Failed to index trabajo", zap.Error(err))
	}
}

func DeleteTrabajo(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			respondError(c, http.StatusForbidden, "Id no proporcionado")
			return
		}

		if err := ctx.DB.Delete(&entity.Trabajo{}, "id = ?", id).Error; err != nil {
			ctx.Logger.Error("Failed to delete trabajo", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		if err := utils.RemoveDocument(ctx, "trabajo-"+id); err != nil {
			ctx.Logger.Error("Failed to remove trabajo from index", zap.Error(err))
		}

		respondOK(c, nil, "Trabajo eliminado")
	}
}
