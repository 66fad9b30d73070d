package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/appcontext"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/entity"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type formacionRequest struct {
	ID           int64  `json:"id"`
	TitulacionID uint   `json:"degree_id"`
	TipoID       uint   `json:"id_tipo"`
	Name         string `json:"name"`
	Descripcion  string `json:"descripcion"`
	Modalidad    string `json:"modalidad"`
	Lugar        string `json:"lugar"`
	Capacidad    int    `json:"capacidad"`
	Duracion     string `json:"duracion"`
	Fecha        string `json:"fecha"`
	Institucion  string `json:"institucion"`
	Facultad     string `json:"facultad"`
	Instructor   string `json:"instructor"`
	URL          string `json:"url"`
}

func validateFormacion(req formacionRequest) string {
	switch {
	case req.Name == "":
		return "El nombre de la formación es obligatorio"
	case req.TitulacionID == 0:
		return "La titulación es obligatoria"
	case req.TipoID == 0:
		return "El tipo de formación es obligatorio"
	}
	return ""
}

func GetFormaciones(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var formaciones []entity.Formacion
		if err := ctx.DB.Preload("Titulacion").Preload("Tipo").Order("created_at DESC").Find(&formaciones).Error; err != nil {
			ctx.Logger.Error("Failed to get formaciones", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, formaciones, "")
	}
}

func GetTiposFormaciones(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tipos []entity.TipoFormacion
		if err := ctx.DB.Order("id").Find(&tipos).Error; err != nil {
			ctx.Logger.Error("Failed to get tipos de formación", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, tipos, "")
	}
}

func GetTitulaciones(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var titulaciones []entity.Titulacion
		if err := ctx.DB.Where("disabled = ?", false).Order("name").Find(&titulaciones).Error; err != nil {
			ctx.Logger.Error("Failed to get titulaciones", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, titulaciones, "")
	}
}

func SaveFormacion(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request formacionRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			respondError(c, http.StatusBadRequest, "Datos inválidos")
			return
		}

		if msg := validateFormacion(request); msg != "" {
			respondError(c, http.StatusBadRequest, msg)
			return
		}

		var fecha *time.Time
		if request.Fecha != "" {
			parsed, err := utils.ParseISODatetime(request.Fecha)
			if err != nil {
				respondError(c, http.StatusBadRequest, "Fecha inválida")
				return
			}
			fecha = &parsed
		}

		formacion := entity.Formacion{
			TitulacionID: request.TitulacionID,
			TipoID:       request.TipoID,
			Name:         request.Name,
			Descripcion:  request.Descripcion,
			Modalidad:    request.Modalidad,
			Lugar:        request.Lugar,
			Capacidad:    request.Capacidad,
			Duracion:     request.Duracion,
			Fecha:        fecha,
			Institucion:  request.Institucion,
			Facultad:     request.Facultad,
			Instructor:   request.Instructor,
			URL:          request.URL,
		}

		if isUpdate(request.ID) {
			var existing entity.Formacion
			if err := ctx.DB.First(&existing, request.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					respondError(c, http.StatusNotFound, "Formación no encontrada")
					return
				}
				ctx.Logger.Error("Failed to fetch formacion", zap.Error(err))
				respondError(c, http.StatusInternalServerError, err.Error())
				return
			}
			if err := ctx.DB.Model(&existing).Updates(map[string]interface{}{
				"titulacion_id": formacion.TitulacionID,
				"id_tipo":       formacion.TipoID,
				"name":          formacion.Name,
				"descripcion":   formacion.Descripcion,
				"modalidad":     formacion.Modalidad,
				"lugar":         formacion.Lugar,
				"capacidad":     formacion.Capacidad,
				"duracion":      formacion.Duracion,
				"fecha":         formacion.Fecha,
				"institucion":   formacion.Institucion,
				"facultad":      formacion.Facultad,
				"instructor":    formacion.Instructor,
				"url":           formacion.URL,
			}).Error; err != nil {
				ctx.Logger.Error("Failed to update formacion", zap.Error(err))
				respondError(c, http.StatusInternalServerError, err.Error())
				return
			}
			formacion.ID = existing.ID
			if err := utils.IndexDocument(ctx, utils.FormacionToDocument(&formacion)); err != nil {
				ctx.Logger.Error("Failed to index formacion", zap.Error(err))
			}
			respondOK(c, existing, "Formación actualizada")
			return
		}

		if err := ctx.DB.Create(&formacion).Error; err != nil {
			ctx.Logger.Error("Failed to create formacion", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		notif := entity.Notificacion{
			Content: fmt.Sprintf("Nueva formación disponible: %s", formacion.Name),
			Tipo:    entity.NotificacionFormacion,
		}
		if err := ctx.DB.Create(&notif).Error; err != nil {
			ctx.Logger.Error("Failed to create notification", zap.Error(err))
		}

		if err := utils.IndexDocument(ctx, utils.FormacionToDocument(&formacion)); err != nil {
			ctx.Logger.Error("Failed to index formacion", zap.Error(err))
		}

		respondOK(c, formacion, "Formación creada")
	}
}

func DeleteFormacion(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			respondError(c, http.StatusForbidden, "Id no proporcionado")
			return
		}

		if err := ctx.DB.Delete(&entity.Formacion{}, "id = ?", id).Error; err != nil {
			ctx.Logger.Error("Failed to delete formacion", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		if err := utils.RemoveDocument(ctx, "formacion-"+id); err != nil {
			ctx.Logger.Error("Failed to remove formacion from index", zap.Error(err))
		}

		respondOK(c, nil, "Formación eliminada")
	}
}
