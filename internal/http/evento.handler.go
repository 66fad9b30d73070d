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

type eventoRequest struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Fecha string `json:"fecha"`
}

func validateEvento(req eventoRequest) string {
	switch {
	case req.Name == "":
		return "El nombre del evento es obligatorio"
	case req.Fecha == "":
		return "La fecha del evento es obligatoria"
	}
	return ""
}

func GetEventos(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var eventos []entity.Evento
		if err := ctx.DB.Order("fecha").Find(&eventos).Error; err != nil {
			ctx.Logger.Error("Failed to get eventos", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, eventos, "")
	}
}

func SaveEvento(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request eventoRequest
		if err := c.BindJSON(&request); err != nil {
			ctx.Logger.Error("Failed to bind request", zap.Error(err))
			respondError(c, http.StatusBadRequest, "Datos inválidos")
			return
		}

		if msg := validateEvento(request); msg != "" {
			respondError(c, http.StatusBadRequest, msg)
			return
		}

		fecha, err := utils.ParseISODatetime(request.Fecha)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Fecha inválida")
			return
		}

		if isUpdate(request.ID) {
			var existing entity.Evento
			if err := ctx.DB.First(&existing, request.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					respondError(c, http.StatusNotFound, "Evento no encontrado")
					return
				}
				ctx.Logger.Error("Failed to fetch evento", zap.Error(err))
				respondError(c, http.StatusInternalServerError, err.Error())
				return
			}
			if err := ctx.DB.Model(&existing).Updates(map[string]interface{}{
				"name":  request.Name,
				"fecha": fecha,
			}).Error; err != nil {
				ctx.Logger.Error("Failed to update evento", zap.Error(err))
				respondError(c, http.StatusInternalServerError, err.Error())
				return
			}
			respondOK(c, existing, "Evento actualizado")
			return
		}

		evento := entity.Evento{
			Name:  request.Name,
			Fecha: fecha,
		}
		if err := ctx.DB.Create(&evento).Error; err != nil {
			ctx.Logger.Error("Failed to create evento", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		notif := entity.Notificacion{
			Content: fmt.Sprintf("Nuevo evento: %s (%s)", evento.Name, utils.DateToFormat(evento.Fecha)),
			Tipo:    entity.NotificacionEvento,
		}
		if err := ctx.DB.Create(&notif).Error; err != nil {
			ctx.Logger.Error("Failed to create notification", zap.Error(err))
		}

		respondOK(c, evento, "Evento creado")
	}
}

func DeleteEvento(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			respondError(c, http.StatusForbidden, "Id no proporcionado")
			return
		}

		if err := ctx.DB.Delete(&entity.Evento{}, "id = ?", id).Error; err != nil {
			ctx.Logger.Error("Failed to delete evento", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, nil, "Evento eliminado")
	}
}
