package http

import (
	"time"

	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/appcontext"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/entity"
	"github.com/gin-gonic/gin"
)

// GetStats returns the totals behind the dashboard stat cards, plus how many
// of each resource were published in the current month.
func GetStats(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		currentMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

		var totalEmpresas int64
		ctx.DB.Model(&entity.Empresa{}).Count(&totalEmpresas)

		var totalTrabajos int64
		ctx.DB.Model(&entity.Trabajo{}).Count(&totalTrabajos)

		var totalFormaciones int64
		ctx.DB.Model(&entity.Formacion{}).Count(&totalFormaciones)

		var totalEventos int64
		ctx.DB.Model(&entity.Evento{}).Count(&totalEventos)

		var totalUsuarios int64
		ctx.DB.Model(&entity.Usuario{}).Count(&totalUsuarios)

		var trabajosEsteMes int64
		ctx.DB.Model(&entity.Trabajo{}).Where("created_at >= ?", currentMonthStart).Count(&trabajosEsteMes)

		var formacionesEsteMes int64
		ctx.DB.Model(&entity.Formacion{}).Where("created_at >= ?", currentMonthStart).Count(&formacionesEsteMes)

		var eventosEsteMes int64
		ctx.DB.Model(&entity.Evento{}).Where("created_at >= ?", currentMonthStart).Count(&eventosEsteMes)

		respondOK(c, gin.H{
			"totalEmpresas":      totalEmpresas,
			"totalTrabajos":      totalTrabajos,
			"totalFormaciones":   totalFormaciones,
			"totalEventos":       totalEventos,
			"totalUsuarios":      totalUsuarios,
			"trabajosEsteMes":    trabajosEsteMes,
			"formacionesEsteMes": formacionesEsteMes,
			"eventosEsteMes":     eventosEsteMes,
		}, "")
	}
}
