package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/appcontext"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/entity"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/notifications"
	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTracker(ctx *appcontext.Context) *notifications.Tracker {
	return notifications.NewTracker(notifications.NewRedisStore(ctx.RedisClient))
}

// GetNotifications returns the announcements of the last three months, newest
// first, each annotated with the caller's read state, plus the unread count.
func GetNotifications(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		dni, err := utils.GetDNIFromClaims(c)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "No autenticado")
			return
		}

		now := time.Now()
		since := now.AddDate(0, -3, 0)

		var notifs []entity.Notificacion
		if err := ctx.DB.Where("created_at >= ?", since).Order("created_at DESC").Find(&notifs).Error; err != nil {
			ctx.Logger.Error("Failed to get notifications", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		items, unread, err := newTracker(ctx).Status(c.Request.Context(), dni, notifs, now)
		if err != nil {
			ctx.Logger.Error("Failed to compute notification read state", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, gin.H{
			"notifications": items,
			"unreadCount":   unread,
		}, "")
	}
}

func MarkNotificationRead(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		dni, err := utils.GetDNIFromClaims(c)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "No autenticado")
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Id de notificación inválido")
			return
		}

		if err := newTracker(ctx).MarkRead(c.Request.Context(), dni, uint(id)); err != nil {
			ctx.Logger.Error("Failed to mark notification as read", zap.Error(err))
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		respondOK(c, nil, "Notificación marcada como leída")
	}
}
