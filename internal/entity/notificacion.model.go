package entity

import (
	"time"
)

// Notification types, one per resource that announces itself when published.
const (
	NotificacionTrabajo   = "job"
	NotificacionFormacion = "formation"
	NotificacionEvento    = "event"
)

// Notificacion is a broadcast announcement created when a job, training or
// event is published. Read state is tracked per user, not on the row.
type Notificacion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Tipo      string    `gorm:"type:varchar(20);not null" json:"type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notificacion) TableName() string {
	return "notificaciones"
}
