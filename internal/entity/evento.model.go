package entity

import (
	"time"
)

// Evento is a calendar entry shown to the whole community.
type Evento struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	Fecha     time.Time `gorm:"not null" json:"fecha"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
