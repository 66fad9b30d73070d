package entity

import (
	"time"
)

// Usuario is a graduate profile. The DNI is the natural key used across the
// whole platform, including auth.
type Usuario struct {
	DNI                 string      `gorm:"type:varchar(20);primaryKey" json:"dni"`
	Nombres             string      `gorm:"type:varchar(100);not null" json:"names"`
	Apellidos           string      `gorm:"type:varchar(100);not null" json:"last_names"`
	Email               string      `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Telefono            string      `gorm:"type:varchar(30)" json:"phone"`
	Direccion           string      `gorm:"type:text" json:"address"`
	FechaNacimiento     *time.Time  `json:"birthdate,omitempty"`
	TitulacionID        *uint       `json:"degree_id"`
	Titulacion          *Titulacion `gorm:"foreignKey:TitulacionID" json:"degree,omitempty"`
	AvatarURL           string      `gorm:"type:text" json:"avatar_url"`
	EsAdmin             bool        `gorm:"default:false" json:"is_admin"`
	PasswordHash        string      `gorm:"type:varchar(255);not null" json:"-"`
	DebeCambiarPassword bool        `gorm:"default:false" json:"must_change_password"`
	CreatedAt           time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time   `gorm:"autoUpdateTime" json:"-"`
}
