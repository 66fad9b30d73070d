package entity

import (
	"time"
)

// Empresa is a company or institution that publishes job offers. The color
// fields drive card theming on the frontend.
type Empresa struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	ImageURL  string    `gorm:"type:text" json:"image_url"`
	ColorRGB  string    `gorm:"type:varchar(30)" json:"color_rgb"`
	TextColor string    `gorm:"type:varchar(30)" json:"text_color"`
	URL       string    `gorm:"type:text" json:"url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Trabajos []Trabajo `gorm:"foreignKey:EmpresaID" json:"trabajos,omitempty"`

	// Plazas is the number of job offers referencing the company, filled by a
	// count query on list endpoints.
	Plazas int64 `gorm:"-" json:"plazas"`
}
