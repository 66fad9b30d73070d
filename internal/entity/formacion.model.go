package entity

import (
	"time"
)

// Formacion is a training offering: a course, diploma, workshop, scholarship
// and so on, depending on its TipoFormacion.
type Formacion struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	TitulacionID uint           `gorm:"not null" json:"degree_id"`
	Titulacion   *Titulacion    `gorm:"foreignKey:TitulacionID" json:"degree,omitempty"`
	TipoID       uint           `gorm:"column:id_tipo;not null" json:"id_tipo"`
	Tipo         *TipoFormacion `gorm:"foreignKey:TipoID" json:"tipo,omitempty"`
	Name         string         `gorm:"type:varchar(150);not null" json:"name"`
	Descripcion  string         `gorm:"type:text" json:"descripcion"`
	Modalidad    string         `gorm:"type:varchar(50)" json:"modalidad"`
	Lugar        string         `gorm:"type:varchar(150)" json:"lugar"`
	Capacidad    int            `json:"capacidad"`
	Duracion     string         `gorm:"type:varchar(100)" json:"duracion"`
	Fecha        *time.Time     `json:"fecha,omitempty"`
	Institucion  string         `gorm:"type:varchar(150)" json:"institucion"`
	Facultad     string         `gorm:"type:varchar(150)" json:"facultad"`
	Instructor   string         `gorm:"type:varchar(150)" json:"instructor"`
	URL          string         `gorm:"type:text" json:"url"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
