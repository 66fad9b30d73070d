package entity

import (
	"time"
)

// Trabajo is a job offer published for graduates of a given degree.
type Trabajo struct {
	ID                 uint        `gorm:"primaryKey" json:"id"`
	Puesto             string      `gorm:"type:varchar(150);not null" json:"puesto"`
	TitulacionID       uint        `gorm:"not null" json:"degree_id"`
	Titulacion         *Titulacion `gorm:"foreignKey:TitulacionID" json:"degree,omitempty"`
	EmpresaID          uint        `gorm:"not null" json:"empresa_id"`
	Empresa            *Empresa    `gorm:"foreignKey:EmpresaID" json:"empresa,omitempty"`
	Salario            float64     `json:"salario"`
	Ubicacion          string      `gorm:"type:varchar(150)" json:"ubicacion"`
	TipoOferta         string      `gorm:"type:varchar(50)" json:"tipo_oferta"`
	Jornada            string      `gorm:"type:varchar(50)" json:"jornada"`
	Contrato           string      `gorm:"type:varchar(50)" json:"contrato"`
	ExperienciaLaboral string      `gorm:"type:varchar(100)" json:"experiencia_laboral"`
	Idiomas            string      `gorm:"type:varchar(150)" json:"idiomas"`
	Description        string      `gorm:"type:text" json:"description"`
	CreatedAt          time.Time   `gorm:"autoCreateTime" json:"created_at"`
}
