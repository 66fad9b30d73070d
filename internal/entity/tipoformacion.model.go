package entity

// TipoFormacion is the kind of a training offering (diplomado, curso, taller,
// beca...), kept as a reference table.
type TipoFormacion struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (TipoFormacion) TableName() string {
	return "tipos_formaciones"
}
