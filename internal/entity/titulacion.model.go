package entity

// Titulacion is a degree offered by the university, used as a lookup table.
type Titulacion struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(150);uniqueIndex;not null" json:"name"`
	ImageURL string `gorm:"type:text" json:"image_url"`
	Disabled bool   `gorm:"default:false" json:"disabled"`
}
