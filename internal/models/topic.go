package models

type Topic struct {
	Slug        string `gorm:"primaryKey" json:"slug"`
	Description string `gorm:"not null" json:"description"`
	ImgURL      string `gorm:"size:1000" json:"img_url"`
}
