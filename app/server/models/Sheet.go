package models

import "gorm.io/gorm"

// Sheet is a blog post.
type Sheet struct {
	gorm.Model

	Title    string `gorm:"column:title;uniqueIndex"`
	Subtitle string `gorm:"column:subtitle"`
	Date     string `gorm:"column:date"` // stamped at creation, "Month DD, YYYY"
	Body     string `gorm:"column:body"` // rich text
	ImgURL   string `gorm:"column:img_url"`
}
