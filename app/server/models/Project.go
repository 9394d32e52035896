package models

import "gorm.io/gorm"

// Project is a portfolio entry. Everything except the title is optional and
// usually filled in later through the edit flow.
type Project struct {
	gorm.Model

	Title    string  `gorm:"column:title;uniqueIndex"`
	GitURL   *string `gorm:"column:git_url;uniqueIndex"`
	Blurb    string  `gorm:"column:blurb"`
	Date     string  `gorm:"column:date"` // stamped at creation, "Month DD, YYYY"
	Body     string  `gorm:"column:body"` // rich text
	ImgThumb string  `gorm:"column:img_thumb"`
}
