package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Email string `gorm:"column:email;uniqueIndex"` // login identifier, globally unique
	Name  string `gorm:"column:name"`              // display name

	Password string `gorm:"column:password"` // stored as argon2id hash
}
