package models

import "gorm.io/gorm"

type Item struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"not null" json:"description"`
	ImageURL    *string `json:"image_url"`
	Price       float64 `gorm:"not null" json:"price"`
	UserID      uint    `json:"user_id"`
}
