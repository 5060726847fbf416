package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	FirstName string  `gorm:"not null" json:"firstname"`
	LastName  string  `gorm:"not null" json:"lastname"`
	Email     string  `gorm:"not null;unique" json:"email"`
	Password  string  `gorm:"not null" json:"-"`
	PhotoName *string `json:"photo_name"`
	Role      string  `gorm:"not null;default:'user'" json:"role"`
	Items     []Item  `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}
