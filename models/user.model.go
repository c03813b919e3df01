package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username        string    `json:"username" gorm:"unique;not null"`
	Email           string    `json:"email" gorm:"unique;not null"`
	Password        string    `json:"-" gorm:"not null"`
	FirstName       string    `json:"first_name" gorm:"default:''"`
	LastName        string    `json:"last_name" gorm:"default:''"`
	Role            string    `json:"role" gorm:"default:'parent'"` // parent, educator, admin
	ThemePreference string    `json:"theme_preference" gorm:"default:'light'"` // light or dark
	IsActive        bool      `json:"is_active" gorm:"default:true"`
	LastLogin       time.Time `json:"last_login" gorm:"default:NULL"`
}
