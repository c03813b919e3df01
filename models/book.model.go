package models

import (
	"gorm.io/gorm"
)

type Book struct {
	gorm.Model
	Title              string    `json:"title" gorm:"not null"`
	Author             string    `json:"author" gorm:"not null"`
	Description        string    `json:"description" gorm:"type:text"`
	AgeRange           string    `json:"age_range" gorm:"not null"` // e.g. "4-6", "7-9"
	Genre              string    `json:"genre" gorm:"not null"`
	CoverImageURL      string    `json:"cover_image_url"`
	ContentURL         string    `json:"content_url"`
	IsInteractive      bool      `json:"is_interactive" gorm:"default:false"`
	ReadingTimeMinutes int       `json:"reading_time_minutes"`
	Rating             float64   `json:"rating" gorm:"default:0"`
	ReviewsCount       int       `json:"reviews_count" gorm:"default:0"`
	Tags               []BookTag `json:"tags" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

// BookTag is one tag attached to a book
type BookTag struct {
	ID     uint   `json:"-" gorm:"primaryKey"`
	BookID uint   `json:"-" gorm:"index;not null"`
	Tag    string `json:"tag" gorm:"not null"`
}
