package models

import (
	"gorm.io/gorm"
)

// Resource is a downloadable guide or article for parents and educators
type Resource struct {
	gorm.Model
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description" gorm:"type:text"`
	Type         string `json:"type" gorm:"not null"`     // article, video, printable
	Category     string `json:"category" gorm:"not null"` // parent_tips, classroom_activities
	AgeRange     string `json:"age_range"`
	FileURL      string `json:"file_url" gorm:"not null"`
	ThumbnailURL string `json:"thumbnail_url"`
}
