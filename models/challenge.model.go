package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ChallengeUnitBooks   = "books"
	ChallengeUnitMinutes = "minutes"
)

// Challenge is a site-wide reading challenge children can join
type Challenge struct {
	gorm.Model
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Goal        int       `json:"goal" gorm:"not null"` // number of books or minutes to read
	Unit        string    `json:"unit" gorm:"not null"` // books or minutes
	StartDate   time.Time `json:"start_date" gorm:"not null"`
	EndDate     time.Time `json:"end_date" gorm:"not null"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
}

// ChallengeParticipant tracks one child's progress within a challenge
type ChallengeParticipant struct {
	gorm.Model
	ChallengeID    uint      `json:"challenge_id" gorm:"index;not null"`
	ChildProfileID uint      `json:"child_profile_id" gorm:"index;not null"`
	Progress       int       `json:"progress" gorm:"default:0"`
	Completed      bool      `json:"completed" gorm:"default:false"`
	JoinedAt       time.Time `json:"joined_at"`
}
