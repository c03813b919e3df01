package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReadingStatusToRead     = "to-read"
	ReadingStatusInProgress = "in-progress"
	ReadingStatusCompleted  = "completed"
)

// ReadingListItem links a child profile to a book they are reading
type ReadingListItem struct {
	gorm.Model
	ChildProfileID     uint       `json:"child_profile_id" gorm:"index;not null"`
	BookID             uint       `json:"book_id" gorm:"index;not null"`
	Status             string     `json:"status" gorm:"default:'to-read'"` // to-read, in-progress, completed
	ProgressPercentage int        `json:"progress_percentage" gorm:"default:0"`
	CompletedAt        *time.Time `json:"completed_at"`
}
