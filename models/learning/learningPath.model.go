package learning

import (
	"time"

	"gorm.io/gorm"
)

// LearningPath is one child's guided journey through a fixed sequence of
// ordered stages. CurrentStage is 1-indexed and never moves past TotalStages.
type LearningPath struct {
	gorm.Model
	ChildProfileID     uint           `json:"child_profile_id" gorm:"index;not null"`
	Title              string         `json:"title" gorm:"not null"`
	Description        string         `json:"description" gorm:"type:text"`
	CurrentStage       int            `json:"current_stage" gorm:"default:1"`
	TotalStages        int            `json:"total_stages" gorm:"not null"`
	ProgressPercentage int            `json:"progress_percentage" gorm:"default:0"` // 0-100, derived from completed activities
	LastUpdated        time.Time      `json:"last_updated"`
	Activities         []PathActivity `json:"activities,omitempty" gorm:"foreignKey:LearningPathID;constraint:OnDelete:CASCADE"`
}
