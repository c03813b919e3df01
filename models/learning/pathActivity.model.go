package learning

import (
	"gorm.io/gorm"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Activity types understood by the frontend
const (
	TypeAssessment = "assessment"
	TypeExercise   = "exercise"
	TypeReading    = "reading"
	TypeQuiz       = "quiz"
	TypeCreative   = "creative"
)

// PathActivity is one task within a learning path stage. IsCompleted stays
// true once set, even if the status is later moved back off completed.
type PathActivity struct {
	gorm.Model
	LearningPathID uint   `json:"learning_path_id" gorm:"index;not null"`
	Title          string `json:"title" gorm:"not null"`
	Description    string `json:"description" gorm:"type:text"`
	ActivityType   string `json:"activity_type" gorm:"not null"`
	ContentURL     string `json:"content_url"`
	StageNumber    int    `json:"stage_number" gorm:"not null"` // 1-indexed, matches LearningPath stage numbering
	Status         string `json:"status" gorm:"default:'pending'"`
	IsCompleted    bool   `json:"is_completed" gorm:"default:false"`
}

// IsValidStatus reports whether s is one of the recognised activity statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}
