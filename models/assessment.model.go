package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgressAssessment records a reading assessment for a child profile.
// Creating one triggers generation of a fresh learning path.
type ProgressAssessment struct {
	gorm.Model
	ChildProfileID      uint      `json:"child_profile_id" gorm:"index;not null"`
	AssessmentDate      time.Time `json:"assessment_date"`
	ReadingLevel        string    `json:"reading_level" gorm:"not null"`
	ReadingFluencyScore *int      `json:"reading_fluency_score"`
	ComprehensionScore  *int      `json:"comprehension_score"`
	VocabularyScore     *int      `json:"vocabulary_score"`
	Notes               string    `json:"notes" gorm:"type:text"`
}
