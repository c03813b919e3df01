package models

import (
	"gorm.io/gorm"
)

// ChildProfile is a child reader managed by a parent or educator account
type ChildProfile struct {
	gorm.Model
	UserID       uint            `json:"user_id" gorm:"index;not null"`
	Name         string          `json:"name" gorm:"not null"`
	Age          int             `json:"age" gorm:"not null"`
	ReadingLevel string          `json:"reading_level" gorm:"not null"` // beginner, intermediate, advanced
	AvatarURL    string          `json:"avatar_url"`
	Interests    []ChildInterest `json:"interests" gorm:"foreignKey:ChildProfileID;constraint:OnDelete:CASCADE"`
}

// ChildInterest is one interest tag attached to a child profile
type ChildInterest struct {
	ID             uint   `json:"-" gorm:"primaryKey"`
	ChildProfileID uint   `json:"-" gorm:"index;not null"`
	Interest       string `json:"interest" gorm:"not null"`
}

// InterestNames flattens the interest rows to plain strings for responses
func (p *ChildProfile) InterestNames() []string {
	names := make([]string, 0, len(p.Interests))
	for _, i := range p.Interests {
		names = append(names, i.Interest)
	}
	return names
}
