package learning

import (
	"fmt"
	"time"

	"wrwk/models"
	learningModels "wrwk/models/learning"

	"gorm.io/gorm"
)

// Generator creates learning paths from an ordered activity template. One
// activity is created per stage, in template order.
type Generator struct {
	Template []ActivityTemplate
}

// NewGenerator returns a Generator using the standard five-stage template.
func NewGenerator() *Generator {
	return &Generator{Template: DefaultTemplate()}
}

// Generate builds a new learning path for the profile and persists it with
// its activities in a single transaction. Nothing is visible on failure.
// Paths created earlier for the same profile are left untouched: a new
// assessment adds a path alongside the old ones.
func (g *Generator) Generate(db *gorm.DB, profile *models.ChildProfile) (*learningModels.LearningPath, error) {
	path := &learningModels.LearningPath{
		ChildProfileID:     profile.ID,
		Title:              fmt.Sprintf("Personalized Reading Journey for %s", profile.Name),
		Description:        fmt.Sprintf("A customized learning path designed for a %d-year-old reader at %s level.", profile.Age, profile.ReadingLevel),
		CurrentStage:       1,
		TotalStages:        len(g.Template),
		ProgressPercentage: 0,
		LastUpdated:        time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Create the path first so activities can reference its ID
		if err := tx.Create(path).Error; err != nil {
			return err
		}

		for i, item := range g.Template {
			activity := learningModels.PathActivity{
				LearningPathID: path.ID,
				Title:          item.Title,
				Description:    item.Description,
				ActivityType:   item.ActivityType,
				StageNumber:    i + 1,
				Status:         learningModels.StatusPending,
				IsCompleted:    false,
			}
			if err := tx.Create(&activity).Error; err != nil {
				return err
			}
			path.Activities = append(path.Activities, activity)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return path, nil
}
