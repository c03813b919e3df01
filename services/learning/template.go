package learning

import (
	learningModels "wrwk/models/learning"
)

// ActivityTemplate is one entry in a path template: the activity created for
// a single stage. Stage numbers come from the template order (1-indexed).
type ActivityTemplate struct {
	Title        string
	Description  string
	ActivityType string
}

// DefaultTemplate returns the standard five-stage reading journey. The order
// is the canonical curriculum order the frontend expects.
func DefaultTemplate() []ActivityTemplate {
	return []ActivityTemplate{
		{
			Title:        "Reading Assessment",
			Description:  "Complete an initial reading assessment to identify your strengths and areas for improvement.",
			ActivityType: learningModels.TypeAssessment,
		},
		{
			Title:        "Vocabulary Building",
			Description:  "Practice with new words to expand your vocabulary.",
			ActivityType: learningModels.TypeExercise,
		},
		{
			Title:        "Guided Reading",
			Description:  "Read a story with interactive guidance to help with comprehension.",
			ActivityType: learningModels.TypeReading,
		},
		{
			Title:        "Comprehension Quiz",
			Description:  "Answer questions about the story to check your understanding.",
			ActivityType: learningModels.TypeQuiz,
		},
		{
			Title:        "Creative Response",
			Description:  "Create your own story or drawing inspired by what you read.",
			ActivityType: learningModels.TypeCreative,
		},
	}
}
