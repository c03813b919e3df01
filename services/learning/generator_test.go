package learning

import (
	"testing"

	learningModels "wrwk/models/learning"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCreatesFiveStagePath(t *testing.T) {
	db := newTestDB(t)
	profile := newTestProfile(t, db)

	path, err := NewGenerator().Generate(db, profile)
	require.NoError(t, err)

	assert.Equal(t, profile.ID, path.ChildProfileID)
	assert.Equal(t, 1, path.CurrentStage)
	assert.Equal(t, 5, path.TotalStages)
	assert.Equal(t, 0, path.ProgressPercentage)
	assert.Equal(t, "Personalized Reading Journey for Maya", path.Title)
	assert.Equal(t, "A customized learning path designed for a 7-year-old reader at intermediate level.", path.Description)

	// Activities are persisted in canonical curriculum order
	var activities []learningModels.PathActivity
	require.NoError(t, db.Where("learning_path_id = ?", path.ID).Order("stage_number asc").Find(&activities).Error)
	require.Len(t, activities, 5)

	wantTypes := []string{
		learningModels.TypeAssessment,
		learningModels.TypeExercise,
		learningModels.TypeReading,
		learningModels.TypeQuiz,
		learningModels.TypeCreative,
	}
	wantTitles := []string{
		"Reading Assessment",
		"Vocabulary Building",
		"Guided Reading",
		"Comprehension Quiz",
		"Creative Response",
	}

	for i, activity := range activities {
		assert.Equal(t, i+1, activity.StageNumber)
		assert.Equal(t, wantTypes[i], activity.ActivityType)
		assert.Equal(t, wantTitles[i], activity.Title)
		assert.Equal(t, learningModels.StatusPending, activity.Status)
		assert.False(t, activity.IsCompleted)
	}
}

func TestGenerateReturnsActivitiesOnPath(t *testing.T) {
	db := newTestDB(t)
	profile := newTestProfile(t, db)

	path, err := NewGenerator().Generate(db, profile)
	require.NoError(t, err)

	require.Len(t, path.Activities, 5)
	for i, activity := range path.Activities {
		assert.NotZero(t, activity.ID)
		assert.Equal(t, path.ID, activity.LearningPathID)
		assert.Equal(t, i+1, activity.StageNumber)
	}
}

func TestGenerateWithCustomTemplate(t *testing.T) {
	db := newTestDB(t)
	profile := newTestProfile(t, db)

	generator := &Generator{Template: []ActivityTemplate{
		{Title: "Phonics Warmup", Description: "Sound out new letter blends.", ActivityType: learningModels.TypeExercise},
		{Title: "Picture Book", Description: "Read a picture book together.", ActivityType: learningModels.TypeReading},
		{Title: "Retell the Story", Description: "Tell the story back in your own words.", ActivityType: learningModels.TypeCreative},
	}}

	path, err := generator.Generate(db, profile)
	require.NoError(t, err)

	assert.Equal(t, 3, path.TotalStages)
	assert.Equal(t, 1, path.CurrentStage)

	var count int64
	require.NoError(t, db.Model(&learningModels.PathActivity{}).Where("learning_path_id = ?", path.ID).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestGenerateKeepsEarlierPaths(t *testing.T) {
	db := newTestDB(t)
	profile := newTestProfile(t, db)
	generator := NewGenerator()

	first, err := generator.Generate(db, profile)
	require.NoError(t, err)

	// A new assessment produces an additional path; the old one stays open
	second, err := generator.Generate(db, profile)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	var paths []learningModels.LearningPath
	require.NoError(t, db.Where("child_profile_id = ?", profile.ID).Find(&paths).Error)
	assert.Len(t, paths, 2)

	kept := reloadPath(t, db, first.ID)
	assert.Equal(t, 1, kept.CurrentStage)
	assert.Equal(t, 0, kept.ProgressPercentage)
}
