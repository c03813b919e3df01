package learning

import (
	"fmt"
	"strings"
	"testing"

	"wrwk/models"
	learningModels "wrwk/models/learning"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory sqlite database for one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	// sqlite serializes writers; a single connection avoids lock errors
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.ChildProfile{},
		&models.ChildInterest{},
		&learningModels.LearningPath{},
		&learningModels.PathActivity{},
	))

	return db
}

// newTestProfile persists a child profile to hang paths off of.
func newTestProfile(t *testing.T, db *gorm.DB) *models.ChildProfile {
	t.Helper()

	profile := &models.ChildProfile{
		UserID:       1,
		Name:         "Maya",
		Age:          7,
		ReadingLevel: "intermediate",
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

// activityAtStage fetches the activity for a given stage of a path.
func activityAtStage(t *testing.T, db *gorm.DB, pathID uint, stage int) *learningModels.PathActivity {
	t.Helper()

	var activity learningModels.PathActivity
	require.NoError(t, db.Where("learning_path_id = ? AND stage_number = ?", pathID, stage).First(&activity).Error)
	return &activity
}

// reloadPath fetches the current persisted state of a path.
func reloadPath(t *testing.T, db *gorm.DB, pathID uint) *learningModels.LearningPath {
	t.Helper()

	var path learningModels.LearningPath
	require.NoError(t, db.First(&path, pathID).Error)
	return &path
}
