package utils

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"wrwk/database"
	"wrwk/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newSchedulerTestDB(t *testing.T) *gorm.DB {
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
		&models.Challenge{},
		&models.ChallengeParticipant{},
	))

	database.Database = database.DbInstance{Db: db}
	return db
}

func TestDeactivateExpiredChallenges(t *testing.T) {
	db := newSchedulerTestDB(t)

	expired := &models.Challenge{
		Title:     "Spring Sprint",
		Goal:      10,
		Unit:      models.ChallengeUnitBooks,
		StartDate: time.Now().AddDate(0, 0, -30),
		EndDate:   time.Now().AddDate(0, 0, -1),
		IsActive:  true,
	}
	require.NoError(t, db.Create(expired).Error)

	// Ends later today, so it must survive the sweep
	current := &models.Challenge{
		Title:     "Summer Sprint",
		Goal:      10,
		Unit:      models.ChallengeUnitBooks,
		StartDate: time.Now().AddDate(0, 0, -7),
		EndDate:   time.Now(),
		IsActive:  true,
	}
	require.NoError(t, db.Create(current).Error)

	DeactivateExpiredChallenges()

	var saved models.Challenge
	require.NoError(t, db.First(&saved, expired.ID).Error)
	require.False(t, saved.IsActive)

	saved = models.Challenge{}
	require.NoError(t, db.First(&saved, current.ID).Error)
	require.True(t, saved.IsActive)
}

func TestCompleteGoalMetParticipants(t *testing.T) {
	db := newSchedulerTestDB(t)

	challenge := &models.Challenge{
		Title:     "Winter Reading",
		Goal:      5,
		Unit:      models.ChallengeUnitBooks,
		StartDate: time.Now().AddDate(0, 0, -7),
		EndDate:   time.Now().AddDate(0, 0, 7),
		IsActive:  true,
	}
	require.NoError(t, db.Create(challenge).Error)

	goalMet := &models.ChallengeParticipant{
		ChallengeID:    challenge.ID,
		ChildProfileID: 1,
		Progress:       5,
		JoinedAt:       time.Now(),
	}
	require.NoError(t, db.Create(goalMet).Error)

	behind := &models.ChallengeParticipant{
		ChallengeID:    challenge.ID,
		ChildProfileID: 2,
		Progress:       3,
		JoinedAt:       time.Now(),
	}
	require.NoError(t, db.Create(behind).Error)

	CompleteGoalMetParticipants()

	var saved models.ChallengeParticipant
	require.NoError(t, db.First(&saved, goalMet.ID).Error)
	require.True(t, saved.Completed)

	saved = models.ChallengeParticipant{}
	require.NoError(t, db.First(&saved, behind.ID).Error)
	require.False(t, saved.Completed)
}

func TestCompleteGoalMetParticipantsSkipsInactiveChallenges(t *testing.T) {
	db := newSchedulerTestDB(t)

	challenge := &models.Challenge{
		Title:     "Closed Challenge",
		Goal:      5,
		Unit:      models.ChallengeUnitMinutes,
		StartDate: time.Now().AddDate(0, 0, -30),
		EndDate:   time.Now().AddDate(0, 0, -10),
	}
	require.NoError(t, db.Create(challenge).Error)
	// The column defaults to true, so flip it with an explicit update
	require.NoError(t, db.Model(challenge).Update("is_active", false).Error)

	participant := &models.ChallengeParticipant{
		ChallengeID:    challenge.ID,
		ChildProfileID: 1,
		Progress:       9,
		JoinedAt:       time.Now(),
	}
	require.NoError(t, db.Create(participant).Error)

	CompleteGoalMetParticipants()

	var saved models.ChallengeParticipant
	require.NoError(t, db.First(&saved, participant.ID).Error)
	require.False(t, saved.Completed)
}
