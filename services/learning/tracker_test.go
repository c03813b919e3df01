package learning

import (
	"sync"
	"testing"
	"time"

	learningModels "wrwk/models/learning"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestApplyActivityStatusRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	path, err := NewGenerator().Generate(db, newTestProfile(t, db))
	require.NoError(t, err)

	activity := activityAtStage(t, db, path.ID, 1)

	_, err = NewTracker().ApplyActivityStatus(db, activity.ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// Nothing was mutated
	unchanged := activityAtStage(t, db, path.ID, 1)
	assert.Equal(t, learningModels.StatusPending, unchanged.Status)
	assert.False(t, unchanged.IsCompleted)

	samePath := reloadPath(t, db, path.ID)
	assert.Equal(t, 1, samePath.CurrentStage)
	assert.Equal(t, 0, samePath.ProgressPercentage)
}

func TestApplyActivityStatusMissingActivity(t *testing.T) {
	db := newTestDB(t)

	_, err := NewTracker().ApplyActivityStatus(db, 9999, learningModels.StatusCompleted)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCompletingFrontierAdvancesStage(t *testing.T) {
	db := newTestDB(t)
	path, err := NewGenerator().Generate(db, newTestProfile(t, db))
	require.NoError(t, err)

	activity := activityAtStage(t, db, path.ID, 1)

	before := time.Now()
	updated, err := NewTracker().ApplyActivityStatus(db, activity.ID, learningModels.StatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, learningModels.StatusCompleted, updated.Status)
	assert.True(t, updated.IsCompleted)

	after := reloadPath(t, db, path.ID)
	assert.Equal(t, 2, after.CurrentStage)
	assert.Equal(t, 20, after.ProgressPercentage) // floor(100 * 1/5)
	assert.False(t, after.LastUpdated.Before(before))
}

func TestCompletingNonFrontierLeavesPathAlone(t *testing.T) {
	db := newTestDB(t)
	path, err := NewGenerator().Generate(db, newTestProfile(t, db))
	require.NoError(t, err)

	activity := activityAtStage(t, db, path.ID, 3)

	updated, err := NewTracker().ApplyActivityStatus(db, activity.ID, learningModels.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, learningModels.StatusCompleted, updated.Status)
	assert.True(t, updated.IsCompleted)

	after := reloadPath(t, db, path.ID)
	assert.Equal(t, 1, after.CurrentStage)
	assert.Equal(t, 0, after.ProgressPercentage)
}

func TestNonCompletedStatusesNeverTouchPath(t *testing.T) {
	db := newTestDB(t)
	path, err := NewGenerator().Generate(db, newTestProfile(t, db))
	require.NoError(t, err)
	tracker := NewTracker()

	for _, status := range []string{learningModels.StatusInProgress, learningModels.StatusPending} {
		for stage := 1; stage <= 5; stage++ {
			activity := activityAtStage(t, db, path.ID, stage)
			_, err := tracker.ApplyActivityStatus(db, activity.ID, status)
			require.NoError(t, err)
		}
	}

	after := reloadPath(t, db, path.ID)
	assert.Equal(t, 1, after.CurrentStage)
	assert.Equal(t, 0, after.ProgressPercentage)
}

func TestIsCompletedStaysSetAfterRegression(t *testing.T) {
	db := newTestDB(t)
	path, err := NewGenerator().Generate(db, newTestProfile(t, db))
	require.NoError(t, err)
	tracker := NewTracker()

	activity := activityAtStage(t, db, path.ID, 2)

	_, err = tracker.ApplyActivityStatus(db, activity.ID, learningModels.StatusCompleted)
	require.NoError(t, err)

	// Moving the status back does not clear the completion flag
	updated, err := tracker.ApplyActivityStatus(db, activity.ID, learningModels.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, learningModels.StatusPending, updated.Status)
	assert.True(t, updated.IsCompleted)
}

func TestStagePointerStopsAtLastStage(t *testing.T) {
	db := newTestDB(t)
	path, err := NewGenerator().Generate(db, newTestProfile(t, db))
	require.NoError(t, err)
	tracker := NewTracker()

	for stage := 1; stage <= 5; stage++ {
		activity := activityAtStage(t, db, path.ID, stage)
		_, err := tracker.ApplyActivityStatus(db, activity.ID, learningModels.StatusCompleted)
		require.NoError(t, err)
	}

	after := reloadPath(t, db, path.ID)
	assert.Equal(t, 5, after.CurrentStage)
	assert.Equal(t, 100, after.ProgressPercentage)

	// Re-completing the final activity keeps the pointer at the last stage
	last := activityAtStage(t, db, path.ID, 5)
	_, err = tracker.ApplyActivityStatus(db, last.ID, learningModels.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 5, reloadPath(t, db, path.ID).CurrentStage)
}

// Completing an activity ahead of the frontier and later re-submitting it
// once the frontier catches up advances the stage again. The progression has
// always behaved this way and the frontend depends on resubmits being cheap.
func TestRecompletingFrontierActivityAdvancesAgain(t *testing.T) {
	db := newTestDB(t)
	path, err := NewGenerator().Generate(db, newTestProfile(t, db))
	require.NoError(t, err)
	tracker := NewTracker()

	stage2 := activityAtStage(t, db, path.ID, 2)
	stage1 := activityAtStage(t, db, path.ID, 1)

	// Stage 2 completed out of order: no cascade
	_, err = tracker.ApplyActivityStatus(db, stage2.ID, learningModels.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 1, reloadPath(t, db, path.ID).CurrentStage)

	// Stage 1 completed: frontier moves to 2
	_, err = tracker.ApplyActivityStatus(db, stage1.ID, learningModels.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 2, reloadPath(t, db, path.ID).CurrentStage)

	// Stage 2 is already completed but now sits at the frontier, so
	// re-submitting completed advances the pointer once more
	_, err = tracker.ApplyActivityStatus(db, stage2.ID, learningModels.StatusCompleted)
	require.NoError(t, err)

	after := reloadPath(t, db, path.ID)
	assert.Equal(t, 3, after.CurrentStage)
	assert.Equal(t, 40, after.ProgressPercentage)
}

func TestRefreshProgressSkipsEmptyPath(t *testing.T) {
	db := newTestDB(t)
	profile := newTestProfile(t, db)

	// Degenerate path with no activities at all
	path := &learningModels.LearningPath{
		ChildProfileID:     profile.ID,
		Title:              "Empty Journey",
		CurrentStage:       1,
		TotalStages:        5,
		ProgressPercentage: 0,
	}
	require.NoError(t, db.Create(path).Error)

	require.NoError(t, refreshProgress(db, path))
	assert.Equal(t, 0, path.ProgressPercentage)
}

func TestConcurrentCompletesAdvanceOnce(t *testing.T) {
	db := newTestDB(t)
	path, err := NewGenerator().Generate(db, newTestProfile(t, db))
	require.NoError(t, err)
	tracker := NewTracker()

	activity := activityAtStage(t, db, path.ID, 1)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tracker.ApplyActivityStatus(db, activity.ID, learningModels.StatusCompleted)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Only the first completion finds stage 1 at the frontier
	after := reloadPath(t, db, path.ID)
	assert.Equal(t, 2, after.CurrentStage)
	assert.Equal(t, 20, after.ProgressPercentage)
}
