package learning

import (
	"errors"
	"sync"
	"time"

	learningModels "wrwk/models/learning"

	"gorm.io/gorm"
)

// ErrInvalidStatus is returned when a requested activity status is not one
// of pending, in-progress or completed. Nothing is mutated in that case.
var ErrInvalidStatus = errors.New("invalid activity status")

// Tracker applies activity status updates and advances the owning path when
// the activity at the path's current stage is completed. Updates to the same
// path are serialized so the stage pointer and percentage never race.
type Tracker struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

// NewTracker returns a ready-to-use Tracker.
func NewTracker() *Tracker {
	return &Tracker{locks: make(map[uint]*sync.Mutex)}
}

func (t *Tracker) pathLock(pathID uint) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	lock, ok := t.locks[pathID]
	if !ok {
		lock = &sync.Mutex{}
		t.locks[pathID] = lock
	}
	return lock
}

// ApplyActivityStatus sets the activity's status and, when the completed
// activity sits at the path's current stage, advances the stage pointer and
// recomputes the path's progress percentage. Completing an activity at any
// other stage only touches the activity. IsCompleted is never cleared once
// set. Re-completing the frontier activity advances the stage again; the
// frontend resubmits only after a stage change, so this matches how the
// progression has always behaved.
func (t *Tracker) ApplyActivityStatus(db *gorm.DB, activityID uint, newStatus string) (*learningModels.PathActivity, error) {
	if !learningModels.IsValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	var activity learningModels.PathActivity
	if err := db.First(&activity, activityID).Error; err != nil {
		return nil, err
	}

	lock := t.pathLock(activity.LearningPathID)
	lock.Lock()
	defer lock.Unlock()

	err := db.Transaction(func(tx *gorm.DB) error {
		// Re-read under the path lock so concurrent updates see committed state
		if err := tx.First(&activity, activityID).Error; err != nil {
			return err
		}

		activity.Status = newStatus
		if newStatus == learningModels.StatusCompleted {
			activity.IsCompleted = true
		}
		if err := tx.Save(&activity).Error; err != nil {
			return err
		}

		if newStatus != learningModels.StatusCompleted {
			return nil
		}

		var path learningModels.LearningPath
		if err := tx.First(&path, activity.LearningPathID).Error; err != nil {
			return err
		}

		// Only completing the activity at the current stage moves the path
		if path.CurrentStage != activity.StageNumber {
			return nil
		}

		if path.CurrentStage < path.TotalStages {
			path.CurrentStage++
		}

		if err := refreshProgress(tx, &path); err != nil {
			return err
		}

		return tx.Save(&path).Error
	})
	if err != nil {
		return nil, err
	}

	return &activity, nil
}

// refreshProgress recomputes the path's completion percentage from its
// activities. A path with no activities is left as-is.
func refreshProgress(tx *gorm.DB, path *learningModels.LearningPath) error {
	var completed, total int64
	if err := tx.Model(&learningModels.PathActivity{}).
		Where("learning_path_id = ?", path.ID).Count(&total).Error; err != nil {
		return err
	}
	if err := tx.Model(&learningModels.PathActivity{}).
		Where("learning_path_id = ? AND is_completed = ?", path.ID, true).Count(&completed).Error; err != nil {
		return err
	}

	if total > 0 {
		path.ProgressPercentage = int(completed * 100 / total)
		path.LastUpdated = time.Now()
	}

	return nil
}
