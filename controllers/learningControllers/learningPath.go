package learningController

import (
	"errors"

	"wrwk/database"
	"wrwk/middleware"
	"wrwk/models"
	learningModels "wrwk/models/learning"
	"wrwk/services/learning"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var tracker = learning.NewTracker()

func GetLearningPaths(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	profileID := c.Locals("profileID").(int)

	// Verify profile belongs to user
	var profile models.ChildProfile
	if err := database.Database.Db.First(&profile, profileID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Child profile not found!", nil)
	}
	if profile.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Unauthorized!", nil)
	}

	// Fetch paths with their activities in stage order
	var paths []learningModels.LearningPath
	if err := database.Database.Db.
		Where("child_profile_id = ?", profileID).
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("stage_number asc")
		}).
		Find(&paths).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch learning paths!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning paths fetched successfully!", paths)
}

func UpdatePathActivity(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	activityID := c.Locals("activityID").(int)

	reqData, ok := c.Locals("validatedActivityUpdate").(*struct {
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Resolve the activity and walk activity -> path -> profile to verify
	// the caller owns the child this path belongs to
	var activity learningModels.PathActivity
	if err := database.Database.Db.First(&activity, activityID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Activity not found!", nil)
	}

	var path learningModels.LearningPath
	if err := database.Database.Db.First(&path, activity.LearningPathID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learning path not found!", nil)
	}

	var profile models.ChildProfile
	if err := database.Database.Db.First(&profile, path.ChildProfileID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Child profile not found!", nil)
	}
	if profile.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Unauthorized!", nil)
	}

	updated, err := tracker.ApplyActivityStatus(database.Database.Db, uint(activityID), reqData.Status)
	if err != nil {
		if errors.Is(err, learning.ErrInvalidStatus) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid activity status!", nil)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Activity not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update activity!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity updated!", updated)
}
