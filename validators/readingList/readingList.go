package readingListValidator

import (
	"strconv"
	"strings"

	"wrwk/middleware"
	"wrwk/models"

	"github.com/gofiber/fiber/v2"
)

func isValidReadingStatus(status string) bool {
	switch status {
	case models.ReadingStatusToRead, models.ReadingStatusInProgress, models.ReadingStatusCompleted:
		return true
	}
	return false
}

// ItemID validates the :id route param
func ItemID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Item ID is required!", nil)
		}

		itemID, err := strconv.Atoi(idStr)
		if err != nil || itemID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Item ID!", nil)
		}

		c.Locals("itemID", itemID)
		return c.Next()
	}
}

// AddItem validator middleware
func AddItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ChildProfileID uint   `json:"child_profile_id"`
			BookID         uint   `json:"book_id"`
			Status         string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ChildProfileID == 0 {
			errors["child_profile_id"] = "Child profile ID is required!"
		}
		if reqData.BookID == 0 {
			errors["book_id"] = "Book ID is required!"
		}
		if reqData.Status != "" && !isValidReadingStatus(reqData.Status) {
			errors["status"] = "Status must be to-read, in-progress or completed!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReadingListItem", reqData)
		return c.Next()
	}
}

// UpdateItem validator middleware
func UpdateItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status             *string `json:"status"`
			ProgressPercentage *int    `json:"progress_percentage"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != nil && !isValidReadingStatus(*reqData.Status) {
			errors["status"] = "Status must be to-read, in-progress or completed!"
		}
		if reqData.ProgressPercentage != nil && (*reqData.ProgressPercentage < 0 || *reqData.ProgressPercentage > 100) {
			errors["progress_percentage"] = "Progress must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReadingListUpdate", reqData)
		return c.Next()
	}
}
