package learningValidator

import (
	"strconv"
	"strings"

	"wrwk/middleware"

	"github.com/gofiber/fiber/v2"
)

// ActivityID validates the :id route param
func ActivityID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Activity ID is required!", nil)
		}

		activityID, err := strconv.Atoi(idStr)
		if err != nil || activityID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Activity ID!", nil)
		}

		c.Locals("activityID", activityID)
		return c.Next()
	}
}

// UpdateActivity validator middleware. The status value itself is checked by
// the progress tracker so unknown statuses are rejected in one place.
func UpdateActivity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Status) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status is required!",
			})
		}

		c.Locals("validatedActivityUpdate", reqData)
		return c.Next()
	}
}
