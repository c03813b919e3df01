package challengeValidator

import (
	"strconv"
	"strings"
	"time"

	"wrwk/middleware"
	"wrwk/models"

	"github.com/gofiber/fiber/v2"
)

// ChallengeID validates the :id route param
func ChallengeID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Challenge ID is required!", nil)
		}

		challengeID, err := strconv.Atoi(idStr)
		if err != nil || challengeID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Challenge ID!", nil)
		}

		c.Locals("challengeID", challengeID)
		return c.Next()
	}
}

// Join validator middleware
func Join() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ChildProfileID uint `json:"child_profile_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ChildProfileID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"child_profile_id": "Child profile ID is required!",
			})
		}

		c.Locals("validatedJoin", reqData)
		return c.Next()
	}
}

// UpdateProgress validator middleware
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ChildProfileID uint `json:"child_profile_id"`
			Progress       int  `json:"progress"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ChildProfileID == 0 {
			errors["child_profile_id"] = "Child profile ID is required!"
		}
		if reqData.Progress < 0 {
			errors["progress"] = "Progress cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// CreateChallenge validator middleware
func CreateChallenge() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string    `json:"title"`
			Description string    `json:"description"`
			Goal        int       `json:"goal"`
			Unit        string    `json:"unit"`
			StartDate   time.Time `json:"start_date"`
			EndDate     time.Time `json:"end_date"`
			ImageURL    string    `json:"image_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Goal <= 0 {
			errors["goal"] = "Goal must be greater than 0!"
		}
		if reqData.Unit != models.ChallengeUnitBooks && reqData.Unit != models.ChallengeUnitMinutes {
			errors["unit"] = "Unit must be books or minutes!"
		}
		if reqData.StartDate.IsZero() || reqData.EndDate.IsZero() {
			errors["dates"] = "Start and end dates are required!"
		} else if !reqData.EndDate.After(reqData.StartDate) {
			errors["dates"] = "End date must be after start date!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChallenge", reqData)
		return c.Next()
	}
}
