package profileValidator

import (
	"strconv"
	"strings"

	"wrwk/middleware"

	"github.com/gofiber/fiber/v2"
)

// ProfileID validates the :id route param and stashes it in locals
func ProfileID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Profile ID is required!", nil)
		}

		profileID, err := strconv.Atoi(idStr)
		if err != nil || profileID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Profile ID!", nil)
		}

		c.Locals("profileID", profileID)
		return c.Next()
	}
}

// CreateProfile validator middleware
func CreateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string   `json:"name"`
			Age          int      `json:"age"`
			ReadingLevel string   `json:"reading_level"`
			AvatarURL    string   `json:"avatar_url"`
			Interests    []string `json:"interests"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Age < 1 || reqData.Age > 18 {
			errors["age"] = "Age must be between 1 and 18!"
		}
		if strings.TrimSpace(reqData.ReadingLevel) == "" {
			errors["reading_level"] = "Reading level is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         *string   `json:"name"`
			Age          *int      `json:"age"`
			ReadingLevel *string   `json:"reading_level"`
			AvatarURL    *string   `json:"avatar_url"`
			Interests    *[]string `json:"interests"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && strings.TrimSpace(*reqData.Name) == "" {
			errors["name"] = "Name cannot be empty!"
		}
		if reqData.Age != nil && (*reqData.Age < 1 || *reqData.Age > 18) {
			errors["age"] = "Age must be between 1 and 18!"
		}
		if reqData.ReadingLevel != nil && strings.TrimSpace(*reqData.ReadingLevel) == "" {
			errors["reading_level"] = "Reading level cannot be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfileUpdate", reqData)
		return c.Next()
	}
}
