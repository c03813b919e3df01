package assessmentValidator

import (
	"strings"

	"wrwk/middleware"

	"github.com/gofiber/fiber/v2"
)

func isValidScore(score *int) bool {
	return score == nil || (*score >= 0 && *score <= 100)
}

// CreateAssessment validator middleware
func CreateAssessment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ChildProfileID      uint   `json:"child_profile_id"`
			ReadingLevel        string `json:"reading_level"`
			ReadingFluencyScore *int   `json:"reading_fluency_score"`
			ComprehensionScore  *int   `json:"comprehension_score"`
			VocabularyScore     *int   `json:"vocabulary_score"`
			Notes               string `json:"notes"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ChildProfileID == 0 {
			errors["child_profile_id"] = "Child profile ID is required!"
		}
		if strings.TrimSpace(reqData.ReadingLevel) == "" {
			errors["reading_level"] = "Reading level is required!"
		}
		if !isValidScore(reqData.ReadingFluencyScore) {
			errors["reading_fluency_score"] = "Score must be between 0 and 100!"
		}
		if !isValidScore(reqData.ComprehensionScore) {
			errors["comprehension_score"] = "Score must be between 0 and 100!"
		}
		if !isValidScore(reqData.VocabularyScore) {
			errors["vocabulary_score"] = "Score must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssessment", reqData)
		return c.Next()
	}
}
