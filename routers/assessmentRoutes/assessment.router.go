package assessmentRoutes

import (
	assessmentControllers "wrwk/controllers/assessmentControllers"
	"wrwk/middleware"
	assessmentValidators "wrwk/validators/assessment"
	profileValidators "wrwk/validators/profile"

	"github.com/gofiber/fiber/v2"
)

func SetupAssessmentRoutes(app *fiber.App) {
	assessmentGroup := app.Group("/api/assessments")

	assessmentGroup.Get("/:id", middleware.JWTMiddleware, profileValidators.ProfileID(), assessmentControllers.GetAssessments)
	assessmentGroup.Post("/", middleware.JWTMiddleware, assessmentValidators.CreateAssessment(), assessmentControllers.CreateAssessment)
}
