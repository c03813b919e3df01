package learningRoutes

import (
	learningControllers "wrwk/controllers/learningControllers"
	"wrwk/middleware"
	learningValidators "wrwk/validators/learning"
	profileValidators "wrwk/validators/profile"

	"github.com/gofiber/fiber/v2"
)

func SetupLearningRoutes(app *fiber.App) {
	learningGroup := app.Group("/api/learning-paths")

	learningGroup.Get("/:id", middleware.JWTMiddleware, profileValidators.ProfileID(), learningControllers.GetLearningPaths)
	learningGroup.Put("/activities/:id", middleware.JWTMiddleware, learningValidators.ActivityID(), learningValidators.UpdateActivity(), learningControllers.UpdatePathActivity)
}
