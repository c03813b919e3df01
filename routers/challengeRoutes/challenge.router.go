package challengeRoutes

import (
	challengeControllers "wrwk/controllers/challengeControllers"
	"wrwk/middleware"
	challengeValidators "wrwk/validators/challenge"

	"github.com/gofiber/fiber/v2"
)

func SetupChallengeRoutes(app *fiber.App) {
	challengeGroup := app.Group("/api/challenges")

	challengeGroup.Get("/", challengeControllers.GetChallenges)
	challengeGroup.Get("/active", middleware.OptionalJWTMiddleware, challengeControllers.GetActiveChallenge)
	challengeGroup.Post("/:id/join", middleware.JWTMiddleware, challengeValidators.ChallengeID(), challengeValidators.Join(), challengeControllers.JoinChallenge)
	challengeGroup.Put("/progress/:id", middleware.JWTMiddleware, challengeValidators.ChallengeID(), challengeValidators.UpdateProgress(), challengeControllers.UpdateChallengeProgress)

	// Challenge management
	challengeGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("admin"), challengeValidators.CreateChallenge(), challengeControllers.CreateChallenge)
}
