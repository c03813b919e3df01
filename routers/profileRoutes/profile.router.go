package profileRoutes

import (
	profileControllers "wrwk/controllers/profileControllers"
	"wrwk/middleware"
	profileValidators "wrwk/validators/profile"

	"github.com/gofiber/fiber/v2"
)

func SetupProfileRoutes(app *fiber.App) {
	profileGroup := app.Group("/api/child-profiles")

	profileGroup.Get("/", middleware.JWTMiddleware, profileControllers.GetChildProfiles)
	profileGroup.Get("/:id", middleware.JWTMiddleware, profileValidators.ProfileID(), profileControllers.GetChildProfile)
	profileGroup.Post("/", middleware.JWTMiddleware, profileValidators.CreateProfile(), profileControllers.CreateChildProfile)
	profileGroup.Put("/:id", middleware.JWTMiddleware, profileValidators.ProfileID(), profileValidators.UpdateProfile(), profileControllers.UpdateChildProfile)
	profileGroup.Delete("/:id", middleware.JWTMiddleware, profileValidators.ProfileID(), profileControllers.DeleteChildProfile)
	profileGroup.Post("/:id/avatar", middleware.JWTMiddleware, profileValidators.ProfileID(), profileControllers.UploadAvatar)
}
