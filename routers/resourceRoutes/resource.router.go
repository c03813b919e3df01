package resourceRoutes

import (
	resourceControllers "wrwk/controllers/resourceControllers"
	"wrwk/middleware"
	resourceValidators "wrwk/validators/resource"

	"github.com/gofiber/fiber/v2"
)

func SetupResourceRoutes(app *fiber.App) {
	resourceGroup := app.Group("/api/resources")

	resourceGroup.Get("/", resourceControllers.GetResources)
	resourceGroup.Get("/:id", resourceValidators.ResourceID(), resourceControllers.GetResource)

	// Resource management
	resourceGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("admin"), resourceValidators.CreateResource(), resourceControllers.CreateResource)
}
