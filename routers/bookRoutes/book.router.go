package bookRoutes

import (
	bookControllers "wrwk/controllers/bookControllers"
	"wrwk/middleware"
	bookValidators "wrwk/validators/book"

	"github.com/gofiber/fiber/v2"
)

func SetupBookRoutes(app *fiber.App) {
	bookGroup := app.Group("/api/books")

	// Catalog browsing is public
	bookGroup.Get("/", bookControllers.GetBooks)
	bookGroup.Get("/featured", bookControllers.GetFeaturedBooks)
	bookGroup.Get("/:id", bookValidators.BookID(), bookControllers.GetBook)

	// Catalog management
	bookGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("admin"), bookValidators.CreateBook(), bookControllers.CreateBook)
}
