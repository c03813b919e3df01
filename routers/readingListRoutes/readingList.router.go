package readingListRoutes

import (
	readingListControllers "wrwk/controllers/readingListControllers"
	"wrwk/middleware"
	profileValidators "wrwk/validators/profile"
	readingListValidators "wrwk/validators/readingList"

	"github.com/gofiber/fiber/v2"
)

func SetupReadingListRoutes(app *fiber.App) {
	listGroup := app.Group("/api/reading-list")

	listGroup.Get("/:id", middleware.JWTMiddleware, profileValidators.ProfileID(), readingListControllers.GetReadingList)
	listGroup.Post("/", middleware.JWTMiddleware, readingListValidators.AddItem(), readingListControllers.AddToReadingList)
	listGroup.Put("/:id", middleware.JWTMiddleware, readingListValidators.ItemID(), readingListValidators.UpdateItem(), readingListControllers.UpdateReadingListItem)
	listGroup.Delete("/:id", middleware.JWTMiddleware, readingListValidators.ItemID(), readingListControllers.RemoveFromReadingList)
}
