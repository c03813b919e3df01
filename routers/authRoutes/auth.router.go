package authRoutes

import (
	authControllers "wrwk/controllers/auth"
	"wrwk/middleware"
	authValidators "wrwk/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/logout", middleware.JWTMiddleware, authControllers.Logout)
	authGroup.Get("/user", middleware.JWTMiddleware, authControllers.CurrentUser)
	authGroup.Post("/update-theme", middleware.JWTMiddleware, authValidators.UpdateTheme(), authControllers.UpdateTheme)
}
