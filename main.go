package main

import (
	"log"

	"wrwk/config"
	"wrwk/database"
	"wrwk/routers/assessmentRoutes"
	"wrwk/routers/authRoutes"
	"wrwk/routers/bookRoutes"
	"wrwk/routers/challengeRoutes"
	"wrwk/routers/learningRoutes"
	"wrwk/routers/profileRoutes"
	"wrwk/routers/readingListRoutes"
	"wrwk/routers/resourceRoutes"
	"wrwk/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded avatars
	app.Static("/uploads", "./"+config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	profileRoutes.SetupProfileRoutes(app)
	bookRoutes.SetupBookRoutes(app)
	readingListRoutes.SetupReadingListRoutes(app)
	challengeRoutes.SetupChallengeRoutes(app)
	resourceRoutes.SetupResourceRoutes(app)
	learningRoutes.SetupLearningRoutes(app)
	assessmentRoutes.SetupAssessmentRoutes(app)

	utils.InitializeChallengeScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
