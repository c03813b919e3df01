package challengeController

import (
	"time"

	"wrwk/database"
	"wrwk/middleware"
	"wrwk/models"

	"github.com/gofiber/fiber/v2"
)

func GetChallenges(c *fiber.Ctx) error {
	var challenges []models.Challenge
	if err := database.Database.Db.Find(&challenges).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch challenges!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Challenges fetched successfully!", challenges)
}

// GetActiveChallenge returns the first active challenge with the caller's
// progress attached when a profile has joined it.
func GetActiveChallenge(c *fiber.Ctx) error {
	var challenge models.Challenge
	if err := database.Database.Db.Where("is_active = ?", true).First(&challenge).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No active challenges.", nil)
	}

	daysRemaining := int(time.Until(challenge.EndDate).Hours() / 24)
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	response := fiber.Map{
		"challenge":      challenge,
		"progress":       0,
		"total":          challenge.Goal,
		"days_remaining": daysRemaining,
	}

	// Attach progress for the caller's first profile when logged in
	if userID, ok := c.Locals("userId").(uint); ok {
		var profile models.ChildProfile
		if err := database.Database.Db.Where("user_id = ?", userID).First(&profile).Error; err == nil {
			var participant models.ChallengeParticipant
			if err := database.Database.Db.Where("challenge_id = ? AND child_profile_id = ?", challenge.ID, profile.ID).First(&participant).Error; err == nil {
				response["progress"] = participant.Progress
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Active challenge fetched successfully!", response)
}

func JoinChallenge(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	challengeID := c.Locals("challengeID").(int)

	reqData, ok := c.Locals("validatedJoin").(*struct {
		ChildProfileID uint `json:"child_profile_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Verify profile belongs to user
	var profile models.ChildProfile
	if err := database.Database.Db.First(&profile, reqData.ChildProfileID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Child profile not found!", nil)
	}
	if profile.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Unauthorized!", nil)
	}

	// Verify challenge exists and is active
	var challenge models.Challenge
	if err := database.Database.Db.First(&challenge, challengeID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Challenge not found!", nil)
	}
	if !challenge.IsActive {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This challenge is not currently active!", nil)
	}

	// Check if already joined
	var existing models.ChallengeParticipant
	if err := database.Database.Db.Where("challenge_id = ? AND child_profile_id = ?", challengeID, reqData.ChildProfileID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already joined this challenge!", nil)
	}

	participant := models.ChallengeParticipant{
		ChallengeID:    uint(challengeID),
		ChildProfileID: reqData.ChildProfileID,
		Progress:       0,
		Completed:      false,
		JoinedAt:       time.Now(),
	}

	if err := database.Database.Db.Create(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to join challenge!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Successfully joined the challenge!", challenge)
}

func UpdateChallengeProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	challengeID := c.Locals("challengeID").(int)

	reqData, ok := c.Locals("validatedProgress").(*struct {
		ChildProfileID uint `json:"child_profile_id"`
		Progress       int  `json:"progress"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Verify profile belongs to user
	var profile models.ChildProfile
	if err := database.Database.Db.First(&profile, reqData.ChildProfileID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Child profile not found!", nil)
	}
	if profile.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Unauthorized!", nil)
	}

	// Verify challenge exists
	var challenge models.Challenge
	if err := database.Database.Db.First(&challenge, challengeID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Challenge not found!", nil)
	}

	var participant models.ChallengeParticipant
	if err := database.Database.Db.Where("challenge_id = ? AND child_profile_id = ?", challengeID, reqData.ChildProfileID).First(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not participating in this challenge!", nil)
	}

	participant.Progress = reqData.Progress
	participant.Completed = reqData.Progress >= challenge.Goal

	if err := database.Database.Db.Save(&participant).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update challenge progress!", nil)
	}

	response := fiber.Map{
		"progress":  participant.Progress,
		"completed": participant.Completed,
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Challenge progress updated!", response)
}

// CreateChallenge adds a new reading challenge. Admin only.
func CreateChallenge(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedChallenge").(*struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Goal        int       `json:"goal"`
		Unit        string    `json:"unit"`
		StartDate   time.Time `json:"start_date"`
		EndDate     time.Time `json:"end_date"`
		ImageURL    string    `json:"image_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	challenge := models.Challenge{
		Title:       reqData.Title,
		Description: reqData.Description,
		Goal:        reqData.Goal,
		Unit:        reqData.Unit,
		StartDate:   reqData.StartDate,
		EndDate:     reqData.EndDate,
		ImageURL:    reqData.ImageURL,
		IsActive:    true,
	}

	if err := database.Database.Db.Create(&challenge).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create challenge!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Challenge created successfully!", challenge)
}
