package assessmentController

import (
	"log"
	"time"

	"wrwk/database"
	"wrwk/middleware"
	"wrwk/models"
	"wrwk/services/learning"

	"github.com/gofiber/fiber/v2"
)

var pathGenerator = learning.NewGenerator()

func GetAssessments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	profileID := c.Locals("profileID").(int)

	// Verify profile belongs to user
	var profile models.ChildProfile
	if err := database.Database.Db.First(&profile, profileID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Child profile not found!", nil)
	}
	if profile.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Unauthorized!", nil)
	}

	var assessments []models.ProgressAssessment
	if err := database.Database.Db.
		Where("child_profile_id = ?", profileID).
		Order("assessment_date desc").
		Find(&assessments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assessments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessments fetched successfully!", assessments)
}

// CreateAssessment records a reading assessment, bumps the profile's reading
// level and generates a fresh learning path. Earlier paths stay open.
func CreateAssessment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAssessment").(*struct {
		ChildProfileID      uint   `json:"child_profile_id"`
		ReadingLevel        string `json:"reading_level"`
		ReadingFluencyScore *int   `json:"reading_fluency_score"`
		ComprehensionScore  *int   `json:"comprehension_score"`
		VocabularyScore     *int   `json:"vocabulary_score"`
		Notes               string `json:"notes"`
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

	assessment := models.ProgressAssessment{
		ChildProfileID:      reqData.ChildProfileID,
		AssessmentDate:      time.Now(),
		ReadingLevel:        reqData.ReadingLevel,
		ReadingFluencyScore: reqData.ReadingFluencyScore,
		ComprehensionScore:  reqData.ComprehensionScore,
		VocabularyScore:     reqData.VocabularyScore,
		Notes:               reqData.Notes,
	}

	if err := database.Database.Db.Create(&assessment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assessment!", nil)
	}

	// The assessment result becomes the profile's current reading level
	profile.ReadingLevel = reqData.ReadingLevel
	if err := database.Database.Db.Save(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update reading level!", nil)
	}

	// Generate a new learning path based on the assessment
	path, err := pathGenerator.Generate(database.Database.Db, &profile)
	if err != nil {
		log.Printf("Error generating learning path for profile %d: %v", profile.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate learning path!", nil)
	}

	response := fiber.Map{
		"assessment":    assessment,
		"learning_path": path,
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assessment created successfully!", response)
}
