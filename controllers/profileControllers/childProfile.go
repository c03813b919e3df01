package profileController

import (
	"log"

	"wrwk/database"
	"wrwk/middleware"
	"wrwk/models"
	"wrwk/services/learning"
	"wrwk/utils"

	"github.com/gofiber/fiber/v2"
)

var pathGenerator = learning.NewGenerator()

func GetChildProfiles(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var profiles []models.ChildProfile
	if err := database.Database.Db.Where("user_id = ?", userID).Preload("Interests").Find(&profiles).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch child profiles!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Child profiles fetched successfully!", profiles)
}

func GetChildProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	profileID := c.Locals("profileID").(int)

	var profile models.ChildProfile
	if err := database.Database.Db.Preload("Interests").First(&profile, profileID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Child profile not found!", nil)
	}

	// Verify ownership
	if profile.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Unauthorized!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Child profile fetched successfully!", profile)
}

func CreateChildProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*struct {
		Name         string   `json:"name"`
		Age          int      `json:"age"`
		ReadingLevel string   `json:"reading_level"`
		AvatarURL    string   `json:"avatar_url"`
		Interests    []string `json:"interests"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	profile := models.ChildProfile{
		UserID:       userID,
		Name:         reqData.Name,
		Age:          reqData.Age,
		ReadingLevel: reqData.ReadingLevel,
		AvatarURL:    reqData.AvatarURL,
	}
	for _, interest := range reqData.Interests {
		profile.Interests = append(profile.Interests, models.ChildInterest{Interest: interest})
	}

	if err := database.Database.Db.Create(&profile).Error; err != nil {
		log.Printf("Error creating child profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create child profile!", nil)
	}

	// Generate the initial learning path for the new reader
	path, err := pathGenerator.Generate(database.Database.Db, &profile)
	if err != nil {
		log.Printf("Error generating learning path for profile %d: %v", profile.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate learning path!", nil)
	}

	response := fiber.Map{
		"profile":       profile,
		"learning_path": path,
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Child profile created successfully!", response)
}

func UpdateChildProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	profileID := c.Locals("profileID").(int)

	var profile models.ChildProfile
	if err := database.Database.Db.First(&profile, profileID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Child profile not found!", nil)
	}

	if profile.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfileUpdate").(*struct {
		Name         *string   `json:"name"`
		Age          *int      `json:"age"`
		ReadingLevel *string   `json:"reading_level"`
		AvatarURL    *string   `json:"avatar_url"`
		Interests    *[]string `json:"interests"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != nil {
		profile.Name = *reqData.Name
	}
	if reqData.Age != nil {
		profile.Age = *reqData.Age
	}
	if reqData.ReadingLevel != nil {
		profile.ReadingLevel = *reqData.ReadingLevel
	}
	if reqData.AvatarURL != nil {
		profile.AvatarURL = *reqData.AvatarURL
	}

	if err := database.Database.Db.Save(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update child profile!", nil)
	}

	// Replace interest rows when a new set is provided
	if reqData.Interests != nil {
		if err := database.Database.Db.Where("child_profile_id = ?", profile.ID).Delete(&models.ChildInterest{}).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update interests!", nil)
		}
		for _, interest := range *reqData.Interests {
			row := models.ChildInterest{ChildProfileID: profile.ID, Interest: interest}
			if err := database.Database.Db.Create(&row).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update interests!", nil)
			}
		}
	}

	if err := database.Database.Db.Preload("Interests").First(&profile, profile.ID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch updated profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Child profile updated successfully!", profile)
}

func DeleteChildProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	profileID := c.Locals("profileID").(int)

	var profile models.ChildProfile
	if err := database.Database.Db.First(&profile, profileID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Child profile not found!", nil)
	}

	if profile.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Unauthorized!", nil)
	}

	if err := database.Database.Db.Delete(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete child profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Child profile deleted successfully!", nil)
}

// UploadAvatar stores an avatar image for a child profile
func UploadAvatar(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	profileID := c.Locals("profileID").(int)

	var profile models.ChildProfile
	if err := database.Database.Db.First(&profile, profileID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Child profile not found!", nil)
	}

	if profile.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Unauthorized!", nil)
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Avatar file is required!", nil)
	}

	filePath, err := utils.SaveUploadedFile(file)
	if err != nil {
		log.Printf("Error saving avatar for profile %d: %v", profile.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save avatar!", nil)
	}

	profile.AvatarURL = utils.GetFileURL(filePath)
	if err := database.Database.Db.Save(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update avatar!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Avatar uploaded successfully!", profile)
}
