package resourceController

import (
	"wrwk/database"
	"wrwk/middleware"
	"wrwk/models"

	"github.com/gofiber/fiber/v2"
)

func GetResources(c *fiber.Ctx) error {
	resourceType := c.Query("type")
	category := c.Query("category")
	ageRange := c.Query("age_range")

	db := database.Database.Db.Model(&models.Resource{})

	if resourceType != "" {
		db = db.Where("type = ?", resourceType)
	}
	if category != "" {
		db = db.Where("category = ?", category)
	}
	if ageRange != "" {
		db = db.Where("age_range = ?", ageRange)
	}

	var resources []models.Resource
	if err := db.Find(&resources).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resources!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully!", resources)
}

func GetResource(c *fiber.Ctx) error {
	resourceID := c.Locals("resourceID").(int)

	var resource models.Resource
	if err := database.Database.Db.First(&resource, resourceID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource fetched successfully!", resource)
}

// CreateResource adds a new parent/educator resource. Admin only.
func CreateResource(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResource").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Type         string `json:"type"`
		Category     string `json:"category"`
		AgeRange     string `json:"age_range"`
		FileURL      string `json:"file_url"`
		ThumbnailURL string `json:"thumbnail_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	resource := models.Resource{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Type:         reqData.Type,
		Category:     reqData.Category,
		AgeRange:     reqData.AgeRange,
		FileURL:      reqData.FileURL,
		ThumbnailURL: reqData.ThumbnailURL,
	}

	if err := database.Database.Db.Create(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource created successfully!", resource)
}
