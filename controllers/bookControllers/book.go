package bookController

import (
	"strconv"

	"wrwk/database"
	"wrwk/middleware"
	"wrwk/models"

	"github.com/gofiber/fiber/v2"
)

func GetBooks(c *fiber.Ctx) error {
	// Parse query parameters
	ageRange := c.Query("age_range")
	genre := c.Query("genre")
	searchQuery := c.Query("query")
	interactiveOnly := c.Query("interactive") == "true"

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	// Build query
	db := database.Database.Db.Model(&models.Book{}).Preload("Tags")

	if ageRange != "" {
		db = db.Where("age_range = ?", ageRange)
	}
	if genre != "" {
		db = db.Where("genre = ?", genre)
	}
	if interactiveOnly {
		db = db.Where("is_interactive = ?", true)
	}
	if searchQuery != "" {
		pattern := "%" + searchQuery + "%"
		db = db.Where("title ILIKE ? OR author ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}

	var books []models.Book
	if err := db.Limit(limit).Find(&books).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch books!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Books fetched successfully!", books)
}

func GetFeaturedBooks(c *fiber.Ctx) error {
	// Featured books are the top rated ones
	var books []models.Book
	if err := database.Database.Db.Preload("Tags").Order("rating desc").Limit(4).Find(&books).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch featured books!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Featured books fetched successfully!", books)
}

func GetBook(c *fiber.Ctx) error {
	bookID := c.Locals("bookID").(int)

	var book models.Book
	if err := database.Database.Db.Preload("Tags").First(&book, bookID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Book fetched successfully!", book)
}

// CreateBook adds a catalog entry. Admin only.
func CreateBook(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBook").(*struct {
		Title              string   `json:"title"`
		Author             string   `json:"author"`
		Description        string   `json:"description"`
		AgeRange           string   `json:"age_range"`
		Genre              string   `json:"genre"`
		CoverImageURL      string   `json:"cover_image_url"`
		ContentURL         string   `json:"content_url"`
		IsInteractive      bool     `json:"is_interactive"`
		ReadingTimeMinutes int      `json:"reading_time_minutes"`
		Tags               []string `json:"tags"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	book := models.Book{
		Title:              reqData.Title,
		Author:             reqData.Author,
		Description:        reqData.Description,
		AgeRange:           reqData.AgeRange,
		Genre:              reqData.Genre,
		CoverImageURL:      reqData.CoverImageURL,
		ContentURL:         reqData.ContentURL,
		IsInteractive:      reqData.IsInteractive,
		ReadingTimeMinutes: reqData.ReadingTimeMinutes,
	}
	for _, tag := range reqData.Tags {
		book.Tags = append(book.Tags, models.BookTag{Tag: tag})
	}

	if err := database.Database.Db.Create(&book).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create book!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Book created successfully!", book)
}
