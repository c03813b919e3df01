package bookValidator

import (
	"strconv"
	"strings"

	"wrwk/middleware"

	"github.com/gofiber/fiber/v2"
)

// BookID validates the :id route param
func BookID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Book ID is required!", nil)
		}

		bookID, err := strconv.Atoi(idStr)
		if err != nil || bookID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Book ID!", nil)
		}

		c.Locals("bookID", bookID)
		return c.Next()
	}
}

// CreateBook validator middleware
func CreateBook() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
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
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Author) == "" {
			errors["author"] = "Author is required!"
		}
		if strings.TrimSpace(reqData.AgeRange) == "" {
			errors["age_range"] = "Age range is required!"
		}
		if strings.TrimSpace(reqData.Genre) == "" {
			errors["genre"] = "Genre is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBook", reqData)
		return c.Next()
	}
}
