package readingListController

import (
	"time"

	"wrwk/database"
	"wrwk/middleware"
	"wrwk/models"

	"github.com/gofiber/fiber/v2"
)

// ItemWithBook is a reading list entry together with its book details
type ItemWithBook struct {
	models.ReadingListItem
	Book models.Book `json:"book"`
}

func GetReadingList(c *fiber.Ctx) error {
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

	var items []models.ReadingListItem
	if err := database.Database.Db.Where("child_profile_id = ?", profileID).Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reading list!", nil)
	}

	// Attach book details to each item
	result := make([]ItemWithBook, 0, len(items))
	for _, item := range items {
		var book models.Book
		if err := database.Database.Db.Preload("Tags").First(&book, item.BookID).Error; err != nil {
			continue
		}
		result = append(result, ItemWithBook{ReadingListItem: item, Book: book})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reading list fetched successfully!", result)
}

func AddToReadingList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedReadingListItem").(*struct {
		ChildProfileID uint   `json:"child_profile_id"`
		BookID         uint   `json:"book_id"`
		Status         string `json:"status"`
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

	// Verify book exists
	var book models.Book
	if err := database.Database.Db.Preload("Tags").First(&book, reqData.BookID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Book not found!", nil)
	}

	// Check if book is already in the reading list
	var existing models.ReadingListItem
	if err := database.Database.Db.Where("child_profile_id = ? AND book_id = ?", reqData.ChildProfileID, reqData.BookID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Book already in reading list!", nil)
	}

	status := reqData.Status
	if status == "" {
		status = models.ReadingStatusToRead
	}

	item := models.ReadingListItem{
		ChildProfileID: reqData.ChildProfileID,
		BookID:         reqData.BookID,
		Status:         status,
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add book to reading list!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Book added to reading list!", ItemWithBook{ReadingListItem: item, Book: book})
}

func UpdateReadingListItem(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	itemID := c.Locals("itemID").(int)

	var item models.ReadingListItem
	if err := database.Database.Db.First(&item, itemID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reading list item not found!", nil)
	}

	// Verify ownership through the profile
	var profile models.ChildProfile
	if err := database.Database.Db.First(&profile, item.ChildProfileID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Child profile not found!", nil)
	}
	if profile.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedReadingListUpdate").(*struct {
		Status             *string `json:"status"`
		ProgressPercentage *int    `json:"progress_percentage"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Status != nil {
		item.Status = *reqData.Status

		// Completing a book stamps the completion time
		if *reqData.Status == models.ReadingStatusCompleted {
			now := time.Now()
			item.CompletedAt = &now
		}
	}
	if reqData.ProgressPercentage != nil {
		item.ProgressPercentage = *reqData.ProgressPercentage
	}

	if err := database.Database.Db.Save(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update reading list item!", nil)
	}

	var book models.Book
	if err := database.Database.Db.Preload("Tags").First(&book, item.BookID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch book details!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reading list item updated!", ItemWithBook{ReadingListItem: item, Book: book})
}

func RemoveFromReadingList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	itemID := c.Locals("itemID").(int)

	var item models.ReadingListItem
	if err := database.Database.Db.First(&item, itemID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reading list item not found!", nil)
	}

	var profile models.ChildProfile
	if err := database.Database.Db.First(&profile, item.ChildProfileID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Child profile not found!", nil)
	}
	if profile.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Unauthorized!", nil)
	}

	if err := database.Database.Db.Delete(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove item from reading list!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item removed from reading list!", nil)
}
