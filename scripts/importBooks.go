package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"
	"wrwk/config"
	"wrwk/database"
	"wrwk/models"
	"wrwk/utils"
)

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("BookCatalog.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%100 == 0 {
			log.Printf("Processing row %d...", i+1)
		}

		// Parse fields from CSV
		book := models.Book{
			Title:              getField(row, headerIndex, "title"),
			Author:             getField(row, headerIndex, "author"),
			Description:        getField(row, headerIndex, "description"),
			AgeRange:           getField(row, headerIndex, "ageRange"),
			Genre:              getField(row, headerIndex, "genre"),
			CoverImageURL:      getField(row, headerIndex, "coverImageUrl"),
			ContentURL:         getField(row, headerIndex, "contentUrl"),
			IsInteractive:      parseBool(getField(row, headerIndex, "isInteractive")),
			ReadingTimeMinutes: parseInt(getField(row, headerIndex, "readingTime")),
			Rating:             parseFloat(getField(row, headerIndex, "rating")),
			ReviewsCount:       parseInt(getField(row, headerIndex, "reviewsCount")),
		}

		// Skip if no title or author
		if book.Title == "" || book.Author == "" {
			skipped++
			continue
		}

		// Look up a cover on Open Library when the CSV has none
		if book.CoverImageURL == "" {
			coverURL, err := utils.FetchBookCoverURL(book.Title, book.Author)
			if err != nil {
				log.Printf("Cover lookup failed for %q: %v", book.Title, err)
			} else {
				book.CoverImageURL = coverURL
			}
		}

		// Tags come as a semicolon-separated list
		for _, tag := range strings.Split(getField(row, headerIndex, "tags"), ";") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				book.Tags = append(book.Tags, models.BookTag{Tag: tag})
			}
		}

		// Check if the book exists by title and author
		var existing models.Book
		result := database.Database.Db.Where("title = ? AND author = ?", book.Title, book.Author).First(&existing)

		if result.Error != nil {
			// Insert new book
			if err := database.Database.Db.Create(&book).Error; err != nil {
				log.Printf("Error inserting book %q by %s: %v", book.Title, book.Author, err)
				continue
			}
			inserted++
		} else {
			// Update existing book
			existing.Description = book.Description
			existing.AgeRange = book.AgeRange
			existing.Genre = book.Genre
			if book.CoverImageURL != "" {
				existing.CoverImageURL = book.CoverImageURL
			}
			existing.ContentURL = book.ContentURL
			existing.IsInteractive = book.IsInteractive
			existing.ReadingTimeMinutes = book.ReadingTimeMinutes
			existing.Rating = book.Rating
			existing.ReviewsCount = book.ReviewsCount

			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating book %q by %s: %v", book.Title, book.Author, err)
				continue
			}
			updated++
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+updated+skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseInt converts string to int
func parseInt(s string) int {
	if s == "" {
		return 0
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return val
}

// parseFloat converts string to float64
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val
}

// parseBool converts string to bool
func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return true
	}
	return false
}
