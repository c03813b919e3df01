package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"wrwk/config"

	"github.com/go-resty/resty/v2"
)

// openLibraryResponse is the slice of the search payload we care about
type openLibraryResponse struct {
	NumFound int `json:"numFound"`
	Docs     []struct {
		Title   string `json:"title"`
		CoverID int    `json:"cover_i"`
	} `json:"docs"`
}

// FetchBookCoverURL looks a title/author pair up on Open Library and returns
// a cover image URL, or an empty string when no cover is available.
func FetchBookCoverURL(title, author string) (string, error) {
	client := resty.New()
	resp, err := client.R().
		SetQueryParams(map[string]string{
			"title":  title,
			"author": author,
			"limit":  "1",
		}).
		Get(config.AppConfig.OpenLibraryURL)
	if err != nil {
		return "", fmt.Errorf("failed to query Open Library: %v", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("Open Library returned status %d", resp.StatusCode())
	}

	var result openLibraryResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse Open Library response: %v", err)
	}

	if result.NumFound == 0 || len(result.Docs) == 0 || result.Docs[0].CoverID == 0 {
		log.Printf("No cover found on Open Library for %q by %s", title, author)
		return "", nil
	}

	return fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-L.jpg", result.Docs[0].CoverID), nil
}
