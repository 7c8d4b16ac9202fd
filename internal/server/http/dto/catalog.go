package dto

import "github.com/polkiloo/photocatalog/internal/domain/model"

// CatalogItemResponse describes a single catalog entry.
type CatalogItemResponse struct {
	ID       int64   `json:"id"`
	Title    *string `json:"title"`
	Location *string `json:"location"`
	Year     *int    `json:"year"`
	Path     string  `json:"path"`
}

// PageResponse describes one catalog page. LastToken is null for an empty page.
type PageResponse struct {
	Count     int                   `json:"count"`
	LastToken *int64                `json:"last_token"`
	Results   []CatalogItemResponse `json:"results"`
}

// NewPageResponse converts a domain page.
func NewPageResponse(page *model.Page) PageResponse {
	results := make([]CatalogItemResponse, 0, len(page.Results))
	for _, item := range page.Results {
		results = append(results, CatalogItemResponse{
			ID:       item.ID,
			Title:    item.Title,
			Location: item.Location,
			Year:     item.Year,
			Path:     item.Path,
		})
	}
	return PageResponse{Count: page.Count, LastToken: page.LastToken, Results: results}
}
