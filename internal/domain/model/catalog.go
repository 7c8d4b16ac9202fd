package model

// DefaultPhotoPath is stored for catalog entries created without a file path.
const DefaultPhotoPath = "path/to/placeholder.png"

// DefaultPageSize bounds a page when only a cursor is supplied.
const DefaultPageSize int64 = 20

// CatalogItem describes a photo that can be ordered as a print.
type CatalogItem struct {
	ID       int64
	Title    *string
	Location *string
	Year     *int
	Path     string
}

// PageQuery carries optional keyset pagination parameters.
type PageQuery struct {
	PageSize  *int64
	LastToken *int64
}

// Page is a slice of the catalog plus the cursor for the next request.
// LastToken is nil when the page is empty.
type Page struct {
	Count     int
	LastToken *int64
	Results   []CatalogItem
}
