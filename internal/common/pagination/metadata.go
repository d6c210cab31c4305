package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Page       int   `json:"page"`       // Current page number (1-based, after clamping)
	Limit      int   `json:"limit"`      // Items per page
	Total      int64 `json:"total"`      // Total number of items across all pages
	TotalPages int   `json:"totalPages"` // Calculated total number of pages
}
