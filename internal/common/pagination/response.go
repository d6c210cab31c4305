package pagination

// Response is a generic paginated response wrapper.
// T is the type of data items (e.g., article.DTO).
type Response[T any] struct {
	Success    bool     `json:"success"`
	Data       []T      `json:"data"`       // Array of data items for the current page
	Pagination Metadata `json:"pagination"` // Pagination metadata (total, page, limit, etc.)
}

// NewResponse creates a new paginated response with data and metadata.
// This is a convenience constructor for creating Response[T] instances.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	return Response[T]{
		Success:    true,
		Data:       data,
		Pagination: metadata,
	}
}
