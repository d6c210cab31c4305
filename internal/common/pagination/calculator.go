package pagination

// CalculateOffset calculates the slice offset based on page number and limit.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * limit
//
// Examples:
//   - Page 1, Limit 10 -> Offset 0
//   - Page 2, Limit 10 -> Offset 10
//   - Page 3, Limit 5  -> Offset 10
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages calculates the total number of pages based on total items and limit.
// Uses ceiling division to ensure all items are included.
//
// Special cases:
//   - If total is 0, returns 1 (always at least 1 page)
//   - If total < limit, returns 1
//   - Otherwise, returns ceil(total / limit)
//
// Examples:
//   - Total 0, Limit 10  -> 1 page
//   - Total 3, Limit 10  -> 1 page
//   - Total 10, Limit 10 -> 1 page
//   - Total 11, Limit 10 -> 2 pages
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 {
		return 1 // Always at least 1 page
	}
	// Ceiling division: (total + limit - 1) / limit
	return int((total + int64(limit) - 1) / int64(limit))
}

// ClampPage clamps a requested page number into [1, totalPages].
// This is the single clamping point of the pagination flow: a page beyond the
// last one silently falls back to the last page, a page below 1 falls back to
// page 1. The clamped value is what responses report back to the client.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
