package listing

// maxPaginationButtons is the widest page-number window shown at once.
const maxPaginationButtons = 5

// CurrentPage derives the 1-based page number from an offset.
func CurrentPage(offset, limit int) int {
	if limit <= 0 || offset <= 0 {
		return 1
	}
	return offset/limit + 1
}

// TotalPages returns ceil(totalCount/limit).
func TotalPages(totalCount, limit int) int {
	if limit <= 0 || totalCount <= 0 {
		return 0
	}
	return (totalCount + limit - 1) / limit
}

// Window returns the page numbers to display: at most five buttons centered
// on the current page, clamped so the window never leaves [1, totalPages].
func Window(offset, limit, totalCount int) []int {
	totalPages := TotalPages(totalCount, limit)
	if totalPages == 0 {
		return nil
	}
	current := CurrentPage(offset, limit)
	first := current - (maxPaginationButtons-1)/2
	if last := totalPages - maxPaginationButtons + 1; first > last {
		first = last
	}
	if first < 1 {
		first = 1
	}
	size := totalPages
	if size > maxPaginationButtons {
		size = maxPaginationButtons
	}
	pages := make([]int, size)
	for i := range pages {
		pages[i] = first + i
	}
	return pages
}

// HasPrev reports whether a previous page exists.
func HasPrev(offset, limit int) bool {
	return CurrentPage(offset, limit) > 1
}

// HasNext reports whether a next page exists.
func HasNext(offset, limit, totalCount int) bool {
	return CurrentPage(offset, limit) < TotalPages(totalCount, limit)
}
