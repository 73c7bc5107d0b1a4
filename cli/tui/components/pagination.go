package components

import (
	"strconv"
	"strings"

	"github.com/nutriveg/nutriveg-cli/cli/listing"
)

// Pagination renders the page-button footer for a collection view: a prev
// arrow, up to five page numbers around the current one, and a next arrow.
func Pagination(offset, limit, totalCount int) string {
	totalPages := listing.TotalPages(totalCount, limit)
	if totalPages <= 1 {
		return ""
	}
	current := listing.CurrentPage(offset, limit)
	var b strings.Builder
	if listing.HasPrev(offset, limit) {
		b.WriteString(ArrowStyle.Render("‹"))
	} else {
		b.WriteString(DisabledArrowStyle.Render("‹"))
	}
	for _, n := range listing.Window(offset, limit, totalCount) {
		label := strconv.Itoa(n)
		if n == current {
			b.WriteString(SelectedPageStyle.Render(label))
		} else {
			b.WriteString(PageStyle.Render(label))
		}
	}
	if listing.HasNext(offset, limit, totalCount) {
		b.WriteString(ArrowStyle.Render("›"))
	} else {
		b.WriteString(DisabledArrowStyle.Render("›"))
	}
	return b.String()
}
