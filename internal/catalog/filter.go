// Package catalog holds the view-model side of the application: the
// book-list browser, the detail and account loaders, and the pure
// filtering that the list view applies to fetched books.
package catalog

import (
	"strings"

	"github.com/bookbuddy/library-client/internal/model"
)

// Filter returns the books whose title or author contains query
// (case-insensitive), intersected with the availability predicate.
// Both predicates are independent, so applying them in either order or
// repeatedly yields the same set.
func Filter(books []model.Book, query string, availableOnly bool) []model.Book {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if availableOnly && !b.Available {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(b.Title), q) &&
			!strings.Contains(strings.ToLower(b.Author), q) {
			continue
		}
		out = append(out, b)
	}
	return out
}
