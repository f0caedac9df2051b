// Package store holds the entity query services. Each store wraps the shared
// *gorm.DB handle it was constructed with; input validation happens before any
// statement is issued.
package store

import (
	"strconv"
)

// parseID validates that a path identifier is a well-formed integer before it
// gets anywhere near a statement. Negative ids parse fine; they simply match no
// row and resolve as not found.
func parseID(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
