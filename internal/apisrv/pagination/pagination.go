// Package pagination computes deterministic windows over tenant-scoped
// collections. The stores own the ordering contract (created_at descending,
// id descending as tiebreak); this package owns the windowing arithmetic.
package pagination

type Page struct {
	Limit  int
	Offset int
}

// Window returns items[offset : offset+limit] without mutating the input.
// An offset beyond the collection yields an empty slice; a limit overrunning
// the remainder yields the remainder.
func Window[T any](items []T, page Page) []T {
	if page.Offset < 0 || page.Limit < 0 {
		return []T{}
	}
	if page.Offset >= len(items) {
		return []T{}
	}
	end := page.Offset + page.Limit
	if page.Limit == 0 || end > len(items) {
		end = len(items)
	}
	return items[page.Offset:end]
}
