package utils

import "math/rand/v2"

const (
	DefaultPage     = 1
	DefaultPageSize = 3
)

// ParsePageQuery reads the page and size query values by their leading
// digits, so "2abc" is page 2. Missing, malformed or sub-one values fall back
// to the defaults.
func ParsePageQuery(pageRaw, sizeRaw string) (page, size int) {
	page = ParseLeadingInt(pageRaw)
	if page < 1 {
		page = DefaultPage
	}
	size = ParseLeadingInt(sizeRaw)
	if size < 1 {
		size = DefaultPageSize
	}
	return page, size
}

// Paginate returns the window [(page-1)*size, (page-1)*size+size) of items.
// Windows starting past the end are empty, never nil.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultPageSize
	}

	if page-1 > len(items)/size {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))

	return items[start:end]
}

// SampleOne picks one element uniformly at random. ok is false for an empty slice.
func SampleOne[T any](items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[rand.IntN(len(items))], true
}
