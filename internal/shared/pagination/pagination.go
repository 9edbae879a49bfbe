// Package pagination holds the offset/limit paging parameters shared by list endpoints.
package pagination

const (
	// DefaultLimit is the page size used when a caller does not supply one.
	DefaultLimit = 100
)

// Query is the query-string shape of a paged list request (?skip=&limit=).
type Query struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=100" binding:"min=0"`
}

// Normalize clamps negative values: skip falls back to 0 and limit to DefaultLimit.
// A limit of 0 is kept and yields an empty page.
func Normalize(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = DefaultLimit
	}
	return skip, limit
}
