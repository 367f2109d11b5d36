package models

// Sortable columns accepted by list endpoints.
const (
	OrderByID    = "id"
	OrderByName  = "name"
	OrderByTitle = "title"
)

// MaxPage is the largest page number list endpoints accept. It keeps
// Offset well inside the bigint range of LIMIT/OFFSET.
const MaxPage = 1_000_000

// ListQuery is the validated, normalized form of a list request.
type ListQuery struct {
	// Search is a case-insensitive substring filter. Empty disables filtering.
	Search string
	// OrderBy is a whitelisted column name; results are sorted ascending.
	OrderBy string
	// Page is 1-based.
	Page int
	// PageSize is the number of rows per page.
	PageSize int
}

// Offset returns the number of rows skipped before the requested page.
// Pages above MaxPage are treated as MaxPage.
func (q ListQuery) Offset() uint64 {
	if q.Page < 1 || q.PageSize < 1 {
		return 0
	}
	page := min(q.Page, MaxPage)
	return uint64(page-1) * uint64(q.PageSize)
}

// Limit returns the page size as the unsigned value query builders expect.
func (q ListQuery) Limit() uint64 {
	if q.PageSize < 0 {
		return 0
	}
	return uint64(q.PageSize)
}
