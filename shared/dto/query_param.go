package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams controls ordering and paging of list queries. Zero Page and Limit
// return every row.
type QueryParams struct {
	Page    int
	Limit   int
	SortBy  string
	SortDir string
}
