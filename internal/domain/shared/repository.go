package shared

const (
	defaultPageSize = 20
	defaultOrderBy  = "created_at"
	defaultOrderDir = "desc"
)

// Filter is the paging, ordering and search input of every list query. Filters holds
// resource-specific equality filters keyed by column.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]any
}

// DefaultFilter returns the first page, newest first
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: defaultPageSize,
		OrderBy:  defaultOrderBy,
		OrderDir: defaultOrderDir,
		Filters:  make(map[string]any),
	}
}

// NewFilter builds a filter from query parameters; zero values fall back to DefaultFilter
func NewFilter(page, pageSize int, orderBy, orderDir, search string) Filter {
	f := DefaultFilter()
	if page > 0 {
		f.Page = page
	}
	if pageSize > 0 {
		f.PageSize = pageSize
	}
	if orderBy != "" {
		f.OrderBy = orderBy
	}
	if orderDir != "" {
		f.OrderDir = orderDir
	}
	f.Search = search
	return f
}

// Offset returns the row offset of the filter's page
func (f Filter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}
