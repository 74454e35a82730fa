package dto

type Filter struct {
	Limit int `query:"limit"`
	Page  int `query:"page"`
}

// Paginated reports whether both limit and page were supplied.
func (f Filter) Paginated() bool {
	return f.Limit > 0 && f.Page > 0
}

func (f Filter) Offset() int {
	if !f.Paginated() {
		return 0
	}

	return (f.Page - 1) * f.Limit
}
