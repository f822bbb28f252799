package models

type SortBy string

const (
	SortByDate        SortBy = "date"
	SortByName        SortBy = "name"
	SortByPrice       SortBy = "price"
	SortByLastUpdated SortBy = "lastUpdated"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type FilterState struct {
	SearchQuery   string        `json:"search_query"`
	SortBy        SortBy        `json:"sort_by"`
	SortDirection SortDirection `json:"sort_direction"`
}

func ValidSortBy(s SortBy) bool {
	switch s {
	case SortByDate, SortByName, SortByPrice, SortByLastUpdated:
		return true
	}
	return false
}

func ValidSortDirection(d SortDirection) bool {
	return d == SortAsc || d == SortDesc
}
