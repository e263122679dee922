package catalog

// SearchRequest mirrors the search form: all three fields are required,
// but radius is not applied as a geometric filter (known incompleteness
// of the search feature, deliberately preserved).
type SearchRequest struct {
	Location string `json:"location" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Radius   string `json:"radius" validate:"required"`
}
