// internal/models/filter.go
package models

// PropertyTypeAny is the filter selector that matches every listing type.
// It is only valid inside FilterCriteria, never on a property itself.
const PropertyTypeAny PropertyType = "Any"

// FilterCriteria narrows a page of listings. Zero values for Keywords and
// ZipCode disable their clauses; PropertyTypeAny disables the type clause.
type FilterCriteria struct {
	PriceMin     float64      `json:"priceMin"`
	PriceMax     float64      `json:"priceMax"`
	BedsMin      int          `json:"bedsMin"`
	BathsMin     float64      `json:"bathsMin"`
	PropertyType PropertyType `json:"propertyType"`
	Keywords     string       `json:"keywords"`
	ZipCode      string       `json:"zipCode"`
}

// DefaultFilters matches everything up to the stock price ceiling.
func DefaultFilters() FilterCriteria {
	return FilterCriteria{
		PriceMin:     0,
		PriceMax:     2000000,
		BedsMin:      0,
		BathsMin:     0,
		PropertyType: PropertyTypeAny,
		Keywords:     "",
		ZipCode:      "",
	}
}
