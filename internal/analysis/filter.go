// internal/analysis/filter.go
package analysis

import (
	"strings"

	"deal-analyzer/internal/models"
)

// MatchesFilter reports whether a property satisfies every clause of the
// criteria. Price bounds are inclusive; keyword matching is
// case-insensitive against the description and city; the zip clause is a
// substring match so partial zip entry works.
func MatchesFilter(p models.Property, f models.FilterCriteria) bool {
	if p.Price < f.PriceMin || p.Price > f.PriceMax {
		return false
	}
	if p.Specs.Bedrooms < f.BedsMin {
		return false
	}
	if p.Specs.Bathrooms < f.BathsMin {
		return false
	}
	if f.PropertyType != models.PropertyTypeAny && p.Specs.Type != f.PropertyType {
		return false
	}
	if f.Keywords != "" {
		kw := strings.ToLower(f.Keywords)
		if !strings.Contains(strings.ToLower(p.Details.Description), kw) &&
			!strings.Contains(strings.ToLower(p.Address.City), kw) {
			return false
		}
	}
	if f.ZipCode != "" && !strings.Contains(p.Address.ZipCode, f.ZipCode) {
		return false
	}
	return true
}
