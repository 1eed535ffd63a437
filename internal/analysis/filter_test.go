// internal/analysis/filter_test.go
package analysis

import (
	"testing"

	"deal-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
)

func matchAllCriteria() models.FilterCriteria {
	f := models.DefaultFilters()
	f.PriceMin = 100000
	f.PriceMax = 500000
	f.BedsMin = 2
	f.BathsMin = 1
	f.PropertyType = models.PropertyTypeSingleFamily
	f.Keywords = "austin"
	f.ZipCode = "787"
	return f
}

func TestMatchesFilter_AllClausesPass(t *testing.T) {
	assert.True(t, MatchesFilter(testProperty(), matchAllCriteria()))
}

func TestMatchesFilter_DefaultsMatchEverything(t *testing.T) {
	assert.True(t, MatchesFilter(testProperty(), models.DefaultFilters()))
}

// Flipping any single clause must flip the whole predicate to false.
func TestMatchesFilter_SingleClauseFailure(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.FilterCriteria)
	}{
		{name: "price below min", mutate: func(f *models.FilterCriteria) { f.PriceMin = 300001 }},
		{name: "price above max", mutate: func(f *models.FilterCriteria) { f.PriceMax = 299999 }},
		{name: "too few bedrooms", mutate: func(f *models.FilterCriteria) { f.BedsMin = 4 }},
		{name: "too few bathrooms", mutate: func(f *models.FilterCriteria) { f.BathsMin = 2.5 }},
		{name: "wrong type", mutate: func(f *models.FilterCriteria) { f.PropertyType = models.PropertyTypeCondo }},
		{name: "keyword not present", mutate: func(f *models.FilterCriteria) { f.Keywords = "waterfront" }},
		{name: "zip mismatch", mutate: func(f *models.FilterCriteria) { f.ZipCode = "90210" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := matchAllCriteria()
			tt.mutate(&f)
			assert.False(t, MatchesFilter(testProperty(), f))
		})
	}
}

func TestMatchesFilter_PriceBoundsInclusive(t *testing.T) {
	f := models.DefaultFilters()
	f.PriceMin = 300000
	f.PriceMax = 300000
	assert.True(t, MatchesFilter(testProperty(), f))
}

func TestMatchesFilter_KeywordMatchesCity(t *testing.T) {
	p := testProperty()
	p.Details.Description = "No mention of the location here."

	f := models.DefaultFilters()
	f.Keywords = "AUSTIN"
	assert.True(t, MatchesFilter(p, f))
}

func TestMatchesFilter_ZipSubstring(t *testing.T) {
	f := models.DefaultFilters()
	f.ZipCode = "87"
	// "78701" contains "87"
	assert.True(t, MatchesFilter(testProperty(), f))
}
