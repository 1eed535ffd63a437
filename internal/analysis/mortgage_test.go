// internal/analysis/mortgage_test.go
package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyMortgagePayment_ZeroRate(t *testing.T) {
	// Straight-line amortization, exact division.
	got := MonthlyMortgagePayment(240000, 0, 30)
	assert.Equal(t, 240000.0/360.0, got)

	got = MonthlyMortgagePayment(120000, 0, 10)
	assert.Equal(t, 1000.0, got)
}

func TestMonthlyMortgagePayment_StandardAnnuity(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		expected  float64
	}{
		{
			name:      "240k at 6 percent over 30 years",
			principal: 240000,
			rate:      6,
			years:     30,
			expected:  1438.92,
		},
		{
			name:      "300k at 6.8 percent over 30 years",
			principal: 300000,
			rate:      6.8,
			years:     30,
			expected:  1955.78,
		},
		{
			name:      "100k at 5 percent over 15 years",
			principal: 100000,
			rate:      5,
			years:     15,
			expected:  790.79,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyMortgagePayment(tt.principal, tt.rate, tt.years)
			assert.InDelta(t, tt.expected, got, 0.01)
		})
	}
}

func TestMonthlyMortgagePayment_ZeroPrincipal(t *testing.T) {
	assert.Equal(t, 0.0, MonthlyMortgagePayment(0, 6.5, 30))
	assert.Equal(t, 0.0, MonthlyMortgagePayment(0, 0, 30))
}
