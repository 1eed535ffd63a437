// internal/analysis/expenses_test.go
package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyExpenses_ComponentValues(t *testing.T) {
	p := testProperty()
	p.Financials.HOAMonthly = 350
	a := testAssumptions()

	e := monthlyExpenses(p, 240000, a)

	assert.InDelta(t, 1438.92, e.Mortgage, 0.01)
	assert.InDelta(t, 3600.0/12, e.Tax, 1e-9)
	assert.InDelta(t, 1200.0/12, e.Insurance, 1e-9)
	assert.InDelta(t, 350, e.HOA, 1e-9) // straight pass-through
	assert.InDelta(t, 2500*0.05, e.Vacancy, 1e-9)
	assert.InDelta(t, 300000*0.01/12, e.Maintenance, 1e-9)
	assert.InDelta(t, 2500*0.10, e.Management, 1e-9)
}

func TestMonthlyExpenses_TotalIsSum(t *testing.T) {
	tests := []struct {
		name string
		loan float64
		rent float64
		hoa  float64
	}{
		{name: "financed with hoa", loan: 240000, rent: 2500, hoa: 420},
		{name: "all cash", loan: 0, rent: 1800, hoa: 0},
		{name: "no rent estimate", loan: 150000, rent: 0, hoa: 125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProperty()
			p.Financials.RentEstimate = tt.rent
			p.Financials.HOAMonthly = tt.hoa

			e := monthlyExpenses(p, tt.loan, testAssumptions())

			sum := e.Mortgage + e.Tax + e.Insurance + e.HOA + e.Vacancy + e.Maintenance + e.Management
			assert.InDelta(t, sum, e.Total, 1e-9)
		})
	}
}

func TestMonthlyExpenses_NonNegativeForNonNegativeInputs(t *testing.T) {
	e := monthlyExpenses(testProperty(), 240000, testAssumptions())

	for name, v := range map[string]float64{
		"mortgage":    e.Mortgage,
		"tax":         e.Tax,
		"insurance":   e.Insurance,
		"hoa":         e.HOA,
		"vacancy":     e.Vacancy,
		"maintenance": e.Maintenance,
		"management":  e.Management,
		"total":       e.Total,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
	}
}

func TestMonthlyExpenses_InsuranceIsFlatDefault(t *testing.T) {
	cheap := testProperty()
	cheap.Price = 90000
	expensive := testProperty()
	expensive.Price = 900000

	a := testAssumptions()

	// Same annual default regardless of the property.
	assert.Equal(t, monthlyExpenses(cheap, 0, a).Insurance, monthlyExpenses(expensive, 0, a).Insurance)
}
