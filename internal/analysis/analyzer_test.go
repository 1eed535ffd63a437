// internal/analysis/analyzer_test.go
package analysis

import (
	"testing"

	"deal-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func testProperty() models.Property {
	return models.Property{
		ID: "prop-test-1",
		Address: models.Address{
			Street:  "123 Maple St",
			City:    "Austin",
			State:   "TX",
			ZipCode: "78701",
			Lat:     30.2672,
			Lng:     -97.7431,
		},
		Price: 300000,
		Specs: models.Specs{
			Bedrooms:  3,
			Bathrooms: 2,
			Sqft:      1800,
			LotSize:   7200,
			YearBuilt: 1995,
			Type:      models.PropertyTypeSingleFamily,
		},
		Financials: models.Financials{
			HOAMonthly:        0,
			PropertyTaxAnnual: 3600,
			RentEstimate:      2500,
		},
		Details: models.Details{
			Description:  "Beautiful single family home near downtown Austin with a renovated kitchen.",
			DaysOnMarket: 14,
			Source:       "simulated",
		},
	}
}

func testAssumptions() models.InvestmentAssumptions {
	return models.InvestmentAssumptions{
		DownPaymentPercent:   20,
		InterestRate:         6,
		LoanTermYears:        30,
		ClosingCostsPercent:  3,
		VacancyRatePercent:   5,
		ManagementFeePercent: 10,
		MaintenancePercent:   1,
		InsuranceAnnual:      1200,
		AppreciationRate:     3,
	}
}

// ==========================
// Core Scenario
// ==========================

func TestAnalyze_StandardScenario(t *testing.T) {
	result := Analyze(testProperty(), testAssumptions())

	// Cash required: 20% down + 3% closing on $300k.
	assert.InDelta(t, 69000, result.Metrics.TotalCashNeeded, 1e-9)

	// Loan is $240k at 6% over 30 years.
	assert.InDelta(t, 1438.92, result.MonthlyExpenses.Mortgage, 0.01)

	assert.InDelta(t, 2500, result.MonthlyIncome, 1e-9)
	assert.InDelta(t, 300, result.MonthlyExpenses.Tax, 1e-9)
	assert.InDelta(t, 100, result.MonthlyExpenses.Insurance, 1e-9)
	assert.InDelta(t, 0, result.MonthlyExpenses.HOA, 1e-9)
	assert.InDelta(t, 125, result.MonthlyExpenses.Vacancy, 1e-9)
	assert.InDelta(t, 250, result.MonthlyExpenses.Maintenance, 1e-9)
	assert.InDelta(t, 250, result.MonthlyExpenses.Management, 1e-9)

	// NOI excludes debt service: 30000 - 12*1025 = 17700.
	assert.InDelta(t, 5.9, result.Metrics.CapRate, 1e-9)
	assert.InDelta(t, 10, result.Metrics.GRM, 1e-9)
	assert.InDelta(t, 1.0251, result.Metrics.DSCR, 0.001)

	assert.Equal(t, models.DealScorePoor, result.Score)
}

func TestAnalyze_ExpenseTotalIsSumOfComponents(t *testing.T) {
	result := Analyze(testProperty(), testAssumptions())

	e := result.MonthlyExpenses
	sum := e.Mortgage + e.Tax + e.Insurance + e.HOA + e.Vacancy + e.Maintenance + e.Management
	assert.InDelta(t, sum, e.Total, 1e-9)
}

func TestAnalyze_CashFlowIdentities(t *testing.T) {
	result := Analyze(testProperty(), testAssumptions())

	assert.InDelta(t, result.MonthlyIncome-result.MonthlyExpenses.Total, result.CashFlow.Monthly, 1e-9)
	assert.InDelta(t, result.CashFlow.Monthly*12, result.CashFlow.Annual, 1e-9)
	assert.InDelta(t, result.CashFlow.Annual/result.Metrics.TotalCashNeeded*100, result.Metrics.CashOnCash, 1e-9)
}

// ==========================
// Projections
// ==========================

func TestAnalyze_Projections(t *testing.T) {
	result := Analyze(testProperty(), testAssumptions())

	// appreciation 9000 + first-year principal (17267.06 - 14400) + cash
	// flow 432.94 = 12300 total first-year return on 69000 invested.
	assert.InDelta(t, 17.826, result.Projections.Year1TotalROI, 0.01)

	// Linear extrapolation, exactly.
	assert.InDelta(t, result.Projections.Year1TotalROI*5, result.Projections.Year5TotalROI, 1e-9)
	assert.InDelta(t, result.Projections.Year1TotalROI*10, result.Projections.Year10TotalROI, 1e-9)
}

func TestAnalyze_ZeroRateUsesStraightLinePaydown(t *testing.T) {
	a := testAssumptions()
	a.InterestRate = 0

	result := Analyze(testProperty(), a)

	// With no interest the whole payment is principal.
	assert.InDelta(t, 240000.0/360.0, result.MonthlyExpenses.Mortgage, 1e-9)
}

// ==========================
// Degenerate Inputs
// ==========================

func TestAnalyze_ZeroRent(t *testing.T) {
	p := testProperty()
	p.Financials.RentEstimate = 0

	result := Analyze(p, testAssumptions())

	assert.Equal(t, 0.0, result.Metrics.GRM)
	assert.Equal(t, 0.0, result.MonthlyExpenses.Vacancy)
	assert.Equal(t, 0.0, result.MonthlyExpenses.Management)
	assert.Less(t, result.CashFlow.Monthly, 0.0)
}

func TestAnalyze_AllCashPurchase(t *testing.T) {
	a := testAssumptions()
	a.DownPaymentPercent = 100

	result := Analyze(testProperty(), a)

	// No loan, no debt service, DSCR guarded to zero.
	assert.Equal(t, 0.0, result.MonthlyExpenses.Mortgage)
	assert.Equal(t, 0.0, result.Metrics.DSCR)
	assert.InDelta(t, 309000, result.Metrics.TotalCashNeeded, 1e-9)
}

func TestAnalyze_DoesNotMutateInputs(t *testing.T) {
	p := testProperty()
	a := testAssumptions()

	_ = Analyze(p, a)

	assert.Equal(t, testProperty(), p)
	assert.Equal(t, testAssumptions(), a)
}
