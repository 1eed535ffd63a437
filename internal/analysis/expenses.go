// internal/analysis/expenses.go
package analysis

import "deal-analyzer/internal/models"

// monthlyExpenses builds the seven-component monthly cost breakdown for a
// property financed with the given loan amount.
//
// Insurance uses the flat annual default from the assumptions for every
// property; per-property insurance quotes are a known simplification of
// this engine, not a bug.
func monthlyExpenses(p models.Property, loanAmount float64, a models.InvestmentAssumptions) models.MonthlyExpenses {
	rent := p.Financials.RentEstimate

	e := models.MonthlyExpenses{
		Mortgage:    MonthlyMortgagePayment(loanAmount, a.InterestRate, a.LoanTermYears),
		Tax:         p.Financials.PropertyTaxAnnual / 12,
		Insurance:   a.InsuranceAnnual / 12,
		HOA:         p.Financials.HOAMonthly,
		Vacancy:     rent * a.VacancyRatePercent / 100,
		Maintenance: p.Price * a.MaintenancePercent / 100 / 12,
		Management:  rent * a.ManagementFeePercent / 100,
	}
	e.Total = e.Mortgage + e.Tax + e.Insurance + e.HOA + e.Vacancy + e.Maintenance + e.Management
	return e
}
