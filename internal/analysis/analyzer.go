// internal/analysis/analyzer.go
package analysis

import "deal-analyzer/internal/models"

// Analyze computes the full investment picture for one property under the
// given assumptions: monthly expense breakdown, cash flow, return metrics,
// multi-year ROI projections, and the deal score. It is a pure function;
// neither input is mutated and every call returns a fresh result.
//
// Precondition: downPaymentPercent + closingCostsPercent must be positive,
// otherwise totalCashNeeded is zero and cash-on-cash (and the ROI
// projections) divide by zero. InvestmentAssumptions.Validate enforces
// this at the API boundary; the engine itself does not guard it.
func Analyze(p models.Property, a models.InvestmentAssumptions) models.AnalysisResult {
	downPayment := p.Price * a.DownPaymentPercent / 100
	closingCosts := p.Price * a.ClosingCostsPercent / 100
	totalCashNeeded := downPayment + closingCosts
	loanAmount := p.Price - downPayment

	monthlyIncome := p.Financials.RentEstimate
	annualIncome := monthlyIncome * 12

	expenses := monthlyExpenses(p, loanAmount, a)

	monthlyCashFlow := monthlyIncome - expenses.Total
	annualCashFlow := monthlyCashFlow * 12

	// NOI: annual income minus annualized operating expenses, excluding
	// debt service.
	noi := annualIncome - 12*(expenses.Vacancy+expenses.Maintenance+expenses.Management+
		expenses.Tax+expenses.Insurance+expenses.HOA)

	capRate := noi / p.Price * 100
	cashOnCash := annualCashFlow / totalCashNeeded * 100

	grm := 0.0
	if annualIncome > 0 {
		grm = p.Price / annualIncome
	}

	dscr := 0.0
	if expenses.Mortgage > 0 {
		dscr = noi / (expenses.Mortgage * 12)
	}

	return models.AnalysisResult{
		MonthlyIncome:   monthlyIncome,
		MonthlyExpenses: expenses,
		CashFlow: models.CashFlow{
			Monthly: monthlyCashFlow,
			Annual:  annualCashFlow,
		},
		Metrics: models.ReturnMetrics{
			CapRate:         capRate,
			CashOnCash:      cashOnCash,
			GRM:             grm,
			DSCR:            dscr,
			TotalCashNeeded: totalCashNeeded,
		},
		Projections: projectReturns(annualCashFlow, p.Price, loanAmount, expenses.Mortgage, totalCashNeeded, a),
		Score:       ScoreDeal(cashOnCash, capRate),
	}
}
