// internal/analysis/projections.go
package analysis

import "deal-analyzer/internal/models"

// projectReturns estimates total ROI over one, five, and ten years from
// cash flow, appreciation, and first-year principal paydown.
//
// Two simplifications are intentional and must stay as-is: first-year
// interest is the flat rate on the full loan amount rather than a true
// amortization schedule, and the 5/10-year figures are linear multiples
// of year one rather than compounded.
func projectReturns(annualCashFlow, price, loanAmount, monthlyMortgage, totalCashNeeded float64, a models.InvestmentAssumptions) models.Projections {
	annualAppreciation := price * a.AppreciationRate / 100

	firstYearInterest := loanAmount * a.InterestRate / 100
	firstYearPrincipal := monthlyMortgage*12 - firstYearInterest

	year1Return := annualCashFlow + annualAppreciation + firstYearPrincipal
	year1ROI := year1Return / totalCashNeeded * 100

	return models.Projections{
		Year1TotalROI:  year1ROI,
		Year5TotalROI:  year1ROI * 5,
		Year10TotalROI: year1ROI * 10,
	}
}
