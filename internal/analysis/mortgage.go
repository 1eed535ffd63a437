// internal/analysis/mortgage.go
package analysis

import "math"

// MonthlyMortgagePayment returns the fixed monthly principal-and-interest
// payment for a loan of the given size. A zero rate amortizes straight-line
// (principal over term), which also keeps the annuity formula away from a
// division by zero. A zero principal yields a zero payment.
func MonthlyMortgagePayment(principal, annualRatePct float64, termYears int) float64 {
	payments := float64(termYears * 12)
	if annualRatePct == 0 {
		return principal / payments
	}
	monthlyRate := annualRatePct / 100 / 12
	growth := math.Pow(1+monthlyRate, payments)
	return principal * monthlyRate * growth / (growth - 1)
}
