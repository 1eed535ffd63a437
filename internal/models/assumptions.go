// internal/models/assumptions.go
package models

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// InvestmentAssumptions is the financing and operating configuration an
// analysis runs under. It is passed by value: updates replace the whole
// document, they never mutate a shared instance.
type InvestmentAssumptions struct {
	DownPaymentPercent   float64 `json:"downPaymentPercent"`
	InterestRate         float64 `json:"interestRate"` // annual, percent
	LoanTermYears        int     `json:"loanTermYears"`
	ClosingCostsPercent  float64 `json:"closingCostsPercent"`
	VacancyRatePercent   float64 `json:"vacancyRatePercent"`
	ManagementFeePercent float64 `json:"managementFeePercent"`
	MaintenancePercent   float64 `json:"maintenancePercent"` // annual, percent of price
	InsuranceAnnual      float64 `json:"insuranceAnnual"`
	AppreciationRate     float64 `json:"appreciationRate"` // annual, percent
}

// DefaultAssumptions returns the stock configuration applied until a caller
// replaces it. Management fee defaults to zero (self-managed).
func DefaultAssumptions() InvestmentAssumptions {
	return InvestmentAssumptions{
		DownPaymentPercent:   20,
		InterestRate:         6.8,
		LoanTermYears:        30,
		ClosingCostsPercent:  3,
		VacancyRatePercent:   5,
		ManagementFeePercent: 0,
		MaintenancePercent:   1.0,
		InsuranceAnnual:      1000,
		AppreciationRate:     3.0,
	}
}

// Validate checks the ranges the engine itself assumes but never enforces.
// It must be called at the boundary before assumptions reach an analysis.
func (a InvestmentAssumptions) Validate() error {
	err := validation.ValidateStruct(&a,
		validation.Field(&a.DownPaymentPercent, validation.Min(0.0)),
		validation.Field(&a.InterestRate, validation.Min(0.0)),
		validation.Field(&a.LoanTermYears, validation.Required, validation.Min(1)),
		validation.Field(&a.ClosingCostsPercent, validation.Min(0.0)),
		validation.Field(&a.VacancyRatePercent, validation.Min(0.0)),
		validation.Field(&a.ManagementFeePercent, validation.Min(0.0)),
		validation.Field(&a.MaintenancePercent, validation.Min(0.0)),
		validation.Field(&a.InsuranceAnnual, validation.Min(0.0)),
		validation.Field(&a.AppreciationRate, validation.Min(0.0)),
	)
	if err != nil {
		return err
	}

	// Cash-on-cash divides by totalCashNeeded; both percentages at zero
	// would make that denominator zero for every property.
	if a.DownPaymentPercent+a.ClosingCostsPercent <= 0 {
		return fmt.Errorf("downPaymentPercent and closingCostsPercent cannot both be zero")
	}
	return nil
}
