// internal/models/analysis.go
package models

// DealScore is the ordinal quality tier assigned to an analyzed listing.
type DealScore string

const (
	DealScoreExcellent DealScore = "Excellent"
	DealScoreGood      DealScore = "Good"
	DealScoreFair      DealScore = "Fair"
	DealScorePoor      DealScore = "Poor"
)

// MonthlyExpenses is the per-month expense breakdown. Total always equals
// the sum of the seven named components.
type MonthlyExpenses struct {
	Mortgage    float64 `json:"mortgage"`
	Tax         float64 `json:"tax"`
	Insurance   float64 `json:"insurance"`
	HOA         float64 `json:"hoa"`
	Vacancy     float64 `json:"vacancy"`
	Maintenance float64 `json:"maintenance"`
	Management  float64 `json:"management"`
	Total       float64 `json:"total"`
}

type CashFlow struct {
	Monthly float64 `json:"monthly"`
	Annual  float64 `json:"annual"`
}

type ReturnMetrics struct {
	CapRate         float64 `json:"capRate"`
	CashOnCash      float64 `json:"cashOnCash"`
	GRM             float64 `json:"grm"`  // gross rent multiplier
	DSCR            float64 `json:"dscr"` // debt-service coverage ratio
	TotalCashNeeded float64 `json:"totalCashNeeded"`
}

// Projections are simplified linear total-ROI estimates; the 5- and
// 10-year figures are straight multiples of year one, not compounded.
type Projections struct {
	Year1TotalROI  float64 `json:"year1TotalROI"`
	Year5TotalROI  float64 `json:"year5TotalROI"`
	Year10TotalROI float64 `json:"year10TotalROI"`
}

// AnalysisResult is the full output of one analysis run. It is derived,
// never persisted, and carries no identity of its own; callers associate
// it with the property that produced it.
type AnalysisResult struct {
	MonthlyIncome   float64         `json:"monthlyIncome"`
	MonthlyExpenses MonthlyExpenses `json:"monthlyExpenses"`
	CashFlow        CashFlow        `json:"cashFlow"`
	Metrics         ReturnMetrics   `json:"metrics"`
	Projections     Projections     `json:"projections"`
	Score           DealScore       `json:"score"`
}
