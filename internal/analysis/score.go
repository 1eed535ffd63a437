// internal/analysis/score.go
package analysis

import "deal-analyzer/internal/models"

// ScoreDeal classifies a deal from its cash-on-cash return and cap rate,
// both in percent. Tiers are evaluated in priority order and every
// threshold is strict: a cash-on-cash of exactly 12 is not Excellent.
func ScoreDeal(cashOnCash, capRate float64) models.DealScore {
	switch {
	case cashOnCash > 12 && capRate > 7:
		return models.DealScoreExcellent
	case cashOnCash > 8 && capRate > 5:
		return models.DealScoreGood
	case cashOnCash > 4:
		return models.DealScoreFair
	default:
		return models.DealScorePoor
	}
}
