package analysis

import "github.com/abhisek/mindcheck/internal/scoring"

// Risk levels attached to LLM-produced analyses.
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskVeryHigh = "very high"
)

// RiskFor maps a band to a risk level.
func RiskFor(b scoring.Band) string {
	switch b {
	case scoring.BandExcellent, scoring.BandGood:
		return RiskLow
	case scoring.BandModerate:
		return RiskMedium
	case scoring.BandLow:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}

// NeedsProfessionalHelp reports whether a risk level warrants referring
// the user to a professional.
func NeedsProfessionalHelp(risk string) bool {
	return risk == RiskHigh || risk == RiskVeryHigh
}
