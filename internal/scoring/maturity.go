package scoring

import "github.com/alexanderramin/metis/internal/domain"

// MaturityLevelFor maps a 0-100 score to its maturity classification. The
// same step function applies to the overall score and every domain score.
func MaturityLevelFor(score float64) domain.MaturityLevel {
	switch {
	case score >= 90:
		return domain.MaturityOptimizing
	case score >= 75:
		return domain.MaturityManaged
	case score >= 60:
		return domain.MaturityDefined
	case score >= 45:
		return domain.MaturityDeveloping
	default:
		return domain.MaturityInitial
	}
}
