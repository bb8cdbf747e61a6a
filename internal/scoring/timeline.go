package scoring

import (
	"github.com/alexanderramin/metis/internal/catalog"
	"github.com/alexanderramin/metis/internal/domain"
)

// timeframeFor derives the implementation window from the overall score.
// Higher readiness means a shorter runway. The milestone list is fixed and
// attached regardless of score.
func timeframeFor(total int) domain.ImplementationTimeframe {
	var minMonths, maxMonths int
	switch {
	case total >= 80:
		minMonths, maxMonths = 6, 12
	case total >= 60:
		minMonths, maxMonths = 12, 18
	default:
		minMonths, maxMonths = 18, 36
	}
	return domain.ImplementationTimeframe{
		MinimumMonths: minMonths,
		MaximumMonths: maxMonths,
		Milestones:    catalog.Milestones(),
	}
}
