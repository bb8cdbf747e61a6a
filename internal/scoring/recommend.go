package scoring

import (
	"math"

	"github.com/alexanderramin/metis/internal/domain"
)

// Budget share of the total estimate distributed across each domain's
// recommendation entries.
const recommendationBudgetShare = 0.1

// prioritize flattens the per-domain recommendation lists into one ranked
// list. Within each domain the first two entries are high priority / short
// term, the next two medium / medium, the rest low / long. Domains are
// visited in canonical order so the output is stable.
func prioritize(domainScores map[domain.ReadinessDomain]domain.DomainScore, totalCost float64) []domain.Recommendation {
	var out []domain.Recommendation
	for _, d := range domain.AllDomains {
		ds, ok := domainScores[d]
		if !ok {
			continue
		}
		n := len(ds.Recommendations)
		if n == 0 {
			continue
		}
		perEntryCost := math.Round(totalCost * recommendationBudgetShare / float64(n))

		for i, text := range ds.Recommendations {
			priority, timeframe := tierFor(i)
			out = append(out, domain.Recommendation{
				Domain:         d,
				Priority:       priority,
				Timeframe:      timeframe,
				Description:    text,
				EstimatedCost:  perEntryCost,
				ExpectedImpact: expectedImpact(priority),
			})
		}
	}
	return out
}

func tierFor(index int) (domain.Priority, domain.Timeframe) {
	switch {
	case index < 2:
		return domain.PriorityHigh, domain.TimeframeShort
	case index < 4:
		return domain.PriorityMedium, domain.TimeframeMedium
	default:
		return domain.PriorityLow, domain.TimeframeLong
	}
}

// expectedImpact is cosmetic report metadata on a 70-90 scale. It is a
// deterministic function of the priority tier so results are reproducible.
func expectedImpact(p domain.Priority) int {
	switch p {
	case domain.PriorityHigh:
		return 90
	case domain.PriorityMedium:
		return 80
	default:
		return 70
	}
}
