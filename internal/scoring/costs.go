package scoring

import (
	"github.com/alexanderramin/metis/internal/catalog"
	"github.com/alexanderramin/metis/internal/domain"
)

// estimateCosts sums the midpoint of every answered option's cost range and
// buckets it by the question's domain: infrastructure domains into the
// infrastructure bucket, talent into training, everything else into
// implementation. Total is the sum of the three buckets.
func estimateCosts(questions []domain.Question, answers map[string]int) domain.CostEstimate {
	est := domain.CostEstimate{
		ROI: domain.ROIProjection{
			Optimistic:   catalog.ROIOptimistic,
			Conservative: catalog.ROIConservative,
			TimeframeMo:  catalog.ROITimeframeMo,
		},
	}

	for _, q := range questions {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		opt := q.OptionByValue(value)
		if opt == nil || opt.EstimatedCost == nil {
			continue
		}
		mid := opt.EstimatedCost.Midpoint()

		switch q.Domain {
		case domain.DomainDataInfrastructure, domain.DomainTechnicalInfrastructure:
			est.Infrastructure += mid
		case domain.DomainTalentCapability:
			est.Training += mid
		default:
			est.Implementation += mid
		}
	}

	est.Total = est.Infrastructure + est.Training + est.Implementation
	return est
}
