// Package scoring turns a completed answer set into an AssessmentResult.
// ComputeResult is a pure function of its inputs: no clocks, no randomness,
// no side effects, so identical sessions always produce identical results.
package scoring

import (
	"math"

	"github.com/alexanderramin/metis/internal/catalog"
	"github.com/alexanderramin/metis/internal/domain"
)

// ComputeResult scores the session. questions is the active question list
// (carrying effective weights from the selector); answers maps question id
// to the chosen option value. Domains with no active questions are absent
// from the result rather than scored as zero.
func ComputeResult(profile domain.OrganizationProfile, questions []domain.Question, answers map[string]int) *domain.AssessmentResult {
	byDomain := groupByDomain(questions)

	domainScores := make(map[domain.ReadinessDomain]domain.DomainScore, len(byDomain))
	var scoreSum float64
	for _, d := range domain.AllDomains {
		qs, ok := byDomain[d]
		if !ok {
			continue
		}
		score := domainScore(profile, qs, answers)
		domainScores[d] = domain.DomainScore{
			Domain:          d,
			Score:           score,
			MaxScore:        100,
			MaturityLevel:   MaturityLevelFor(score),
			Recommendations: domainRecommendations(d, qs, answers),
			Benchmarks:      domainBenchmarks(score),
		}
		scoreSum += score
	}

	total := 0
	if len(domainScores) > 0 {
		total = int(math.Round(scoreSum / float64(len(domainScores))))
	}

	costs := estimateCosts(questions, answers)

	return &domain.AssessmentResult{
		TotalScore:          total,
		MaturityLevel:       MaturityLevelFor(float64(total)),
		DomainScores:        domainScores,
		BenchmarkComparison: overallBenchmarks(total),
		EstimatedCosts:      costs,
		Timeframe:           timeframeFor(total),
		Recommendations:     prioritize(domainScores, costs.Total),
	}
}

func groupByDomain(questions []domain.Question) map[domain.ReadinessDomain][]domain.Question {
	out := make(map[domain.ReadinessDomain][]domain.Question)
	for _, q := range questions {
		out[q.Domain] = append(out[q.Domain], q)
	}
	return out
}

// domainScore computes the weighted score for one domain, normalized
// against the maximum option value (4) and clamped to [0,100]. Unanswered
// questions contribute zero to the numerator but their weight still counts
// in the denominator.
func domainScore(profile domain.OrganizationProfile, questions []domain.Question, answers map[string]int) float64 {
	var weightedScore, totalWeight float64
	for _, q := range questions {
		w := effectiveWeight(profile, q)
		totalWeight += w
		if value, ok := answers[q.ID]; ok {
			weightedScore += float64(value) * w
		}
	}
	if totalWeight == 0 {
		return 0
	}

	score := (weightedScore / (totalWeight * 4)) * 100
	return math.Min(100, math.Max(0, score))
}

func effectiveWeight(profile domain.OrganizationProfile, q domain.Question) float64 {
	if q.EffectiveWeight > 0 {
		return q.EffectiveWeight
	}
	return q.Weight.EffectiveFor(profile.Industry, profile.CompanySize)
}

// domainRecommendations gathers the recommendation strings of every
// answered option in the domain, falling back to the static per-domain
// default when nothing contributed.
func domainRecommendations(d domain.ReadinessDomain, questions []domain.Question, answers map[string]int) []string {
	var recs []string
	for _, q := range questions {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		if opt := q.OptionByValue(value); opt != nil {
			recs = append(recs, opt.Recommendations...)
		}
	}
	if len(recs) == 0 {
		recs = []string{catalog.DefaultRecommendation(d)}
	}
	return recs
}

func domainBenchmarks(score float64) domain.Benchmarks {
	rank := catalog.BenchmarkPercentileLow
	if score >= catalog.BenchmarkIndustryAverage {
		rank = catalog.BenchmarkPercentileHigh
	}
	return domain.Benchmarks{
		IndustryAverage:  catalog.BenchmarkIndustryAverage,
		PercentileRank:   rank,
		SimilarCompanies: catalog.BenchmarkSimilarCompanyAverage,
	}
}

func overallBenchmarks(total int) domain.BenchmarkComparison {
	rank := catalog.BenchmarkPercentileLow
	if float64(total) >= catalog.BenchmarkIndustryAverage {
		rank = catalog.BenchmarkPercentileHigh
	}
	return domain.BenchmarkComparison{
		IndustryAverage:       catalog.BenchmarkIndustryAverage,
		PercentileRank:        rank,
		SimilarCompanyAverage: catalog.BenchmarkSimilarCompanyAverage,
		SimilarCompanySamples: catalog.BenchmarkSimilarCompanyCount,
	}
}
