package scoring

import (
	"testing"

	"github.com/alexanderramin/metis/internal/catalog"
	"github.com/alexanderramin/metis/internal/domain"
	"github.com/alexanderramin/metis/internal/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func techEnterprise() domain.OrganizationProfile {
	return domain.OrganizationProfile{
		Industry:    domain.IndustryTechnology,
		CompanySize: domain.SizeEnterprise,
	}
}

func answerAll(questions []domain.Question, value int) map[string]int {
	answers := make(map[string]int, len(questions))
	for _, q := range questions {
		v := value
		if q.OptionByValue(v) == nil {
			// Two-option questions only offer 1 and 4.
			if v > 1 {
				v = 4
			} else {
				v = 1
			}
		}
		answers[q.ID] = v
	}
	return answers
}

func TestMaturityLevelFor(t *testing.T) {
	tests := []struct {
		score float64
		want  domain.MaturityLevel
	}{
		{100, domain.MaturityOptimizing},
		{90, domain.MaturityOptimizing},
		{89, domain.MaturityManaged},
		{75, domain.MaturityManaged},
		{74, domain.MaturityDefined},
		{60, domain.MaturityDefined},
		{59, domain.MaturityDeveloping},
		{45, domain.MaturityDeveloping},
		{44, domain.MaturityInitial},
		{0, domain.MaturityInitial},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaturityLevelFor(tt.score), "score %.0f", tt.score)
	}
}

func TestComputeResult_AllTopAnswers(t *testing.T) {
	profile := techEnterprise()
	questions := selector.Select(profile, nil)
	answers := answerAll(questions, 4)

	result := ComputeResult(profile, questions, answers)

	assert.Equal(t, 100, result.TotalScore)
	assert.Equal(t, domain.MaturityOptimizing, result.MaturityLevel)
	for d, ds := range result.DomainScores {
		assert.InDelta(t, 100, ds.Score, 1e-9, "domain %s", d)
		assert.Equal(t, domain.MaturityOptimizing, ds.MaturityLevel)
	}
}

func TestComputeResult_AllMinimumAnswers(t *testing.T) {
	profile := domain.OrganizationProfile{
		Industry:    domain.IndustryOther,
		CompanySize: domain.SizeSmall,
	}
	questions := selector.Select(profile, nil)
	answers := answerAll(questions, 1)

	result := ComputeResult(profile, questions, answers)

	// Uniform answers of 1 normalize to a quarter of the scale.
	assert.Equal(t, 25, result.TotalScore)
	assert.Equal(t, domain.MaturityInitial, result.MaturityLevel)
	assert.NotEmpty(t, result.Recommendations)
	for d, ds := range result.DomainScores {
		assert.NotEmpty(t, ds.Recommendations, "domain %s", d)
	}
}

func TestComputeResult_ScoreBounds(t *testing.T) {
	profile := techEnterprise()
	questions := selector.Select(profile, map[string]int{"data-storage": 3, "technical-infrastructure": 3, "strategic-alignment": 3})

	// Partial, lopsided answer sets still stay within bounds.
	answers := map[string]int{
		"data-storage":              4,
		"mlops-practices":           4,
		"advanced-data-integration": 1,
		"tech-innovation":           1,
	}
	result := ComputeResult(profile, questions, answers)

	assert.GreaterOrEqual(t, result.TotalScore, 0)
	assert.LessOrEqual(t, result.TotalScore, 100)
	for d, ds := range result.DomainScores {
		assert.GreaterOrEqual(t, ds.Score, 0.0, "domain %s", d)
		assert.LessOrEqual(t, ds.Score, 100.0, "domain %s", d)
	}
}

func TestComputeResult_AbsentDomainsExcluded(t *testing.T) {
	profile := techEnterprise()
	questions := selector.Select(profile, nil)

	result := ComputeResult(profile, questions, answerAll(questions, 4))

	// security_compliance has no question outside the healthcare follow-up,
	// so it must be absent from the result, not reported as zero.
	_, present := result.DomainScores[domain.DomainSecurityCompliance]
	assert.False(t, present)
	assert.Equal(t, 100, result.TotalScore, "absent domain must not drag the mean down")
}

func TestComputeResult_CostTotalInvariant(t *testing.T) {
	profile := domain.OrganizationProfile{
		Industry:    domain.IndustryHealthcare,
		CompanySize: domain.SizeMedium,
	}
	questions := selector.Select(profile, map[string]int{"data-storage": 3})
	answers := answerAll(questions, 2)

	result := ComputeResult(profile, questions, answers)

	costs := result.EstimatedCosts
	assert.InDelta(t, costs.Infrastructure+costs.Training+costs.Implementation, costs.Total, 1e-6)
	assert.Positive(t, costs.Total)
}

func TestComputeResult_CostBuckets(t *testing.T) {
	profile := techEnterprise()
	questions := selector.Select(profile, nil)

	// Answer one question per bucket.
	answers := map[string]int{
		"data-storage":     1, // infrastructure: midpoint 75000
		"talent-readiness": 1, // training: midpoint 140000
		"data-quality":     1, // implementation: midpoint 65000
	}
	result := ComputeResult(profile, questions, answers)

	costs := result.EstimatedCosts
	assert.InDelta(t, 75000, costs.Infrastructure, 1e-6)
	assert.InDelta(t, 140000, costs.Training, 1e-6)
	assert.InDelta(t, 65000, costs.Implementation, 1e-6)
	assert.InDelta(t, 280000, costs.Total, 1e-6)
}

func TestComputeResult_Timeframe(t *testing.T) {
	profile := techEnterprise()
	questions := selector.Select(profile, nil)

	high := ComputeResult(profile, questions, answerAll(questions, 4))
	assert.Equal(t, 6, high.Timeframe.MinimumMonths)
	assert.Equal(t, 12, high.Timeframe.MaximumMonths)

	mid := ComputeResult(profile, questions, answerAll(questions, 3))
	assert.Equal(t, 12, mid.Timeframe.MinimumMonths)
	assert.Equal(t, 18, mid.Timeframe.MaximumMonths)

	low := ComputeResult(profile, questions, answerAll(questions, 1))
	assert.Equal(t, 18, low.Timeframe.MinimumMonths)
	assert.Equal(t, 36, low.Timeframe.MaximumMonths)

	assert.Equal(t, catalog.Milestones(), low.Timeframe.Milestones)
}

func TestComputeResult_Prioritization(t *testing.T) {
	profile := techEnterprise()
	questions := selector.Select(profile, nil)
	answers := answerAll(questions, 1)

	result := ComputeResult(profile, questions, answers)
	require.NotEmpty(t, result.Recommendations)

	// Index within each domain decides the tier.
	perDomainIndex := make(map[domain.ReadinessDomain]int)
	for _, rec := range result.Recommendations {
		i := perDomainIndex[rec.Domain]
		switch {
		case i < 2:
			assert.Equal(t, domain.PriorityHigh, rec.Priority)
			assert.Equal(t, domain.TimeframeShort, rec.Timeframe)
			assert.Equal(t, 90, rec.ExpectedImpact)
		case i < 4:
			assert.Equal(t, domain.PriorityMedium, rec.Priority)
			assert.Equal(t, domain.TimeframeMedium, rec.Timeframe)
			assert.Equal(t, 80, rec.ExpectedImpact)
		default:
			assert.Equal(t, domain.PriorityLow, rec.Priority)
			assert.Equal(t, domain.TimeframeLong, rec.Timeframe)
			assert.Equal(t, 70, rec.ExpectedImpact)
		}
		perDomainIndex[rec.Domain] = i + 1
	}
}

func TestComputeResult_Deterministic(t *testing.T) {
	profile := domain.OrganizationProfile{
		Industry:    domain.IndustryFinance,
		CompanySize: domain.SizeLarge,
	}
	questions := selector.Select(profile, map[string]int{"ethical-governance": 3})
	answers := answerAll(questions, 3)

	first := ComputeResult(profile, questions, answers)
	second := ComputeResult(profile, questions, answers)
	assert.Equal(t, first, second)
}

func TestComputeResult_Benchmarks(t *testing.T) {
	profile := techEnterprise()
	questions := selector.Select(profile, nil)

	high := ComputeResult(profile, questions, answerAll(questions, 4))
	assert.Equal(t, 75, high.BenchmarkComparison.PercentileRank)

	low := ComputeResult(profile, questions, answerAll(questions, 1))
	assert.Equal(t, 25, low.BenchmarkComparison.PercentileRank)
	assert.Equal(t, 65.0, low.BenchmarkComparison.IndustryAverage)
	assert.Equal(t, 50, low.BenchmarkComparison.SimilarCompanySamples)
}

func TestComputeResult_EmptyQuestionList(t *testing.T) {
	profile := techEnterprise()

	result := ComputeResult(profile, nil, nil)

	assert.Equal(t, 0, result.TotalScore)
	assert.Empty(t, result.DomainScores)
	assert.Equal(t, domain.MaturityInitial, result.MaturityLevel)
	assert.Zero(t, result.EstimatedCosts.Total)
}
