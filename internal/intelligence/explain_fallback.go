package intelligence

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/metis/internal/domain"
)

// DeterministicExplain builds a narrative directly from the assessment record
// without using the LLM. Used as a fallback when Ollama is unavailable or
// when the LLM output fails validation.
func DeterministicExplain(rec domain.AssessmentRecord) *ResultNarrative {
	result := rec.Result
	narrative := &ResultNarrative{
		Confidence: 1.0, // deterministic = fully faithful
	}

	narrative.SummaryShort = fmt.Sprintf(
		"Overall readiness score %d/100, maturity level %q.",
		result.TotalScore, result.MaturityLevel)

	ordered := orderedDomainScores(result)
	if len(ordered) > 0 {
		strongest := ordered[len(ordered)-1]
		weakest := ordered[0]
		narrative.SummaryDetailed = fmt.Sprintf(
			"%s Strongest domain: %s (%.0f/100). Weakest domain: %s (%.0f/100). "+
				"Estimated investment %s over %d-%d months.",
			narrative.SummaryShort,
			domainLabel(strongest.Domain), strongest.Score,
			domainLabel(weakest.Domain), weakest.Score,
			formatUSD(result.EstimatedCosts.Total),
			result.Timeframe.MinimumMonths, result.Timeframe.MaximumMonths)
	} else {
		narrative.SummaryDetailed = narrative.SummaryShort
	}

	for _, r := range result.Recommendations {
		if r.Priority != domain.PriorityHigh {
			continue
		}
		narrative.NextSteps = append(narrative.NextSteps, NextStep{
			Domain:   r.Domain,
			Action:   r.Description,
			Priority: r.Priority,
		})
	}
	// An all-high-scoring assessment yields no high-priority items; fall back
	// to the weakest domain's first recommendation.
	if len(narrative.NextSteps) == 0 && len(ordered) > 0 {
		weakest := ordered[0]
		if len(weakest.Recommendations) > 0 {
			narrative.NextSteps = append(narrative.NextSteps, NextStep{
				Domain:   weakest.Domain,
				Action:   weakest.Recommendations[0],
				Priority: domain.PriorityLow,
			})
		}
	}

	return narrative
}

// DeterministicAdvise builds a single-domain narrative from the record.
func DeterministicAdvise(rec domain.AssessmentRecord, target domain.ReadinessDomain) *ResultNarrative {
	ds, ok := rec.Result.DomainScores[target]
	if !ok {
		return &ResultNarrative{
			SummaryShort:    fmt.Sprintf("Domain %s was not part of this assessment.", domainLabel(target)),
			SummaryDetailed: "No questions for this domain applied to the organization profile.",
			Confidence:      1.0,
		}
	}

	narrative := &ResultNarrative{
		Confidence: 1.0,
		SummaryShort: fmt.Sprintf("%s scored %.0f/100, maturity level %q.",
			domainLabel(target), ds.Score, ds.MaturityLevel),
	}
	narrative.SummaryDetailed = narrative.SummaryShort
	if len(ds.Recommendations) > 0 {
		narrative.SummaryDetailed += " Recommended actions: " + strings.Join(ds.Recommendations, "; ") + "."
	}

	for i, action := range ds.Recommendations {
		priority := domain.PriorityMedium
		if i == 0 {
			priority = domain.PriorityHigh
		}
		narrative.NextSteps = append(narrative.NextSteps, NextStep{
			Domain:   target,
			Action:   action,
			Priority: priority,
		})
	}
	return narrative
}

// orderedDomainScores returns domain scores sorted ascending by score, with
// the domain name as tiebreaker so output is stable.
func orderedDomainScores(result domain.AssessmentResult) []domain.DomainScore {
	scores := make([]domain.DomainScore, 0, len(result.DomainScores))
	for _, ds := range result.DomainScores {
		scores = append(scores, ds)
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score < scores[j].Score
		}
		return scores[i].Domain < scores[j].Domain
	})
	return scores
}

func domainLabel(d domain.ReadinessDomain) string {
	return strings.ReplaceAll(string(d), "_", " ")
}

func formatUSD(v float64) string {
	return fmt.Sprintf("$%.0f", v)
}
