package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/metis/internal/domain"
)

// FormatResult renders a completed assessment result as a styled report.
func FormatResult(profile domain.OrganizationProfile, result domain.AssessmentResult) string {
	var b strings.Builder

	b.WriteString(StylePurple.Render(fmt.Sprintf("ORGANIZATION: %s / %s",
		strings.ToUpper(string(profile.Industry)), strings.ToUpper(string(profile.CompanySize)))))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n",
		Bold(fmt.Sprintf("Overall readiness: %d/100", result.TotalScore)),
		MaturityBadge(result.MaturityLevel)))
	b.WriteString(RenderScoreBar(float64(result.TotalScore), 30))
	b.WriteString("\n\n")

	b.WriteString(Header("Readiness Domains"))
	b.WriteString("\n")
	for _, d := range domain.AllDomains {
		ds, ok := result.DomainScores[d]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("%-28s %s  %s\n",
			DomainLabel(d),
			RenderScoreBar(ds.Score, 20),
			MaturityBadge(ds.MaturityLevel)))
		for _, rec := range ds.Recommendations {
			b.WriteString(fmt.Sprintf("   %s\n", Dim("· "+rec)))
		}
	}
	b.WriteString("\n")

	b.WriteString(Header("Benchmark"))
	b.WriteString("\n")
	bc := result.BenchmarkComparison
	b.WriteString(fmt.Sprintf("Industry average %s, similar companies %s (%d sampled). You rank in the %s percentile.\n\n",
		Bold(fmt.Sprintf("%.0f", bc.IndustryAverage)),
		Bold(fmt.Sprintf("%.0f", bc.SimilarCompanyAverage)),
		bc.SimilarCompanySamples,
		Bold(ordinal(bc.PercentileRank))))

	b.WriteString(Header("Estimated Investment"))
	b.WriteString("\n")
	costs := result.EstimatedCosts
	b.WriteString(RenderTable(
		[]string{"Category", "Estimate"},
		[][]string{
			{"Infrastructure", FormatUSD(costs.Infrastructure)},
			{"Training", FormatUSD(costs.Training)},
			{"Implementation", FormatUSD(costs.Implementation)},
			{"Total", Bold(FormatUSD(costs.Total))},
		}))
	b.WriteString(Dim(fmt.Sprintf("ROI projection: %.1fx conservative to %.1fx optimistic over %d months\n",
		costs.ROI.Conservative, costs.ROI.Optimistic, costs.ROI.TimeframeMo)))
	b.WriteString("\n")

	b.WriteString(Header("Timeline"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s\n", Bold(fmt.Sprintf("%d-%d months",
		result.Timeframe.MinimumMonths, result.Timeframe.MaximumMonths))))
	for _, m := range result.Timeframe.Milestones {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			StyleBlue.Render(fmt.Sprintf("M%d", m.Month)),
			m.Description,
			Dim("("+DomainLabel(m.Domain)+")")))
	}
	b.WriteString("\n")

	b.WriteString(Header("Prioritized Recommendations"))
	b.WriteString("\n")
	if len(result.Recommendations) == 0 {
		b.WriteString(Dim("No recommendations."))
		b.WriteString("\n")
	}
	for i, rec := range result.Recommendations {
		b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(rec.Description),
			PriorityBadge(rec.Priority),
			Dim(fmt.Sprintf("(%s term, ~%s, impact %d%%)",
				rec.Timeframe, FormatUSD(rec.EstimatedCost), rec.ExpectedImpact))))
		b.WriteString(fmt.Sprintf("   %s\n", Dim(DomainLabel(rec.Domain))))
	}

	return RenderBox("AI Readiness Report", b.String())
}

// FormatProgress renders a one-line progress indicator for an in-flight
// assessment.
func FormatProgress(answered, total int) string {
	pct := 0.0
	if total > 0 {
		pct = float64(answered) / float64(total) * 100
	}
	return fmt.Sprintf("%s %s",
		RenderScoreBar(pct, 20),
		Dim(fmt.Sprintf("%d of %d answered", answered, total)))
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
