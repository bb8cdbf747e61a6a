package formatter

import (
	"testing"

	"github.com/alexanderramin/metis/internal/domain"
	"github.com/alexanderramin/metis/internal/intelligence"
	"github.com/stretchr/testify/assert"
)

func testNarrative() *intelligence.ResultNarrative {
	return &intelligence.ResultNarrative{
		SummaryShort:    "Overall readiness score 58/100, maturity level \"developing\".",
		SummaryDetailed: "Business strategy is the strongest area while data infrastructure lags behind.",
		NextSteps: []intelligence.NextStep{
			{
				Domain:   domain.DomainDataInfrastructure,
				Action:   "Stand up a governed data lake",
				Priority: domain.PriorityHigh,
			},
			{
				Domain:   domain.DomainBusinessStrategy,
				Action:   "Refresh the AI roadmap annually",
				Priority: domain.PriorityMedium,
			},
		},
		Confidence: 0.85,
	}
}

func TestFormatNarrative_ShowsSummaries(t *testing.T) {
	out := FormatNarrative(testNarrative())

	assert.Contains(t, out, "READINESS BRIEFING")
	assert.Contains(t, out, "Overall readiness score 58/100")
	assert.Contains(t, out, "data infrastructure lags behind")
}

func TestFormatNarrative_ShowsNextSteps(t *testing.T) {
	out := FormatNarrative(testNarrative())

	assert.Contains(t, out, "NEXT STEPS")
	assert.Contains(t, out, "1.")
	assert.Contains(t, out, "Stand up a governed data lake")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "Data Infrastructure")
	assert.Contains(t, out, "2.")
	assert.Contains(t, out, "MEDIUM")
}

func TestFormatNarrative_ShowsConfidence(t *testing.T) {
	out := FormatNarrative(testNarrative())
	assert.Contains(t, out, "Confidence: 85%")
}

func TestFormatNarrative_NoNextSteps(t *testing.T) {
	n := testNarrative()
	n.NextSteps = nil

	out := FormatNarrative(n)
	assert.NotContains(t, out, "NEXT STEPS")
}
