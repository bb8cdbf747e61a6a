package intelligence

import (
	"strings"
	"testing"

	"github.com/alexanderramin/metis/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() domain.AssessmentRecord {
	return domain.AssessmentRecord{
		ID: "rec-1",
		Profile: domain.OrganizationProfile{
			Industry:    domain.IndustryHealthcare,
			CompanySize: domain.SizeMedium,
		},
		Result: domain.AssessmentResult{
			TotalScore:    58,
			MaturityLevel: domain.MaturityDeveloping,
			DomainScores: map[domain.ReadinessDomain]domain.DomainScore{
				domain.DomainDataInfrastructure: {
					Domain:          domain.DomainDataInfrastructure,
					Score:           40,
					MaxScore:        100,
					MaturityLevel:   domain.MaturityInitial,
					Recommendations: []string{"Consolidate data sources", "Adopt a data catalog"},
				},
				domain.DomainBusinessStrategy: {
					Domain:          domain.DomainBusinessStrategy,
					Score:           75,
					MaxScore:        100,
					MaturityLevel:   domain.MaturityManaged,
					Recommendations: []string{"Define AI success metrics"},
				},
			},
			EstimatedCosts: domain.CostEstimate{Total: 150000},
			Timeframe:      domain.ImplementationTimeframe{MinimumMonths: 12, MaximumMonths: 18},
			Recommendations: []domain.Recommendation{
				{
					Domain:      domain.DomainDataInfrastructure,
					Priority:    domain.PriorityHigh,
					Description: "Consolidate data sources",
				},
				{
					Domain:      domain.DomainBusinessStrategy,
					Priority:    domain.PriorityLow,
					Description: "Define AI success metrics",
				},
			},
		},
	}
}

func TestDeterministicExplain_GroundedInResult(t *testing.T) {
	rec := sampleRecord()
	narrative := DeterministicExplain(rec)

	assert.Contains(t, narrative.SummaryShort, "58/100")
	assert.Contains(t, narrative.SummaryShort, "developing")
	assert.Contains(t, narrative.SummaryDetailed, "business strategy")
	assert.Contains(t, narrative.SummaryDetailed, "data infrastructure")
	assert.Contains(t, narrative.SummaryDetailed, "$150000")
	assert.Contains(t, narrative.SummaryDetailed, "12-18 months")
	assert.Equal(t, 1.0, narrative.Confidence)

	// High-priority recommendations become next steps.
	require.Len(t, narrative.NextSteps, 1)
	assert.Equal(t, domain.DomainDataInfrastructure, narrative.NextSteps[0].Domain)
	assert.Equal(t, domain.PriorityHigh, narrative.NextSteps[0].Priority)

	// And the narrative passes its own grounding validation.
	assert.NoError(t, ValidateNarrative(*narrative, rec.Result))
}

func TestDeterministicExplain_NoHighPriorityFallsBackToWeakest(t *testing.T) {
	rec := sampleRecord()
	rec.Result.Recommendations = []domain.Recommendation{
		{Domain: domain.DomainBusinessStrategy, Priority: domain.PriorityLow, Description: "Define AI success metrics"},
	}

	narrative := DeterministicExplain(rec)

	require.Len(t, narrative.NextSteps, 1)
	assert.Equal(t, domain.DomainDataInfrastructure, narrative.NextSteps[0].Domain)
	assert.Equal(t, "Consolidate data sources", narrative.NextSteps[0].Action)
}

func TestDeterministicExplain_Deterministic(t *testing.T) {
	rec := sampleRecord()
	first := DeterministicExplain(rec)
	second := DeterministicExplain(rec)
	assert.Equal(t, first, second)
}

func TestDeterministicAdvise_ScoredDomain(t *testing.T) {
	rec := sampleRecord()
	narrative := DeterministicAdvise(rec, domain.DomainDataInfrastructure)

	assert.Contains(t, narrative.SummaryShort, "40/100")
	assert.True(t, strings.Contains(narrative.SummaryDetailed, "Consolidate data sources"))
	require.Len(t, narrative.NextSteps, 2)
	assert.Equal(t, domain.PriorityHigh, narrative.NextSteps[0].Priority)
	assert.Equal(t, domain.PriorityMedium, narrative.NextSteps[1].Priority)
}

func TestDeterministicAdvise_UnscoredDomain(t *testing.T) {
	rec := sampleRecord()
	narrative := DeterministicAdvise(rec, domain.DomainSecurityCompliance)

	assert.Contains(t, narrative.SummaryShort, "not part of this assessment")
	assert.Empty(t, narrative.NextSteps)
}

func TestValidateNarrative_RejectsUnscoredDomain(t *testing.T) {
	rec := sampleRecord()
	narrative := ResultNarrative{
		SummaryShort: "ok",
		Confidence:   0.9,
		NextSteps: []NextStep{
			{Domain: domain.DomainSecurityCompliance, Action: "x", Priority: domain.PriorityHigh},
		},
	}
	assert.Error(t, ValidateNarrative(narrative, rec.Result))
}

func TestValidateNarrative_RejectsBadConfidence(t *testing.T) {
	rec := sampleRecord()
	narrative := ResultNarrative{SummaryShort: "ok", Confidence: 1.5}
	assert.Error(t, ValidateNarrative(narrative, rec.Result))
}

func TestValidateNarrative_RejectsUnknownPriority(t *testing.T) {
	rec := sampleRecord()
	narrative := ResultNarrative{
		SummaryShort: "ok",
		Confidence:   0.9,
		NextSteps: []NextStep{
			{Domain: domain.DomainBusinessStrategy, Action: "x", Priority: "urgent"},
		},
	}
	assert.Error(t, ValidateNarrative(narrative, rec.Result))
}
