package selector

import (
	"testing"

	"github.com/alexanderramin/metis/internal/catalog"
	"github.com/alexanderramin/metis/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(qs []domain.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func TestSelect_NoAnswersReturnsOnlyUngatedQuestions(t *testing.T) {
	profile := domain.OrganizationProfile{
		Industry:    domain.IndustryHealthcare,
		CompanySize: domain.SizeSmall,
	}

	qs := Select(profile, nil)

	// All 8 base questions, none of the dependency-gated follow-ups.
	require.Len(t, qs, 8)
	for _, q := range qs {
		assert.Empty(t, q.Dependencies, "question %s should have no dependencies", q.ID)
	}
}

func TestSelect_AttachesEffectiveWeight(t *testing.T) {
	profile := domain.OrganizationProfile{
		Industry:    domain.IndustryTechnology,
		CompanySize: domain.SizeEnterprise,
	}

	qs := Select(profile, nil)
	require.NotEmpty(t, qs)

	// data-storage: base 1.5 × technology 1.3 × enterprise 1.2
	assert.Equal(t, "data-storage", qs[0].ID)
	assert.InDelta(t, 1.5*1.3*1.2, qs[0].EffectiveWeight, 1e-9)
}

func TestSelect_DependencyExactMatch(t *testing.T) {
	profile := domain.OrganizationProfile{
		Industry:    domain.IndustryHealthcare,
		CompanySize: domain.SizeSmall,
	}

	// Answering data-storage with 3 unlocks the HIPAA follow-up and the
	// advanced-data-integration maturity question.
	qs := Select(profile, map[string]int{"data-storage": 3})
	assert.Contains(t, ids(qs), "healthcare-data-privacy")
	assert.Contains(t, ids(qs), "advanced-data-integration")

	// A "better" answer of 4 does not: gating is exact, not a threshold.
	qs = Select(profile, map[string]int{"data-storage": 4})
	assert.NotContains(t, ids(qs), "healthcare-data-privacy")
	assert.NotContains(t, ids(qs), "advanced-data-integration")

	// Neither does 2.
	qs = Select(profile, map[string]int{"data-storage": 2})
	assert.NotContains(t, ids(qs), "healthcare-data-privacy")
}

func TestSelect_IndustryFollowUpsScopedToProfile(t *testing.T) {
	answers := map[string]int{"data-storage": 2}

	retail := domain.OrganizationProfile{Industry: domain.IndustryRetail, CompanySize: domain.SizeMedium}
	qs := Select(retail, answers)
	assert.Contains(t, ids(qs), "retail-customer-data")

	finance := domain.OrganizationProfile{Industry: domain.IndustryFinance, CompanySize: domain.SizeMedium}
	qs = Select(finance, answers)
	assert.NotContains(t, ids(qs), "retail-customer-data")
}

func TestSelect_PreservesCatalogOrder(t *testing.T) {
	profile := domain.OrganizationProfile{
		Industry:    domain.IndustryTechnology,
		CompanySize: domain.SizeLarge,
	}
	answers := map[string]int{
		"data-storage":             3,
		"strategic-alignment":      3,
		"technical-infrastructure": 3,
	}

	got := ids(Select(profile, answers))

	want := []string{
		"data-storage", "strategic-alignment", "data-quality",
		"technical-infrastructure", "talent-readiness", "process-maturity",
		"ethical-governance", "change-management",
		"advanced-data-integration", "mlops-practices",
		"tech-innovation",
	}
	assert.Equal(t, want, got)
}

func TestSelect_Idempotent(t *testing.T) {
	profile := domain.OrganizationProfile{
		Industry:    domain.IndustryManufacturing,
		CompanySize: domain.SizeLarge,
	}
	answers := map[string]int{"data-quality": 2, "data-storage": 3}

	first := Select(profile, answers)
	second := Select(profile, answers)
	assert.Equal(t, first, second)
}

func TestSelect_MonotonicUnlocking(t *testing.T) {
	profile := domain.OrganizationProfile{
		Industry:    domain.IndustryOther,
		CompanySize: domain.SizeSmall,
	}

	sparse := map[string]int{"strategic-alignment": 2}
	richer := map[string]int{"strategic-alignment": 2, "data-storage": 3, "talent-readiness": 1}

	before := ids(Select(profile, sparse))
	after := ids(Select(profile, richer))

	// Adding answers (without changing existing ones) only unlocks.
	for _, id := range before {
		assert.Contains(t, after, id)
	}
	assert.Greater(t, len(after), len(before))
}

func TestSelect_DoesNotMutateCatalog(t *testing.T) {
	profile := domain.OrganizationProfile{
		Industry:    domain.IndustryTechnology,
		CompanySize: domain.SizeEnterprise,
	}

	Select(profile, nil)

	fresh := catalog.BaseQuestions()
	assert.Zero(t, fresh[0].EffectiveWeight, "catalog entries must keep zero effective weight")
	assert.Equal(t, 1.5, fresh[0].Weight.Base)
}
