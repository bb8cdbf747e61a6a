// Package selector derives the active question list for one organization:
// the catalog filtered by profile and dependency state, with effective
// weights attached. Selection is a pure function of its inputs; calling it
// again with the same profile and answers yields the same list.
package selector

import (
	"github.com/alexanderramin/metis/internal/catalog"
	"github.com/alexanderramin/metis/internal/domain"
)

// Select returns the ordered question list applicable to the profile given
// the answers recorded so far. Catalog order is preserved; no re-sorting.
//
// A question survives when:
//   - its industry allow-list (if any) includes the profile's industry,
//   - its company-size allow-list (if any) includes the profile's size,
//   - every dependency's referenced answer equals the required value
//     exactly. Exact match is deliberate: a "better" answer does not
//     unlock a follow-up tuned to a specific maturity tier.
//
// Each returned question is a copy carrying its effective weight for this
// profile; catalog entries are never mutated.
func Select(profile domain.OrganizationProfile, answers map[string]int) []domain.Question {
	pool := catalog.ForProfile(profile.Industry)

	out := make([]domain.Question, 0, len(pool))
	for i := range pool {
		q := &pool[i]
		if !q.AllowsIndustry(profile.Industry) || !q.AllowsCompanySize(profile.CompanySize) {
			continue
		}
		if !dependenciesMet(q, answers) {
			continue
		}
		withWeight := q.Clone()
		withWeight.EffectiveWeight = q.Weight.EffectiveFor(profile.Industry, profile.CompanySize)
		out = append(out, withWeight)
	}
	return out
}

func dependenciesMet(q *domain.Question, answers map[string]int) bool {
	for _, dep := range q.Dependencies {
		recorded, ok := answers[dep.QuestionID]
		if !ok || recorded != dep.RequiredAnswer {
			return false
		}
	}
	return true
}
