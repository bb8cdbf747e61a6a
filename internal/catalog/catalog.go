// Package catalog holds the static question bank: base questions asked of
// every organization, industry-specific follow-ups, and maturity escalation
// questions. The catalog is read-only at runtime; every accessor returns
// deep copies so callers can never mutate the underlying entries.
package catalog

import "github.com/alexanderramin/metis/internal/domain"

func cloneAll(qs []domain.Question) []domain.Question {
	out := make([]domain.Question, len(qs))
	for i := range qs {
		out[i] = qs[i].Clone()
	}
	return out
}

// BaseQuestions returns the questions asked of every organization.
func BaseQuestions() []domain.Question {
	return cloneAll(baseQuestions)
}

// MaturityQuestions returns the escalation follow-ups gated on high answers
// to earlier questions.
func MaturityQuestions() []domain.Question {
	return cloneAll(maturityQuestions)
}

// IndustryQuestions returns the follow-ups for the given industry. Unknown
// industries yield an empty slice.
func IndustryQuestions(industry domain.Industry) []domain.Question {
	return cloneAll(industryQuestions[industry])
}

// All returns every catalog entry in canonical order: base questions,
// maturity follow-ups, then industry follow-ups for every industry. This
// order defines presentation sequence after filtering.
func All() []domain.Question {
	out := cloneAll(baseQuestions)
	out = append(out, cloneAll(maturityQuestions)...)
	for _, ind := range orderedIndustries {
		out = append(out, cloneAll(industryQuestions[ind])...)
	}
	return out
}

// ForProfile returns the catalog entries relevant to one profile, in
// canonical order: base, maturity follow-ups, then the profile's industry
// follow-ups. Dependency filtering happens in the selector, not here.
func ForProfile(industry domain.Industry) []domain.Question {
	out := cloneAll(baseQuestions)
	out = append(out, cloneAll(maturityQuestions)...)
	out = append(out, cloneAll(industryQuestions[industry])...)
	return out
}

// Lookup returns the catalog entry with the given id, or nil.
func Lookup(id string) *domain.Question {
	for i := range baseQuestions {
		if baseQuestions[i].ID == id {
			q := baseQuestions[i].Clone()
			return &q
		}
	}
	for i := range maturityQuestions {
		if maturityQuestions[i].ID == id {
			q := maturityQuestions[i].Clone()
			return &q
		}
	}
	for _, qs := range industryQuestions {
		for i := range qs {
			if qs[i].ID == id {
				q := qs[i].Clone()
				return &q
			}
		}
	}
	return nil
}

// orderedIndustries fixes iteration order over the industry map so All()
// is deterministic.
var orderedIndustries = []domain.Industry{
	domain.IndustryHealthcare,
	domain.IndustryFinance,
	domain.IndustryManufacturing,
	domain.IndustryRetail,
	domain.IndustryTechnology,
	domain.IndustryOther,
}
