package catalog

import (
	"fmt"

	"github.com/alexanderramin/metis/internal/domain"
)

// Validate checks the catalog's internal consistency. Returns every problem
// found rather than stopping at the first. An empty result means the
// catalog is sound; the test suite enforces this for the shipped data.
func Validate() []error {
	var errs []error

	all := All()
	byID := make(map[string]*domain.Question, len(all))
	for i := range all {
		q := &all[i]
		if q.ID == "" {
			errs = append(errs, fmt.Errorf("question at index %d has empty id", i))
			continue
		}
		if _, dup := byID[q.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate question id %q", q.ID))
			continue
		}
		byID[q.ID] = q
	}

	for i := range all {
		errs = append(errs, validateQuestion(&all[i], byID)...)
	}
	return errs
}

func validateQuestion(q *domain.Question, byID map[string]*domain.Question) []error {
	var errs []error

	if q.Text == "" {
		errs = append(errs, fmt.Errorf("question %q: text is required", q.ID))
	}
	if q.Domain == "" {
		errs = append(errs, fmt.Errorf("question %q: domain is required", q.ID))
	} else if !knownDomain(q.Domain) {
		errs = append(errs, fmt.Errorf("question %q: unknown domain %q", q.ID, q.Domain))
	}

	errs = append(errs, validateOptions(q)...)
	errs = append(errs, validateWeight(q)...)

	for _, dep := range q.Dependencies {
		target, ok := byID[dep.QuestionID]
		if !ok {
			errs = append(errs, fmt.Errorf("question %q: dependency references unknown question %q", q.ID, dep.QuestionID))
			continue
		}
		if target.OptionByValue(dep.RequiredAnswer) == nil {
			errs = append(errs, fmt.Errorf("question %q: dependency on %q requires answer %d which %q does not offer",
				q.ID, dep.QuestionID, dep.RequiredAnswer, dep.QuestionID))
		}
	}
	return errs
}

// validateOptions enforces the option value contract: either the full
// 4-point scale {1,2,3,4} or a two-option question using {1,4}.
func validateOptions(q *domain.Question) []error {
	var errs []error

	switch len(q.Options) {
	case 2:
		if q.Options[0].Value != 1 || q.Options[1].Value != 4 {
			errs = append(errs, fmt.Errorf("question %q: two-option questions must use values {1,4}", q.ID))
		}
	case 4:
		for i, opt := range q.Options {
			if opt.Value != i+1 {
				errs = append(errs, fmt.Errorf("question %q: option %d has value %d, want %d", q.ID, i, opt.Value, i+1))
			}
		}
	default:
		errs = append(errs, fmt.Errorf("question %q: has %d options, want 2 or 4", q.ID, len(q.Options)))
	}

	for _, opt := range q.Options {
		if opt.Label == "" {
			errs = append(errs, fmt.Errorf("question %q: option %d has empty label", q.ID, opt.Value))
		}
		if opt.EstimatedCost != nil {
			if opt.EstimatedCost.Min < 0 || opt.EstimatedCost.Max < opt.EstimatedCost.Min {
				errs = append(errs, fmt.Errorf("question %q: option %d has invalid cost range", q.ID, opt.Value))
			}
			if opt.EstimatedCost.Currency == "" {
				errs = append(errs, fmt.Errorf("question %q: option %d cost missing currency", q.ID, opt.Value))
			}
		}
	}
	return errs
}

// validateWeight requires a positive base weight and multiplier coverage of
// every enum member, so effective weight derivation never silently falls
// back to 1 for shipped data.
func validateWeight(q *domain.Question) []error {
	var errs []error

	if q.Weight.Base <= 0 {
		errs = append(errs, fmt.Errorf("question %q: base weight must be positive", q.ID))
	}
	for ind := range domain.ValidIndustries {
		if _, ok := q.Weight.Industry[ind]; !ok {
			errs = append(errs, fmt.Errorf("question %q: missing industry multiplier for %q", q.ID, ind))
		}
	}
	for size := range domain.ValidCompanySizes {
		if _, ok := q.Weight.CompanySize[size]; !ok {
			errs = append(errs, fmt.Errorf("question %q: missing company size multiplier for %q", q.ID, size))
		}
	}
	return errs
}

func knownDomain(d domain.ReadinessDomain) bool {
	for _, known := range domain.AllDomains {
		if known == d {
			return true
		}
	}
	return false
}
