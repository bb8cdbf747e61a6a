package domain

// CostRange is an estimated investment range attached to an answer option.
type CostRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// Midpoint returns the center of the range, used for cost aggregation.
func (c CostRange) Midpoint() float64 {
	return (c.Min + c.Max) / 2
}

// Option is one answer choice on the 4-point scale. Two-option follow-up
// questions use values {1,4} only.
type Option struct {
	Value           int        `json:"value"`
	Label           string     `json:"label"`
	Description     string     `json:"description"`
	Recommendations []string   `json:"recommendations,omitempty"`
	EstimatedCost   *CostRange `json:"estimatedCost,omitempty"`
}

// Dependency gates a question on a prior answer. The recorded answer must
// equal RequiredAnswer exactly; a higher value does not satisfy it.
type Dependency struct {
	QuestionID     string `json:"questionId"`
	RequiredAnswer int    `json:"requiredAnswer"`
}

// WeightTable holds a question's base importance and the per-industry and
// per-size multipliers used to derive its effective weight for a profile.
type WeightTable struct {
	Base        float64                 `json:"baseWeight"`
	Industry    map[Industry]float64    `json:"industry"`
	CompanySize map[CompanySize]float64 `json:"companySize"`
}

// EffectiveFor returns base × industry multiplier × company-size multiplier.
// A missing multiplier counts as 1.
func (w WeightTable) EffectiveFor(industry Industry, size CompanySize) float64 {
	eff := w.Base
	if m, ok := w.Industry[industry]; ok {
		eff *= m
	}
	if m, ok := w.CompanySize[size]; ok {
		eff *= m
	}
	return eff
}

// Question is an immutable catalog entry. Runtime adjustments (effective
// weight) are carried on copies; catalog entries are never mutated.
type Question struct {
	ID           string          `json:"id"`
	Domain       ReadinessDomain `json:"domain"`
	Text         string          `json:"text"`
	Industries   []Industry      `json:"industry,omitempty"`
	CompanySizes []CompanySize   `json:"companySize,omitempty"`
	Weight       WeightTable     `json:"weight"`
	Options      []Option        `json:"options"`
	Dependencies []Dependency    `json:"dependencies,omitempty"`

	// EffectiveWeight is filled in by the selector for the active profile.
	// Zero on raw catalog entries.
	EffectiveWeight float64 `json:"effectiveWeight,omitempty"`
}

// OptionByValue returns the option with the given value, or nil.
func (q *Question) OptionByValue(value int) *Option {
	for i := range q.Options {
		if q.Options[i].Value == value {
			return &q.Options[i]
		}
	}
	return nil
}

// AllowsIndustry reports whether the question's industry allow-list (if any)
// includes the given industry.
func (q *Question) AllowsIndustry(industry Industry) bool {
	if len(q.Industries) == 0 {
		return true
	}
	for _, ind := range q.Industries {
		if ind == industry {
			return true
		}
	}
	return false
}

// AllowsCompanySize reports whether the question's size allow-list (if any)
// includes the given size.
func (q *Question) AllowsCompanySize(size CompanySize) bool {
	if len(q.CompanySizes) == 0 {
		return true
	}
	for _, s := range q.CompanySizes {
		if s == size {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. Callers that adjust weights or hand questions
// across package boundaries work on clones so the catalog stays pristine.
func (q *Question) Clone() Question {
	out := *q
	out.Industries = append([]Industry(nil), q.Industries...)
	out.CompanySizes = append([]CompanySize(nil), q.CompanySizes...)
	out.Dependencies = append([]Dependency(nil), q.Dependencies...)
	out.Options = make([]Option, len(q.Options))
	for i, opt := range q.Options {
		o := opt
		o.Recommendations = append([]string(nil), opt.Recommendations...)
		if opt.EstimatedCost != nil {
			cost := *opt.EstimatedCost
			o.EstimatedCost = &cost
		}
		out.Options[i] = o
	}
	out.Weight.Industry = make(map[Industry]float64, len(q.Weight.Industry))
	for k, v := range q.Weight.Industry {
		out.Weight.Industry[k] = v
	}
	out.Weight.CompanySize = make(map[CompanySize]float64, len(q.Weight.CompanySize))
	for k, v := range q.Weight.CompanySize {
		out.Weight.CompanySize[k] = v
	}
	return out
}
