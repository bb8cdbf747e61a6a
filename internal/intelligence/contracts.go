package intelligence

import (
	"fmt"

	"github.com/alexanderramin/metis/internal/domain"
)

// ResultNarrative is a short plain-language reading of a completed
// assessment: what the score means and what to do first.
type ResultNarrative struct {
	SummaryShort    string     `json:"summary_short"`
	SummaryDetailed string     `json:"summary_detailed"`
	NextSteps       []NextStep `json:"next_steps"`
	Confidence      float64    `json:"confidence"`
}

// NextStep is one concrete action tied to a scored readiness domain.
type NextStep struct {
	Domain   domain.ReadinessDomain `json:"domain"`
	Action   string                 `json:"action"`
	Priority domain.Priority        `json:"priority"`
}

// ValidateNarrative checks that an LLM-produced narrative stays grounded in
// the assessment: every next step must reference a domain that was actually
// scored, and confidence must be a sane probability. Ungrounded output is
// rejected so the caller can fall back to the deterministic narrative.
func ValidateNarrative(n ResultNarrative, result domain.AssessmentResult) error {
	if n.SummaryShort == "" {
		return fmt.Errorf("empty summary")
	}
	if n.Confidence < 0 || n.Confidence > 1 {
		return fmt.Errorf("confidence %f out of range", n.Confidence)
	}
	for _, step := range n.NextSteps {
		if _, ok := result.DomainScores[step.Domain]; !ok {
			return fmt.Errorf("next step references unscored domain %q", step.Domain)
		}
		switch step.Priority {
		case domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
		default:
			return fmt.Errorf("next step has unknown priority %q", step.Priority)
		}
	}
	return nil
}
