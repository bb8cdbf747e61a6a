package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/metis/internal/intelligence"
)

// FormatNarrative renders an LLM (or deterministic) readiness narrative.
func FormatNarrative(n *intelligence.ResultNarrative) string {
	var b strings.Builder

	b.WriteString(Bold(n.SummaryShort))
	b.WriteString("\n\n")
	b.WriteString(n.SummaryDetailed)
	b.WriteString("\n")

	if len(n.NextSteps) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Next Steps"))
		b.WriteString("\n")
		for i, step := range n.NextSteps {
			b.WriteString(fmt.Sprintf("  %d. %s %s\n", i+1, PriorityBadge(step.Priority), step.Action))
			b.WriteString(Dim(fmt.Sprintf("     %s", DomainLabel(step.Domain))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Confidence: %.0f%%", n.Confidence*100)))

	return RenderBox("Readiness Briefing", b.String())
}
