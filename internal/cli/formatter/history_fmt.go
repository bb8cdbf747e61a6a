package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/metis/internal/domain"
)

// FormatHistory renders completed assessments as a table, newest first.
func FormatHistory(records []*domain.AssessmentRecord) string {
	if len(records) == 0 {
		return Dim("No completed assessments yet. Run `metis assess` to start one.")
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			TruncID(rec.ID),
			HumanDate(rec.CompletedAt),
			string(rec.Profile.Industry),
			string(rec.Profile.CompanySize),
			fmt.Sprintf("%d", rec.Result.TotalScore),
			MaturityBadge(rec.Result.MaturityLevel),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(
		[]string{"ID", "Completed", "Industry", "Size", "Score", "Maturity"},
		rows))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d assessment(s). Use `metis history show <id>` for details.", len(records))))
	return b.String()
}
