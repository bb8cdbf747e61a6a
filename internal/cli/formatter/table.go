package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tableColGap = 2

// RenderTable renders an aligned table with a dim separator under the header.
// Cells may carry ANSI styling; alignment uses visible width.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := columnWidths(headers, rows)

	var b strings.Builder
	writeTableRow(&b, headers, widths, func(cell string) string {
		return StyleHeader.Render(cell)
	})

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", tableColGap))
		}
	}
	b.WriteByte('\n')

	for _, row := range rows {
		writeTableRow(&b, row, widths, nil)
	}

	return b.String()
}

// columnWidths returns the visible width of the widest cell in each column.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// writeTableRow writes one padded row, applying style to each cell when
// non-nil. Missing trailing cells render empty.
func writeTableRow(b *strings.Builder, cells []string, widths []int, style func(string) string) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		visible := lipgloss.Width(cell)
		if style != nil {
			cell = style(cell)
		}
		b.WriteString(cell)
		if i < len(widths)-1 {
			pad := w - visible
			if pad < 0 {
				pad = 0
			}
			b.WriteString(strings.Repeat(" ", pad+tableColGap))
		}
	}
	b.WriteByte('\n')
}
