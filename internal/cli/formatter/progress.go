package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderScoreBar renders a 0-100 score as a bar like [████░░░░] 45/100.
// The bar is colored by maturity band: green >=75, blue >=60, yellow >=45,
// red below.
func RenderScoreBar(score float64, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	if width < 2 {
		width = 2
	}

	filled := int(score / 100 * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	style := StyleRed
	switch {
	case score >= 75:
		style = StyleGreen
	case score >= 60:
		style = StyleBlue
	case score >= 45:
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f/100", style.Render(bar), score)
}
