package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/metis/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// MaturityColor returns the lipgloss style for a maturity level.
func MaturityColor(level domain.MaturityLevel) lipgloss.Style {
	switch level {
	case domain.MaturityOptimizing, domain.MaturityManaged:
		return StyleGreen
	case domain.MaturityDefined:
		return StyleBlue
	case domain.MaturityDeveloping:
		return StyleYellow
	case domain.MaturityInitial:
		return StyleRed
	default:
		return StyleDim
	}
}

// MaturityBadge returns a colored maturity indicator such as "● OPTIMIZING".
func MaturityBadge(level domain.MaturityLevel) string {
	label := "● " + strings.ToUpper(string(level))
	return MaturityColor(level).Render(label)
}

// PriorityBadge returns a colored priority label.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("HIGH")
	case domain.PriorityMedium:
		return StyleYellow.Render("MEDIUM")
	case domain.PriorityLow:
		return StyleDim.Render("LOW")
	default:
		return StyleDim.Render(string(p))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
