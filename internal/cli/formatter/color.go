package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rsanghvi/courtsched/internal/domain"
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

// StatusStyle returns the style for a case status.
func StatusStyle(status domain.CaseStatus) lipgloss.Style {
	switch status {
	case domain.CasePending:
		return StyleYellow
	case domain.CaseScheduled:
		return StyleBlue
	case domain.CaseInProgress:
		return StyleGreen
	case domain.CaseCompleted:
		return StyleDim
	case domain.CaseAdjourned:
		return StylePurple
	default:
		return StyleFg
	}
}

// Status renders a colored status label such as "● scheduled".
func Status(status domain.CaseStatus) string {
	return StatusStyle(status).Render("● " + string(status))
}

// Complexity renders the complexity with a color reflecting its queue weight.
func Complexity(c domain.CaseComplexity) string {
	switch c {
	case domain.ComplexitySimple:
		return StyleGreen.Render(string(c))
	case domain.ComplexityModerate:
		return StyleYellow.Render(string(c))
	case domain.ComplexityComplex:
		return StyleRed.Render(string(c))
	case domain.ComplexityHighlyComplex:
		return StyleRed.Render(string(c))
	default:
		return StyleFg.Render(string(c))
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
