package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rsanghvi/courtsched/internal/cli/formatter"
	"github.com/rsanghvi/courtsched/internal/domain"
)

// courtHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func courtHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runFileWizard collects the filing fields interactively.
func runFileWizard() (title, complexity string, err error) {
	options := make([]huh.Option[string], 0, len(domain.AllComplexities))
	for _, c := range domain.AllComplexities {
		options = append(options, huh.NewOption(string(c), string(c)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Case title").
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}).
				Value(&title),
			huh.NewSelect[string]().
				Title("Complexity").
				Description("Determines the priority queue and hearing length").
				Options(options...).
				Value(&complexity),
		),
	).WithTheme(courtHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", "", err
	}
	return title, complexity, nil
}
