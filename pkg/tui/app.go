package tui

import (
	"context"

	"prigorodctl/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const defaultAccent = "99"

var (
	// These act as fallbacks initially, but are replaced by GetTheme()
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// lineColors are the accent choices, named after the radial directions of the suburban network
var lineColors = []struct {
	Name  string
	Color string
}{
	{"Violet (default)", defaultAccent},
	{"Курское", "160"},
	{"Ярославское", "33"},
	{"Казанское", "42"},
	{"Киевское", "214"},
}

// accentFor picks the saved accent color or the default one
func accentFor(cfg *config.AppConfig) string {
	if cfg != nil && cfg.AccentColor != "" {
		return cfg.AccentColor
	}
	return defaultAccent
}

// GetTheme builds the form theme from the saved accent and refreshes accentStyle to match.
func GetTheme() *huh.Theme {
	cfg, _ := config.Load()
	accent := lipgloss.Color(accentFor(cfg))
	accentStyle = lipgloss.NewStyle().Foreground(accent)

	t := huh.ThemeBase()
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(accent)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(accent)
	return t
}

// RunTUI launches the main menu interactive form experience
func RunTUI(ctx context.Context) error {
	var action string

	initialForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("🚆 Check Schedule", "schedule"),
					huh.NewOption("⚙️ Settings", "config"),
				).
				Value(&action),
		),
	).WithTheme(GetTheme())

	if err := initialForm.Run(); err != nil {
		return err
	}

	if action == "config" {
		return RunConfigTUI()
	}

	return RunScheduleTUI(ctx)
}
