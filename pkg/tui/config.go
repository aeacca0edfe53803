package tui

import (
	"fmt"
	"strconv"
	"strings"

	"prigorodctl/pkg/config"
	"prigorodctl/pkg/schedule"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Connection (URL, Encoding, Timeout)", "connection"),
						huh.NewOption("Set Timezone", "timezone"),
						huh.NewOption("Remove Saved Routes", "routes"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "connection":
			err = runSetConnectionTUI(cfg)
		case "timezone":
			err = runSetTimezoneTUI(cfg)
		case "routes":
			err = runPruneRoutesTUI(cfg)
		case "view":
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.prigorodctl.json) ---"))
			fmt.Printf("Schedule URL: %s\n", valueOr(cfg.BaseURL, schedule.DefaultBaseURL))
			fmt.Printf("Encoding: %s\n", valueOr(cfg.Encoding, schedule.DefaultEncoding))
			fmt.Printf("Timeout: %s\n", valueOr(timeoutLabel(cfg.TimeoutSeconds), schedule.DefaultTimeout.String()))
			fmt.Printf("Timezone: %s\n", valueOr(cfg.Timezone, "local"))
			fmt.Printf("Saved Routes: %d\n", len(cfg.SavedRoutes))
			fmt.Printf("Accent Color: %s\n", valueOr(cfg.AccentColor, defaultAccent))
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func timeoutLabel(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	return fmt.Sprintf("%ds", seconds)
}

func runSetConnectionTUI(cfg *config.AppConfig) error {
	baseURL := valueOr(cfg.BaseURL, schedule.DefaultBaseURL)
	encoding := valueOr(cfg.Encoding, schedule.DefaultEncoding)
	timeout := strconv.Itoa(int(schedule.DefaultTimeout.Seconds()))
	if cfg.TimeoutSeconds > 0 {
		timeout = strconv.Itoa(cfg.TimeoutSeconds)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schedule URL").
				Value(&baseURL),
			huh.NewSelect[string]().
				Title("Site encoding").
				Options(
					huh.NewOption("windows-1251", "windows-1251"),
					huh.NewOption("koi8-r", "koi8-r"),
					huh.NewOption("utf-8", "utf-8"),
				).
				Value(&encoding),
			huh.NewInput().
				Title("Timeout (seconds)").
				Value(&timeout).
				Validate(validateTimeout),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	seconds, _ := strconv.Atoi(timeout)
	cfg.BaseURL = strings.TrimSpace(baseURL)
	cfg.Encoding = encoding
	cfg.TimeoutSeconds = seconds

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Connection settings saved.\n"))
	return nil
}

func validateTimeout(s string) error {
	seconds, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || seconds < 1 || seconds > 300 {
		return fmt.Errorf("must be a whole number of seconds between 1 and 300")
	}
	return nil
}

func runSetTimezoneTUI(cfg *config.AppConfig) error {
	selected := cfg.Timezone

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which timezone decides whether a train already left?").
				Options(
					huh.NewOption("System local time", ""),
					huh.NewOption("Moscow (Europe/Moscow)", "Europe/Moscow"),
					huh.NewOption("Kaliningrad (Europe/Kaliningrad)", "Europe/Kaliningrad"),
					huh.NewOption("Samara (Europe/Samara)", "Europe/Samara"),
					huh.NewOption("Yekaterinburg (Asia/Yekaterinburg)", "Asia/Yekaterinburg"),
				).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Timezone = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Timezone set to: %s\n", valueOr(selected, "local"))))
	return nil
}

func runPruneRoutesTUI(cfg *config.AppConfig) error {
	if len(cfg.SavedRoutes) == 0 {
		fmt.Println(errorStyle.Render("No saved routes yet. Save one from the schedule view or with 'prigorodctl config --save-route'."))
		return nil
	}

	var opts []huh.Option[int]
	for i, r := range cfg.SavedRoutes {
		opts = append(opts, huh.NewOption(routeTitle(r), i).Selected(true))
	}

	var keep []int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Routes to keep").
				Description("Space = toggle, Enter = confirm.").
				Options(opts...).
				Value(&keep),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SavedRoutes = keepRoutes(cfg.SavedRoutes, keep)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Kept %d saved routes.\n", len(cfg.SavedRoutes))))
	return nil
}

// keepRoutes returns the routes at the given indexes, in their original order
func keepRoutes(routes []config.Route, indexes []int) []config.Route {
	wanted := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		wanted[i] = true
	}

	var kept []config.Route
	for i, r := range routes {
		if wanted[i] {
			kept = append(kept, r)
		}
	}
	return kept
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	selected := accentFor(cfg)

	var opts []huh.Option[string]
	for _, lc := range lineColors {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(lc.Color)).Render("██")
		opts = append(opts, huh.NewOption(swatch+" "+lc.Name, lc.Color))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Accent color").
				Options(opts...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.AccentColor = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Accent color saved.\n"))
	return nil
}
