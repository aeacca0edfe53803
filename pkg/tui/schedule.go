package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"prigorodctl/pkg/config"
	"prigorodctl/pkg/render"
	"prigorodctl/pkg/schedule"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const newRoute = "new"

// RunScheduleTUI lets the user pick a saved route or enter a new one and prints its schedule
func RunScheduleTUI(ctx context.Context) error {
	cfg, err := config.Resolve()
	if err != nil {
		return err
	}

	route, err := pickRoute(cfg)
	if err != nil {
		return err
	}

	var showAll bool
	allForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Include trips that already departed?").
				Affirmative("Yes").
				Negative("No").
				Value(&showAll),
		),
	).WithTheme(GetTheme())

	if err := allForm.Run(); err != nil {
		return err
	}

	client, err := schedule.NewClient(cfg.ClientOptions())
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	var trips []schedule.Trip
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching schedule %s → %s...", route.Dispatch, route.Arrival)).
		Action(func() {
			trips, fetchErr = client.Lookup(ctx, route.Dispatch, route.Arrival, showAll, time.Now().In(loc))
		}).
		Run()

	if fetchErr != nil {
		return fmt.Errorf("could not fetch schedule: %w", fetchErr)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- 🚆 %s ---", routeTitle(route))))

	if len(trips) == 0 {
		fmt.Println(errorStyle.Render(emptyMessage(showAll)))
	} else {
		fmt.Print(render.TableString(trips))
	}

	return offerSave(cfg, route)
}

func emptyMessage(showAll bool) string {
	if showAll {
		return "No trips found for this route."
	}
	return "No upcoming trips found for today."
}

func pickRoute(cfg *config.AppConfig) (config.Route, error) {
	choice := newRoute

	if len(cfg.SavedRoutes) > 0 {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Which route?").
					Options(routeOptions(cfg.SavedRoutes)...).
					Value(&choice),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return config.Route{}, err
		}
	}

	if choice != newRoute {
		i, err := strconv.Atoi(choice)
		if err != nil || i < 0 || i >= len(cfg.SavedRoutes) {
			return config.Route{}, fmt.Errorf("unknown route %q", choice)
		}
		return cfg.SavedRoutes[i], nil
	}

	var route config.Route
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Dispatch station").
				Placeholder("e.g. Москва").
				Value(&route.Dispatch).
				Validate(validateStation),
			huh.NewInput().
				Title("Arrival station").
				Placeholder("e.g. Подольск").
				Value(&route.Arrival).
				Validate(validateStation),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return config.Route{}, err
	}

	route.Dispatch = strings.TrimSpace(route.Dispatch)
	route.Arrival = strings.TrimSpace(route.Arrival)
	return route, nil
}

// routeOptions lists saved routes by index followed by an entry for a new route
func routeOptions(routes []config.Route) []huh.Option[string] {
	var opts []huh.Option[string]
	for i, r := range routes {
		opts = append(opts, huh.NewOption(routeTitle(r), strconv.Itoa(i)))
	}
	return append(opts, huh.NewOption("➕ New route", newRoute))
}

func routeTitle(r config.Route) string {
	title := cases.Title(language.Russian)
	return fmt.Sprintf("%s → %s", title.String(r.Dispatch), title.String(r.Arrival))
}

func validateStation(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("station name cannot be empty")
	}
	return nil
}

func offerSave(cfg *config.AppConfig, route config.Route) error {
	for _, r := range cfg.SavedRoutes {
		if r == route {
			return nil
		}
	}

	var save bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save this route for next time?").
				Value(&save),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}
	if !save {
		return nil
	}

	// Persist what is on disk, not the environment overrides merged into cfg
	stored, err := config.Load()
	if err != nil {
		return err
	}
	stored.AddRoute(route)
	if err := config.Save(stored); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Saved route %s\n", routeTitle(route))))
	return nil
}
