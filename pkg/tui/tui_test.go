package tui

import (
	"reflect"
	"testing"

	"prigorodctl/pkg/config"
)

func TestRouteTitle(t *testing.T) {
	got := routeTitle(config.Route{Dispatch: "москва", Arrival: "подольск"})
	if got != "Москва → Подольск" {
		t.Errorf("expected title-cased route, got %q", got)
	}
}

func TestRouteOptions(t *testing.T) {
	routes := []config.Route{
		{Dispatch: "Москва", Arrival: "Подольск"},
		{Dispatch: "Москва", Arrival: "Химки"},
	}

	opts := routeOptions(routes)
	if len(opts) != 3 {
		t.Fatalf("expected 2 saved routes plus a new entry, got %d", len(opts))
	}
	if opts[1].Value != "1" {
		t.Errorf("expected second option to point at index 1, got %q", opts[1].Value)
	}
	if opts[2].Value != newRoute {
		t.Errorf("expected last option to start a new route, got %q", opts[2].Value)
	}
}

func TestKeepRoutes(t *testing.T) {
	routes := []config.Route{
		{Dispatch: "A", Arrival: "B"},
		{Dispatch: "C", Arrival: "D"},
		{Dispatch: "E", Arrival: "F"},
	}

	kept := keepRoutes(routes, []int{2, 0})
	expected := []config.Route{routes[0], routes[2]}
	if !reflect.DeepEqual(kept, expected) {
		t.Errorf("expected %+v, got %+v", expected, kept)
	}
}

func TestValidators(t *testing.T) {
	if validateStation("  ") == nil {
		t.Errorf("expected blank station to be rejected")
	}
	if validateStation("Химки") != nil {
		t.Errorf("expected station name to be accepted")
	}
	if validateTimeout("0") == nil || validateTimeout("abc") == nil {
		t.Errorf("expected invalid timeouts to be rejected")
	}
	if validateTimeout("30") != nil {
		t.Errorf("expected 30 seconds to be accepted")
	}
}

func TestAccentFor(t *testing.T) {
	if got := accentFor(nil); got != defaultAccent {
		t.Errorf("expected default accent without config, got %q", got)
	}
	if got := accentFor(&config.AppConfig{}); got != defaultAccent {
		t.Errorf("expected default accent for empty setting, got %q", got)
	}
	if got := accentFor(&config.AppConfig{AccentColor: "160"}); got != "160" {
		t.Errorf("expected saved accent, got %q", got)
	}
}

func TestEmptyMessage(t *testing.T) {
	if emptyMessage(true) == emptyMessage(false) {
		t.Errorf("expected a different message when departed trips are included")
	}
	if emptyMessage(true) != "No trips found for this route." {
		t.Errorf("unexpected message for show-all: %q", emptyMessage(true))
	}
}
