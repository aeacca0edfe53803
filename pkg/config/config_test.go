package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func setupHome(t *testing.T) string {
	t.Helper()
	// Create a temporary directory to act as the user's home directory
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests
	return tempDir
}

func TestConfigLoadSave(t *testing.T) {
	tempDir := setupHome(t)

	// 1. Test Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	// 2. Modify and Save the config
	cfg.BaseURL = "http://example.test/schedule"
	cfg.Encoding = "windows-1251"
	cfg.TimeoutSeconds = 15
	cfg.Timezone = "Europe/Moscow"
	cfg.AccentColor = "42"
	cfg.SavedRoutes = []Route{{Dispatch: "Москва", Arrival: "Подольск"}}

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Verify the file was actually created
	configPath := filepath.Join(tempDir, ".prigorodctl.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Test Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir := setupHome(t)

	configPath := filepath.Join(tempDir, ".prigorodctl.json")
	if err := os.WriteFile(configPath, []byte("invalid json { content"), 0644); err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	setupHome(t)

	tests := []struct {
		name string
		cfg  AppConfig
	}{
		{"bad url", AppConfig{BaseURL: "not a url"}},
		{"unknown encoding", AppConfig{Encoding: "klingon-8"}},
		{"timeout too large", AppConfig{TimeoutSeconds: 3600}},
		{"unknown timezone", AppConfig{Timezone: "Mars/Olympus"}},
		{"incomplete route", AppConfig{SavedRoutes: []Route{{Dispatch: "Москва"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Save(&tt.cfg); err == nil {
				t.Errorf("expected Save to reject %+v", tt.cfg)
			}
		})
	}
}

func TestResolveEnvOverrides(t *testing.T) {
	setupHome(t)

	if err := Save(&AppConfig{BaseURL: "http://file.test/schedule", TimeoutSeconds: 5}); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	t.Setenv("PRIGOROD_BASE_URL", "http://env.test/schedule")
	t.Setenv("PRIGOROD_TIMEOUT", "20")
	t.Setenv("PRIGOROD_ENCODING", "cp1251")
	t.Setenv("PRIGOROD_TIMEZONE", "Europe/Moscow")
	t.Setenv("PRIGOROD_DEBUG", "true")

	cfg, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if cfg.BaseURL != "http://env.test/schedule" {
		t.Errorf("expected env base URL to win, got %s", cfg.BaseURL)
	}
	if cfg.Timeout() != 20*time.Second {
		t.Errorf("expected 20s timeout, got %s", cfg.Timeout())
	}
	if cfg.Encoding != "cp1251" {
		t.Errorf("expected cp1251 encoding, got %s", cfg.Encoding)
	}
	if !cfg.Debug {
		t.Errorf("expected debug to be enabled")
	}

	loc, err := cfg.Location()
	if err != nil || loc.String() != "Europe/Moscow" {
		t.Errorf("expected Europe/Moscow location, got %v (%v)", loc, err)
	}
}

func TestResolveRejectsBadEnv(t *testing.T) {
	setupHome(t)
	t.Setenv("PRIGOROD_TIMEOUT", "soon")

	if _, err := Resolve(); err == nil {
		t.Errorf("expected non-numeric PRIGOROD_TIMEOUT to be rejected")
	}
}

func TestAddRoute(t *testing.T) {
	cfg := &AppConfig{}
	r := Route{Dispatch: "Москва", Arrival: "Химки"}

	if !cfg.AddRoute(r) {
		t.Errorf("expected first AddRoute to succeed")
	}
	if cfg.AddRoute(r) {
		t.Errorf("expected duplicate route to be ignored")
	}
	if len(cfg.SavedRoutes) != 1 {
		t.Errorf("expected 1 saved route, got %d", len(cfg.SavedRoutes))
	}
}

func TestLocationDefaultsToLocal(t *testing.T) {
	loc, err := (&AppConfig{}).Location()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc != time.Local {
		t.Errorf("expected time.Local, got %v", loc)
	}
}

func TestClientOptionsLogger(t *testing.T) {
	cfg := &AppConfig{BaseURL: "http://example.test/schedule", TimeoutSeconds: 7}

	opts := cfg.ClientOptions()
	if opts.Logger != nil {
		t.Errorf("expected no logger without debug")
	}
	if opts.BaseURL != cfg.BaseURL || opts.Timeout != 7*time.Second {
		t.Errorf("expected settings to carry over, got %+v", opts)
	}

	cfg.Debug = true
	if cfg.ClientOptions().Logger == nil {
		t.Errorf("expected a logger when debug is enabled")
	}
}
