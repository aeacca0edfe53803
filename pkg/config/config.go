package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"prigorodctl/pkg/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Route is a saved pair of stations
type Route struct {
	Dispatch string `json:"dispatch" validate:"required"`
	Arrival  string `json:"arrival" validate:"required"`
}

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	BaseURL        string  `json:"base_url,omitempty" validate:"omitempty,http_url"`
	Encoding       string  `json:"encoding,omitempty" validate:"omitempty,codec"`
	TimeoutSeconds int     `json:"timeout_seconds,omitempty" validate:"omitempty,min=1,max=300"`
	Timezone       string  `json:"timezone,omitempty" validate:"omitempty,timezone"`
	AccentColor    string  `json:"accent_color,omitempty"`
	SavedRoutes    []Route `json:"saved_routes,omitempty" validate:"dive"`

	// Debug is only ever set from the environment
	Debug bool `json:"-"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("codec", func(fl validator.FieldLevel) bool {
		_, err := schedule.LookupEncoding(fl.Field().String())
		return err == nil
	})
	return v
}

// getConfigPath returns the absolute path to ~/.prigorodctl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".prigorodctl.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Resolve loads the config file, applies PRIGOROD_* overrides from the
// environment (and an optional .env file) and validates the result.
func Resolve() (*AppConfig, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	// .env is optional, it only seeds variables that are not already set
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv("PRIGOROD_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("PRIGOROD_ENCODING"); v != "" {
		cfg.Encoding = v
	}
	if v := os.Getenv("PRIGOROD_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("PRIGOROD_TIMEOUT"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PRIGOROD_TIMEOUT must be a number of seconds, got %q", v)
		}
		cfg.TimeoutSeconds = seconds
	}
	if v := os.Getenv("PRIGOROD_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PRIGOROD_DEBUG must be a boolean, got %q", v)
		}
		cfg.Debug = debug
	}
	return nil
}

// Validate checks the settings against their field rules
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Timeout returns the request timeout, or zero to use the client default
func (c *AppConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Location returns the configured timezone, falling back to the local one
func (c *AppConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("could not load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// AddRoute stores a route unless the same pair is already saved.
// Returns false if it was a duplicate.
func (c *AppConfig) AddRoute(r Route) bool {
	for _, existing := range c.SavedRoutes {
		if existing == r {
			return false
		}
	}
	c.SavedRoutes = append(c.SavedRoutes, r)
	return true
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Logger returns a stderr logger when PRIGOROD_DEBUG is set, nil otherwise
func (c *AppConfig) Logger() *log.Logger {
	if !c.Debug {
		return nil
	}
	return log.New(os.Stderr, "prigorodctl: ", log.LstdFlags|log.Lmicroseconds)
}

// ClientOptions maps the settings onto schedule client options
func (c *AppConfig) ClientOptions() schedule.Options {
	return schedule.Options{
		BaseURL:  c.BaseURL,
		Encoding: c.Encoding,
		Timeout:  c.Timeout(),
		Logger:   c.Logger(),
	}
}
