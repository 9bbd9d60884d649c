// Package config provides configuration data structures for offerdesk.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Config represents the complete offerdesk configuration loaded from config.yaml.
type Config struct {
	API       APIConfig       `yaml:"api"       json:"api"       mapstructure:"api"`
	Session   SessionConfig   `yaml:"session"   json:"session"   mapstructure:"session"`
	Offers    OffersConfig    `yaml:"offers"    json:"offers"    mapstructure:"offers"`
	Dashboard DashboardConfig `yaml:"dashboard" json:"dashboard" mapstructure:"dashboard"`
	Log       LogConfig       `yaml:"log"       json:"log"       mapstructure:"log"`
}

// APIConfig configures the remote API client.
type APIConfig struct {
	// BaseURL is the scheme and host of the API, without the /api suffix.
	BaseURL string `yaml:"base_url" json:"base_url" mapstructure:"base_url"`
	// Timeout bounds every request (default: 15s).
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
}

// SessionConfig configures where the login session is persisted.
type SessionConfig struct {
	// Path is the session file. Empty means <config dir>/session.json.
	Path string `yaml:"path" json:"path" mapstructure:"path"`
}

// OffersConfig configures the offer list view.
type OffersConfig struct {
	// PerPage is the initial rows-per-page (default: 5).
	PerPage int `yaml:"per_page" json:"per_page" mapstructure:"per_page"`
	// PageSizes is the allowed rows-per-page set (default: 5, 10, 25).
	PageSizes []int `yaml:"page_sizes" json:"page_sizes" mapstructure:"page_sizes"`
	// SearchField is the initial attribute searched (default: name).
	SearchField string `yaml:"search_field" json:"search_field" mapstructure:"search_field"`
}

// Dashboard periods accepted by the summary and stat endpoints.
const (
	PeriodThisWeek = "this-week"
	PeriodPrevWeek = "prev-week"
)

// DashboardConfig configures the dashboard screen.
type DashboardConfig struct {
	// Period is the initial period (default: this-week).
	Period string `yaml:"period" json:"period" mapstructure:"period"`
}

// LogConfig configures file logging.
type LogConfig struct {
	// Dir is the log directory. Empty means <config dir>/logs.
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// Level is one of debug, info, warn, error (default: info).
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// JSON switches the file format from text to JSON lines.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
}

// Default values.
const (
	DefaultBaseURL     = "https://dummy-1.hiublue.com"
	DefaultTimeout     = 15 * time.Second
	DefaultPerPage     = 5
	DefaultSearchField = "name"
	DefaultLogLevel    = "info"
)

// DefaultPageSizes returns the allowed rows-per-page options.
func DefaultPageSizes() []int {
	return []int{5, 10, 25}
}

// SearchFields lists the offer attributes the search box can target.
var SearchFields = []string{"name", "email", "phone", "company", "job_title", "type", "status"}

var logLevels = []string{"debug", "info", "warn", "error"}

// Dir returns the offerdesk configuration directory.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".offerdesk"
	}
	return filepath.Join(base, "offerdesk")
}

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Offers: OffersConfig{
			PerPage:     DefaultPerPage,
			PageSizes:   DefaultPageSizes(),
			SearchField: DefaultSearchField,
		},
		Dashboard: DashboardConfig{
			Period: PeriodThisWeek,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = defaults.API.Timeout
	}

	if c.Offers.PerPage == 0 {
		c.Offers.PerPage = defaults.Offers.PerPage
	}
	if len(c.Offers.PageSizes) == 0 {
		c.Offers.PageSizes = defaults.Offers.PageSizes
	}
	if c.Offers.SearchField == "" {
		c.Offers.SearchField = defaults.Offers.SearchField
	}

	if c.Dashboard.Period == "" {
		c.Dashboard.Period = defaults.Dashboard.Period
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// SessionPath returns the effective session file path.
func (c *Config) SessionPath() string {
	if c.Session.Path != "" {
		return c.Session.Path
	}
	return filepath.Join(Dir(), "session.json")
}

// LogDir returns the effective log directory.
func (c *Config) LogDir() string {
	if c.Log.Dir != "" {
		return c.Log.Dir
	}
	return filepath.Join(Dir(), "logs")
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.API.BaseURL != "" {
		u, err := url.Parse(c.API.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, &ValidationError{Field: "api.base_url", Message: "must be an http or https URL"})
		}
	}
	if c.API.Timeout < 0 {
		errs = append(errs, &ValidationError{Field: "api.timeout", Message: "must be non-negative"})
	}

	for _, size := range c.Offers.PageSizes {
		if size <= 0 {
			errs = append(errs, &ValidationError{Field: "offers.page_sizes", Message: "must contain only positive sizes"})
			break
		}
	}
	if c.Offers.PerPage != 0 && len(c.Offers.PageSizes) > 0 && !slices.Contains(c.Offers.PageSizes, c.Offers.PerPage) {
		errs = append(errs, &ValidationError{
			Field:   "offers.per_page",
			Message: fmt.Sprintf("must be one of offers.page_sizes %v", c.Offers.PageSizes),
		})
	}
	if c.Offers.SearchField != "" && !slices.Contains(SearchFields, c.Offers.SearchField) {
		errs = append(errs, &ValidationError{
			Field:   "offers.search_field",
			Message: "must be one of " + strings.Join(SearchFields, ", "),
		})
	}

	if c.Dashboard.Period != "" {
		switch c.Dashboard.Period {
		case PeriodThisWeek, PeriodPrevWeek:
			// valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "dashboard.period",
				Message: "must be 'this-week' or 'prev-week'",
			})
		}
	}

	if c.Log.Level != "" && !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
