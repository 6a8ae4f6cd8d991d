package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	ioutils "github.com/handiism/fresh-releases/internal/io"
	"github.com/handiism/fresh-releases/internal/model"
)

// DefaultAPIURL is the public ListenBrainz API root.
const DefaultAPIURL = "https://api.listenbrainz.org"

// EnvPrefix prefixes environment variables overriding settings, e.g.
// FRESH_RELEASES_USER_NAME or FRESH_RELEASES_DISPLAY_SHOW_TAGS.
const EnvPrefix = "FRESH_RELEASES"

// Settings holds all configuration options.
type Settings struct {
	// API settings
	APIURL             string  `json:"api_url" mapstructure:"api_url"`
	UserName           string  `json:"user_name" mapstructure:"user_name"`
	RequestTimeout     float64 `json:"request_timeout" mapstructure:"request_timeout"` // seconds
	RequestsPerSecond  float64 `json:"requests_per_second" mapstructure:"requests_per_second"`
	MaxConcurrentUsers int     `json:"max_concurrent_users" mapstructure:"max_concurrent_users"`

	// Initial page state
	Range              string `json:"range" mapstructure:"range"` // week, month, three_months
	Sort               string `json:"sort" mapstructure:"sort"`   // release_date, artist_credit_name, release_name
	ShowPastReleases   bool   `json:"show_past_releases" mapstructure:"show_past_releases"`
	ShowFutureReleases bool   `json:"show_future_releases" mapstructure:"show_future_releases"`

	Display DisplayConfig `json:"display" mapstructure:"display"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// DisplayConfig holds the initial column visibility.
type DisplayConfig struct {
	ShowReleaseTitle bool `json:"show_release_title" mapstructure:"show_release_title"`
	ShowArtist       bool `json:"show_artist" mapstructure:"show_artist"`
	ShowInformation  bool `json:"show_information" mapstructure:"show_information"`
	ShowTags         bool `json:"show_tags" mapstructure:"show_tags"`
	ShowListens      bool `json:"show_listens" mapstructure:"show_listens"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `json:"format" mapstructure:"format"` // json, text
	Output string `json:"output" mapstructure:"output"` // stdout, stderr, none, or file path
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		APIURL:             DefaultAPIURL,
		RequestTimeout:     30,
		RequestsPerSecond:  2,
		MaxConcurrentUsers: 4,

		Range:              string(model.RangeWeek),
		Sort:               string(model.SortReleaseDate),
		ShowPastReleases:   true,
		ShowFutureReleases: true,

		Display: DisplayConfig{
			ShowReleaseTitle: true,
			ShowArtist:       true,
			ShowInformation:  true,
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// DefaultPath returns the default settings file location,
// e.g. ~/.config/fresh-releases/config.json.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "fresh-releases", "config.json")
}

// Load reads settings from a JSON file and applies environment overrides.
//
// A missing file (or an empty path) yields the defaults, still subject to
// FRESH_RELEASES_* environment variables.
func Load(path string) (*Settings, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper creates Settings from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Settings, error) {
	settings := DefaultSettings()
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return settings, nil
}

// newViper returns a Viper instance reading JSON, with every default
// registered so that environment variables can override any key.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := DefaultSettings()
	v.SetDefault("api_url", d.APIURL)
	v.SetDefault("user_name", d.UserName)
	v.SetDefault("request_timeout", d.RequestTimeout)
	v.SetDefault("requests_per_second", d.RequestsPerSecond)
	v.SetDefault("max_concurrent_users", d.MaxConcurrentUsers)
	v.SetDefault("range", d.Range)
	v.SetDefault("sort", d.Sort)
	v.SetDefault("show_past_releases", d.ShowPastReleases)
	v.SetDefault("show_future_releases", d.ShowFutureReleases)
	v.SetDefault("display.show_release_title", d.Display.ShowReleaseTitle)
	v.SetDefault("display.show_artist", d.Display.ShowArtist)
	v.SetDefault("display.show_information", d.Display.ShowInformation)
	v.SetDefault("display.show_tags", d.Display.ShowTags)
	v.SetDefault("display.show_listens", d.Display.ShowListens)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)

	return v
}

// Save writes settings to a JSON file, creating parent directories.
func (s *Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return ioutils.WriteFile(context.Background(), path, data)
}

// Timeout returns the request timeout as a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.RequestTimeout * float64(time.Second))
}

// ToCriteria converts the initial page state to filter criteria.
// No release types or tags are selected.
func (s *Settings) ToCriteria() model.Criteria {
	c := model.DefaultCriteria()
	c.RangeDays = model.Range(s.Range).Days()
	c.IncludePast = s.ShowPastReleases
	c.IncludeFuture = s.ShowFutureReleases
	if key, err := model.ParseSortKey(s.Sort); err == nil {
		c.SortKey = key
	}
	return c
}

// ToDisplaySettings converts the display config to DisplaySettings.
func (s *Settings) ToDisplaySettings() model.DisplaySettings {
	return model.DisplaySettings{
		model.ColumnReleaseTitle: s.Display.ShowReleaseTitle,
		model.ColumnArtist:       s.Display.ShowArtist,
		model.ColumnInformation:  s.Display.ShowInformation,
		model.ColumnTags:         s.Display.ShowTags,
		model.ColumnListens:      s.Display.ShowListens,
	}
}

// PageType returns the initial page type: the user page when a user
// name is configured, the sitewide page otherwise.
func (s *Settings) PageType() model.PageType {
	return model.DefaultPageType(s.UserName)
}
