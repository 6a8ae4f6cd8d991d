package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/handiism/fresh-releases/internal/model"
)

// ValidationError describes one invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every invalid setting.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return "invalid settings: " + strings.Join(msgs, "; ")
}

// Validate checks the settings and returns ValidationErrors listing every
// problem, or nil.
func (s *Settings) Validate() error {
	var errs ValidationErrors

	if u, err := url.Parse(s.APIURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ValidationError{"api_url", fmt.Sprintf("must be an http(s) URL, got %q", s.APIURL)})
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, ValidationError{"request_timeout", "must be positive"})
	}
	if s.RequestsPerSecond < 0 {
		errs = append(errs, ValidationError{"requests_per_second", "must not be negative"})
	}
	if s.MaxConcurrentUsers < 1 {
		errs = append(errs, ValidationError{"max_concurrent_users", "must be at least 1"})
	}
	if !validRange(s.Range) {
		errs = append(errs, ValidationError{"range", fmt.Sprintf("unknown range %q", s.Range)})
	}
	if _, err := model.ParseSortKey(s.Sort); err != nil {
		errs = append(errs, ValidationError{"sort", err.Error()})
	}

	switch s.Logging.Level {
	case "debug", "info", "warn", "error", "":
	default:
		errs = append(errs, ValidationError{"logging.level", fmt.Sprintf("unknown level %q", s.Logging.Level)})
	}
	switch s.Logging.Format {
	case "json", "text", "":
	default:
		errs = append(errs, ValidationError{"logging.format", fmt.Sprintf("unknown format %q", s.Logging.Format)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validRange(r string) bool {
	for _, rng := range model.Ranges {
		if string(rng) == r {
			return true
		}
	}
	return false
}
