// Package config provides configuration management for fresh-releases.
//
// This package handles:
//   - Loading settings from JSON files with FRESH_RELEASES_* environment overrides
//   - Saving settings back to JSON
//   - Default configuration values
//   - Validation
//   - Conversion to model.Criteria and model.DisplaySettings for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// One week of past and future releases, sorted by release date
//	// Release title, artist and information columns shown
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Environment Overrides
//
// Every key can be overridden from the environment, nested keys joined
// with underscores:
//
//	FRESH_RELEASES_USER_NAME=rob
//	FRESH_RELEASES_DISPLAY_SHOW_TAGS=true
//	FRESH_RELEASES_LOGGING_LEVEL=debug
package config
