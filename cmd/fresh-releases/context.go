package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/handiism/fresh-releases/internal/config"
	lbhttp "github.com/handiism/fresh-releases/internal/http"
	"github.com/handiism/fresh-releases/internal/listenbrainz"
	"github.com/handiism/fresh-releases/internal/logger"
)

type globalFlags struct {
	configPath string
	apiURL     string
	logLevel   string
	logFormat  string
}

type commandContext struct {
	flags *globalFlags

	once     sync.Once
	settings *config.Settings
	log      *logger.Logger
	err      error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureSettings loads and validates the settings once, applying the
// global flag overrides, and builds the logger.
func (c *commandContext) ensureSettings() (*config.Settings, error) {
	c.once.Do(func() {
		path := strings.TrimSpace(c.flags.configPath)
		if path == "" {
			path = config.DefaultPath()
		}

		settings, err := config.Load(path)
		if err != nil {
			c.err = err
			return
		}

		if c.flags.apiURL != "" {
			settings.APIURL = c.flags.apiURL
		}
		if c.flags.logLevel != "" {
			settings.Logging.Level = c.flags.logLevel
		}
		if c.flags.logFormat != "" {
			settings.Logging.Format = c.flags.logFormat
		}

		if err := settings.Validate(); err != nil {
			c.err = fmt.Errorf("invalid configuration: %w", err)
			return
		}

		log, err := logger.New(&settings.Logging)
		if err != nil {
			c.err = err
			return
		}

		c.settings = settings
		c.log = log
	})
	return c.settings, c.err
}

func (c *commandContext) logger() *logger.Logger {
	if c.log == nil {
		return logger.NewNop()
	}
	return c.log
}

// client builds a ListenBrainz client from the loaded settings.
func (c *commandContext) client() *listenbrainz.Client {
	s := c.settings
	httpClient := lbhttp.NewClient(
		lbhttp.WithTimeout(s.Timeout()),
		lbhttp.WithRateLimit(s.RequestsPerSecond, 1),
		lbhttp.WithUserAgent(lbhttp.DefaultUserAgent+"/"+version),
	)

	client := listenbrainz.NewClient(s.APIURL, httpClient, c.logger())
	client.SetMaxConcurrent(s.MaxConcurrentUsers)
	return client
}

func (c *commandContext) close() {
	if c.log != nil {
		_ = c.log.Close()
	}
}
