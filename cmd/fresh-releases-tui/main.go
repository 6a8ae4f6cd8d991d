package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/handiism/fresh-releases/internal/config"
	lbhttp "github.com/handiism/fresh-releases/internal/http"
	"github.com/handiism/fresh-releases/internal/listenbrainz"
	"github.com/handiism/fresh-releases/internal/logger"
	"github.com/handiism/fresh-releases/internal/tui"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		user       string
		logFile    string
	)

	cmd := &cobra.Command{
		Use:           "fresh-releases-tui",
		Short:         "Interactive fresh releases browser",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = config.DefaultPath()
			}
			settings, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if user != "" {
				settings.UserName = user
			}
			settings.Logging.Output = tuiLogOutput(settings.Logging.Output, logFile)
			if err := settings.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			log, err := logger.New(&settings.Logging)
			if err != nil {
				return err
			}
			defer log.Close()

			httpClient := lbhttp.NewClient(
				lbhttp.WithTimeout(settings.Timeout()),
				lbhttp.WithRateLimit(settings.RequestsPerSecond, 1),
			)
			client := listenbrainz.NewClient(settings.APIURL, httpClient, log)
			client.SetMaxConcurrent(settings.MaxConcurrentUsers)

			return tui.Run(settings, client, log)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path (default: user config dir)")
	cmd.Flags().StringVarP(&user, "user", "u", "", "ListenBrainz user name(s), comma-separated")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file")

	return cmd
}

// tuiLogOutput keeps log lines off the terminal the browser draws on.
// Only file output survives; everything else is discarded.
func tuiLogOutput(configured, logFile string) string {
	if logFile != "" {
		return logFile
	}
	switch configured {
	case "", "stdout", "stderr":
		return "none"
	default:
		return configured
	}
}
