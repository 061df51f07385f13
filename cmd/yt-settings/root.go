package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-settings/internal/config"
	"github.com/ytget/yt-settings/internal/locale"
	"github.com/ytget/yt-settings/internal/logger"
	"github.com/ytget/yt-settings/internal/platform"
)

// RootOptions holds global flags and the store opened for the command
type RootOptions struct {
	File     string
	LogLevel string

	store *config.Store
	loc   *locale.Localization
}

// NewRootCommand creates the root command for the settings CLI
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "yt-settings",
		Short:         "Inspect and edit yt-downloader preferences",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.open()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.File, "file", "", "preferences file (default: user config dir)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")

	cmd.AddCommand(newGetCommand(opts))
	cmd.AddCommand(newSetCommand(opts))
	cmd.AddCommand(newResetCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newThemeCommand(opts))
	cmd.AddCommand(newArgsCommand(opts))

	return cmd
}

func (o *RootOptions) open() error {
	level, err := logger.ParseLevel(o.LogLevel)
	if err != nil {
		return err
	}
	log := logger.New(os.Stderr, level)

	path := o.File
	if path == "" {
		path, err = platform.PreferencesFile(config.AppID)
		if err != nil {
			return err
		}
	}

	backend, err := config.OpenFile(path, log)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	o.store = config.NewStore(backend, config.WithLogger(log))

	o.loc = locale.NewLocalization()
	o.loc.SetLanguage(o.store.Language(), locale.SystemTag())
	return nil
}
