package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-settings/internal/config"
	"github.com/ytget/yt-settings/internal/download"
	"github.com/ytget/yt-settings/internal/model"
)

// flushTimeout bounds how long theme commands wait for the write to land
const flushTimeout = 5 * time.Second

func newGetCommand(opts *RootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the effective value of a preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := resolveSpec(args[0], kind)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), displayValue(opts.store, spec.Key, opts.store.Value(spec)))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "type", "", "value type for unknown keys (bool|int|string)")
	return cmd
}

func newSetCommand(opts *RootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Store a preference",
		Long: `Store a preference. The value type comes from the known key table,
or from --type for keys this tool does not know.

Examples:
  yt-settings set quality 2
  yt-settings set playlist true
  yt-settings set theme_color '#FF415F76'
  yt-settings set my_flag yes --type string`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := resolveSpec(args[0], kind)
			if err != nil {
				return err
			}
			return setValue(opts.store, spec, args[1])
		},
	}
	cmd.Flags().StringVar(&kind, "type", "", "value type (bool|int|string)")
	return cmd
}

func newResetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset KEY",
		Short: "Remove a preference so its default applies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.store.Remove(args[0])
			return nil
		},
	}
}

func newListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every known preference with its value and label",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, e := range opts.store.Snapshot() {
				marker := " "
				if e.IsSet {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-22s %-8s %-28s %s\n",
					marker, e.Key, e.Kind, displayValue(opts.store, e.Key, e.Value), describe(opts, e))
			}
			return nil
		},
	}
}

func newThemeCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Change appearance settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "dark follow|on|off",
		Short:     "Set the dark theme mode",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"follow", "on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseDarkTheme(args[0])
			if err != nil {
				return err
			}
			return updateAppSettings(cmd, opts, func(cell *config.AppSettingsCell) {
				cell.SwitchDarkThemeMode(mode)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "seed COLOR",
		Short: "Set the seed color as #AARRGGBB or #RRGGBB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			argb, err := model.ParseARGB(args[0])
			if err != nil {
				return err
			}
			return updateAppSettings(cmd, opts, func(cell *config.AppSettingsCell) {
				cell.ModifyThemeSeedColor(argb)
			})
		},
	})

	return cmd
}

func newArgsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "args [URL]",
		Short: "Print the yt-dlp command line the current preferences produce",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := ""
			if len(args) == 1 {
				url = args[0]
			}
			fmt.Fprintln(cmd.OutOrStdout(), download.FromSettings(opts.store).CommandLine(url))
			return nil
		},
	}
}

// updateAppSettings applies one appearance write and prints the resulting snapshot
func updateAppSettings(cmd *cobra.Command, opts *RootOptions, write func(*config.AppSettingsCell)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cell := config.OpenAppSettings(opts.store)
	defer cell.Close()

	write(cell)

	ctx, cancel := context.WithTimeout(ctx, flushTimeout)
	defer cancel()
	if err := cell.Flush(ctx); err != nil {
		return fmt.Errorf("apply appearance change: %w", err)
	}

	s := cell.Value()
	fmt.Fprintf(cmd.OutOrStdout(), "dark theme: %s, seed color: %s\n",
		opts.loc.DarkThemeDesc(s.DarkTheme), model.FormatARGB(s.SeedColor))
	return nil
}

func resolveSpec(key, kind string) (config.KeySpec, error) {
	if kind == "" {
		spec, ok := config.LookupKey(key)
		if !ok {
			return config.KeySpec{}, fmt.Errorf("unknown key %q, pass --type", key)
		}
		return spec, nil
	}

	k, ok := config.ParseKind(kind)
	if !ok {
		return config.KeySpec{}, fmt.Errorf("invalid type %q: must be bool, int or string", kind)
	}
	spec := config.KeySpec{Key: key, Kind: k}
	switch k {
	case config.KindBool:
		spec.Default = false
	case config.KindInt:
		spec.Default = 0
	default:
		spec.Default = ""
	}
	return spec, nil
}

func setValue(store *config.Store, spec config.KeySpec, raw string) error {
	switch spec.Key {
	case config.KeyThemeColor:
		argb, err := model.ParseARGB(raw)
		if err != nil {
			return err
		}
		store.SetSeedColor(argb)
		return nil
	case config.KeyDarkTheme:
		mode, err := parseDarkTheme(raw)
		if err != nil {
			return err
		}
		store.SetDarkTheme(mode)
		return nil
	case config.KeyConcurrentFragments:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s expects an int: %w", spec.Key, err)
		}
		store.SetConcurrentFragments(v)
		return nil
	case config.KeyTemplate:
		store.SetTemplate(raw)
		return nil
	}

	switch spec.Kind {
	case config.KindBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s expects a bool: %w", spec.Key, err)
		}
		store.SetBool(spec.Key, v)
	case config.KindInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s expects an int: %w", spec.Key, err)
		}
		store.SetInt(spec.Key, v)
	default:
		store.SetString(spec.Key, raw)
	}
	return nil
}

// parseDarkTheme accepts a mode name or its stored code
func parseDarkTheme(s string) (model.DarkThemePreference, error) {
	if n, err := strconv.Atoi(s); err == nil {
		for _, m := range model.DarkThemePreferences {
			if int(m) == n {
				return m, nil
			}
		}
		return 0, fmt.Errorf("invalid dark theme code %d: want 1, 2 or 3", n)
	}
	switch s {
	case "follow", "system":
		return model.DarkThemeFollowSystem, nil
	case "on", "dark":
		return model.DarkThemeOn, nil
	case "off", "light":
		return model.DarkThemeOff, nil
	default:
		return 0, fmt.Errorf("invalid dark theme mode %q: want follow, on or off", s)
	}
}

// displayValue formats a value the way set accepts it
func displayValue(store *config.Store, key string, v any) string {
	if key == config.KeyThemeColor {
		return model.FormatARGB(store.SeedColor())
	}
	return formatValue(v)
}

func formatValue(v any) string {
	if s, ok := v.(string); ok && s == "" {
		return `""`
	}
	return fmt.Sprint(v)
}

// describe returns the display label for coded and boolean preferences
func describe(opts *RootOptions, e config.Entry) string {
	l := opts.loc
	switch e.Key {
	case config.KeyVideoQuality:
		return l.VideoQualityDesc(opts.store.VideoQuality())
	case config.KeyVideoFormat:
		return l.VideoFormatDesc(opts.store.VideoFormat())
	case config.KeyAudioFormat:
		return l.AudioFormatDesc(opts.store.AudioFormat())
	case config.KeyLanguage:
		return l.LanguageDesc(opts.store.Language())
	case config.KeyDarkTheme:
		return l.DarkThemeDesc(opts.store.DarkTheme())
	}
	if v, ok := e.Value.(bool); ok {
		return l.BoolDesc(v)
	}
	return ""
}
