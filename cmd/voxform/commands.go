package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kalambet/voxform/internal/audio"
	"github.com/kalambet/voxform/internal/config"
	"github.com/kalambet/voxform/internal/input"
	"github.com/kalambet/voxform/internal/profile"
	"github.com/kalambet/voxform/internal/record"
	"github.com/kalambet/voxform/internal/stt"
	"github.com/kalambet/voxform/internal/validate"
	"github.com/kalambet/voxform/internal/wizard"
)

// --- create ---

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Run the interactive profile creation wizard",
	Long: `Run the interactive profile creation wizard.

Answers can be given by voice (recognized through the configured speech
service) or typed. The finished profile is written to the record store
(profiles/user_profile.json by default), replacing any existing record.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		initLogging(cfg.Log.Level)

		console := input.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
		text := input.NewTextAcquirer(console)

		client := stt.New(cfg.Speech.BaseURL, cfg.Speech.APIKey)
		capturer := audio.NewCommandCapturer(cfg.Capture.Recorder, cfg.Capture.Device)
		voice := input.NewVoiceAcquirer(console, capturer, client, text, input.VoiceOptions{
			Language:      cfg.Speech.Language,
			MaxRetries:    cfg.Input.MaxVoiceRetries,
			ListenTimeout: parseWindow("capture.listen_timeout", cfg.Capture.ListenTimeout, 10*time.Second),
			PhraseLimit:   parseWindow("capture.phrase_limit", cfg.Capture.PhraseLimit, 5*time.Second),
		})

		store := record.NewStore(cfg.Store.Dir, cfg.Store.Filename)
		runner := wizard.NewRunner(console, voice, text, store, profile.SystemClock(), client.IsRunning)
		return runner.Run(cmd.Context())
	},
}

// parseWindow parses a configured duration, warning and falling back to
// the default when the value is malformed.
func parseWindow(key, value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in config, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return d
}

func initLogging(level string) {
	logLevel := slog.LevelInfo
	if strings.EqualFold(level, "debug") {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

// --- show ---

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved profile as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store := record.NewStore(cfg.Store.Dir, cfg.Store.Filename)
		p, err := store.Load()
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				printWarning("no profile found at %s; run 'voxform create' first", store.Path())
				return nil
			}
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	},
}

// --- validate ---

var validateCmd = &cobra.Command{
	Use:   "validate <kind> <value>",
	Short: "Check a value against one field validator",
	Long: `Check a value against one field validator.

Examples:
  voxform validate email jane@x.com
  voxform validate phone 555-123-4567
  voxform validate number 29`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := validate.ParseKind(args[0])
		if err != nil {
			return err
		}

		if validate.Validate(kind, args[1]) {
			printSuccess("valid %s value", kind)
			return nil
		}
		printError("invalid %s value", kind)
		return fmt.Errorf("%q is not a valid %s value", args[1], kind)
	},
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		for _, k := range config.ShowAll(cfg) {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s = %s\n", colorize(colorBold, k.Key), k.Value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.SetKey(key, value); err != nil {
			return err
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
