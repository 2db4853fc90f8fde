package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-formgate/internal/config"
	"github.com/goliatone/go-formgate/pkg/messages"
)

var (
	cfgFile string
	verbose bool
	locale  string
	output  string
)

// rootCmd is the application entry point.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formgate",
		Short: "Interactive registration form validation",
		Long: `formgate validates a registration form (name, email, password,
password confirmation, age) field by field and only allows submission once
every field passes.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), verbose)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.formgate.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().StringVar(&locale, "locale", "", "message locale (overrides config)")
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: pretty or json (overrides config)")

	cmd.AddCommand(newFillCmd(), newCheckCmd(), newRenderCmd(), newContractCmd())
	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// loadSettings resolves the config file and environment, then applies flag
// overrides and validates the result. Logging is reconfigured when verbose
// comes from the file or environment rather than the flag.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(viper.New(), cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	if locale != "" {
		cfg.Locale = locale
	}
	if output != "" {
		cfg.Output = output
	}
	if verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if cfg.Verbose && !verbose {
		setupLogging(cmd.ErrOrStderr(), true)
	}
	slog.Debug("settings resolved", "locale", cfg.Locale, "output", cfg.Output, "catalog", cfg.Catalog)
	return cfg, nil
}

// loadTranslator returns the embedded catalog, merged with the configured
// catalog file when one is set.
func loadTranslator(cfg config.Config) (messages.Translator, error) {
	catalog := messages.Default()
	if cfg.Catalog == "" {
		return catalog, nil
	}
	custom, err := messages.LoadCatalog(os.DirFS(filepath.Dir(cfg.Catalog)), filepath.Base(cfg.Catalog))
	if err != nil {
		return nil, err
	}
	if !custom.HasLocale(cfg.Locale) && !catalog.HasLocale(cfg.Locale) {
		slog.Warn("locale not found in catalogs, using fallback", "locale", cfg.Locale)
	}
	return catalog.Merge(custom), nil
}
