// Package cli implements the textlens command line.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"textlens/internal/config"
	"textlens/internal/history"
	"textlens/internal/logging"
	"textlens/internal/service"
)

var (
	cfgPath string
	verbose bool

	appConfig *config.AppConfig
	analyzer  *service.Analyzer
	store     history.Store
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "textlens",
	Short: "Summarize text, classify its sentiment and count its words",
	Long: `textlens reads text from files, stdin or an interactive editor and reports
an extractive summary, the overall sentiment and the most frequent words.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"path to YAML config file (default ./textlens.yaml or ~/.config/textlens/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := teardown(rootCmd, nil); err == nil {
		err = cerr
	}
	return err
}

func setup(cmd *cobra.Command, _ []string) error {
	// post-run hooks are skipped when a command fails
	if err := teardown(cmd, nil); err != nil {
		return err
	}

	var err error
	if cfgPath == "" {
		appConfig, _, err = config.LoadDefault()
	} else {
		appConfig, err = config.Load(cfgPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if sentences > 0 {
		appConfig.Summarizer.MaxSentences = sentences
	}

	level := appConfig.Log.Level
	if verbose {
		level = "debug"
	}
	logger = logging.New(level, appConfig.Log.Format, cmd.ErrOrStderr())
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

	analyzer, store, err = assemble(cmd.Context(), appConfig, logger)
	if err != nil {
		return err
	}
	logger.Debug("components assembled",
		"summarizer", appConfig.Summarizer.Type,
		"vectorizer", appConfig.Summarizer.Vectorizer,
		"history", appConfig.History.Type)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	return err
}
