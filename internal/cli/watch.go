package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"textlens/internal/domain"
	"textlens/internal/logging"
	"textlens/internal/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-analyze a file every time it changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "delay before re-analyzing after a change")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.FromContext(ctx)
	log.Info("watching file", "path", args[0])

	onResult := func(a *domain.Analysis, err error) {
		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			return
		}
		cmd.Printf("[%s] ", a.CreatedAt.Local().Format(time.TimeOnly))
		printAnalysis(cmd, a, false)
	}
	return watch.New(args[0], watchDebounce, analyzer.AnalyzeText, onResult, log).Run(ctx)
}
