package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"textlens/internal/history"
)

var (
	historyLimit int
	historyClear bool
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "List past analyses or show one",
	Long: `Lists recent analyses, newest first, or shows the analysis with the given ID.
History is kept only when history.type is memory or sqlite.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of analyses to list")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete every stored analysis")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if store == nil {
		cmd.Println("History is disabled. Set history.type to sqlite in the config.")
		return nil
	}

	if historyClear {
		if err := analyzer.ClearHistory(ctx); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		cmd.Println("History cleared.")
		return nil
	}

	if len(args) == 1 {
		a, err := analyzer.Get(ctx, args[0])
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("analysis %s not found", args[0])
		}
		if err != nil {
			return err
		}
		if historyJSON {
			return printJSON(cmd, a)
		}
		cmd.Printf("ID:      %s\n", a.ID)
		cmd.Printf("Source:  %s\n", a.Source)
		cmd.Printf("Created: %s\n", a.CreatedAt.Local().Format(time.DateTime))
		if len(a.SummaryChunks) > 0 {
			cmd.Printf("Chunks:  %s\n", strings.Join(a.SummaryChunks, ", "))
		}
		printAnalysis(cmd, a, false)
		return nil
	}

	list, err := analyzer.History(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}
	if historyJSON {
		return printJSON(cmd, list)
	}
	if len(list) == 0 {
		cmd.Println("No analyses yet.")
		return nil
	}
	for i := range list {
		a := &list[i]
		cmd.Printf("%s  %s  %-8s  %s\n", a.ID, a.CreatedAt.Local().Format(time.DateTime), a.Polarity, a.Source)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
