package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"textlens/internal/ingest"
	"textlens/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [file]",
	Short: "Start the interactive interface",
	Long: `Opens a text area to paste or type text. ctrl+s analyzes it, tab shows
the word cloud and esc quits. A file argument pre-fills the text area.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	initial := ""
	if len(args) == 1 {
		doc, err := ingest.ReadFile(args[0])
		if err != nil {
			return err
		}
		initial = doc.Content
	}

	ctx := cmd.Context()
	m := tui.New(ctx, analyzer, initial, appConfig.Cloud.Width)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
