package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"textlens/internal/domain"
	"textlens/internal/sentiment"
	"textlens/internal/wordcloud"
)

var (
	sentences      int
	analyzeJSON    bool
	analyzeSVG     string
	analyzeNoCloud bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Summarize, classify and count words",
	Long: `Analyzes .txt and .pdf files, or stdin when no file is given.
Glob patterns are expanded and other file types are skipped.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVarP(&sentences, "sentences", "n", 0, "summary length in sentences (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output results as JSON")
	analyzeCmd.Flags().StringVar(&analyzeSVG, "svg", "", "write the word cloud as an SVG image to this path")
	analyzeCmd.Flags().BoolVar(&analyzeNoCloud, "no-cloud", false, "omit the word frequency view")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var results []domain.Analysis
	if len(args) == 0 {
		text, err := readInput(cmd, nil)
		if err != nil {
			return err
		}
		res, err := analyzer.AnalyzeText(ctx, "stdin", text)
		if err != nil {
			return err
		}
		results = []domain.Analysis{*res}
	} else {
		var err error
		results, err = analyzer.AnalyzeFiles(ctx, args)
		if err != nil {
			return err
		}
	}

	if analyzeSVG != "" {
		for i := range results {
			if err := writeSVG(svgPath(analyzeSVG, i, len(results)), results[i].Words); err != nil {
				return err
			}
		}
	}

	if analyzeJSON {
		return printJSON(cmd, results)
	}
	for i := range results {
		printAnalysis(cmd, &results[i], len(results) > 1)
	}
	return nil
}

func printAnalysis(cmd *cobra.Command, a *domain.Analysis, withSource bool) {
	if withSource {
		cmd.Printf("== %s ==\n", a.Source)
	}
	cmd.Printf("Sentiment: %s\n", polarityLabel(a.Polarity))
	cmd.Println()
	cmd.Println("Summary:")
	cmd.Println(a.Summary)
	if !analyzeNoCloud && len(a.Words) > 0 {
		cmd.Println()
		cmd.Println("Word cloud:")
		cmd.Println(wordcloud.RenderTerminal(a.Words, appConfig.Cloud.Width))
	}
	cmd.Println()
}

func polarityLabel(name string) string {
	if p, ok := sentiment.Parse(name); ok {
		return p.Label()
	}
	return name
}

// svgPath numbers output files when several documents are analyzed.
func svgPath(base string, i, n int) string {
	if n <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(base, ext), i+1, ext)
}

func writeSVG(path string, words []domain.Word) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	if err := wordcloud.WriteSVG(f, words, wordcloud.DefaultSVGOptions()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write svg: %w", err)
	}
	return f.Close()
}

// readInput joins args into one text, or reads stdin when there are none.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
