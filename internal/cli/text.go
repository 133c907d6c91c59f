package cli

import (
	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [text...]",
	Short: "Print an extractive summary",
	Long: `Prints the highest scoring sentences of the text given as arguments,
or of stdin when no argument is given.`,
	RunE: runSummarize,
}

var sentimentCmd = &cobra.Command{
	Use:   "sentiment [text...]",
	Short: "Classify the text as Positive, Negative or Neutral",
	RunE:  runSentiment,
}

var sentimentScore bool

func init() {
	summarizeCmd.Flags().IntVarP(&sentences, "sentences", "n", 0, "summary length in sentences (default from config)")
	sentimentCmd.Flags().BoolVar(&sentimentScore, "score", false, "also print the raw polarity score")
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(sentimentCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	summary, err := analyzer.Summarize(text)
	if err != nil {
		return err
	}
	cmd.Println(summary)
	return nil
}

func runSentiment(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	p, err := analyzer.Polarity(text)
	if err != nil {
		return err
	}
	if sentimentScore {
		cmd.Printf("%s (%.3f)\n", p.Label(), analyzer.Score(text))
		return nil
	}
	cmd.Println(p.Label())
	return nil
}
