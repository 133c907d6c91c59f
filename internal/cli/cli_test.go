package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textlens/internal/config"
	"textlens/internal/domain"
	"textlens/internal/ingest"
	"textlens/internal/logging"
	"textlens/internal/service"
)

const review = "The film is a masterpiece. The acting is great and the score is great. " +
	"Some scenes drag. The plot is predictable at times. The cast is great. " +
	"The ending is a masterpiece of great acting. I love this film"

func resetFlags() {
	cfgPath = ""
	verbose = false
	sentences = 0
	analyzeJSON = false
	analyzeSVG = ""
	analyzeNoCloud = false
	sentimentScore = false
	historyLimit = 20
	historyClear = false
	historyJSON = false
}

func writeConfig(t *testing.T, mutate func(*config.AppConfig)) string {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.History.Path = filepath.Join(dir, "history.db")
	if mutate != nil {
		mutate(cfg)
	}
	path := filepath.Join(dir, "textlens.yaml")
	require.NoError(t, config.Save(path, cfg))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("TEXTLENS_HISTORY_PATH", "")
	return run(t, stdin, args...)
}

// run executes the root command with the current environment.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags()
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "textlens", rootCmd.Use)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestRootCmd_Subcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"analyze", "summarize", "sentiment", "tui", "watch", "history"} {
		assert.Contains(t, names, want)
	}
}

func TestAnalyzeCmd_Flags(t *testing.T) {
	flag := analyzeCmd.Flags().Lookup("sentences")
	require.NotNil(t, flag)
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
	assert.NotNil(t, analyzeCmd.Flags().Lookup("json"))
	assert.NotNil(t, analyzeCmd.Flags().Lookup("svg"))
	assert.NotNil(t, analyzeCmd.Flags().Lookup("no-cloud"))
}

func TestAnalyzeCmd_Stdin(t *testing.T) {
	cfg := writeConfig(t, nil)

	out, err := execute(t, review, "--config", cfg, "analyze")
	require.NoError(t, err)
	assert.Contains(t, out, "Sentiment: Positive 😄")
	assert.Contains(t, out, "Summary:")
	assert.Contains(t, out, "Word cloud:")
	assert.NotContains(t, out, "== stdin ==")
}

func TestAnalyzeCmd_NoCloud(t *testing.T) {
	cfg := writeConfig(t, nil)

	out, err := execute(t, review, "--config", cfg, "analyze", "--no-cloud")
	require.NoError(t, err)
	assert.NotContains(t, out, "Word cloud:")
}

func TestAnalyzeCmd_JSON(t *testing.T) {
	cfg := writeConfig(t, nil)

	out, err := execute(t, "I hate this. It is awful.", "--config", cfg, "analyze", "--json")
	require.NoError(t, err)

	var results []domain.Analysis
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "stdin", results[0].Source)
	assert.Equal(t, "Negative", results[0].Polarity)
	assert.Equal(t, "I hate this. It is awful.", results[0].Summary)
	assert.Equal(t, 2, results[0].SentenceCount)
	id := ingest.HashString("stdin")
	assert.Equal(t, id, results[0].DocumentID)
	assert.Equal(t, []string{id + ":0", id + ":1"}, results[0].SummaryChunks)
	assert.Contains(t, out, `"summary_chunks"`)
}

func TestAnalyzeCmd_FilesWithSVG(t *testing.T) {
	cfg := writeConfig(t, nil)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("I love this great film"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("A terrible and boring film"), 0o644))
	svg := filepath.Join(dir, "cloud.svg")

	out, err := execute(t, "", "--config", cfg, "analyze", "--svg", svg, filepath.Join(dir, "*.txt"))
	require.NoError(t, err)
	assert.Contains(t, out, "== "+a+" ==")
	assert.Contains(t, out, "== "+b+" ==")

	for _, name := range []string{"cloud-1.svg", "cloud-2.svg"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "<svg")
	}
}

func TestAnalyzeCmd_EmptyInput(t *testing.T) {
	cfg := writeConfig(t, nil)

	_, err := execute(t, "  \n", "--config", cfg, "analyze")
	assert.ErrorIs(t, err, service.ErrEmptyInput)
}

func TestAnalyzeCmd_NoDocuments(t *testing.T) {
	cfg := writeConfig(t, nil)

	_, err := execute(t, "", "--config", cfg, "analyze", "notes.md")
	assert.ErrorIs(t, err, service.ErrNoDocuments)
}

func TestSummarizeCmd(t *testing.T) {
	cfg := writeConfig(t, nil)

	out, err := execute(t, "", "--config", cfg, "summarize", "-n", "2", "A. B. C")
	require.NoError(t, err)
	assert.Equal(t, "B. C\n", out)
}

func TestSummarizeCmd_ShortTextUnchanged(t *testing.T) {
	cfg := writeConfig(t, nil)

	out, err := execute(t, "One sentence only.\n", "--config", cfg, "summarize")
	require.NoError(t, err)
	assert.Equal(t, "One sentence only.\n", out)
}

func TestSentimentCmd(t *testing.T) {
	cfg := writeConfig(t, nil)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "positive", args: []string{"I", "love", "this"}, want: "Positive 😄\n"},
		{name: "negative", args: []string{"I hate this"}, want: "Negative 😠\n"},
		{name: "neutral", args: []string{"It is a table"}, want: "Neutral 😐\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", append([]string{"--config", cfg, "sentiment"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSentimentCmd_Score(t *testing.T) {
	cfg := writeConfig(t, nil)

	out, err := execute(t, "", "--config", cfg, "sentiment", "--score", "It is a table")
	require.NoError(t, err)
	assert.Equal(t, "Neutral 😐 (0.000)\n", out)
}

func TestHistoryCmd_Disabled(t *testing.T) {
	cfg := writeConfig(t, nil)

	out, err := execute(t, "", "--config", cfg, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "History is disabled")
}

func TestHistoryCmd_SQLite(t *testing.T) {
	cfg := writeConfig(t, func(c *config.AppConfig) { c.History.Type = "sqlite" })

	out, err := execute(t, "", "--config", cfg, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No analyses yet.")

	_, err = execute(t, review, "--config", cfg, "analyze", "--no-cloud")
	require.NoError(t, err)

	out, err = execute(t, "", "--config", cfg, "history", "--json")
	require.NoError(t, err)
	var list []domain.Analysis
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "stdin", list[0].Source)
	assert.Equal(t, "Positive", list[0].Polarity)

	out, err = execute(t, "", "--config", cfg, "history", list[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "ID:      "+list[0].ID)
	assert.Contains(t, out, "Sentiment: Positive 😄")
	require.NotEmpty(t, list[0].SummaryChunks)
	assert.Contains(t, out, "Chunks:  "+list[0].SummaryChunks[0])

	_, err = execute(t, "", "--config", cfg, "history", "missing-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analysis missing-id not found")

	out, err = execute(t, "", "--config", cfg, "history", "--clear")
	require.NoError(t, err)
	assert.Contains(t, out, "History cleared.")

	out, err = execute(t, "", "--config", cfg, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No analyses yet.")
}

func TestVerboseOverridesLogLevelEnv(t *testing.T) {
	cfg := writeConfig(t, nil)
	t.Setenv("TEXTLENS_HISTORY_PATH", "")
	t.Setenv("LOG_LEVEL", "error")

	out, err := run(t, "", "--config", cfg, "--verbose", "sentiment", "fine")
	require.NoError(t, err)
	assert.Contains(t, out, "components assembled")

	out, err = run(t, "", "--config", cfg, "sentiment", "fine")
	require.NoError(t, err)
	assert.NotContains(t, out, "components assembled")
}

func TestUnknownComponent(t *testing.T) {
	cfg := writeConfig(t, func(c *config.AppConfig) { c.Summarizer.Type = "bogus" })

	_, err := execute(t, "", "--config", cfg, "sentiment", "fine")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown summarizer: bogus")
}

func TestAssemble(t *testing.T) {
	ctx := context.Background()
	log := logging.Discard()

	tests := []struct {
		name      string
		mutate    func(*config.AppConfig)
		wantErr   string
		wantStore bool
	}{
		{name: "defaults", mutate: func(*config.AppConfig) {}},
		{name: "frequency", mutate: func(c *config.AppConfig) { c.Summarizer.Type = "frequency" }},
		{name: "lexicon scorer", mutate: func(c *config.AppConfig) { c.Sentiment.Type = "lexicon" }},
		{name: "tfidf", mutate: func(c *config.AppConfig) { c.Summarizer.Vectorizer = "tfidf" }},
		{name: "memory history", mutate: func(c *config.AppConfig) { c.History.Type = "memory" }, wantStore: true},
		{name: "bad vectorizer", mutate: func(c *config.AppConfig) { c.Summarizer.Vectorizer = "bert" }, wantErr: "unknown vectorizer: bert"},
		{name: "bad scorer", mutate: func(c *config.AppConfig) { c.Sentiment.Type = "afinn" }, wantErr: "unknown sentiment scorer: afinn"},
		{name: "bad history", mutate: func(c *config.AppConfig) { c.History.Type = "redis" }, wantErr: "unknown history store: redis"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			a, st, err := assemble(ctx, cfg, log)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, a)
			if tt.wantStore {
				require.NotNil(t, st)
				assert.NoError(t, st.Close())
			} else {
				assert.Nil(t, st)
			}
			got, err := a.Summarize(review)
			require.NoError(t, err)
			assert.NotEmpty(t, got)
		})
	}
}

func TestSVGPath(t *testing.T) {
	assert.Equal(t, "out.svg", svgPath("out.svg", 0, 1))
	assert.Equal(t, "out-1.svg", svgPath("out.svg", 0, 3))
	assert.Equal(t, "dir/out-3.svg", svgPath("dir/out.svg", 2, 3))
	assert.Equal(t, "cloud-2", svgPath("cloud", 1, 2))
}

func TestWatchCmd_RequiresFile(t *testing.T) {
	cfg := writeConfig(t, nil)

	_, err := execute(t, "", "--config", cfg, "watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestTUICmd_Args(t *testing.T) {
	assert.Equal(t, "tui [file]", tuiCmd.Use)
	assert.NoError(t, tuiCmd.Args(tuiCmd, nil))
	assert.Error(t, tuiCmd.Args(tuiCmd, []string{"a", "b"}))
}
