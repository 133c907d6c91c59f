package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Type           string `yaml:"type"`
	MaxSentences   int    `yaml:"max_sentences"`
	Vectorizer     string `yaml:"vectorizer"`
	MinTokenLength int    `yaml:"min_token_length"`
}

// SentimentConfig selects the polarity scorer.
type SentimentConfig struct {
	Type string `yaml:"type"`
}

// CloudConfig configures the word-frequency view.
type CloudConfig struct {
	MaxWords int `yaml:"max_words"`
	Width    int `yaml:"width"`
}

// HistoryConfig selects where past analyses are kept.
type HistoryConfig struct {
	Type string `yaml:"type"`
	Path string `yaml:"path,omitempty"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Sentiment  SentimentConfig  `yaml:"sentiment"`
	Cloud      CloudConfig      `yaml:"cloud"`
	History    HistoryConfig    `yaml:"history"`
	Log        LogConfig        `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	applyEnv(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./textlens.yaml first, then ~/.config/textlens/config.yaml.
// If neither exists, it writes defaults to ~/.config/textlens/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "textlens.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnv(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textlens", "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() *AppConfig { return defaultConfig() }

func defaultConfig() *AppConfig {
	return &AppConfig{
		Summarizer: SummarizerConfig{Type: "similarity", MaxSentences: 5, Vectorizer: "count", MinTokenLength: 1},
		Sentiment:  SentimentConfig{Type: "vader"},
		Cloud:      CloudConfig{MaxWords: 100, Width: 80},
		History:    HistoryConfig{Type: "none"},
		Log:        LogConfig{Level: "warn", Format: "text"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = def.Summarizer.Type
	}
	if cfg.Summarizer.MaxSentences <= 0 {
		cfg.Summarizer.MaxSentences = def.Summarizer.MaxSentences
	}
	if cfg.Summarizer.Vectorizer == "" {
		cfg.Summarizer.Vectorizer = def.Summarizer.Vectorizer
	}
	if cfg.Summarizer.MinTokenLength <= 0 {
		cfg.Summarizer.MinTokenLength = def.Summarizer.MinTokenLength
	}
	if cfg.Sentiment.Type == "" {
		cfg.Sentiment.Type = def.Sentiment.Type
	}
	if cfg.Cloud.MaxWords == 0 {
		cfg.Cloud.MaxWords = def.Cloud.MaxWords
	}
	if cfg.Cloud.Width <= 0 {
		cfg.Cloud.Width = def.Cloud.Width
	}
	if cfg.History.Type == "" {
		cfg.History.Type = def.History.Type
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
}

func applyEnv(cfg *AppConfig) {
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if p := os.Getenv("TEXTLENS_HISTORY_PATH"); p != "" {
		cfg.History.Path = p
		if cfg.History.Type == "none" {
			cfg.History.Type = "sqlite"
		}
	}
}
