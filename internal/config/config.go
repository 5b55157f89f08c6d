package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"smartsum/internal/summarizer"
)

// SummarizerConfig configures the ranking engine.
type SummarizerConfig struct {
	MinSentenceLen    int `yaml:"min_sentence_len"`
	MinSentences      int `yaml:"min_sentences"`
	SentenceDivisor   int `yaml:"sentence_divisor"`
	MaxKeywords       int `yaml:"max_keywords"`
	HighlightKeywords int `yaml:"highlight_keywords"`
	ChartKeywords     int `yaml:"chart_keywords"`
	// ChartMinLen of -1 disables the chart length filter; 0 means the default.
	ChartMinLen int `yaml:"chart_min_len"`
}

// Options converts the section into engine options.
func (c SummarizerConfig) Options() summarizer.Options {
	return summarizer.Options{
		MinSentenceLen:    c.MinSentenceLen,
		MinSentences:      c.MinSentences,
		SentenceDivisor:   c.SentenceDivisor,
		MaxKeywords:       c.MaxKeywords,
		HighlightKeywords: c.HighlightKeywords,
		ChartKeywords:     c.ChartKeywords,
		ChartMinLen:       c.ChartMinLen,
	}
}

// SourceConfig limits what the text source accepts.
type SourceConfig struct {
	MaxFileBytes int64 `yaml:"max_file_bytes"`
}

// ExportConfig selects the format used when saving a summary.
type ExportConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LogConfig configures the rotating log file.
type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	Theme string `yaml:"theme"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Source     SourceConfig     `yaml:"source"`
	Export     ExportConfig     `yaml:"export"`
	Log        LogConfig        `yaml:"log"`
	UI         UIConfig         `yaml:"ui"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// LoadDefault tries $SMARTSUM_CONFIG, ./config.yaml, then ~/.config/smartsum/config.yaml.
// If none exists, it writes defaults to ~/.config/smartsum/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	if p := os.Getenv("SMARTSUM_CONFIG"); p != "" {
		cfg, err := Load(p)
		return cfg, p, err
	}
	cwdPath := "config.yaml"
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
	applyEnvOverrides(cfg)
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
	return filepath.Join(home, ".config", "smartsum", "config.yaml"), nil
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".smartsum", "smartsum.log")
	}
	return filepath.Join(home, ".config", "smartsum", "smartsum.log")
}

func defaultConfig() *AppConfig {
	opts := summarizer.DefaultOptions()
	cfg := &AppConfig{
		Summarizer: SummarizerConfig{
			MinSentenceLen:    opts.MinSentenceLen,
			MinSentences:      opts.MinSentences,
			SentenceDivisor:   opts.SentenceDivisor,
			MaxKeywords:       opts.MaxKeywords,
			HighlightKeywords: opts.HighlightKeywords,
			ChartKeywords:     opts.ChartKeywords,
			ChartMinLen:       opts.ChartMinLen,
		},
		Source: SourceConfig{MaxFileBytes: 50 << 20},
		Export: ExportConfig{DefaultFormat: "text"},
		Log: LogConfig{
			File:       defaultLogPath(),
			Level:      "info",
			MaxSizeMB:  15,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
		UI: UIConfig{Theme: "light"},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	d := defaultConfig()
	s := &cfg.Summarizer
	if s.MinSentenceLen == 0 {
		s.MinSentenceLen = d.Summarizer.MinSentenceLen
	}
	if s.MinSentences == 0 {
		s.MinSentences = d.Summarizer.MinSentences
	}
	if s.SentenceDivisor == 0 {
		s.SentenceDivisor = d.Summarizer.SentenceDivisor
	}
	if s.MaxKeywords == 0 {
		s.MaxKeywords = d.Summarizer.MaxKeywords
	}
	if s.HighlightKeywords == 0 {
		s.HighlightKeywords = d.Summarizer.HighlightKeywords
	}
	if s.ChartKeywords == 0 {
		s.ChartKeywords = d.Summarizer.ChartKeywords
	}
	if s.ChartMinLen == 0 {
		s.ChartMinLen = d.Summarizer.ChartMinLen
	}
	if cfg.Source.MaxFileBytes == 0 {
		cfg.Source.MaxFileBytes = d.Source.MaxFileBytes
	}
	if cfg.Export.DefaultFormat == "" {
		cfg.Export.DefaultFormat = d.Export.DefaultFormat
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = d.Log.Level
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = d.Log.MaxSizeMB
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = d.UI.Theme
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if lvl := os.Getenv("SMARTSUM_LOG_LEVEL"); lvl != "" {
		cfg.Log.Level = lvl
	}
}
