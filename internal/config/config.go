// Package config provides configuration management for the news pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidStorage           = errors.New("pipeline.storage must be one of: sqlite, csv, parquet, json, all")
	ErrMissingOutputPath        = errors.New("output.base_path is required")
	ErrInvalidMaxItems          = errors.New("collection.max_items must be at least 1")
	ErrInvalidRequestDelay      = errors.New("collection.request_delay_ms must be non-negative")
	ErrInvalidMinTokenLength    = errors.New("processing.min_token_length must be at least 1")
	ErrInvalidTopWords          = errors.New("processing.top_words must be non-negative")
	ErrInvalidMaxAttempts       = errors.New("retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay      = errors.New("retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier = errors.New("retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout           = errors.New("retry.timeout_sec must be at least 1")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrFeedMissingName          = errors.New("feed name is required")
	ErrFeedMissingURL           = errors.New("feed url is required")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// PipelineConfig contains pipeline-wide settings.
type PipelineConfig struct {
	Source     string           `yaml:"source"`
	Storage    string           `yaml:"storage"`
	Output     OutputConfig     `yaml:"output"`
	Collection CollectionConfig `yaml:"collection"`
	Processing ProcessingConfig `yaml:"processing"`
	Retry      RetryPolicy      `yaml:"retry"`
	Logging    LoggingConfig    `yaml:"logging"`
	Feeds      []FeedConfig     `yaml:"feeds"`
}

// OutputConfig controls where export artifacts are written.
type OutputConfig struct {
	BasePath string `yaml:"base_path"`
	DBName   string `yaml:"db_name"`
}

// CollectionConfig bounds the collection phase.
type CollectionConfig struct {
	MaxItems       int `yaml:"max_items"`
	RequestDelayMs int `yaml:"request_delay_ms"`
}

// ProcessingConfig controls the text-processing core.
type ProcessingConfig struct {
	// Language overrides the source's default stopword language when set.
	Language        string   `yaml:"language"`
	MinTokenLength  int      `yaml:"min_token_length"`
	TopWords        int      `yaml:"top_words"`
	UnicodeSegments bool     `yaml:"unicode_tokenizer"`
	Stemming        bool     `yaml:"stemming"`
	CustomStopwords []string `yaml:"custom_stopwords"`
}

// RetryPolicy controls HTTP retry behavior during collection.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// FeedConfig describes an RSS/Atom feed source.
type FeedConfig struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Language string `yaml:"language"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Source:  "hackernews",
			Storage: "all",
			Output: OutputConfig{
				BasePath: "data",
				DBName:   "news_data.db",
			},
			Collection: CollectionConfig{
				MaxItems:       30,
				RequestDelayMs: 0,
			},
			Processing: ProcessingConfig{
				MinTokenLength:  3,
				TopWords:        20,
				UnicodeSegments: true,
			},
			Retry: RetryPolicy{
				MaxAttempts:       3,
				InitialDelayMs:    1000,
				MaxDelayMs:        30000,
				BackoffMultiplier: 2.0,
				TimeoutSec:        10,
			},
			Logging: LoggingConfig{Level: "info"},
		},
	}
}

// LoadConfig loads and validates configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	p := &c.Pipeline

	switch p.Storage {
	case "sqlite", "csv", "parquet", "json", "all":
	default:
		return ErrInvalidStorage
	}

	if p.Output.BasePath == "" {
		return ErrMissingOutputPath
	}

	if p.Collection.MaxItems < 1 {
		return ErrInvalidMaxItems
	}

	if p.Collection.RequestDelayMs < 0 {
		return ErrInvalidRequestDelay
	}

	if p.Processing.MinTokenLength < 1 {
		return ErrInvalidMinTokenLength
	}

	if p.Processing.TopWords < 0 {
		return ErrInvalidTopWords
	}

	if p.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if p.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if p.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if p.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[p.Logging.Level] {
		return ErrInvalidLogLevel
	}

	for i, feed := range p.Feeds {
		if feed.Name == "" {
			return fmt.Errorf("%w: feeds[%d]", ErrFeedMissingName, i)
		}

		if feed.URL == "" {
			return fmt.Errorf("%w: feeds[%d]", ErrFeedMissingURL, i)
		}
	}

	return nil
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 1; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	// Cap at max delay
	if rp.MaxDelayMs > 0 && int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the HTTP timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// GetDBPath returns the SQLite database location under the output base path.
func (c *Config) GetDBPath() string {
	name := c.Pipeline.Output.DBName
	if name == "" {
		name = "news_data.db"
	}

	return fmt.Sprintf("%s/%s", c.Pipeline.Output.BasePath, name)
}

// GetFeed returns the feed config with the given name, if present.
func (c *Config) GetFeed(name string) (FeedConfig, bool) {
	for _, feed := range c.Pipeline.Feeds {
		if feed.Name == name {
			return feed, true
		}
	}

	return FeedConfig{}, false
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Source: %s, Storage: %s, Output: %s}",
		c.Pipeline.Source,
		c.Pipeline.Storage,
		c.Pipeline.Output.BasePath,
	)
}
