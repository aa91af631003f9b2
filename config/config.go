// Package config loads provider credentials and model defaults for llmutils.
//
// Configuration is layered:
//  1. Built-in defaults
//  2. YAML config file (explicit path or LLMUTILS_CONFIG)
//  3. .env file, which only fills variables missing from the environment
//  4. Environment variables
//  5. Validation
package config

import (
	"fmt"
	"log/slog"
)

// Provider names.
const (
	ProviderOpenAI = "openai"
	ProviderAzure  = "azure"
)

// DefaultAzureAPIVersion is the Azure OpenAI API version used when none is set.
const DefaultAzureAPIVersion = "2024-05-01-preview"

// Config holds all configuration for an llmutils client.
type Config struct {
	Provider string       `yaml:"provider"` // "openai" or "azure", default: "openai"
	OpenAI   OpenAIConfig `yaml:"openai"`
	Azure    AzureConfig  `yaml:"azure"`
	Models   ModelsConfig `yaml:"models"`
	LogLevel string       `yaml:"log_level"` // default: "info"
}

// OpenAIConfig holds settings for api.openai.com or a compatible endpoint.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"` // optional
}

// AzureConfig holds Azure OpenAI settings. On Azure the model identifier of
// every call is the deployment name.
type AzureConfig struct {
	APIKey     string `yaml:"api_key"`
	Endpoint   string `yaml:"endpoint"`
	APIVersion string `yaml:"api_version"` // default: DefaultAzureAPIVersion
}

// ModelsConfig holds the model used when a call does not name one.
type ModelsConfig struct {
	Chat          string `yaml:"chat"`          // default: "gpt-4o-mini"
	Embedding     string `yaml:"embedding"`     // default: "text-embedding-3-small"
	Transcription string `yaml:"transcription"` // default: "whisper-1"
}

// Defaults returns a Config with all default values filled in.
func Defaults() Config {
	return Config{
		Provider: ProviderOpenAI,
		Azure: AzureConfig{
			APIVersion: DefaultAzureAPIVersion,
		},
		Models: ModelsConfig{
			Chat:          "gpt-4o-mini",
			Embedding:     "text-embedding-3-small",
			Transcription: "whisper-1",
		},
		LogLevel: "info",
	}
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
