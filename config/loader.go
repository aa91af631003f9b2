package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load loads configuration from defaults, an optional YAML file, an optional
// .env file and the environment, then validates it.
//
// A missing .env file is not an error; the process environment is used as is.
// Credentials are not required here: the client constructor reports them.
func Load(envFile, configPath string) (*Config, error) {
	cfg := Defaults()

	if path := discoverConfigFile(configPath); path != "" {
		if err := loadYAMLFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadEnvFile(envFile)
	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigFile returns the explicit path, else LLMUTILS_CONFIG, else "".
func discoverConfigFile(configPath string) string {
	if configPath != "" {
		return configPath
	}
	return os.Getenv("LLMUTILS_CONFIG")
}

// loadYAMLFile reads and parses a YAML file into the Config struct.
// Fields not present in the YAML retain their current (default) values.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// loadEnvFile loads KEY=VALUE pairs from envFile into the environment.
// godotenv never overrides variables that are already set.
func loadEnvFile(envFile string) {
	if envFile == "" {
		return
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("Error loading .env file, falling back to environment variables")
	}
}

func applyEnvOverrides(cfg *Config) {
	setFromEnv(&cfg.Provider, "LLMUTILS_PROVIDER")
	setFromEnv(&cfg.LogLevel, "LLMUTILS_LOG_LEVEL")

	setFromEnv(&cfg.OpenAI.APIKey, "OPENAI_API_KEY")
	setFromEnv(&cfg.OpenAI.BaseURL, "OPENAI_BASE_URL")

	setFromEnv(&cfg.Azure.APIKey, "AZURE_OPENAI_API_KEY")
	setFromEnv(&cfg.Azure.Endpoint, "AZURE_OPENAI_ENDPOINT")
	setFromEnv(&cfg.Azure.APIVersion, "OPENAI_API_VERSION")

	setFromEnv(&cfg.Models.Chat, "LLMUTILS_CHAT_MODEL")
	setFromEnv(&cfg.Models.Embedding, "EMBEDDING_MODEL")
	setFromEnv(&cfg.Models.Transcription, "LLMUTILS_TRANSCRIPTION_MODEL")
}

// setFromEnv overwrites *field when key is set to a non-empty value.
func setFromEnv(field *string, key string) {
	if value := getEnv(key, ""); value != "" {
		*field = value
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
