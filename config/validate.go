package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for valid values.
// Returns an error with a descriptive field path on failure.
func (c *Config) Validate() error {
	var errs []error

	switch c.Provider {
	case ProviderOpenAI, ProviderAzure:
		// valid
	default:
		errs = append(errs, fmt.Errorf("provider must be %q or %q, got %q", ProviderOpenAI, ProviderAzure, c.Provider))
	}

	if c.Provider == ProviderAzure && c.Azure.APIVersion == "" {
		errs = append(errs, fmt.Errorf("azure.api_version is required when provider is %q", ProviderAzure))
	}

	if c.Models.Chat == "" {
		errs = append(errs, fmt.Errorf("models.chat must not be empty"))
	}
	if c.Models.Embedding == "" {
		errs = append(errs, fmt.Errorf("models.embedding must not be empty"))
	}
	if c.Models.Transcription == "" {
		errs = append(errs, fmt.Errorf("models.transcription must not be empty"))
	}

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
