// Package llm provides centralized LLM configuration and client abstractions.
package llm

// Provider represents an LLM provider.
type Provider string

// Provider constants define supported LLM providers.
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application.
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    "gemini-2.5-flash",
	}
}

// WithModel returns a new Config using the given model name. An empty name
// leaves the configuration unchanged.
func (c *Config) WithModel(model string) *Config {
	if model == "" {
		return c
	}
	return &Config{
		Provider: c.Provider,
		Model:    model,
	}
}
