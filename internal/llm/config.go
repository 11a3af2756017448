package llm

// Config holds connection settings for the optional text-generation
// collaborator.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// FromConfig builds a Provider, or returns nil when no API key is set.
// A nil Provider means generation falls back to templated output everywhere.
func FromConfig(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}
	return NewOpenAIProvider(cfg)
}
