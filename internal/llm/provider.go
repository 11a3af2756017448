package llm

import "context"

// Provider is the narrow interface the tutor engine uses to reach a
// text-generation model. Implementations must be safe for concurrent use.
//
// A nil Provider is a valid configuration: callers treat it as "no model
// available" and take their deterministic fallback path.
type Provider interface {
	// Generate sends a free-text prompt and returns the generated
	// continuation. Errors are advisory; callers always have a fallback.
	Generate(ctx context.Context, req Request) (string, error)

	// ModelID returns the model identifier this provider is configured for.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}
