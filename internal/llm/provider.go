package llm

import (
	"context"
)

// Provider abstracts the underlying model capability (OpenAI, Gemini, Claude).
// A provider sends one completion request and returns the raw response text;
// everything above it treats the model as a black box.
type Provider interface {
	// Name returns the provider name
	Name() string

	// IsEnabled returns whether the provider is configured with valid credentials
	IsEnabled() bool

	// Complete sends one request to the model and returns the raw text reply.
	// Implementations make exactly one outbound call; retry policy belongs to
	// the caller.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest is the fixed contract between the structured-output
// client and a provider: a system instruction, a user instruction, and an
// optional image payload.
type CompletionRequest struct {
	Model     string
	System    string
	User      string
	Image     *ImagePayload // nil for text-only calls
	MaxTokens int
}
