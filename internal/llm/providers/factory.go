// Package providers selects the configured model provider. Each provider
// subpackage wraps one vendor SDK behind the llm.Provider interface.
package providers

import (
	"fmt"

	"github.com/thisiskushal31/TrendSignal/internal/llm"
	"github.com/thisiskushal31/TrendSignal/internal/llm/providers/claude"
	"github.com/thisiskushal31/TrendSignal/internal/llm/providers/gemini"
	"github.com/thisiskushal31/TrendSignal/internal/llm/providers/openai"
	"github.com/thisiskushal31/TrendSignal/pkg/types"
)

// New creates the provider named in the configuration.
func New(config types.LLMConfig) (llm.Provider, error) {
	switch config.Provider {
	case "openai", "":
		return openai.NewProvider(config.OpenAI)

	case "google", "gemini":
		return gemini.NewProvider(config.Google)

	case "anthropic", "claude":
		return claude.NewProvider(config.Anthropic)

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: openai, google, anthropic)", config.Provider)
	}
}
