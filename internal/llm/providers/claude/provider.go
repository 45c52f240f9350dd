package claude

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/thisiskushal31/TrendSignal/internal/llm"
	"github.com/thisiskushal31/TrendSignal/pkg/types"
)

// Provider implements llm.Provider for Anthropic Claude
type Provider struct {
	client  anthropic.Client
	timeout time.Duration
	enabled bool
}

// NewProvider creates a new Claude provider
func NewProvider(config types.AnthropicConfig) (*Provider, error) {
	if config.APIKey == "" {
		return &Provider{enabled: false}, nil
	}

	return &Provider{
		client:  anthropic.NewClient(option.WithAPIKey(config.APIKey)),
		timeout: config.Timeout,
		enabled: true,
	}, nil
}

// Name returns the provider name
func (p *Provider) Name() string {
	return "anthropic"
}

// IsEnabled returns whether the provider is configured
func (p *Provider) IsEnabled() bool {
	return p.enabled
}

// Complete sends one Messages API request, attaching the image as a base64
// block when present.
func (p *Provider) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	if !p.enabled {
		return "", fmt.Errorf("anthropic provider is not configured (missing API key)")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	var userMessage anthropic.MessageParam
	if req.Image != nil {
		userMessage = anthropic.NewUserMessage(
			anthropic.NewImageBlockBase64(req.Image.MIME, req.Image.Base64()),
			anthropic.NewTextBlock(req.User),
		)
	} else {
		userMessage = anthropic.NewUserMessage(anthropic.NewTextBlock(req.User))
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: int64(maxTokens),
		Messages:  []anthropic.MessageParam{userMessage},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("Claude API error: %w", err)
	}

	var text string
	for _, content := range resp.Content {
		if content.Type == "text" {
			text += content.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("no text response from Claude")
	}
	return strings.TrimSpace(text), nil
}
