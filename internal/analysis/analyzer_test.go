package analysis

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/thisiskushal31/TrendSignal/internal/llm"
)

// scriptedProvider replays canned model replies in order and records every
// request it receives.
type scriptedProvider struct {
	responses []string
	requests  []llm.CompletionRequest
}

func (p *scriptedProvider) Name() string    { return "scripted" }
func (p *scriptedProvider) IsEnabled() bool { return true }

func (p *scriptedProvider) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	p.requests = append(p.requests, req)
	if len(p.responses) == 0 {
		return "", fmt.Errorf("unexpected model call #%d", len(p.requests))
	}
	response := p.responses[0]
	p.responses = p.responses[1:]
	return response, nil
}

func newTestAnalyzer(responses ...string) (*Analyzer, *scriptedProvider) {
	provider := &scriptedProvider{responses: responses}
	client := llm.NewClient(provider, "vision-model", "text-model", zap.NewNop().Sugar())
	return New(client, zap.NewNop().Sugar()), provider
}

// Minimal PNG signature wrapped as a payload for extraction tests.
func testImage() *llm.ImagePayload {
	return &llm.ImagePayload{
		Data: []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'},
		MIME: "image/png",
	}
}
