package llm

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/thisiskushal31/TrendSignal/internal/apperr"
)

// Client is the structured-output wrapper around a Provider. It shapes one
// request, makes exactly one outbound call, and turns the free-text reply
// into a validated record with at most one textual repair before giving up.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	provider    Provider
	visionModel string
	textModel   string
	log         *zap.SugaredLogger
}

// NewClient creates a structured-output client. visionModel backs
// image-carrying calls, textModel the text-only ones; the two slots may name
// the same model.
func NewClient(provider Provider, visionModel, textModel string, log *zap.SugaredLogger) *Client {
	return &Client{
		provider:    provider,
		visionModel: visionModel,
		textModel:   textModel,
		log:         log,
	}
}

// ModelFor returns the configured model identifier for the given call shape.
func (c *Client) ModelFor(image *ImagePayload) string {
	if image != nil {
		return c.visionModel
	}
	return c.textModel
}

// Invoke sends one request and returns the raw response text. Transport-level
// failures surface as upstream_unavailable; no retries, no caching.
func (c *Client) Invoke(ctx context.Context, system, user string, image *ImagePayload, maxTokens int) (string, error) {
	model := c.ModelFor(image)
	text, err := c.provider.Complete(ctx, CompletionRequest{
		Model:     model,
		System:    system,
		User:      user,
		Image:     image,
		MaxTokens: maxTokens,
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", err
		}
		return "", apperr.Wrap(apperr.UpstreamUnavailable, err, "%s call failed", c.provider.Name())
	}
	c.log.Debugw("model call completed", "provider", c.provider.Name(), "model", model, "response_bytes", len(text))
	return text, nil
}

// InvokeStructured sends one request and parses the reply into out. Parsing
// is a fixed two-step: strict parse of the normalized text, then exactly one
// repair attempt. A reply that still does not fit is malformed_output with
// the raw text retained; it is never coerced into a default value.
func (c *Client) InvokeStructured(ctx context.Context, system, user string, image *ImagePayload, maxTokens int, out interface{}) error {
	raw, err := c.Invoke(ctx, system, user, image, maxTokens)
	if err != nil {
		return err
	}
	return c.Decode(raw, out)
}

// Decode runs the parse-repair-fail sequence on an already-fetched reply.
func (c *Client) Decode(raw string, out interface{}) error {
	normalized := Normalize(raw)
	firstErr := json.Unmarshal([]byte(normalized), out)
	if firstErr == nil {
		return nil
	}
	repaired := Repair(normalized)
	if err := json.Unmarshal([]byte(repaired), out); err != nil {
		c.log.Warnw("model reply unparseable after repair", "provider", c.provider.Name(), "parse_error", firstErr)
		return apperr.Wrap(apperr.MalformedOutput, firstErr, "model reply is not valid JSON").WithRaw(raw)
	}
	c.log.Debugw("model reply parsed after repair", "provider", c.provider.Name())
	return nil
}
