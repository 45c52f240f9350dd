package analysis

import (
	"context"

	"github.com/thisiskushal31/TrendSignal/internal/apperr"
	"github.com/thisiskushal31/TrendSignal/internal/llm"
	"github.com/thisiskushal31/TrendSignal/pkg/types"
)

const extractSystem = `You analyze screenshots of a video-recommendation homepage (recommended/home feed). You answer with raw JSON only, no markdown.`

const extractPrompt = `For each visible video thumbnail/card in the screenshot, extract:
- title: exact or best-effort title (empty string if illegible)
- source: channel or creator name
- popularity_signal: the view-count text as shown (e.g. "1.2M views"), else empty string
- recency_signal: the elapsed-time text as shown (e.g. "3 hours ago"), else empty string
- tone: one short lowercase label for the emotional framing inferred from title/thumbnail (e.g. fear, curiosity, confidence, urgency, humor, neutral)

Return a JSON object with a single key "items" containing an array of such objects,
in the visual order they appear. Only include videos you can clearly see. If no
videos are readable, return {"items": []}. Raw JSON only.`

// Extract returns the ordered list of items visible in the screenshot. An
// image with no readable items yields an empty list, not an error.
func (a *Analyzer) Extract(ctx context.Context, image *llm.ImagePayload) ([]types.ObservedItem, error) {
	if image == nil {
		return nil, apperr.New(apperr.InvalidInput, "image is required")
	}

	var resp struct {
		Items []types.ObservedItem `json:"items"`
	}
	if err := a.client.InvokeStructured(ctx, extractSystem, extractPrompt, image, extractMaxTokens, &resp); err != nil {
		return nil, err
	}

	items := resp.Items
	if items == nil {
		items = []types.ObservedItem{}
	}
	for i := range items {
		items[i].Normalize()
	}

	a.log.Infow("extraction completed", "items", len(items))
	return items, nil
}
