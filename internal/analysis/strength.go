package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/thisiskushal31/TrendSignal/internal/apperr"
	"github.com/thisiskushal31/TrendSignal/pkg/types"
)

const strengthSystem = `You estimate how far along a trending topic is in its lifecycle. You answer with raw JSON only, no markdown.`

const strengthPromptFmt = `Topic: %s
Videos (sample): %s

Using repetition and velocity heuristics (how many of the videos repeat this
topic, how recent they look, how their popularity signals cluster; you have
no ground-truth view counts), estimate:
- trend_strength: one of EARLY (emerging), HEATING_UP (growing), SATURATED (peak/declining)
- confidence: one of low, medium, high

Return JSON: {"trend_strength": "...", "confidence": "..."}. Raw JSON only.`

// Up to this many items are quoted in the strength prompt.
const strengthSampleSize = 15

// EstimateStrength classifies the topic into one of the three trend stages.
// An empty item list weakens the estimate but is accepted; a stage token
// outside the closed set is malformed output, never coerced to a default.
func (a *Analyzer) EstimateStrength(ctx context.Context, topic string, items []types.ObservedItem) (types.TrendStage, error) {
	if topic == "" {
		return "", apperr.New(apperr.InvalidInput, "topic name is required")
	}

	sample := items
	if len(sample) > strengthSampleSize {
		sample = sample[:strengthSampleSize]
	}
	sampleJSON, err := json.Marshal(sample)
	if err != nil {
		return "", fmt.Errorf("failed to encode item sample: %w", err)
	}

	prompt := fmt.Sprintf(strengthPromptFmt, topic, sampleJSON)
	raw, err := a.client.Invoke(ctx, strengthSystem, prompt, nil, strengthMaxTokens)
	if err != nil {
		return "", err
	}

	var resp struct {
		TrendStrength string `json:"trend_strength"`
		Confidence    string `json:"confidence"`
	}
	if err := a.client.Decode(raw, &resp); err != nil {
		return "", err
	}

	stage, err := types.ParseTrendStage(resp.TrendStrength)
	if err != nil {
		return "", apperr.Wrap(apperr.MalformedOutput, err, "model returned a stage outside the closed set").WithRaw(raw)
	}

	a.log.Infow("strength estimated", "topic", topic, "stage", stage, "confidence", resp.Confidence)
	return stage, nil
}
