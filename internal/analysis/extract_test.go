package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thisiskushal31/TrendSignal/internal/apperr"
)

func TestExtractReturnsItemsInVisualOrder(t *testing.T) {
	analyzer, provider := newTestAnalyzer(`{
		"items": [
			{"title": "AI job loss", "source": "TechDaily", "popularity_signal": "1.2M views", "recency_signal": "3 hours ago", "tone": "Fear"},
			{"title": "cooking pasta", "source": "HomeChef", "popularity_signal": "", "recency_signal": "", "tone": ""}
		]
	}`)

	items, err := analyzer.Extract(context.Background(), testImage())
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Order preserved, tone lowercased, empty tone defaults to neutral.
	assert.Equal(t, "AI job loss", items[0].Title)
	assert.Equal(t, "fear", items[0].Tone)
	assert.Equal(t, "cooking pasta", items[1].Title)
	assert.Equal(t, "neutral", items[1].Tone)

	// The image rides along on the one outbound call.
	require.Len(t, provider.requests, 1)
	assert.NotNil(t, provider.requests[0].Image)
	assert.Equal(t, "vision-model", provider.requests[0].Model)
}

func TestExtractUnreadableScreenshotYieldsEmptyList(t *testing.T) {
	analyzer, _ := newTestAnalyzer(`{"items": []}`)

	items, err := analyzer.Extract(context.Background(), testImage())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestExtractNullItemsNormalizesToEmptyList(t *testing.T) {
	analyzer, _ := newTestAnalyzer(`{"items": null}`)

	items, err := analyzer.Extract(context.Background(), testImage())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestExtractRequiresImage(t *testing.T) {
	analyzer, provider := newTestAnalyzer()

	_, err := analyzer.Extract(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
	assert.Empty(t, provider.requests, "no model call for invalid input")
}

func TestExtractMalformedReplySurfaces(t *testing.T) {
	analyzer, _ := newTestAnalyzer("not json at all")

	_, err := analyzer.Extract(context.Background(), testImage())
	require.Error(t, err)
	assert.Equal(t, apperr.MalformedOutput, apperr.KindOf(err))
}
