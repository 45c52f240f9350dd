package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thisiskushal31/TrendSignal/pkg/types"
)

func sampleItems() []types.ObservedItem {
	return []types.ObservedItem{
		{Title: "AI job loss", Tone: "fear"},
		{Title: "AI takes jobs", Tone: "fear"},
		{Title: "cooking pasta", Tone: "neutral"},
	}
}

func TestAggregateTopicsGroupsAndRanks(t *testing.T) {
	analyzer, provider := newTestAnalyzer(`{
		"topics": [
			{"topic_name": "AI & Job Insecurity", "video_count": 2},
			{"topic_name": "Cooking", "video_count": 1}
		]
	}`)

	tally, err := analyzer.AggregateTopics(context.Background(), sampleItems())
	require.NoError(t, err)
	require.Len(t, tally, 2)
	assert.Equal(t, "AI & Job Insecurity", tally[0].TopicName)
	assert.Equal(t, 2, tally[0].VideoCount)

	require.Len(t, provider.requests, 1)
	assert.Nil(t, provider.requests[0].Image, "aggregation is a text-only call")
	assert.Equal(t, "text-model", provider.requests[0].Model)
}

func TestAggregateTopicsEnforcesDescendingOrder(t *testing.T) {
	// The model returned ascending order; the stage must re-sort.
	analyzer, _ := newTestAnalyzer(`{
		"topics": [
			{"topic_name": "Cooking", "video_count": 1},
			{"topic_name": "Elections", "video_count": 3},
			{"topic_name": "AI", "video_count": 2}
		]
	}`)

	tally, err := analyzer.AggregateTopics(context.Background(), sampleItems())
	require.NoError(t, err)
	require.Len(t, tally, 3)
	for i := 1; i < len(tally); i++ {
		assert.GreaterOrEqual(t, tally[i-1].VideoCount, tally[i].VideoCount)
	}
	assert.Equal(t, "Elections", tally[0].TopicName)
}

func TestAggregateTopicsTieKeepsReportedOrder(t *testing.T) {
	analyzer, _ := newTestAnalyzer(`{
		"topics": [
			{"topic_name": "First Seen", "video_count": 2},
			{"topic_name": "Second Seen", "video_count": 2}
		]
	}`)

	tally, err := analyzer.AggregateTopics(context.Background(), sampleItems())
	require.NoError(t, err)
	require.Len(t, tally, 2)
	assert.Equal(t, "First Seen", tally[0].TopicName)
}

func TestAggregateTopicsDropsInvalidEntries(t *testing.T) {
	analyzer, _ := newTestAnalyzer(`{
		"topics": [
			{"topic_name": "AI", "video_count": 2},
			{"topic_name": "", "video_count": 4},
			{"topic_name": "Ghost Topic", "video_count": 0}
		]
	}`)

	tally, err := analyzer.AggregateTopics(context.Background(), sampleItems())
	require.NoError(t, err)
	require.Len(t, tally, 1)
	assert.Equal(t, "AI", tally[0].TopicName)
}

func TestAggregateTopicsEmptyInputSkipsModelCall(t *testing.T) {
	analyzer, provider := newTestAnalyzer()

	tally, err := analyzer.AggregateTopics(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, tally)
	assert.Empty(t, tally)
	assert.Empty(t, provider.requests)
}
