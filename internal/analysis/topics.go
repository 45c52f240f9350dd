package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/thisiskushal31/TrendSignal/pkg/types"
)

const topicsSystem = `You group lists of video titles into dominant trending topics. You answer with raw JSON only, no markdown.`

const topicsPromptFmt = `Given this list of videos from a video-recommendation homepage, group them into dominant trending topics by title/topic similarity.
Videos (title / source): %s

For each topic that appears multiple times or is clearly dominant, output:
- topic_name: short label (e.g. "AI & Job Insecurity", "Election 2024")
- video_count: number of videos in this topic

Return a JSON object with a single key "topics" containing an array of
{"topic_name": "...", "video_count": N}, sorted by video_count descending.
Raw JSON only.`

// AggregateTopics groups items into named topics with counts. The grouping
// itself is semantic and delegated to the model; this side only shapes the
// instruction, validates the result and enforces the descending-count order.
// An empty item list returns an empty tally without a model call.
func (a *Analyzer) AggregateTopics(ctx context.Context, items []types.ObservedItem) ([]types.TopicTally, error) {
	if len(items) == 0 {
		return []types.TopicTally{}, nil
	}

	type titleSource struct {
		Title  string `json:"title"`
		Source string `json:"source"`
	}
	summary := make([]titleSource, 0, len(items))
	for _, item := range items {
		summary = append(summary, titleSource{Title: item.Title, Source: item.Source})
	}
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item summary: %w", err)
	}

	var resp struct {
		Topics []types.TopicTally `json:"topics"`
	}
	prompt := fmt.Sprintf(topicsPromptFmt, summaryJSON)
	if err := a.client.InvokeStructured(ctx, topicsSystem, prompt, nil, topicsMaxTokens, &resp); err != nil {
		return nil, err
	}

	// Topics with no matches or no name are not emitted.
	tally := make([]types.TopicTally, 0, len(resp.Topics))
	for _, t := range resp.Topics {
		if t.TopicName == "" || t.VideoCount < 1 {
			continue
		}
		tally = append(tally, t)
	}

	// Enforce the ordering invariant locally regardless of what the model
	// returned; stable so equal counts keep their reported order.
	sort.SliceStable(tally, func(i, j int) bool {
		return tally[i].VideoCount > tally[j].VideoCount
	})

	a.log.Infow("aggregation completed", "topics", len(tally))
	return tally, nil
}
