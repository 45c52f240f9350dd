package types

import (
	"fmt"
	"strings"
)

// ObservedItem is one video entry inferred from the homepage screenshot.
// Signals are free text exactly as the model reported them; nothing here is a
// verified metric.
type ObservedItem struct {
	Title            string `json:"title"`
	Source           string `json:"source"`
	PopularitySignal string `json:"popularity_signal"`
	RecencySignal    string `json:"recency_signal"`
	Tone             string `json:"tone"`
}

// Normalize fills defaults for optional fields. An empty tone becomes
// "neutral"; the tone set is otherwise open.
func (i *ObservedItem) Normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Source = strings.TrimSpace(i.Source)
	i.PopularitySignal = strings.TrimSpace(i.PopularitySignal)
	i.RecencySignal = strings.TrimSpace(i.RecencySignal)
	i.Tone = strings.ToLower(strings.TrimSpace(i.Tone))
	if i.Tone == "" {
		i.Tone = "neutral"
	}
}

// TopicTally is a named cluster of observed items with its count.
type TopicTally struct {
	TopicName  string `json:"topic_name"`
	VideoCount int    `json:"video_count"`
}

// TrendStage classifies topic momentum. The set is closed: any other token
// coming back from the model is a contract violation, not a fourth stage.
type TrendStage string

const (
	StageEarly     TrendStage = "EARLY"
	StageHeatingUp TrendStage = "HEATING_UP"
	StageSaturated TrendStage = "SATURATED"
)

// ParseTrendStage validates a stage token, accepting any casing.
func ParseTrendStage(s string) (TrendStage, error) {
	switch TrendStage(strings.ToUpper(strings.TrimSpace(s))) {
	case StageEarly:
		return StageEarly, nil
	case StageHeatingUp:
		return StageHeatingUp, nil
	case StageSaturated:
		return StageSaturated, nil
	default:
		return "", fmt.Errorf("unknown trend stage %q (expected EARLY, HEATING_UP or SATURATED)", s)
	}
}

// Valid reports whether the stage is one of the three known tokens.
func (s TrendStage) Valid() bool {
	_, err := ParseTrendStage(string(s))
	return err == nil
}

// HookCount is the number of promotional hooks the advice stage must return.
const HookCount = 5

// AdviceRecord is the generated explanation/recommendation bundle for one
// topic and stage pair.
type AdviceRecord struct {
	WhyTrending   string   `json:"why_trending"`
	WhoIsWinning  string   `json:"who_is_winning"`
	PostingAdvice string   `json:"posting_advice"`
	Hooks         []string `json:"hooks"`
}

// InsightReport is the externally visible result of one full analysis. It is
// assembled once by the pipeline and never mutated afterwards.
type InsightReport struct {
	Topic         string     `json:"topic"`
	TrendStrength TrendStage `json:"trend_strength"`
	WhyTrending   string     `json:"why_trending"`
	WhoIsWinning  string     `json:"who_is_winning"`
	HowToPost     string     `json:"how_to_post"`
	Hooks         []string   `json:"hooks"`
}
