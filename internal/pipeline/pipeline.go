// Package pipeline composes the four analysis stages into the atomic
// analyze call. It is just one more caller of the stage functions; the
// stepwise tool surface invokes the same functions one at a time.
package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/thisiskushal31/TrendSignal/internal/analysis"
	"github.com/thisiskushal31/TrendSignal/internal/apperr"
	"github.com/thisiskushal31/TrendSignal/internal/llm"
	"github.com/thisiskushal31/TrendSignal/pkg/types"
)

// Pipeline runs extraction, aggregation, strength estimation and advice
// generation in fixed order for one screenshot. Stateless; every Run owns
// its intermediate values and nothing is shared across requests.
type Pipeline struct {
	analyzer *analysis.Analyzer
	log      *zap.SugaredLogger
}

// New creates a Pipeline.
func New(analyzer *analysis.Analyzer, log *zap.SugaredLogger) *Pipeline {
	return &Pipeline{analyzer: analyzer, log: log}
}

// Run executes the full flow: extract -> aggregate -> pick top topic ->
// estimate strength -> generate advice -> assemble the report. Any stage
// failure aborts the run; no partial report is ever returned and no stage is
// retried here. If strength fails for the top topic there is no fallback to
// the next-ranked one.
func (p *Pipeline) Run(ctx context.Context, image *llm.ImagePayload) (*types.InsightReport, error) {
	items, err := p.analyzer.Extract(ctx, image)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tally, err := p.analyzer.AggregateTopics(ctx, items)
	if err != nil {
		return nil, err
	}
	if len(tally) == 0 {
		return nil, apperr.New(apperr.NoTopicDetected, "no dominant topics detected in the screenshot")
	}
	topic := tally[0].TopicName
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stage, err := p.analyzer.EstimateStrength(ctx, topic, items)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	advice, err := p.analyzer.GenerateAdvice(ctx, topic, stage)
	if err != nil {
		return nil, err
	}

	report := &types.InsightReport{
		Topic:         topic,
		TrendStrength: stage,
		WhyTrending:   advice.WhyTrending,
		WhoIsWinning:  advice.WhoIsWinning,
		HowToPost:     advice.PostingAdvice,
		Hooks:         advice.Hooks,
	}
	p.log.Infow("pipeline completed", "topic", report.Topic, "stage", report.TrendStrength)
	return report, nil
}
