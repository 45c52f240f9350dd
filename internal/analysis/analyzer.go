// Package analysis implements the four model-backed reasoning stages:
// extraction, topic aggregation, strength estimation and advice generation.
// Each stage is an independent function of its inputs with exactly one
// outbound model call and no state, so the atomic pipeline and the stepwise
// tool surface share them unchanged.
package analysis

import (
	"go.uber.org/zap"

	"github.com/thisiskushal31/TrendSignal/internal/llm"
)

// Token budgets per stage, matching how much each reply can reasonably need.
const (
	extractMaxTokens  = 2048
	topicsMaxTokens   = 1024
	strengthMaxTokens = 256
	adviceMaxTokens   = 1024
)

// Analyzer bundles the structured-output client the stages call through.
// Safe for concurrent use across requests.
type Analyzer struct {
	client *llm.Client
	log    *zap.SugaredLogger
}

// New creates an Analyzer.
func New(client *llm.Client, log *zap.SugaredLogger) *Analyzer {
	return &Analyzer{client: client, log: log}
}
