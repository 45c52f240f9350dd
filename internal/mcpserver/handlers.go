package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/thisiskushal31/TrendSignal/internal/analysis"
	"github.com/thisiskushal31/TrendSignal/internal/apperr"
	"github.com/thisiskushal31/TrendSignal/internal/llm"
	"github.com/thisiskushal31/TrendSignal/pkg/types"
)

type handlers struct {
	analyzer *analysis.Analyzer
	log      *zap.SugaredLogger
}

func (h *handlers) extract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	imageStr, err := req.RequireString("image")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	image, err := llm.DecodeImage(imageStr)
	if err != nil {
		return toolError(apperr.Wrap(apperr.InvalidInput, err, "image is not decodable")), nil
	}

	items, err := h.analyzer.Extract(ctx, image)
	if err != nil {
		return toolError(err), nil
	}
	return toolJSON(map[string]any{"items": items})
}

func (h *handlers) detectTopics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Items []types.ObservedItem `json:"items"`
	}
	if err := req.BindArguments(&args); err != nil {
		return toolError(apperr.Wrap(apperr.InvalidInput, err, "items must be an array of item objects")), nil
	}

	tally, err := h.analyzer.AggregateTopics(ctx, args.Items)
	if err != nil {
		return toolError(err), nil
	}
	return toolJSON(map[string]any{"topics": tally})
}

func (h *handlers) estimateStrength(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		TopicName string               `json:"topic_name"`
		Items     []types.ObservedItem `json:"items"`
	}
	if err := req.BindArguments(&args); err != nil {
		return toolError(apperr.Wrap(apperr.InvalidInput, err, "invalid arguments")), nil
	}

	stage, err := h.analyzer.EstimateStrength(ctx, args.TopicName, args.Items)
	if err != nil {
		return toolError(err), nil
	}
	return toolJSON(map[string]any{"trend_strength": stage})
}

func (h *handlers) generateAdvice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := req.RequireString("topic_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	stageStr, err := req.RequireString("trend_strength")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	stage, err := types.ParseTrendStage(stageStr)
	if err != nil {
		return toolError(apperr.Wrap(apperr.InvalidInput, err, "invalid trend_strength")), nil
	}

	advice, err := h.analyzer.GenerateAdvice(ctx, topic, stage)
	if err != nil {
		return toolError(err), nil
	}
	return toolJSON(advice)
}

// toolJSON renders a stage result as a JSON text content block.
func toolJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// toolError surfaces a stage failure as a tool error. Tagged errors already
// carry their kind prefix, which the calling orchestrator uses to decide what
// to retry.
func toolError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}
