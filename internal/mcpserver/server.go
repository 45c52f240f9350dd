// Package mcpserver exposes the stepwise surface: each analysis stage as an
// independently callable MCP tool, for an external tool-calling orchestrator
// that chains them one at a time. Every tool is stateless and idempotent for
// identical input; stage errors propagate individually to the caller, which
// owns retry and sequencing.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/thisiskushal31/TrendSignal/internal/analysis"
)

const instructions = `Analyze video-recommendation homepage screenshots for trending topics and creator advice. Call vision_extract_homepage first, then trend_detect_topics, trend_estimate_strength, creator_advice_generator.`

// New builds the MCP server with the four stage tools registered.
func New(analyzer *analysis.Analyzer, version string, log *zap.SugaredLogger) *server.MCPServer {
	s := server.NewMCPServer(
		"TrendSignal",
		version,
		server.WithInstructions(instructions),
		server.WithToolCapabilities(false),
	)

	h := &handlers{analyzer: analyzer, log: log}

	s.AddTool(mcp.NewTool("vision_extract_homepage",
		mcp.WithDescription("Extract video metadata from a homepage screenshot. Returns {\"items\": [{title, source, popularity_signal, recency_signal, tone}, ...]}."),
		mcp.WithString("image", mcp.Required(),
			mcp.Description("Base64-encoded image or data URL (data:image/png;base64,...)")),
	), h.extract)

	s.AddTool(mcp.NewTool("trend_detect_topics",
		mcp.WithDescription("Group extracted items into dominant trending topics. Returns {\"topics\": [{topic_name, video_count}, ...]} sorted by video_count descending."),
		mcp.WithArray("items", mcp.Required(),
			mcp.Description("Array of item objects from vision_extract_homepage"),
			mcp.Items(map[string]any{"type": "object"})),
	), h.detectTopics)

	s.AddTool(mcp.NewTool("trend_estimate_strength",
		mcp.WithDescription("Estimate how trending a topic is using repetition and recency heuristics. Returns {\"trend_strength\": \"EARLY\"|\"HEATING_UP\"|\"SATURATED\"}."),
		mcp.WithString("topic_name", mcp.Required(), mcp.Description("Name of the topic")),
		mcp.WithArray("items",
			mcp.Description("Array of item objects from vision_extract_homepage"),
			mcp.Items(map[string]any{"type": "object"})),
	), h.estimateStrength)

	s.AddTool(mcp.NewTool("creator_advice_generator",
		mcp.WithDescription("Generate insights and posting advice for creators. Returns {why_trending, who_is_winning, posting_advice, hooks: [5 strings]}."),
		mcp.WithString("topic_name", mcp.Required(), mcp.Description("Name of the topic")),
		mcp.WithString("trend_strength", mcp.Required(),
			mcp.Description("EARLY, HEATING_UP, or SATURATED"),
			mcp.Enum("EARLY", "HEATING_UP", "SATURATED")),
	), h.generateAdvice)

	return s
}
