package types

import "time"

// Config represents the application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	MCP    MCPConfig    `yaml:"mcp"`
	LLM    LLMConfig    `yaml:"llm"`
}

// ServerConfig defines the HTTP (atomic surface) parameters
type ServerConfig struct {
	Addr           string        `yaml:"addr"`            // e.g. ":8001"
	RequestTimeout time.Duration `yaml:"request_timeout"` // per-analysis budget
	AllowOrigins   []string      `yaml:"allow_origins"`
	Mode           string        `yaml:"mode"` // "dev" or "prod", controls logging
}

// MCPConfig defines the stepwise (tool server) surface parameters
type MCPConfig struct {
	Addr      string `yaml:"addr"`      // for streamable HTTP transport
	Transport string `yaml:"transport"` // "http" or "stdio"
}

// LLMConfig defines which model provider backs the analysis stages
type LLMConfig struct {
	Provider string `yaml:"provider"` // "openai", "google", "anthropic"

	// Provider-specific configurations
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Google    GoogleConfig    `yaml:"google"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
}

// OpenAIConfig for GPT models
type OpenAIConfig struct {
	APIKey       string        `yaml:"api_key"`
	VisionModel  string        `yaml:"vision_model"` // image-capable calls
	TextModel    string        `yaml:"text_model"`   // text-only calls
	Organization string        `yaml:"organization"` // Optional
	Timeout      time.Duration `yaml:"timeout"`
}

// GoogleConfig for Gemini
type GoogleConfig struct {
	APIKey      string        `yaml:"api_key"`
	VisionModel string        `yaml:"vision_model"`
	TextModel   string        `yaml:"text_model"`
	Timeout     time.Duration `yaml:"timeout"`
}

// AnthropicConfig for Claude
type AnthropicConfig struct {
	APIKey      string        `yaml:"api_key"`
	VisionModel string        `yaml:"vision_model"`
	TextModel   string        `yaml:"text_model"`
	Timeout     time.Duration `yaml:"timeout"`
}
