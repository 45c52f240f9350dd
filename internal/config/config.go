// Package config loads the YAML configuration file and fills environment
// fallbacks. Configuration is read once at process start and shared read-only
// across requests; nothing mutates it afterwards.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thisiskushal31/TrendSignal/pkg/types"
)

// The default model identifier for both slots when unset.
const defaultModel = "gpt-4o"

// Load reads and parses the YAML configuration file, expanding ${VAR}
// references first. An empty path yields a config built purely from
// environment variables and defaults.
func Load(path string) (*types.Config, error) {
	var config types.Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnv(&config)
	applyDefaults(&config)
	return &config, nil
}

// applyEnv fills credentials and model slots from the environment when the
// file left them empty. The two model slots are independent; each falls back
// to the same general-purpose identifier.
func applyEnv(c *types.Config) {
	if c.LLM.OpenAI.APIKey == "" {
		c.LLM.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.LLM.OpenAI.VisionModel == "" {
		c.LLM.OpenAI.VisionModel = os.Getenv("OPENAI_VISION_MODEL")
	}
	if c.LLM.OpenAI.TextModel == "" {
		c.LLM.OpenAI.TextModel = os.Getenv("OPENAI_CHAT_MODEL")
	}
	if c.LLM.Google.APIKey == "" {
		c.LLM.Google.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.LLM.Anthropic.APIKey == "" {
		c.LLM.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
}

func applyDefaults(c *types.Config) {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8001"
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = 2 * time.Minute
	}
	if len(c.Server.AllowOrigins) == 0 {
		c.Server.AllowOrigins = []string{"*"}
	}
	if c.MCP.Addr == "" {
		c.MCP.Addr = ":8000"
	}
	if c.MCP.Transport == "" {
		c.MCP.Transport = "http"
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "openai"
	}

	if c.LLM.OpenAI.VisionModel == "" {
		c.LLM.OpenAI.VisionModel = defaultModel
	}
	if c.LLM.OpenAI.TextModel == "" {
		c.LLM.OpenAI.TextModel = defaultModel
	}
	if c.LLM.OpenAI.Timeout == 0 {
		c.LLM.OpenAI.Timeout = 60 * time.Second
	}
	if c.LLM.Google.VisionModel == "" {
		c.LLM.Google.VisionModel = "gemini-2.0-flash"
	}
	if c.LLM.Google.TextModel == "" {
		c.LLM.Google.TextModel = "gemini-2.0-flash"
	}
	if c.LLM.Google.Timeout == 0 {
		c.LLM.Google.Timeout = 60 * time.Second
	}
	if c.LLM.Anthropic.VisionModel == "" {
		c.LLM.Anthropic.VisionModel = "claude-3-5-sonnet-latest"
	}
	if c.LLM.Anthropic.TextModel == "" {
		c.LLM.Anthropic.TextModel = "claude-3-5-sonnet-latest"
	}
	if c.LLM.Anthropic.Timeout == 0 {
		c.LLM.Anthropic.Timeout = 60 * time.Second
	}
}

// Models returns the vision and text model slots for the configured provider.
func Models(c *types.Config) (vision, text string) {
	switch c.LLM.Provider {
	case "google", "gemini":
		return c.LLM.Google.VisionModel, c.LLM.Google.TextModel
	case "anthropic", "claude":
		return c.LLM.Anthropic.VisionModel, c.LLM.Anthropic.TextModel
	default:
		return c.LLM.OpenAI.VisionModel, c.LLM.OpenAI.TextModel
	}
}
