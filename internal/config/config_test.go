package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_VISION_MODEL", "")
	t.Setenv("OPENAI_CHAT_MODEL", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8001", cfg.Server.Addr)
	assert.Equal(t, 2*time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowOrigins)
	assert.Equal(t, ":8000", cfg.MCP.Addr)
	assert.Equal(t, "http", cfg.MCP.Transport)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.VisionModel)
	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.TextModel)
	assert.Equal(t, 60*time.Second, cfg.LLM.OpenAI.Timeout)
}

func TestLoadEnvFallbacks(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_VISION_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_CHAT_MODEL", "gpt-4.1-mini")
	t.Setenv("GEMINI_API_KEY", "gk-test")
	t.Setenv("ANTHROPIC_API_KEY", "ak-test")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.OpenAI.VisionModel)
	assert.Equal(t, "gpt-4.1-mini", cfg.LLM.OpenAI.TextModel)
	assert.Equal(t, "gk-test", cfg.LLM.Google.APIKey)
	assert.Equal(t, "ak-test", cfg.LLM.Anthropic.APIKey)
}

func TestLoadFileWithEnvExpansion(t *testing.T) {
	t.Setenv("TEST_PROVIDER_KEY", "sk-from-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  addr: ":9090"
  mode: dev
llm:
  provider: anthropic
  anthropic:
    api_key: ${TEST_PROVIDER_KEY}
    vision_model: claude-sonnet-4-0
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "dev", cfg.Server.Mode)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-from-env", cfg.LLM.Anthropic.APIKey)
	assert.Equal(t, "claude-sonnet-4-0", cfg.LLM.Anthropic.VisionModel)
	// Unset slots still receive defaults.
	assert.Equal(t, "claude-3-5-sonnet-latest", cfg.LLM.Anthropic.TextModel)

	vision, text := Models(cfg)
	assert.Equal(t, "claude-sonnet-4-0", vision)
	assert.Equal(t, "claude-3-5-sonnet-latest", text)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestModelsPerProvider(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.LLM.Provider = "google"
	vision, text := Models(cfg)
	assert.Equal(t, "gemini-2.0-flash", vision)
	assert.Equal(t, "gemini-2.0-flash", text)

	cfg.LLM.Provider = "openai"
	vision, text = Models(cfg)
	assert.Equal(t, "gpt-4o", vision)
	assert.Equal(t, "gpt-4o", text)
}
