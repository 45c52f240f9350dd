package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thisiskushal31/TrendSignal/pkg/types"
)

func TestNewDefaultsToOpenAI(t *testing.T) {
	provider, err := New(types.LLMConfig{})
	require.NoError(t, err)
	assert.Equal(t, "openai", provider.Name())
	// No API key configured anywhere in the test environment.
	assert.False(t, provider.IsEnabled())
}

func TestNewAcceptsProviderAliases(t *testing.T) {
	for _, name := range []string{"anthropic", "claude"} {
		provider, err := New(types.LLMConfig{Provider: name})
		require.NoError(t, err)
		assert.Equal(t, "anthropic", provider.Name())
	}
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := New(types.LLMConfig{Provider: "llama-at-home"})
	assert.Error(t, err)
}
