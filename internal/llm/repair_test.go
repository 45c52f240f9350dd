package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json untouched",
			input: `{"topics": []}`,
			want:  `{"topics": []}`,
		},
		{
			name:  "markdown fence stripped",
			input: "```json\n{\"topics\": []}\n```",
			want:  `{"topics": []}`,
		},
		{
			name:  "fence without language tag",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "trailing comma in object",
			input: `{"a": 1,}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "trailing comma in array",
			input: `{"hooks": ["a", "b",]}`,
			want:  `{"hooks": ["a", "b"]}`,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  {\"a\": 1}\n",
			want:  `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestRepair(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "surrounding prose sliced away",
			input: `Here is the result: {"topic_name": "AI", "video_count": 2} Hope that helps!`,
		},
		{
			name:  "missing comma between objects",
			input: "{\"items\": [{\"title\": \"a\"} {\"title\": \"b\"}]}",
		},
		{
			name:  "missing comma after number",
			input: "{\"video_count\": 2\n\"topic_name\": \"AI\"}",
		},
		{
			name:  "missing comma after literal",
			input: "{\"ok\": true\n\"topic_name\": \"AI\"}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out map[string]any
			repaired := Repair(Normalize(tt.input))
			require.NoError(t, json.Unmarshal([]byte(repaired), &out), "repaired text: %s", repaired)
		})
	}
}

func TestRepairDoesNotInventContent(t *testing.T) {
	// Text with no JSON object at all stays unparseable.
	repaired := Repair(Normalize("I could not read the screenshot, sorry."))
	var out map[string]any
	assert.Error(t, json.Unmarshal([]byte(repaired), &out))
}
