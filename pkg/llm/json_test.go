package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			name:  "bare object",
			input: `{"reached": true, "confidence": 0.9}`,
			want:  `{"reached": true, "confidence": 0.9}`,
			ok:    true,
		},
		{
			name:  "fenced json",
			input: "Here you go:\n```json\n{\"a\": 1}\n```\nanything after",
			want:  `{"a": 1}`,
			ok:    true,
		},
		{
			name:  "prose around object",
			input: `Sure! The result is {"nested": {"b": 2}} as requested.`,
			want:  `{"nested": {"b": 2}}`,
			ok:    true,
		},
		{
			name:  "braces inside strings",
			input: `{"text": "use {placeholders} like \"{}\""}`,
			want:  `{"text": "use {placeholders} like \"{}\""}`,
			ok:    true,
		},
		{
			name:  "no object",
			input: "I could not produce JSON, sorry.",
			ok:    false,
		},
		{
			name:  "unbalanced",
			input: `{"a": {"b": 1}`,
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONBlock(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.True(t, json.Valid([]byte(got)), "extracted block must be valid JSON")
			}
		})
	}
}
