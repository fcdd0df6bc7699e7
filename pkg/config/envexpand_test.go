package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: "jwt_secret: {{.JWT_SECRET_KEY}}",
			env:   map[string]string{"JWT_SECRET_KEY": "secret123"},
			want:  "jwt_secret: secret123",
		},
		{
			name:  "literal ${VAR} is NOT expanded (no collision)",
			input: "pattern: ${USER_ID}",
			env:   map[string]string{"USER_ID": "123"},
			want:  "pattern: ${USER_ID}",
		},
		{
			name:  "stub-marker regex with $ anchor preserved",
			input: `pattern: "^\\s*#\\s*TODO.*$"`,
			env:   map[string]string{},
			want:  `pattern: "^\\s*#\\s*TODO.*$"`,
		},
		{
			name:  "multiple substitutions in one line",
			input: "addr: {{.LLM_HOST}}:{{.LLM_PORT}}",
			env: map[string]string{
				"LLM_HOST": "llm.internal",
				"LLM_PORT": "50051",
			},
			want: "addr: llm.internal:50051",
		},
		{
			name:  "missing variable expands to empty",
			input: "endpoint: {{.MISSING_VAR}}",
			env:   map[string]string{},
			want:  "endpoint: ",
		},
		{
			name:  "no substitution when no variables",
			input: "static: value",
			env:   map[string]string{"UNUSED": "value"},
			want:  "static: value",
		},
		{
			name:  "variables in nested YAML structure",
			input: "engine:\n  workflows: {{.MAESTRO_ENGINE_PATH}}\n  templates: {{.MAESTRO_TEMPLATES_PATH}}",
			env: map[string]string{
				"MAESTRO_ENGINE_PATH":    "/opt/workflows",
				"MAESTRO_TEMPLATES_PATH": "/opt/templates",
			},
			want: "engine:\n  workflows: /opt/workflows\n  templates: /opt/templates",
		},
		{
			name:  "special characters in expanded value",
			input: "password: {{.PASSWORD}}",
			env:   map[string]string{"PASSWORD": "p@ssw0rd!#$%"},
			want:  "password: p@ssw0rd!#$%",
		},
		{
			name:  "literal dollar in value is preserved",
			input: "password: p@ss$word",
			env:   map[string]string{},
			want:  "password: p@ss$word",
		},
		{
			name:  "empty string variable",
			input: "value: {{.EMPTY}}",
			env:   map[string]string{"EMPTY": ""},
			want:  "value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(result))
		})
	}
}

func TestExpandEnvPreservesOriginalWhenNoVariables(t *testing.T) {
	input := `
# This is a comment
key: value
nested:
  field: "string value"
  number: 123
array:
  - item1
  - item2
`

	result := ExpandEnv([]byte(input))
	assert.Equal(t, input, string(result))
}

// Malformed template syntax is passed through unchanged so the YAML parser
// can handle the content or fail with a clearer error message.
func TestExpandEnvMalformedTemplates(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed template", "jwt_secret: {{.JWT_SECRET_KEY"},
		{"only opening braces", "jwt_secret: {{"},
		{"reversed syntax", "jwt_secret: }}.JWT_SECRET_KEY{{"},
		{"space in variable name", "jwt_secret: {{.JWT SECRET}}"},
		{"undefined function", `jwt_secret: {{.JWT_SECRET_KEY | upper}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET_KEY", "should-not-appear")

			result := ExpandEnv([]byte(tt.input))

			assert.Equal(t, tt.input, string(result))
			assert.NotContains(t, string(result), "should-not-appear")
		})
	}
}

func TestExpandEnvPassThroughToYAMLParser(t *testing.T) {
	// Malformed template inside a quoted string is still valid YAML
	input := `
host: localhost
jwt_secret: "{{.JWT_SECRET_KEY"
port: 8080
`
	expanded := ExpandEnv([]byte(input))

	var result map[string]any
	err := yaml.Unmarshal(expanded, &result)
	assert.NoError(t, err)
	assert.Equal(t, "{{.JWT_SECRET_KEY", result["jwt_secret"])
}
