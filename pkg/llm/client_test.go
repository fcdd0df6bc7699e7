package llm

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectText(t *testing.T) {
	ch := make(chan Chunk, 5)
	ch <- &ThinkingChunk{Content: "considering options"}
	ch <- &TextChunk{Content: "hello "}
	ch <- &TextChunk{Content: "world"}
	ch <- &UsageChunk{InputTokens: 10, OutputTokens: 2, TotalTokens: 12}
	close(ch)

	text, usage, err := CollectText(context.Background(), ch)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text, "thinking chunks are not collected")
	assert.Equal(t, 12, usage.TotalTokens)
}

func TestCollectTextErrorChunk(t *testing.T) {
	ch := make(chan Chunk, 2)
	ch <- &TextChunk{Content: "partial"}
	ch <- &ErrorChunk{Message: "rate limited", Code: "429", Retryable: true}
	close(ch)

	_, _, err := CollectText(context.Background(), ch)
	assert.ErrorIs(t, err, ErrStreamFailed)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestCollectTextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := make(chan Chunk) // never fed
	_, _, err := CollectText(ctx, ch)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCannedClientMatchesRules(t *testing.T) {
	client := NewCannedClient("default reply",
		CannedRule{Match: "architecture", Reply: "layered design"},
		CannedRule{Match: "qa_engineer", Reply: "tests written"},
	)
	defer client.Close()

	text, _, err := GenerateText(context.Background(), client, &GenerateInput{
		Messages: []Message{{Role: RoleUser, Content: "Propose an architecture for the service"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "layered design", text)

	// Persona id also matches.
	text, _, err = GenerateText(context.Background(), client, &GenerateInput{
		PersonaID: "qa_engineer",
		Messages:  []Message{{Role: RoleUser, Content: "unrelated"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "tests written", text)

	// Fallback.
	text, _, err = GenerateText(context.Background(), client, &GenerateInput{
		Messages: []Message{{Role: RoleUser, Content: "something else"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "default reply", text)

	assert.Len(t, client.Calls(), 3)
}

func TestCannedClientWorkspaceHook(t *testing.T) {
	root := t.TempDir()
	client := NewCannedClient("done", CannedRule{
		Match: "implement",
		Reply: "wrote the handler",
		Workspace: func(root string) error {
			return os.WriteFile(filepath.Join(root, "handler.go"), []byte("package api"), 0o644)
		},
	})

	text, _, err := GenerateText(context.Background(), client, &GenerateInput{
		WorkspaceRoot: root,
		Messages:      []Message{{Role: RoleUser, Content: "implement the endpoint"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "wrote the handler", text)
	assert.FileExists(t, filepath.Join(root, "handler.go"))
}

func TestCannedClientErrorRule(t *testing.T) {
	client := NewCannedClient("ok", CannedRule{
		Match: "flaky",
		Err:   &ErrorChunk{Message: "upstream timeout", Code: "504", Retryable: true},
	})

	_, _, err := GenerateText(context.Background(), client, &GenerateInput{
		Messages: []Message{{Role: RoleUser, Content: "flaky call"}},
	})
	assert.ErrorIs(t, err, ErrStreamFailed)
}
