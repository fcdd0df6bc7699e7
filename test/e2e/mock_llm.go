package e2e

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/maestro-works/maestro/pkg/llm"
)

// ExtractionRule answers the structured-extraction call every persona
// work cycle ends with.
func ExtractionRule() llm.CannedRule {
	return llm.CannedRule{Match: "=== RESPONSE START ===", Reply: `{"summary": "work posted"}`}
}

// WriteFileRule returns a rule for personaID that writes relPath under
// the execution workspace, so deliverable gates can find it.
func WriteFileRule(personaID, reply, relPath string) llm.CannedRule {
	return llm.CannedRule{
		Match: personaID,
		Reply: reply,
		Workspace: func(root string) error {
			path := filepath.Join(root, relPath)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			return os.WriteFile(path, []byte("# "+relPath+"\n\nContent produced for "+relPath+".\n"), 0o644)
		},
	}
}

// BlockingClient wraps an llm.Client and parks calls for one persona
// until the call's context is cancelled. Cancellation and timeout tests
// use it to hold an execution in_progress at a known point.
type BlockingClient struct {
	inner        llm.Client
	blockPersona string

	once    sync.Once
	started chan struct{}
}

// NewBlockingClient blocks calls whose PersonaID equals personaID and
// delegates everything else to inner.
func NewBlockingClient(inner llm.Client, personaID string) *BlockingClient {
	return &BlockingClient{
		inner:        inner,
		blockPersona: personaID,
		started:      make(chan struct{}),
	}
}

// Started is closed when the first blocked call has been entered.
func (b *BlockingClient) Started() <-chan struct{} { return b.started }

// Generate parks matching calls until ctx is done, then surfaces the
// cancellation as a stream error.
func (b *BlockingClient) Generate(ctx context.Context, input *llm.GenerateInput) (<-chan llm.Chunk, error) {
	if input.PersonaID != b.blockPersona {
		return b.inner.Generate(ctx, input)
	}

	b.once.Do(func() { close(b.started) })
	ch := make(chan llm.Chunk, 1)
	go func() {
		defer close(ch)
		<-ctx.Done()
		ch <- &llm.ErrorChunk{Message: ctx.Err().Error()}
	}()
	return ch, nil
}

// Close closes the wrapped client.
func (b *BlockingClient) Close() error { return b.inner.Close() }
