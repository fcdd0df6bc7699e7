// Package llm wraps the external LLM collaborator service behind a
// channel-based streaming client. The collaborator runs out of process
// (it holds the model credentials and the workspace file tools) and is
// reached over gRPC; this package owns the Go-side types.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Client is the interface persona execution and group discussion use to
// call the LLM.
type Client interface {
	// Generate sends a conversation and returns a stream of chunks.
	// The channel is closed when the stream completes. Errors raised
	// mid-stream arrive as ErrorChunk values.
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)

	// Close releases the underlying connection.
	Close() error
}

// Roles for conversation messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation sent to the collaborator.
type Message struct {
	Role    string
	Content string
}

// Options tune a single Generate call. Zero values defer to the
// collaborator's defaults.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int

	// JSONOnly asks the collaborator to emit a single JSON object and
	// nothing else. Used for consensus checks and structured extraction.
	JSONOnly bool
}

// GenerateInput carries one Generate request.
type GenerateInput struct {
	ExecutionID   string
	NodeID        string
	PersonaID     string
	WorkspaceRoot string // collaborator file tools are rooted here; empty disables them
	Messages      []Message
	Options       *Options
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText     ChunkType = "text"
	ChunkTypeThinking ChunkType = "thinking"
	ChunkTypeUsage    ChunkType = "usage"
	ChunkTypeError    ChunkType = "error"
)

// TextChunk is a chunk of the response text.
type TextChunk struct{ Content string }

// ThinkingChunk is a chunk of the model's internal reasoning.
type ThinkingChunk struct{ Content string }

// UsageChunk reports token consumption for this call.
type UsageChunk struct{ InputTokens, OutputTokens, TotalTokens int }

// ErrorChunk signals an error from the collaborator.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType     { return ChunkTypeText }
func (c *ThinkingChunk) chunkType() ChunkType { return ChunkTypeThinking }
func (c *UsageChunk) chunkType() ChunkType    { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType    { return ChunkTypeError }

// Usage accumulates token counts across one or more calls.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func (u *Usage) add(c *UsageChunk) {
	u.InputTokens += c.InputTokens
	u.OutputTokens += c.OutputTokens
	u.TotalTokens += c.TotalTokens
}

// ErrStreamFailed wraps mid-stream collaborator errors.
var ErrStreamFailed = errors.New("llm stream failed")

// CollectText drains a chunk stream, concatenating text chunks and
// accumulating usage. A mid-stream ErrorChunk fails the collection;
// context cancellation abandons the stream.
func CollectText(ctx context.Context, ch <-chan Chunk) (string, Usage, error) {
	var (
		text  strings.Builder
		usage Usage
	)
	for {
		select {
		case <-ctx.Done():
			return "", usage, ctx.Err()
		case chunk, ok := <-ch:
			if !ok {
				return text.String(), usage, nil
			}
			switch c := chunk.(type) {
			case *TextChunk:
				text.WriteString(c.Content)
			case *UsageChunk:
				usage.add(c)
			case *ErrorChunk:
				return "", usage, fmt.Errorf("%w: %s (code=%s, retryable=%t)",
					ErrStreamFailed, c.Message, c.Code, c.Retryable)
			}
			// Thinking chunks are collaborator-internal, not collected.
		}
	}
}

// GenerateText is the common call-and-collect path.
func GenerateText(ctx context.Context, client Client, input *GenerateInput) (string, Usage, error) {
	ch, err := client.Generate(ctx, input)
	if err != nil {
		return "", Usage{}, err
	}
	return CollectText(ctx, ch)
}
