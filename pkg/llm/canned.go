package llm

import (
	"context"
	"strings"
	"sync"
)

// CannedRule scripts one CannedClient response. The first rule whose
// Match is a substring of the request's last user message (or equals
// its persona id) wins.
type CannedRule struct {
	Match string
	Reply string

	// Err, when set, is delivered as an ErrorChunk instead of Reply.
	Err *ErrorChunk

	// Workspace, when set, runs before the reply is streamed so a test
	// can simulate the collaborator writing files under WorkspaceRoot.
	Workspace func(root string) error
}

// CannedClient is a deterministic in-process Client for tests and dry
// runs. It never contacts a real model.
type CannedClient struct {
	mu       sync.Mutex
	rules    []CannedRule
	fallback string
	calls    []*GenerateInput
}

// NewCannedClient builds a client with a default reply used when no
// rule matches.
func NewCannedClient(defaultReply string, rules ...CannedRule) *CannedClient {
	return &CannedClient{fallback: defaultReply, rules: rules}
}

// AddRule appends a rule. Later rules lose to earlier ones.
func (c *CannedClient) AddRule(rule CannedRule) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rules = append(c.rules, rule)
}

// Calls returns the inputs seen so far, in order.
func (c *CannedClient) Calls() []*GenerateInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*GenerateInput(nil), c.calls...)
}

// Generate records the call and streams the scripted response.
func (c *CannedClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	c.mu.Lock()
	c.calls = append(c.calls, input)
	rule := c.match(input)
	c.mu.Unlock()

	if rule != nil && rule.Workspace != nil && input.WorkspaceRoot != "" {
		if err := rule.Workspace(input.WorkspaceRoot); err != nil {
			return nil, err
		}
	}

	ch := make(chan Chunk, 4)
	go func() {
		defer close(ch)

		if rule != nil && rule.Err != nil {
			select {
			case ch <- rule.Err:
			case <-ctx.Done():
			}
			return
		}

		reply := c.fallback
		if rule != nil {
			reply = rule.Reply
		}

		select {
		case ch <- &TextChunk{Content: reply}:
		case <-ctx.Done():
			return
		}
		select {
		case ch <- &UsageChunk{InputTokens: approximateTokens(input), OutputTokens: len(strings.Fields(reply)), TotalTokens: 0}:
		case <-ctx.Done():
		}
	}()
	return ch, nil
}

// Close is a no-op.
func (c *CannedClient) Close() error { return nil }

func (c *CannedClient) match(input *GenerateInput) *CannedRule {
	lastUser := ""
	for i := len(input.Messages) - 1; i >= 0; i-- {
		if input.Messages[i].Role == RoleUser {
			lastUser = input.Messages[i].Content
			break
		}
	}
	for i := range c.rules {
		r := &c.rules[i]
		if r.Match == "" {
			continue
		}
		if strings.Contains(lastUser, r.Match) || input.PersonaID == r.Match {
			return r
		}
	}
	return nil
}

func approximateTokens(input *GenerateInput) int {
	n := 0
	for _, m := range input.Messages {
		n += len(strings.Fields(m.Content))
	}
	return n
}
