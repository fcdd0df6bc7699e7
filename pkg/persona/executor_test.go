package persona

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/contracts"
	"github.com/maestro-works/maestro/pkg/conversation"
	"github.com/maestro-works/maestro/pkg/llm"
)

func testPersonas() *config.PersonaRegistry {
	return config.NewPersonaRegistry(map[string]*config.PersonaConfig{
		"solution_architect": {
			Role:         "Solution Architect",
			Expertise:    []string{"distributed systems", "API design"},
			Capabilities: []string{"architecture"},
			SystemPrompt: "You are the solution architect of the team.",
			Phases:       []config.Phase{config.PhaseDesign},
		},
		"backend_developer": {
			Role:         "Backend Developer",
			Capabilities: []string{"backend"},
			SystemPrompt: "You are the backend developer.",
		},
	})
}

func testContracts(t *testing.T) *contracts.Registry {
	t.Helper()
	reg := contracts.NewRegistry()
	_, err := reg.Register(contracts.Contract{
		Phase: config.PhaseDesign,
		Deliverables: []contracts.Deliverable{
			{Name: "architecture", Patterns: []string{"**/architecture*.md"}, MinQuality: 0.6},
			{Name: "api_design", Patterns: []string{"**/api*.md"}, MinQuality: 0.6, Optional: true},
		},
		Owners: []string{"solution_architect"},
	})
	require.NoError(t, err)
	return reg
}

func designInput(dir string) Input {
	return Input{
		PersonaID:   "solution_architect",
		Requirement: "Build a payment API with invoice tracking.",
		Phase:       config.PhaseDesign,
		OutputDir:   dir,
		IterationID: "iter-1",
		NodeID:      "design-architecture",
		ExecutionID: "exec-1",
	}
}

const extractionJSON = "```json\n" + `{"summary": "Designed the payment service architecture.", "decisions": [{"decision": "PostgreSQL for the ledger", "rationale": "ACID guarantees"}], "questions": [{"for": "backend_developer", "question": "Can the ledger schema assume UUID keys?", "context": "docs/architecture.md"}], "assumptions": ["single region"], "concerns": ["webhook retry policy undefined"]}` + "\n```"

func TestRunFullWorkUnit(t *testing.T) {
	dir := t.TempDir()
	client := llm.NewCannedClient("unused default",
		llm.CannedRule{Match: "=== RESPONSE START ===", Reply: extractionJSON},
		llm.CannedRule{
			Match: "payment API",
			Reply: "I split the service into a ledger core and a webhook gateway.",
			Workspace: func(root string) error {
				if err := os.MkdirAll(filepath.Join(root, "docs"), 0o755); err != nil {
					return err
				}
				if err := os.WriteFile(filepath.Join(root, "docs", "architecture.md"), []byte("# Architecture\n\nLedger core and webhook gateway with an outbox in between.\n"), 0o644); err != nil {
					return err
				}
				return os.WriteFile(filepath.Join(root, "notes.txt"), []byte("scratch"), 0o644)
			},
		},
	)
	conv := conversation.NewStore("sess-1")
	_, err := conv.Append(conversation.Message{
		Source: "product_manager",
		Phase:  config.PhaseRequirements,
		Kind:   conversation.KindPersonaWork,
		PersonaWork: &conversation.PersonaWork{
			Summary:   "scoped the payment requirement",
			Questions: []conversation.Question{{For: "solution_architect", Question: "Must invoices be immutable?"}},
		},
	})
	require.NoError(t, err)

	exec := NewExecutor(client, conv, testPersonas(), testContracts(t))
	result, err := exec.Run(context.Background(), designInput(dir))
	require.NoError(t, err)

	// Prompt assembly: identity in the system message; requirement,
	// deliverables, conversation context, and the task block in the user
	// message.
	calls := client.Calls()
	require.Len(t, calls, 2)
	workCall := calls[0]
	assert.Equal(t, dir, workCall.WorkspaceRoot)
	assert.Equal(t, "solution_architect", workCall.PersonaID)
	system := workCall.Messages[0]
	assert.Equal(t, llm.RoleSystem, system.Role)
	assert.Contains(t, system.Content, "You are the solution architect of the team.")
	assert.Contains(t, system.Content, "You are acting as: Solution Architect")
	assert.Contains(t, system.Content, "distributed systems")
	user := workCall.Messages[1].Content
	assert.Contains(t, user, "## Requirement")
	assert.Contains(t, user, "Build a payment API with invoice tracking.")
	assert.Contains(t, user, "## Expected deliverables")
	assert.Contains(t, user, "- architecture (file patterns: **/architecture*.md)")
	assert.NotContains(t, user, "api_design", "optional deliverables stay out of the default prompt")
	assert.Contains(t, user, "## Recent team activity")
	assert.Contains(t, user, "Questions waiting on you")
	assert.Contains(t, user, "Must invoices be immutable?")
	assert.Contains(t, user, "## Your task (design phase)")
	assert.Contains(t, user, "Write these deliverables into the workspace now: architecture.")

	// Extraction call: JSON-only, no workspace tools.
	extractCall := calls[1]
	require.NotNil(t, extractCall.Options)
	assert.True(t, extractCall.Options.JSONOnly)
	assert.Empty(t, extractCall.WorkspaceRoot)

	// Snapshot diff is the authority on produced files.
	assert.Equal(t, []string{"docs/architecture.md", "notes.txt"}, result.FilesProduced)
	assert.False(t, result.ExtractionFallback)

	// Stamped artifacts land in the iteration archive with sidecars.
	require.Len(t, result.Artifacts, 2)
	archAsset := result.Artifacts[0]
	assert.Equal(t, "docs/architecture.md", archAsset.SourcePath)
	assert.Equal(t, "architecture", archAsset.Deliverable)
	assert.NotEmpty(t, archAsset.SHA256)
	archived := filepath.Join(dir, "artifacts", "iter-1", "design-architecture", "architecture.md")
	assert.FileExists(t, archived)
	assert.FileExists(t, archived+".meta.json")
	assert.Empty(t, result.Artifacts[1].Deliverable, "scratch file matches no deliverable")
	assert.Len(t, result.ArtifactIDs(), 2)

	// The structured report reaches the conversation with measured file
	// attribution and an assigned question id.
	require.NotNil(t, result.Work)
	assert.Equal(t, "Designed the payment service architecture.", result.Work.Summary)
	assert.Equal(t, []string{"docs/architecture.md", "notes.txt"}, result.Work.FilesCreated)
	assert.Equal(t, map[string][]string{"architecture": {"docs/architecture.md"}}, result.Work.Deliverables)
	require.Len(t, result.Work.Questions, 1)
	assert.Equal(t, "backend_developer", result.Work.Questions[0].For)
	assert.NotEmpty(t, result.Work.Questions[0].ID, "append assigns question ids")

	posted := conv.Filter(conversation.Query{Source: "solution_architect", Kind: conversation.KindPersonaWork})
	require.Len(t, posted, 1)
	assert.Equal(t, result.MessageID, posted[0].ID)
	assert.Equal(t, config.PhaseDesign, posted[0].Phase)

	assert.Positive(t, result.Usage.InputTokens)
	assert.False(t, result.StartedAt.IsZero())
	assert.Greater(t, result.Duration, time.Duration(0))
}

func TestRunExtractionFallback(t *testing.T) {
	dir := t.TempDir()
	client := llm.NewCannedClient("unused default",
		llm.CannedRule{Match: "=== RESPONSE START ===", Reply: "Sorry, I cannot produce JSON right now."},
		llm.CannedRule{
			Match: "payment API",
			Reply: "done",
			Workspace: func(root string) error {
				return os.WriteFile(filepath.Join(root, "architecture.md"), []byte("# Arch\n"), 0o644)
			},
		},
	)
	conv := conversation.NewStore("sess-1")
	exec := NewExecutor(client, conv, testPersonas(), testContracts(t))

	result, err := exec.Run(context.Background(), designInput(dir))
	require.NoError(t, err, "extraction failures degrade, they do not fail the work unit")

	assert.True(t, result.ExtractionFallback)
	require.NotNil(t, result.Work)
	assert.Contains(t, result.Work.Summary, "solution_architect")
	assert.Contains(t, result.Work.Summary, "1 file(s) changed")
	assert.Equal(t, []string{"architecture.md"}, result.Work.FilesCreated)
	assert.Empty(t, result.Work.Questions)

	posted := conv.Filter(conversation.Query{Kind: conversation.KindPersonaWork})
	require.Len(t, posted, 1)
}

func TestRunStreamErrorFails(t *testing.T) {
	dir := t.TempDir()
	client := llm.NewCannedClient("unused default",
		llm.CannedRule{Match: "payment API", Err: &llm.ErrorChunk{Message: "model unavailable", Code: "overloaded", Retryable: true}},
	)
	conv := conversation.NewStore("sess-1")
	exec := NewExecutor(client, conv, testPersonas(), testContracts(t))

	_, err := exec.Run(context.Background(), designInput(dir))
	require.ErrorIs(t, err, llm.ErrStreamFailed)

	assert.Zero(t, conv.Len(), "a failed work unit posts nothing")
	assert.NoDirExists(t, filepath.Join(dir, "artifacts"))
}

func TestRunValidatesInput(t *testing.T) {
	dir := t.TempDir()
	exec := NewExecutor(llm.NewCannedClient("x"), conversation.NewStore("s"), testPersonas(), testContracts(t))

	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr error
	}{
		{"missing persona id", func(in *Input) { in.PersonaID = "" }, config.ErrMissingRequiredField},
		{"missing requirement", func(in *Input) { in.Requirement = "  " }, config.ErrMissingRequiredField},
		{"missing output dir", func(in *Input) { in.OutputDir = "" }, config.ErrMissingRequiredField},
		{"missing iteration id", func(in *Input) { in.IterationID = "" }, config.ErrMissingRequiredField},
		{"missing node id", func(in *Input) { in.NodeID = "" }, config.ErrMissingRequiredField},
		{"invalid phase", func(in *Input) { in.Phase = "verification" }, config.ErrInvalidValue},
		{"unknown persona", func(in *Input) { in.PersonaID = "ghost" }, config.ErrPersonaNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := designInput(dir)
			tt.mutate(&in)
			_, err := exec.Run(context.Background(), in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunWithoutContract(t *testing.T) {
	dir := t.TempDir()
	client := llm.NewCannedClient("unused default",
		llm.CannedRule{Match: "=== RESPONSE START ===", Reply: `{"summary": "wrote the notes"}`},
		llm.CannedRule{
			Match: "payment API",
			Reply: "noted",
			Workspace: func(root string) error {
				return os.WriteFile(filepath.Join(root, "notes.md"), []byte("notes\n"), 0o644)
			},
		},
	)
	conv := conversation.NewStore("sess-1")
	exec := NewExecutor(client, conv, testPersonas(), contracts.NewRegistry())

	result, err := exec.Run(context.Background(), designInput(dir))
	require.NoError(t, err)

	user := client.Calls()[0].Messages[1].Content
	assert.NotContains(t, user, "## Expected deliverables")
	assert.NotContains(t, user, "Write these deliverables")

	assert.Nil(t, result.Work.Deliverables)
	require.Len(t, result.Artifacts, 1)
	assert.Empty(t, result.Artifacts[0].Deliverable)
}

func TestRunStreamsToChunkSink(t *testing.T) {
	dir := t.TempDir()
	client := llm.NewCannedClient("unused default",
		llm.CannedRule{Match: "=== RESPONSE START ===", Reply: `{"summary": "ok"}`},
		llm.CannedRule{Match: "payment API", Reply: "streamed work text"},
	)
	conv := conversation.NewStore("sess-1")

	var deltas []string
	sink := func(personaID, nodeID, delta string) {
		assert.Equal(t, "solution_architect", personaID)
		assert.Equal(t, "design-architecture", nodeID)
		deltas = append(deltas, delta)
	}
	exec := NewExecutor(client, conv, testPersonas(), testContracts(t), WithChunkSink(sink))

	_, err := exec.Run(context.Background(), designInput(dir))
	require.NoError(t, err)

	require.NotEmpty(t, deltas)
	var streamed string
	for _, d := range deltas {
		streamed += d
	}
	assert.Equal(t, "streamed work text", streamed, "only the work call streams to the sink")
}

// Two work units for the same persona must serialize; the second waits
// for the first to finish before its first collaborator call.
func TestRunSamePersonaSerializes(t *testing.T) {
	dir := t.TempDir()
	firstEntered := make(chan struct{})
	release := make(chan struct{})
	var workCalls atomic.Int32

	client := llm.NewCannedClient("no json here",
		llm.CannedRule{
			Match: "payment API",
			Reply: "worked",
			Workspace: func(root string) error {
				n := workCalls.Add(1)
				if n == 1 {
					close(firstEntered)
					<-release
				}
				return os.WriteFile(filepath.Join(root, fmt.Sprintf("note-%d.md", n)), []byte("content\n"), 0o644)
			},
		},
	)
	conv := conversation.NewStore("sess-1")
	exec := NewExecutor(client, conv, testPersonas(), testContracts(t))

	firstDone := make(chan error, 1)
	go func() {
		in := designInput(dir)
		in.NodeID = "design-a"
		_, err := exec.Run(context.Background(), in)
		firstDone <- err
	}()
	<-firstEntered

	secondDone := make(chan error, 1)
	go func() {
		in := designInput(dir)
		in.NodeID = "design-b"
		_, err := exec.Run(context.Background(), in)
		secondDone <- err
	}()

	select {
	case err := <-secondDone:
		t.Fatalf("second work unit finished while the first held the persona: %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-firstDone)
	require.NoError(t, <-secondDone)

	assert.Equal(t, int32(2), workCalls.Load())
	posted := conv.Filter(conversation.Query{Kind: conversation.KindPersonaWork})
	assert.Len(t, posted, 2)
}
