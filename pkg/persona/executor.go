// Package persona runs one persona work unit end to end: assemble the
// prompt from the persona definition, phase contract, and conversation
// context; stream the LLM collaborator with the workspace mounted;
// diff workspace snapshots to find what was produced; stamp produced
// files into the artifact archive; and extract a structured work
// report back into the conversation.
package persona

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/maestro-works/maestro/pkg/artifacts"
	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/contracts"
	"github.com/maestro-works/maestro/pkg/conversation"
	"github.com/maestro-works/maestro/pkg/llm"
)

// defaultContextWindow is how many trailing conversation messages feed
// the work prompt.
const defaultContextWindow = 20

// ChunkSink receives streamed text deltas from a persona's work call,
// for live progress fan-out. Sinks must not block.
type ChunkSink func(personaID, nodeID, delta string)

// Executor runs persona work units. Work units for the same persona
// serialize; distinct personas run concurrently.
type Executor struct {
	client    llm.Client
	conv      *conversation.Store
	personas  *config.PersonaRegistry
	contracts *contracts.Registry
	templates *Templates

	contextWindow int
	chunkSink     ChunkSink
	logger        *slog.Logger

	mu     sync.Mutex
	inWork map[string]*sync.Mutex
}

// Option configures an Executor.
type Option func(*Executor)

// WithTemplates replaces the builtin prompt templates, typically with
// LoadTemplates(cfg.TemplatesPath).
func WithTemplates(t *Templates) Option {
	return func(e *Executor) {
		if t != nil {
			e.templates = t
		}
	}
}

// WithContextWindow sets how many trailing conversation messages feed
// each work prompt.
func WithContextWindow(n int) Option {
	return func(e *Executor) {
		if n > 0 {
			e.contextWindow = n
		}
	}
}

// WithChunkSink forwards streamed work-call text deltas, e.g. to the
// transient event publisher.
func WithChunkSink(sink ChunkSink) Option {
	return func(e *Executor) { e.chunkSink = sink }
}

// NewExecutor wires a persona executor over the session's conversation
// store and registries.
func NewExecutor(client llm.Client, conv *conversation.Store, personas *config.PersonaRegistry, registry *contracts.Registry, opts ...Option) *Executor {
	e := &Executor{
		client:        client,
		conv:          conv,
		personas:      personas,
		contracts:     registry,
		templates:     DefaultTemplates(),
		contextWindow: defaultContextWindow,
		logger:        slog.With("component", "persona"),
		inWork:        make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Input describes one persona work unit.
type Input struct {
	PersonaID   string
	Requirement string
	Phase       config.Phase

	// OutputDir is the shared workspace root; snapshots and artifact
	// stamping are rooted here.
	OutputDir string

	// IterationID and NodeID identify the work unit in the artifact
	// archive and the event stream.
	IterationID string
	NodeID      string
	ExecutionID string

	// Deliverables narrows the prompt to the named contract
	// deliverables; empty means every required deliverable of the
	// phase. Remediation passes the gaps here.
	Deliverables []string

	// Instructions carries extra guidance appended to the task section
	// (remediation recommendations, discussion outcomes).
	Instructions string
}

func (in *Input) validate() error {
	switch {
	case in.PersonaID == "":
		return fmt.Errorf("%w: persona id", config.ErrMissingRequiredField)
	case strings.TrimSpace(in.Requirement) == "":
		return fmt.Errorf("%w: requirement", config.ErrMissingRequiredField)
	case in.OutputDir == "":
		return fmt.Errorf("%w: output dir", config.ErrMissingRequiredField)
	case in.IterationID == "":
		return fmt.Errorf("%w: iteration id", config.ErrMissingRequiredField)
	case in.NodeID == "":
		return fmt.Errorf("%w: node id", config.ErrMissingRequiredField)
	}
	if !in.Phase.IsValid() {
		return fmt.Errorf("%w: unknown phase %q", config.ErrInvalidValue, string(in.Phase))
	}
	return nil
}

// Result is the execution context returned after a work unit.
type Result struct {
	PersonaID string
	Phase     config.Phase
	NodeID    string

	// Response is the raw streamed work-call text.
	Response string

	// Work is the structured report appended to the conversation;
	// MessageID is its conversation id.
	Work      *conversation.PersonaWork
	MessageID string

	// FilesProduced are workspace-relative paths added or modified by
	// the work unit, measured by snapshot diff. Artifacts are their
	// stamped archive records, in the same order.
	FilesProduced []string
	Artifacts     []*artifacts.Stamped

	// ExtractionFallback reports that the structured extraction failed
	// and Work was synthesized from the file list.
	ExtractionFallback bool

	Usage     llm.Usage
	StartedAt time.Time
	Duration  time.Duration
}

// ArtifactIDs returns the stamped artifact ids, for the node execution
// record.
func (r *Result) ArtifactIDs() []string {
	ids := make([]string, len(r.Artifacts))
	for i, a := range r.Artifacts {
		ids[i] = a.ArtifactID
	}
	return ids
}

// Run executes one work unit: snapshot, prompt, generate, diff, stamp,
// extract, append. The same persona never runs two work units
// concurrently; a second Run for a busy persona waits.
func (e *Executor) Run(ctx context.Context, in Input) (*Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	persona, err := e.personas.Get(in.PersonaID)
	if err != nil {
		return nil, err
	}

	lock := e.personaLock(in.PersonaID)
	lock.Lock()
	defer lock.Unlock()

	started := time.Now().UTC()
	logger := e.logger.With("persona_id", in.PersonaID, "phase", in.Phase.String(), "node_id", in.NodeID)
	logger.Info("Starting persona work unit", "iteration_id", in.IterationID)

	pre, err := artifacts.TakeSnapshot(in.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("pre-work snapshot failed: %w", err)
	}

	// The phase may have no registered contract; the prompt then skips
	// deliverable guidance and the gate validator owns the consequences.
	contract, err := e.contracts.Latest(in.Phase)
	if err != nil {
		contract = nil
	}

	userPrompt, err := e.buildWorkPrompt(in, contract)
	if err != nil {
		return nil, err
	}

	workOpts := &llm.Options{}
	if persona.LLMProvider != "" {
		workOpts.Model = persona.LLMProvider
	}
	response, usage, err := e.generate(ctx, &llm.GenerateInput{
		ExecutionID:   in.ExecutionID,
		NodeID:        in.NodeID,
		PersonaID:     in.PersonaID,
		WorkspaceRoot: in.OutputDir,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: persona.SystemPrompt + "\n\n" + formatIdentitySection(persona)},
			{Role: llm.RoleUser, Content: userPrompt},
		},
		Options: workOpts,
	}, e.chunkSink)
	if err != nil {
		return nil, fmt.Errorf("persona %s work call failed: %w", in.PersonaID, err)
	}

	post, err := artifacts.TakeSnapshot(in.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("post-work snapshot failed: %w", err)
	}
	produced := pre.Diff(post).Produced()
	if len(produced) == 0 {
		logger.Warn("Persona work unit produced no files")
	}

	stamped, err := e.stampProduced(in, contract, produced)
	if err != nil {
		return nil, err
	}

	work, fellBack := e.extractWork(ctx, in, response, produced)
	work.FilesCreated = produced
	work.Deliverables = attributeDeliverables(contract, produced)

	msgID, err := e.conv.Append(conversation.Message{
		Source:      in.PersonaID,
		Phase:       in.Phase,
		Kind:        conversation.KindPersonaWork,
		PersonaWork: work,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record persona work: %w", err)
	}

	result := &Result{
		PersonaID:          in.PersonaID,
		Phase:              in.Phase,
		NodeID:             in.NodeID,
		Response:           response,
		Work:               work,
		MessageID:          msgID,
		FilesProduced:      produced,
		Artifacts:          stamped,
		ExtractionFallback: fellBack,
		Usage:              usage,
		StartedAt:          started,
		Duration:           time.Since(started),
	}

	logger.Info("Persona work unit finished",
		"files", len(produced),
		"questions", len(work.Questions),
		"extraction_fallback", fellBack,
		"duration", result.Duration)
	return result, nil
}

// personaLock returns the per-persona serialization mutex.
func (e *Executor) personaLock(personaID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.inWork[personaID]
	if !ok {
		lock = &sync.Mutex{}
		e.inWork[personaID] = lock
	}
	return lock
}

func (e *Executor) buildWorkPrompt(in Input, contract *contracts.Contract) (string, error) {
	task := formatTaskSection(in.Phase, e.templates.instructionsFor(in.Phase), contract, in.Deliverables, in.Instructions)
	return e.templates.renderWork(workPromptData{
		Requirement:  formatRequirementSection(in.Requirement),
		Deliverables: formatDeliverablesSection(contract, in.Deliverables),
		Context:      strings.TrimRight(e.conv.ContextFor(in.PersonaID, e.contextWindow), "\n"),
		Task:         task,
		Phase:        in.Phase.String(),
	})
}

// generate streams one call, concatenating text chunks and forwarding
// deltas to the sink. A mid-stream error chunk fails the call.
func (e *Executor) generate(ctx context.Context, input *llm.GenerateInput, sink ChunkSink) (string, llm.Usage, error) {
	ch, err := e.client.Generate(ctx, input)
	if err != nil {
		return "", llm.Usage{}, err
	}

	var (
		text  strings.Builder
		usage llm.Usage
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
			case *llm.TextChunk:
				text.WriteString(c.Content)
				if sink != nil {
					sink(input.PersonaID, input.NodeID, c.Content)
				}
			case *llm.UsageChunk:
				usage.InputTokens += c.InputTokens
				usage.OutputTokens += c.OutputTokens
				usage.TotalTokens += c.TotalTokens
			case *llm.ErrorChunk:
				return "", usage, fmt.Errorf("%w: %s (code=%s, retryable=%t)",
					llm.ErrStreamFailed, c.Message, c.Code, c.Retryable)
			}
		}
	}
}

// stampProduced archives every produced file under
// artifacts/{iteration}/{node}/ with its provenance sidecar.
func (e *Executor) stampProduced(in Input, contract *contracts.Contract, produced []string) ([]*artifacts.Stamped, error) {
	stamped := make([]*artifacts.Stamped, 0, len(produced))
	for _, rel := range produced {
		s, err := artifacts.Stamp(in.OutputDir, rel, artifacts.StampMeta{
			IterationID: in.IterationID,
			NodeID:      in.NodeID,
			PersonaID:   in.PersonaID,
			Phase:       in.Phase.String(),
			Deliverable: deliverableFor(contract, rel),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to stamp %s: %w", rel, err)
		}
		stamped = append(stamped, s)
	}
	return stamped, nil
}

// extractWork runs the structured-extraction call. Any failure (call,
// missing JSON, unparseable JSON, empty summary) degrades to a minimal
// report synthesized from the file list; work units never fail on
// extraction.
func (e *Executor) extractWork(ctx context.Context, in Input, response string, produced []string) (*conversation.PersonaWork, bool) {
	files := "none"
	if len(produced) > 0 {
		files = strings.Join(produced, ", ")
	}
	prompt, err := e.templates.renderExtraction(extractionPromptData{Response: response, Files: files})
	if err != nil {
		e.logger.Warn("Extraction prompt render failed, synthesizing work report", "persona_id", in.PersonaID, "error", err)
		return fallbackWork(in, produced), true
	}

	text, _, err := llm.GenerateText(ctx, e.client, &llm.GenerateInput{
		ExecutionID: in.ExecutionID,
		NodeID:      in.NodeID,
		PersonaID:   in.PersonaID,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Options:     &llm.Options{JSONOnly: true, Temperature: 0},
	})
	if err != nil {
		e.logger.Warn("Extraction call failed, synthesizing work report", "persona_id", in.PersonaID, "error", err)
		return fallbackWork(in, produced), true
	}

	block, ok := llm.ExtractJSONBlock(text)
	if !ok {
		e.logger.Warn("Extraction returned no JSON, synthesizing work report", "persona_id", in.PersonaID)
		return fallbackWork(in, produced), true
	}
	var work conversation.PersonaWork
	if err := json.Unmarshal([]byte(block), &work); err != nil || strings.TrimSpace(work.Summary) == "" {
		e.logger.Warn("Extraction JSON unusable, synthesizing work report", "persona_id", in.PersonaID, "error", err)
		return fallbackWork(in, produced), true
	}
	return &work, false
}

// fallbackWork is the minimal report used when extraction fails.
func fallbackWork(in Input, produced []string) *conversation.PersonaWork {
	summary := fmt.Sprintf("%s completed %s-phase work: %d file(s) changed", in.PersonaID, in.Phase, len(produced))
	if len(produced) == 0 {
		summary = fmt.Sprintf("%s completed %s-phase work without file changes", in.PersonaID, in.Phase)
	}
	return &conversation.PersonaWork{Summary: summary}
}

// deliverableFor attributes one produced file to the first matching
// contract deliverable. Validation re-attributes exhaustively; this is
// provenance only.
func deliverableFor(contract *contracts.Contract, rel string) string {
	if contract == nil {
		return ""
	}
	for _, d := range contract.Deliverables {
		if d.Match(rel) {
			return d.Name
		}
	}
	return ""
}

// attributeDeliverables maps contract deliverable names to the produced
// files that satisfy them, first match per file.
func attributeDeliverables(contract *contracts.Contract, produced []string) map[string][]string {
	if contract == nil || len(produced) == 0 {
		return nil
	}
	attributed := make(map[string][]string)
	for _, rel := range produced {
		if name := deliverableFor(contract, rel); name != "" {
			attributed[name] = append(attributed[name], rel)
		}
	}
	if len(attributed) == 0 {
		return nil
	}
	return attributed
}
