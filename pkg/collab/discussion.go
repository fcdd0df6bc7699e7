// Package collab runs multi-persona group discussions: round-based
// exchanges over the shared conversation, LLM-judged consensus checks,
// and synthesis of the outcome into decisions the phase can proceed on.
// It also resolves pending cross-persona questions between work units.
package collab

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/conversation"
	"github.com/maestro-works/maestro/pkg/llm"
)

// Options tune discussion behavior. Zero values fall back to the
// configured defaults.
type Options struct {
	MaxRounds          int
	ConsensusThreshold float64
	ContextWindow      int
}

// Orchestrator drives group discussions for one workflow session.
type Orchestrator struct {
	client   llm.Client
	conv     *conversation.Store
	personas *config.PersonaRegistry
	opts     Options
	logger   *slog.Logger
}

// NewOrchestrator wires a discussion orchestrator over the session's
// conversation store.
func NewOrchestrator(client llm.Client, conv *conversation.Store, personas *config.PersonaRegistry, defaults *config.Defaults) *Orchestrator {
	var opts Options
	if defaults != nil {
		opts = Options{
			MaxRounds:          defaults.MaxDiscussionRounds,
			ConsensusThreshold: defaults.ConsensusThreshold,
			ContextWindow:      defaults.DiscussionContextWindow,
		}
	}
	if opts.MaxRounds <= 0 {
		opts.MaxRounds = 3
	}
	if opts.ConsensusThreshold <= 0 {
		opts.ConsensusThreshold = 0.7
	}
	if opts.ContextWindow <= 0 {
		opts.ContextWindow = 20
	}
	return &Orchestrator{
		client:   client,
		conv:     conv,
		personas: personas,
		opts:     opts,
		logger:   slog.With("component", "collab"),
	}
}

// Synthesis is the distilled outcome of a discussion.
type Synthesis struct {
	Summary       string   `json:"summary"`
	Decisions     []string `json:"decisions,omitempty"`
	ActionItems   []string `json:"action_items,omitempty"`
	OpenQuestions []string `json:"open_questions,omitempty"`
}

// DiscussionResult reports how a discussion ended.
type DiscussionResult struct {
	Topic            string
	Rounds           int
	MessagesPosted   int
	ConsensusReached bool
	Confidence       float64
	Synthesis        *Synthesis
}

// RunDiscussion opens the topic with a system notice, then runs up to
// MaxRounds rounds among the given personas. After each round the
// consensus check decides whether to stop early; either way the
// discussion ends with a synthesis posted to the conversation. A
// discussion needs at least two participants.
func (o *Orchestrator) RunDiscussion(ctx context.Context, topic string, phase config.Phase, participantIDs []string) (*DiscussionResult, error) {
	if len(participantIDs) < 2 {
		return nil, fmt.Errorf("discussion needs at least two participants, got %d", len(participantIDs))
	}

	ctx, cancel := context.WithTimeout(ctx, discussionDeadline)
	defer cancel()

	result := &DiscussionResult{Topic: topic}
	logger := o.logger.With("topic", topic, "phase", phase.String())
	logger.Info("Starting group discussion",
		"participants", participantIDs,
		"max_rounds", o.opts.MaxRounds)

	_, err := o.conv.Append(conversation.Message{
		Source: "orchestrator",
		Phase:  phase,
		Kind:   conversation.KindSystem,
		System: &conversation.SystemNotice{
			Content: fmt.Sprintf("discussion %q opened with %s",
				topic, strings.Join(participantIDs, ", ")),
			Level: "info",
		},
	})
	if err != nil {
		return nil, err
	}

	for round := 1; round <= o.opts.MaxRounds; round++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Rounds = round

		for _, personaID := range participantIDs {
			text, err := o.personaTurn(ctx, topic, phase, personaID, round)
			if err != nil {
				return result, fmt.Errorf("discussion turn failed for %s: %w", personaID, err)
			}
			if strings.TrimSpace(text) == "" {
				continue
			}
			_, err = o.conv.Append(conversation.Message{
				Source: personaID,
				Phase:  phase,
				Kind:   conversation.KindDiscussion,
				Discussion: &conversation.Discussion{
					Content:     text,
					MessageType: classify(text),
					Round:       round,
					Topic:       topic,
				},
			})
			if err != nil {
				return result, err
			}
			result.MessagesPosted++
		}

		reached, confidence := o.consensusCheck(ctx, topic)
		logger.Debug("Consensus check",
			"round", round,
			"reached", reached,
			"confidence", confidence)
		if reached && confidence >= o.opts.ConsensusThreshold {
			result.ConsensusReached = true
			result.Confidence = confidence
			break
		}
		result.Confidence = confidence
	}

	synthesis, err := o.synthesize(ctx, topic)
	if err != nil {
		return result, err
	}
	result.Synthesis = synthesis

	_, err = o.conv.Append(conversation.Message{
		Source: "orchestrator",
		Phase:  phase,
		Kind:   conversation.KindSystem,
		System: &conversation.SystemNotice{
			Content: fmt.Sprintf("discussion %q concluded after %d round(s) (consensus=%t): %s",
				topic, result.Rounds, result.ConsensusReached, synthesis.Summary),
			Level: "info",
		},
	})
	if err != nil {
		return result, err
	}

	logger.Info("Discussion concluded",
		"rounds", result.Rounds,
		"consensus", result.ConsensusReached,
		"messages", result.MessagesPosted)
	return result, nil
}

func (o *Orchestrator) personaTurn(ctx context.Context, topic string, phase config.Phase, personaID string, round int) (string, error) {
	persona, err := o.personas.Get(personaID)
	if err != nil {
		return "", err
	}

	recent := o.conv.Filter(conversation.Query{Limit: o.opts.ContextWindow})
	var b strings.Builder
	fmt.Fprintf(&b, "Group discussion on: %s (round %d, %s phase)\n\n", topic, round, phase)
	if len(recent) > 0 {
		b.WriteString("Discussion so far:\n")
		for _, m := range recent {
			if m.Kind == conversation.KindDiscussion && m.Discussion.Topic == topic {
				fmt.Fprintf(&b, "- %s: %s\n", m.Source, m.Discussion.Content)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("Give your position in a few sentences. Raise concerns or proposals explicitly; say \"I agree\" only if you genuinely have nothing to add.")

	text, _, err := llm.GenerateText(ctx, o.client, &llm.GenerateInput{
		PersonaID: personaID,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: persona.SystemPrompt},
			{Role: llm.RoleUser, Content: b.String()},
		},
	})
	return text, err
}

// classify derives the discussion message type from its content. Cheap
// heuristic, only used for display and stats.
func classify(text string) conversation.DiscussionType {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "propose") || strings.Contains(lower, "suggest we"):
		return conversation.DiscussionProposal
	case strings.Contains(lower, "concern") || strings.Contains(lower, "worried") || strings.Contains(lower, "risk"):
		return conversation.DiscussionConcern
	case strings.HasSuffix(strings.TrimSpace(text), "?"):
		return conversation.DiscussionQuestion
	default:
		return conversation.DiscussionGeneral
	}
}

type consensusVerdict struct {
	Reached     bool     `json:"reached"`
	Confidence  float64  `json:"confidence"`
	Rationale   string   `json:"rationale"`
	Outstanding []string `json:"outstanding,omitempty"`
}

// consensusCheck asks the model whether the discussion has converged.
// Fail-open: any call or parse failure reads as "not reached", which
// just means another round (or synthesis after the last one).
func (o *Orchestrator) consensusCheck(ctx context.Context, topic string) (bool, float64) {
	transcript := o.renderTopic(topic)
	if transcript == "" {
		return false, 0
	}

	prompt := fmt.Sprintf(`Assess whether this team discussion has reached consensus.

%s

Respond with a single JSON object:
{"reached": bool, "confidence": 0.0-1.0, "rationale": "...", "outstanding": ["unresolved point", ...]}`, transcript)

	text, _, err := llm.GenerateText(ctx, o.client, &llm.GenerateInput{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Options:  &llm.Options{JSONOnly: true, Temperature: 0},
	})
	if err != nil {
		o.logger.Warn("Consensus check call failed, assuming no consensus", "topic", topic, "error", err)
		return false, 0
	}

	block, ok := llm.ExtractJSONBlock(text)
	if !ok {
		o.logger.Warn("Consensus check returned no JSON, assuming no consensus", "topic", topic)
		return false, 0
	}
	var verdict consensusVerdict
	if err := json.Unmarshal([]byte(block), &verdict); err != nil {
		o.logger.Warn("Consensus check JSON unparseable, assuming no consensus", "topic", topic, "error", err)
		return false, 0
	}
	return verdict.Reached, verdict.Confidence
}

// synthesize distills the discussion into decisions. Parse failures
// degrade to a summary-only synthesis built from the raw response.
func (o *Orchestrator) synthesize(ctx context.Context, topic string) (*Synthesis, error) {
	transcript := o.renderTopic(topic)

	prompt := fmt.Sprintf(`Synthesize this team discussion into its outcome.

%s

Respond with a single JSON object:
{"summary": "...", "decisions": ["..."], "action_items": ["..."], "open_questions": ["..."]}`, transcript)

	text, _, err := llm.GenerateText(ctx, o.client, &llm.GenerateInput{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Options:  &llm.Options{JSONOnly: true, Temperature: 0},
	})
	if err != nil {
		return nil, fmt.Errorf("synthesis call failed: %w", err)
	}

	if block, ok := llm.ExtractJSONBlock(text); ok {
		var s Synthesis
		if err := json.Unmarshal([]byte(block), &s); err == nil && s.Summary != "" {
			return &s, nil
		}
	}
	o.logger.Warn("Synthesis response not structured, keeping raw summary", "topic", topic)
	return &Synthesis{Summary: strings.TrimSpace(text)}, nil
}

func (o *Orchestrator) renderTopic(topic string) string {
	msgs := o.conv.Filter(conversation.Query{Kind: conversation.KindDiscussion})
	var b strings.Builder
	for _, m := range msgs {
		if m.Discussion.Topic != topic {
			continue
		}
		fmt.Fprintf(&b, "%s (round %d): %s\n", m.Source, m.Discussion.Round, m.Discussion.Content)
	}
	return b.String()
}

// discussionDeadline guards a whole discussion; individual calls also
// honor the caller's context.
const discussionDeadline = 10 * time.Minute
