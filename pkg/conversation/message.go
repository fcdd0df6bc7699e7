// Package conversation provides the shared message substrate personas
// communicate through: an append-only, kind-discriminated message log
// with filtered views, persona context assembly, and dump/restore.
package conversation

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/maestro-works/maestro/pkg/config"
)

// Kind discriminates message payloads.
type Kind string

const (
	KindPersonaWork Kind = "persona-work"
	KindDiscussion  Kind = "discussion"
	KindSystem      Kind = "system"
	KindAnswer      Kind = "answer"
)

// DiscussionType classifies a discussion entry.
type DiscussionType string

const (
	DiscussionGeneral  DiscussionType = "discussion"
	DiscussionQuestion DiscussionType = "question"
	DiscussionProposal DiscussionType = "proposal"
	DiscussionConcern  DiscussionType = "concern"
)

// Decision is one recorded design decision with its rationale.
type Decision struct {
	Decision     string   `json:"decision"`
	Rationale    string   `json:"rationale,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
	TradeOffs    string   `json:"trade_offs,omitempty"`
}

// Question is raised by one persona for another to answer. IDs are
// assigned on append so answers can link back.
type Question struct {
	ID       string `json:"id,omitempty"`
	For      string `json:"for"`
	Question string `json:"question"`
	Context  string `json:"context,omitempty"`
}

// Dependencies declares what a persona's work consumes and feeds.
type Dependencies struct {
	DependsOn   []string `json:"depends_on,omitempty"`
	ProvidesFor []string `json:"provides_for,omitempty"`
}

// PersonaWork is the structured summary a persona posts after
// completing a work unit.
type PersonaWork struct {
	Summary      string              `json:"summary"`
	Decisions    []Decision          `json:"decisions,omitempty"`
	FilesCreated []string            `json:"files_created,omitempty"`
	Deliverables map[string][]string `json:"deliverables,omitempty"`
	Questions    []Question          `json:"questions,omitempty"`
	Assumptions  []string            `json:"assumptions,omitempty"`
	Concerns     []string            `json:"concerns,omitempty"`
	Dependencies *Dependencies       `json:"dependencies,omitempty"`
}

// Discussion is one free-form group discussion entry.
type Discussion struct {
	Content     string         `json:"content"`
	MessageType DiscussionType `json:"message_type,omitempty"`
	ReplyTo     string         `json:"reply_to,omitempty"`
	Round       int            `json:"round,omitempty"`
	Topic       string         `json:"topic,omitempty"`
}

// SystemNotice is an orchestrator-authored entry (phase transitions,
// gate outcomes, remediation instructions).
type SystemNotice struct {
	Content string `json:"content"`
	Level   string `json:"level,omitempty"`
}

// Answer resolves a previously raised question.
type Answer struct {
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`
	AskedBy    string `json:"asked_by,omitempty"`
}

// Message is one conversation entry. Exactly one payload field matching
// Kind is set. Messages with an unrecognized kind keep their raw
// payload so dumps written by newer builds survive a round-trip.
type Message struct {
	ID        string       `json:"-"`
	Source    string       `json:"-"`
	Phase     config.Phase `json:"-"`
	CreatedAt time.Time    `json:"-"`
	Kind      Kind         `json:"-"`

	PersonaWork *PersonaWork  `json:"-"`
	Discussion  *Discussion   `json:"-"`
	System      *SystemNotice `json:"-"`
	Answer      *Answer       `json:"-"`

	rawPayload json.RawMessage
}

// envelope is the wire form of a Message.
type envelope struct {
	ID        string          `json:"id"`
	Source    string          `json:"source"`
	Phase     config.Phase    `json:"phase,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Kind      Kind            `json:"kind"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// MarshalJSON serializes the message as an envelope with the payload
// variant matching its kind.
func (m Message) MarshalJSON() ([]byte, error) {
	env := envelope{
		ID:        m.ID,
		Source:    m.Source,
		Phase:     m.Phase,
		CreatedAt: m.CreatedAt,
		Kind:      m.Kind,
	}

	var payload any
	switch m.Kind {
	case KindPersonaWork:
		payload = m.PersonaWork
	case KindDiscussion:
		payload = m.Discussion
	case KindSystem:
		payload = m.System
	case KindAnswer:
		payload = m.Answer
	default:
		env.Payload = m.rawPayload
	}

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %w", m.Kind, err)
		}
		env.Payload = data
	}
	return json.Marshal(env)
}

// UnmarshalJSON parses an envelope, decoding the payload into the
// variant matching its kind. Unknown kinds retain the raw payload.
func (m *Message) UnmarshalJSON(data []byte) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	m.ID = env.ID
	m.Source = env.Source
	m.Phase = env.Phase
	m.CreatedAt = env.CreatedAt
	m.Kind = env.Kind

	if len(env.Payload) == 0 {
		return nil
	}

	switch env.Kind {
	case KindPersonaWork:
		m.PersonaWork = &PersonaWork{}
		return json.Unmarshal(env.Payload, m.PersonaWork)
	case KindDiscussion:
		m.Discussion = &Discussion{}
		return json.Unmarshal(env.Payload, m.Discussion)
	case KindSystem:
		m.System = &SystemNotice{}
		return json.Unmarshal(env.Payload, m.System)
	case KindAnswer:
		m.Answer = &Answer{}
		return json.Unmarshal(env.Payload, m.Answer)
	default:
		m.rawPayload = append(json.RawMessage(nil), env.Payload...)
		return nil
	}
}

// validate checks that the payload variant matches the kind.
func (m *Message) validate() error {
	if m.Source == "" {
		return fmt.Errorf("message has no source")
	}
	switch m.Kind {
	case KindPersonaWork:
		if m.PersonaWork == nil {
			return fmt.Errorf("persona-work message missing payload")
		}
	case KindDiscussion:
		if m.Discussion == nil {
			return fmt.Errorf("discussion message missing payload")
		}
	case KindSystem:
		if m.System == nil {
			return fmt.Errorf("system message missing payload")
		}
	case KindAnswer:
		if m.Answer == nil {
			return fmt.Errorf("answer message missing payload")
		}
	case "":
		return fmt.Errorf("message has no kind")
	default:
		if len(m.rawPayload) == 0 {
			return fmt.Errorf("message with unknown kind %q has no payload", m.Kind)
		}
	}
	return nil
}
