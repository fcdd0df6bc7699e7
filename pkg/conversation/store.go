package conversation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-works/maestro/pkg/config"
)

// Store is the append-only conversation log for one workflow session.
// Appends are serialized; reads work on snapshots so a filter result is
// stable even while personas keep posting. An optional on-disk mirror
// records every append as one synced JSONL line, so a crash mid-run
// leaves the full conversation recoverable.
type Store struct {
	mu        sync.Mutex
	sessionID string
	messages  []Message

	mirror     *os.File
	mirrorPath string

	logger *slog.Logger
}

// NewStore creates an empty conversation for the given session.
func NewStore(sessionID string) *Store {
	return &Store{sessionID: sessionID, logger: slog.With("component", "conversation")}
}

// SessionID returns the owning session id.
func (s *Store) SessionID() string {
	return s.sessionID
}

// Append validates and stores a message, assigning its id and timestamp
// (and ids to any raised questions) when absent. Returns the message id.
func (s *Store) Append(msg Message) (string, error) {
	if err := msg.validate(); err != nil {
		return "", fmt.Errorf("invalid message: %w", err)
	}
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	if msg.PersonaWork != nil {
		for i := range msg.PersonaWork.Questions {
			if msg.PersonaWork.Questions[i].ID == "" {
				msg.PersonaWork.Questions[i].ID = uuid.New().String()
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	if s.mirror != nil {
		if err := appendMirrorLine(s.mirror, msg); err != nil {
			// The in-memory log stays authoritative. A mirror that can
			// no longer take writes is detached rather than failing
			// persona work mid-phase.
			s.logger.Warn("Conversation mirror write failed, detaching",
				"path", s.mirrorPath, "error", err)
			_ = s.mirror.Close()
			s.mirror = nil
		}
	}
	return msg.ID, nil
}

// OpenMirror attaches an on-disk JSONL mirror at path, creating parent
// directories as needed. Messages already in the log are written out
// first; every subsequent Append then adds one JSON line and syncs it
// before returning, the same posture the audit trail uses. A crash
// loses at most the message being written.
func (s *Store) OpenMirror(path string) error {
	if path == "" {
		return fmt.Errorf("mirror path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create mirror directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open conversation mirror: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mirror != nil {
		_ = f.Close()
		return fmt.Errorf("conversation mirror already open at %s", s.mirrorPath)
	}
	for _, m := range s.messages {
		if err := appendMirrorLine(f, m); err != nil {
			_ = f.Close()
			return err
		}
	}
	s.mirror = f
	s.mirrorPath = path
	return nil
}

// CloseMirror flushes and detaches the mirror, if one is open. The
// in-memory log keeps working without it.
func (s *Store) CloseMirror() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mirror == nil {
		return nil
	}
	err := s.mirror.Close()
	s.mirror = nil
	return err
}

// MirrorPath returns the location of the open mirror, or "" when no
// mirror is attached.
func (s *Store) MirrorPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mirrorPath
}

func appendMirrorLine(f *os.File, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal mirror line: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append to conversation mirror: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync conversation mirror: %w", err)
	}
	return nil
}

// LoadMirror restores a conversation from the JSONL mirror written by
// OpenMirror. The mirror holds messages only; the caller supplies the
// session id.
func LoadMirror(sessionID, path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read conversation mirror: %w", err)
	}
	s := &Store{sessionID: sessionID, logger: slog.With("component", "conversation")}
	for i, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var msg Message
		if err := json.Unmarshal(line, &msg); err != nil {
			return nil, fmt.Errorf("conversation mirror line %d unparseable: %w", i+1, err)
		}
		s.messages = append(s.messages, msg)
	}
	return s, nil
}

// Query narrows a Filter call. Zero fields match everything; Limit
// keeps the most recent N matches.
type Query struct {
	Source string
	Phase  config.Phase
	Kind   Kind
	Since  time.Time
	Limit  int
}

// Filter returns matching messages in append order.
func (s *Store) Filter(q Query) []Message {
	s.mu.Lock()
	snapshot := make([]Message, len(s.messages))
	copy(snapshot, s.messages)
	s.mu.Unlock()

	var matched []Message
	for _, m := range snapshot {
		if q.Source != "" && m.Source != q.Source {
			continue
		}
		if q.Phase != "" && m.Phase != q.Phase {
			continue
		}
		if q.Kind != "" && m.Kind != q.Kind {
			continue
		}
		if !q.Since.IsZero() && m.CreatedAt.Before(q.Since) {
			continue
		}
		matched = append(matched, m)
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[len(matched)-q.Limit:]
	}
	return matched
}

// Messages returns a copy of the full log in append order.
func (s *Store) Messages() []Message {
	return s.Filter(Query{})
}

// Len returns the number of messages.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// ContextFor renders the conversation context included in a persona's
// prompt, in sections: recent work and discussion from the rest of the
// team, answers to questions this persona raised, the latest
// orchestrator notices, and the questions still waiting on the persona.
// Answers and notices are collected independently of the recency
// window, so a busy phase cannot push an answer out of the asker's
// context. maxMessages caps the team-activity and notice sections.
func (s *Store) ContextFor(personaID string, maxMessages int) string {
	snapshot := s.Messages()

	asked := make(map[string]bool)
	for _, m := range snapshot {
		if m.Source == personaID && m.Kind == KindPersonaWork && m.PersonaWork != nil {
			for _, q := range m.PersonaWork.Questions {
				asked[q.ID] = true
			}
		}
	}

	var team, answers, notices []Message
	for _, m := range snapshot {
		switch m.Kind {
		case KindPersonaWork, KindDiscussion:
			// A persona's own work is not replayed to it.
			if m.Source != personaID {
				team = append(team, m)
			}
		case KindAnswer:
			if m.Answer != nil && asked[m.Answer.QuestionID] {
				answers = append(answers, m)
			}
		case KindSystem:
			notices = append(notices, m)
		}
	}
	if maxMessages > 0 && len(team) > maxMessages {
		team = team[len(team)-maxMessages:]
	}
	if maxMessages > 0 && len(notices) > maxMessages {
		notices = notices[len(notices)-maxMessages:]
	}
	pending := s.PendingQuestionsFor(personaID)

	if len(team) == 0 && len(answers) == 0 && len(notices) == 0 && len(pending) == 0 {
		return ""
	}

	var b strings.Builder
	section := func(header string, msgs []Message) {
		if len(msgs) == 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(header + "\n\n")
		for _, m := range msgs {
			b.WriteString(renderMessage(m))
		}
	}
	section("## Recent team activity", team)
	section("## Answers to your questions", answers)
	section("## Status updates", notices)

	if len(pending) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("## Questions waiting on you\n\n")
		for _, q := range pending {
			fmt.Fprintf(&b, "- [%s] %s", q.ID, q.Question)
			if q.Context != "" {
				fmt.Fprintf(&b, " (context: %s)", q.Context)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderMessage(m Message) string {
	var b strings.Builder
	ts := m.CreatedAt.Format("15:04:05")

	switch m.Kind {
	case KindPersonaWork:
		fmt.Fprintf(&b, "[%s] %s completed work: %s\n", ts, m.Source, m.PersonaWork.Summary)
		for _, d := range m.PersonaWork.Decisions {
			fmt.Fprintf(&b, "  decision: %s", d.Decision)
			if d.Rationale != "" {
				fmt.Fprintf(&b, " — %s", d.Rationale)
			}
			b.WriteString("\n")
		}
		if len(m.PersonaWork.FilesCreated) > 0 {
			fmt.Fprintf(&b, "  files: %s\n", strings.Join(m.PersonaWork.FilesCreated, ", "))
		}
		for _, q := range m.PersonaWork.Questions {
			fmt.Fprintf(&b, "  question for %s: %s\n", q.For, q.Question)
		}
		for _, c := range m.PersonaWork.Concerns {
			fmt.Fprintf(&b, "  concern: %s\n", c)
		}
	case KindDiscussion:
		fmt.Fprintf(&b, "[%s] %s (%s): %s\n", ts, m.Source, m.Discussion.MessageType, m.Discussion.Content)
	case KindSystem:
		fmt.Fprintf(&b, "[%s] system: %s\n", ts, m.System.Content)
	case KindAnswer:
		fmt.Fprintf(&b, "[%s] %s answered %s: %s\n", ts, m.Source, m.Answer.QuestionID, m.Answer.Text)
	default:
		fmt.Fprintf(&b, "[%s] %s posted a %s message\n", ts, m.Source, m.Kind)
	}
	return b.String()
}

// PendingQuestions returns all raised questions that have no matching
// answer yet, filtered to the given phase when non-empty.
func (s *Store) PendingQuestions(phase config.Phase) []Question {
	return s.pendingQuestions(phase, "")
}

// PendingQuestionsFor returns unanswered questions directed at the
// persona.
func (s *Store) PendingQuestionsFor(personaID string) []Question {
	return s.pendingQuestions("", personaID)
}

func (s *Store) pendingQuestions(phase config.Phase, forPersona string) []Question {
	s.mu.Lock()
	snapshot := make([]Message, len(s.messages))
	copy(snapshot, s.messages)
	s.mu.Unlock()

	answered := make(map[string]bool)
	for _, m := range snapshot {
		if m.Kind == KindAnswer && m.Answer != nil {
			answered[m.Answer.QuestionID] = true
		}
	}

	var pending []Question
	for _, m := range snapshot {
		if m.Kind != KindPersonaWork || m.PersonaWork == nil {
			continue
		}
		if phase != "" && m.Phase != phase {
			continue
		}
		for _, q := range m.PersonaWork.Questions {
			if answered[q.ID] {
				continue
			}
			if forPersona != "" && q.For != forPersona {
				continue
			}
			pending = append(pending, q)
		}
	}
	return pending
}

// Stats summarizes conversation activity.
type Stats struct {
	Total            int            `json:"total"`
	ByKind           map[Kind]int   `json:"by_kind"`
	BySource         map[string]int `json:"by_source"`
	QuestionsRaised  int            `json:"questions_raised"`
	QuestionsPending int            `json:"questions_pending"`
	DecisionsLogged  int            `json:"decisions_logged"`
}

// SummaryStats computes aggregate counts over the whole log.
func (s *Store) SummaryStats() Stats {
	s.mu.Lock()
	snapshot := make([]Message, len(s.messages))
	copy(snapshot, s.messages)
	s.mu.Unlock()

	stats := Stats{
		Total:    len(snapshot),
		ByKind:   make(map[Kind]int),
		BySource: make(map[string]int),
	}
	for _, m := range snapshot {
		stats.ByKind[m.Kind]++
		stats.BySource[m.Source]++
		if m.PersonaWork != nil {
			stats.QuestionsRaised += len(m.PersonaWork.Questions)
			stats.DecisionsLogged += len(m.PersonaWork.Decisions)
		}
	}
	stats.QuestionsPending = len(s.pendingQuestions("", ""))
	return stats
}

// dumpFile is the serialized form of a conversation.
type dumpFile struct {
	SessionID string    `json:"session_id"`
	Messages  []Message `json:"messages"`
}

// Dump serializes the conversation for persistence.
func (s *Store) Dump() ([]byte, error) {
	s.mu.Lock()
	snapshot := make([]Message, len(s.messages))
	copy(snapshot, s.messages)
	sessionID := s.sessionID
	s.mu.Unlock()

	return json.MarshalIndent(dumpFile{SessionID: sessionID, Messages: snapshot}, "", "  ")
}

// LoadDump restores a conversation from a Dump, preserving unknown
// message kinds byte-for-byte.
func LoadDump(data []byte) (*Store, error) {
	var dump dumpFile
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("failed to parse conversation dump: %w", err)
	}
	return &Store{
		sessionID: dump.SessionID,
		messages:  dump.Messages,
		logger:    slog.With("component", "conversation"),
	}, nil
}
