// Package audit provides the append-only JSONL audit trail for gate
// evaluations, bypass lifecycle transitions, and workflow events.
//
// The audit file is the compliance record: every governance-relevant
// decision is appended as a single JSON object per line. Appends are
// serialized through a single writer and synced to disk so a crash
// cannot lose acknowledged entries.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event types recorded in the audit trail.
const (
	EventGateEvaluation  = "gate_evaluation"
	EventBypassRequested = "bypass_requested"
	EventBypassApproved  = "bypass_approved"
	EventBypassRejected  = "bypass_rejected"
	EventBypassActivated = "bypass_activated"
	EventBypassExpired   = "bypass_expired"
	EventBypassRevoked   = "bypass_revoked"
	EventNodeTransition  = "node_transition"
	EventWorkflowStatus  = "workflow_status"
	EventExpirySweep     = "expiry_sweep"
)

// Event is a single audit trail entry. Zero-valued optional fields are
// omitted from the serialized line.
type Event struct {
	Timestamp   time.Time      `json:"timestamp"`
	EventType   string         `json:"event_type"`
	Actor       string         `json:"actor,omitempty"`
	WorkflowID  string         `json:"workflow_id,omitempty"`
	ExecutionID string         `json:"execution_id,omitempty"`
	Phase       string         `json:"phase,omitempty"`
	NodeID      string         `json:"node_id,omitempty"`
	Gate        string         `json:"gate,omitempty"`
	BypassID    string         `json:"bypass_id,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
}

// Logger appends audit events to a JSONL file. It is safe for
// concurrent use; appends are serialized and fsynced.
type Logger struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// Open creates (or reopens for append) the audit log at path, creating
// parent directories as needed.
func Open(path string) (*Logger, error) {
	if path == "" {
		return nil, fmt.Errorf("audit log path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create audit log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	return &Logger{path: path, file: f}, nil
}

// Path returns the location of the underlying audit file.
func (l *Logger) Path() string {
	return l.path
}

// Append writes one event as a single JSON line and syncs it to disk.
// The timestamp is assigned if the caller left it zero. Append failures
// must not abort the decision being recorded; callers log and continue.
func (l *Logger) Append(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.EventType == "" {
		return fmt.Errorf("audit event has no event_type")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return fmt.Errorf("audit log is closed")
	}
	if _, err := l.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append audit event: %w", err)
	}
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync audit log: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file. Further appends fail.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
