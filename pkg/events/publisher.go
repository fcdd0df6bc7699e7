package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY.
// Transient events (progress counters, streaming chunks) are broadcast via
// NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see payloads.go.
// Internally, payloads are marshaled to JSON and routed to the appropriate
// channel (derived from workflowID) via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishWorkflowStatus persists a status event to the workflow channel
// and broadcasts a transient copy to the global workflows channel.
// Both publishes are best-effort: if the persistent one fails, the transient
// one is still attempted. Returns the first error encountered (if any).
func (p *EventPublisher) PublishWorkflowStatus(ctx context.Context, workflowID string, payload WorkflowStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal WorkflowStatusPayload: %w", err)
	}

	// Persist to workflow-specific channel
	var firstErr error
	if err := p.persistAndNotify(ctx, payload.ExecutionID, WorkflowChannel(workflowID), payloadJSON); err != nil {
		slog.Warn("Failed to publish workflow status to workflow channel",
			"workflow_id", workflowID, "execution_id", payload.ExecutionID, "status", payload.Status, "error", err)
		firstErr = err
	}

	// Also broadcast to global workflows channel (transient — for the execution list)
	if err := p.notifyOnly(ctx, GlobalWorkflowsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish workflow status to global channel",
			"workflow_id", workflowID, "execution_id", payload.ExecutionID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishNodeStatus persists and broadcasts a node.status event.
// Used for every node state transition in the DAG.
func (p *EventPublisher) PublishNodeStatus(ctx context.Context, workflowID string, payload NodeStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal NodeStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.ExecutionID, WorkflowChannel(workflowID), payloadJSON)
}

// PublishGateResult persists and broadcasts a gate.result event.
// Published after every entry and exit gate evaluation.
func (p *EventPublisher) PublishGateResult(ctx context.Context, workflowID string, payload GateResultPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal GateResultPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.ExecutionID, WorkflowChannel(workflowID), payloadJSON)
}

// PublishBypassStatus persists and broadcasts a bypass.status event.
// Bypasses proposed outside any workflow context (workflowID empty) are
// broadcast transiently on the global channel only — there is no
// workflow channel to persist them to, and the bypass row itself is the
// durable record.
func (p *EventPublisher) PublishBypassStatus(ctx context.Context, workflowID string, payload BypassStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal BypassStatusPayload: %w", err)
	}

	if workflowID == "" {
		return p.notifyOnly(ctx, GlobalWorkflowsChannel, payloadJSON)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, payload.ExecutionID, WorkflowChannel(workflowID), payloadJSON); err != nil {
		slog.Warn("Failed to publish bypass status to workflow channel",
			"workflow_id", workflowID, "bypass_id", payload.BypassID, "error", err)
		firstErr = err
	}
	if err := p.notifyOnly(ctx, GlobalWorkflowsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish bypass status to global channel",
			"workflow_id", workflowID, "bypass_id", payload.BypassID, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishWorkflowProgress broadcasts a workflow.progress transient event
// (no DB persistence). Published to the workflow channel for progress bars.
func (p *EventPublisher) PublishWorkflowProgress(ctx context.Context, workflowID string, payload WorkflowProgressPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal WorkflowProgressPayload: %w", err)
	}
	return p.notifyOnly(ctx, WorkflowChannel(workflowID), payloadJSON)
}

// PublishPersonaChunk broadcasts a persona.chunk transient event (no DB
// persistence). Used for high-frequency LLM streaming deltas — ephemeral,
// lost on disconnect.
func (p *EventPublisher) PublishPersonaChunk(ctx context.Context, workflowID string, payload PersonaChunkPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal PersonaChunkPayload: %w", err)
	}
	return p.notifyOnly(ctx, WorkflowChannel(workflowID), payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, executionID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (execution_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		executionID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type        string `json:"type"`
		WorkflowID  string `json:"workflow_id"`
		ExecutionID string `json:"execution_id"`
		NodeID      string `json:"node_id"`
		DBEventID   *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":         routing.Type,
		"workflow_id":  routing.WorkflowID,
		"execution_id": routing.ExecutionID,
		"truncated":    true,
	}
	if routing.NodeID != "" {
		truncated["node_id"] = routing.NodeID
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
