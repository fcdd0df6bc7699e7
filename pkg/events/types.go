// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Events come in two durability classes. Clients must not assume a
// transient event will ever be redelivered.
//
// PERSISTENT (stored in the events table, then NOTIFY):
//
//	workflow.status   — execution lifecycle transitions
//	node.status       — per-node DAG state transitions
//	gate.result       — entry/exit gate evaluations
//	bypass.status     — bypass request lifecycle transitions
//
// Persistent events carry a db_event_id in the NOTIFY payload. Clients
// track the highest db_event_id they have seen and use it as the
// catchup cursor after a reconnect: missed events are replayed from
// the events table in ID order.
//
// TRANSIENT (NOTIFY only, no persistence):
//
//	workflow.progress — completed/total node counters for progress bars
//	persona.chunk     — LLM output deltas while a persona is working
//
// Transient events are lost on disconnect. Progress can always be
// recomputed from node.status history; chunks are superseded by the
// node's final outputs.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Execution lifecycle — single event type for all status transitions.
	EventTypeWorkflowStatus = "workflow.status"

	// Node lifecycle — ready, running, completed, failed, skipped, cancelled.
	EventTypeNodeStatus = "node.status"

	// Gate evaluation results, entry and exit.
	EventTypeGateResult = "gate.result"

	// Bypass request lifecycle — proposed, approved, rejected, expired, revoked.
	EventTypeBypassStatus = "bypass.status"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Node completion counters — high-frequency, recomputable.
	EventTypeWorkflowProgress = "workflow.progress"

	// LLM streaming deltas from persona execution — ephemeral.
	EventTypePersonaChunk = "persona.chunk"
)

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "workflow:web-api")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
