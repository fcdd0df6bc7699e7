package events

import (
	"github.com/maestro-works/maestro/ent/bypassrequest"
	"github.com/maestro-works/maestro/ent/nodeexecution"
	"github.com/maestro-works/maestro/ent/workflowexecution"
)

// BasePayload carries the routing fields every event payload shares.
// The dashboard routes incoming WS messages by workflow_id, so every
// payload broadcast on a workflow channel must embed this with
// WorkflowID populated.
type BasePayload struct {
	Type        string `json:"type"`
	WorkflowID  string `json:"workflow_id,omitempty"`
	ExecutionID string `json:"execution_id,omitempty"`
	Timestamp   string `json:"timestamp"` // RFC3339Nano
}

// WorkflowStatusPayload is the payload for workflow.status events.
// Published when an execution transitions between lifecycle states.
type WorkflowStatusPayload struct {
	BasePayload
	Status         workflowexecution.Status `json:"status"`                  // pending, in_progress, cancelling, completed, failed, cancelled, timed_out, gate_failed
	CurrentPhase   string                   `json:"current_phase,omitempty"` // phase the execution was in at transition time
	CompletedNodes int                      `json:"completed_nodes"`
	TotalNodes     int                      `json:"total_nodes"`
	Error          string                   `json:"error,omitempty"` // terminal failure detail
}

// NodeStatusPayload is the payload for node.status events.
// Single event type for all node state transitions in the DAG.
type NodeStatusPayload struct {
	BasePayload
	NodeID          string               `json:"node_id"`
	Phase           string               `json:"phase,omitempty"`
	Wave            int                  `json:"wave"`
	Status          nodeexecution.Status `json:"status"` // pending, ready, running, completed, failed, skipped, cancelled
	Attempts        int                  `json:"attempts"`
	AssignedPersona string               `json:"assigned_persona,omitempty"`
	Reason          string               `json:"reason,omitempty"` // failure or skip detail
	ArtifactIDs     []string             `json:"artifact_ids,omitempty"`
}

// GateResultPayload is the payload for gate.result events.
// Published after every entry and exit gate evaluation.
type GateResultPayload struct {
	BasePayload
	Phase       string   `json:"phase"`
	Kind        string   `json:"kind"` // entry, exit
	Passed      bool     `json:"passed"`
	Score       float64  `json:"score"`
	Iteration   int      `json:"iteration,omitempty"` // 1-based remediation round on exit gates
	FailedGates []string `json:"failed_gates,omitempty"`
}

// BypassStatusPayload is the payload for bypass.status events.
// Published on every bypass request lifecycle transition.
type BypassStatusPayload struct {
	BasePayload
	BypassID    string               `json:"bypass_id"`
	Gate        string               `json:"gate"`
	Phase       string               `json:"phase"`
	Status      bypassrequest.Status `json:"status"` // proposed, approved, rejected, active, expired, revoked
	RequestedBy string               `json:"requested_by,omitempty"`
	ApprovedBy  string               `json:"approved_by,omitempty"`
	ExpiresAt   string               `json:"expires_at,omitempty"` // RFC3339
}

// WorkflowProgressPayload is the payload for workflow.progress transient
// events. Published to the workflow channel for progress bars — high
// frequency, recomputable from node.status history.
type WorkflowProgressPayload struct {
	BasePayload
	CurrentPhase   string   `json:"current_phase,omitempty"`
	CompletedNodes int      `json:"completed_nodes"`
	TotalNodes     int      `json:"total_nodes"`
	ActiveNodes    []string `json:"active_nodes,omitempty"` // node IDs currently running
	StatusText     string   `json:"status_text,omitempty"`  // e.g. "Wave 2/4: implement, write-tests"
}

// PersonaChunkPayload is the payload for persona.chunk transient events.
// Published for each LLM streaming delta while a persona works a node —
// ephemeral, lost on disconnect.
type PersonaChunkPayload struct {
	BasePayload
	NodeID    string `json:"node_id"`
	PersonaID string `json:"persona_id,omitempty"`
	Delta     string `json:"delta"` // incremental text chunk
}
