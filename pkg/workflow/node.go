// Package workflow implements the DAG engine: manifest parsing and
// validation, wave-based topological scheduling, and node execution
// with timeouts, retries, and graceful cancellation.
package workflow

import (
	"time"

	"github.com/maestro-works/maestro/pkg/config"
)

// NodeType classifies what executing a node means.
type NodeType string

const (
	// NodeTypeAction is a unit of persona work.
	NodeTypeAction NodeType = "action"

	// NodeTypePhase groups persona work under a lifecycle phase.
	NodeTypePhase NodeType = "phase"

	// NodeTypeCheckpoint re-validates accumulated artifacts mid-flow.
	NodeTypeCheckpoint NodeType = "checkpoint"

	// NodeTypeNotification emits an event and completes immediately.
	NodeTypeNotification NodeType = "notification"

	// NodeTypeInterface locks a contract (API shape, schema) that
	// downstream nodes build against. Scheduled ahead of sibling work.
	NodeTypeInterface NodeType = "interface"
)

var validNodeTypes = map[NodeType]bool{
	NodeTypeAction:       true,
	NodeTypePhase:        true,
	NodeTypeCheckpoint:   true,
	NodeTypeNotification: true,
	NodeTypeInterface:    true,
}

// IsValid reports whether the node type is known.
func (t NodeType) IsValid() bool { return validNodeTypes[t] }

// NodeStatus is the lifecycle state of one node within an execution.
type NodeStatus string

const (
	NodeStatusPending   NodeStatus = "pending"
	NodeStatusReady     NodeStatus = "ready"
	NodeStatusRunning   NodeStatus = "running"
	NodeStatusCompleted NodeStatus = "completed"
	NodeStatusFailed    NodeStatus = "failed"
	NodeStatusSkipped   NodeStatus = "skipped"
	NodeStatusCancelled NodeStatus = "cancelled"
)

// IsTerminal reports whether no further transitions are allowed, with
// the one exception that failed nodes may return to ready while retry
// budget remains.
func (s NodeStatus) IsTerminal() bool {
	switch s {
	case NodeStatusCompleted, NodeStatusFailed, NodeStatusSkipped, NodeStatusCancelled:
		return true
	default:
		return false
	}
}

// nodeTransitions is the legal status machine. failed → ready covers
// retries.
var nodeTransitions = map[NodeStatus][]NodeStatus{
	NodeStatusPending: {NodeStatusReady, NodeStatusSkipped, NodeStatusCancelled},
	NodeStatusReady:   {NodeStatusRunning, NodeStatusSkipped, NodeStatusCancelled},
	NodeStatusRunning: {NodeStatusCompleted, NodeStatusFailed, NodeStatusCancelled},
	NodeStatusFailed:  {NodeStatusReady},
}

// CanTransitionTo reports whether moving to target is legal.
func (s NodeStatus) CanTransitionTo(target NodeStatus) bool {
	for _, allowed := range nodeTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// RetryPolicy bounds node retries. Backoff doubles per attempt from
// InitialBackoff up to MaxBackoff.
type RetryPolicy struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// backoffFor returns the delay before retry number attempt (1-based).
func (p RetryPolicy) backoffFor(attempt int) time.Duration {
	d := p.InitialBackoff
	if d <= 0 {
		d = 2 * time.Second
	}
	for i := 1; i < attempt; i++ {
		d *= 2
		if p.MaxBackoff > 0 && d >= p.MaxBackoff {
			return p.MaxBackoff
		}
	}
	if p.MaxBackoff > 0 && d > p.MaxBackoff {
		return p.MaxBackoff
	}
	return d
}

// Node is one vertex of a built workflow.
type Node struct {
	ID        string
	Type      NodeType
	Phase     config.Phase
	DependsOn []string

	// PersonaID pins the assignee; Capability routes through the
	// persona registry when PersonaID is empty.
	PersonaID  string
	Capability string

	Gates           []string
	Outputs         []string
	Timeout         time.Duration
	Retry           RetryPolicy
	EstimatedEffort string
}

// NodeState is the mutable execution record for one node.
type NodeState struct {
	NodeID        string            `json:"node_id"`
	Status        NodeStatus        `json:"status"`
	Attempts      int               `json:"attempts"`
	Wave          int               `json:"wave"`
	StartedAt     *time.Time        `json:"started_at,omitempty"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`
	Outputs       map[string]string `json:"outputs,omitempty"`
	ArtifactIDs   []string          `json:"artifact_ids,omitempty"`
	AssignedAgent string            `json:"assigned_agent,omitempty"`
	Reason        string            `json:"reason,omitempty"`
}
