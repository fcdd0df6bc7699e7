package workflow

import (
	"log/slog"
	"sync"
	"time"
)

// EventType identifies engine lifecycle events.
type EventType string

const (
	EventWorkflowStarted   EventType = "workflow.started"
	EventWorkflowCompleted EventType = "workflow.completed"
	EventWorkflowFailed    EventType = "workflow.failed"
	EventWorkflowCancelled EventType = "workflow.cancelled"
	EventWorkflowTimedOut  EventType = "workflow.timed_out"
	EventNodeStarted       EventType = "node.started"
	EventNodeCompleted     EventType = "node.completed"
	EventNodeFailed        EventType = "node.failed"
	EventNodeSkipped       EventType = "node.skipped"
	EventNodeCancelled     EventType = "node.cancelled"
	EventNodeRetrying      EventType = "node.retrying"
	EventProgress          EventType = "workflow.progress"
)

// Progress summarizes how far an execution has come.
type Progress struct {
	CompletedNodes int     `json:"completed_nodes"`
	TotalNodes     int     `json:"total_nodes"`
	Percent        float64 `json:"percent"`
	Wave           int     `json:"wave"`
	TotalWaves     int     `json:"total_waves"`
}

// Event is one engine lifecycle notification.
type Event struct {
	Type        EventType  `json:"type"`
	Timestamp   time.Time  `json:"timestamp"`
	WorkflowID  string     `json:"workflow_id"`
	ExecutionID string     `json:"execution_id,omitempty"`
	NodeID      string     `json:"node_id,omitempty"`
	Status      NodeStatus `json:"status,omitempty"`
	Wave        int        `json:"wave,omitempty"`
	Attempt     int        `json:"attempt,omitempty"`
	Error       string     `json:"error,omitempty"`
	Progress    *Progress  `json:"progress,omitempty"`
}

// eventBus fans engine events out to subscribers. Emission never
// blocks: a subscriber that cannot keep up loses events (and a warning
// is logged) rather than stalling the scheduler.
type eventBus struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func newEventBus() *eventBus {
	return &eventBus{subs: make(map[int]chan Event)}
}

// subscribe returns a buffered event channel and its cancel function.
// The channel is closed on unsubscribe.
func (b *eventBus) subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 64
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (b *eventBus) publish(event Event) {
	b.mu.Lock()
	snapshot := make([]chan Event, 0, len(b.subs))
	for _, ch := range b.subs {
		snapshot = append(snapshot, ch)
	}
	b.mu.Unlock()

	for _, ch := range snapshot {
		select {
		case ch <- event:
		default:
			slog.Warn("Dropping workflow event for slow subscriber",
				"type", string(event.Type),
				"workflow_id", event.WorkflowID,
				"node_id", event.NodeID)
		}
	}
}
