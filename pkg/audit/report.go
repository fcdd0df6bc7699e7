package audit

import (
	"fmt"
	"sort"
	"time"
)

// Report aggregates the audit trail for one workflow (or the whole
// trail when WorkflowID is empty) into a governance summary.
type Report struct {
	WorkflowID      string         `json:"workflow_id,omitempty"`
	From            time.Time      `json:"from,omitempty"`
	To              time.Time      `json:"to,omitempty"`
	TotalEvents     int            `json:"total_events"`
	EventCounts     map[string]int `json:"event_counts"`
	GatesEvaluated  int            `json:"gates_evaluated"`
	GatesPassed     int            `json:"gates_passed"`
	GatesFailed     int            `json:"gates_failed"`
	BypassesByState map[string]int `json:"bypasses_by_state"`
	GateFailures    map[string]int `json:"gate_failures"`
}

// BuildReport scans the audit file and aggregates matching events.
func BuildReport(path string, filter Filter) (*Report, error) {
	report := &Report{
		WorkflowID:      filter.WorkflowID,
		From:            filter.Since,
		To:              filter.Until,
		EventCounts:     make(map[string]int),
		BypassesByState: make(map[string]int),
		GateFailures:    make(map[string]int),
	}

	err := Scan(path, filter, func(e Event) bool {
		report.TotalEvents++
		report.EventCounts[e.EventType]++

		switch e.EventType {
		case EventGateEvaluation:
			report.GatesEvaluated++
			if passed, ok := e.Details["passed"].(bool); ok && passed {
				report.GatesPassed++
			} else {
				report.GatesFailed++
				if e.Gate != "" {
					report.GateFailures[e.Gate]++
				}
			}
		case EventBypassRequested:
			report.BypassesByState["proposed"]++
		case EventBypassApproved:
			report.BypassesByState["approved"]++
		case EventBypassRejected:
			report.BypassesByState["rejected"]++
		case EventBypassActivated:
			report.BypassesByState["active"]++
		case EventBypassExpired:
			report.BypassesByState["expired"]++
		case EventBypassRevoked:
			report.BypassesByState["revoked"]++
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build audit report: %w", err)
	}
	return report, nil
}

// TopGateFailures returns gate names ordered by failure count, most
// frequent first, ties broken alphabetically.
func (r *Report) TopGateFailures() []string {
	gates := make([]string, 0, len(r.GateFailures))
	for g := range r.GateFailures {
		gates = append(gates, g)
	}
	sort.Slice(gates, func(i, j int) bool {
		if r.GateFailures[gates[i]] != r.GateFailures[gates[j]] {
			return r.GateFailures[gates[i]] > r.GateFailures[gates[j]]
		}
		return gates[i] < gates[j]
	})
	return gates
}
