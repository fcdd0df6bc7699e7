// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BypassRequest is the predicate function for bypassrequest builders.
type BypassRequest func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// GateEvaluation is the predicate function for gateevaluation builders.
type GateEvaluation func(*sql.Selector)

// NodeExecution is the predicate function for nodeexecution builders.
type NodeExecution func(*sql.Selector)

// WorkflowExecution is the predicate function for workflowexecution builders.
type WorkflowExecution func(*sql.Selector)
