// Code generated by ent, DO NOT EDIT.

package nodeexecution

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the nodeexecution type in the database.
	Label = "node_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "node_execution_id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldNodeID holds the string denoting the node_id field in the database.
	FieldNodeID = "node_id"
	// FieldNodeType holds the string denoting the node_type field in the database.
	FieldNodeType = "node_type"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldWave holds the string denoting the wave field in the database.
	FieldWave = "wave"
	// FieldAssignedPersona holds the string denoting the assigned_persona field in the database.
	FieldAssignedPersona = "assigned_persona"
	// FieldOutputs holds the string denoting the outputs field in the database.
	FieldOutputs = "outputs"
	// FieldArtifacts holds the string denoting the artifacts field in the database.
	FieldArtifacts = "artifacts"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeExecution holds the string denoting the execution edge name in mutations.
	EdgeExecution = "execution"
	// WorkflowExecutionFieldID holds the string denoting the ID field of the WorkflowExecution.
	WorkflowExecutionFieldID = "execution_id"
	// Table holds the table name of the nodeexecution in the database.
	Table = "node_executions"
	// ExecutionTable is the table that holds the execution relation/edge.
	ExecutionTable = "node_executions"
	// ExecutionInverseTable is the table name for the WorkflowExecution entity.
	// It exists in this package in order to avoid circular dependency with the "workflowexecution" package.
	ExecutionInverseTable = "workflow_executions"
	// ExecutionColumn is the table column denoting the execution relation/edge.
	ExecutionColumn = "execution_id"
)

// Columns holds all SQL columns for nodeexecution fields.
var Columns = []string{
	FieldID,
	FieldExecutionID,
	FieldNodeID,
	FieldNodeType,
	FieldPhase,
	FieldStatus,
	FieldAttempts,
	FieldWave,
	FieldAssignedPersona,
	FieldOutputs,
	FieldArtifacts,
	FieldReason,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultWave holds the default value on creation for the "wave" field.
	DefaultWave int
)

// NodeType defines the type for the "node_type" enum field.
type NodeType string

// NodeTypeAction is the default value of the NodeType enum.
const DefaultNodeType = NodeTypeAction

// NodeType values.
const (
	NodeTypeAction       NodeType = "action"
	NodeTypePhase        NodeType = "phase"
	NodeTypeCheckpoint   NodeType = "checkpoint"
	NodeTypeNotification NodeType = "notification"
	NodeTypeInterface    NodeType = "interface"
)

func (nt NodeType) String() string {
	return string(nt)
}

// NodeTypeValidator is a validator for the "node_type" field enum values. It is called by the builders before save.
func NodeTypeValidator(nt NodeType) error {
	switch nt {
	case NodeTypeAction, NodeTypePhase, NodeTypeCheckpoint, NodeTypeNotification, NodeTypeInterface:
		return nil
	default:
		return fmt.Errorf("nodeexecution: invalid enum value for node_type field: %q", nt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusReady     Status = "ready"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusReady, StatusRunning, StatusCompleted, StatusFailed, StatusSkipped, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("nodeexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the NodeExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByNodeID orders the results by the node_id field.
func ByNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeID, opts...).ToFunc()
}

// ByNodeType orders the results by the node_type field.
func ByNodeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeType, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByWave orders the results by the wave field.
func ByWave(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWave, opts...).ToFunc()
}

// ByAssignedPersona orders the results by the assigned_persona field.
func ByAssignedPersona(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedPersona, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByExecutionField orders the results by execution field.
func ByExecutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionStep(), sql.OrderByField(field, opts...))
	}
}
func newExecutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionInverseTable, WorkflowExecutionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
	)
}
