// Code generated by ent, DO NOT EDIT.

package workflowexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the workflowexecution type in the database.
	Label = "workflow_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldRequirement holds the string denoting the requirement field in the database.
	FieldRequirement = "requirement"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentPhase holds the string denoting the current_phase field in the database.
	FieldCurrentPhase = "current_phase"
	// FieldOutputDir holds the string denoting the output_dir field in the database.
	FieldOutputDir = "output_dir"
	// FieldTotalNodes holds the string denoting the total_nodes field in the database.
	FieldTotalNodes = "total_nodes"
	// FieldCompletedNodes holds the string denoting the completed_nodes field in the database.
	FieldCompletedNodes = "completed_nodes"
	// FieldConstraints holds the string denoting the constraints field in the database.
	FieldConstraints = "constraints"
	// FieldRequestedBy holds the string denoting the requested_by field in the database.
	FieldRequestedBy = "requested_by"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeNodeExecutions holds the string denoting the node_executions edge name in mutations.
	EdgeNodeExecutions = "node_executions"
	// EdgeGateEvaluations holds the string denoting the gate_evaluations edge name in mutations.
	EdgeGateEvaluations = "gate_evaluations"
	// NodeExecutionFieldID holds the string denoting the ID field of the NodeExecution.
	NodeExecutionFieldID = "node_execution_id"
	// GateEvaluationFieldID holds the string denoting the ID field of the GateEvaluation.
	GateEvaluationFieldID = "gate_evaluation_id"
	// Table holds the table name of the workflowexecution in the database.
	Table = "workflow_executions"
	// NodeExecutionsTable is the table that holds the node_executions relation/edge.
	NodeExecutionsTable = "node_executions"
	// NodeExecutionsInverseTable is the table name for the NodeExecution entity.
	// It exists in this package in order to avoid circular dependency with the "nodeexecution" package.
	NodeExecutionsInverseTable = "node_executions"
	// NodeExecutionsColumn is the table column denoting the node_executions relation/edge.
	NodeExecutionsColumn = "execution_id"
	// GateEvaluationsTable is the table that holds the gate_evaluations relation/edge.
	GateEvaluationsTable = "gate_evaluations"
	// GateEvaluationsInverseTable is the table name for the GateEvaluation entity.
	// It exists in this package in order to avoid circular dependency with the "gateevaluation" package.
	GateEvaluationsInverseTable = "gate_evaluations"
	// GateEvaluationsColumn is the table column denoting the gate_evaluations relation/edge.
	GateEvaluationsColumn = "execution_id"
)

// Columns holds all SQL columns for workflowexecution fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldRequirement,
	FieldStatus,
	FieldCurrentPhase,
	FieldOutputDir,
	FieldTotalNodes,
	FieldCompletedNodes,
	FieldConstraints,
	FieldRequestedBy,
	FieldErrorMessage,
	FieldPodID,
	FieldLastInteractionAt,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDeletedAt,
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
	// DefaultTotalNodes holds the default value on creation for the "total_nodes" field.
	DefaultTotalNodes int
	// DefaultCompletedNodes holds the default value on creation for the "completed_nodes" field.
	DefaultCompletedNodes int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCancelling Status = "cancelling"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
	StatusTimedOut   Status = "timed_out"
	StatusGateFailed Status = "gate_failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCancelling, StatusCompleted, StatusFailed, StatusCancelled, StatusTimedOut, StatusGateFailed:
		return nil
	default:
		return fmt.Errorf("workflowexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the WorkflowExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByRequirement orders the results by the requirement field.
func ByRequirement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequirement, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentPhase orders the results by the current_phase field.
func ByCurrentPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPhase, opts...).ToFunc()
}

// ByOutputDir orders the results by the output_dir field.
func ByOutputDir(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputDir, opts...).ToFunc()
}

// ByTotalNodes orders the results by the total_nodes field.
func ByTotalNodes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalNodes, opts...).ToFunc()
}

// ByCompletedNodes orders the results by the completed_nodes field.
func ByCompletedNodes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedNodes, opts...).ToFunc()
}

// ByRequestedBy orders the results by the requested_by field.
func ByRequestedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedBy, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByNodeExecutionsCount orders the results by node_executions count.
func ByNodeExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNodeExecutionsStep(), opts...)
	}
}

// ByNodeExecutions orders the results by node_executions terms.
func ByNodeExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNodeExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGateEvaluationsCount orders the results by gate_evaluations count.
func ByGateEvaluationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGateEvaluationsStep(), opts...)
	}
}

// ByGateEvaluations orders the results by gate_evaluations terms.
func ByGateEvaluations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGateEvaluationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newNodeExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NodeExecutionsInverseTable, NodeExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NodeExecutionsTable, NodeExecutionsColumn),
	)
}
func newGateEvaluationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GateEvaluationsInverseTable, GateEvaluationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GateEvaluationsTable, GateEvaluationsColumn),
	)
}
