// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-works/maestro/ent/nodeexecution"
	"github.com/maestro-works/maestro/ent/workflowexecution"
)

// NodeExecution is the model entity for the NodeExecution schema.
type NodeExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID string `json:"execution_id,omitempty"`
	// Manifest node id, e.g. 'BE.Impl'
	NodeID string `json:"node_id,omitempty"`
	// NodeType holds the value of the "node_type" field.
	NodeType nodeexecution.NodeType `json:"node_type,omitempty"`
	// Lifecycle phase the node belongs to
	Phase string `json:"phase,omitempty"`
	// Status holds the value of the "status" field.
	Status nodeexecution.Status `json:"status,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// Topological wave the scheduler placed the node in
	Wave int `json:"wave,omitempty"`
	// AssignedPersona holds the value of the "assigned_persona" field.
	AssignedPersona string `json:"assigned_persona,omitempty"`
	// Key/value outputs the node reported
	Outputs map[string]string `json:"outputs,omitempty"`
	// Stamped artifact ids the node produced
	Artifacts []string `json:"artifacts,omitempty"`
	// Failure or skip reason
	Reason *string `json:"reason,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NodeExecutionQuery when eager-loading is set.
	Edges        NodeExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// NodeExecutionEdges holds the relations/edges for other nodes in the graph.
type NodeExecutionEdges struct {
	// Execution holds the value of the execution edge.
	Execution *WorkflowExecution `json:"execution,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExecutionOrErr returns the Execution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e NodeExecutionEdges) ExecutionOrErr() (*WorkflowExecution, error) {
	if e.Execution != nil {
		return e.Execution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflowexecution.Label}
	}
	return nil, &NotLoadedError{edge: "execution"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NodeExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case nodeexecution.FieldOutputs, nodeexecution.FieldArtifacts:
			values[i] = new([]byte)
		case nodeexecution.FieldAttempts, nodeexecution.FieldWave:
			values[i] = new(sql.NullInt64)
		case nodeexecution.FieldID, nodeexecution.FieldExecutionID, nodeexecution.FieldNodeID, nodeexecution.FieldNodeType, nodeexecution.FieldPhase, nodeexecution.FieldStatus, nodeexecution.FieldAssignedPersona, nodeexecution.FieldReason:
			values[i] = new(sql.NullString)
		case nodeexecution.FieldStartedAt, nodeexecution.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NodeExecution fields.
func (_m *NodeExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case nodeexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case nodeexecution.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case nodeexecution.FieldNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_id", values[i])
			} else if value.Valid {
				_m.NodeID = value.String
			}
		case nodeexecution.FieldNodeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_type", values[i])
			} else if value.Valid {
				_m.NodeType = nodeexecution.NodeType(value.String)
			}
		case nodeexecution.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case nodeexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = nodeexecution.Status(value.String)
			}
		case nodeexecution.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case nodeexecution.FieldWave:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wave", values[i])
			} else if value.Valid {
				_m.Wave = int(value.Int64)
			}
		case nodeexecution.FieldAssignedPersona:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_persona", values[i])
			} else if value.Valid {
				_m.AssignedPersona = value.String
			}
		case nodeexecution.FieldOutputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Outputs); err != nil {
					return fmt.Errorf("unmarshal field outputs: %w", err)
				}
			}
		case nodeexecution.FieldArtifacts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field artifacts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Artifacts); err != nil {
					return fmt.Errorf("unmarshal field artifacts: %w", err)
				}
			}
		case nodeexecution.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = new(string)
				*_m.Reason = value.String
			}
		case nodeexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case nodeexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NodeExecution.
// This includes values selected through modifiers, order, etc.
func (_m *NodeExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecution queries the "execution" edge of the NodeExecution entity.
func (_m *NodeExecution) QueryExecution() *WorkflowExecutionQuery {
	return NewNodeExecutionClient(_m.config).QueryExecution(_m)
}

// Update returns a builder for updating this NodeExecution.
// Note that you need to call NodeExecution.Unwrap() before calling this method if this NodeExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NodeExecution) Update() *NodeExecutionUpdateOne {
	return NewNodeExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NodeExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NodeExecution) Unwrap() *NodeExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NodeExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NodeExecution) String() string {
	var builder strings.Builder
	builder.WriteString("NodeExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	builder.WriteString("node_id=")
	builder.WriteString(_m.NodeID)
	builder.WriteString(", ")
	builder.WriteString("node_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.NodeType))
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("wave=")
	builder.WriteString(fmt.Sprintf("%v", _m.Wave))
	builder.WriteString(", ")
	builder.WriteString("assigned_persona=")
	builder.WriteString(_m.AssignedPersona)
	builder.WriteString(", ")
	builder.WriteString("outputs=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outputs))
	builder.WriteString(", ")
	builder.WriteString("artifacts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Artifacts))
	builder.WriteString(", ")
	if v := _m.Reason; v != nil {
		builder.WriteString("reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// NodeExecutions is a parsable slice of NodeExecution.
type NodeExecutions []*NodeExecution
