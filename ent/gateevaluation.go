// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-works/maestro/ent/gateevaluation"
	"github.com/maestro-works/maestro/ent/workflowexecution"
)

// GateEvaluation is the model entity for the GateEvaluation schema.
type GateEvaluation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID string `json:"execution_id,omitempty"`
	// Manifest iteration id, denormalized for reporting
	WorkflowID string `json:"workflow_id,omitempty"`
	// Lifecycle phase the gate protects
	Phase string `json:"phase,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind gateevaluation.Kind `json:"kind,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// Composite quality score at evaluation time
	Score float64 `json:"score,omitempty"`
	// Remediation iteration the evaluation belongs to
	Iteration int `json:"iteration,omitempty"`
	// Gate names that did not meet their thresholds
	FailedGates []string `json:"failed_gates,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GateEvaluationQuery when eager-loading is set.
	Edges        GateEvaluationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GateEvaluationEdges holds the relations/edges for other nodes in the graph.
type GateEvaluationEdges struct {
	// Execution holds the value of the execution edge.
	Execution *WorkflowExecution `json:"execution,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExecutionOrErr returns the Execution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GateEvaluationEdges) ExecutionOrErr() (*WorkflowExecution, error) {
	if e.Execution != nil {
		return e.Execution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflowexecution.Label}
	}
	return nil, &NotLoadedError{edge: "execution"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GateEvaluation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gateevaluation.FieldFailedGates:
			values[i] = new([]byte)
		case gateevaluation.FieldPassed:
			values[i] = new(sql.NullBool)
		case gateevaluation.FieldScore:
			values[i] = new(sql.NullFloat64)
		case gateevaluation.FieldIteration:
			values[i] = new(sql.NullInt64)
		case gateevaluation.FieldID, gateevaluation.FieldExecutionID, gateevaluation.FieldWorkflowID, gateevaluation.FieldPhase, gateevaluation.FieldKind:
			values[i] = new(sql.NullString)
		case gateevaluation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GateEvaluation fields.
func (_m *GateEvaluation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gateevaluation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case gateevaluation.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case gateevaluation.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case gateevaluation.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case gateevaluation.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = gateevaluation.Kind(value.String)
			}
		case gateevaluation.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case gateevaluation.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case gateevaluation.FieldIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iteration", values[i])
			} else if value.Valid {
				_m.Iteration = int(value.Int64)
			}
		case gateevaluation.FieldFailedGates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failed_gates", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FailedGates); err != nil {
					return fmt.Errorf("unmarshal field failed_gates: %w", err)
				}
			}
		case gateevaluation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GateEvaluation.
// This includes values selected through modifiers, order, etc.
func (_m *GateEvaluation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecution queries the "execution" edge of the GateEvaluation entity.
func (_m *GateEvaluation) QueryExecution() *WorkflowExecutionQuery {
	return NewGateEvaluationClient(_m.config).QueryExecution(_m)
}

// Update returns a builder for updating this GateEvaluation.
// Note that you need to call GateEvaluation.Unwrap() before calling this method if this GateEvaluation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GateEvaluation) Update() *GateEvaluationUpdateOne {
	return NewGateEvaluationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GateEvaluation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GateEvaluation) Unwrap() *GateEvaluation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GateEvaluation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GateEvaluation) String() string {
	var builder strings.Builder
	builder.WriteString("GateEvaluation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("iteration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Iteration))
	builder.WriteString(", ")
	builder.WriteString("failed_gates=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedGates))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GateEvaluations is a parsable slice of GateEvaluation.
type GateEvaluations []*GateEvaluation
