// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-works/maestro/ent/bypassrequest"
)

// BypassRequest is the model entity for the BypassRequest schema.
type BypassRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Manifest iteration id the bypass applies to
	WorkflowID string `json:"workflow_id,omitempty"`
	// Execution the bypass was raised from, when known
	ExecutionID string `json:"execution_id,omitempty"`
	// Gate name, e.g. 'test_coverage'
	Gate string `json:"gate,omitempty"`
	// Lifecycle phase the gate belongs to
	Phase string `json:"phase,omitempty"`
	// Measured metric value at request time
	CurrentValue float64 `json:"current_value,omitempty"`
	// Required metric value the gate enforces
	Threshold float64 `json:"threshold,omitempty"`
	// Justification holds the value of the "justification" field.
	Justification string `json:"justification,omitempty"`
	// TechnicalRisk holds the value of the "technical_risk" field.
	TechnicalRisk bypassrequest.TechnicalRisk `json:"technical_risk,omitempty"`
	// BusinessRisk holds the value of the "business_risk" field.
	BusinessRisk bypassrequest.BusinessRisk `json:"business_risk,omitempty"`
	// SecurityRisk holds the value of the "security_risk" field.
	SecurityRisk bypassrequest.SecurityRisk `json:"security_risk,omitempty"`
	// Duration holds the value of the "duration" field.
	Duration bypassrequest.Duration `json:"duration,omitempty"`
	// Absolute expiry for temporary bypasses
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// How the debt gets paid down; required for temporary bypasses
	RemediationPlan string `json:"remediation_plan,omitempty"`
	// Mitigations in place while the gate is bypassed
	CompensatingControls []string `json:"compensating_controls,omitempty"`
	// Ticket references tracking the remediation
	FollowUpTasks []string `json:"follow_up_tasks,omitempty"`
	// RequestedBy holds the value of the "requested_by" field.
	RequestedBy string `json:"requested_by,omitempty"`
	// Status holds the value of the "status" field.
	Status bypassrequest.Status `json:"status,omitempty"`
	// ApprovedBy holds the value of the "approved_by" field.
	ApprovedBy *string `json:"approved_by,omitempty"`
	// Authority tier that signed off, e.g. 'engineering_manager'
	ApprovalLevel string `json:"approval_level,omitempty"`
	// Architecture Decision Record documenting the exception
	AdrPath string `json:"adr_path,omitempty"`
	// RejectionReason holds the value of the "rejection_reason" field.
	RejectionReason *string `json:"rejection_reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the approve/reject decision landed
	DecidedAt *time.Time `json:"decided_at,omitempty"`
	// When the bypass expired or was revoked
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BypassRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bypassrequest.FieldCompensatingControls, bypassrequest.FieldFollowUpTasks:
			values[i] = new([]byte)
		case bypassrequest.FieldCurrentValue, bypassrequest.FieldThreshold:
			values[i] = new(sql.NullFloat64)
		case bypassrequest.FieldID, bypassrequest.FieldWorkflowID, bypassrequest.FieldExecutionID, bypassrequest.FieldGate, bypassrequest.FieldPhase, bypassrequest.FieldJustification, bypassrequest.FieldTechnicalRisk, bypassrequest.FieldBusinessRisk, bypassrequest.FieldSecurityRisk, bypassrequest.FieldDuration, bypassrequest.FieldRemediationPlan, bypassrequest.FieldRequestedBy, bypassrequest.FieldStatus, bypassrequest.FieldApprovedBy, bypassrequest.FieldApprovalLevel, bypassrequest.FieldAdrPath, bypassrequest.FieldRejectionReason:
			values[i] = new(sql.NullString)
		case bypassrequest.FieldExpiresAt, bypassrequest.FieldCreatedAt, bypassrequest.FieldDecidedAt, bypassrequest.FieldClosedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BypassRequest fields.
func (_m *BypassRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bypassrequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case bypassrequest.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case bypassrequest.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case bypassrequest.FieldGate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gate", values[i])
			} else if value.Valid {
				_m.Gate = value.String
			}
		case bypassrequest.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case bypassrequest.FieldCurrentValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field current_value", values[i])
			} else if value.Valid {
				_m.CurrentValue = value.Float64
			}
		case bypassrequest.FieldThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field threshold", values[i])
			} else if value.Valid {
				_m.Threshold = value.Float64
			}
		case bypassrequest.FieldJustification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field justification", values[i])
			} else if value.Valid {
				_m.Justification = value.String
			}
		case bypassrequest.FieldTechnicalRisk:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field technical_risk", values[i])
			} else if value.Valid {
				_m.TechnicalRisk = bypassrequest.TechnicalRisk(value.String)
			}
		case bypassrequest.FieldBusinessRisk:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field business_risk", values[i])
			} else if value.Valid {
				_m.BusinessRisk = bypassrequest.BusinessRisk(value.String)
			}
		case bypassrequest.FieldSecurityRisk:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field security_risk", values[i])
			} else if value.Valid {
				_m.SecurityRisk = bypassrequest.SecurityRisk(value.String)
			}
		case bypassrequest.FieldDuration:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = bypassrequest.Duration(value.String)
			}
		case bypassrequest.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case bypassrequest.FieldRemediationPlan:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field remediation_plan", values[i])
			} else if value.Valid {
				_m.RemediationPlan = value.String
			}
		case bypassrequest.FieldCompensatingControls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field compensating_controls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompensatingControls); err != nil {
					return fmt.Errorf("unmarshal field compensating_controls: %w", err)
				}
			}
		case bypassrequest.FieldFollowUpTasks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field follow_up_tasks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FollowUpTasks); err != nil {
					return fmt.Errorf("unmarshal field follow_up_tasks: %w", err)
				}
			}
		case bypassrequest.FieldRequestedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requested_by", values[i])
			} else if value.Valid {
				_m.RequestedBy = value.String
			}
		case bypassrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = bypassrequest.Status(value.String)
			}
		case bypassrequest.FieldApprovedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approved_by", values[i])
			} else if value.Valid {
				_m.ApprovedBy = new(string)
				*_m.ApprovedBy = value.String
			}
		case bypassrequest.FieldApprovalLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approval_level", values[i])
			} else if value.Valid {
				_m.ApprovalLevel = value.String
			}
		case bypassrequest.FieldAdrPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field adr_path", values[i])
			} else if value.Valid {
				_m.AdrPath = value.String
			}
		case bypassrequest.FieldRejectionReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rejection_reason", values[i])
			} else if value.Valid {
				_m.RejectionReason = new(string)
				*_m.RejectionReason = value.String
			}
		case bypassrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case bypassrequest.FieldDecidedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field decided_at", values[i])
			} else if value.Valid {
				_m.DecidedAt = new(time.Time)
				*_m.DecidedAt = value.Time
			}
		case bypassrequest.FieldClosedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field closed_at", values[i])
			} else if value.Valid {
				_m.ClosedAt = new(time.Time)
				*_m.ClosedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BypassRequest.
// This includes values selected through modifiers, order, etc.
func (_m *BypassRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BypassRequest.
// Note that you need to call BypassRequest.Unwrap() before calling this method if this BypassRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BypassRequest) Update() *BypassRequestUpdateOne {
	return NewBypassRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BypassRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BypassRequest) Unwrap() *BypassRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BypassRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BypassRequest) String() string {
	var builder strings.Builder
	builder.WriteString("BypassRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	builder.WriteString("gate=")
	builder.WriteString(_m.Gate)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("current_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentValue))
	builder.WriteString(", ")
	builder.WriteString("threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.Threshold))
	builder.WriteString(", ")
	builder.WriteString("justification=")
	builder.WriteString(_m.Justification)
	builder.WriteString(", ")
	builder.WriteString("technical_risk=")
	builder.WriteString(fmt.Sprintf("%v", _m.TechnicalRisk))
	builder.WriteString(", ")
	builder.WriteString("business_risk=")
	builder.WriteString(fmt.Sprintf("%v", _m.BusinessRisk))
	builder.WriteString(", ")
	builder.WriteString("security_risk=")
	builder.WriteString(fmt.Sprintf("%v", _m.SecurityRisk))
	builder.WriteString(", ")
	builder.WriteString("duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Duration))
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("remediation_plan=")
	builder.WriteString(_m.RemediationPlan)
	builder.WriteString(", ")
	builder.WriteString("compensating_controls=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompensatingControls))
	builder.WriteString(", ")
	builder.WriteString("follow_up_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.FollowUpTasks))
	builder.WriteString(", ")
	builder.WriteString("requested_by=")
	builder.WriteString(_m.RequestedBy)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ApprovedBy; v != nil {
		builder.WriteString("approved_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("approval_level=")
	builder.WriteString(_m.ApprovalLevel)
	builder.WriteString(", ")
	builder.WriteString("adr_path=")
	builder.WriteString(_m.AdrPath)
	builder.WriteString(", ")
	if v := _m.RejectionReason; v != nil {
		builder.WriteString("rejection_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DecidedAt; v != nil {
		builder.WriteString("decided_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ClosedAt; v != nil {
		builder.WriteString("closed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// BypassRequests is a parsable slice of BypassRequest.
type BypassRequests []*BypassRequest
