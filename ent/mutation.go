// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-works/maestro/ent/bypassrequest"
	"github.com/maestro-works/maestro/ent/event"
	"github.com/maestro-works/maestro/ent/gateevaluation"
	"github.com/maestro-works/maestro/ent/nodeexecution"
	"github.com/maestro-works/maestro/ent/predicate"
	"github.com/maestro-works/maestro/ent/workflowexecution"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBypassRequest     = "BypassRequest"
	TypeEvent             = "Event"
	TypeGateEvaluation    = "GateEvaluation"
	TypeNodeExecution     = "NodeExecution"
	TypeWorkflowExecution = "WorkflowExecution"
)

// BypassRequestMutation represents an operation that mutates the BypassRequest nodes in the graph.
type BypassRequestMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	workflow_id                 *string
	execution_id                *string
	gate                        *string
	phase                       *string
	current_value               *float64
	addcurrent_value            *float64
	threshold                   *float64
	addthreshold                *float64
	justification               *string
	technical_risk              *bypassrequest.TechnicalRisk
	business_risk               *bypassrequest.BusinessRisk
	security_risk               *bypassrequest.SecurityRisk
	duration                    *bypassrequest.Duration
	expires_at                  *time.Time
	remediation_plan            *string
	compensating_controls       *[]string
	appendcompensating_controls []string
	follow_up_tasks             *[]string
	appendfollow_up_tasks       []string
	requested_by                *string
	status                      *bypassrequest.Status
	approved_by                 *string
	approval_level              *string
	adr_path                    *string
	rejection_reason            *string
	created_at                  *time.Time
	decided_at                  *time.Time
	closed_at                   *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*BypassRequest, error)
	predicates                  []predicate.BypassRequest
}

var _ ent.Mutation = (*BypassRequestMutation)(nil)

// bypassrequestOption allows management of the mutation configuration using functional options.
type bypassrequestOption func(*BypassRequestMutation)

// newBypassRequestMutation creates new mutation for the BypassRequest entity.
func newBypassRequestMutation(c config, op Op, opts ...bypassrequestOption) *BypassRequestMutation {
	m := &BypassRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeBypassRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBypassRequestID sets the ID field of the mutation.
func withBypassRequestID(id string) bypassrequestOption {
	return func(m *BypassRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *BypassRequest
		)
		m.oldValue = func(ctx context.Context) (*BypassRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BypassRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBypassRequest sets the old BypassRequest of the mutation.
func withBypassRequest(node *BypassRequest) bypassrequestOption {
	return func(m *BypassRequestMutation) {
		m.oldValue = func(context.Context) (*BypassRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BypassRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BypassRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BypassRequest entities.
func (m *BypassRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BypassRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BypassRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BypassRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *BypassRequestMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *BypassRequestMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (m *BypassRequestMutation) ClearWorkflowID() {
	m.workflow_id = nil
	m.clearedFields[bypassrequest.FieldWorkflowID] = struct{}{}
}

// WorkflowIDCleared returns if the "workflow_id" field was cleared in this mutation.
func (m *BypassRequestMutation) WorkflowIDCleared() bool {
	_, ok := m.clearedFields[bypassrequest.FieldWorkflowID]
	return ok
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *BypassRequestMutation) ResetWorkflowID() {
	m.workflow_id = nil
	delete(m.clearedFields, bypassrequest.FieldWorkflowID)
}

// SetExecutionID sets the "execution_id" field.
func (m *BypassRequestMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *BypassRequestMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ClearExecutionID clears the value of the "execution_id" field.
func (m *BypassRequestMutation) ClearExecutionID() {
	m.execution_id = nil
	m.clearedFields[bypassrequest.FieldExecutionID] = struct{}{}
}

// ExecutionIDCleared returns if the "execution_id" field was cleared in this mutation.
func (m *BypassRequestMutation) ExecutionIDCleared() bool {
	_, ok := m.clearedFields[bypassrequest.FieldExecutionID]
	return ok
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *BypassRequestMutation) ResetExecutionID() {
	m.execution_id = nil
	delete(m.clearedFields, bypassrequest.FieldExecutionID)
}

// SetGate sets the "gate" field.
func (m *BypassRequestMutation) SetGate(s string) {
	m.gate = &s
}

// Gate returns the value of the "gate" field in the mutation.
func (m *BypassRequestMutation) Gate() (r string, exists bool) {
	v := m.gate
	if v == nil {
		return
	}
	return *v, true
}

// OldGate returns the old "gate" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldGate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGate: %w", err)
	}
	return oldValue.Gate, nil
}

// ResetGate resets all changes to the "gate" field.
func (m *BypassRequestMutation) ResetGate() {
	m.gate = nil
}

// SetPhase sets the "phase" field.
func (m *BypassRequestMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *BypassRequestMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *BypassRequestMutation) ResetPhase() {
	m.phase = nil
}

// SetCurrentValue sets the "current_value" field.
func (m *BypassRequestMutation) SetCurrentValue(f float64) {
	m.current_value = &f
	m.addcurrent_value = nil
}

// CurrentValue returns the value of the "current_value" field in the mutation.
func (m *BypassRequestMutation) CurrentValue() (r float64, exists bool) {
	v := m.current_value
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentValue returns the old "current_value" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldCurrentValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentValue: %w", err)
	}
	return oldValue.CurrentValue, nil
}

// AddCurrentValue adds f to the "current_value" field.
func (m *BypassRequestMutation) AddCurrentValue(f float64) {
	if m.addcurrent_value != nil {
		*m.addcurrent_value += f
	} else {
		m.addcurrent_value = &f
	}
}

// AddedCurrentValue returns the value that was added to the "current_value" field in this mutation.
func (m *BypassRequestMutation) AddedCurrentValue() (r float64, exists bool) {
	v := m.addcurrent_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentValue resets all changes to the "current_value" field.
func (m *BypassRequestMutation) ResetCurrentValue() {
	m.current_value = nil
	m.addcurrent_value = nil
}

// SetThreshold sets the "threshold" field.
func (m *BypassRequestMutation) SetThreshold(f float64) {
	m.threshold = &f
	m.addthreshold = nil
}

// Threshold returns the value of the "threshold" field in the mutation.
func (m *BypassRequestMutation) Threshold() (r float64, exists bool) {
	v := m.threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldThreshold returns the old "threshold" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreshold: %w", err)
	}
	return oldValue.Threshold, nil
}

// AddThreshold adds f to the "threshold" field.
func (m *BypassRequestMutation) AddThreshold(f float64) {
	if m.addthreshold != nil {
		*m.addthreshold += f
	} else {
		m.addthreshold = &f
	}
}

// AddedThreshold returns the value that was added to the "threshold" field in this mutation.
func (m *BypassRequestMutation) AddedThreshold() (r float64, exists bool) {
	v := m.addthreshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetThreshold resets all changes to the "threshold" field.
func (m *BypassRequestMutation) ResetThreshold() {
	m.threshold = nil
	m.addthreshold = nil
}

// SetJustification sets the "justification" field.
func (m *BypassRequestMutation) SetJustification(s string) {
	m.justification = &s
}

// Justification returns the value of the "justification" field in the mutation.
func (m *BypassRequestMutation) Justification() (r string, exists bool) {
	v := m.justification
	if v == nil {
		return
	}
	return *v, true
}

// OldJustification returns the old "justification" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldJustification(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJustification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJustification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJustification: %w", err)
	}
	return oldValue.Justification, nil
}

// ResetJustification resets all changes to the "justification" field.
func (m *BypassRequestMutation) ResetJustification() {
	m.justification = nil
}

// SetTechnicalRisk sets the "technical_risk" field.
func (m *BypassRequestMutation) SetTechnicalRisk(br bypassrequest.TechnicalRisk) {
	m.technical_risk = &br
}

// TechnicalRisk returns the value of the "technical_risk" field in the mutation.
func (m *BypassRequestMutation) TechnicalRisk() (r bypassrequest.TechnicalRisk, exists bool) {
	v := m.technical_risk
	if v == nil {
		return
	}
	return *v, true
}

// OldTechnicalRisk returns the old "technical_risk" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldTechnicalRisk(ctx context.Context) (v bypassrequest.TechnicalRisk, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTechnicalRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTechnicalRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTechnicalRisk: %w", err)
	}
	return oldValue.TechnicalRisk, nil
}

// ResetTechnicalRisk resets all changes to the "technical_risk" field.
func (m *BypassRequestMutation) ResetTechnicalRisk() {
	m.technical_risk = nil
}

// SetBusinessRisk sets the "business_risk" field.
func (m *BypassRequestMutation) SetBusinessRisk(br bypassrequest.BusinessRisk) {
	m.business_risk = &br
}

// BusinessRisk returns the value of the "business_risk" field in the mutation.
func (m *BypassRequestMutation) BusinessRisk() (r bypassrequest.BusinessRisk, exists bool) {
	v := m.business_risk
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessRisk returns the old "business_risk" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldBusinessRisk(ctx context.Context) (v bypassrequest.BusinessRisk, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessRisk: %w", err)
	}
	return oldValue.BusinessRisk, nil
}

// ResetBusinessRisk resets all changes to the "business_risk" field.
func (m *BypassRequestMutation) ResetBusinessRisk() {
	m.business_risk = nil
}

// SetSecurityRisk sets the "security_risk" field.
func (m *BypassRequestMutation) SetSecurityRisk(br bypassrequest.SecurityRisk) {
	m.security_risk = &br
}

// SecurityRisk returns the value of the "security_risk" field in the mutation.
func (m *BypassRequestMutation) SecurityRisk() (r bypassrequest.SecurityRisk, exists bool) {
	v := m.security_risk
	if v == nil {
		return
	}
	return *v, true
}

// OldSecurityRisk returns the old "security_risk" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldSecurityRisk(ctx context.Context) (v bypassrequest.SecurityRisk, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecurityRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecurityRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecurityRisk: %w", err)
	}
	return oldValue.SecurityRisk, nil
}

// ResetSecurityRisk resets all changes to the "security_risk" field.
func (m *BypassRequestMutation) ResetSecurityRisk() {
	m.security_risk = nil
}

// SetDuration sets the "duration" field.
func (m *BypassRequestMutation) SetDuration(b bypassrequest.Duration) {
	m.duration = &b
}

// Duration returns the value of the "duration" field in the mutation.
func (m *BypassRequestMutation) Duration() (r bypassrequest.Duration, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldDuration(ctx context.Context) (v bypassrequest.Duration, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// ResetDuration resets all changes to the "duration" field.
func (m *BypassRequestMutation) ResetDuration() {
	m.duration = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *BypassRequestMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *BypassRequestMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *BypassRequestMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[bypassrequest.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *BypassRequestMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[bypassrequest.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *BypassRequestMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, bypassrequest.FieldExpiresAt)
}

// SetRemediationPlan sets the "remediation_plan" field.
func (m *BypassRequestMutation) SetRemediationPlan(s string) {
	m.remediation_plan = &s
}

// RemediationPlan returns the value of the "remediation_plan" field in the mutation.
func (m *BypassRequestMutation) RemediationPlan() (r string, exists bool) {
	v := m.remediation_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldRemediationPlan returns the old "remediation_plan" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldRemediationPlan(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemediationPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemediationPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemediationPlan: %w", err)
	}
	return oldValue.RemediationPlan, nil
}

// ClearRemediationPlan clears the value of the "remediation_plan" field.
func (m *BypassRequestMutation) ClearRemediationPlan() {
	m.remediation_plan = nil
	m.clearedFields[bypassrequest.FieldRemediationPlan] = struct{}{}
}

// RemediationPlanCleared returns if the "remediation_plan" field was cleared in this mutation.
func (m *BypassRequestMutation) RemediationPlanCleared() bool {
	_, ok := m.clearedFields[bypassrequest.FieldRemediationPlan]
	return ok
}

// ResetRemediationPlan resets all changes to the "remediation_plan" field.
func (m *BypassRequestMutation) ResetRemediationPlan() {
	m.remediation_plan = nil
	delete(m.clearedFields, bypassrequest.FieldRemediationPlan)
}

// SetCompensatingControls sets the "compensating_controls" field.
func (m *BypassRequestMutation) SetCompensatingControls(s []string) {
	m.compensating_controls = &s
	m.appendcompensating_controls = nil
}

// CompensatingControls returns the value of the "compensating_controls" field in the mutation.
func (m *BypassRequestMutation) CompensatingControls() (r []string, exists bool) {
	v := m.compensating_controls
	if v == nil {
		return
	}
	return *v, true
}

// OldCompensatingControls returns the old "compensating_controls" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldCompensatingControls(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompensatingControls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompensatingControls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompensatingControls: %w", err)
	}
	return oldValue.CompensatingControls, nil
}

// AppendCompensatingControls adds s to the "compensating_controls" field.
func (m *BypassRequestMutation) AppendCompensatingControls(s []string) {
	m.appendcompensating_controls = append(m.appendcompensating_controls, s...)
}

// AppendedCompensatingControls returns the list of values that were appended to the "compensating_controls" field in this mutation.
func (m *BypassRequestMutation) AppendedCompensatingControls() ([]string, bool) {
	if len(m.appendcompensating_controls) == 0 {
		return nil, false
	}
	return m.appendcompensating_controls, true
}

// ClearCompensatingControls clears the value of the "compensating_controls" field.
func (m *BypassRequestMutation) ClearCompensatingControls() {
	m.compensating_controls = nil
	m.appendcompensating_controls = nil
	m.clearedFields[bypassrequest.FieldCompensatingControls] = struct{}{}
}

// CompensatingControlsCleared returns if the "compensating_controls" field was cleared in this mutation.
func (m *BypassRequestMutation) CompensatingControlsCleared() bool {
	_, ok := m.clearedFields[bypassrequest.FieldCompensatingControls]
	return ok
}

// ResetCompensatingControls resets all changes to the "compensating_controls" field.
func (m *BypassRequestMutation) ResetCompensatingControls() {
	m.compensating_controls = nil
	m.appendcompensating_controls = nil
	delete(m.clearedFields, bypassrequest.FieldCompensatingControls)
}

// SetFollowUpTasks sets the "follow_up_tasks" field.
func (m *BypassRequestMutation) SetFollowUpTasks(s []string) {
	m.follow_up_tasks = &s
	m.appendfollow_up_tasks = nil
}

// FollowUpTasks returns the value of the "follow_up_tasks" field in the mutation.
func (m *BypassRequestMutation) FollowUpTasks() (r []string, exists bool) {
	v := m.follow_up_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowUpTasks returns the old "follow_up_tasks" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldFollowUpTasks(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowUpTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowUpTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowUpTasks: %w", err)
	}
	return oldValue.FollowUpTasks, nil
}

// AppendFollowUpTasks adds s to the "follow_up_tasks" field.
func (m *BypassRequestMutation) AppendFollowUpTasks(s []string) {
	m.appendfollow_up_tasks = append(m.appendfollow_up_tasks, s...)
}

// AppendedFollowUpTasks returns the list of values that were appended to the "follow_up_tasks" field in this mutation.
func (m *BypassRequestMutation) AppendedFollowUpTasks() ([]string, bool) {
	if len(m.appendfollow_up_tasks) == 0 {
		return nil, false
	}
	return m.appendfollow_up_tasks, true
}

// ClearFollowUpTasks clears the value of the "follow_up_tasks" field.
func (m *BypassRequestMutation) ClearFollowUpTasks() {
	m.follow_up_tasks = nil
	m.appendfollow_up_tasks = nil
	m.clearedFields[bypassrequest.FieldFollowUpTasks] = struct{}{}
}

// FollowUpTasksCleared returns if the "follow_up_tasks" field was cleared in this mutation.
func (m *BypassRequestMutation) FollowUpTasksCleared() bool {
	_, ok := m.clearedFields[bypassrequest.FieldFollowUpTasks]
	return ok
}

// ResetFollowUpTasks resets all changes to the "follow_up_tasks" field.
func (m *BypassRequestMutation) ResetFollowUpTasks() {
	m.follow_up_tasks = nil
	m.appendfollow_up_tasks = nil
	delete(m.clearedFields, bypassrequest.FieldFollowUpTasks)
}

// SetRequestedBy sets the "requested_by" field.
func (m *BypassRequestMutation) SetRequestedBy(s string) {
	m.requested_by = &s
}

// RequestedBy returns the value of the "requested_by" field in the mutation.
func (m *BypassRequestMutation) RequestedBy() (r string, exists bool) {
	v := m.requested_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedBy returns the old "requested_by" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldRequestedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedBy: %w", err)
	}
	return oldValue.RequestedBy, nil
}

// ResetRequestedBy resets all changes to the "requested_by" field.
func (m *BypassRequestMutation) ResetRequestedBy() {
	m.requested_by = nil
}

// SetStatus sets the "status" field.
func (m *BypassRequestMutation) SetStatus(b bypassrequest.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BypassRequestMutation) Status() (r bypassrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldStatus(ctx context.Context) (v bypassrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BypassRequestMutation) ResetStatus() {
	m.status = nil
}

// SetApprovedBy sets the "approved_by" field.
func (m *BypassRequestMutation) SetApprovedBy(s string) {
	m.approved_by = &s
}

// ApprovedBy returns the value of the "approved_by" field in the mutation.
func (m *BypassRequestMutation) ApprovedBy() (r string, exists bool) {
	v := m.approved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedBy returns the old "approved_by" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldApprovedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedBy: %w", err)
	}
	return oldValue.ApprovedBy, nil
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (m *BypassRequestMutation) ClearApprovedBy() {
	m.approved_by = nil
	m.clearedFields[bypassrequest.FieldApprovedBy] = struct{}{}
}

// ApprovedByCleared returns if the "approved_by" field was cleared in this mutation.
func (m *BypassRequestMutation) ApprovedByCleared() bool {
	_, ok := m.clearedFields[bypassrequest.FieldApprovedBy]
	return ok
}

// ResetApprovedBy resets all changes to the "approved_by" field.
func (m *BypassRequestMutation) ResetApprovedBy() {
	m.approved_by = nil
	delete(m.clearedFields, bypassrequest.FieldApprovedBy)
}

// SetApprovalLevel sets the "approval_level" field.
func (m *BypassRequestMutation) SetApprovalLevel(s string) {
	m.approval_level = &s
}

// ApprovalLevel returns the value of the "approval_level" field in the mutation.
func (m *BypassRequestMutation) ApprovalLevel() (r string, exists bool) {
	v := m.approval_level
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovalLevel returns the old "approval_level" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldApprovalLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovalLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovalLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovalLevel: %w", err)
	}
	return oldValue.ApprovalLevel, nil
}

// ClearApprovalLevel clears the value of the "approval_level" field.
func (m *BypassRequestMutation) ClearApprovalLevel() {
	m.approval_level = nil
	m.clearedFields[bypassrequest.FieldApprovalLevel] = struct{}{}
}

// ApprovalLevelCleared returns if the "approval_level" field was cleared in this mutation.
func (m *BypassRequestMutation) ApprovalLevelCleared() bool {
	_, ok := m.clearedFields[bypassrequest.FieldApprovalLevel]
	return ok
}

// ResetApprovalLevel resets all changes to the "approval_level" field.
func (m *BypassRequestMutation) ResetApprovalLevel() {
	m.approval_level = nil
	delete(m.clearedFields, bypassrequest.FieldApprovalLevel)
}

// SetAdrPath sets the "adr_path" field.
func (m *BypassRequestMutation) SetAdrPath(s string) {
	m.adr_path = &s
}

// AdrPath returns the value of the "adr_path" field in the mutation.
func (m *BypassRequestMutation) AdrPath() (r string, exists bool) {
	v := m.adr_path
	if v == nil {
		return
	}
	return *v, true
}

// OldAdrPath returns the old "adr_path" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldAdrPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdrPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdrPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdrPath: %w", err)
	}
	return oldValue.AdrPath, nil
}

// ClearAdrPath clears the value of the "adr_path" field.
func (m *BypassRequestMutation) ClearAdrPath() {
	m.adr_path = nil
	m.clearedFields[bypassrequest.FieldAdrPath] = struct{}{}
}

// AdrPathCleared returns if the "adr_path" field was cleared in this mutation.
func (m *BypassRequestMutation) AdrPathCleared() bool {
	_, ok := m.clearedFields[bypassrequest.FieldAdrPath]
	return ok
}

// ResetAdrPath resets all changes to the "adr_path" field.
func (m *BypassRequestMutation) ResetAdrPath() {
	m.adr_path = nil
	delete(m.clearedFields, bypassrequest.FieldAdrPath)
}

// SetRejectionReason sets the "rejection_reason" field.
func (m *BypassRequestMutation) SetRejectionReason(s string) {
	m.rejection_reason = &s
}

// RejectionReason returns the value of the "rejection_reason" field in the mutation.
func (m *BypassRequestMutation) RejectionReason() (r string, exists bool) {
	v := m.rejection_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectionReason returns the old "rejection_reason" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldRejectionReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectionReason: %w", err)
	}
	return oldValue.RejectionReason, nil
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (m *BypassRequestMutation) ClearRejectionReason() {
	m.rejection_reason = nil
	m.clearedFields[bypassrequest.FieldRejectionReason] = struct{}{}
}

// RejectionReasonCleared returns if the "rejection_reason" field was cleared in this mutation.
func (m *BypassRequestMutation) RejectionReasonCleared() bool {
	_, ok := m.clearedFields[bypassrequest.FieldRejectionReason]
	return ok
}

// ResetRejectionReason resets all changes to the "rejection_reason" field.
func (m *BypassRequestMutation) ResetRejectionReason() {
	m.rejection_reason = nil
	delete(m.clearedFields, bypassrequest.FieldRejectionReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *BypassRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BypassRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BypassRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDecidedAt sets the "decided_at" field.
func (m *BypassRequestMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *BypassRequestMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldDecidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (m *BypassRequestMutation) ClearDecidedAt() {
	m.decided_at = nil
	m.clearedFields[bypassrequest.FieldDecidedAt] = struct{}{}
}

// DecidedAtCleared returns if the "decided_at" field was cleared in this mutation.
func (m *BypassRequestMutation) DecidedAtCleared() bool {
	_, ok := m.clearedFields[bypassrequest.FieldDecidedAt]
	return ok
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *BypassRequestMutation) ResetDecidedAt() {
	m.decided_at = nil
	delete(m.clearedFields, bypassrequest.FieldDecidedAt)
}

// SetClosedAt sets the "closed_at" field.
func (m *BypassRequestMutation) SetClosedAt(t time.Time) {
	m.closed_at = &t
}

// ClosedAt returns the value of the "closed_at" field in the mutation.
func (m *BypassRequestMutation) ClosedAt() (r time.Time, exists bool) {
	v := m.closed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedAt returns the old "closed_at" field's value of the BypassRequest entity.
// If the BypassRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BypassRequestMutation) OldClosedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedAt: %w", err)
	}
	return oldValue.ClosedAt, nil
}

// ClearClosedAt clears the value of the "closed_at" field.
func (m *BypassRequestMutation) ClearClosedAt() {
	m.closed_at = nil
	m.clearedFields[bypassrequest.FieldClosedAt] = struct{}{}
}

// ClosedAtCleared returns if the "closed_at" field was cleared in this mutation.
func (m *BypassRequestMutation) ClosedAtCleared() bool {
	_, ok := m.clearedFields[bypassrequest.FieldClosedAt]
	return ok
}

// ResetClosedAt resets all changes to the "closed_at" field.
func (m *BypassRequestMutation) ResetClosedAt() {
	m.closed_at = nil
	delete(m.clearedFields, bypassrequest.FieldClosedAt)
}

// Where appends a list predicates to the BypassRequestMutation builder.
func (m *BypassRequestMutation) Where(ps ...predicate.BypassRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BypassRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BypassRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BypassRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BypassRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BypassRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BypassRequest).
func (m *BypassRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BypassRequestMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.workflow_id != nil {
		fields = append(fields, bypassrequest.FieldWorkflowID)
	}
	if m.execution_id != nil {
		fields = append(fields, bypassrequest.FieldExecutionID)
	}
	if m.gate != nil {
		fields = append(fields, bypassrequest.FieldGate)
	}
	if m.phase != nil {
		fields = append(fields, bypassrequest.FieldPhase)
	}
	if m.current_value != nil {
		fields = append(fields, bypassrequest.FieldCurrentValue)
	}
	if m.threshold != nil {
		fields = append(fields, bypassrequest.FieldThreshold)
	}
	if m.justification != nil {
		fields = append(fields, bypassrequest.FieldJustification)
	}
	if m.technical_risk != nil {
		fields = append(fields, bypassrequest.FieldTechnicalRisk)
	}
	if m.business_risk != nil {
		fields = append(fields, bypassrequest.FieldBusinessRisk)
	}
	if m.security_risk != nil {
		fields = append(fields, bypassrequest.FieldSecurityRisk)
	}
	if m.duration != nil {
		fields = append(fields, bypassrequest.FieldDuration)
	}
	if m.expires_at != nil {
		fields = append(fields, bypassrequest.FieldExpiresAt)
	}
	if m.remediation_plan != nil {
		fields = append(fields, bypassrequest.FieldRemediationPlan)
	}
	if m.compensating_controls != nil {
		fields = append(fields, bypassrequest.FieldCompensatingControls)
	}
	if m.follow_up_tasks != nil {
		fields = append(fields, bypassrequest.FieldFollowUpTasks)
	}
	if m.requested_by != nil {
		fields = append(fields, bypassrequest.FieldRequestedBy)
	}
	if m.status != nil {
		fields = append(fields, bypassrequest.FieldStatus)
	}
	if m.approved_by != nil {
		fields = append(fields, bypassrequest.FieldApprovedBy)
	}
	if m.approval_level != nil {
		fields = append(fields, bypassrequest.FieldApprovalLevel)
	}
	if m.adr_path != nil {
		fields = append(fields, bypassrequest.FieldAdrPath)
	}
	if m.rejection_reason != nil {
		fields = append(fields, bypassrequest.FieldRejectionReason)
	}
	if m.created_at != nil {
		fields = append(fields, bypassrequest.FieldCreatedAt)
	}
	if m.decided_at != nil {
		fields = append(fields, bypassrequest.FieldDecidedAt)
	}
	if m.closed_at != nil {
		fields = append(fields, bypassrequest.FieldClosedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BypassRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bypassrequest.FieldWorkflowID:
		return m.WorkflowID()
	case bypassrequest.FieldExecutionID:
		return m.ExecutionID()
	case bypassrequest.FieldGate:
		return m.Gate()
	case bypassrequest.FieldPhase:
		return m.Phase()
	case bypassrequest.FieldCurrentValue:
		return m.CurrentValue()
	case bypassrequest.FieldThreshold:
		return m.Threshold()
	case bypassrequest.FieldJustification:
		return m.Justification()
	case bypassrequest.FieldTechnicalRisk:
		return m.TechnicalRisk()
	case bypassrequest.FieldBusinessRisk:
		return m.BusinessRisk()
	case bypassrequest.FieldSecurityRisk:
		return m.SecurityRisk()
	case bypassrequest.FieldDuration:
		return m.Duration()
	case bypassrequest.FieldExpiresAt:
		return m.ExpiresAt()
	case bypassrequest.FieldRemediationPlan:
		return m.RemediationPlan()
	case bypassrequest.FieldCompensatingControls:
		return m.CompensatingControls()
	case bypassrequest.FieldFollowUpTasks:
		return m.FollowUpTasks()
	case bypassrequest.FieldRequestedBy:
		return m.RequestedBy()
	case bypassrequest.FieldStatus:
		return m.Status()
	case bypassrequest.FieldApprovedBy:
		return m.ApprovedBy()
	case bypassrequest.FieldApprovalLevel:
		return m.ApprovalLevel()
	case bypassrequest.FieldAdrPath:
		return m.AdrPath()
	case bypassrequest.FieldRejectionReason:
		return m.RejectionReason()
	case bypassrequest.FieldCreatedAt:
		return m.CreatedAt()
	case bypassrequest.FieldDecidedAt:
		return m.DecidedAt()
	case bypassrequest.FieldClosedAt:
		return m.ClosedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BypassRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bypassrequest.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case bypassrequest.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case bypassrequest.FieldGate:
		return m.OldGate(ctx)
	case bypassrequest.FieldPhase:
		return m.OldPhase(ctx)
	case bypassrequest.FieldCurrentValue:
		return m.OldCurrentValue(ctx)
	case bypassrequest.FieldThreshold:
		return m.OldThreshold(ctx)
	case bypassrequest.FieldJustification:
		return m.OldJustification(ctx)
	case bypassrequest.FieldTechnicalRisk:
		return m.OldTechnicalRisk(ctx)
	case bypassrequest.FieldBusinessRisk:
		return m.OldBusinessRisk(ctx)
	case bypassrequest.FieldSecurityRisk:
		return m.OldSecurityRisk(ctx)
	case bypassrequest.FieldDuration:
		return m.OldDuration(ctx)
	case bypassrequest.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case bypassrequest.FieldRemediationPlan:
		return m.OldRemediationPlan(ctx)
	case bypassrequest.FieldCompensatingControls:
		return m.OldCompensatingControls(ctx)
	case bypassrequest.FieldFollowUpTasks:
		return m.OldFollowUpTasks(ctx)
	case bypassrequest.FieldRequestedBy:
		return m.OldRequestedBy(ctx)
	case bypassrequest.FieldStatus:
		return m.OldStatus(ctx)
	case bypassrequest.FieldApprovedBy:
		return m.OldApprovedBy(ctx)
	case bypassrequest.FieldApprovalLevel:
		return m.OldApprovalLevel(ctx)
	case bypassrequest.FieldAdrPath:
		return m.OldAdrPath(ctx)
	case bypassrequest.FieldRejectionReason:
		return m.OldRejectionReason(ctx)
	case bypassrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case bypassrequest.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	case bypassrequest.FieldClosedAt:
		return m.OldClosedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BypassRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BypassRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bypassrequest.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case bypassrequest.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case bypassrequest.FieldGate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGate(v)
		return nil
	case bypassrequest.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case bypassrequest.FieldCurrentValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentValue(v)
		return nil
	case bypassrequest.FieldThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreshold(v)
		return nil
	case bypassrequest.FieldJustification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJustification(v)
		return nil
	case bypassrequest.FieldTechnicalRisk:
		v, ok := value.(bypassrequest.TechnicalRisk)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTechnicalRisk(v)
		return nil
	case bypassrequest.FieldBusinessRisk:
		v, ok := value.(bypassrequest.BusinessRisk)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessRisk(v)
		return nil
	case bypassrequest.FieldSecurityRisk:
		v, ok := value.(bypassrequest.SecurityRisk)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecurityRisk(v)
		return nil
	case bypassrequest.FieldDuration:
		v, ok := value.(bypassrequest.Duration)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case bypassrequest.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case bypassrequest.FieldRemediationPlan:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemediationPlan(v)
		return nil
	case bypassrequest.FieldCompensatingControls:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompensatingControls(v)
		return nil
	case bypassrequest.FieldFollowUpTasks:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowUpTasks(v)
		return nil
	case bypassrequest.FieldRequestedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedBy(v)
		return nil
	case bypassrequest.FieldStatus:
		v, ok := value.(bypassrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case bypassrequest.FieldApprovedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedBy(v)
		return nil
	case bypassrequest.FieldApprovalLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovalLevel(v)
		return nil
	case bypassrequest.FieldAdrPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdrPath(v)
		return nil
	case bypassrequest.FieldRejectionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectionReason(v)
		return nil
	case bypassrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case bypassrequest.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	case bypassrequest.FieldClosedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BypassRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BypassRequestMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_value != nil {
		fields = append(fields, bypassrequest.FieldCurrentValue)
	}
	if m.addthreshold != nil {
		fields = append(fields, bypassrequest.FieldThreshold)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BypassRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bypassrequest.FieldCurrentValue:
		return m.AddedCurrentValue()
	case bypassrequest.FieldThreshold:
		return m.AddedThreshold()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BypassRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bypassrequest.FieldCurrentValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentValue(v)
		return nil
	case bypassrequest.FieldThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThreshold(v)
		return nil
	}
	return fmt.Errorf("unknown BypassRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BypassRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bypassrequest.FieldWorkflowID) {
		fields = append(fields, bypassrequest.FieldWorkflowID)
	}
	if m.FieldCleared(bypassrequest.FieldExecutionID) {
		fields = append(fields, bypassrequest.FieldExecutionID)
	}
	if m.FieldCleared(bypassrequest.FieldExpiresAt) {
		fields = append(fields, bypassrequest.FieldExpiresAt)
	}
	if m.FieldCleared(bypassrequest.FieldRemediationPlan) {
		fields = append(fields, bypassrequest.FieldRemediationPlan)
	}
	if m.FieldCleared(bypassrequest.FieldCompensatingControls) {
		fields = append(fields, bypassrequest.FieldCompensatingControls)
	}
	if m.FieldCleared(bypassrequest.FieldFollowUpTasks) {
		fields = append(fields, bypassrequest.FieldFollowUpTasks)
	}
	if m.FieldCleared(bypassrequest.FieldApprovedBy) {
		fields = append(fields, bypassrequest.FieldApprovedBy)
	}
	if m.FieldCleared(bypassrequest.FieldApprovalLevel) {
		fields = append(fields, bypassrequest.FieldApprovalLevel)
	}
	if m.FieldCleared(bypassrequest.FieldAdrPath) {
		fields = append(fields, bypassrequest.FieldAdrPath)
	}
	if m.FieldCleared(bypassrequest.FieldRejectionReason) {
		fields = append(fields, bypassrequest.FieldRejectionReason)
	}
	if m.FieldCleared(bypassrequest.FieldDecidedAt) {
		fields = append(fields, bypassrequest.FieldDecidedAt)
	}
	if m.FieldCleared(bypassrequest.FieldClosedAt) {
		fields = append(fields, bypassrequest.FieldClosedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BypassRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BypassRequestMutation) ClearField(name string) error {
	switch name {
	case bypassrequest.FieldWorkflowID:
		m.ClearWorkflowID()
		return nil
	case bypassrequest.FieldExecutionID:
		m.ClearExecutionID()
		return nil
	case bypassrequest.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case bypassrequest.FieldRemediationPlan:
		m.ClearRemediationPlan()
		return nil
	case bypassrequest.FieldCompensatingControls:
		m.ClearCompensatingControls()
		return nil
	case bypassrequest.FieldFollowUpTasks:
		m.ClearFollowUpTasks()
		return nil
	case bypassrequest.FieldApprovedBy:
		m.ClearApprovedBy()
		return nil
	case bypassrequest.FieldApprovalLevel:
		m.ClearApprovalLevel()
		return nil
	case bypassrequest.FieldAdrPath:
		m.ClearAdrPath()
		return nil
	case bypassrequest.FieldRejectionReason:
		m.ClearRejectionReason()
		return nil
	case bypassrequest.FieldDecidedAt:
		m.ClearDecidedAt()
		return nil
	case bypassrequest.FieldClosedAt:
		m.ClearClosedAt()
		return nil
	}
	return fmt.Errorf("unknown BypassRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BypassRequestMutation) ResetField(name string) error {
	switch name {
	case bypassrequest.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case bypassrequest.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case bypassrequest.FieldGate:
		m.ResetGate()
		return nil
	case bypassrequest.FieldPhase:
		m.ResetPhase()
		return nil
	case bypassrequest.FieldCurrentValue:
		m.ResetCurrentValue()
		return nil
	case bypassrequest.FieldThreshold:
		m.ResetThreshold()
		return nil
	case bypassrequest.FieldJustification:
		m.ResetJustification()
		return nil
	case bypassrequest.FieldTechnicalRisk:
		m.ResetTechnicalRisk()
		return nil
	case bypassrequest.FieldBusinessRisk:
		m.ResetBusinessRisk()
		return nil
	case bypassrequest.FieldSecurityRisk:
		m.ResetSecurityRisk()
		return nil
	case bypassrequest.FieldDuration:
		m.ResetDuration()
		return nil
	case bypassrequest.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case bypassrequest.FieldRemediationPlan:
		m.ResetRemediationPlan()
		return nil
	case bypassrequest.FieldCompensatingControls:
		m.ResetCompensatingControls()
		return nil
	case bypassrequest.FieldFollowUpTasks:
		m.ResetFollowUpTasks()
		return nil
	case bypassrequest.FieldRequestedBy:
		m.ResetRequestedBy()
		return nil
	case bypassrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case bypassrequest.FieldApprovedBy:
		m.ResetApprovedBy()
		return nil
	case bypassrequest.FieldApprovalLevel:
		m.ResetApprovalLevel()
		return nil
	case bypassrequest.FieldAdrPath:
		m.ResetAdrPath()
		return nil
	case bypassrequest.FieldRejectionReason:
		m.ResetRejectionReason()
		return nil
	case bypassrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case bypassrequest.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	case bypassrequest.FieldClosedAt:
		m.ResetClosedAt()
		return nil
	}
	return fmt.Errorf("unknown BypassRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BypassRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BypassRequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BypassRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BypassRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BypassRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BypassRequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BypassRequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BypassRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BypassRequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BypassRequest edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	execution_id  *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *EventMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *EventMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *EventMutation) ResetExecutionID() {
	m.execution_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.execution_id != nil {
		fields = append(fields, event.FieldExecutionID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldExecutionID:
		return m.ExecutionID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// GateEvaluationMutation represents an operation that mutates the GateEvaluation nodes in the graph.
type GateEvaluationMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	workflow_id        *string
	phase              *string
	kind               *gateevaluation.Kind
	passed             *bool
	score              *float64
	addscore           *float64
	iteration          *int
	additeration       *int
	failed_gates       *[]string
	appendfailed_gates []string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	execution          *string
	clearedexecution   bool
	done               bool
	oldValue           func(context.Context) (*GateEvaluation, error)
	predicates         []predicate.GateEvaluation
}

var _ ent.Mutation = (*GateEvaluationMutation)(nil)

// gateevaluationOption allows management of the mutation configuration using functional options.
type gateevaluationOption func(*GateEvaluationMutation)

// newGateEvaluationMutation creates new mutation for the GateEvaluation entity.
func newGateEvaluationMutation(c config, op Op, opts ...gateevaluationOption) *GateEvaluationMutation {
	m := &GateEvaluationMutation{
		config:        c,
		op:            op,
		typ:           TypeGateEvaluation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGateEvaluationID sets the ID field of the mutation.
func withGateEvaluationID(id string) gateevaluationOption {
	return func(m *GateEvaluationMutation) {
		var (
			err   error
			once  sync.Once
			value *GateEvaluation
		)
		m.oldValue = func(ctx context.Context) (*GateEvaluation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GateEvaluation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGateEvaluation sets the old GateEvaluation of the mutation.
func withGateEvaluation(node *GateEvaluation) gateevaluationOption {
	return func(m *GateEvaluationMutation) {
		m.oldValue = func(context.Context) (*GateEvaluation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GateEvaluationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GateEvaluationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GateEvaluation entities.
func (m *GateEvaluationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GateEvaluationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GateEvaluationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GateEvaluation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *GateEvaluationMutation) SetExecutionID(s string) {
	m.execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *GateEvaluationMutation) ExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the GateEvaluation entity.
// If the GateEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateEvaluationMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *GateEvaluationMutation) ResetExecutionID() {
	m.execution = nil
}

// SetWorkflowID sets the "workflow_id" field.
func (m *GateEvaluationMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *GateEvaluationMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the GateEvaluation entity.
// If the GateEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateEvaluationMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *GateEvaluationMutation) ResetWorkflowID() {
	m.workflow_id = nil
}

// SetPhase sets the "phase" field.
func (m *GateEvaluationMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *GateEvaluationMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the GateEvaluation entity.
// If the GateEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateEvaluationMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *GateEvaluationMutation) ResetPhase() {
	m.phase = nil
}

// SetKind sets the "kind" field.
func (m *GateEvaluationMutation) SetKind(ga gateevaluation.Kind) {
	m.kind = &ga
}

// Kind returns the value of the "kind" field in the mutation.
func (m *GateEvaluationMutation) Kind() (r gateevaluation.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the GateEvaluation entity.
// If the GateEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateEvaluationMutation) OldKind(ctx context.Context) (v gateevaluation.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *GateEvaluationMutation) ResetKind() {
	m.kind = nil
}

// SetPassed sets the "passed" field.
func (m *GateEvaluationMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *GateEvaluationMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the GateEvaluation entity.
// If the GateEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateEvaluationMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *GateEvaluationMutation) ResetPassed() {
	m.passed = nil
}

// SetScore sets the "score" field.
func (m *GateEvaluationMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *GateEvaluationMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the GateEvaluation entity.
// If the GateEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateEvaluationMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *GateEvaluationMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *GateEvaluationMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *GateEvaluationMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetIteration sets the "iteration" field.
func (m *GateEvaluationMutation) SetIteration(i int) {
	m.iteration = &i
	m.additeration = nil
}

// Iteration returns the value of the "iteration" field in the mutation.
func (m *GateEvaluationMutation) Iteration() (r int, exists bool) {
	v := m.iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldIteration returns the old "iteration" field's value of the GateEvaluation entity.
// If the GateEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateEvaluationMutation) OldIteration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIteration: %w", err)
	}
	return oldValue.Iteration, nil
}

// AddIteration adds i to the "iteration" field.
func (m *GateEvaluationMutation) AddIteration(i int) {
	if m.additeration != nil {
		*m.additeration += i
	} else {
		m.additeration = &i
	}
}

// AddedIteration returns the value that was added to the "iteration" field in this mutation.
func (m *GateEvaluationMutation) AddedIteration() (r int, exists bool) {
	v := m.additeration
	if v == nil {
		return
	}
	return *v, true
}

// ResetIteration resets all changes to the "iteration" field.
func (m *GateEvaluationMutation) ResetIteration() {
	m.iteration = nil
	m.additeration = nil
}

// SetFailedGates sets the "failed_gates" field.
func (m *GateEvaluationMutation) SetFailedGates(s []string) {
	m.failed_gates = &s
	m.appendfailed_gates = nil
}

// FailedGates returns the value of the "failed_gates" field in the mutation.
func (m *GateEvaluationMutation) FailedGates() (r []string, exists bool) {
	v := m.failed_gates
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedGates returns the old "failed_gates" field's value of the GateEvaluation entity.
// If the GateEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateEvaluationMutation) OldFailedGates(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedGates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedGates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedGates: %w", err)
	}
	return oldValue.FailedGates, nil
}

// AppendFailedGates adds s to the "failed_gates" field.
func (m *GateEvaluationMutation) AppendFailedGates(s []string) {
	m.appendfailed_gates = append(m.appendfailed_gates, s...)
}

// AppendedFailedGates returns the list of values that were appended to the "failed_gates" field in this mutation.
func (m *GateEvaluationMutation) AppendedFailedGates() ([]string, bool) {
	if len(m.appendfailed_gates) == 0 {
		return nil, false
	}
	return m.appendfailed_gates, true
}

// ClearFailedGates clears the value of the "failed_gates" field.
func (m *GateEvaluationMutation) ClearFailedGates() {
	m.failed_gates = nil
	m.appendfailed_gates = nil
	m.clearedFields[gateevaluation.FieldFailedGates] = struct{}{}
}

// FailedGatesCleared returns if the "failed_gates" field was cleared in this mutation.
func (m *GateEvaluationMutation) FailedGatesCleared() bool {
	_, ok := m.clearedFields[gateevaluation.FieldFailedGates]
	return ok
}

// ResetFailedGates resets all changes to the "failed_gates" field.
func (m *GateEvaluationMutation) ResetFailedGates() {
	m.failed_gates = nil
	m.appendfailed_gates = nil
	delete(m.clearedFields, gateevaluation.FieldFailedGates)
}

// SetCreatedAt sets the "created_at" field.
func (m *GateEvaluationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GateEvaluationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GateEvaluation entity.
// If the GateEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GateEvaluationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GateEvaluationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearExecution clears the "execution" edge to the WorkflowExecution entity.
func (m *GateEvaluationMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[gateevaluation.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the WorkflowExecution entity was cleared.
func (m *GateEvaluationMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *GateEvaluationMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *GateEvaluationMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the GateEvaluationMutation builder.
func (m *GateEvaluationMutation) Where(ps ...predicate.GateEvaluation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GateEvaluationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GateEvaluationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GateEvaluation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GateEvaluationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GateEvaluationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GateEvaluation).
func (m *GateEvaluationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GateEvaluationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.execution != nil {
		fields = append(fields, gateevaluation.FieldExecutionID)
	}
	if m.workflow_id != nil {
		fields = append(fields, gateevaluation.FieldWorkflowID)
	}
	if m.phase != nil {
		fields = append(fields, gateevaluation.FieldPhase)
	}
	if m.kind != nil {
		fields = append(fields, gateevaluation.FieldKind)
	}
	if m.passed != nil {
		fields = append(fields, gateevaluation.FieldPassed)
	}
	if m.score != nil {
		fields = append(fields, gateevaluation.FieldScore)
	}
	if m.iteration != nil {
		fields = append(fields, gateevaluation.FieldIteration)
	}
	if m.failed_gates != nil {
		fields = append(fields, gateevaluation.FieldFailedGates)
	}
	if m.created_at != nil {
		fields = append(fields, gateevaluation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GateEvaluationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gateevaluation.FieldExecutionID:
		return m.ExecutionID()
	case gateevaluation.FieldWorkflowID:
		return m.WorkflowID()
	case gateevaluation.FieldPhase:
		return m.Phase()
	case gateevaluation.FieldKind:
		return m.Kind()
	case gateevaluation.FieldPassed:
		return m.Passed()
	case gateevaluation.FieldScore:
		return m.Score()
	case gateevaluation.FieldIteration:
		return m.Iteration()
	case gateevaluation.FieldFailedGates:
		return m.FailedGates()
	case gateevaluation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GateEvaluationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gateevaluation.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case gateevaluation.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case gateevaluation.FieldPhase:
		return m.OldPhase(ctx)
	case gateevaluation.FieldKind:
		return m.OldKind(ctx)
	case gateevaluation.FieldPassed:
		return m.OldPassed(ctx)
	case gateevaluation.FieldScore:
		return m.OldScore(ctx)
	case gateevaluation.FieldIteration:
		return m.OldIteration(ctx)
	case gateevaluation.FieldFailedGates:
		return m.OldFailedGates(ctx)
	case gateevaluation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GateEvaluation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GateEvaluationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gateevaluation.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case gateevaluation.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case gateevaluation.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case gateevaluation.FieldKind:
		v, ok := value.(gateevaluation.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case gateevaluation.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case gateevaluation.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case gateevaluation.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIteration(v)
		return nil
	case gateevaluation.FieldFailedGates:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedGates(v)
		return nil
	case gateevaluation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GateEvaluation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GateEvaluationMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, gateevaluation.FieldScore)
	}
	if m.additeration != nil {
		fields = append(fields, gateevaluation.FieldIteration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GateEvaluationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gateevaluation.FieldScore:
		return m.AddedScore()
	case gateevaluation.FieldIteration:
		return m.AddedIteration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GateEvaluationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gateevaluation.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case gateevaluation.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIteration(v)
		return nil
	}
	return fmt.Errorf("unknown GateEvaluation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GateEvaluationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gateevaluation.FieldFailedGates) {
		fields = append(fields, gateevaluation.FieldFailedGates)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GateEvaluationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GateEvaluationMutation) ClearField(name string) error {
	switch name {
	case gateevaluation.FieldFailedGates:
		m.ClearFailedGates()
		return nil
	}
	return fmt.Errorf("unknown GateEvaluation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GateEvaluationMutation) ResetField(name string) error {
	switch name {
	case gateevaluation.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case gateevaluation.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case gateevaluation.FieldPhase:
		m.ResetPhase()
		return nil
	case gateevaluation.FieldKind:
		m.ResetKind()
		return nil
	case gateevaluation.FieldPassed:
		m.ResetPassed()
		return nil
	case gateevaluation.FieldScore:
		m.ResetScore()
		return nil
	case gateevaluation.FieldIteration:
		m.ResetIteration()
		return nil
	case gateevaluation.FieldFailedGates:
		m.ResetFailedGates()
		return nil
	case gateevaluation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GateEvaluation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GateEvaluationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, gateevaluation.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GateEvaluationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case gateevaluation.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GateEvaluationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GateEvaluationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GateEvaluationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, gateevaluation.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GateEvaluationMutation) EdgeCleared(name string) bool {
	switch name {
	case gateevaluation.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GateEvaluationMutation) ClearEdge(name string) error {
	switch name {
	case gateevaluation.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown GateEvaluation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GateEvaluationMutation) ResetEdge(name string) error {
	switch name {
	case gateevaluation.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown GateEvaluation edge %s", name)
}

// NodeExecutionMutation represents an operation that mutates the NodeExecution nodes in the graph.
type NodeExecutionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	node_id          *string
	node_type        *nodeexecution.NodeType
	phase            *string
	status           *nodeexecution.Status
	attempts         *int
	addattempts      *int
	wave             *int
	addwave          *int
	assigned_persona *string
	outputs          *map[string]string
	artifacts        *[]string
	appendartifacts  []string
	reason           *string
	started_at       *time.Time
	completed_at     *time.Time
	clearedFields    map[string]struct{}
	execution        *string
	clearedexecution bool
	done             bool
	oldValue         func(context.Context) (*NodeExecution, error)
	predicates       []predicate.NodeExecution
}

var _ ent.Mutation = (*NodeExecutionMutation)(nil)

// nodeexecutionOption allows management of the mutation configuration using functional options.
type nodeexecutionOption func(*NodeExecutionMutation)

// newNodeExecutionMutation creates new mutation for the NodeExecution entity.
func newNodeExecutionMutation(c config, op Op, opts ...nodeexecutionOption) *NodeExecutionMutation {
	m := &NodeExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeNodeExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNodeExecutionID sets the ID field of the mutation.
func withNodeExecutionID(id string) nodeexecutionOption {
	return func(m *NodeExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *NodeExecution
		)
		m.oldValue = func(ctx context.Context) (*NodeExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NodeExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNodeExecution sets the old NodeExecution of the mutation.
func withNodeExecution(node *NodeExecution) nodeexecutionOption {
	return func(m *NodeExecutionMutation) {
		m.oldValue = func(context.Context) (*NodeExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NodeExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NodeExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NodeExecution entities.
func (m *NodeExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NodeExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NodeExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NodeExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *NodeExecutionMutation) SetExecutionID(s string) {
	m.execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *NodeExecutionMutation) ExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the NodeExecution entity.
// If the NodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeExecutionMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *NodeExecutionMutation) ResetExecutionID() {
	m.execution = nil
}

// SetNodeID sets the "node_id" field.
func (m *NodeExecutionMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *NodeExecutionMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the NodeExecution entity.
// If the NodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeExecutionMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *NodeExecutionMutation) ResetNodeID() {
	m.node_id = nil
}

// SetNodeType sets the "node_type" field.
func (m *NodeExecutionMutation) SetNodeType(nt nodeexecution.NodeType) {
	m.node_type = &nt
}

// NodeType returns the value of the "node_type" field in the mutation.
func (m *NodeExecutionMutation) NodeType() (r nodeexecution.NodeType, exists bool) {
	v := m.node_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeType returns the old "node_type" field's value of the NodeExecution entity.
// If the NodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeExecutionMutation) OldNodeType(ctx context.Context) (v nodeexecution.NodeType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeType: %w", err)
	}
	return oldValue.NodeType, nil
}

// ResetNodeType resets all changes to the "node_type" field.
func (m *NodeExecutionMutation) ResetNodeType() {
	m.node_type = nil
}

// SetPhase sets the "phase" field.
func (m *NodeExecutionMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *NodeExecutionMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the NodeExecution entity.
// If the NodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeExecutionMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ClearPhase clears the value of the "phase" field.
func (m *NodeExecutionMutation) ClearPhase() {
	m.phase = nil
	m.clearedFields[nodeexecution.FieldPhase] = struct{}{}
}

// PhaseCleared returns if the "phase" field was cleared in this mutation.
func (m *NodeExecutionMutation) PhaseCleared() bool {
	_, ok := m.clearedFields[nodeexecution.FieldPhase]
	return ok
}

// ResetPhase resets all changes to the "phase" field.
func (m *NodeExecutionMutation) ResetPhase() {
	m.phase = nil
	delete(m.clearedFields, nodeexecution.FieldPhase)
}

// SetStatus sets the "status" field.
func (m *NodeExecutionMutation) SetStatus(n nodeexecution.Status) {
	m.status = &n
}

// Status returns the value of the "status" field in the mutation.
func (m *NodeExecutionMutation) Status() (r nodeexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the NodeExecution entity.
// If the NodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeExecutionMutation) OldStatus(ctx context.Context) (v nodeexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *NodeExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *NodeExecutionMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *NodeExecutionMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the NodeExecution entity.
// If the NodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeExecutionMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *NodeExecutionMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *NodeExecutionMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *NodeExecutionMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetWave sets the "wave" field.
func (m *NodeExecutionMutation) SetWave(i int) {
	m.wave = &i
	m.addwave = nil
}

// Wave returns the value of the "wave" field in the mutation.
func (m *NodeExecutionMutation) Wave() (r int, exists bool) {
	v := m.wave
	if v == nil {
		return
	}
	return *v, true
}

// OldWave returns the old "wave" field's value of the NodeExecution entity.
// If the NodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeExecutionMutation) OldWave(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWave is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWave requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWave: %w", err)
	}
	return oldValue.Wave, nil
}

// AddWave adds i to the "wave" field.
func (m *NodeExecutionMutation) AddWave(i int) {
	if m.addwave != nil {
		*m.addwave += i
	} else {
		m.addwave = &i
	}
}

// AddedWave returns the value that was added to the "wave" field in this mutation.
func (m *NodeExecutionMutation) AddedWave() (r int, exists bool) {
	v := m.addwave
	if v == nil {
		return
	}
	return *v, true
}

// ResetWave resets all changes to the "wave" field.
func (m *NodeExecutionMutation) ResetWave() {
	m.wave = nil
	m.addwave = nil
}

// SetAssignedPersona sets the "assigned_persona" field.
func (m *NodeExecutionMutation) SetAssignedPersona(s string) {
	m.assigned_persona = &s
}

// AssignedPersona returns the value of the "assigned_persona" field in the mutation.
func (m *NodeExecutionMutation) AssignedPersona() (r string, exists bool) {
	v := m.assigned_persona
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedPersona returns the old "assigned_persona" field's value of the NodeExecution entity.
// If the NodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeExecutionMutation) OldAssignedPersona(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedPersona is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedPersona requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedPersona: %w", err)
	}
	return oldValue.AssignedPersona, nil
}

// ClearAssignedPersona clears the value of the "assigned_persona" field.
func (m *NodeExecutionMutation) ClearAssignedPersona() {
	m.assigned_persona = nil
	m.clearedFields[nodeexecution.FieldAssignedPersona] = struct{}{}
}

// AssignedPersonaCleared returns if the "assigned_persona" field was cleared in this mutation.
func (m *NodeExecutionMutation) AssignedPersonaCleared() bool {
	_, ok := m.clearedFields[nodeexecution.FieldAssignedPersona]
	return ok
}

// ResetAssignedPersona resets all changes to the "assigned_persona" field.
func (m *NodeExecutionMutation) ResetAssignedPersona() {
	m.assigned_persona = nil
	delete(m.clearedFields, nodeexecution.FieldAssignedPersona)
}

// SetOutputs sets the "outputs" field.
func (m *NodeExecutionMutation) SetOutputs(value map[string]string) {
	m.outputs = &value
}

// Outputs returns the value of the "outputs" field in the mutation.
func (m *NodeExecutionMutation) Outputs() (r map[string]string, exists bool) {
	v := m.outputs
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputs returns the old "outputs" field's value of the NodeExecution entity.
// If the NodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeExecutionMutation) OldOutputs(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputs: %w", err)
	}
	return oldValue.Outputs, nil
}

// ClearOutputs clears the value of the "outputs" field.
func (m *NodeExecutionMutation) ClearOutputs() {
	m.outputs = nil
	m.clearedFields[nodeexecution.FieldOutputs] = struct{}{}
}

// OutputsCleared returns if the "outputs" field was cleared in this mutation.
func (m *NodeExecutionMutation) OutputsCleared() bool {
	_, ok := m.clearedFields[nodeexecution.FieldOutputs]
	return ok
}

// ResetOutputs resets all changes to the "outputs" field.
func (m *NodeExecutionMutation) ResetOutputs() {
	m.outputs = nil
	delete(m.clearedFields, nodeexecution.FieldOutputs)
}

// SetArtifacts sets the "artifacts" field.
func (m *NodeExecutionMutation) SetArtifacts(s []string) {
	m.artifacts = &s
	m.appendartifacts = nil
}

// Artifacts returns the value of the "artifacts" field in the mutation.
func (m *NodeExecutionMutation) Artifacts() (r []string, exists bool) {
	v := m.artifacts
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifacts returns the old "artifacts" field's value of the NodeExecution entity.
// If the NodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeExecutionMutation) OldArtifacts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifacts: %w", err)
	}
	return oldValue.Artifacts, nil
}

// AppendArtifacts adds s to the "artifacts" field.
func (m *NodeExecutionMutation) AppendArtifacts(s []string) {
	m.appendartifacts = append(m.appendartifacts, s...)
}

// AppendedArtifacts returns the list of values that were appended to the "artifacts" field in this mutation.
func (m *NodeExecutionMutation) AppendedArtifacts() ([]string, bool) {
	if len(m.appendartifacts) == 0 {
		return nil, false
	}
	return m.appendartifacts, true
}

// ClearArtifacts clears the value of the "artifacts" field.
func (m *NodeExecutionMutation) ClearArtifacts() {
	m.artifacts = nil
	m.appendartifacts = nil
	m.clearedFields[nodeexecution.FieldArtifacts] = struct{}{}
}

// ArtifactsCleared returns if the "artifacts" field was cleared in this mutation.
func (m *NodeExecutionMutation) ArtifactsCleared() bool {
	_, ok := m.clearedFields[nodeexecution.FieldArtifacts]
	return ok
}

// ResetArtifacts resets all changes to the "artifacts" field.
func (m *NodeExecutionMutation) ResetArtifacts() {
	m.artifacts = nil
	m.appendartifacts = nil
	delete(m.clearedFields, nodeexecution.FieldArtifacts)
}

// SetReason sets the "reason" field.
func (m *NodeExecutionMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *NodeExecutionMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the NodeExecution entity.
// If the NodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeExecutionMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *NodeExecutionMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[nodeexecution.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *NodeExecutionMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[nodeexecution.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *NodeExecutionMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, nodeexecution.FieldReason)
}

// SetStartedAt sets the "started_at" field.
func (m *NodeExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *NodeExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the NodeExecution entity.
// If the NodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *NodeExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[nodeexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *NodeExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[nodeexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *NodeExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, nodeexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *NodeExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *NodeExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the NodeExecution entity.
// If the NodeExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NodeExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *NodeExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[nodeexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *NodeExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[nodeexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *NodeExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, nodeexecution.FieldCompletedAt)
}

// ClearExecution clears the "execution" edge to the WorkflowExecution entity.
func (m *NodeExecutionMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[nodeexecution.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the WorkflowExecution entity was cleared.
func (m *NodeExecutionMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *NodeExecutionMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *NodeExecutionMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the NodeExecutionMutation builder.
func (m *NodeExecutionMutation) Where(ps ...predicate.NodeExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NodeExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NodeExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NodeExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NodeExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NodeExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NodeExecution).
func (m *NodeExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NodeExecutionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.execution != nil {
		fields = append(fields, nodeexecution.FieldExecutionID)
	}
	if m.node_id != nil {
		fields = append(fields, nodeexecution.FieldNodeID)
	}
	if m.node_type != nil {
		fields = append(fields, nodeexecution.FieldNodeType)
	}
	if m.phase != nil {
		fields = append(fields, nodeexecution.FieldPhase)
	}
	if m.status != nil {
		fields = append(fields, nodeexecution.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, nodeexecution.FieldAttempts)
	}
	if m.wave != nil {
		fields = append(fields, nodeexecution.FieldWave)
	}
	if m.assigned_persona != nil {
		fields = append(fields, nodeexecution.FieldAssignedPersona)
	}
	if m.outputs != nil {
		fields = append(fields, nodeexecution.FieldOutputs)
	}
	if m.artifacts != nil {
		fields = append(fields, nodeexecution.FieldArtifacts)
	}
	if m.reason != nil {
		fields = append(fields, nodeexecution.FieldReason)
	}
	if m.started_at != nil {
		fields = append(fields, nodeexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, nodeexecution.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NodeExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case nodeexecution.FieldExecutionID:
		return m.ExecutionID()
	case nodeexecution.FieldNodeID:
		return m.NodeID()
	case nodeexecution.FieldNodeType:
		return m.NodeType()
	case nodeexecution.FieldPhase:
		return m.Phase()
	case nodeexecution.FieldStatus:
		return m.Status()
	case nodeexecution.FieldAttempts:
		return m.Attempts()
	case nodeexecution.FieldWave:
		return m.Wave()
	case nodeexecution.FieldAssignedPersona:
		return m.AssignedPersona()
	case nodeexecution.FieldOutputs:
		return m.Outputs()
	case nodeexecution.FieldArtifacts:
		return m.Artifacts()
	case nodeexecution.FieldReason:
		return m.Reason()
	case nodeexecution.FieldStartedAt:
		return m.StartedAt()
	case nodeexecution.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NodeExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case nodeexecution.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case nodeexecution.FieldNodeID:
		return m.OldNodeID(ctx)
	case nodeexecution.FieldNodeType:
		return m.OldNodeType(ctx)
	case nodeexecution.FieldPhase:
		return m.OldPhase(ctx)
	case nodeexecution.FieldStatus:
		return m.OldStatus(ctx)
	case nodeexecution.FieldAttempts:
		return m.OldAttempts(ctx)
	case nodeexecution.FieldWave:
		return m.OldWave(ctx)
	case nodeexecution.FieldAssignedPersona:
		return m.OldAssignedPersona(ctx)
	case nodeexecution.FieldOutputs:
		return m.OldOutputs(ctx)
	case nodeexecution.FieldArtifacts:
		return m.OldArtifacts(ctx)
	case nodeexecution.FieldReason:
		return m.OldReason(ctx)
	case nodeexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case nodeexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NodeExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NodeExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case nodeexecution.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case nodeexecution.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case nodeexecution.FieldNodeType:
		v, ok := value.(nodeexecution.NodeType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeType(v)
		return nil
	case nodeexecution.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case nodeexecution.FieldStatus:
		v, ok := value.(nodeexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case nodeexecution.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case nodeexecution.FieldWave:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWave(v)
		return nil
	case nodeexecution.FieldAssignedPersona:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedPersona(v)
		return nil
	case nodeexecution.FieldOutputs:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputs(v)
		return nil
	case nodeexecution.FieldArtifacts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifacts(v)
		return nil
	case nodeexecution.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case nodeexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case nodeexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NodeExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NodeExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, nodeexecution.FieldAttempts)
	}
	if m.addwave != nil {
		fields = append(fields, nodeexecution.FieldWave)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NodeExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case nodeexecution.FieldAttempts:
		return m.AddedAttempts()
	case nodeexecution.FieldWave:
		return m.AddedWave()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NodeExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case nodeexecution.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case nodeexecution.FieldWave:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWave(v)
		return nil
	}
	return fmt.Errorf("unknown NodeExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NodeExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(nodeexecution.FieldPhase) {
		fields = append(fields, nodeexecution.FieldPhase)
	}
	if m.FieldCleared(nodeexecution.FieldAssignedPersona) {
		fields = append(fields, nodeexecution.FieldAssignedPersona)
	}
	if m.FieldCleared(nodeexecution.FieldOutputs) {
		fields = append(fields, nodeexecution.FieldOutputs)
	}
	if m.FieldCleared(nodeexecution.FieldArtifacts) {
		fields = append(fields, nodeexecution.FieldArtifacts)
	}
	if m.FieldCleared(nodeexecution.FieldReason) {
		fields = append(fields, nodeexecution.FieldReason)
	}
	if m.FieldCleared(nodeexecution.FieldStartedAt) {
		fields = append(fields, nodeexecution.FieldStartedAt)
	}
	if m.FieldCleared(nodeexecution.FieldCompletedAt) {
		fields = append(fields, nodeexecution.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NodeExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NodeExecutionMutation) ClearField(name string) error {
	switch name {
	case nodeexecution.FieldPhase:
		m.ClearPhase()
		return nil
	case nodeexecution.FieldAssignedPersona:
		m.ClearAssignedPersona()
		return nil
	case nodeexecution.FieldOutputs:
		m.ClearOutputs()
		return nil
	case nodeexecution.FieldArtifacts:
		m.ClearArtifacts()
		return nil
	case nodeexecution.FieldReason:
		m.ClearReason()
		return nil
	case nodeexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case nodeexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown NodeExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NodeExecutionMutation) ResetField(name string) error {
	switch name {
	case nodeexecution.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case nodeexecution.FieldNodeID:
		m.ResetNodeID()
		return nil
	case nodeexecution.FieldNodeType:
		m.ResetNodeType()
		return nil
	case nodeexecution.FieldPhase:
		m.ResetPhase()
		return nil
	case nodeexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case nodeexecution.FieldAttempts:
		m.ResetAttempts()
		return nil
	case nodeexecution.FieldWave:
		m.ResetWave()
		return nil
	case nodeexecution.FieldAssignedPersona:
		m.ResetAssignedPersona()
		return nil
	case nodeexecution.FieldOutputs:
		m.ResetOutputs()
		return nil
	case nodeexecution.FieldArtifacts:
		m.ResetArtifacts()
		return nil
	case nodeexecution.FieldReason:
		m.ResetReason()
		return nil
	case nodeexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case nodeexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown NodeExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NodeExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, nodeexecution.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NodeExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case nodeexecution.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NodeExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NodeExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NodeExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, nodeexecution.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NodeExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case nodeexecution.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NodeExecutionMutation) ClearEdge(name string) error {
	switch name {
	case nodeexecution.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown NodeExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NodeExecutionMutation) ResetEdge(name string) error {
	switch name {
	case nodeexecution.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown NodeExecution edge %s", name)
}

// WorkflowExecutionMutation represents an operation that mutates the WorkflowExecution nodes in the graph.
type WorkflowExecutionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	workflow_id             *string
	requirement             *string
	status                  *workflowexecution.Status
	current_phase           *string
	output_dir              *string
	total_nodes             *int
	addtotal_nodes          *int
	completed_nodes         *int
	addcompleted_nodes      *int
	constraints             *map[string]string
	requested_by            *string
	error_message           *string
	pod_id                  *string
	last_interaction_at     *time.Time
	created_at              *time.Time
	started_at              *time.Time
	completed_at            *time.Time
	deleted_at              *time.Time
	clearedFields           map[string]struct{}
	node_executions         map[string]struct{}
	removednode_executions  map[string]struct{}
	clearednode_executions  bool
	gate_evaluations        map[string]struct{}
	removedgate_evaluations map[string]struct{}
	clearedgate_evaluations bool
	done                    bool
	oldValue                func(context.Context) (*WorkflowExecution, error)
	predicates              []predicate.WorkflowExecution
}

var _ ent.Mutation = (*WorkflowExecutionMutation)(nil)

// workflowexecutionOption allows management of the mutation configuration using functional options.
type workflowexecutionOption func(*WorkflowExecutionMutation)

// newWorkflowExecutionMutation creates new mutation for the WorkflowExecution entity.
func newWorkflowExecutionMutation(c config, op Op, opts ...workflowexecutionOption) *WorkflowExecutionMutation {
	m := &WorkflowExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowExecutionID sets the ID field of the mutation.
func withWorkflowExecutionID(id string) workflowexecutionOption {
	return func(m *WorkflowExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowExecution
		)
		m.oldValue = func(ctx context.Context) (*WorkflowExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowExecution sets the old WorkflowExecution of the mutation.
func withWorkflowExecution(node *WorkflowExecution) workflowexecutionOption {
	return func(m *WorkflowExecutionMutation) {
		m.oldValue = func(context.Context) (*WorkflowExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowExecution entities.
func (m *WorkflowExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *WorkflowExecutionMutation) SetWorkflowID(s string) {
	m.workflow_id = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *WorkflowExecutionMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *WorkflowExecutionMutation) ResetWorkflowID() {
	m.workflow_id = nil
}

// SetRequirement sets the "requirement" field.
func (m *WorkflowExecutionMutation) SetRequirement(s string) {
	m.requirement = &s
}

// Requirement returns the value of the "requirement" field in the mutation.
func (m *WorkflowExecutionMutation) Requirement() (r string, exists bool) {
	v := m.requirement
	if v == nil {
		return
	}
	return *v, true
}

// OldRequirement returns the old "requirement" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldRequirement(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequirement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequirement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequirement: %w", err)
	}
	return oldValue.Requirement, nil
}

// ResetRequirement resets all changes to the "requirement" field.
func (m *WorkflowExecutionMutation) ResetRequirement() {
	m.requirement = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowExecutionMutation) SetStatus(w workflowexecution.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowExecutionMutation) Status() (r workflowexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStatus(ctx context.Context) (v workflowexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentPhase sets the "current_phase" field.
func (m *WorkflowExecutionMutation) SetCurrentPhase(s string) {
	m.current_phase = &s
}

// CurrentPhase returns the value of the "current_phase" field in the mutation.
func (m *WorkflowExecutionMutation) CurrentPhase() (r string, exists bool) {
	v := m.current_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPhase returns the old "current_phase" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCurrentPhase(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPhase: %w", err)
	}
	return oldValue.CurrentPhase, nil
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (m *WorkflowExecutionMutation) ClearCurrentPhase() {
	m.current_phase = nil
	m.clearedFields[workflowexecution.FieldCurrentPhase] = struct{}{}
}

// CurrentPhaseCleared returns if the "current_phase" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) CurrentPhaseCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldCurrentPhase]
	return ok
}

// ResetCurrentPhase resets all changes to the "current_phase" field.
func (m *WorkflowExecutionMutation) ResetCurrentPhase() {
	m.current_phase = nil
	delete(m.clearedFields, workflowexecution.FieldCurrentPhase)
}

// SetOutputDir sets the "output_dir" field.
func (m *WorkflowExecutionMutation) SetOutputDir(s string) {
	m.output_dir = &s
}

// OutputDir returns the value of the "output_dir" field in the mutation.
func (m *WorkflowExecutionMutation) OutputDir() (r string, exists bool) {
	v := m.output_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputDir returns the old "output_dir" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldOutputDir(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputDir: %w", err)
	}
	return oldValue.OutputDir, nil
}

// ClearOutputDir clears the value of the "output_dir" field.
func (m *WorkflowExecutionMutation) ClearOutputDir() {
	m.output_dir = nil
	m.clearedFields[workflowexecution.FieldOutputDir] = struct{}{}
}

// OutputDirCleared returns if the "output_dir" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) OutputDirCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldOutputDir]
	return ok
}

// ResetOutputDir resets all changes to the "output_dir" field.
func (m *WorkflowExecutionMutation) ResetOutputDir() {
	m.output_dir = nil
	delete(m.clearedFields, workflowexecution.FieldOutputDir)
}

// SetTotalNodes sets the "total_nodes" field.
func (m *WorkflowExecutionMutation) SetTotalNodes(i int) {
	m.total_nodes = &i
	m.addtotal_nodes = nil
}

// TotalNodes returns the value of the "total_nodes" field in the mutation.
func (m *WorkflowExecutionMutation) TotalNodes() (r int, exists bool) {
	v := m.total_nodes
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalNodes returns the old "total_nodes" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldTotalNodes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalNodes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalNodes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalNodes: %w", err)
	}
	return oldValue.TotalNodes, nil
}

// AddTotalNodes adds i to the "total_nodes" field.
func (m *WorkflowExecutionMutation) AddTotalNodes(i int) {
	if m.addtotal_nodes != nil {
		*m.addtotal_nodes += i
	} else {
		m.addtotal_nodes = &i
	}
}

// AddedTotalNodes returns the value that was added to the "total_nodes" field in this mutation.
func (m *WorkflowExecutionMutation) AddedTotalNodes() (r int, exists bool) {
	v := m.addtotal_nodes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalNodes resets all changes to the "total_nodes" field.
func (m *WorkflowExecutionMutation) ResetTotalNodes() {
	m.total_nodes = nil
	m.addtotal_nodes = nil
}

// SetCompletedNodes sets the "completed_nodes" field.
func (m *WorkflowExecutionMutation) SetCompletedNodes(i int) {
	m.completed_nodes = &i
	m.addcompleted_nodes = nil
}

// CompletedNodes returns the value of the "completed_nodes" field in the mutation.
func (m *WorkflowExecutionMutation) CompletedNodes() (r int, exists bool) {
	v := m.completed_nodes
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedNodes returns the old "completed_nodes" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCompletedNodes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedNodes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedNodes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedNodes: %w", err)
	}
	return oldValue.CompletedNodes, nil
}

// AddCompletedNodes adds i to the "completed_nodes" field.
func (m *WorkflowExecutionMutation) AddCompletedNodes(i int) {
	if m.addcompleted_nodes != nil {
		*m.addcompleted_nodes += i
	} else {
		m.addcompleted_nodes = &i
	}
}

// AddedCompletedNodes returns the value that was added to the "completed_nodes" field in this mutation.
func (m *WorkflowExecutionMutation) AddedCompletedNodes() (r int, exists bool) {
	v := m.addcompleted_nodes
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedNodes resets all changes to the "completed_nodes" field.
func (m *WorkflowExecutionMutation) ResetCompletedNodes() {
	m.completed_nodes = nil
	m.addcompleted_nodes = nil
}

// SetConstraints sets the "constraints" field.
func (m *WorkflowExecutionMutation) SetConstraints(value map[string]string) {
	m.constraints = &value
}

// Constraints returns the value of the "constraints" field in the mutation.
func (m *WorkflowExecutionMutation) Constraints() (r map[string]string, exists bool) {
	v := m.constraints
	if v == nil {
		return
	}
	return *v, true
}

// OldConstraints returns the old "constraints" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldConstraints(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstraints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstraints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstraints: %w", err)
	}
	return oldValue.Constraints, nil
}

// ClearConstraints clears the value of the "constraints" field.
func (m *WorkflowExecutionMutation) ClearConstraints() {
	m.constraints = nil
	m.clearedFields[workflowexecution.FieldConstraints] = struct{}{}
}

// ConstraintsCleared returns if the "constraints" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) ConstraintsCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldConstraints]
	return ok
}

// ResetConstraints resets all changes to the "constraints" field.
func (m *WorkflowExecutionMutation) ResetConstraints() {
	m.constraints = nil
	delete(m.clearedFields, workflowexecution.FieldConstraints)
}

// SetRequestedBy sets the "requested_by" field.
func (m *WorkflowExecutionMutation) SetRequestedBy(s string) {
	m.requested_by = &s
}

// RequestedBy returns the value of the "requested_by" field in the mutation.
func (m *WorkflowExecutionMutation) RequestedBy() (r string, exists bool) {
	v := m.requested_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedBy returns the old "requested_by" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldRequestedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedBy: %w", err)
	}
	return oldValue.RequestedBy, nil
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (m *WorkflowExecutionMutation) ClearRequestedBy() {
	m.requested_by = nil
	m.clearedFields[workflowexecution.FieldRequestedBy] = struct{}{}
}

// RequestedByCleared returns if the "requested_by" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) RequestedByCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldRequestedBy]
	return ok
}

// ResetRequestedBy resets all changes to the "requested_by" field.
func (m *WorkflowExecutionMutation) ResetRequestedBy() {
	m.requested_by = nil
	delete(m.clearedFields, workflowexecution.FieldRequestedBy)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflowexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflowexecution.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *WorkflowExecutionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *WorkflowExecutionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *WorkflowExecutionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[workflowexecution.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *WorkflowExecutionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, workflowexecution.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *WorkflowExecutionMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *WorkflowExecutionMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *WorkflowExecutionMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[workflowexecution.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *WorkflowExecutionMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, workflowexecution.FieldLastInteractionAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *WorkflowExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WorkflowExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WorkflowExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[workflowexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WorkflowExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, workflowexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflowexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflowexecution.FieldCompletedAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *WorkflowExecutionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *WorkflowExecutionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *WorkflowExecutionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[workflowexecution.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *WorkflowExecutionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, workflowexecution.FieldDeletedAt)
}

// AddNodeExecutionIDs adds the "node_executions" edge to the NodeExecution entity by ids.
func (m *WorkflowExecutionMutation) AddNodeExecutionIDs(ids ...string) {
	if m.node_executions == nil {
		m.node_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.node_executions[ids[i]] = struct{}{}
	}
}

// ClearNodeExecutions clears the "node_executions" edge to the NodeExecution entity.
func (m *WorkflowExecutionMutation) ClearNodeExecutions() {
	m.clearednode_executions = true
}

// NodeExecutionsCleared reports if the "node_executions" edge to the NodeExecution entity was cleared.
func (m *WorkflowExecutionMutation) NodeExecutionsCleared() bool {
	return m.clearednode_executions
}

// RemoveNodeExecutionIDs removes the "node_executions" edge to the NodeExecution entity by IDs.
func (m *WorkflowExecutionMutation) RemoveNodeExecutionIDs(ids ...string) {
	if m.removednode_executions == nil {
		m.removednode_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.node_executions, ids[i])
		m.removednode_executions[ids[i]] = struct{}{}
	}
}

// RemovedNodeExecutions returns the removed IDs of the "node_executions" edge to the NodeExecution entity.
func (m *WorkflowExecutionMutation) RemovedNodeExecutionsIDs() (ids []string) {
	for id := range m.removednode_executions {
		ids = append(ids, id)
	}
	return
}

// NodeExecutionsIDs returns the "node_executions" edge IDs in the mutation.
func (m *WorkflowExecutionMutation) NodeExecutionsIDs() (ids []string) {
	for id := range m.node_executions {
		ids = append(ids, id)
	}
	return
}

// ResetNodeExecutions resets all changes to the "node_executions" edge.
func (m *WorkflowExecutionMutation) ResetNodeExecutions() {
	m.node_executions = nil
	m.clearednode_executions = false
	m.removednode_executions = nil
}

// AddGateEvaluationIDs adds the "gate_evaluations" edge to the GateEvaluation entity by ids.
func (m *WorkflowExecutionMutation) AddGateEvaluationIDs(ids ...string) {
	if m.gate_evaluations == nil {
		m.gate_evaluations = make(map[string]struct{})
	}
	for i := range ids {
		m.gate_evaluations[ids[i]] = struct{}{}
	}
}

// ClearGateEvaluations clears the "gate_evaluations" edge to the GateEvaluation entity.
func (m *WorkflowExecutionMutation) ClearGateEvaluations() {
	m.clearedgate_evaluations = true
}

// GateEvaluationsCleared reports if the "gate_evaluations" edge to the GateEvaluation entity was cleared.
func (m *WorkflowExecutionMutation) GateEvaluationsCleared() bool {
	return m.clearedgate_evaluations
}

// RemoveGateEvaluationIDs removes the "gate_evaluations" edge to the GateEvaluation entity by IDs.
func (m *WorkflowExecutionMutation) RemoveGateEvaluationIDs(ids ...string) {
	if m.removedgate_evaluations == nil {
		m.removedgate_evaluations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.gate_evaluations, ids[i])
		m.removedgate_evaluations[ids[i]] = struct{}{}
	}
}

// RemovedGateEvaluations returns the removed IDs of the "gate_evaluations" edge to the GateEvaluation entity.
func (m *WorkflowExecutionMutation) RemovedGateEvaluationsIDs() (ids []string) {
	for id := range m.removedgate_evaluations {
		ids = append(ids, id)
	}
	return
}

// GateEvaluationsIDs returns the "gate_evaluations" edge IDs in the mutation.
func (m *WorkflowExecutionMutation) GateEvaluationsIDs() (ids []string) {
	for id := range m.gate_evaluations {
		ids = append(ids, id)
	}
	return
}

// ResetGateEvaluations resets all changes to the "gate_evaluations" edge.
func (m *WorkflowExecutionMutation) ResetGateEvaluations() {
	m.gate_evaluations = nil
	m.clearedgate_evaluations = false
	m.removedgate_evaluations = nil
}

// Where appends a list predicates to the WorkflowExecutionMutation builder.
func (m *WorkflowExecutionMutation) Where(ps ...predicate.WorkflowExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowExecution).
func (m *WorkflowExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowExecutionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.workflow_id != nil {
		fields = append(fields, workflowexecution.FieldWorkflowID)
	}
	if m.requirement != nil {
		fields = append(fields, workflowexecution.FieldRequirement)
	}
	if m.status != nil {
		fields = append(fields, workflowexecution.FieldStatus)
	}
	if m.current_phase != nil {
		fields = append(fields, workflowexecution.FieldCurrentPhase)
	}
	if m.output_dir != nil {
		fields = append(fields, workflowexecution.FieldOutputDir)
	}
	if m.total_nodes != nil {
		fields = append(fields, workflowexecution.FieldTotalNodes)
	}
	if m.completed_nodes != nil {
		fields = append(fields, workflowexecution.FieldCompletedNodes)
	}
	if m.constraints != nil {
		fields = append(fields, workflowexecution.FieldConstraints)
	}
	if m.requested_by != nil {
		fields = append(fields, workflowexecution.FieldRequestedBy)
	}
	if m.error_message != nil {
		fields = append(fields, workflowexecution.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, workflowexecution.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, workflowexecution.FieldLastInteractionAt)
	}
	if m.created_at != nil {
		fields = append(fields, workflowexecution.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, workflowexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflowexecution.FieldCompletedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, workflowexecution.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowexecution.FieldWorkflowID:
		return m.WorkflowID()
	case workflowexecution.FieldRequirement:
		return m.Requirement()
	case workflowexecution.FieldStatus:
		return m.Status()
	case workflowexecution.FieldCurrentPhase:
		return m.CurrentPhase()
	case workflowexecution.FieldOutputDir:
		return m.OutputDir()
	case workflowexecution.FieldTotalNodes:
		return m.TotalNodes()
	case workflowexecution.FieldCompletedNodes:
		return m.CompletedNodes()
	case workflowexecution.FieldConstraints:
		return m.Constraints()
	case workflowexecution.FieldRequestedBy:
		return m.RequestedBy()
	case workflowexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case workflowexecution.FieldPodID:
		return m.PodID()
	case workflowexecution.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case workflowexecution.FieldCreatedAt:
		return m.CreatedAt()
	case workflowexecution.FieldStartedAt:
		return m.StartedAt()
	case workflowexecution.FieldCompletedAt:
		return m.CompletedAt()
	case workflowexecution.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowexecution.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case workflowexecution.FieldRequirement:
		return m.OldRequirement(ctx)
	case workflowexecution.FieldStatus:
		return m.OldStatus(ctx)
	case workflowexecution.FieldCurrentPhase:
		return m.OldCurrentPhase(ctx)
	case workflowexecution.FieldOutputDir:
		return m.OldOutputDir(ctx)
	case workflowexecution.FieldTotalNodes:
		return m.OldTotalNodes(ctx)
	case workflowexecution.FieldCompletedNodes:
		return m.OldCompletedNodes(ctx)
	case workflowexecution.FieldConstraints:
		return m.OldConstraints(ctx)
	case workflowexecution.FieldRequestedBy:
		return m.OldRequestedBy(ctx)
	case workflowexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflowexecution.FieldPodID:
		return m.OldPodID(ctx)
	case workflowexecution.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case workflowexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case workflowexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case workflowexecution.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowexecution.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case workflowexecution.FieldRequirement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequirement(v)
		return nil
	case workflowexecution.FieldStatus:
		v, ok := value.(workflowexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowexecution.FieldCurrentPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPhase(v)
		return nil
	case workflowexecution.FieldOutputDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputDir(v)
		return nil
	case workflowexecution.FieldTotalNodes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalNodes(v)
		return nil
	case workflowexecution.FieldCompletedNodes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedNodes(v)
		return nil
	case workflowexecution.FieldConstraints:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstraints(v)
		return nil
	case workflowexecution.FieldRequestedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedBy(v)
		return nil
	case workflowexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflowexecution.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case workflowexecution.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case workflowexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case workflowexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case workflowexecution.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_nodes != nil {
		fields = append(fields, workflowexecution.FieldTotalNodes)
	}
	if m.addcompleted_nodes != nil {
		fields = append(fields, workflowexecution.FieldCompletedNodes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowexecution.FieldTotalNodes:
		return m.AddedTotalNodes()
	case workflowexecution.FieldCompletedNodes:
		return m.AddedCompletedNodes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowexecution.FieldTotalNodes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalNodes(v)
		return nil
	case workflowexecution.FieldCompletedNodes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedNodes(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowexecution.FieldCurrentPhase) {
		fields = append(fields, workflowexecution.FieldCurrentPhase)
	}
	if m.FieldCleared(workflowexecution.FieldOutputDir) {
		fields = append(fields, workflowexecution.FieldOutputDir)
	}
	if m.FieldCleared(workflowexecution.FieldConstraints) {
		fields = append(fields, workflowexecution.FieldConstraints)
	}
	if m.FieldCleared(workflowexecution.FieldRequestedBy) {
		fields = append(fields, workflowexecution.FieldRequestedBy)
	}
	if m.FieldCleared(workflowexecution.FieldErrorMessage) {
		fields = append(fields, workflowexecution.FieldErrorMessage)
	}
	if m.FieldCleared(workflowexecution.FieldPodID) {
		fields = append(fields, workflowexecution.FieldPodID)
	}
	if m.FieldCleared(workflowexecution.FieldLastInteractionAt) {
		fields = append(fields, workflowexecution.FieldLastInteractionAt)
	}
	if m.FieldCleared(workflowexecution.FieldStartedAt) {
		fields = append(fields, workflowexecution.FieldStartedAt)
	}
	if m.FieldCleared(workflowexecution.FieldCompletedAt) {
		fields = append(fields, workflowexecution.FieldCompletedAt)
	}
	if m.FieldCleared(workflowexecution.FieldDeletedAt) {
		fields = append(fields, workflowexecution.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowExecutionMutation) ClearField(name string) error {
	switch name {
	case workflowexecution.FieldCurrentPhase:
		m.ClearCurrentPhase()
		return nil
	case workflowexecution.FieldOutputDir:
		m.ClearOutputDir()
		return nil
	case workflowexecution.FieldConstraints:
		m.ClearConstraints()
		return nil
	case workflowexecution.FieldRequestedBy:
		m.ClearRequestedBy()
		return nil
	case workflowexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case workflowexecution.FieldPodID:
		m.ClearPodID()
		return nil
	case workflowexecution.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case workflowexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case workflowexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case workflowexecution.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowExecutionMutation) ResetField(name string) error {
	switch name {
	case workflowexecution.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case workflowexecution.FieldRequirement:
		m.ResetRequirement()
		return nil
	case workflowexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowexecution.FieldCurrentPhase:
		m.ResetCurrentPhase()
		return nil
	case workflowexecution.FieldOutputDir:
		m.ResetOutputDir()
		return nil
	case workflowexecution.FieldTotalNodes:
		m.ResetTotalNodes()
		return nil
	case workflowexecution.FieldCompletedNodes:
		m.ResetCompletedNodes()
		return nil
	case workflowexecution.FieldConstraints:
		m.ResetConstraints()
		return nil
	case workflowexecution.FieldRequestedBy:
		m.ResetRequestedBy()
		return nil
	case workflowexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflowexecution.FieldPodID:
		m.ResetPodID()
		return nil
	case workflowexecution.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case workflowexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case workflowexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case workflowexecution.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.node_executions != nil {
		edges = append(edges, workflowexecution.EdgeNodeExecutions)
	}
	if m.gate_evaluations != nil {
		edges = append(edges, workflowexecution.EdgeGateEvaluations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowexecution.EdgeNodeExecutions:
		ids := make([]ent.Value, 0, len(m.node_executions))
		for id := range m.node_executions {
			ids = append(ids, id)
		}
		return ids
	case workflowexecution.EdgeGateEvaluations:
		ids := make([]ent.Value, 0, len(m.gate_evaluations))
		for id := range m.gate_evaluations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removednode_executions != nil {
		edges = append(edges, workflowexecution.EdgeNodeExecutions)
	}
	if m.removedgate_evaluations != nil {
		edges = append(edges, workflowexecution.EdgeGateEvaluations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflowexecution.EdgeNodeExecutions:
		ids := make([]ent.Value, 0, len(m.removednode_executions))
		for id := range m.removednode_executions {
			ids = append(ids, id)
		}
		return ids
	case workflowexecution.EdgeGateEvaluations:
		ids := make([]ent.Value, 0, len(m.removedgate_evaluations))
		for id := range m.removedgate_evaluations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearednode_executions {
		edges = append(edges, workflowexecution.EdgeNodeExecutions)
	}
	if m.clearedgate_evaluations {
		edges = append(edges, workflowexecution.EdgeGateEvaluations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowexecution.EdgeNodeExecutions:
		return m.clearednode_executions
	case workflowexecution.EdgeGateEvaluations:
		return m.clearedgate_evaluations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowExecutionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowExecutionMutation) ResetEdge(name string) error {
	switch name {
	case workflowexecution.EdgeNodeExecutions:
		m.ResetNodeExecutions()
		return nil
	case workflowexecution.EdgeGateEvaluations:
		m.ResetGateEvaluations()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution edge %s", name)
}
