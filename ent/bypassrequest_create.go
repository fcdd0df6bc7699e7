// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-works/maestro/ent/bypassrequest"
)

// BypassRequestCreate is the builder for creating a BypassRequest entity.
type BypassRequestCreate struct {
	config
	mutation *BypassRequestMutation
	hooks    []Hook
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *BypassRequestCreate) SetWorkflowID(v string) *BypassRequestCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableWorkflowID(v *string) *BypassRequestCreate {
	if v != nil {
		_c.SetWorkflowID(*v)
	}
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *BypassRequestCreate) SetExecutionID(v string) *BypassRequestCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableExecutionID(v *string) *BypassRequestCreate {
	if v != nil {
		_c.SetExecutionID(*v)
	}
	return _c
}

// SetGate sets the "gate" field.
func (_c *BypassRequestCreate) SetGate(v string) *BypassRequestCreate {
	_c.mutation.SetGate(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *BypassRequestCreate) SetPhase(v string) *BypassRequestCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetCurrentValue sets the "current_value" field.
func (_c *BypassRequestCreate) SetCurrentValue(v float64) *BypassRequestCreate {
	_c.mutation.SetCurrentValue(v)
	return _c
}

// SetNillableCurrentValue sets the "current_value" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableCurrentValue(v *float64) *BypassRequestCreate {
	if v != nil {
		_c.SetCurrentValue(*v)
	}
	return _c
}

// SetThreshold sets the "threshold" field.
func (_c *BypassRequestCreate) SetThreshold(v float64) *BypassRequestCreate {
	_c.mutation.SetThreshold(v)
	return _c
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableThreshold(v *float64) *BypassRequestCreate {
	if v != nil {
		_c.SetThreshold(*v)
	}
	return _c
}

// SetJustification sets the "justification" field.
func (_c *BypassRequestCreate) SetJustification(v string) *BypassRequestCreate {
	_c.mutation.SetJustification(v)
	return _c
}

// SetTechnicalRisk sets the "technical_risk" field.
func (_c *BypassRequestCreate) SetTechnicalRisk(v bypassrequest.TechnicalRisk) *BypassRequestCreate {
	_c.mutation.SetTechnicalRisk(v)
	return _c
}

// SetNillableTechnicalRisk sets the "technical_risk" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableTechnicalRisk(v *bypassrequest.TechnicalRisk) *BypassRequestCreate {
	if v != nil {
		_c.SetTechnicalRisk(*v)
	}
	return _c
}

// SetBusinessRisk sets the "business_risk" field.
func (_c *BypassRequestCreate) SetBusinessRisk(v bypassrequest.BusinessRisk) *BypassRequestCreate {
	_c.mutation.SetBusinessRisk(v)
	return _c
}

// SetNillableBusinessRisk sets the "business_risk" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableBusinessRisk(v *bypassrequest.BusinessRisk) *BypassRequestCreate {
	if v != nil {
		_c.SetBusinessRisk(*v)
	}
	return _c
}

// SetSecurityRisk sets the "security_risk" field.
func (_c *BypassRequestCreate) SetSecurityRisk(v bypassrequest.SecurityRisk) *BypassRequestCreate {
	_c.mutation.SetSecurityRisk(v)
	return _c
}

// SetNillableSecurityRisk sets the "security_risk" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableSecurityRisk(v *bypassrequest.SecurityRisk) *BypassRequestCreate {
	if v != nil {
		_c.SetSecurityRisk(*v)
	}
	return _c
}

// SetDuration sets the "duration" field.
func (_c *BypassRequestCreate) SetDuration(v bypassrequest.Duration) *BypassRequestCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableDuration(v *bypassrequest.Duration) *BypassRequestCreate {
	if v != nil {
		_c.SetDuration(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *BypassRequestCreate) SetExpiresAt(v time.Time) *BypassRequestCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableExpiresAt(v *time.Time) *BypassRequestCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetRemediationPlan sets the "remediation_plan" field.
func (_c *BypassRequestCreate) SetRemediationPlan(v string) *BypassRequestCreate {
	_c.mutation.SetRemediationPlan(v)
	return _c
}

// SetNillableRemediationPlan sets the "remediation_plan" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableRemediationPlan(v *string) *BypassRequestCreate {
	if v != nil {
		_c.SetRemediationPlan(*v)
	}
	return _c
}

// SetCompensatingControls sets the "compensating_controls" field.
func (_c *BypassRequestCreate) SetCompensatingControls(v []string) *BypassRequestCreate {
	_c.mutation.SetCompensatingControls(v)
	return _c
}

// SetFollowUpTasks sets the "follow_up_tasks" field.
func (_c *BypassRequestCreate) SetFollowUpTasks(v []string) *BypassRequestCreate {
	_c.mutation.SetFollowUpTasks(v)
	return _c
}

// SetRequestedBy sets the "requested_by" field.
func (_c *BypassRequestCreate) SetRequestedBy(v string) *BypassRequestCreate {
	_c.mutation.SetRequestedBy(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BypassRequestCreate) SetStatus(v bypassrequest.Status) *BypassRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableStatus(v *bypassrequest.Status) *BypassRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetApprovedBy sets the "approved_by" field.
func (_c *BypassRequestCreate) SetApprovedBy(v string) *BypassRequestCreate {
	_c.mutation.SetApprovedBy(v)
	return _c
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableApprovedBy(v *string) *BypassRequestCreate {
	if v != nil {
		_c.SetApprovedBy(*v)
	}
	return _c
}

// SetApprovalLevel sets the "approval_level" field.
func (_c *BypassRequestCreate) SetApprovalLevel(v string) *BypassRequestCreate {
	_c.mutation.SetApprovalLevel(v)
	return _c
}

// SetNillableApprovalLevel sets the "approval_level" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableApprovalLevel(v *string) *BypassRequestCreate {
	if v != nil {
		_c.SetApprovalLevel(*v)
	}
	return _c
}

// SetAdrPath sets the "adr_path" field.
func (_c *BypassRequestCreate) SetAdrPath(v string) *BypassRequestCreate {
	_c.mutation.SetAdrPath(v)
	return _c
}

// SetNillableAdrPath sets the "adr_path" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableAdrPath(v *string) *BypassRequestCreate {
	if v != nil {
		_c.SetAdrPath(*v)
	}
	return _c
}

// SetRejectionReason sets the "rejection_reason" field.
func (_c *BypassRequestCreate) SetRejectionReason(v string) *BypassRequestCreate {
	_c.mutation.SetRejectionReason(v)
	return _c
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableRejectionReason(v *string) *BypassRequestCreate {
	if v != nil {
		_c.SetRejectionReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BypassRequestCreate) SetCreatedAt(v time.Time) *BypassRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableCreatedAt(v *time.Time) *BypassRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *BypassRequestCreate) SetDecidedAt(v time.Time) *BypassRequestCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableDecidedAt(v *time.Time) *BypassRequestCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetClosedAt sets the "closed_at" field.
func (_c *BypassRequestCreate) SetClosedAt(v time.Time) *BypassRequestCreate {
	_c.mutation.SetClosedAt(v)
	return _c
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_c *BypassRequestCreate) SetNillableClosedAt(v *time.Time) *BypassRequestCreate {
	if v != nil {
		_c.SetClosedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BypassRequestCreate) SetID(v string) *BypassRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BypassRequestMutation object of the builder.
func (_c *BypassRequestCreate) Mutation() *BypassRequestMutation {
	return _c.mutation
}

// Save creates the BypassRequest in the database.
func (_c *BypassRequestCreate) Save(ctx context.Context) (*BypassRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BypassRequestCreate) SaveX(ctx context.Context) *BypassRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BypassRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BypassRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BypassRequestCreate) defaults() {
	if _, ok := _c.mutation.CurrentValue(); !ok {
		v := bypassrequest.DefaultCurrentValue
		_c.mutation.SetCurrentValue(v)
	}
	if _, ok := _c.mutation.Threshold(); !ok {
		v := bypassrequest.DefaultThreshold
		_c.mutation.SetThreshold(v)
	}
	if _, ok := _c.mutation.TechnicalRisk(); !ok {
		v := bypassrequest.DefaultTechnicalRisk
		_c.mutation.SetTechnicalRisk(v)
	}
	if _, ok := _c.mutation.BusinessRisk(); !ok {
		v := bypassrequest.DefaultBusinessRisk
		_c.mutation.SetBusinessRisk(v)
	}
	if _, ok := _c.mutation.SecurityRisk(); !ok {
		v := bypassrequest.DefaultSecurityRisk
		_c.mutation.SetSecurityRisk(v)
	}
	if _, ok := _c.mutation.Duration(); !ok {
		v := bypassrequest.DefaultDuration
		_c.mutation.SetDuration(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := bypassrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bypassrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BypassRequestCreate) check() error {
	if _, ok := _c.mutation.Gate(); !ok {
		return &ValidationError{Name: "gate", err: errors.New(`ent: missing required field "BypassRequest.gate"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "BypassRequest.phase"`)}
	}
	if _, ok := _c.mutation.CurrentValue(); !ok {
		return &ValidationError{Name: "current_value", err: errors.New(`ent: missing required field "BypassRequest.current_value"`)}
	}
	if _, ok := _c.mutation.Threshold(); !ok {
		return &ValidationError{Name: "threshold", err: errors.New(`ent: missing required field "BypassRequest.threshold"`)}
	}
	if _, ok := _c.mutation.Justification(); !ok {
		return &ValidationError{Name: "justification", err: errors.New(`ent: missing required field "BypassRequest.justification"`)}
	}
	if _, ok := _c.mutation.TechnicalRisk(); !ok {
		return &ValidationError{Name: "technical_risk", err: errors.New(`ent: missing required field "BypassRequest.technical_risk"`)}
	}
	if v, ok := _c.mutation.TechnicalRisk(); ok {
		if err := bypassrequest.TechnicalRiskValidator(v); err != nil {
			return &ValidationError{Name: "technical_risk", err: fmt.Errorf(`ent: validator failed for field "BypassRequest.technical_risk": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BusinessRisk(); !ok {
		return &ValidationError{Name: "business_risk", err: errors.New(`ent: missing required field "BypassRequest.business_risk"`)}
	}
	if v, ok := _c.mutation.BusinessRisk(); ok {
		if err := bypassrequest.BusinessRiskValidator(v); err != nil {
			return &ValidationError{Name: "business_risk", err: fmt.Errorf(`ent: validator failed for field "BypassRequest.business_risk": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SecurityRisk(); !ok {
		return &ValidationError{Name: "security_risk", err: errors.New(`ent: missing required field "BypassRequest.security_risk"`)}
	}
	if v, ok := _c.mutation.SecurityRisk(); ok {
		if err := bypassrequest.SecurityRiskValidator(v); err != nil {
			return &ValidationError{Name: "security_risk", err: fmt.Errorf(`ent: validator failed for field "BypassRequest.security_risk": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`ent: missing required field "BypassRequest.duration"`)}
	}
	if v, ok := _c.mutation.Duration(); ok {
		if err := bypassrequest.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "BypassRequest.duration": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestedBy(); !ok {
		return &ValidationError{Name: "requested_by", err: errors.New(`ent: missing required field "BypassRequest.requested_by"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BypassRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := bypassrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BypassRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BypassRequest.created_at"`)}
	}
	return nil
}

func (_c *BypassRequestCreate) sqlSave(ctx context.Context) (*BypassRequest, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected BypassRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BypassRequestCreate) createSpec() (*BypassRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &BypassRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bypassrequest.Table, sqlgraph.NewFieldSpec(bypassrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkflowID(); ok {
		_spec.SetField(bypassrequest.FieldWorkflowID, field.TypeString, value)
		_node.WorkflowID = value
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(bypassrequest.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.Gate(); ok {
		_spec.SetField(bypassrequest.FieldGate, field.TypeString, value)
		_node.Gate = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(bypassrequest.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.CurrentValue(); ok {
		_spec.SetField(bypassrequest.FieldCurrentValue, field.TypeFloat64, value)
		_node.CurrentValue = value
	}
	if value, ok := _c.mutation.Threshold(); ok {
		_spec.SetField(bypassrequest.FieldThreshold, field.TypeFloat64, value)
		_node.Threshold = value
	}
	if value, ok := _c.mutation.Justification(); ok {
		_spec.SetField(bypassrequest.FieldJustification, field.TypeString, value)
		_node.Justification = value
	}
	if value, ok := _c.mutation.TechnicalRisk(); ok {
		_spec.SetField(bypassrequest.FieldTechnicalRisk, field.TypeEnum, value)
		_node.TechnicalRisk = value
	}
	if value, ok := _c.mutation.BusinessRisk(); ok {
		_spec.SetField(bypassrequest.FieldBusinessRisk, field.TypeEnum, value)
		_node.BusinessRisk = value
	}
	if value, ok := _c.mutation.SecurityRisk(); ok {
		_spec.SetField(bypassrequest.FieldSecurityRisk, field.TypeEnum, value)
		_node.SecurityRisk = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(bypassrequest.FieldDuration, field.TypeEnum, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(bypassrequest.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.RemediationPlan(); ok {
		_spec.SetField(bypassrequest.FieldRemediationPlan, field.TypeString, value)
		_node.RemediationPlan = value
	}
	if value, ok := _c.mutation.CompensatingControls(); ok {
		_spec.SetField(bypassrequest.FieldCompensatingControls, field.TypeJSON, value)
		_node.CompensatingControls = value
	}
	if value, ok := _c.mutation.FollowUpTasks(); ok {
		_spec.SetField(bypassrequest.FieldFollowUpTasks, field.TypeJSON, value)
		_node.FollowUpTasks = value
	}
	if value, ok := _c.mutation.RequestedBy(); ok {
		_spec.SetField(bypassrequest.FieldRequestedBy, field.TypeString, value)
		_node.RequestedBy = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(bypassrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ApprovedBy(); ok {
		_spec.SetField(bypassrequest.FieldApprovedBy, field.TypeString, value)
		_node.ApprovedBy = &value
	}
	if value, ok := _c.mutation.ApprovalLevel(); ok {
		_spec.SetField(bypassrequest.FieldApprovalLevel, field.TypeString, value)
		_node.ApprovalLevel = value
	}
	if value, ok := _c.mutation.AdrPath(); ok {
		_spec.SetField(bypassrequest.FieldAdrPath, field.TypeString, value)
		_node.AdrPath = value
	}
	if value, ok := _c.mutation.RejectionReason(); ok {
		_spec.SetField(bypassrequest.FieldRejectionReason, field.TypeString, value)
		_node.RejectionReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bypassrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(bypassrequest.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	if value, ok := _c.mutation.ClosedAt(); ok {
		_spec.SetField(bypassrequest.FieldClosedAt, field.TypeTime, value)
		_node.ClosedAt = &value
	}
	return _node, _spec
}

// BypassRequestCreateBulk is the builder for creating many BypassRequest entities in bulk.
type BypassRequestCreateBulk struct {
	config
	err      error
	builders []*BypassRequestCreate
}

// Save creates the BypassRequest entities in the database.
func (_c *BypassRequestCreateBulk) Save(ctx context.Context) ([]*BypassRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BypassRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BypassRequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BypassRequestCreateBulk) SaveX(ctx context.Context) []*BypassRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BypassRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BypassRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
