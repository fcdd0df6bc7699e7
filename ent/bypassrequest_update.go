// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/maestro-works/maestro/ent/bypassrequest"
	"github.com/maestro-works/maestro/ent/predicate"
)

// BypassRequestUpdate is the builder for updating BypassRequest entities.
type BypassRequestUpdate struct {
	config
	hooks    []Hook
	mutation *BypassRequestMutation
}

// Where appends a list predicates to the BypassRequestUpdate builder.
func (_u *BypassRequestUpdate) Where(ps ...predicate.BypassRequest) *BypassRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *BypassRequestUpdate) SetWorkflowID(v string) *BypassRequestUpdate {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableWorkflowID(v *string) *BypassRequestUpdate {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (_u *BypassRequestUpdate) ClearWorkflowID() *BypassRequestUpdate {
	_u.mutation.ClearWorkflowID()
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *BypassRequestUpdate) SetExecutionID(v string) *BypassRequestUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableExecutionID(v *string) *BypassRequestUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *BypassRequestUpdate) ClearExecutionID() *BypassRequestUpdate {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetGate sets the "gate" field.
func (_u *BypassRequestUpdate) SetGate(v string) *BypassRequestUpdate {
	_u.mutation.SetGate(v)
	return _u
}

// SetNillableGate sets the "gate" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableGate(v *string) *BypassRequestUpdate {
	if v != nil {
		_u.SetGate(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *BypassRequestUpdate) SetPhase(v string) *BypassRequestUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillablePhase(v *string) *BypassRequestUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetCurrentValue sets the "current_value" field.
func (_u *BypassRequestUpdate) SetCurrentValue(v float64) *BypassRequestUpdate {
	_u.mutation.ResetCurrentValue()
	_u.mutation.SetCurrentValue(v)
	return _u
}

// SetNillableCurrentValue sets the "current_value" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableCurrentValue(v *float64) *BypassRequestUpdate {
	if v != nil {
		_u.SetCurrentValue(*v)
	}
	return _u
}

// AddCurrentValue adds value to the "current_value" field.
func (_u *BypassRequestUpdate) AddCurrentValue(v float64) *BypassRequestUpdate {
	_u.mutation.AddCurrentValue(v)
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *BypassRequestUpdate) SetThreshold(v float64) *BypassRequestUpdate {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableThreshold(v *float64) *BypassRequestUpdate {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *BypassRequestUpdate) AddThreshold(v float64) *BypassRequestUpdate {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetJustification sets the "justification" field.
func (_u *BypassRequestUpdate) SetJustification(v string) *BypassRequestUpdate {
	_u.mutation.SetJustification(v)
	return _u
}

// SetNillableJustification sets the "justification" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableJustification(v *string) *BypassRequestUpdate {
	if v != nil {
		_u.SetJustification(*v)
	}
	return _u
}

// SetTechnicalRisk sets the "technical_risk" field.
func (_u *BypassRequestUpdate) SetTechnicalRisk(v bypassrequest.TechnicalRisk) *BypassRequestUpdate {
	_u.mutation.SetTechnicalRisk(v)
	return _u
}

// SetNillableTechnicalRisk sets the "technical_risk" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableTechnicalRisk(v *bypassrequest.TechnicalRisk) *BypassRequestUpdate {
	if v != nil {
		_u.SetTechnicalRisk(*v)
	}
	return _u
}

// SetBusinessRisk sets the "business_risk" field.
func (_u *BypassRequestUpdate) SetBusinessRisk(v bypassrequest.BusinessRisk) *BypassRequestUpdate {
	_u.mutation.SetBusinessRisk(v)
	return _u
}

// SetNillableBusinessRisk sets the "business_risk" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableBusinessRisk(v *bypassrequest.BusinessRisk) *BypassRequestUpdate {
	if v != nil {
		_u.SetBusinessRisk(*v)
	}
	return _u
}

// SetSecurityRisk sets the "security_risk" field.
func (_u *BypassRequestUpdate) SetSecurityRisk(v bypassrequest.SecurityRisk) *BypassRequestUpdate {
	_u.mutation.SetSecurityRisk(v)
	return _u
}

// SetNillableSecurityRisk sets the "security_risk" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableSecurityRisk(v *bypassrequest.SecurityRisk) *BypassRequestUpdate {
	if v != nil {
		_u.SetSecurityRisk(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *BypassRequestUpdate) SetDuration(v bypassrequest.Duration) *BypassRequestUpdate {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableDuration(v *bypassrequest.Duration) *BypassRequestUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *BypassRequestUpdate) SetExpiresAt(v time.Time) *BypassRequestUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableExpiresAt(v *time.Time) *BypassRequestUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *BypassRequestUpdate) ClearExpiresAt() *BypassRequestUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetRemediationPlan sets the "remediation_plan" field.
func (_u *BypassRequestUpdate) SetRemediationPlan(v string) *BypassRequestUpdate {
	_u.mutation.SetRemediationPlan(v)
	return _u
}

// SetNillableRemediationPlan sets the "remediation_plan" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableRemediationPlan(v *string) *BypassRequestUpdate {
	if v != nil {
		_u.SetRemediationPlan(*v)
	}
	return _u
}

// ClearRemediationPlan clears the value of the "remediation_plan" field.
func (_u *BypassRequestUpdate) ClearRemediationPlan() *BypassRequestUpdate {
	_u.mutation.ClearRemediationPlan()
	return _u
}

// SetCompensatingControls sets the "compensating_controls" field.
func (_u *BypassRequestUpdate) SetCompensatingControls(v []string) *BypassRequestUpdate {
	_u.mutation.SetCompensatingControls(v)
	return _u
}

// AppendCompensatingControls appends value to the "compensating_controls" field.
func (_u *BypassRequestUpdate) AppendCompensatingControls(v []string) *BypassRequestUpdate {
	_u.mutation.AppendCompensatingControls(v)
	return _u
}

// ClearCompensatingControls clears the value of the "compensating_controls" field.
func (_u *BypassRequestUpdate) ClearCompensatingControls() *BypassRequestUpdate {
	_u.mutation.ClearCompensatingControls()
	return _u
}

// SetFollowUpTasks sets the "follow_up_tasks" field.
func (_u *BypassRequestUpdate) SetFollowUpTasks(v []string) *BypassRequestUpdate {
	_u.mutation.SetFollowUpTasks(v)
	return _u
}

// AppendFollowUpTasks appends value to the "follow_up_tasks" field.
func (_u *BypassRequestUpdate) AppendFollowUpTasks(v []string) *BypassRequestUpdate {
	_u.mutation.AppendFollowUpTasks(v)
	return _u
}

// ClearFollowUpTasks clears the value of the "follow_up_tasks" field.
func (_u *BypassRequestUpdate) ClearFollowUpTasks() *BypassRequestUpdate {
	_u.mutation.ClearFollowUpTasks()
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *BypassRequestUpdate) SetRequestedBy(v string) *BypassRequestUpdate {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableRequestedBy(v *string) *BypassRequestUpdate {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BypassRequestUpdate) SetStatus(v bypassrequest.Status) *BypassRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableStatus(v *bypassrequest.Status) *BypassRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *BypassRequestUpdate) SetApprovedBy(v string) *BypassRequestUpdate {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableApprovedBy(v *string) *BypassRequestUpdate {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *BypassRequestUpdate) ClearApprovedBy() *BypassRequestUpdate {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovalLevel sets the "approval_level" field.
func (_u *BypassRequestUpdate) SetApprovalLevel(v string) *BypassRequestUpdate {
	_u.mutation.SetApprovalLevel(v)
	return _u
}

// SetNillableApprovalLevel sets the "approval_level" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableApprovalLevel(v *string) *BypassRequestUpdate {
	if v != nil {
		_u.SetApprovalLevel(*v)
	}
	return _u
}

// ClearApprovalLevel clears the value of the "approval_level" field.
func (_u *BypassRequestUpdate) ClearApprovalLevel() *BypassRequestUpdate {
	_u.mutation.ClearApprovalLevel()
	return _u
}

// SetAdrPath sets the "adr_path" field.
func (_u *BypassRequestUpdate) SetAdrPath(v string) *BypassRequestUpdate {
	_u.mutation.SetAdrPath(v)
	return _u
}

// SetNillableAdrPath sets the "adr_path" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableAdrPath(v *string) *BypassRequestUpdate {
	if v != nil {
		_u.SetAdrPath(*v)
	}
	return _u
}

// ClearAdrPath clears the value of the "adr_path" field.
func (_u *BypassRequestUpdate) ClearAdrPath() *BypassRequestUpdate {
	_u.mutation.ClearAdrPath()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *BypassRequestUpdate) SetRejectionReason(v string) *BypassRequestUpdate {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableRejectionReason(v *string) *BypassRequestUpdate {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *BypassRequestUpdate) ClearRejectionReason() *BypassRequestUpdate {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *BypassRequestUpdate) SetDecidedAt(v time.Time) *BypassRequestUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableDecidedAt(v *time.Time) *BypassRequestUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *BypassRequestUpdate) ClearDecidedAt() *BypassRequestUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *BypassRequestUpdate) SetClosedAt(v time.Time) *BypassRequestUpdate {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *BypassRequestUpdate) SetNillableClosedAt(v *time.Time) *BypassRequestUpdate {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *BypassRequestUpdate) ClearClosedAt() *BypassRequestUpdate {
	_u.mutation.ClearClosedAt()
	return _u
}

// Mutation returns the BypassRequestMutation object of the builder.
func (_u *BypassRequestUpdate) Mutation() *BypassRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BypassRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BypassRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BypassRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BypassRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BypassRequestUpdate) check() error {
	if v, ok := _u.mutation.TechnicalRisk(); ok {
		if err := bypassrequest.TechnicalRiskValidator(v); err != nil {
			return &ValidationError{Name: "technical_risk", err: fmt.Errorf(`ent: validator failed for field "BypassRequest.technical_risk": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BusinessRisk(); ok {
		if err := bypassrequest.BusinessRiskValidator(v); err != nil {
			return &ValidationError{Name: "business_risk", err: fmt.Errorf(`ent: validator failed for field "BypassRequest.business_risk": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SecurityRisk(); ok {
		if err := bypassrequest.SecurityRiskValidator(v); err != nil {
			return &ValidationError{Name: "security_risk", err: fmt.Errorf(`ent: validator failed for field "BypassRequest.security_risk": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := bypassrequest.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "BypassRequest.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := bypassrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BypassRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BypassRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bypassrequest.Table, bypassrequest.Columns, sqlgraph.NewFieldSpec(bypassrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(bypassrequest.FieldWorkflowID, field.TypeString, value)
	}
	if _u.mutation.WorkflowIDCleared() {
		_spec.ClearField(bypassrequest.FieldWorkflowID, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(bypassrequest.FieldExecutionID, field.TypeString, value)
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(bypassrequest.FieldExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.Gate(); ok {
		_spec.SetField(bypassrequest.FieldGate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(bypassrequest.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentValue(); ok {
		_spec.SetField(bypassrequest.FieldCurrentValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentValue(); ok {
		_spec.AddField(bypassrequest.FieldCurrentValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(bypassrequest.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(bypassrequest.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Justification(); ok {
		_spec.SetField(bypassrequest.FieldJustification, field.TypeString, value)
	}
	if value, ok := _u.mutation.TechnicalRisk(); ok {
		_spec.SetField(bypassrequest.FieldTechnicalRisk, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BusinessRisk(); ok {
		_spec.SetField(bypassrequest.FieldBusinessRisk, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SecurityRisk(); ok {
		_spec.SetField(bypassrequest.FieldSecurityRisk, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(bypassrequest.FieldDuration, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(bypassrequest.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(bypassrequest.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RemediationPlan(); ok {
		_spec.SetField(bypassrequest.FieldRemediationPlan, field.TypeString, value)
	}
	if _u.mutation.RemediationPlanCleared() {
		_spec.ClearField(bypassrequest.FieldRemediationPlan, field.TypeString)
	}
	if value, ok := _u.mutation.CompensatingControls(); ok {
		_spec.SetField(bypassrequest.FieldCompensatingControls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompensatingControls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bypassrequest.FieldCompensatingControls, value)
		})
	}
	if _u.mutation.CompensatingControlsCleared() {
		_spec.ClearField(bypassrequest.FieldCompensatingControls, field.TypeJSON)
	}
	if value, ok := _u.mutation.FollowUpTasks(); ok {
		_spec.SetField(bypassrequest.FieldFollowUpTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFollowUpTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bypassrequest.FieldFollowUpTasks, value)
		})
	}
	if _u.mutation.FollowUpTasksCleared() {
		_spec.ClearField(bypassrequest.FieldFollowUpTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(bypassrequest.FieldRequestedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bypassrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(bypassrequest.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(bypassrequest.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovalLevel(); ok {
		_spec.SetField(bypassrequest.FieldApprovalLevel, field.TypeString, value)
	}
	if _u.mutation.ApprovalLevelCleared() {
		_spec.ClearField(bypassrequest.FieldApprovalLevel, field.TypeString)
	}
	if value, ok := _u.mutation.AdrPath(); ok {
		_spec.SetField(bypassrequest.FieldAdrPath, field.TypeString, value)
	}
	if _u.mutation.AdrPathCleared() {
		_spec.ClearField(bypassrequest.FieldAdrPath, field.TypeString)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(bypassrequest.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(bypassrequest.FieldRejectionReason, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(bypassrequest.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(bypassrequest.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(bypassrequest.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(bypassrequest.FieldClosedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bypassrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BypassRequestUpdateOne is the builder for updating a single BypassRequest entity.
type BypassRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BypassRequestMutation
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *BypassRequestUpdateOne) SetWorkflowID(v string) *BypassRequestUpdateOne {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableWorkflowID(v *string) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (_u *BypassRequestUpdateOne) ClearWorkflowID() *BypassRequestUpdateOne {
	_u.mutation.ClearWorkflowID()
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *BypassRequestUpdateOne) SetExecutionID(v string) *BypassRequestUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableExecutionID(v *string) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *BypassRequestUpdateOne) ClearExecutionID() *BypassRequestUpdateOne {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetGate sets the "gate" field.
func (_u *BypassRequestUpdateOne) SetGate(v string) *BypassRequestUpdateOne {
	_u.mutation.SetGate(v)
	return _u
}

// SetNillableGate sets the "gate" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableGate(v *string) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetGate(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *BypassRequestUpdateOne) SetPhase(v string) *BypassRequestUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillablePhase(v *string) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetCurrentValue sets the "current_value" field.
func (_u *BypassRequestUpdateOne) SetCurrentValue(v float64) *BypassRequestUpdateOne {
	_u.mutation.ResetCurrentValue()
	_u.mutation.SetCurrentValue(v)
	return _u
}

// SetNillableCurrentValue sets the "current_value" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableCurrentValue(v *float64) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetCurrentValue(*v)
	}
	return _u
}

// AddCurrentValue adds value to the "current_value" field.
func (_u *BypassRequestUpdateOne) AddCurrentValue(v float64) *BypassRequestUpdateOne {
	_u.mutation.AddCurrentValue(v)
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *BypassRequestUpdateOne) SetThreshold(v float64) *BypassRequestUpdateOne {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableThreshold(v *float64) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *BypassRequestUpdateOne) AddThreshold(v float64) *BypassRequestUpdateOne {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetJustification sets the "justification" field.
func (_u *BypassRequestUpdateOne) SetJustification(v string) *BypassRequestUpdateOne {
	_u.mutation.SetJustification(v)
	return _u
}

// SetNillableJustification sets the "justification" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableJustification(v *string) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetJustification(*v)
	}
	return _u
}

// SetTechnicalRisk sets the "technical_risk" field.
func (_u *BypassRequestUpdateOne) SetTechnicalRisk(v bypassrequest.TechnicalRisk) *BypassRequestUpdateOne {
	_u.mutation.SetTechnicalRisk(v)
	return _u
}

// SetNillableTechnicalRisk sets the "technical_risk" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableTechnicalRisk(v *bypassrequest.TechnicalRisk) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetTechnicalRisk(*v)
	}
	return _u
}

// SetBusinessRisk sets the "business_risk" field.
func (_u *BypassRequestUpdateOne) SetBusinessRisk(v bypassrequest.BusinessRisk) *BypassRequestUpdateOne {
	_u.mutation.SetBusinessRisk(v)
	return _u
}

// SetNillableBusinessRisk sets the "business_risk" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableBusinessRisk(v *bypassrequest.BusinessRisk) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetBusinessRisk(*v)
	}
	return _u
}

// SetSecurityRisk sets the "security_risk" field.
func (_u *BypassRequestUpdateOne) SetSecurityRisk(v bypassrequest.SecurityRisk) *BypassRequestUpdateOne {
	_u.mutation.SetSecurityRisk(v)
	return _u
}

// SetNillableSecurityRisk sets the "security_risk" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableSecurityRisk(v *bypassrequest.SecurityRisk) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetSecurityRisk(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *BypassRequestUpdateOne) SetDuration(v bypassrequest.Duration) *BypassRequestUpdateOne {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableDuration(v *bypassrequest.Duration) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *BypassRequestUpdateOne) SetExpiresAt(v time.Time) *BypassRequestUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableExpiresAt(v *time.Time) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *BypassRequestUpdateOne) ClearExpiresAt() *BypassRequestUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetRemediationPlan sets the "remediation_plan" field.
func (_u *BypassRequestUpdateOne) SetRemediationPlan(v string) *BypassRequestUpdateOne {
	_u.mutation.SetRemediationPlan(v)
	return _u
}

// SetNillableRemediationPlan sets the "remediation_plan" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableRemediationPlan(v *string) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetRemediationPlan(*v)
	}
	return _u
}

// ClearRemediationPlan clears the value of the "remediation_plan" field.
func (_u *BypassRequestUpdateOne) ClearRemediationPlan() *BypassRequestUpdateOne {
	_u.mutation.ClearRemediationPlan()
	return _u
}

// SetCompensatingControls sets the "compensating_controls" field.
func (_u *BypassRequestUpdateOne) SetCompensatingControls(v []string) *BypassRequestUpdateOne {
	_u.mutation.SetCompensatingControls(v)
	return _u
}

// AppendCompensatingControls appends value to the "compensating_controls" field.
func (_u *BypassRequestUpdateOne) AppendCompensatingControls(v []string) *BypassRequestUpdateOne {
	_u.mutation.AppendCompensatingControls(v)
	return _u
}

// ClearCompensatingControls clears the value of the "compensating_controls" field.
func (_u *BypassRequestUpdateOne) ClearCompensatingControls() *BypassRequestUpdateOne {
	_u.mutation.ClearCompensatingControls()
	return _u
}

// SetFollowUpTasks sets the "follow_up_tasks" field.
func (_u *BypassRequestUpdateOne) SetFollowUpTasks(v []string) *BypassRequestUpdateOne {
	_u.mutation.SetFollowUpTasks(v)
	return _u
}

// AppendFollowUpTasks appends value to the "follow_up_tasks" field.
func (_u *BypassRequestUpdateOne) AppendFollowUpTasks(v []string) *BypassRequestUpdateOne {
	_u.mutation.AppendFollowUpTasks(v)
	return _u
}

// ClearFollowUpTasks clears the value of the "follow_up_tasks" field.
func (_u *BypassRequestUpdateOne) ClearFollowUpTasks() *BypassRequestUpdateOne {
	_u.mutation.ClearFollowUpTasks()
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *BypassRequestUpdateOne) SetRequestedBy(v string) *BypassRequestUpdateOne {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableRequestedBy(v *string) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BypassRequestUpdateOne) SetStatus(v bypassrequest.Status) *BypassRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableStatus(v *bypassrequest.Status) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *BypassRequestUpdateOne) SetApprovedBy(v string) *BypassRequestUpdateOne {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableApprovedBy(v *string) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *BypassRequestUpdateOne) ClearApprovedBy() *BypassRequestUpdateOne {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetApprovalLevel sets the "approval_level" field.
func (_u *BypassRequestUpdateOne) SetApprovalLevel(v string) *BypassRequestUpdateOne {
	_u.mutation.SetApprovalLevel(v)
	return _u
}

// SetNillableApprovalLevel sets the "approval_level" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableApprovalLevel(v *string) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetApprovalLevel(*v)
	}
	return _u
}

// ClearApprovalLevel clears the value of the "approval_level" field.
func (_u *BypassRequestUpdateOne) ClearApprovalLevel() *BypassRequestUpdateOne {
	_u.mutation.ClearApprovalLevel()
	return _u
}

// SetAdrPath sets the "adr_path" field.
func (_u *BypassRequestUpdateOne) SetAdrPath(v string) *BypassRequestUpdateOne {
	_u.mutation.SetAdrPath(v)
	return _u
}

// SetNillableAdrPath sets the "adr_path" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableAdrPath(v *string) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetAdrPath(*v)
	}
	return _u
}

// ClearAdrPath clears the value of the "adr_path" field.
func (_u *BypassRequestUpdateOne) ClearAdrPath() *BypassRequestUpdateOne {
	_u.mutation.ClearAdrPath()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *BypassRequestUpdateOne) SetRejectionReason(v string) *BypassRequestUpdateOne {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableRejectionReason(v *string) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *BypassRequestUpdateOne) ClearRejectionReason() *BypassRequestUpdateOne {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *BypassRequestUpdateOne) SetDecidedAt(v time.Time) *BypassRequestUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableDecidedAt(v *time.Time) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *BypassRequestUpdateOne) ClearDecidedAt() *BypassRequestUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetClosedAt sets the "closed_at" field.
func (_u *BypassRequestUpdateOne) SetClosedAt(v time.Time) *BypassRequestUpdateOne {
	_u.mutation.SetClosedAt(v)
	return _u
}

// SetNillableClosedAt sets the "closed_at" field if the given value is not nil.
func (_u *BypassRequestUpdateOne) SetNillableClosedAt(v *time.Time) *BypassRequestUpdateOne {
	if v != nil {
		_u.SetClosedAt(*v)
	}
	return _u
}

// ClearClosedAt clears the value of the "closed_at" field.
func (_u *BypassRequestUpdateOne) ClearClosedAt() *BypassRequestUpdateOne {
	_u.mutation.ClearClosedAt()
	return _u
}

// Mutation returns the BypassRequestMutation object of the builder.
func (_u *BypassRequestUpdateOne) Mutation() *BypassRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the BypassRequestUpdate builder.
func (_u *BypassRequestUpdateOne) Where(ps ...predicate.BypassRequest) *BypassRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BypassRequestUpdateOne) Select(field string, fields ...string) *BypassRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BypassRequest entity.
func (_u *BypassRequestUpdateOne) Save(ctx context.Context) (*BypassRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BypassRequestUpdateOne) SaveX(ctx context.Context) *BypassRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BypassRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BypassRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BypassRequestUpdateOne) check() error {
	if v, ok := _u.mutation.TechnicalRisk(); ok {
		if err := bypassrequest.TechnicalRiskValidator(v); err != nil {
			return &ValidationError{Name: "technical_risk", err: fmt.Errorf(`ent: validator failed for field "BypassRequest.technical_risk": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BusinessRisk(); ok {
		if err := bypassrequest.BusinessRiskValidator(v); err != nil {
			return &ValidationError{Name: "business_risk", err: fmt.Errorf(`ent: validator failed for field "BypassRequest.business_risk": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SecurityRisk(); ok {
		if err := bypassrequest.SecurityRiskValidator(v); err != nil {
			return &ValidationError{Name: "security_risk", err: fmt.Errorf(`ent: validator failed for field "BypassRequest.security_risk": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := bypassrequest.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "BypassRequest.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := bypassrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BypassRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BypassRequestUpdateOne) sqlSave(ctx context.Context) (_node *BypassRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bypassrequest.Table, bypassrequest.Columns, sqlgraph.NewFieldSpec(bypassrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BypassRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bypassrequest.FieldID)
		for _, f := range fields {
			if !bypassrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bypassrequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(bypassrequest.FieldWorkflowID, field.TypeString, value)
	}
	if _u.mutation.WorkflowIDCleared() {
		_spec.ClearField(bypassrequest.FieldWorkflowID, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(bypassrequest.FieldExecutionID, field.TypeString, value)
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(bypassrequest.FieldExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.Gate(); ok {
		_spec.SetField(bypassrequest.FieldGate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(bypassrequest.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentValue(); ok {
		_spec.SetField(bypassrequest.FieldCurrentValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentValue(); ok {
		_spec.AddField(bypassrequest.FieldCurrentValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(bypassrequest.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(bypassrequest.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Justification(); ok {
		_spec.SetField(bypassrequest.FieldJustification, field.TypeString, value)
	}
	if value, ok := _u.mutation.TechnicalRisk(); ok {
		_spec.SetField(bypassrequest.FieldTechnicalRisk, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BusinessRisk(); ok {
		_spec.SetField(bypassrequest.FieldBusinessRisk, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SecurityRisk(); ok {
		_spec.SetField(bypassrequest.FieldSecurityRisk, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(bypassrequest.FieldDuration, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(bypassrequest.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(bypassrequest.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RemediationPlan(); ok {
		_spec.SetField(bypassrequest.FieldRemediationPlan, field.TypeString, value)
	}
	if _u.mutation.RemediationPlanCleared() {
		_spec.ClearField(bypassrequest.FieldRemediationPlan, field.TypeString)
	}
	if value, ok := _u.mutation.CompensatingControls(); ok {
		_spec.SetField(bypassrequest.FieldCompensatingControls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompensatingControls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bypassrequest.FieldCompensatingControls, value)
		})
	}
	if _u.mutation.CompensatingControlsCleared() {
		_spec.ClearField(bypassrequest.FieldCompensatingControls, field.TypeJSON)
	}
	if value, ok := _u.mutation.FollowUpTasks(); ok {
		_spec.SetField(bypassrequest.FieldFollowUpTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFollowUpTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bypassrequest.FieldFollowUpTasks, value)
		})
	}
	if _u.mutation.FollowUpTasksCleared() {
		_spec.ClearField(bypassrequest.FieldFollowUpTasks, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(bypassrequest.FieldRequestedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(bypassrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(bypassrequest.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(bypassrequest.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovalLevel(); ok {
		_spec.SetField(bypassrequest.FieldApprovalLevel, field.TypeString, value)
	}
	if _u.mutation.ApprovalLevelCleared() {
		_spec.ClearField(bypassrequest.FieldApprovalLevel, field.TypeString)
	}
	if value, ok := _u.mutation.AdrPath(); ok {
		_spec.SetField(bypassrequest.FieldAdrPath, field.TypeString, value)
	}
	if _u.mutation.AdrPathCleared() {
		_spec.ClearField(bypassrequest.FieldAdrPath, field.TypeString)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(bypassrequest.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(bypassrequest.FieldRejectionReason, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(bypassrequest.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(bypassrequest.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClosedAt(); ok {
		_spec.SetField(bypassrequest.FieldClosedAt, field.TypeTime, value)
	}
	if _u.mutation.ClosedAtCleared() {
		_spec.ClearField(bypassrequest.FieldClosedAt, field.TypeTime)
	}
	_node = &BypassRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bypassrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
