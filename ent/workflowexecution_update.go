// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-works/maestro/ent/gateevaluation"
	"github.com/maestro-works/maestro/ent/nodeexecution"
	"github.com/maestro-works/maestro/ent/predicate"
	"github.com/maestro-works/maestro/ent/workflowexecution"
)

// WorkflowExecutionUpdate is the builder for updating WorkflowExecution entities.
type WorkflowExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowExecutionMutation
}

// Where appends a list predicates to the WorkflowExecutionUpdate builder.
func (_u *WorkflowExecutionUpdate) Where(ps ...predicate.WorkflowExecution) *WorkflowExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *WorkflowExecutionUpdate) SetWorkflowID(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableWorkflowID(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// SetRequirement sets the "requirement" field.
func (_u *WorkflowExecutionUpdate) SetRequirement(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetRequirement(v)
	return _u
}

// SetNillableRequirement sets the "requirement" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableRequirement(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetRequirement(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowExecutionUpdate) SetStatus(v workflowexecution.Status) *WorkflowExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableStatus(v *workflowexecution.Status) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *WorkflowExecutionUpdate) SetCurrentPhase(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableCurrentPhase(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (_u *WorkflowExecutionUpdate) ClearCurrentPhase() *WorkflowExecutionUpdate {
	_u.mutation.ClearCurrentPhase()
	return _u
}

// SetOutputDir sets the "output_dir" field.
func (_u *WorkflowExecutionUpdate) SetOutputDir(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetOutputDir(v)
	return _u
}

// SetNillableOutputDir sets the "output_dir" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableOutputDir(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetOutputDir(*v)
	}
	return _u
}

// ClearOutputDir clears the value of the "output_dir" field.
func (_u *WorkflowExecutionUpdate) ClearOutputDir() *WorkflowExecutionUpdate {
	_u.mutation.ClearOutputDir()
	return _u
}

// SetTotalNodes sets the "total_nodes" field.
func (_u *WorkflowExecutionUpdate) SetTotalNodes(v int) *WorkflowExecutionUpdate {
	_u.mutation.ResetTotalNodes()
	_u.mutation.SetTotalNodes(v)
	return _u
}

// SetNillableTotalNodes sets the "total_nodes" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableTotalNodes(v *int) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetTotalNodes(*v)
	}
	return _u
}

// AddTotalNodes adds value to the "total_nodes" field.
func (_u *WorkflowExecutionUpdate) AddTotalNodes(v int) *WorkflowExecutionUpdate {
	_u.mutation.AddTotalNodes(v)
	return _u
}

// SetCompletedNodes sets the "completed_nodes" field.
func (_u *WorkflowExecutionUpdate) SetCompletedNodes(v int) *WorkflowExecutionUpdate {
	_u.mutation.ResetCompletedNodes()
	_u.mutation.SetCompletedNodes(v)
	return _u
}

// SetNillableCompletedNodes sets the "completed_nodes" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableCompletedNodes(v *int) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetCompletedNodes(*v)
	}
	return _u
}

// AddCompletedNodes adds value to the "completed_nodes" field.
func (_u *WorkflowExecutionUpdate) AddCompletedNodes(v int) *WorkflowExecutionUpdate {
	_u.mutation.AddCompletedNodes(v)
	return _u
}

// SetConstraints sets the "constraints" field.
func (_u *WorkflowExecutionUpdate) SetConstraints(v map[string]string) *WorkflowExecutionUpdate {
	_u.mutation.SetConstraints(v)
	return _u
}

// ClearConstraints clears the value of the "constraints" field.
func (_u *WorkflowExecutionUpdate) ClearConstraints() *WorkflowExecutionUpdate {
	_u.mutation.ClearConstraints()
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *WorkflowExecutionUpdate) SetRequestedBy(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableRequestedBy(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (_u *WorkflowExecutionUpdate) ClearRequestedBy() *WorkflowExecutionUpdate {
	_u.mutation.ClearRequestedBy()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowExecutionUpdate) SetErrorMessage(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableErrorMessage(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowExecutionUpdate) ClearErrorMessage() *WorkflowExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowExecutionUpdate) SetPodID(v string) *WorkflowExecutionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillablePodID(v *string) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowExecutionUpdate) ClearPodID() *WorkflowExecutionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *WorkflowExecutionUpdate) SetLastInteractionAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableLastInteractionAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *WorkflowExecutionUpdate) ClearLastInteractionAt() *WorkflowExecutionUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkflowExecutionUpdate) SetCreatedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableCreatedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowExecutionUpdate) SetStartedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableStartedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowExecutionUpdate) ClearStartedAt() *WorkflowExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowExecutionUpdate) SetCompletedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowExecutionUpdate) ClearCompletedAt() *WorkflowExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *WorkflowExecutionUpdate) SetDeletedAt(v time.Time) *WorkflowExecutionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdate) SetNillableDeletedAt(v *time.Time) *WorkflowExecutionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *WorkflowExecutionUpdate) ClearDeletedAt() *WorkflowExecutionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddNodeExecutionIDs adds the "node_executions" edge to the NodeExecution entity by IDs.
func (_u *WorkflowExecutionUpdate) AddNodeExecutionIDs(ids ...string) *WorkflowExecutionUpdate {
	_u.mutation.AddNodeExecutionIDs(ids...)
	return _u
}

// AddNodeExecutions adds the "node_executions" edges to the NodeExecution entity.
func (_u *WorkflowExecutionUpdate) AddNodeExecutions(v ...*NodeExecution) *WorkflowExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNodeExecutionIDs(ids...)
}

// AddGateEvaluationIDs adds the "gate_evaluations" edge to the GateEvaluation entity by IDs.
func (_u *WorkflowExecutionUpdate) AddGateEvaluationIDs(ids ...string) *WorkflowExecutionUpdate {
	_u.mutation.AddGateEvaluationIDs(ids...)
	return _u
}

// AddGateEvaluations adds the "gate_evaluations" edges to the GateEvaluation entity.
func (_u *WorkflowExecutionUpdate) AddGateEvaluations(v ...*GateEvaluation) *WorkflowExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGateEvaluationIDs(ids...)
}

// Mutation returns the WorkflowExecutionMutation object of the builder.
func (_u *WorkflowExecutionUpdate) Mutation() *WorkflowExecutionMutation {
	return _u.mutation
}

// ClearNodeExecutions clears all "node_executions" edges to the NodeExecution entity.
func (_u *WorkflowExecutionUpdate) ClearNodeExecutions() *WorkflowExecutionUpdate {
	_u.mutation.ClearNodeExecutions()
	return _u
}

// RemoveNodeExecutionIDs removes the "node_executions" edge to NodeExecution entities by IDs.
func (_u *WorkflowExecutionUpdate) RemoveNodeExecutionIDs(ids ...string) *WorkflowExecutionUpdate {
	_u.mutation.RemoveNodeExecutionIDs(ids...)
	return _u
}

// RemoveNodeExecutions removes "node_executions" edges to NodeExecution entities.
func (_u *WorkflowExecutionUpdate) RemoveNodeExecutions(v ...*NodeExecution) *WorkflowExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNodeExecutionIDs(ids...)
}

// ClearGateEvaluations clears all "gate_evaluations" edges to the GateEvaluation entity.
func (_u *WorkflowExecutionUpdate) ClearGateEvaluations() *WorkflowExecutionUpdate {
	_u.mutation.ClearGateEvaluations()
	return _u
}

// RemoveGateEvaluationIDs removes the "gate_evaluations" edge to GateEvaluation entities by IDs.
func (_u *WorkflowExecutionUpdate) RemoveGateEvaluationIDs(ids ...string) *WorkflowExecutionUpdate {
	_u.mutation.RemoveGateEvaluationIDs(ids...)
	return _u
}

// RemoveGateEvaluations removes "gate_evaluations" edges to GateEvaluation entities.
func (_u *WorkflowExecutionUpdate) RemoveGateEvaluations(v ...*GateEvaluation) *WorkflowExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGateEvaluationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowexecution.Table, workflowexecution.Columns, sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(workflowexecution.FieldWorkflowID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Requirement(); ok {
		_spec.SetField(workflowexecution.FieldRequirement, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(workflowexecution.FieldCurrentPhase, field.TypeString, value)
	}
	if _u.mutation.CurrentPhaseCleared() {
		_spec.ClearField(workflowexecution.FieldCurrentPhase, field.TypeString)
	}
	if value, ok := _u.mutation.OutputDir(); ok {
		_spec.SetField(workflowexecution.FieldOutputDir, field.TypeString, value)
	}
	if _u.mutation.OutputDirCleared() {
		_spec.ClearField(workflowexecution.FieldOutputDir, field.TypeString)
	}
	if value, ok := _u.mutation.TotalNodes(); ok {
		_spec.SetField(workflowexecution.FieldTotalNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalNodes(); ok {
		_spec.AddField(workflowexecution.FieldTotalNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedNodes(); ok {
		_spec.SetField(workflowexecution.FieldCompletedNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedNodes(); ok {
		_spec.AddField(workflowexecution.FieldCompletedNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Constraints(); ok {
		_spec.SetField(workflowexecution.FieldConstraints, field.TypeJSON, value)
	}
	if _u.mutation.ConstraintsCleared() {
		_spec.ClearField(workflowexecution.FieldConstraints, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(workflowexecution.FieldRequestedBy, field.TypeString, value)
	}
	if _u.mutation.RequestedByCleared() {
		_spec.ClearField(workflowexecution.FieldRequestedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflowexecution.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflowexecution.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(workflowexecution.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(workflowexecution.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workflowexecution.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(workflowexecution.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(workflowexecution.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.NodeExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.NodeExecutionsTable,
			Columns: []string{workflowexecution.NodeExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(nodeexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNodeExecutionsIDs(); len(nodes) > 0 && !_u.mutation.NodeExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.NodeExecutionsTable,
			Columns: []string{workflowexecution.NodeExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(nodeexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodeExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.NodeExecutionsTable,
			Columns: []string{workflowexecution.NodeExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(nodeexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GateEvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.GateEvaluationsTable,
			Columns: []string{workflowexecution.GateEvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gateevaluation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGateEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.GateEvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.GateEvaluationsTable,
			Columns: []string{workflowexecution.GateEvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gateevaluation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GateEvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.GateEvaluationsTable,
			Columns: []string{workflowexecution.GateEvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gateevaluation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowExecutionUpdateOne is the builder for updating a single WorkflowExecution entity.
type WorkflowExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowExecutionMutation
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *WorkflowExecutionUpdateOne) SetWorkflowID(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableWorkflowID(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// SetRequirement sets the "requirement" field.
func (_u *WorkflowExecutionUpdateOne) SetRequirement(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetRequirement(v)
	return _u
}

// SetNillableRequirement sets the "requirement" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableRequirement(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetRequirement(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowExecutionUpdateOne) SetStatus(v workflowexecution.Status) *WorkflowExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableStatus(v *workflowexecution.Status) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *WorkflowExecutionUpdateOne) SetCurrentPhase(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableCurrentPhase(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (_u *WorkflowExecutionUpdateOne) ClearCurrentPhase() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearCurrentPhase()
	return _u
}

// SetOutputDir sets the "output_dir" field.
func (_u *WorkflowExecutionUpdateOne) SetOutputDir(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetOutputDir(v)
	return _u
}

// SetNillableOutputDir sets the "output_dir" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableOutputDir(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetOutputDir(*v)
	}
	return _u
}

// ClearOutputDir clears the value of the "output_dir" field.
func (_u *WorkflowExecutionUpdateOne) ClearOutputDir() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearOutputDir()
	return _u
}

// SetTotalNodes sets the "total_nodes" field.
func (_u *WorkflowExecutionUpdateOne) SetTotalNodes(v int) *WorkflowExecutionUpdateOne {
	_u.mutation.ResetTotalNodes()
	_u.mutation.SetTotalNodes(v)
	return _u
}

// SetNillableTotalNodes sets the "total_nodes" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableTotalNodes(v *int) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetTotalNodes(*v)
	}
	return _u
}

// AddTotalNodes adds value to the "total_nodes" field.
func (_u *WorkflowExecutionUpdateOne) AddTotalNodes(v int) *WorkflowExecutionUpdateOne {
	_u.mutation.AddTotalNodes(v)
	return _u
}

// SetCompletedNodes sets the "completed_nodes" field.
func (_u *WorkflowExecutionUpdateOne) SetCompletedNodes(v int) *WorkflowExecutionUpdateOne {
	_u.mutation.ResetCompletedNodes()
	_u.mutation.SetCompletedNodes(v)
	return _u
}

// SetNillableCompletedNodes sets the "completed_nodes" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableCompletedNodes(v *int) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedNodes(*v)
	}
	return _u
}

// AddCompletedNodes adds value to the "completed_nodes" field.
func (_u *WorkflowExecutionUpdateOne) AddCompletedNodes(v int) *WorkflowExecutionUpdateOne {
	_u.mutation.AddCompletedNodes(v)
	return _u
}

// SetConstraints sets the "constraints" field.
func (_u *WorkflowExecutionUpdateOne) SetConstraints(v map[string]string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetConstraints(v)
	return _u
}

// ClearConstraints clears the value of the "constraints" field.
func (_u *WorkflowExecutionUpdateOne) ClearConstraints() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearConstraints()
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *WorkflowExecutionUpdateOne) SetRequestedBy(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableRequestedBy(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (_u *WorkflowExecutionUpdateOne) ClearRequestedBy() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearRequestedBy()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowExecutionUpdateOne) SetErrorMessage(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableErrorMessage(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowExecutionUpdateOne) ClearErrorMessage() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowExecutionUpdateOne) SetPodID(v string) *WorkflowExecutionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillablePodID(v *string) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowExecutionUpdateOne) ClearPodID() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *WorkflowExecutionUpdateOne) SetLastInteractionAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableLastInteractionAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *WorkflowExecutionUpdateOne) ClearLastInteractionAt() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkflowExecutionUpdateOne) SetCreatedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableCreatedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowExecutionUpdateOne) SetStartedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkflowExecutionUpdateOne) ClearStartedAt() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowExecutionUpdateOne) SetCompletedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowExecutionUpdateOne) ClearCompletedAt() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *WorkflowExecutionUpdateOne) SetDeletedAt(v time.Time) *WorkflowExecutionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *WorkflowExecutionUpdateOne) SetNillableDeletedAt(v *time.Time) *WorkflowExecutionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *WorkflowExecutionUpdateOne) ClearDeletedAt() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddNodeExecutionIDs adds the "node_executions" edge to the NodeExecution entity by IDs.
func (_u *WorkflowExecutionUpdateOne) AddNodeExecutionIDs(ids ...string) *WorkflowExecutionUpdateOne {
	_u.mutation.AddNodeExecutionIDs(ids...)
	return _u
}

// AddNodeExecutions adds the "node_executions" edges to the NodeExecution entity.
func (_u *WorkflowExecutionUpdateOne) AddNodeExecutions(v ...*NodeExecution) *WorkflowExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNodeExecutionIDs(ids...)
}

// AddGateEvaluationIDs adds the "gate_evaluations" edge to the GateEvaluation entity by IDs.
func (_u *WorkflowExecutionUpdateOne) AddGateEvaluationIDs(ids ...string) *WorkflowExecutionUpdateOne {
	_u.mutation.AddGateEvaluationIDs(ids...)
	return _u
}

// AddGateEvaluations adds the "gate_evaluations" edges to the GateEvaluation entity.
func (_u *WorkflowExecutionUpdateOne) AddGateEvaluations(v ...*GateEvaluation) *WorkflowExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGateEvaluationIDs(ids...)
}

// Mutation returns the WorkflowExecutionMutation object of the builder.
func (_u *WorkflowExecutionUpdateOne) Mutation() *WorkflowExecutionMutation {
	return _u.mutation
}

// ClearNodeExecutions clears all "node_executions" edges to the NodeExecution entity.
func (_u *WorkflowExecutionUpdateOne) ClearNodeExecutions() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearNodeExecutions()
	return _u
}

// RemoveNodeExecutionIDs removes the "node_executions" edge to NodeExecution entities by IDs.
func (_u *WorkflowExecutionUpdateOne) RemoveNodeExecutionIDs(ids ...string) *WorkflowExecutionUpdateOne {
	_u.mutation.RemoveNodeExecutionIDs(ids...)
	return _u
}

// RemoveNodeExecutions removes "node_executions" edges to NodeExecution entities.
func (_u *WorkflowExecutionUpdateOne) RemoveNodeExecutions(v ...*NodeExecution) *WorkflowExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNodeExecutionIDs(ids...)
}

// ClearGateEvaluations clears all "gate_evaluations" edges to the GateEvaluation entity.
func (_u *WorkflowExecutionUpdateOne) ClearGateEvaluations() *WorkflowExecutionUpdateOne {
	_u.mutation.ClearGateEvaluations()
	return _u
}

// RemoveGateEvaluationIDs removes the "gate_evaluations" edge to GateEvaluation entities by IDs.
func (_u *WorkflowExecutionUpdateOne) RemoveGateEvaluationIDs(ids ...string) *WorkflowExecutionUpdateOne {
	_u.mutation.RemoveGateEvaluationIDs(ids...)
	return _u
}

// RemoveGateEvaluations removes "gate_evaluations" edges to GateEvaluation entities.
func (_u *WorkflowExecutionUpdateOne) RemoveGateEvaluations(v ...*GateEvaluation) *WorkflowExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGateEvaluationIDs(ids...)
}

// Where appends a list predicates to the WorkflowExecutionUpdate builder.
func (_u *WorkflowExecutionUpdateOne) Where(ps ...predicate.WorkflowExecution) *WorkflowExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowExecutionUpdateOne) Select(field string, fields ...string) *WorkflowExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowExecution entity.
func (_u *WorkflowExecutionUpdateOne) Save(ctx context.Context) (*WorkflowExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowExecutionUpdateOne) SaveX(ctx context.Context) *WorkflowExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowExecutionUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowexecution.Table, workflowexecution.Columns, sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowexecution.FieldID)
		for _, f := range fields {
			if !workflowexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowexecution.FieldID {
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
		_spec.SetField(workflowexecution.FieldWorkflowID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Requirement(); ok {
		_spec.SetField(workflowexecution.FieldRequirement, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(workflowexecution.FieldCurrentPhase, field.TypeString, value)
	}
	if _u.mutation.CurrentPhaseCleared() {
		_spec.ClearField(workflowexecution.FieldCurrentPhase, field.TypeString)
	}
	if value, ok := _u.mutation.OutputDir(); ok {
		_spec.SetField(workflowexecution.FieldOutputDir, field.TypeString, value)
	}
	if _u.mutation.OutputDirCleared() {
		_spec.ClearField(workflowexecution.FieldOutputDir, field.TypeString)
	}
	if value, ok := _u.mutation.TotalNodes(); ok {
		_spec.SetField(workflowexecution.FieldTotalNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalNodes(); ok {
		_spec.AddField(workflowexecution.FieldTotalNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedNodes(); ok {
		_spec.SetField(workflowexecution.FieldCompletedNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedNodes(); ok {
		_spec.AddField(workflowexecution.FieldCompletedNodes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Constraints(); ok {
		_spec.SetField(workflowexecution.FieldConstraints, field.TypeJSON, value)
	}
	if _u.mutation.ConstraintsCleared() {
		_spec.ClearField(workflowexecution.FieldConstraints, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(workflowexecution.FieldRequestedBy, field.TypeString, value)
	}
	if _u.mutation.RequestedByCleared() {
		_spec.ClearField(workflowexecution.FieldRequestedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflowexecution.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflowexecution.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(workflowexecution.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(workflowexecution.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workflowexecution.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflowexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workflowexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflowexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(workflowexecution.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(workflowexecution.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.NodeExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.NodeExecutionsTable,
			Columns: []string{workflowexecution.NodeExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(nodeexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNodeExecutionsIDs(); len(nodes) > 0 && !_u.mutation.NodeExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.NodeExecutionsTable,
			Columns: []string{workflowexecution.NodeExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(nodeexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodeExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.NodeExecutionsTable,
			Columns: []string{workflowexecution.NodeExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(nodeexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GateEvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.GateEvaluationsTable,
			Columns: []string{workflowexecution.GateEvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gateevaluation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGateEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.GateEvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.GateEvaluationsTable,
			Columns: []string{workflowexecution.GateEvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gateevaluation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GateEvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowexecution.GateEvaluationsTable,
			Columns: []string{workflowexecution.GateEvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gateevaluation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkflowExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
