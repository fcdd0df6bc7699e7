// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/maestro-works/maestro/ent/gateevaluation"
	"github.com/maestro-works/maestro/ent/predicate"
)

// GateEvaluationUpdate is the builder for updating GateEvaluation entities.
type GateEvaluationUpdate struct {
	config
	hooks    []Hook
	mutation *GateEvaluationMutation
}

// Where appends a list predicates to the GateEvaluationUpdate builder.
func (_u *GateEvaluationUpdate) Where(ps ...predicate.GateEvaluation) *GateEvaluationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *GateEvaluationUpdate) SetWorkflowID(v string) *GateEvaluationUpdate {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *GateEvaluationUpdate) SetNillableWorkflowID(v *string) *GateEvaluationUpdate {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *GateEvaluationUpdate) SetPhase(v string) *GateEvaluationUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *GateEvaluationUpdate) SetNillablePhase(v *string) *GateEvaluationUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *GateEvaluationUpdate) SetKind(v gateevaluation.Kind) *GateEvaluationUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *GateEvaluationUpdate) SetNillableKind(v *gateevaluation.Kind) *GateEvaluationUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *GateEvaluationUpdate) SetPassed(v bool) *GateEvaluationUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *GateEvaluationUpdate) SetNillablePassed(v *bool) *GateEvaluationUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *GateEvaluationUpdate) SetScore(v float64) *GateEvaluationUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GateEvaluationUpdate) SetNillableScore(v *float64) *GateEvaluationUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GateEvaluationUpdate) AddScore(v float64) *GateEvaluationUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *GateEvaluationUpdate) SetIteration(v int) *GateEvaluationUpdate {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *GateEvaluationUpdate) SetNillableIteration(v *int) *GateEvaluationUpdate {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *GateEvaluationUpdate) AddIteration(v int) *GateEvaluationUpdate {
	_u.mutation.AddIteration(v)
	return _u
}

// SetFailedGates sets the "failed_gates" field.
func (_u *GateEvaluationUpdate) SetFailedGates(v []string) *GateEvaluationUpdate {
	_u.mutation.SetFailedGates(v)
	return _u
}

// AppendFailedGates appends value to the "failed_gates" field.
func (_u *GateEvaluationUpdate) AppendFailedGates(v []string) *GateEvaluationUpdate {
	_u.mutation.AppendFailedGates(v)
	return _u
}

// ClearFailedGates clears the value of the "failed_gates" field.
func (_u *GateEvaluationUpdate) ClearFailedGates() *GateEvaluationUpdate {
	_u.mutation.ClearFailedGates()
	return _u
}

// Mutation returns the GateEvaluationMutation object of the builder.
func (_u *GateEvaluationUpdate) Mutation() *GateEvaluationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GateEvaluationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GateEvaluationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GateEvaluationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GateEvaluationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GateEvaluationUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := gateevaluation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "GateEvaluation.kind": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GateEvaluation.execution"`)
	}
	return nil
}

func (_u *GateEvaluationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gateevaluation.Table, gateevaluation.Columns, sqlgraph.NewFieldSpec(gateevaluation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(gateevaluation.FieldWorkflowID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(gateevaluation.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(gateevaluation.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(gateevaluation.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gateevaluation.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gateevaluation.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(gateevaluation.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(gateevaluation.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedGates(); ok {
		_spec.SetField(gateevaluation.FieldFailedGates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailedGates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gateevaluation.FieldFailedGates, value)
		})
	}
	if _u.mutation.FailedGatesCleared() {
		_spec.ClearField(gateevaluation.FieldFailedGates, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gateevaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GateEvaluationUpdateOne is the builder for updating a single GateEvaluation entity.
type GateEvaluationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GateEvaluationMutation
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *GateEvaluationUpdateOne) SetWorkflowID(v string) *GateEvaluationUpdateOne {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *GateEvaluationUpdateOne) SetNillableWorkflowID(v *string) *GateEvaluationUpdateOne {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *GateEvaluationUpdateOne) SetPhase(v string) *GateEvaluationUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *GateEvaluationUpdateOne) SetNillablePhase(v *string) *GateEvaluationUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *GateEvaluationUpdateOne) SetKind(v gateevaluation.Kind) *GateEvaluationUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *GateEvaluationUpdateOne) SetNillableKind(v *gateevaluation.Kind) *GateEvaluationUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *GateEvaluationUpdateOne) SetPassed(v bool) *GateEvaluationUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *GateEvaluationUpdateOne) SetNillablePassed(v *bool) *GateEvaluationUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *GateEvaluationUpdateOne) SetScore(v float64) *GateEvaluationUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GateEvaluationUpdateOne) SetNillableScore(v *float64) *GateEvaluationUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GateEvaluationUpdateOne) AddScore(v float64) *GateEvaluationUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetIteration sets the "iteration" field.
func (_u *GateEvaluationUpdateOne) SetIteration(v int) *GateEvaluationUpdateOne {
	_u.mutation.ResetIteration()
	_u.mutation.SetIteration(v)
	return _u
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_u *GateEvaluationUpdateOne) SetNillableIteration(v *int) *GateEvaluationUpdateOne {
	if v != nil {
		_u.SetIteration(*v)
	}
	return _u
}

// AddIteration adds value to the "iteration" field.
func (_u *GateEvaluationUpdateOne) AddIteration(v int) *GateEvaluationUpdateOne {
	_u.mutation.AddIteration(v)
	return _u
}

// SetFailedGates sets the "failed_gates" field.
func (_u *GateEvaluationUpdateOne) SetFailedGates(v []string) *GateEvaluationUpdateOne {
	_u.mutation.SetFailedGates(v)
	return _u
}

// AppendFailedGates appends value to the "failed_gates" field.
func (_u *GateEvaluationUpdateOne) AppendFailedGates(v []string) *GateEvaluationUpdateOne {
	_u.mutation.AppendFailedGates(v)
	return _u
}

// ClearFailedGates clears the value of the "failed_gates" field.
func (_u *GateEvaluationUpdateOne) ClearFailedGates() *GateEvaluationUpdateOne {
	_u.mutation.ClearFailedGates()
	return _u
}

// Mutation returns the GateEvaluationMutation object of the builder.
func (_u *GateEvaluationUpdateOne) Mutation() *GateEvaluationMutation {
	return _u.mutation
}

// Where appends a list predicates to the GateEvaluationUpdate builder.
func (_u *GateEvaluationUpdateOne) Where(ps ...predicate.GateEvaluation) *GateEvaluationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GateEvaluationUpdateOne) Select(field string, fields ...string) *GateEvaluationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GateEvaluation entity.
func (_u *GateEvaluationUpdateOne) Save(ctx context.Context) (*GateEvaluation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GateEvaluationUpdateOne) SaveX(ctx context.Context) *GateEvaluation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GateEvaluationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GateEvaluationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GateEvaluationUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := gateevaluation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "GateEvaluation.kind": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GateEvaluation.execution"`)
	}
	return nil
}

func (_u *GateEvaluationUpdateOne) sqlSave(ctx context.Context) (_node *GateEvaluation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gateevaluation.Table, gateevaluation.Columns, sqlgraph.NewFieldSpec(gateevaluation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GateEvaluation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gateevaluation.FieldID)
		for _, f := range fields {
			if !gateevaluation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gateevaluation.FieldID {
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
		_spec.SetField(gateevaluation.FieldWorkflowID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(gateevaluation.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(gateevaluation.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(gateevaluation.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gateevaluation.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gateevaluation.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Iteration(); ok {
		_spec.SetField(gateevaluation.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIteration(); ok {
		_spec.AddField(gateevaluation.FieldIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedGates(); ok {
		_spec.SetField(gateevaluation.FieldFailedGates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailedGates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gateevaluation.FieldFailedGates, value)
		})
	}
	if _u.mutation.FailedGatesCleared() {
		_spec.ClearField(gateevaluation.FieldFailedGates, field.TypeJSON)
	}
	_node = &GateEvaluation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gateevaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
