// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-works/maestro/ent/gateevaluation"
	"github.com/maestro-works/maestro/ent/workflowexecution"
)

// GateEvaluationCreate is the builder for creating a GateEvaluation entity.
type GateEvaluationCreate struct {
	config
	mutation *GateEvaluationMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *GateEvaluationCreate) SetExecutionID(v string) *GateEvaluationCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *GateEvaluationCreate) SetWorkflowID(v string) *GateEvaluationCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *GateEvaluationCreate) SetPhase(v string) *GateEvaluationCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *GateEvaluationCreate) SetKind(v gateevaluation.Kind) *GateEvaluationCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *GateEvaluationCreate) SetPassed(v bool) *GateEvaluationCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *GateEvaluationCreate) SetScore(v float64) *GateEvaluationCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *GateEvaluationCreate) SetNillableScore(v *float64) *GateEvaluationCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetIteration sets the "iteration" field.
func (_c *GateEvaluationCreate) SetIteration(v int) *GateEvaluationCreate {
	_c.mutation.SetIteration(v)
	return _c
}

// SetNillableIteration sets the "iteration" field if the given value is not nil.
func (_c *GateEvaluationCreate) SetNillableIteration(v *int) *GateEvaluationCreate {
	if v != nil {
		_c.SetIteration(*v)
	}
	return _c
}

// SetFailedGates sets the "failed_gates" field.
func (_c *GateEvaluationCreate) SetFailedGates(v []string) *GateEvaluationCreate {
	_c.mutation.SetFailedGates(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GateEvaluationCreate) SetCreatedAt(v time.Time) *GateEvaluationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GateEvaluationCreate) SetNillableCreatedAt(v *time.Time) *GateEvaluationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GateEvaluationCreate) SetID(v string) *GateEvaluationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetExecution sets the "execution" edge to the WorkflowExecution entity.
func (_c *GateEvaluationCreate) SetExecution(v *WorkflowExecution) *GateEvaluationCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the GateEvaluationMutation object of the builder.
func (_c *GateEvaluationCreate) Mutation() *GateEvaluationMutation {
	return _c.mutation
}

// Save creates the GateEvaluation in the database.
func (_c *GateEvaluationCreate) Save(ctx context.Context) (*GateEvaluation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GateEvaluationCreate) SaveX(ctx context.Context) *GateEvaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GateEvaluationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GateEvaluationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GateEvaluationCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := gateevaluation.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Iteration(); !ok {
		v := gateevaluation.DefaultIteration
		_c.mutation.SetIteration(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gateevaluation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GateEvaluationCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "GateEvaluation.execution_id"`)}
	}
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "GateEvaluation.workflow_id"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "GateEvaluation.phase"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "GateEvaluation.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := gateevaluation.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "GateEvaluation.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "GateEvaluation.passed"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "GateEvaluation.score"`)}
	}
	if _, ok := _c.mutation.Iteration(); !ok {
		return &ValidationError{Name: "iteration", err: errors.New(`ent: missing required field "GateEvaluation.iteration"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GateEvaluation.created_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "GateEvaluation.execution"`)}
	}
	return nil
}

func (_c *GateEvaluationCreate) sqlSave(ctx context.Context) (*GateEvaluation, error) {
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
			return nil, fmt.Errorf("unexpected GateEvaluation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GateEvaluationCreate) createSpec() (*GateEvaluation, *sqlgraph.CreateSpec) {
	var (
		_node = &GateEvaluation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gateevaluation.Table, sqlgraph.NewFieldSpec(gateevaluation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkflowID(); ok {
		_spec.SetField(gateevaluation.FieldWorkflowID, field.TypeString, value)
		_node.WorkflowID = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(gateevaluation.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(gateevaluation.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(gateevaluation.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(gateevaluation.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Iteration(); ok {
		_spec.SetField(gateevaluation.FieldIteration, field.TypeInt, value)
		_node.Iteration = value
	}
	if value, ok := _c.mutation.FailedGates(); ok {
		_spec.SetField(gateevaluation.FieldFailedGates, field.TypeJSON, value)
		_node.FailedGates = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gateevaluation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gateevaluation.ExecutionTable,
			Columns: []string{gateevaluation.ExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GateEvaluationCreateBulk is the builder for creating many GateEvaluation entities in bulk.
type GateEvaluationCreateBulk struct {
	config
	err      error
	builders []*GateEvaluationCreate
}

// Save creates the GateEvaluation entities in the database.
func (_c *GateEvaluationCreateBulk) Save(ctx context.Context) ([]*GateEvaluation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GateEvaluation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GateEvaluationMutation)
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
func (_c *GateEvaluationCreateBulk) SaveX(ctx context.Context) []*GateEvaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GateEvaluationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GateEvaluationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
