// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-works/maestro/ent/nodeexecution"
	"github.com/maestro-works/maestro/ent/workflowexecution"
)

// NodeExecutionCreate is the builder for creating a NodeExecution entity.
type NodeExecutionCreate struct {
	config
	mutation *NodeExecutionMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *NodeExecutionCreate) SetExecutionID(v string) *NodeExecutionCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *NodeExecutionCreate) SetNodeID(v string) *NodeExecutionCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetNodeType sets the "node_type" field.
func (_c *NodeExecutionCreate) SetNodeType(v nodeexecution.NodeType) *NodeExecutionCreate {
	_c.mutation.SetNodeType(v)
	return _c
}

// SetNillableNodeType sets the "node_type" field if the given value is not nil.
func (_c *NodeExecutionCreate) SetNillableNodeType(v *nodeexecution.NodeType) *NodeExecutionCreate {
	if v != nil {
		_c.SetNodeType(*v)
	}
	return _c
}

// SetPhase sets the "phase" field.
func (_c *NodeExecutionCreate) SetPhase(v string) *NodeExecutionCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *NodeExecutionCreate) SetNillablePhase(v *string) *NodeExecutionCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *NodeExecutionCreate) SetStatus(v nodeexecution.Status) *NodeExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *NodeExecutionCreate) SetNillableStatus(v *nodeexecution.Status) *NodeExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *NodeExecutionCreate) SetAttempts(v int) *NodeExecutionCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *NodeExecutionCreate) SetNillableAttempts(v *int) *NodeExecutionCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetWave sets the "wave" field.
func (_c *NodeExecutionCreate) SetWave(v int) *NodeExecutionCreate {
	_c.mutation.SetWave(v)
	return _c
}

// SetNillableWave sets the "wave" field if the given value is not nil.
func (_c *NodeExecutionCreate) SetNillableWave(v *int) *NodeExecutionCreate {
	if v != nil {
		_c.SetWave(*v)
	}
	return _c
}

// SetAssignedPersona sets the "assigned_persona" field.
func (_c *NodeExecutionCreate) SetAssignedPersona(v string) *NodeExecutionCreate {
	_c.mutation.SetAssignedPersona(v)
	return _c
}

// SetNillableAssignedPersona sets the "assigned_persona" field if the given value is not nil.
func (_c *NodeExecutionCreate) SetNillableAssignedPersona(v *string) *NodeExecutionCreate {
	if v != nil {
		_c.SetAssignedPersona(*v)
	}
	return _c
}

// SetOutputs sets the "outputs" field.
func (_c *NodeExecutionCreate) SetOutputs(v map[string]string) *NodeExecutionCreate {
	_c.mutation.SetOutputs(v)
	return _c
}

// SetArtifacts sets the "artifacts" field.
func (_c *NodeExecutionCreate) SetArtifacts(v []string) *NodeExecutionCreate {
	_c.mutation.SetArtifacts(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *NodeExecutionCreate) SetReason(v string) *NodeExecutionCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *NodeExecutionCreate) SetNillableReason(v *string) *NodeExecutionCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *NodeExecutionCreate) SetStartedAt(v time.Time) *NodeExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *NodeExecutionCreate) SetNillableStartedAt(v *time.Time) *NodeExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *NodeExecutionCreate) SetCompletedAt(v time.Time) *NodeExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *NodeExecutionCreate) SetNillableCompletedAt(v *time.Time) *NodeExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NodeExecutionCreate) SetID(v string) *NodeExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetExecution sets the "execution" edge to the WorkflowExecution entity.
func (_c *NodeExecutionCreate) SetExecution(v *WorkflowExecution) *NodeExecutionCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the NodeExecutionMutation object of the builder.
func (_c *NodeExecutionCreate) Mutation() *NodeExecutionMutation {
	return _c.mutation
}

// Save creates the NodeExecution in the database.
func (_c *NodeExecutionCreate) Save(ctx context.Context) (*NodeExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NodeExecutionCreate) SaveX(ctx context.Context) *NodeExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NodeExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NodeExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NodeExecutionCreate) defaults() {
	if _, ok := _c.mutation.NodeType(); !ok {
		v := nodeexecution.DefaultNodeType
		_c.mutation.SetNodeType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := nodeexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := nodeexecution.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.Wave(); !ok {
		v := nodeexecution.DefaultWave
		_c.mutation.SetWave(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NodeExecutionCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "NodeExecution.execution_id"`)}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "NodeExecution.node_id"`)}
	}
	if _, ok := _c.mutation.NodeType(); !ok {
		return &ValidationError{Name: "node_type", err: errors.New(`ent: missing required field "NodeExecution.node_type"`)}
	}
	if v, ok := _c.mutation.NodeType(); ok {
		if err := nodeexecution.NodeTypeValidator(v); err != nil {
			return &ValidationError{Name: "node_type", err: fmt.Errorf(`ent: validator failed for field "NodeExecution.node_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "NodeExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := nodeexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "NodeExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "NodeExecution.attempts"`)}
	}
	if _, ok := _c.mutation.Wave(); !ok {
		return &ValidationError{Name: "wave", err: errors.New(`ent: missing required field "NodeExecution.wave"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "NodeExecution.execution"`)}
	}
	return nil
}

func (_c *NodeExecutionCreate) sqlSave(ctx context.Context) (*NodeExecution, error) {
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
			return nil, fmt.Errorf("unexpected NodeExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NodeExecutionCreate) createSpec() (*NodeExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &NodeExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(nodeexecution.Table, sqlgraph.NewFieldSpec(nodeexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(nodeexecution.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.NodeType(); ok {
		_spec.SetField(nodeexecution.FieldNodeType, field.TypeEnum, value)
		_node.NodeType = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(nodeexecution.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(nodeexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(nodeexecution.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Wave(); ok {
		_spec.SetField(nodeexecution.FieldWave, field.TypeInt, value)
		_node.Wave = value
	}
	if value, ok := _c.mutation.AssignedPersona(); ok {
		_spec.SetField(nodeexecution.FieldAssignedPersona, field.TypeString, value)
		_node.AssignedPersona = value
	}
	if value, ok := _c.mutation.Outputs(); ok {
		_spec.SetField(nodeexecution.FieldOutputs, field.TypeJSON, value)
		_node.Outputs = value
	}
	if value, ok := _c.mutation.Artifacts(); ok {
		_spec.SetField(nodeexecution.FieldArtifacts, field.TypeJSON, value)
		_node.Artifacts = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(nodeexecution.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(nodeexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(nodeexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   nodeexecution.ExecutionTable,
			Columns: []string{nodeexecution.ExecutionColumn},
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

// NodeExecutionCreateBulk is the builder for creating many NodeExecution entities in bulk.
type NodeExecutionCreateBulk struct {
	config
	err      error
	builders []*NodeExecutionCreate
}

// Save creates the NodeExecution entities in the database.
func (_c *NodeExecutionCreateBulk) Save(ctx context.Context) ([]*NodeExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NodeExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NodeExecutionMutation)
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
func (_c *NodeExecutionCreateBulk) SaveX(ctx context.Context) []*NodeExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NodeExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NodeExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
