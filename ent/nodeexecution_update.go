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
	"github.com/maestro-works/maestro/ent/nodeexecution"
	"github.com/maestro-works/maestro/ent/predicate"
)

// NodeExecutionUpdate is the builder for updating NodeExecution entities.
type NodeExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *NodeExecutionMutation
}

// Where appends a list predicates to the NodeExecutionUpdate builder.
func (_u *NodeExecutionUpdate) Where(ps ...predicate.NodeExecution) *NodeExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *NodeExecutionUpdate) SetNodeID(v string) *NodeExecutionUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *NodeExecutionUpdate) SetNillableNodeID(v *string) *NodeExecutionUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetNodeType sets the "node_type" field.
func (_u *NodeExecutionUpdate) SetNodeType(v nodeexecution.NodeType) *NodeExecutionUpdate {
	_u.mutation.SetNodeType(v)
	return _u
}

// SetNillableNodeType sets the "node_type" field if the given value is not nil.
func (_u *NodeExecutionUpdate) SetNillableNodeType(v *nodeexecution.NodeType) *NodeExecutionUpdate {
	if v != nil {
		_u.SetNodeType(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *NodeExecutionUpdate) SetPhase(v string) *NodeExecutionUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *NodeExecutionUpdate) SetNillablePhase(v *string) *NodeExecutionUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// ClearPhase clears the value of the "phase" field.
func (_u *NodeExecutionUpdate) ClearPhase() *NodeExecutionUpdate {
	_u.mutation.ClearPhase()
	return _u
}

// SetStatus sets the "status" field.
func (_u *NodeExecutionUpdate) SetStatus(v nodeexecution.Status) *NodeExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NodeExecutionUpdate) SetNillableStatus(v *nodeexecution.Status) *NodeExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *NodeExecutionUpdate) SetAttempts(v int) *NodeExecutionUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *NodeExecutionUpdate) SetNillableAttempts(v *int) *NodeExecutionUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *NodeExecutionUpdate) AddAttempts(v int) *NodeExecutionUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetWave sets the "wave" field.
func (_u *NodeExecutionUpdate) SetWave(v int) *NodeExecutionUpdate {
	_u.mutation.ResetWave()
	_u.mutation.SetWave(v)
	return _u
}

// SetNillableWave sets the "wave" field if the given value is not nil.
func (_u *NodeExecutionUpdate) SetNillableWave(v *int) *NodeExecutionUpdate {
	if v != nil {
		_u.SetWave(*v)
	}
	return _u
}

// AddWave adds value to the "wave" field.
func (_u *NodeExecutionUpdate) AddWave(v int) *NodeExecutionUpdate {
	_u.mutation.AddWave(v)
	return _u
}

// SetAssignedPersona sets the "assigned_persona" field.
func (_u *NodeExecutionUpdate) SetAssignedPersona(v string) *NodeExecutionUpdate {
	_u.mutation.SetAssignedPersona(v)
	return _u
}

// SetNillableAssignedPersona sets the "assigned_persona" field if the given value is not nil.
func (_u *NodeExecutionUpdate) SetNillableAssignedPersona(v *string) *NodeExecutionUpdate {
	if v != nil {
		_u.SetAssignedPersona(*v)
	}
	return _u
}

// ClearAssignedPersona clears the value of the "assigned_persona" field.
func (_u *NodeExecutionUpdate) ClearAssignedPersona() *NodeExecutionUpdate {
	_u.mutation.ClearAssignedPersona()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *NodeExecutionUpdate) SetOutputs(v map[string]string) *NodeExecutionUpdate {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *NodeExecutionUpdate) ClearOutputs() *NodeExecutionUpdate {
	_u.mutation.ClearOutputs()
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *NodeExecutionUpdate) SetArtifacts(v []string) *NodeExecutionUpdate {
	_u.mutation.SetArtifacts(v)
	return _u
}

// AppendArtifacts appends value to the "artifacts" field.
func (_u *NodeExecutionUpdate) AppendArtifacts(v []string) *NodeExecutionUpdate {
	_u.mutation.AppendArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *NodeExecutionUpdate) ClearArtifacts() *NodeExecutionUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetReason sets the "reason" field.
func (_u *NodeExecutionUpdate) SetReason(v string) *NodeExecutionUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *NodeExecutionUpdate) SetNillableReason(v *string) *NodeExecutionUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *NodeExecutionUpdate) ClearReason() *NodeExecutionUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *NodeExecutionUpdate) SetStartedAt(v time.Time) *NodeExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *NodeExecutionUpdate) SetNillableStartedAt(v *time.Time) *NodeExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *NodeExecutionUpdate) ClearStartedAt() *NodeExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *NodeExecutionUpdate) SetCompletedAt(v time.Time) *NodeExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *NodeExecutionUpdate) SetNillableCompletedAt(v *time.Time) *NodeExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *NodeExecutionUpdate) ClearCompletedAt() *NodeExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the NodeExecutionMutation object of the builder.
func (_u *NodeExecutionUpdate) Mutation() *NodeExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NodeExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NodeExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeExecutionUpdate) check() error {
	if v, ok := _u.mutation.NodeType(); ok {
		if err := nodeexecution.NodeTypeValidator(v); err != nil {
			return &ValidationError{Name: "node_type", err: fmt.Errorf(`ent: validator failed for field "NodeExecution.node_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := nodeexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "NodeExecution.status": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NodeExecution.execution"`)
	}
	return nil
}

func (_u *NodeExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(nodeexecution.Table, nodeexecution.Columns, sqlgraph.NewFieldSpec(nodeexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(nodeexecution.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeType(); ok {
		_spec.SetField(nodeexecution.FieldNodeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(nodeexecution.FieldPhase, field.TypeString, value)
	}
	if _u.mutation.PhaseCleared() {
		_spec.ClearField(nodeexecution.FieldPhase, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(nodeexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(nodeexecution.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(nodeexecution.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Wave(); ok {
		_spec.SetField(nodeexecution.FieldWave, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWave(); ok {
		_spec.AddField(nodeexecution.FieldWave, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignedPersona(); ok {
		_spec.SetField(nodeexecution.FieldAssignedPersona, field.TypeString, value)
	}
	if _u.mutation.AssignedPersonaCleared() {
		_spec.ClearField(nodeexecution.FieldAssignedPersona, field.TypeString)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(nodeexecution.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(nodeexecution.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(nodeexecution.FieldArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, nodeexecution.FieldArtifacts, value)
		})
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(nodeexecution.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(nodeexecution.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(nodeexecution.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(nodeexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(nodeexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(nodeexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(nodeexecution.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nodeexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NodeExecutionUpdateOne is the builder for updating a single NodeExecution entity.
type NodeExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NodeExecutionMutation
}

// SetNodeID sets the "node_id" field.
func (_u *NodeExecutionUpdateOne) SetNodeID(v string) *NodeExecutionUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *NodeExecutionUpdateOne) SetNillableNodeID(v *string) *NodeExecutionUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetNodeType sets the "node_type" field.
func (_u *NodeExecutionUpdateOne) SetNodeType(v nodeexecution.NodeType) *NodeExecutionUpdateOne {
	_u.mutation.SetNodeType(v)
	return _u
}

// SetNillableNodeType sets the "node_type" field if the given value is not nil.
func (_u *NodeExecutionUpdateOne) SetNillableNodeType(v *nodeexecution.NodeType) *NodeExecutionUpdateOne {
	if v != nil {
		_u.SetNodeType(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *NodeExecutionUpdateOne) SetPhase(v string) *NodeExecutionUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *NodeExecutionUpdateOne) SetNillablePhase(v *string) *NodeExecutionUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// ClearPhase clears the value of the "phase" field.
func (_u *NodeExecutionUpdateOne) ClearPhase() *NodeExecutionUpdateOne {
	_u.mutation.ClearPhase()
	return _u
}

// SetStatus sets the "status" field.
func (_u *NodeExecutionUpdateOne) SetStatus(v nodeexecution.Status) *NodeExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NodeExecutionUpdateOne) SetNillableStatus(v *nodeexecution.Status) *NodeExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *NodeExecutionUpdateOne) SetAttempts(v int) *NodeExecutionUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *NodeExecutionUpdateOne) SetNillableAttempts(v *int) *NodeExecutionUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *NodeExecutionUpdateOne) AddAttempts(v int) *NodeExecutionUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetWave sets the "wave" field.
func (_u *NodeExecutionUpdateOne) SetWave(v int) *NodeExecutionUpdateOne {
	_u.mutation.ResetWave()
	_u.mutation.SetWave(v)
	return _u
}

// SetNillableWave sets the "wave" field if the given value is not nil.
func (_u *NodeExecutionUpdateOne) SetNillableWave(v *int) *NodeExecutionUpdateOne {
	if v != nil {
		_u.SetWave(*v)
	}
	return _u
}

// AddWave adds value to the "wave" field.
func (_u *NodeExecutionUpdateOne) AddWave(v int) *NodeExecutionUpdateOne {
	_u.mutation.AddWave(v)
	return _u
}

// SetAssignedPersona sets the "assigned_persona" field.
func (_u *NodeExecutionUpdateOne) SetAssignedPersona(v string) *NodeExecutionUpdateOne {
	_u.mutation.SetAssignedPersona(v)
	return _u
}

// SetNillableAssignedPersona sets the "assigned_persona" field if the given value is not nil.
func (_u *NodeExecutionUpdateOne) SetNillableAssignedPersona(v *string) *NodeExecutionUpdateOne {
	if v != nil {
		_u.SetAssignedPersona(*v)
	}
	return _u
}

// ClearAssignedPersona clears the value of the "assigned_persona" field.
func (_u *NodeExecutionUpdateOne) ClearAssignedPersona() *NodeExecutionUpdateOne {
	_u.mutation.ClearAssignedPersona()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *NodeExecutionUpdateOne) SetOutputs(v map[string]string) *NodeExecutionUpdateOne {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *NodeExecutionUpdateOne) ClearOutputs() *NodeExecutionUpdateOne {
	_u.mutation.ClearOutputs()
	return _u
}

// SetArtifacts sets the "artifacts" field.
func (_u *NodeExecutionUpdateOne) SetArtifacts(v []string) *NodeExecutionUpdateOne {
	_u.mutation.SetArtifacts(v)
	return _u
}

// AppendArtifacts appends value to the "artifacts" field.
func (_u *NodeExecutionUpdateOne) AppendArtifacts(v []string) *NodeExecutionUpdateOne {
	_u.mutation.AppendArtifacts(v)
	return _u
}

// ClearArtifacts clears the value of the "artifacts" field.
func (_u *NodeExecutionUpdateOne) ClearArtifacts() *NodeExecutionUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// SetReason sets the "reason" field.
func (_u *NodeExecutionUpdateOne) SetReason(v string) *NodeExecutionUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *NodeExecutionUpdateOne) SetNillableReason(v *string) *NodeExecutionUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *NodeExecutionUpdateOne) ClearReason() *NodeExecutionUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *NodeExecutionUpdateOne) SetStartedAt(v time.Time) *NodeExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *NodeExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *NodeExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *NodeExecutionUpdateOne) ClearStartedAt() *NodeExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *NodeExecutionUpdateOne) SetCompletedAt(v time.Time) *NodeExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *NodeExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *NodeExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *NodeExecutionUpdateOne) ClearCompletedAt() *NodeExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the NodeExecutionMutation object of the builder.
func (_u *NodeExecutionUpdateOne) Mutation() *NodeExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the NodeExecutionUpdate builder.
func (_u *NodeExecutionUpdateOne) Where(ps ...predicate.NodeExecution) *NodeExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NodeExecutionUpdateOne) Select(field string, fields ...string) *NodeExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NodeExecution entity.
func (_u *NodeExecutionUpdateOne) Save(ctx context.Context) (*NodeExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeExecutionUpdateOne) SaveX(ctx context.Context) *NodeExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NodeExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.NodeType(); ok {
		if err := nodeexecution.NodeTypeValidator(v); err != nil {
			return &ValidationError{Name: "node_type", err: fmt.Errorf(`ent: validator failed for field "NodeExecution.node_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := nodeexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "NodeExecution.status": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NodeExecution.execution"`)
	}
	return nil
}

func (_u *NodeExecutionUpdateOne) sqlSave(ctx context.Context) (_node *NodeExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(nodeexecution.Table, nodeexecution.Columns, sqlgraph.NewFieldSpec(nodeexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NodeExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, nodeexecution.FieldID)
		for _, f := range fields {
			if !nodeexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != nodeexecution.FieldID {
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
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(nodeexecution.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeType(); ok {
		_spec.SetField(nodeexecution.FieldNodeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(nodeexecution.FieldPhase, field.TypeString, value)
	}
	if _u.mutation.PhaseCleared() {
		_spec.ClearField(nodeexecution.FieldPhase, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(nodeexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(nodeexecution.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(nodeexecution.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Wave(); ok {
		_spec.SetField(nodeexecution.FieldWave, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWave(); ok {
		_spec.AddField(nodeexecution.FieldWave, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignedPersona(); ok {
		_spec.SetField(nodeexecution.FieldAssignedPersona, field.TypeString, value)
	}
	if _u.mutation.AssignedPersonaCleared() {
		_spec.ClearField(nodeexecution.FieldAssignedPersona, field.TypeString)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(nodeexecution.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(nodeexecution.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Artifacts(); ok {
		_spec.SetField(nodeexecution.FieldArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, nodeexecution.FieldArtifacts, value)
		})
	}
	if _u.mutation.ArtifactsCleared() {
		_spec.ClearField(nodeexecution.FieldArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(nodeexecution.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(nodeexecution.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(nodeexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(nodeexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(nodeexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(nodeexecution.FieldCompletedAt, field.TypeTime)
	}
	_node = &NodeExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nodeexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
