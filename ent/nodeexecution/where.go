// Code generated by ent, DO NOT EDIT.

package nodeexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-works/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldContainsFold(FieldID, id))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldExecutionID, v))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldNodeID, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldPhase, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldAttempts, v))
}

// Wave applies equality check predicate on the "wave" field. It's identical to WaveEQ.
func Wave(v int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldWave, v))
}

// AssignedPersona applies equality check predicate on the "assigned_persona" field. It's identical to AssignedPersonaEQ.
func AssignedPersona(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldAssignedPersona, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldReason, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldContainsFold(FieldExecutionID, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotIn(FieldNodeID, vs...))
}

// NodeIDGT applies the GT predicate on the "node_id" field.
func NodeIDGT(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGT(FieldNodeID, v))
}

// NodeIDGTE applies the GTE predicate on the "node_id" field.
func NodeIDGTE(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGTE(FieldNodeID, v))
}

// NodeIDLT applies the LT predicate on the "node_id" field.
func NodeIDLT(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLT(FieldNodeID, v))
}

// NodeIDLTE applies the LTE predicate on the "node_id" field.
func NodeIDLTE(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLTE(FieldNodeID, v))
}

// NodeIDContains applies the Contains predicate on the "node_id" field.
func NodeIDContains(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldContains(FieldNodeID, v))
}

// NodeIDHasPrefix applies the HasPrefix predicate on the "node_id" field.
func NodeIDHasPrefix(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldHasPrefix(FieldNodeID, v))
}

// NodeIDHasSuffix applies the HasSuffix predicate on the "node_id" field.
func NodeIDHasSuffix(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldHasSuffix(FieldNodeID, v))
}

// NodeIDEqualFold applies the EqualFold predicate on the "node_id" field.
func NodeIDEqualFold(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEqualFold(FieldNodeID, v))
}

// NodeIDContainsFold applies the ContainsFold predicate on the "node_id" field.
func NodeIDContainsFold(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldContainsFold(FieldNodeID, v))
}

// NodeTypeEQ applies the EQ predicate on the "node_type" field.
func NodeTypeEQ(v NodeType) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldNodeType, v))
}

// NodeTypeNEQ applies the NEQ predicate on the "node_type" field.
func NodeTypeNEQ(v NodeType) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNEQ(FieldNodeType, v))
}

// NodeTypeIn applies the In predicate on the "node_type" field.
func NodeTypeIn(vs ...NodeType) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIn(FieldNodeType, vs...))
}

// NodeTypeNotIn applies the NotIn predicate on the "node_type" field.
func NodeTypeNotIn(vs ...NodeType) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotIn(FieldNodeType, vs...))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseIsNil applies the IsNil predicate on the "phase" field.
func PhaseIsNil() predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIsNull(FieldPhase))
}

// PhaseNotNil applies the NotNil predicate on the "phase" field.
func PhaseNotNil() predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotNull(FieldPhase))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldContainsFold(FieldPhase, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLTE(FieldAttempts, v))
}

// WaveEQ applies the EQ predicate on the "wave" field.
func WaveEQ(v int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldWave, v))
}

// WaveNEQ applies the NEQ predicate on the "wave" field.
func WaveNEQ(v int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNEQ(FieldWave, v))
}

// WaveIn applies the In predicate on the "wave" field.
func WaveIn(vs ...int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIn(FieldWave, vs...))
}

// WaveNotIn applies the NotIn predicate on the "wave" field.
func WaveNotIn(vs ...int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotIn(FieldWave, vs...))
}

// WaveGT applies the GT predicate on the "wave" field.
func WaveGT(v int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGT(FieldWave, v))
}

// WaveGTE applies the GTE predicate on the "wave" field.
func WaveGTE(v int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGTE(FieldWave, v))
}

// WaveLT applies the LT predicate on the "wave" field.
func WaveLT(v int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLT(FieldWave, v))
}

// WaveLTE applies the LTE predicate on the "wave" field.
func WaveLTE(v int) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLTE(FieldWave, v))
}

// AssignedPersonaEQ applies the EQ predicate on the "assigned_persona" field.
func AssignedPersonaEQ(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldAssignedPersona, v))
}

// AssignedPersonaNEQ applies the NEQ predicate on the "assigned_persona" field.
func AssignedPersonaNEQ(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNEQ(FieldAssignedPersona, v))
}

// AssignedPersonaIn applies the In predicate on the "assigned_persona" field.
func AssignedPersonaIn(vs ...string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIn(FieldAssignedPersona, vs...))
}

// AssignedPersonaNotIn applies the NotIn predicate on the "assigned_persona" field.
func AssignedPersonaNotIn(vs ...string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotIn(FieldAssignedPersona, vs...))
}

// AssignedPersonaGT applies the GT predicate on the "assigned_persona" field.
func AssignedPersonaGT(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGT(FieldAssignedPersona, v))
}

// AssignedPersonaGTE applies the GTE predicate on the "assigned_persona" field.
func AssignedPersonaGTE(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGTE(FieldAssignedPersona, v))
}

// AssignedPersonaLT applies the LT predicate on the "assigned_persona" field.
func AssignedPersonaLT(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLT(FieldAssignedPersona, v))
}

// AssignedPersonaLTE applies the LTE predicate on the "assigned_persona" field.
func AssignedPersonaLTE(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLTE(FieldAssignedPersona, v))
}

// AssignedPersonaContains applies the Contains predicate on the "assigned_persona" field.
func AssignedPersonaContains(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldContains(FieldAssignedPersona, v))
}

// AssignedPersonaHasPrefix applies the HasPrefix predicate on the "assigned_persona" field.
func AssignedPersonaHasPrefix(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldHasPrefix(FieldAssignedPersona, v))
}

// AssignedPersonaHasSuffix applies the HasSuffix predicate on the "assigned_persona" field.
func AssignedPersonaHasSuffix(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldHasSuffix(FieldAssignedPersona, v))
}

// AssignedPersonaIsNil applies the IsNil predicate on the "assigned_persona" field.
func AssignedPersonaIsNil() predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIsNull(FieldAssignedPersona))
}

// AssignedPersonaNotNil applies the NotNil predicate on the "assigned_persona" field.
func AssignedPersonaNotNil() predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotNull(FieldAssignedPersona))
}

// AssignedPersonaEqualFold applies the EqualFold predicate on the "assigned_persona" field.
func AssignedPersonaEqualFold(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEqualFold(FieldAssignedPersona, v))
}

// AssignedPersonaContainsFold applies the ContainsFold predicate on the "assigned_persona" field.
func AssignedPersonaContainsFold(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldContainsFold(FieldAssignedPersona, v))
}

// OutputsIsNil applies the IsNil predicate on the "outputs" field.
func OutputsIsNil() predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIsNull(FieldOutputs))
}

// OutputsNotNil applies the NotNil predicate on the "outputs" field.
func OutputsNotNil() predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotNull(FieldOutputs))
}

// ArtifactsIsNil applies the IsNil predicate on the "artifacts" field.
func ArtifactsIsNil() predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIsNull(FieldArtifacts))
}

// ArtifactsNotNil applies the NotNil predicate on the "artifacts" field.
func ArtifactsNotNil() predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotNull(FieldArtifacts))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldContainsFold(FieldReason, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.NodeExecution {
	return predicate.NodeExecution(sql.FieldNotNull(FieldCompletedAt))
}

// HasExecution applies the HasEdge predicate on the "execution" edge.
func HasExecution() predicate.NodeExecution {
	return predicate.NodeExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionWith applies the HasEdge predicate on the "execution" edge with a given conditions (other predicates).
func HasExecutionWith(preds ...predicate.WorkflowExecution) predicate.NodeExecution {
	return predicate.NodeExecution(func(s *sql.Selector) {
		step := newExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NodeExecution) predicate.NodeExecution {
	return predicate.NodeExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NodeExecution) predicate.NodeExecution {
	return predicate.NodeExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NodeExecution) predicate.NodeExecution {
	return predicate.NodeExecution(sql.NotPredicates(p))
}
