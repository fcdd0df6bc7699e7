// Code generated by ent, DO NOT EDIT.

package bypassrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/maestro-works/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldWorkflowID, v))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldExecutionID, v))
}

// Gate applies equality check predicate on the "gate" field. It's identical to GateEQ.
func Gate(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldGate, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldPhase, v))
}

// CurrentValue applies equality check predicate on the "current_value" field. It's identical to CurrentValueEQ.
func CurrentValue(v float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldCurrentValue, v))
}

// Threshold applies equality check predicate on the "threshold" field. It's identical to ThresholdEQ.
func Threshold(v float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldThreshold, v))
}

// Justification applies equality check predicate on the "justification" field. It's identical to JustificationEQ.
func Justification(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldJustification, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldExpiresAt, v))
}

// RemediationPlan applies equality check predicate on the "remediation_plan" field. It's identical to RemediationPlanEQ.
func RemediationPlan(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldRemediationPlan, v))
}

// RequestedBy applies equality check predicate on the "requested_by" field. It's identical to RequestedByEQ.
func RequestedBy(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldRequestedBy, v))
}

// ApprovedBy applies equality check predicate on the "approved_by" field. It's identical to ApprovedByEQ.
func ApprovedBy(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldApprovedBy, v))
}

// ApprovalLevel applies equality check predicate on the "approval_level" field. It's identical to ApprovalLevelEQ.
func ApprovalLevel(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldApprovalLevel, v))
}

// AdrPath applies equality check predicate on the "adr_path" field. It's identical to AdrPathEQ.
func AdrPath(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldAdrPath, v))
}

// RejectionReason applies equality check predicate on the "rejection_reason" field. It's identical to RejectionReasonEQ.
func RejectionReason(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldRejectionReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldDecidedAt, v))
}

// ClosedAt applies equality check predicate on the "closed_at" field. It's identical to ClosedAtEQ.
func ClosedAt(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldClosedAt, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDIsNil applies the IsNil predicate on the "workflow_id" field.
func WorkflowIDIsNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIsNull(FieldWorkflowID))
}

// WorkflowIDNotNil applies the NotNil predicate on the "workflow_id" field.
func WorkflowIDNotNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotNull(FieldWorkflowID))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContainsFold(FieldWorkflowID, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDIsNil applies the IsNil predicate on the "execution_id" field.
func ExecutionIDIsNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIsNull(FieldExecutionID))
}

// ExecutionIDNotNil applies the NotNil predicate on the "execution_id" field.
func ExecutionIDNotNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotNull(FieldExecutionID))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContainsFold(FieldExecutionID, v))
}

// GateEQ applies the EQ predicate on the "gate" field.
func GateEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldGate, v))
}

// GateNEQ applies the NEQ predicate on the "gate" field.
func GateNEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldGate, v))
}

// GateIn applies the In predicate on the "gate" field.
func GateIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldGate, vs...))
}

// GateNotIn applies the NotIn predicate on the "gate" field.
func GateNotIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldGate, vs...))
}

// GateGT applies the GT predicate on the "gate" field.
func GateGT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldGate, v))
}

// GateGTE applies the GTE predicate on the "gate" field.
func GateGTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldGate, v))
}

// GateLT applies the LT predicate on the "gate" field.
func GateLT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldGate, v))
}

// GateLTE applies the LTE predicate on the "gate" field.
func GateLTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldGate, v))
}

// GateContains applies the Contains predicate on the "gate" field.
func GateContains(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContains(FieldGate, v))
}

// GateHasPrefix applies the HasPrefix predicate on the "gate" field.
func GateHasPrefix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasPrefix(FieldGate, v))
}

// GateHasSuffix applies the HasSuffix predicate on the "gate" field.
func GateHasSuffix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasSuffix(FieldGate, v))
}

// GateEqualFold applies the EqualFold predicate on the "gate" field.
func GateEqualFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEqualFold(FieldGate, v))
}

// GateContainsFold applies the ContainsFold predicate on the "gate" field.
func GateContainsFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContainsFold(FieldGate, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContainsFold(FieldPhase, v))
}

// CurrentValueEQ applies the EQ predicate on the "current_value" field.
func CurrentValueEQ(v float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldCurrentValue, v))
}

// CurrentValueNEQ applies the NEQ predicate on the "current_value" field.
func CurrentValueNEQ(v float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldCurrentValue, v))
}

// CurrentValueIn applies the In predicate on the "current_value" field.
func CurrentValueIn(vs ...float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldCurrentValue, vs...))
}

// CurrentValueNotIn applies the NotIn predicate on the "current_value" field.
func CurrentValueNotIn(vs ...float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldCurrentValue, vs...))
}

// CurrentValueGT applies the GT predicate on the "current_value" field.
func CurrentValueGT(v float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldCurrentValue, v))
}

// CurrentValueGTE applies the GTE predicate on the "current_value" field.
func CurrentValueGTE(v float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldCurrentValue, v))
}

// CurrentValueLT applies the LT predicate on the "current_value" field.
func CurrentValueLT(v float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldCurrentValue, v))
}

// CurrentValueLTE applies the LTE predicate on the "current_value" field.
func CurrentValueLTE(v float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldCurrentValue, v))
}

// ThresholdEQ applies the EQ predicate on the "threshold" field.
func ThresholdEQ(v float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldThreshold, v))
}

// ThresholdNEQ applies the NEQ predicate on the "threshold" field.
func ThresholdNEQ(v float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldThreshold, v))
}

// ThresholdIn applies the In predicate on the "threshold" field.
func ThresholdIn(vs ...float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldThreshold, vs...))
}

// ThresholdNotIn applies the NotIn predicate on the "threshold" field.
func ThresholdNotIn(vs ...float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldThreshold, vs...))
}

// ThresholdGT applies the GT predicate on the "threshold" field.
func ThresholdGT(v float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldThreshold, v))
}

// ThresholdGTE applies the GTE predicate on the "threshold" field.
func ThresholdGTE(v float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldThreshold, v))
}

// ThresholdLT applies the LT predicate on the "threshold" field.
func ThresholdLT(v float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldThreshold, v))
}

// ThresholdLTE applies the LTE predicate on the "threshold" field.
func ThresholdLTE(v float64) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldThreshold, v))
}

// JustificationEQ applies the EQ predicate on the "justification" field.
func JustificationEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldJustification, v))
}

// JustificationNEQ applies the NEQ predicate on the "justification" field.
func JustificationNEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldJustification, v))
}

// JustificationIn applies the In predicate on the "justification" field.
func JustificationIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldJustification, vs...))
}

// JustificationNotIn applies the NotIn predicate on the "justification" field.
func JustificationNotIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldJustification, vs...))
}

// JustificationGT applies the GT predicate on the "justification" field.
func JustificationGT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldJustification, v))
}

// JustificationGTE applies the GTE predicate on the "justification" field.
func JustificationGTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldJustification, v))
}

// JustificationLT applies the LT predicate on the "justification" field.
func JustificationLT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldJustification, v))
}

// JustificationLTE applies the LTE predicate on the "justification" field.
func JustificationLTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldJustification, v))
}

// JustificationContains applies the Contains predicate on the "justification" field.
func JustificationContains(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContains(FieldJustification, v))
}

// JustificationHasPrefix applies the HasPrefix predicate on the "justification" field.
func JustificationHasPrefix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasPrefix(FieldJustification, v))
}

// JustificationHasSuffix applies the HasSuffix predicate on the "justification" field.
func JustificationHasSuffix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasSuffix(FieldJustification, v))
}

// JustificationEqualFold applies the EqualFold predicate on the "justification" field.
func JustificationEqualFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEqualFold(FieldJustification, v))
}

// JustificationContainsFold applies the ContainsFold predicate on the "justification" field.
func JustificationContainsFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContainsFold(FieldJustification, v))
}

// TechnicalRiskEQ applies the EQ predicate on the "technical_risk" field.
func TechnicalRiskEQ(v TechnicalRisk) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldTechnicalRisk, v))
}

// TechnicalRiskNEQ applies the NEQ predicate on the "technical_risk" field.
func TechnicalRiskNEQ(v TechnicalRisk) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldTechnicalRisk, v))
}

// TechnicalRiskIn applies the In predicate on the "technical_risk" field.
func TechnicalRiskIn(vs ...TechnicalRisk) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldTechnicalRisk, vs...))
}

// TechnicalRiskNotIn applies the NotIn predicate on the "technical_risk" field.
func TechnicalRiskNotIn(vs ...TechnicalRisk) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldTechnicalRisk, vs...))
}

// BusinessRiskEQ applies the EQ predicate on the "business_risk" field.
func BusinessRiskEQ(v BusinessRisk) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldBusinessRisk, v))
}

// BusinessRiskNEQ applies the NEQ predicate on the "business_risk" field.
func BusinessRiskNEQ(v BusinessRisk) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldBusinessRisk, v))
}

// BusinessRiskIn applies the In predicate on the "business_risk" field.
func BusinessRiskIn(vs ...BusinessRisk) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldBusinessRisk, vs...))
}

// BusinessRiskNotIn applies the NotIn predicate on the "business_risk" field.
func BusinessRiskNotIn(vs ...BusinessRisk) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldBusinessRisk, vs...))
}

// SecurityRiskEQ applies the EQ predicate on the "security_risk" field.
func SecurityRiskEQ(v SecurityRisk) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldSecurityRisk, v))
}

// SecurityRiskNEQ applies the NEQ predicate on the "security_risk" field.
func SecurityRiskNEQ(v SecurityRisk) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldSecurityRisk, v))
}

// SecurityRiskIn applies the In predicate on the "security_risk" field.
func SecurityRiskIn(vs ...SecurityRisk) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldSecurityRisk, vs...))
}

// SecurityRiskNotIn applies the NotIn predicate on the "security_risk" field.
func SecurityRiskNotIn(vs ...SecurityRisk) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldSecurityRisk, vs...))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v Duration) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v Duration) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...Duration) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...Duration) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldDuration, vs...))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotNull(FieldExpiresAt))
}

// RemediationPlanEQ applies the EQ predicate on the "remediation_plan" field.
func RemediationPlanEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldRemediationPlan, v))
}

// RemediationPlanNEQ applies the NEQ predicate on the "remediation_plan" field.
func RemediationPlanNEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldRemediationPlan, v))
}

// RemediationPlanIn applies the In predicate on the "remediation_plan" field.
func RemediationPlanIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldRemediationPlan, vs...))
}

// RemediationPlanNotIn applies the NotIn predicate on the "remediation_plan" field.
func RemediationPlanNotIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldRemediationPlan, vs...))
}

// RemediationPlanGT applies the GT predicate on the "remediation_plan" field.
func RemediationPlanGT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldRemediationPlan, v))
}

// RemediationPlanGTE applies the GTE predicate on the "remediation_plan" field.
func RemediationPlanGTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldRemediationPlan, v))
}

// RemediationPlanLT applies the LT predicate on the "remediation_plan" field.
func RemediationPlanLT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldRemediationPlan, v))
}

// RemediationPlanLTE applies the LTE predicate on the "remediation_plan" field.
func RemediationPlanLTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldRemediationPlan, v))
}

// RemediationPlanContains applies the Contains predicate on the "remediation_plan" field.
func RemediationPlanContains(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContains(FieldRemediationPlan, v))
}

// RemediationPlanHasPrefix applies the HasPrefix predicate on the "remediation_plan" field.
func RemediationPlanHasPrefix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasPrefix(FieldRemediationPlan, v))
}

// RemediationPlanHasSuffix applies the HasSuffix predicate on the "remediation_plan" field.
func RemediationPlanHasSuffix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasSuffix(FieldRemediationPlan, v))
}

// RemediationPlanIsNil applies the IsNil predicate on the "remediation_plan" field.
func RemediationPlanIsNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIsNull(FieldRemediationPlan))
}

// RemediationPlanNotNil applies the NotNil predicate on the "remediation_plan" field.
func RemediationPlanNotNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotNull(FieldRemediationPlan))
}

// RemediationPlanEqualFold applies the EqualFold predicate on the "remediation_plan" field.
func RemediationPlanEqualFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEqualFold(FieldRemediationPlan, v))
}

// RemediationPlanContainsFold applies the ContainsFold predicate on the "remediation_plan" field.
func RemediationPlanContainsFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContainsFold(FieldRemediationPlan, v))
}

// CompensatingControlsIsNil applies the IsNil predicate on the "compensating_controls" field.
func CompensatingControlsIsNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIsNull(FieldCompensatingControls))
}

// CompensatingControlsNotNil applies the NotNil predicate on the "compensating_controls" field.
func CompensatingControlsNotNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotNull(FieldCompensatingControls))
}

// FollowUpTasksIsNil applies the IsNil predicate on the "follow_up_tasks" field.
func FollowUpTasksIsNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIsNull(FieldFollowUpTasks))
}

// FollowUpTasksNotNil applies the NotNil predicate on the "follow_up_tasks" field.
func FollowUpTasksNotNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotNull(FieldFollowUpTasks))
}

// RequestedByEQ applies the EQ predicate on the "requested_by" field.
func RequestedByEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldRequestedBy, v))
}

// RequestedByNEQ applies the NEQ predicate on the "requested_by" field.
func RequestedByNEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldRequestedBy, v))
}

// RequestedByIn applies the In predicate on the "requested_by" field.
func RequestedByIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldRequestedBy, vs...))
}

// RequestedByNotIn applies the NotIn predicate on the "requested_by" field.
func RequestedByNotIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldRequestedBy, vs...))
}

// RequestedByGT applies the GT predicate on the "requested_by" field.
func RequestedByGT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldRequestedBy, v))
}

// RequestedByGTE applies the GTE predicate on the "requested_by" field.
func RequestedByGTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldRequestedBy, v))
}

// RequestedByLT applies the LT predicate on the "requested_by" field.
func RequestedByLT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldRequestedBy, v))
}

// RequestedByLTE applies the LTE predicate on the "requested_by" field.
func RequestedByLTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldRequestedBy, v))
}

// RequestedByContains applies the Contains predicate on the "requested_by" field.
func RequestedByContains(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContains(FieldRequestedBy, v))
}

// RequestedByHasPrefix applies the HasPrefix predicate on the "requested_by" field.
func RequestedByHasPrefix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasPrefix(FieldRequestedBy, v))
}

// RequestedByHasSuffix applies the HasSuffix predicate on the "requested_by" field.
func RequestedByHasSuffix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasSuffix(FieldRequestedBy, v))
}

// RequestedByEqualFold applies the EqualFold predicate on the "requested_by" field.
func RequestedByEqualFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEqualFold(FieldRequestedBy, v))
}

// RequestedByContainsFold applies the ContainsFold predicate on the "requested_by" field.
func RequestedByContainsFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContainsFold(FieldRequestedBy, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// ApprovedByEQ applies the EQ predicate on the "approved_by" field.
func ApprovedByEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldApprovedBy, v))
}

// ApprovedByNEQ applies the NEQ predicate on the "approved_by" field.
func ApprovedByNEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldApprovedBy, v))
}

// ApprovedByIn applies the In predicate on the "approved_by" field.
func ApprovedByIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldApprovedBy, vs...))
}

// ApprovedByNotIn applies the NotIn predicate on the "approved_by" field.
func ApprovedByNotIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldApprovedBy, vs...))
}

// ApprovedByGT applies the GT predicate on the "approved_by" field.
func ApprovedByGT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldApprovedBy, v))
}

// ApprovedByGTE applies the GTE predicate on the "approved_by" field.
func ApprovedByGTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldApprovedBy, v))
}

// ApprovedByLT applies the LT predicate on the "approved_by" field.
func ApprovedByLT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldApprovedBy, v))
}

// ApprovedByLTE applies the LTE predicate on the "approved_by" field.
func ApprovedByLTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldApprovedBy, v))
}

// ApprovedByContains applies the Contains predicate on the "approved_by" field.
func ApprovedByContains(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContains(FieldApprovedBy, v))
}

// ApprovedByHasPrefix applies the HasPrefix predicate on the "approved_by" field.
func ApprovedByHasPrefix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasPrefix(FieldApprovedBy, v))
}

// ApprovedByHasSuffix applies the HasSuffix predicate on the "approved_by" field.
func ApprovedByHasSuffix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasSuffix(FieldApprovedBy, v))
}

// ApprovedByIsNil applies the IsNil predicate on the "approved_by" field.
func ApprovedByIsNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIsNull(FieldApprovedBy))
}

// ApprovedByNotNil applies the NotNil predicate on the "approved_by" field.
func ApprovedByNotNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotNull(FieldApprovedBy))
}

// ApprovedByEqualFold applies the EqualFold predicate on the "approved_by" field.
func ApprovedByEqualFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEqualFold(FieldApprovedBy, v))
}

// ApprovedByContainsFold applies the ContainsFold predicate on the "approved_by" field.
func ApprovedByContainsFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContainsFold(FieldApprovedBy, v))
}

// ApprovalLevelEQ applies the EQ predicate on the "approval_level" field.
func ApprovalLevelEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldApprovalLevel, v))
}

// ApprovalLevelNEQ applies the NEQ predicate on the "approval_level" field.
func ApprovalLevelNEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldApprovalLevel, v))
}

// ApprovalLevelIn applies the In predicate on the "approval_level" field.
func ApprovalLevelIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldApprovalLevel, vs...))
}

// ApprovalLevelNotIn applies the NotIn predicate on the "approval_level" field.
func ApprovalLevelNotIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldApprovalLevel, vs...))
}

// ApprovalLevelGT applies the GT predicate on the "approval_level" field.
func ApprovalLevelGT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldApprovalLevel, v))
}

// ApprovalLevelGTE applies the GTE predicate on the "approval_level" field.
func ApprovalLevelGTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldApprovalLevel, v))
}

// ApprovalLevelLT applies the LT predicate on the "approval_level" field.
func ApprovalLevelLT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldApprovalLevel, v))
}

// ApprovalLevelLTE applies the LTE predicate on the "approval_level" field.
func ApprovalLevelLTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldApprovalLevel, v))
}

// ApprovalLevelContains applies the Contains predicate on the "approval_level" field.
func ApprovalLevelContains(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContains(FieldApprovalLevel, v))
}

// ApprovalLevelHasPrefix applies the HasPrefix predicate on the "approval_level" field.
func ApprovalLevelHasPrefix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasPrefix(FieldApprovalLevel, v))
}

// ApprovalLevelHasSuffix applies the HasSuffix predicate on the "approval_level" field.
func ApprovalLevelHasSuffix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasSuffix(FieldApprovalLevel, v))
}

// ApprovalLevelIsNil applies the IsNil predicate on the "approval_level" field.
func ApprovalLevelIsNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIsNull(FieldApprovalLevel))
}

// ApprovalLevelNotNil applies the NotNil predicate on the "approval_level" field.
func ApprovalLevelNotNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotNull(FieldApprovalLevel))
}

// ApprovalLevelEqualFold applies the EqualFold predicate on the "approval_level" field.
func ApprovalLevelEqualFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEqualFold(FieldApprovalLevel, v))
}

// ApprovalLevelContainsFold applies the ContainsFold predicate on the "approval_level" field.
func ApprovalLevelContainsFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContainsFold(FieldApprovalLevel, v))
}

// AdrPathEQ applies the EQ predicate on the "adr_path" field.
func AdrPathEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldAdrPath, v))
}

// AdrPathNEQ applies the NEQ predicate on the "adr_path" field.
func AdrPathNEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldAdrPath, v))
}

// AdrPathIn applies the In predicate on the "adr_path" field.
func AdrPathIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldAdrPath, vs...))
}

// AdrPathNotIn applies the NotIn predicate on the "adr_path" field.
func AdrPathNotIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldAdrPath, vs...))
}

// AdrPathGT applies the GT predicate on the "adr_path" field.
func AdrPathGT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldAdrPath, v))
}

// AdrPathGTE applies the GTE predicate on the "adr_path" field.
func AdrPathGTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldAdrPath, v))
}

// AdrPathLT applies the LT predicate on the "adr_path" field.
func AdrPathLT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldAdrPath, v))
}

// AdrPathLTE applies the LTE predicate on the "adr_path" field.
func AdrPathLTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldAdrPath, v))
}

// AdrPathContains applies the Contains predicate on the "adr_path" field.
func AdrPathContains(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContains(FieldAdrPath, v))
}

// AdrPathHasPrefix applies the HasPrefix predicate on the "adr_path" field.
func AdrPathHasPrefix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasPrefix(FieldAdrPath, v))
}

// AdrPathHasSuffix applies the HasSuffix predicate on the "adr_path" field.
func AdrPathHasSuffix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasSuffix(FieldAdrPath, v))
}

// AdrPathIsNil applies the IsNil predicate on the "adr_path" field.
func AdrPathIsNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIsNull(FieldAdrPath))
}

// AdrPathNotNil applies the NotNil predicate on the "adr_path" field.
func AdrPathNotNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotNull(FieldAdrPath))
}

// AdrPathEqualFold applies the EqualFold predicate on the "adr_path" field.
func AdrPathEqualFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEqualFold(FieldAdrPath, v))
}

// AdrPathContainsFold applies the ContainsFold predicate on the "adr_path" field.
func AdrPathContainsFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContainsFold(FieldAdrPath, v))
}

// RejectionReasonEQ applies the EQ predicate on the "rejection_reason" field.
func RejectionReasonEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldRejectionReason, v))
}

// RejectionReasonNEQ applies the NEQ predicate on the "rejection_reason" field.
func RejectionReasonNEQ(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldRejectionReason, v))
}

// RejectionReasonIn applies the In predicate on the "rejection_reason" field.
func RejectionReasonIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldRejectionReason, vs...))
}

// RejectionReasonNotIn applies the NotIn predicate on the "rejection_reason" field.
func RejectionReasonNotIn(vs ...string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldRejectionReason, vs...))
}

// RejectionReasonGT applies the GT predicate on the "rejection_reason" field.
func RejectionReasonGT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldRejectionReason, v))
}

// RejectionReasonGTE applies the GTE predicate on the "rejection_reason" field.
func RejectionReasonGTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldRejectionReason, v))
}

// RejectionReasonLT applies the LT predicate on the "rejection_reason" field.
func RejectionReasonLT(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldRejectionReason, v))
}

// RejectionReasonLTE applies the LTE predicate on the "rejection_reason" field.
func RejectionReasonLTE(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldRejectionReason, v))
}

// RejectionReasonContains applies the Contains predicate on the "rejection_reason" field.
func RejectionReasonContains(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContains(FieldRejectionReason, v))
}

// RejectionReasonHasPrefix applies the HasPrefix predicate on the "rejection_reason" field.
func RejectionReasonHasPrefix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasPrefix(FieldRejectionReason, v))
}

// RejectionReasonHasSuffix applies the HasSuffix predicate on the "rejection_reason" field.
func RejectionReasonHasSuffix(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldHasSuffix(FieldRejectionReason, v))
}

// RejectionReasonIsNil applies the IsNil predicate on the "rejection_reason" field.
func RejectionReasonIsNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIsNull(FieldRejectionReason))
}

// RejectionReasonNotNil applies the NotNil predicate on the "rejection_reason" field.
func RejectionReasonNotNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotNull(FieldRejectionReason))
}

// RejectionReasonEqualFold applies the EqualFold predicate on the "rejection_reason" field.
func RejectionReasonEqualFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEqualFold(FieldRejectionReason, v))
}

// RejectionReasonContainsFold applies the ContainsFold predicate on the "rejection_reason" field.
func RejectionReasonContainsFold(v string) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldContainsFold(FieldRejectionReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldDecidedAt, v))
}

// DecidedAtIsNil applies the IsNil predicate on the "decided_at" field.
func DecidedAtIsNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIsNull(FieldDecidedAt))
}

// DecidedAtNotNil applies the NotNil predicate on the "decided_at" field.
func DecidedAtNotNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotNull(FieldDecidedAt))
}

// ClosedAtEQ applies the EQ predicate on the "closed_at" field.
func ClosedAtEQ(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldEQ(FieldClosedAt, v))
}

// ClosedAtNEQ applies the NEQ predicate on the "closed_at" field.
func ClosedAtNEQ(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNEQ(FieldClosedAt, v))
}

// ClosedAtIn applies the In predicate on the "closed_at" field.
func ClosedAtIn(vs ...time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIn(FieldClosedAt, vs...))
}

// ClosedAtNotIn applies the NotIn predicate on the "closed_at" field.
func ClosedAtNotIn(vs ...time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotIn(FieldClosedAt, vs...))
}

// ClosedAtGT applies the GT predicate on the "closed_at" field.
func ClosedAtGT(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGT(FieldClosedAt, v))
}

// ClosedAtGTE applies the GTE predicate on the "closed_at" field.
func ClosedAtGTE(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldGTE(FieldClosedAt, v))
}

// ClosedAtLT applies the LT predicate on the "closed_at" field.
func ClosedAtLT(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLT(FieldClosedAt, v))
}

// ClosedAtLTE applies the LTE predicate on the "closed_at" field.
func ClosedAtLTE(v time.Time) predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldLTE(FieldClosedAt, v))
}

// ClosedAtIsNil applies the IsNil predicate on the "closed_at" field.
func ClosedAtIsNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldIsNull(FieldClosedAt))
}

// ClosedAtNotNil applies the NotNil predicate on the "closed_at" field.
func ClosedAtNotNil() predicate.BypassRequest {
	return predicate.BypassRequest(sql.FieldNotNull(FieldClosedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BypassRequest) predicate.BypassRequest {
	return predicate.BypassRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BypassRequest) predicate.BypassRequest {
	return predicate.BypassRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BypassRequest) predicate.BypassRequest {
	return predicate.BypassRequest(sql.NotPredicates(p))
}
