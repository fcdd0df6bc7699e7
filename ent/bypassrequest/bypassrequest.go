// Code generated by ent, DO NOT EDIT.

package bypassrequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the bypassrequest type in the database.
	Label = "bypass_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "bypass_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldGate holds the string denoting the gate field in the database.
	FieldGate = "gate"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldCurrentValue holds the string denoting the current_value field in the database.
	FieldCurrentValue = "current_value"
	// FieldThreshold holds the string denoting the threshold field in the database.
	FieldThreshold = "threshold"
	// FieldJustification holds the string denoting the justification field in the database.
	FieldJustification = "justification"
	// FieldTechnicalRisk holds the string denoting the technical_risk field in the database.
	FieldTechnicalRisk = "technical_risk"
	// FieldBusinessRisk holds the string denoting the business_risk field in the database.
	FieldBusinessRisk = "business_risk"
	// FieldSecurityRisk holds the string denoting the security_risk field in the database.
	FieldSecurityRisk = "security_risk"
	// FieldDuration holds the string denoting the duration field in the database.
	FieldDuration = "duration"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldRemediationPlan holds the string denoting the remediation_plan field in the database.
	FieldRemediationPlan = "remediation_plan"
	// FieldCompensatingControls holds the string denoting the compensating_controls field in the database.
	FieldCompensatingControls = "compensating_controls"
	// FieldFollowUpTasks holds the string denoting the follow_up_tasks field in the database.
	FieldFollowUpTasks = "follow_up_tasks"
	// FieldRequestedBy holds the string denoting the requested_by field in the database.
	FieldRequestedBy = "requested_by"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldApprovedBy holds the string denoting the approved_by field in the database.
	FieldApprovedBy = "approved_by"
	// FieldApprovalLevel holds the string denoting the approval_level field in the database.
	FieldApprovalLevel = "approval_level"
	// FieldAdrPath holds the string denoting the adr_path field in the database.
	FieldAdrPath = "adr_path"
	// FieldRejectionReason holds the string denoting the rejection_reason field in the database.
	FieldRejectionReason = "rejection_reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDecidedAt holds the string denoting the decided_at field in the database.
	FieldDecidedAt = "decided_at"
	// FieldClosedAt holds the string denoting the closed_at field in the database.
	FieldClosedAt = "closed_at"
	// Table holds the table name of the bypassrequest in the database.
	Table = "bypass_requests"
)

// Columns holds all SQL columns for bypassrequest fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldExecutionID,
	FieldGate,
	FieldPhase,
	FieldCurrentValue,
	FieldThreshold,
	FieldJustification,
	FieldTechnicalRisk,
	FieldBusinessRisk,
	FieldSecurityRisk,
	FieldDuration,
	FieldExpiresAt,
	FieldRemediationPlan,
	FieldCompensatingControls,
	FieldFollowUpTasks,
	FieldRequestedBy,
	FieldStatus,
	FieldApprovedBy,
	FieldApprovalLevel,
	FieldAdrPath,
	FieldRejectionReason,
	FieldCreatedAt,
	FieldDecidedAt,
	FieldClosedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCurrentValue holds the default value on creation for the "current_value" field.
	DefaultCurrentValue float64
	// DefaultThreshold holds the default value on creation for the "threshold" field.
	DefaultThreshold float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// TechnicalRisk defines the type for the "technical_risk" enum field.
type TechnicalRisk string

// TechnicalRiskMedium is the default value of the TechnicalRisk enum.
const DefaultTechnicalRisk = TechnicalRiskMedium

// TechnicalRisk values.
const (
	TechnicalRiskLow      TechnicalRisk = "low"
	TechnicalRiskMedium   TechnicalRisk = "medium"
	TechnicalRiskHigh     TechnicalRisk = "high"
	TechnicalRiskCritical TechnicalRisk = "critical"
)

func (tr TechnicalRisk) String() string {
	return string(tr)
}

// TechnicalRiskValidator is a validator for the "technical_risk" field enum values. It is called by the builders before save.
func TechnicalRiskValidator(tr TechnicalRisk) error {
	switch tr {
	case TechnicalRiskLow, TechnicalRiskMedium, TechnicalRiskHigh, TechnicalRiskCritical:
		return nil
	default:
		return fmt.Errorf("bypassrequest: invalid enum value for technical_risk field: %q", tr)
	}
}

// BusinessRisk defines the type for the "business_risk" enum field.
type BusinessRisk string

// BusinessRiskMedium is the default value of the BusinessRisk enum.
const DefaultBusinessRisk = BusinessRiskMedium

// BusinessRisk values.
const (
	BusinessRiskLow      BusinessRisk = "low"
	BusinessRiskMedium   BusinessRisk = "medium"
	BusinessRiskHigh     BusinessRisk = "high"
	BusinessRiskCritical BusinessRisk = "critical"
)

func (br BusinessRisk) String() string {
	return string(br)
}

// BusinessRiskValidator is a validator for the "business_risk" field enum values. It is called by the builders before save.
func BusinessRiskValidator(br BusinessRisk) error {
	switch br {
	case BusinessRiskLow, BusinessRiskMedium, BusinessRiskHigh, BusinessRiskCritical:
		return nil
	default:
		return fmt.Errorf("bypassrequest: invalid enum value for business_risk field: %q", br)
	}
}

// SecurityRisk defines the type for the "security_risk" enum field.
type SecurityRisk string

// SecurityRiskLow is the default value of the SecurityRisk enum.
const DefaultSecurityRisk = SecurityRiskLow

// SecurityRisk values.
const (
	SecurityRiskLow      SecurityRisk = "low"
	SecurityRiskMedium   SecurityRisk = "medium"
	SecurityRiskHigh     SecurityRisk = "high"
	SecurityRiskCritical SecurityRisk = "critical"
)

func (sr SecurityRisk) String() string {
	return string(sr)
}

// SecurityRiskValidator is a validator for the "security_risk" field enum values. It is called by the builders before save.
func SecurityRiskValidator(sr SecurityRisk) error {
	switch sr {
	case SecurityRiskLow, SecurityRiskMedium, SecurityRiskHigh, SecurityRiskCritical:
		return nil
	default:
		return fmt.Errorf("bypassrequest: invalid enum value for security_risk field: %q", sr)
	}
}

// Duration defines the type for the "duration" enum field.
type Duration string

// DurationTemporary is the default value of the Duration enum.
const DefaultDuration = DurationTemporary

// Duration values.
const (
	DurationTemporary Duration = "temporary"
	DurationPermanent Duration = "permanent"
)

func (d Duration) String() string {
	return string(d)
}

// DurationValidator is a validator for the "duration" field enum values. It is called by the builders before save.
func DurationValidator(d Duration) error {
	switch d {
	case DurationTemporary, DurationPermanent:
		return nil
	default:
		return fmt.Errorf("bypassrequest: invalid enum value for duration field: %q", d)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusProposed is the default value of the Status enum.
const DefaultStatus = StatusProposed

// Status values.
const (
	StatusProposed Status = "proposed"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusActive   Status = "active"
	StatusExpired  Status = "expired"
	StatusRevoked  Status = "revoked"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusProposed, StatusApproved, StatusRejected, StatusActive, StatusExpired, StatusRevoked:
		return nil
	default:
		return fmt.Errorf("bypassrequest: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the BypassRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByGate orders the results by the gate field.
func ByGate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGate, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByCurrentValue orders the results by the current_value field.
func ByCurrentValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentValue, opts...).ToFunc()
}

// ByThreshold orders the results by the threshold field.
func ByThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreshold, opts...).ToFunc()
}

// ByJustification orders the results by the justification field.
func ByJustification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJustification, opts...).ToFunc()
}

// ByTechnicalRisk orders the results by the technical_risk field.
func ByTechnicalRisk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTechnicalRisk, opts...).ToFunc()
}

// ByBusinessRisk orders the results by the business_risk field.
func ByBusinessRisk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessRisk, opts...).ToFunc()
}

// BySecurityRisk orders the results by the security_risk field.
func BySecurityRisk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecurityRisk, opts...).ToFunc()
}

// ByDuration orders the results by the duration field.
func ByDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuration, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByRemediationPlan orders the results by the remediation_plan field.
func ByRemediationPlan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemediationPlan, opts...).ToFunc()
}

// ByRequestedBy orders the results by the requested_by field.
func ByRequestedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedBy, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByApprovedBy orders the results by the approved_by field.
func ByApprovedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedBy, opts...).ToFunc()
}

// ByApprovalLevel orders the results by the approval_level field.
func ByApprovalLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovalLevel, opts...).ToFunc()
}

// ByAdrPath orders the results by the adr_path field.
func ByAdrPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdrPath, opts...).ToFunc()
}

// ByRejectionReason orders the results by the rejection_reason field.
func ByRejectionReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectionReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDecidedAt orders the results by the decided_at field.
func ByDecidedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecidedAt, opts...).ToFunc()
}

// ByClosedAt orders the results by the closed_at field.
func ByClosedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosedAt, opts...).ToFunc()
}
