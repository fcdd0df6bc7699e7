package models

import (
	"time"

	"github.com/maestro-works/maestro/ent"
)

// CreateBypassRequest contains fields for proposing a gate bypass
type CreateBypassRequest struct {
	BypassID             string     `json:"bypass_id,omitempty"`
	WorkflowID           string     `json:"workflow_id,omitempty"`
	ExecutionID          string     `json:"execution_id,omitempty"`
	Gate                 string     `json:"gate"`
	Phase                string     `json:"phase"`
	CurrentValue         float64    `json:"current_value"`
	Threshold            float64    `json:"threshold"`
	Justification        string     `json:"justification"`
	TechnicalRisk        string     `json:"technical_risk,omitempty"`
	BusinessRisk         string     `json:"business_risk,omitempty"`
	SecurityRisk         string     `json:"security_risk,omitempty"`
	Duration             string     `json:"duration,omitempty"`
	ExpiresAt            *time.Time `json:"expires_at,omitempty"`
	RemediationPlan      string     `json:"remediation_plan,omitempty"`
	CompensatingControls []string   `json:"compensating_controls,omitempty"`
	FollowUpTasks        []string   `json:"follow_up_tasks,omitempty"`
	RequestedBy          string     `json:"requested_by"`
	ADRPath              string     `json:"adr_path,omitempty"`
}

// BypassFilters contains filtering options for listing bypass requests
type BypassFilters struct {
	Gate          string     `json:"gate,omitempty"`
	Phase         string     `json:"phase,omitempty"`
	Status        string     `json:"status,omitempty"`
	WorkflowID    string     `json:"workflow_id,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// BypassListResponse contains a paginated bypass request list
type BypassListResponse struct {
	Bypasses   []*ent.BypassRequest `json:"bypasses"`
	TotalCount int                  `json:"total_count"`
	Limit      int                  `json:"limit"`
	Offset     int                  `json:"offset"`
}
