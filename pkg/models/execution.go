package models

import (
	"time"

	"github.com/maestro-works/maestro/ent"
)

// CreateExecutionRequest contains fields for queueing a workflow execution
type CreateExecutionRequest struct {
	ExecutionID string            `json:"execution_id,omitempty"`
	WorkflowID  string            `json:"workflow_id"`
	Requirement string            `json:"requirement"`
	OutputDir   string            `json:"output_dir,omitempty"`
	Constraints map[string]string `json:"constraints,omitempty"`
	RequestedBy string            `json:"requested_by,omitempty"`
	TotalNodes  int               `json:"total_nodes,omitempty"`
}

// ExecutionFilters contains filtering options for listing executions
type ExecutionFilters struct {
	Status         string     `json:"status,omitempty"`
	WorkflowID     string     `json:"workflow_id,omitempty"`
	Phase          string     `json:"phase,omitempty"`
	RequestedBy    string     `json:"requested_by,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}

// ExecutionListResponse contains a paginated execution list
type ExecutionListResponse struct {
	Executions []*ent.WorkflowExecution `json:"executions"`
	TotalCount int                      `json:"total_count"`
	Limit      int                      `json:"limit"`
	Offset     int                      `json:"offset"`
}
