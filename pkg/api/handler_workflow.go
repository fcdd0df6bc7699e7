package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maestro-works/maestro/pkg/models"
	"github.com/maestro-works/maestro/pkg/workflow"
)

// WorkflowSummary is the list-view projection of a manifest.
type WorkflowSummary struct {
	IterationID string `json:"iteration_id"`
	Project     string `json:"project,omitempty"`
	NodeCount   int    `json:"node_count"`
}

// handleListWorkflows returns every registered workflow manifest.
func (s *Server) handleListWorkflows(c *gin.Context) {
	if s.workflows == nil {
		respondUnavailable(c, "workflow registry")
		return
	}

	manifests := s.workflows.List()
	summaries := make([]WorkflowSummary, len(manifests))
	for i, m := range manifests {
		summaries[i] = WorkflowSummary{
			IterationID: m.IterationID,
			Project:     m.Project,
			NodeCount:   len(m.Nodes),
		}
	}
	c.JSON(http.StatusOK, gin.H{"workflows": summaries, "total_count": len(summaries)})
}

// handleGetWorkflow returns the full manifest for one workflow.
func (s *Server) handleGetWorkflow(c *gin.Context) {
	if s.workflows == nil {
		respondUnavailable(c, "workflow registry")
		return
	}

	m, err := s.workflows.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// ExecuteWorkflowRequest is the body of POST /workflows/:id/execute.
type ExecuteWorkflowRequest struct {
	Requirement    string            `json:"requirement" binding:"required"`
	InitialContext map[string]string `json:"initial_context,omitempty"`
	OutputDir      string            `json:"output_dir,omitempty"`
}

// handleExecuteWorkflow queues an execution of the named workflow. The
// execution is picked up by a pool worker on whichever replica claims
// it first; 202 tells the caller to follow progress over the WebSocket
// or by polling the execution resource.
func (s *Server) handleExecuteWorkflow(c *gin.Context) {
	if s.workflows == nil || s.executions == nil {
		respondUnavailable(c, "execution queue")
		return
	}

	var req ExecuteWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	manifest, err := s.workflows.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	execution, err := s.executions.CreateExecution(c.Request.Context(), models.CreateExecutionRequest{
		WorkflowID:  manifest.IterationID,
		Requirement: req.Requirement,
		OutputDir:   req.OutputDir,
		Constraints: mergeConstraints(manifest, req.InitialContext),
		RequestedBy: extractAuthor(c),
		TotalNodes:  len(manifest.Nodes),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"execution_id": execution.ID,
		"status":       execution.Status,
	})
}

// mergeConstraints overlays caller-supplied initial context on the
// manifest constraints. Caller values win.
func mergeConstraints(m *workflow.Manifest, initial map[string]string) map[string]string {
	if len(m.Constraints) == 0 && len(initial) == 0 {
		return nil
	}
	merged := make(map[string]string, len(m.Constraints)+len(initial))
	for k, v := range m.Constraints {
		merged[k] = v
	}
	for k, v := range initial {
		merged[k] = v
	}
	return merged
}
