package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maestro-works/maestro/ent"
	"github.com/maestro-works/maestro/pkg/models"
)

// handleListExecutions returns a filtered, paginated execution list.
func (s *Server) handleListExecutions(c *gin.Context) {
	if s.executions == nil {
		respondUnavailable(c, "execution service")
		return
	}

	filters := models.ExecutionFilters{
		Status:      c.Query("status"),
		WorkflowID:  c.Query("workflow_id"),
		Phase:       c.Query("phase"),
		RequestedBy: c.Query("requested_by"),
		Limit:       intQuery(c, "limit", 0),
		Offset:      intQuery(c, "offset", 0),
	}
	if after, ok := timeQuery(c, "created_after"); ok {
		filters.CreatedAfter = &after
	}
	if before, ok := timeQuery(c, "created_before"); ok {
		filters.CreatedBefore = &before
	}

	resp, err := s.executions.ListExecutions(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExecutionDetail is the single-execution view: row fields plus node
// states and derived progress.
type ExecutionDetail struct {
	*ent.WorkflowExecution
	ProgressPercent float64               `json:"progress_percent"`
	NodeStates      []*ent.NodeExecution  `json:"node_states"`
	GateEvaluations []*ent.GateEvaluation `json:"gate_evaluations,omitempty"`
}

// handleGetExecution returns one execution with its node states.
func (s *Server) handleGetExecution(c *gin.Context) {
	if s.executions == nil {
		respondUnavailable(c, "execution service")
		return
	}

	execution, err := s.executions.GetExecution(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		respondError(c, err)
		return
	}

	detail := &ExecutionDetail{
		WorkflowExecution: execution,
		NodeStates:        execution.Edges.NodeExecutions,
		GateEvaluations:   execution.Edges.GateEvaluations,
	}
	if detail.NodeStates == nil {
		detail.NodeStates = []*ent.NodeExecution{}
	}
	if execution.TotalNodes > 0 {
		detail.ProgressPercent = float64(execution.CompletedNodes) / float64(execution.TotalNodes) * 100
	}

	c.JSON(http.StatusOK, detail)
}

// handleCancelExecution requests cooperative cancellation. The database
// flip to cancelling is authoritative; the local pool cancel is a fast
// path when the execution happens to run on this replica, otherwise the
// owning pod's cancellation watcher picks it up.
func (s *Server) handleCancelExecution(c *gin.Context) {
	if s.executions == nil {
		respondUnavailable(c, "execution service")
		return
	}

	executionID := c.Param("id")
	if err := s.executions.RequestCancellation(c.Request.Context(), executionID); err != nil {
		respondError(c, err)
		return
	}

	cancelledLocally := false
	if s.pool != nil {
		cancelledLocally = s.pool.CancelExecution(executionID)
	}

	c.JSON(http.StatusAccepted, gin.H{
		"execution_id":      executionID,
		"status":            "cancelling",
		"cancelled_locally": cancelledLocally,
	})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func timeQuery(c *gin.Context, name string) (time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
