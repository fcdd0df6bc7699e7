package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maestro-works/maestro/pkg/bypass"
	"github.com/maestro-works/maestro/pkg/models"
)

// handleProposeBypass creates a bypass proposal for a failed gate.
// Non-bypassable gates are refused outright and the refusal lands in
// the audit trail.
func (s *Server) handleProposeBypass(c *gin.Context) {
	if s.bypasses == nil {
		respondUnavailable(c, "bypass manager")
		return
	}

	var req models.CreateBypassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.RequestedBy == "" {
		req.RequestedBy = extractAuthor(c)
	}

	created, err := s.bypasses.Propose(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// handleListBypasses returns a filtered, paginated bypass list.
func (s *Server) handleListBypasses(c *gin.Context) {
	if s.bypasses == nil {
		respondUnavailable(c, "bypass manager")
		return
	}

	filters := models.BypassFilters{
		Gate:       c.Query("gate"),
		Phase:      c.Query("phase"),
		Status:     c.Query("status"),
		WorkflowID: c.Query("workflow_id"),
		Limit:      intQuery(c, "limit", 0),
		Offset:     intQuery(c, "offset", 0),
	}
	if after, ok := timeQuery(c, "created_after"); ok {
		filters.CreatedAfter = &after
	}
	if before, ok := timeQuery(c, "created_before"); ok {
		filters.CreatedBefore = &before
	}

	resp, err := s.bypasses.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// handleGetBypass returns one bypass request. Overdue active rows are
// lazily expired on read.
func (s *Server) handleGetBypass(c *gin.Context) {
	if s.bypasses == nil {
		respondUnavailable(c, "bypass manager")
		return
	}

	row, err := s.bypasses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// ApproveBypassRequest is the body of POST /bypasses/:id/approve.
type ApproveBypassRequest struct {
	ADRPath              string     `json:"adr_path,omitempty"`
	ExpiresAt            *time.Time `json:"expires_at,omitempty"`
	CompensatingControls []string   `json:"compensating_controls,omitempty"`
}

// handleApproveBypass approves a proposed bypass. Approval fails when
// policy requires an ADR and none is linked; the row stays proposed.
func (s *Server) handleApproveBypass(c *gin.Context) {
	if s.bypasses == nil {
		respondUnavailable(c, "bypass manager")
		return
	}

	var req ApproveBypassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	row, err := s.bypasses.Approve(c.Request.Context(), bypass.ApproveInput{
		BypassID:  c.Param("id"),
		Approver:  extractAuthor(c),
		ADRPath:   req.ADRPath,
		ExpiresAt: req.ExpiresAt,
		Controls:  req.CompensatingControls,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// DecisionRequest carries the reason for a reject or revoke decision.
type DecisionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// handleRejectBypass rejects a proposed bypass.
func (s *Server) handleRejectBypass(c *gin.Context) {
	if s.bypasses == nil {
		respondUnavailable(c, "bypass manager")
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	row, err := s.bypasses.Reject(c.Request.Context(), c.Param("id"), extractAuthor(c), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// handleRevokeBypass revokes an active bypass. The covered gate goes
// back to failing on its next evaluation.
func (s *Server) handleRevokeBypass(c *gin.Context) {
	if s.bypasses == nil {
		respondUnavailable(c, "bypass manager")
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	row, err := s.bypasses.Revoke(c.Request.Context(), c.Param("id"), extractAuthor(c), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// handleBypassMetrics returns bypass activity for a trailing window
// (?window_days, default 30).
func (s *Server) handleBypassMetrics(c *gin.Context) {
	if s.bypasses == nil {
		respondUnavailable(c, "bypass manager")
		return
	}

	metrics, err := s.bypasses.Metrics(c.Request.Context(), intQuery(c, "window_days", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
