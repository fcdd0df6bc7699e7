package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maestro-works/maestro/pkg/audit"
)

// AppendAuditEventRequest is the body of POST /audit/:iteration.
// External collaborators (CI, review tooling) use it to stamp events
// into the same trail the engine writes, so the iteration report covers
// the whole delivery process.
type AppendAuditEventRequest struct {
	EventType string         `json:"event_type" binding:"required"`
	Phase     string         `json:"phase,omitempty"`
	NodeID    string         `json:"node_id,omitempty"`
	Gate      string         `json:"gate,omitempty"`
	BypassID  string         `json:"bypass_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// handleAppendAuditEvent appends one caller-supplied event to the
// workflow audit trail, keyed to the iteration in the path.
func (s *Server) handleAppendAuditEvent(c *gin.Context) {
	if s.auditLog == nil {
		respondUnavailable(c, "audit log")
		return
	}

	var req AppendAuditEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	event := audit.Event{
		EventType:  req.EventType,
		Actor:      extractAuthor(c),
		WorkflowID: c.Param("iteration"),
		Phase:      req.Phase,
		NodeID:     req.NodeID,
		Gate:       req.Gate,
		BypassID:   req.BypassID,
		Details:    req.Details,
	}
	if err := s.auditLog.Append(event); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recorded": true})
}

// handleAuditReport aggregates the audit trail for one iteration.
func (s *Server) handleAuditReport(c *gin.Context) {
	if s.auditLog == nil {
		respondUnavailable(c, "audit log")
		return
	}

	report, err := audit.BuildReport(s.auditLog.Path(), audit.Filter{
		WorkflowID: c.Param("iteration"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
