package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/maestro-works/maestro/pkg/bypass"
	"github.com/maestro-works/maestro/pkg/services"
	"github.com/maestro-works/maestro/pkg/workflow"
)

// Error kinds carried in the error envelope. Clients branch on these,
// never on the message text.
const (
	KindValidation     = "validation_error"
	KindNotFound       = "not_found"
	KindConflict       = "conflict"
	KindNotCancellable = "not_cancellable"
	KindBypassRejected = "bypass_rejected"
	KindBypassRequired = "bypass_required"
	KindUnavailable    = "unavailable"
	KindInternal       = "internal_error"
)

// ErrorResponse is the envelope every error crosses the API boundary
// in. Raw internal errors never leak; unknown errors become
// internal_error with a correlation id the operator can grep the logs
// for.
type ErrorResponse struct {
	Kind      string         `json:"kind"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Retryable bool           `json:"retryable,omitempty"`
}

// respondError translates a service-layer error into an HTTP status and
// envelope.
func respondError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Kind:    KindValidation,
			Message: validErr.Message,
			Details: map[string]any{"field": validErr.Field},
		})
		return
	}

	var gateErr *bypass.GateError
	if errors.As(err, &gateErr) {
		kind := KindBypassRejected
		if gateErr.Kind == bypass.BypassRequired || gateErr.Kind == bypass.BypassExpired {
			kind = KindBypassRequired
		}
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Kind:    kind,
			Message: gateErr.Reason,
			Details: map[string]any{
				"gate":  gateErr.Gate,
				"phase": string(gateErr.Phase),
			},
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, workflow.ErrWorkflowNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Kind:    KindNotFound,
			Message: "resource not found",
		})
	case errors.Is(err, services.ErrNotCancellable):
		c.JSON(http.StatusConflict, ErrorResponse{
			Kind:    KindNotCancellable,
			Message: "execution is not in a cancellable state",
		})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{
			Kind:    KindConflict,
			Message: "resource already exists",
		})
	case errors.Is(err, services.ErrConcurrentModification):
		c.JSON(http.StatusConflict, ErrorResponse{
			Kind:      KindConflict,
			Message:   "resource was modified concurrently, retry the request",
			Retryable: true,
		})
	default:
		correlationID := uuid.New().String()
		slog.Error("Unexpected service error",
			"correlation_id", correlationID,
			"path", c.FullPath(),
			"error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Kind:      KindInternal,
			Message:   "internal server error",
			Details:   map[string]any{"correlation_id": correlationID},
			Retryable: true,
		})
	}
}

// respondBindError reports a malformed request body or query string.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Kind:    KindValidation,
		Message: err.Error(),
	})
}

// respondUnavailable reports a handler whose backing dependency is not
// wired in this deployment.
func respondUnavailable(c *gin.Context, what string) {
	c.JSON(http.StatusServiceUnavailable, ErrorResponse{
		Kind:      KindUnavailable,
		Message:   what + " is not available",
		Retryable: true,
	})
}
