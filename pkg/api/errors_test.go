package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/bypass"
	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/services"
	"github.com/maestro-works/maestro/pkg/workflow"
)

func responseFor(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/test", nil)

	respondError(c, err)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestRespondErrorMapping(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		code, resp := responseFor(t, services.NewValidationError("requirement", "required"))
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, KindValidation, resp.Kind)
		assert.Equal(t, "required", resp.Message)
		assert.Equal(t, "requirement", resp.Details["field"])
	})

	t.Run("not found", func(t *testing.T) {
		code, resp := responseFor(t, services.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, KindNotFound, resp.Kind)
	})

	t.Run("workflow not found", func(t *testing.T) {
		code, resp := responseFor(t, fmt.Errorf("%w: ghost", workflow.ErrWorkflowNotFound))
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, KindNotFound, resp.Kind)
	})

	t.Run("not cancellable", func(t *testing.T) {
		code, resp := responseFor(t, services.ErrNotCancellable)
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, KindNotCancellable, resp.Kind)
	})

	t.Run("already exists", func(t *testing.T) {
		code, resp := responseFor(t, services.ErrAlreadyExists)
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, KindConflict, resp.Kind)
	})

	t.Run("concurrent modification is retryable", func(t *testing.T) {
		code, resp := responseFor(t, services.ErrConcurrentModification)
		assert.Equal(t, http.StatusConflict, code)
		assert.True(t, resp.Retryable)
	})

	t.Run("bypass rejected", func(t *testing.T) {
		code, resp := responseFor(t, &bypass.GateError{
			Kind:   bypass.BypassRejected,
			Gate:   "security_scan",
			Phase:  config.PhaseTesting,
			Reason: "gate is not bypassable",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.Equal(t, KindBypassRejected, resp.Kind)
		assert.Equal(t, "security_scan", resp.Details["gate"])
		assert.Equal(t, "testing", resp.Details["phase"])
	})

	t.Run("bypass required", func(t *testing.T) {
		code, resp := responseFor(t, &bypass.GateError{
			Kind:   bypass.BypassRequired,
			Gate:   "test_coverage",
			Phase:  config.PhaseTesting,
			Reason: "blocking violation has no approved bypass",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.Equal(t, KindBypassRequired, resp.Kind)
	})

	t.Run("unknown error hides internals", func(t *testing.T) {
		code, resp := responseFor(t, errors.New("pq: connection reset by peer"))
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, KindInternal, resp.Kind)
		assert.Equal(t, "internal server error", resp.Message)
		assert.NotEmpty(t, resp.Details["correlation_id"])
		assert.True(t, resp.Retryable)
	})
}
