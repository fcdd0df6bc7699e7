package bypass

import (
	"errors"
	"fmt"

	"github.com/maestro-works/maestro/pkg/config"
)

// GateErrorKind classifies why the bypass layer could not cover a gate.
type GateErrorKind string

const (
	// BypassRequired means a blocking violation has no approved bypass.
	BypassRequired GateErrorKind = "bypass_required"

	// BypassRejected means policy refused the request or the approval.
	BypassRejected GateErrorKind = "bypass_rejected"

	// BypassExpired means the covering bypass lapsed before the gate
	// was re-evaluated.
	BypassExpired GateErrorKind = "bypass_expired"
)

// GateError is surfaced to callers of the gate layer when bypass
// coverage is missing, refused, or lapsed. The gate itself stays
// failed: bypass errors never silently pass a gate.
type GateError struct {
	Kind   GateErrorKind
	Gate   string
	Phase  config.Phase
	Reason string
}

// Error returns the formatted error message.
func (e *GateError) Error() string {
	return fmt.Sprintf("%s: gate %q in phase %q: %s", e.Kind, e.Gate, e.Phase, e.Reason)
}

// IsGateError reports whether err (or anything it wraps) is a GateError
// of the given kind.
func IsGateError(err error, kind GateErrorKind) bool {
	var ge *GateError
	return errors.As(err, &ge) && ge.Kind == kind
}
