package workflow

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for graph construction and manifest validation.
var (
	ErrDuplicateNode     = errors.New("duplicate node id")
	ErrUnknownNode       = errors.New("unknown node")
	ErrUnknownDependency = errors.New("dependency references unknown node")
	ErrSelfDependency    = errors.New("node cannot depend on itself")
	ErrEmptyWorkflow     = errors.New("workflow has no nodes")
)

// CycleError rejects an edge that would close a dependency cycle. The
// offending cycle is listed first-to-first so the manifest author can
// see exactly which chain to break.
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle: %s", strings.Join(e.Cycle, " -> "))
}

// DependencyError marks a node skipped because an upstream dependency
// failed.
type DependencyError struct {
	NodeID           string
	FailedDependency string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("node %s skipped: dependency %s failed", e.NodeID, e.FailedDependency)
}

// NodeError wraps a node execution failure with its attempt count.
type NodeError struct {
	NodeID   string
	Attempts int
	Err      error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node %s failed after %d attempt(s): %v", e.NodeID, e.Attempts, e.Err)
}

func (e *NodeError) Unwrap() error { return e.Err }
