package workflow

import (
	"sync"
)

// Context is the shared state bag one workflow execution threads
// through its nodes: completed node outputs, measured metrics, and the
// workspace location. Safe for concurrent use by nodes of one wave.
type Context struct {
	ExecutionID string
	WorkflowID  string
	IterationID string
	Requirement string
	OutputDir   string

	mu      sync.RWMutex
	outputs map[string]map[string]string
	metrics map[string]float64
	values  map[string]string
}

// NewContext creates the state bag for one execution.
func NewContext(executionID, workflowID, iterationID, requirement, outputDir string) *Context {
	return &Context{
		ExecutionID: executionID,
		WorkflowID:  workflowID,
		IterationID: iterationID,
		Requirement: requirement,
		OutputDir:   outputDir,
		outputs:     make(map[string]map[string]string),
		metrics:     make(map[string]float64),
		values:      make(map[string]string),
	}
}

// SetOutputs records a completed node's outputs.
func (c *Context) SetOutputs(nodeID string, outputs map[string]string) {
	if len(outputs) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	stored := make(map[string]string, len(outputs))
	for k, v := range outputs {
		stored[k] = v
	}
	c.outputs[nodeID] = stored
}

// Outputs returns a copy of one node's outputs.
func (c *Context) Outputs(nodeID string) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]string, len(c.outputs[nodeID]))
	for k, v := range c.outputs[nodeID] {
		out[k] = v
	}
	return out
}

// SetMetric records a measured metric (e.g. test_coverage) used by exit
// gates.
func (c *Context) SetMetric(name string, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metrics[name] = value
}

// Metric returns one measured metric.
func (c *Context) Metric(name string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.metrics[name]
	return v, ok
}

// Metrics returns a copy of all measured metrics.
func (c *Context) Metrics() map[string]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]float64, len(c.metrics))
	for k, v := range c.metrics {
		out[k] = v
	}
	return out
}

// SetValue stores an arbitrary string (constraints, locked contract
// references).
func (c *Context) SetValue(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

// Value reads a stored string.
func (c *Context) Value(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}
