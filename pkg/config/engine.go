package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// EngineConfig contains DAG engine and executor pool configuration.
// These values control wave concurrency, node timeouts, retries, and the
// remediation loop.
type EngineConfig struct {
	// MaxConcurrency caps how many nodes of a single wave run at once.
	// The effective cap per wave is min(wave size, MaxConcurrency).
	MaxConcurrency int `yaml:"max_concurrency"`

	// DefaultNodeTimeout bounds a single node execution. Overridable per
	// node in the manifest; env override DEFAULT_NODE_TIMEOUT_SECONDS.
	DefaultNodeTimeout time.Duration `yaml:"default_node_timeout"`

	// MaxRetries is the default retry budget for failed nodes.
	MaxRetries int `yaml:"max_retries"`

	// InitialBackoff is the base delay before the first retry; doubled
	// per attempt up to MaxBackoff.
	InitialBackoff time.Duration `yaml:"initial_backoff"`

	// MaxBackoff caps the exponential retry backoff.
	MaxBackoff time.Duration `yaml:"max_backoff"`

	// MaxRemediationIterations bounds the exit-gate remediation loop.
	// Env override MAX_REMEDIATION_ITERATIONS.
	MaxRemediationIterations int `yaml:"max_remediation_iterations"`

	// CancelGracePeriod is how long running nodes get to honor a cancel
	// signal before being forcibly marked failed.
	CancelGracePeriod time.Duration `yaml:"cancel_grace_period"`

	// WorkerCount is the number of executor goroutines per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentExecutions is the global limit of concurrent workflow
	// executions across all replicas. Enforced by database COUNT(*) check.
	MaxConcurrentExecutions int `yaml:"max_concurrent_executions"`

	// PollInterval is the base interval for checking queued executions.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// ExecutionTimeout is the maximum wall time for one workflow execution.
	ExecutionTimeout time.Duration `yaml:"execution_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active executions
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanThreshold is how long an execution can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultEngineConfig returns the built-in engine defaults.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		MaxConcurrency:           8,
		DefaultNodeTimeout:       600 * time.Second,
		MaxRetries:               0,
		InitialBackoff:           2 * time.Second,
		MaxBackoff:               60 * time.Second,
		MaxRemediationIterations: 3,
		CancelGracePeriod:        30 * time.Second,
		WorkerCount:              3,
		MaxConcurrentExecutions:  3,
		PollInterval:             1 * time.Second,
		PollIntervalJitter:       500 * time.Millisecond,
		ExecutionTimeout:         2 * time.Hour,
		GracefulShutdownTimeout:  5 * time.Minute,
		OrphanThreshold:          5 * time.Minute,
	}
}

// applyEnvOverrides applies the environment overrides the engine honors.
// Malformed values are logged and ignored rather than failing startup.
func (c *EngineConfig) applyEnvOverrides() {
	if v := os.Getenv("DEFAULT_NODE_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			slog.Warn("Ignoring invalid DEFAULT_NODE_TIMEOUT_SECONDS", "value", v)
		} else {
			c.DefaultNodeTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("MAX_REMEDIATION_ITERATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			slog.Warn("Ignoring invalid MAX_REMEDIATION_ITERATIONS", "value", v)
		} else {
			c.MaxRemediationIterations = n
		}
	}
}

// validate checks engine bounds.
func (c *EngineConfig) validate() error {
	if c.MaxConcurrency < 1 {
		return NewValidationError("engine", "engine", "max_concurrency",
			fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	if c.DefaultNodeTimeout <= 0 {
		return NewValidationError("engine", "engine", "default_node_timeout",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if c.MaxRetries < 0 {
		return NewValidationError("engine", "engine", "max_retries",
			fmt.Errorf("%w: must be >= 0", ErrInvalidValue))
	}
	if c.InitialBackoff <= 0 || c.MaxBackoff < c.InitialBackoff {
		return NewValidationError("engine", "engine", "initial_backoff",
			fmt.Errorf("%w: require 0 < initial_backoff <= max_backoff", ErrInvalidValue))
	}
	if c.MaxRemediationIterations < 0 {
		return NewValidationError("engine", "engine", "max_remediation_iterations",
			fmt.Errorf("%w: must be >= 0", ErrInvalidValue))
	}
	if c.WorkerCount < 1 {
		return NewValidationError("engine", "engine", "worker_count",
			fmt.Errorf("%w: must be >= 1", ErrInvalidValue))
	}
	return nil
}
