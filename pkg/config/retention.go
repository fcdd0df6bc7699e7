package config

import "time"

// RetentionConfig controls data retention and background sweep behavior.
type RetentionConfig struct {
	// ExecutionRetentionDays is how many days to keep finished workflow
	// executions before soft-deleting them (setting deleted_at).
	ExecutionRetentionDays int `yaml:"execution_retention_days"`

	// EventTTL is the maximum age of orphaned Event rows before deletion.
	// Per-execution cleanup handles the normal case; this is a safety net.
	EventTTL time.Duration `yaml:"event_ttl"`

	// SweepInterval is how often the background sweep loop runs. The same
	// loop expires overdue bypasses and prunes orphaned events.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ExecutionRetentionDays: 365,
		EventTTL:               1 * time.Hour,
		SweepInterval:          10 * time.Minute,
	}
}
