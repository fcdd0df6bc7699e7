package config

// Defaults contains system-wide default configurations
// These values are used when specific components don't specify their own values
type Defaults struct {
	// Root directory where personas write their output; snapshots and
	// artifact stamping are rooted here
	OutputDir string `yaml:"output_dir,omitempty"`

	// Consensus confidence required to end a group discussion early
	ConsensusThreshold float64 `yaml:"consensus_threshold,omitempty" validate:"omitempty,min=0,max=1"`

	// Maximum discussion rounds per topic
	MaxDiscussionRounds int `yaml:"max_discussion_rounds,omitempty" validate:"omitempty,min=1"`

	// How many trailing conversation messages feed each discussion prompt
	DiscussionContextWindow int `yaml:"discussion_context_window,omitempty" validate:"omitempty,min=1"`

	// Cap on questions resolved per phase by the Q&A router
	MaxQuestionResolutions int `yaml:"max_question_resolutions,omitempty" validate:"omitempty,min=1"`

	// Workflow event log path (DAG subsystem)
	WorkflowEventLog string `yaml:"workflow_event_log,omitempty"`
}

// DefaultDefaults returns the built-in system defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		OutputDir:               "./workspace",
		ConsensusThreshold:      0.7,
		MaxDiscussionRounds:     3,
		DiscussionContextWindow: 20,
		MaxQuestionResolutions:  10,
		WorkflowEventLog:        DefaultWorkflowEventLog,
	}
}
