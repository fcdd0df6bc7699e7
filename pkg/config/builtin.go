package config

import (
	"sync"
)

// BuiltinConfig holds all built-in configuration data.
// This provides default personas, the default gate policy, deliverable
// pattern tables, and the stub/placeholder marker table.
type BuiltinConfig struct {
	Personas            map[string]PersonaConfig
	Policy              PolicyConfig
	DefaultGates        map[string]GateSLO
	DeliverablePatterns map[string][]string
	SubstanceMarkers    []SubstanceMarker
}

// SubstanceMarker is a stub/placeholder phrase pattern with its scoring
// penalty. Critical markers cap the substance score at the stub ceiling.
type SubstanceMarker struct {
	Pattern     string  // regex, compiled by the artifact validator
	Penalty     float64 // subtracted from the score per match
	Critical    bool    // caps score at the stub ceiling when matched
	Description string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		Personas:            initBuiltinPersonas(),
		Policy:              initBuiltinPolicy(),
		DefaultGates:        defaultGateTable(),
		DeliverablePatterns: initDeliverablePatterns(),
		SubstanceMarkers:    initSubstanceMarkers(),
	}
}

// Default thresholds and locations referenced throughout the policy layer.
const (
	// DefaultBypassAlertThreshold triggers a warning when the bypass rate
	// reaches it. Override via BYPASS_ALERT_THRESHOLD or the policy file.
	DefaultBypassAlertThreshold = 0.10

	// CriticalBypassAlertThreshold triggers a critical alert.
	CriticalBypassAlertThreshold = 0.20

	// DefaultBypassAuditLog is where bypass lifecycle events are appended.
	DefaultBypassAuditLog = "logs/phase_gate_bypasses.jsonl"

	// DefaultWorkflowEventLog is where DAG engine events are appended.
	DefaultWorkflowEventLog = "logs/workflow_events.jsonl"
)

// defaultGateTable is the documented fallback for gates the policy file
// does not configure. Lookups that land here are logged once per pair.
func defaultGateTable() map[string]GateSLO {
	return map[string]GateSLO{
		"quality_score": {
			Threshold:   0.70,
			Severity:    GateSeverityBlocking,
			Description: "Overall validator quality score for the phase",
		},
		"artifact_completeness": {
			Threshold:   0.80,
			Severity:    GateSeverityBlocking,
			Description: "Fraction of required deliverables present",
		},
		"test_coverage": {
			Threshold:   0.80,
			Severity:    GateSeverityBlocking,
			Description: "Line coverage reported for the test suite",
		},
		"documentation": {
			Threshold:   0.50,
			Severity:    GateSeverityWarning,
			Description: "Documentation deliverable quality",
		},
		"security_scan": {
			Threshold:   1.00,
			Severity:    GateSeverityBlocking,
			Description: "No unresolved findings from the security scan",
		},
	}
}

func initBuiltinPolicy() PolicyConfig {
	return PolicyConfig{
		Phases: map[Phase]PhasePolicy{
			PhaseRequirements: {Gates: map[string]GateSLO{
				"quality_score":         {Threshold: 0.70, Severity: GateSeverityBlocking},
				"artifact_completeness": {Threshold: 0.80, Severity: GateSeverityBlocking},
			}},
			PhaseDesign: {Gates: map[string]GateSLO{
				"quality_score":         {Threshold: 0.70, Severity: GateSeverityBlocking},
				"artifact_completeness": {Threshold: 0.80, Severity: GateSeverityBlocking},
			}},
			PhaseImplementation: {Gates: map[string]GateSLO{
				"quality_score":         {Threshold: 0.70, Severity: GateSeverityBlocking},
				"artifact_completeness": {Threshold: 0.80, Severity: GateSeverityBlocking},
				"test_coverage":         {Threshold: 0.80, Severity: GateSeverityBlocking},
			}},
			PhaseTesting: {Gates: map[string]GateSLO{
				"quality_score":         {Threshold: 0.70, Severity: GateSeverityBlocking},
				"artifact_completeness": {Threshold: 0.80, Severity: GateSeverityBlocking},
				"test_coverage":         {Threshold: 0.80, Severity: GateSeverityBlocking},
			}},
			PhaseDeployment: {Gates: map[string]GateSLO{
				"quality_score":         {Threshold: 0.70, Severity: GateSeverityBlocking},
				"artifact_completeness": {Threshold: 0.80, Severity: GateSeverityBlocking},
				"security_scan":         {Threshold: 1.00, Severity: GateSeverityBlocking},
			}},
		},
		BypassRules: BypassRules{
			BypassableGates: []BypassableGate{
				{Gate: "test_coverage", Phase: PhaseImplementation, RequiresADR: true, ApprovalLevel: ApprovalLevelTechLead},
				{Gate: "test_coverage", Phase: PhaseTesting, RequiresADR: true, ApprovalLevel: ApprovalLevelEngineeringManager},
				{Gate: "documentation", Phase: PhaseRequirements, RequiresADR: false, ApprovalLevel: ApprovalLevelTechLead},
				{Gate: "documentation", Phase: PhaseDesign, RequiresADR: false, ApprovalLevel: ApprovalLevelTechLead},
			},
			NonBypassableGates: []GateRef{
				{Gate: "security_scan"}, // all phases
			},
			AuditTrail: AuditTrailConfig{
				LogLocation:    DefaultBypassAuditLog,
				AlertThreshold: DefaultBypassAlertThreshold,
			},
		},
	}
}

func initBuiltinPersonas() map[string]PersonaConfig {
	return map[string]PersonaConfig{
		"requirements_analyst": {
			Role:         "Requirements Analyst",
			Expertise:    []string{"requirements elicitation", "user stories", "acceptance criteria"},
			Capabilities: []string{"requirements", "docs"},
			SystemPrompt: "You are a senior requirements analyst. Produce precise, testable requirements documents and user stories with acceptance criteria.",
			Phases:       []Phase{PhaseRequirements},
		},
		"solution_architect": {
			Role:         "Solution Architect",
			Expertise:    []string{"system design", "API contracts", "data modeling"},
			Capabilities: []string{"architecture", "api", "interface"},
			SystemPrompt: "You are a solution architect. Produce architecture documents, interface contracts, and data models that downstream implementers can build against without clarification.",
			Phases:       []Phase{PhaseDesign},
		},
		"backend_developer": {
			Role:         "Backend Developer",
			Expertise:    []string{"service implementation", "persistence", "API implementation"},
			Capabilities: []string{"backend", "api"},
			SystemPrompt: "You are a senior backend developer. Implement services exactly to the locked interface contracts. Never leave stubs or placeholders.",
			Phases:       []Phase{PhaseImplementation},
		},
		"frontend_developer": {
			Role:         "Frontend Developer",
			Expertise:    []string{"UI implementation", "state management", "API consumption"},
			Capabilities: []string{"frontend"},
			SystemPrompt: "You are a senior frontend developer. Build the UI against the locked API contract. Never leave stubs or placeholders.",
			Phases:       []Phase{PhaseImplementation},
		},
		"qa_engineer": {
			Role:         "QA Engineer",
			Expertise:    []string{"test design", "coverage analysis", "regression suites"},
			Capabilities: []string{"qa", "testing"},
			SystemPrompt: "You are a QA engineer. Produce a complete test suite with a coverage report for the implemented system.",
			Phases:       []Phase{PhaseTesting},
		},
		"devops_engineer": {
			Role:         "DevOps Engineer",
			Expertise:    []string{"deployment", "CI/CD", "infrastructure as code"},
			Capabilities: []string{"deployment", "infra"},
			SystemPrompt: "You are a DevOps engineer. Produce deployment configuration and runbooks for the system.",
			Phases:       []Phase{PhaseDeployment},
		},
		"security_analyst": {
			Role:         "Security Analyst",
			Expertise:    []string{"threat modeling", "secure configuration", "dependency review"},
			Capabilities: []string{"security"},
			SystemPrompt: "You are a security analyst. Review artifacts for security issues and produce a findings report.",
			Phases:       []Phase{PhaseDeployment},
		},
	}
}

// initDeliverablePatterns is the rule table mapping deliverable names to
// case-insensitive glob/substring patterns. The artifact validator matches
// produced files against these to attribute them to deliverables.
func initDeliverablePatterns() map[string][]string {
	return map[string][]string{
		"requirements_doc":  {"*requirements*.md", "*requirement*.txt", "docs/requirements/**"},
		"user_stories":      {"*user_stories*.md", "*user-stories*.md", "*stories*.md"},
		"architecture_doc":  {"*architecture*.md", "*design*.md", "docs/architecture/**"},
		"api_contract":      {"*openapi*.yaml", "*openapi*.yml", "*api*.yaml", "*api_contract*", "*.proto"},
		"data_model":        {"*schema*.sql", "*data_model*.md", "*models*.md", "migrations/**"},
		"source_code":       {"src/**", "pkg/**", "lib/**", "*.go", "*.py", "*.ts", "*.js", "*.java"},
		"frontend_code":     {"frontend/**", "ui/**", "*.tsx", "*.jsx", "*.vue", "*.svelte"},
		"test_suite":        {"*test*", "tests/**", "*_test.go", "test_*.py", "*.spec.ts", "*.test.js"},
		"coverage_report":   {"*coverage*", "coverage/**"},
		"deployment_config": {"*deploy*", "Dockerfile", "docker-compose*", "*.tf", "k8s/**", "helm/**", ".github/workflows/**"},
		"security_report":   {"*security*", "*findings*.md", "*audit*.md"},
		"runbook":           {"*runbook*.md", "docs/operations/**"},
	}
}

// initSubstanceMarkers is the stub/placeholder phrase table used by the
// substance scorer. Patterns are matched case-insensitively per line.
func initSubstanceMarkers() []SubstanceMarker {
	return []SubstanceMarker{
		{Pattern: `\bTODO\b`, Penalty: 0.15, Critical: true, Description: "TODO marker"},
		{Pattern: `\bFIXME\b`, Penalty: 0.15, Critical: true, Description: "FIXME marker"},
		{Pattern: `\bXXX\b`, Penalty: 0.10, Critical: false, Description: "XXX marker"},
		{Pattern: `coming soon`, Penalty: 0.20, Critical: true, Description: "coming-soon placeholder"},
		{Pattern: `not (?:yet )?implemented`, Penalty: 0.25, Critical: true, Description: "unimplemented admission"},
		{Pattern: `\bplaceholder\b`, Penalty: 0.20, Critical: true, Description: "placeholder text"},
		{Pattern: `\bstub\b`, Penalty: 0.15, Critical: false, Description: "stub mention"},
		{Pattern: `lorem ipsum`, Penalty: 0.25, Critical: true, Description: "filler text"},
		{Pattern: `(?:^|\s)(?:#|//)\s*(?:app|router)\.(?:get|post|put|delete|route)\b`, Penalty: 0.20, Critical: true, Description: "commented-out route"},
		{Pattern: `raise NotImplementedError`, Penalty: 0.25, Critical: true, Description: "NotImplementedError"},
		{Pattern: `panic\("(?:TODO|not implemented|unimplemented)`, Penalty: 0.25, Critical: true, Description: "unimplemented panic"},
		{Pattern: `\bWIP\b`, Penalty: 0.10, Critical: false, Description: "work-in-progress marker"},
		{Pattern: `insert .* here`, Penalty: 0.15, Critical: false, Description: "template filler"},
	}
}
