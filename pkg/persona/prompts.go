package persona

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/contracts"
)

// Override file names recognized under the templates directory
// (config TemplatesPath, env MAESTRO_TEMPLATES_PATH). A phase's task
// instructions override lives in instructions_<phase>.tmpl. Missing
// files keep the builtin text; a file that fails to parse is a startup
// error, not a silent fallback.
const (
	workTemplateFile       = "persona_work.tmpl"
	extractionTemplateFile = "work_extraction.tmpl"
	instructionsFilePrefix = "instructions_"
)

// workTemplate is the user-message backbone for a persona work unit.
// Every field except Phase arrives as a complete pre-formatted section.
const workTemplate = `{{.Requirement}}

{{if .Deliverables}}{{.Deliverables}}

{{end}}{{if .Context}}{{.Context}}

{{end}}{{.Task}}`

// extractionTemplate asks for the structured work report after a work
// unit. The JSON shape mirrors the conversation's persona-work payload;
// file attribution is measured from the workspace, so the schema does
// not ask for it.
const extractionTemplate = `Summarize the work you just completed into a structured work report.

Your full response was:
=== RESPONSE START ===
{{.Response}}
=== RESPONSE END ===

Workspace files you changed: {{.Files}}

Respond with a single JSON object and nothing else:
{"summary": "one-paragraph summary", "decisions": [{"decision": "...", "rationale": "...", "alternatives": ["..."], "trade_offs": "..."}], "questions": [{"for": "persona-id", "question": "...", "context": "..."}], "assumptions": ["..."], "concerns": ["..."], "dependencies": {"depends_on": ["persona-id"], "provides_for": ["persona-id"]}}
Omit fields you have nothing for. "for" must name another persona.`

// builtinInstructions is the per-phase task guidance woven into every
// work prompt. Overridable per phase from the templates directory.
var builtinInstructions = map[config.Phase]string{
	config.PhaseRequirements: `Elicit and document the requirements: user stories with acceptance criteria, functional requirements, and the non-functional constraints (performance, security, compliance) this work must meet. Write complete documents with concrete, testable statements.`,

	config.PhaseDesign: `Produce the design: system architecture with component responsibilities and data flow, API contracts with request/response shapes and error cases, and the data model. State each design decision with its rationale and rejected alternatives.`,

	config.PhaseImplementation: `Implement the design as working source code. Handle errors explicitly, validate inputs at the boundaries, and keep functions complete — no placeholder bodies, no "not implemented" markers. Include the configuration and wiring the code needs to run.`,

	config.PhaseTesting: `Write the tests: unit tests for the core logic, integration tests for the component seams, and a test plan naming what each suite covers. Tests must assert real behavior against the implemented code, not restate it.`,

	config.PhaseDeployment: `Prepare the deployment: build and release configuration, environment and secret handling, an operational runbook with rollback steps, and the monitoring hooks needed to see the system in production.`,
}

// workPromptData feeds the work backbone template.
type workPromptData struct {
	Requirement  string
	Deliverables string
	Context      string
	Task         string
	Phase        string
}

// extractionPromptData feeds the extraction backbone template.
type extractionPromptData struct {
	Response string
	Files    string
}

// Templates holds the parsed prompt backbones and per-phase task
// instructions the executor renders from.
type Templates struct {
	work         *template.Template
	extraction   *template.Template
	instructions map[config.Phase]string
}

// DefaultTemplates returns the builtin prompt templates.
func DefaultTemplates() *Templates {
	return &Templates{
		work:         template.Must(template.New(workTemplateFile).Parse(workTemplate)),
		extraction:   template.Must(template.New(extractionTemplateFile).Parse(extractionTemplate)),
		instructions: builtinInstructions,
	}
}

// LoadTemplates returns the builtin templates with any overrides found
// under dir applied. An empty or missing directory yields the builtins.
func LoadTemplates(dir string) (*Templates, error) {
	t := DefaultTemplates()
	if dir == "" {
		return t, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return t, nil
	}

	if data, err := os.ReadFile(filepath.Join(dir, workTemplateFile)); err == nil {
		parsed, err := template.New(workTemplateFile).Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template override %s: %w", workTemplateFile, err)
		}
		t.work = parsed
	}
	if data, err := os.ReadFile(filepath.Join(dir, extractionTemplateFile)); err == nil {
		parsed, err := template.New(extractionTemplateFile).Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template override %s: %w", extractionTemplateFile, err)
		}
		t.extraction = parsed
	}

	instructions := make(map[config.Phase]string, len(builtinInstructions))
	for phase, text := range builtinInstructions {
		instructions[phase] = text
	}
	for _, phase := range config.PhaseSequence() {
		name := instructionsFilePrefix + phase.String() + ".tmpl"
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		instructions[phase] = strings.TrimSpace(string(data))
	}
	t.instructions = instructions
	return t, nil
}

// instructionsFor returns the task guidance for a phase.
func (t *Templates) instructionsFor(phase config.Phase) string {
	if text, ok := t.instructions[phase]; ok {
		return text
	}
	return "Complete the work this phase expects and record your decisions."
}

func (t *Templates) renderWork(data workPromptData) (string, error) {
	var b strings.Builder
	if err := t.work.Execute(&b, data); err != nil {
		return "", fmt.Errorf("work prompt template failed: %w", err)
	}
	return b.String(), nil
}

func (t *Templates) renderExtraction(data extractionPromptData) (string, error) {
	var b strings.Builder
	if err := t.extraction.Execute(&b, data); err != nil {
		return "", fmt.Errorf("extraction prompt template failed: %w", err)
	}
	return b.String(), nil
}

// formatIdentitySection renders the persona's role and expertise,
// appended to its system prompt.
func formatIdentitySection(p *config.PersonaConfig) string {
	var sb strings.Builder
	sb.WriteString("You are acting as: ")
	sb.WriteString(p.Role)
	sb.WriteString("\n")
	if len(p.Expertise) > 0 {
		sb.WriteString("Your expertise:\n")
		for _, e := range p.Expertise {
			sb.WriteString("- ")
			sb.WriteString(e)
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatRequirementSection wraps the requirement text.
func formatRequirementSection(requirement string) string {
	return "## Requirement\n\n" + strings.TrimSpace(requirement)
}

// formatDeliverablesSection lists the contract deliverables the persona
// is expected to produce. only narrows the list to named deliverables
// when non-empty (remediation targets specific gaps).
func formatDeliverablesSection(contract *contracts.Contract, only []string) string {
	if contract == nil {
		return ""
	}
	wanted := deliverablesFor(contract, only)
	if len(wanted) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("## Expected deliverables\n\n")
	for _, d := range wanted {
		fmt.Fprintf(&sb, "- %s (file patterns: %s)", d.Name, strings.Join(d.Patterns, ", "))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatTaskSection renders the phase task block, closing with the
// explicit deliverable names so the model cannot miss them.
func formatTaskSection(phase config.Phase, instructions string, contract *contracts.Contract, only []string, extra string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Your task (%s phase)\n\n", phase)
	sb.WriteString(instructions)
	if extra != "" {
		sb.WriteString("\n\n")
		sb.WriteString(strings.TrimSpace(extra))
	}

	wanted := deliverablesFor(contract, only)
	if len(wanted) > 0 {
		names := make([]string, len(wanted))
		for i, d := range wanted {
			names[i] = d.Name
		}
		fmt.Fprintf(&sb, "\n\nWrite these deliverables into the workspace now: %s.", strings.Join(names, ", "))
	}
	return sb.String()
}

// deliverablesFor returns the required contract deliverables, narrowed
// to the named subset when only is non-empty.
func deliverablesFor(contract *contracts.Contract, only []string) []contracts.Deliverable {
	if contract == nil {
		return nil
	}
	if len(only) == 0 {
		return contract.Required()
	}
	wanted := make([]contracts.Deliverable, 0, len(only))
	for _, name := range only {
		if d, ok := contract.Deliverable(name); ok {
			wanted = append(wanted, d)
		}
	}
	return wanted
}
