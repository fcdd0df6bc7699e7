package persona

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/contracts"
)

func TestLoadTemplatesMissingDirKeepsBuiltins(t *testing.T) {
	for _, dir := range []string{"", filepath.Join(t.TempDir(), "nope")} {
		tpl, err := LoadTemplates(dir)
		require.NoError(t, err)

		rendered, err := tpl.renderWork(workPromptData{
			Requirement: "## Requirement\n\nShip it.",
			Task:        "## Your task (design phase)\n\nDesign.",
			Phase:       "design",
		})
		require.NoError(t, err)
		assert.Contains(t, rendered, "## Requirement")
		assert.Contains(t, rendered, "## Your task (design phase)")
		assert.NotContains(t, rendered, "## Expected deliverables", "empty sections are dropped")
	}
}

func TestLoadTemplatesAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "persona_work.tmpl"),
		[]byte("REQ: {{.Requirement}}\nTASK: {{.Task}}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "instructions_design.tmpl"),
		[]byte("Design it with sequence diagrams.\n"), 0o644))

	tpl, err := LoadTemplates(dir)
	require.NoError(t, err)

	rendered, err := tpl.renderWork(workPromptData{Requirement: "r", Task: "t"})
	require.NoError(t, err)
	assert.Equal(t, "REQ: r\nTASK: t", rendered)

	assert.Equal(t, "Design it with sequence diagrams.", tpl.instructionsFor(config.PhaseDesign))
	assert.Contains(t, tpl.instructionsFor(config.PhaseTesting), "test plan",
		"phases without an override keep the builtin guidance")
}

func TestLoadTemplatesRejectsMalformedOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "persona_work.tmpl"),
		[]byte("{{.Requirement"), 0o644))

	_, err := LoadTemplates(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persona_work.tmpl")
}

func TestFormatTaskSectionNarrowsDeliverables(t *testing.T) {
	contract := &contracts.Contract{
		Phase: config.PhaseDesign,
		Deliverables: []contracts.Deliverable{
			{Name: "architecture", Patterns: []string{"**/architecture*.md"}},
			{Name: "api_design", Patterns: []string{"**/api*.md"}},
			{Name: "data_model", Patterns: []string{"**/schema*.sql"}, Optional: true},
		},
	}

	full := formatTaskSection(config.PhaseDesign, "Design.", contract, nil, "")
	assert.Contains(t, full, "Write these deliverables into the workspace now: architecture, api_design.")

	narrowed := formatTaskSection(config.PhaseDesign, "Design.", contract, []string{"api_design"}, "Close the gap.")
	assert.Contains(t, narrowed, "Close the gap.")
	assert.Contains(t, narrowed, "workspace now: api_design.")
	assert.NotContains(t, narrowed, "architecture")

	// Narrowing to optional deliverables by name still surfaces them.
	optional := formatDeliverablesSection(contract, []string{"data_model"})
	assert.Contains(t, optional, "- data_model (file patterns: **/schema*.sql)")

	unknown := formatTaskSection(config.PhaseDesign, "Design.", contract, []string{"ghost"}, "")
	assert.NotContains(t, unknown, "Write these deliverables")
}
