package artifacts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/contracts"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// substantialDoc is long enough to clear the minimal-content ceiling.
func substantialDoc(topic string) string {
	var b strings.Builder
	b.WriteString("# " + topic + "\n\n")
	for i := 0; i < 8; i++ {
		b.WriteString("The service exposes authenticated endpoints with structured request ")
		b.WriteString("validation, consistent error envelopes, and pagination on list calls.\n")
	}
	return b.String()
}

func TestSnapshotDiff(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md", "initial")
	writeFile(t, root, "src/main.go", "package main")

	pre, err := TakeSnapshot(root)
	require.NoError(t, err)
	assert.Len(t, pre.Files, 2)

	writeFile(t, root, "src/auth.go", "package main // new")
	writeFile(t, root, "README.md", "updated content")
	require.NoError(t, os.Remove(filepath.Join(root, "src", "main.go")))

	post, err := TakeSnapshot(root)
	require.NoError(t, err)

	diff := pre.Diff(post)
	assert.Equal(t, []string{"src/auth.go"}, diff.Added)
	assert.Equal(t, []string{"README.md"}, diff.Modified)
	assert.Equal(t, []string{"src/main.go"}, diff.Removed)
	assert.Equal(t, []string{"README.md", "src/auth.go"}, diff.Produced())
}

func TestSnapshotIgnoresArchiveAndVCS(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/main.go", "package main")
	writeFile(t, root, ".git/config", "[core]")
	writeFile(t, root, "node_modules/pkg/index.js", "module.exports = {}")
	writeFile(t, root, "artifacts/it-1/node/old.md", "archived")
	writeFile(t, root, "logs/workflow_events.jsonl", "{}")

	snap, err := TakeSnapshot(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/main.go"}, mapsKeys(snap.Files))
}

func mapsKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func TestSnapshotMissingRootIsEmpty(t *testing.T) {
	snap, err := TakeSnapshot(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, snap.Files)
}

func TestScoreContentSubstantial(t *testing.T) {
	report := ScoreContent("requirements.md", []byte(substantialDoc("Requirements")))
	assert.False(t, report.Binary)
	assert.GreaterOrEqual(t, report.Score, 0.9)
	assert.Empty(t, report.Hits)
}

func TestScoreContentCriticalMarkerCapsScore(t *testing.T) {
	content := substantialDoc("Notes") + "\nTODO: fill in later\n"
	report := ScoreContent("notes.md", []byte(content))

	require.NotEmpty(t, report.Hits)
	assert.True(t, report.Hits[0].Critical)
	assert.LessOrEqual(t, report.Score, StubCeiling)
}

func TestScoreContentMinimalContentCapped(t *testing.T) {
	report := ScoreContent("stub.md", []byte("# Title\n\nShort.\n"))
	assert.LessOrEqual(t, report.Score, MinimalCeiling)
	assert.Less(t, report.Tokens, MinTokens)
}

func TestScoreContentBinary(t *testing.T) {
	png := ScoreContent("logo.png", []byte{0x89, 0x50, 0x4e, 0x47})
	assert.True(t, png.Binary)
	assert.InDelta(t, 1.0, png.Score, 0.001)

	sniffed := ScoreContent("blob.dat", []byte{0x01, 0x00, 0x02})
	assert.True(t, sniffed.Binary)

	empty := ScoreContent("empty.png", nil)
	assert.True(t, empty.Binary)
	assert.InDelta(t, 0.0, empty.Score, 0.001)
}

func TestInferProjectType(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  ProjectType
	}{
		{"backend", []string{"src/main.go", "src/auth.go", "go.mod"}, ProjectTypeBackend},
		{"frontend", []string{"ui/App.tsx", "ui/index.css"}, ProjectTypeFrontend},
		{"fullstack", []string{"src/api.py", "frontend/App.jsx"}, ProjectTypeFullstack},
		{"docs", []string{"README.md", "docs/guide.md"}, ProjectTypeDocs},
		{"ts under frontend dir", []string{"frontend/app.ts"}, ProjectTypeFrontend},
		{"empty", nil, ProjectTypeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferProjectType(tt.paths))
		})
	}
}

// Mixed-substance output: one real deliverable plus one stub. The stub
// must drag the aggregate quality below the gate threshold even though
// the required deliverable itself is satisfied.
func TestValidateStubDragsQualityDown(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "api/openapi.yaml", substantialDoc("API Contract"))
	writeFile(t, root, "notes.md", "TODO: fill in later\n")

	contract := &contracts.Contract{
		Phase:   config.PhaseDesign,
		Version: 1,
		Deliverables: []contracts.Deliverable{
			{Name: "api_contract", Patterns: []string{"*openapi*.yaml"}, MinQuality: 0.7},
		},
	}

	report, err := Validate(contract, root, []string{"api/openapi.yaml", "notes.md"})
	require.NoError(t, err)

	apiResult, ok := report.Deliverable("api_contract")
	require.True(t, ok)
	assert.Equal(t, DeliverableSatisfied, apiResult.Status)

	assert.InDelta(t, 1.0, report.CompletenessRatio, 0.001)
	assert.Less(t, report.QualityScore, 0.7,
		"stub file should drag mean substance below the quality threshold")
}

func TestValidateMissingRequiredDeliverable(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/architecture.md", substantialDoc("Architecture"))

	contract := &contracts.Contract{
		Phase:   config.PhaseDesign,
		Version: 2,
		Deliverables: []contracts.Deliverable{
			{Name: "architecture_doc", Patterns: []string{"*architecture*.md"}, MinQuality: 0.7},
			{Name: "api_contract", Patterns: []string{"*openapi*.yaml"}, MinQuality: 0.7},
		},
	}

	report, err := Validate(contract, root, []string{"docs/architecture.md"})
	require.NoError(t, err)

	missing, ok := report.Deliverable("api_contract")
	require.True(t, ok)
	assert.Equal(t, DeliverableMissing, missing.Status)
	assert.InDelta(t, 0.5, report.CompletenessRatio, 0.001)
	assert.NotEmpty(t, report.Recommendations)
}

func TestValidateOptionalAbsentIsSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "tests/auth_test.go", substantialDoc("Tests"))

	contract := &contracts.Contract{
		Phase:   config.PhaseTesting,
		Version: 1,
		Deliverables: []contracts.Deliverable{
			{Name: "test_suite", Patterns: []string{"tests/**"}, MinQuality: 0.7},
			{Name: "coverage_report", Patterns: []string{"*coverage*"}, MinQuality: 0.5, Optional: true},
		},
	}

	report, err := Validate(contract, root, []string{"tests/auth_test.go"})
	require.NoError(t, err)

	coverage, ok := report.Deliverable("coverage_report")
	require.True(t, ok)
	assert.Equal(t, DeliverableSkipped, coverage.Status)
	assert.InDelta(t, 1.0, report.CompletenessRatio, 0.001,
		"optional deliverables should not affect completeness")
}

func TestValidateProjectTypeGatesFrontend(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/server.go", substantialDoc("Server")+"\npackage server\n")

	contract := &contracts.Contract{
		Phase:   config.PhaseImplementation,
		Version: 1,
		Deliverables: []contracts.Deliverable{
			{Name: "source_code", Patterns: []string{"src/**"}, MinQuality: 0.7},
			{Name: "frontend_code", Patterns: []string{"frontend/**"}, MinQuality: 0.7},
		},
	}

	report, err := Validate(contract, root, []string{"src/server.go"})
	require.NoError(t, err)

	assert.Equal(t, ProjectTypeBackend, report.ProjectType)
	fe, ok := report.Deliverable("frontend_code")
	require.True(t, ok)
	assert.Equal(t, DeliverableSkipped, fe.Status,
		"frontend deliverable should be skipped for a backend project")
}

func TestStampAndLoad(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/requirements.md", substantialDoc("Requirements"))

	stamped, err := Stamp(root, "docs/requirements.md", StampMeta{
		IterationID: "it-20260825-001",
		NodeID:      "REQ.Analysis",
		PersonaID:   "requirements_analyst",
		Phase:       "requirements",
		Deliverable: "requirements_doc",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, stamped.ArtifactID)
	assert.Equal(t, "artifacts/it-20260825-001/REQ.Analysis/requirements.md", stamped.ArchivePath)
	assert.Len(t, stamped.SHA256, 64)
	assert.Positive(t, stamped.SizeBytes)

	// Archive copy and sidecar land next to each other.
	archived := filepath.Join(root, filepath.FromSlash(stamped.ArchivePath))
	assert.FileExists(t, archived)
	assert.FileExists(t, archived+".meta.json")

	loaded, err := LoadStamped(root, stamped.ArchivePath)
	require.NoError(t, err)
	assert.Equal(t, stamped.ArtifactID, loaded.ArtifactID)
	assert.Equal(t, stamped.SHA256, loaded.SHA256)
}

func TestStampRequiresProvenance(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.md", "content")

	_, err := Stamp(root, "a.md", StampMeta{})
	assert.Error(t, err)
}
