package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/config"
)

const manifestJSON = `{
  "iteration_id": "iter-001",
  "project": "payments",
  "requirement": "Add webhook retries",
  "constraints": {"language": "go"},
  "policies": [{"id": "default", "severity": "strict"}],
  "nodes": [
    {"id": "design.api", "type": "interface", "phase": "design", "persona": "architect", "outputs": ["openapi.yaml"]},
    {"id": "impl.backend", "type": "action", "phase": "implementation", "capability": "backend", "depends_on": ["design.api"], "timeout_seconds": 120, "max_retries": 2},
    {"id": "qa.suite", "type": "action", "phase": "testing", "capability": "testing", "depends_on": ["impl.backend"], "gates": ["test_coverage"]}
  ]
}`

const manifestYAML = `
iteration_id: iter-001
project: payments
requirement: Add webhook retries
constraints:
  language: go
policies:
  - id: default
    severity: strict
nodes:
  - id: design.api
    type: interface
    phase: design
    persona: architect
    outputs: [openapi.yaml]
  - id: impl.backend
    type: action
    phase: implementation
    capability: backend
    depends_on: [design.api]
    timeout_seconds: 120
    max_retries: 2
  - id: qa.suite
    type: action
    phase: testing
    capability: testing
    depends_on: [impl.backend]
    gates: [test_coverage]
`

func TestParseManifestJSONAndYAML(t *testing.T) {
	fromJSON, err := ParseManifest([]byte(manifestJSON))
	require.NoError(t, err)
	fromYAML, err := ParseManifest([]byte(manifestYAML))
	require.NoError(t, err)

	for _, m := range []*Manifest{fromJSON, fromYAML} {
		assert.Equal(t, "iter-001", m.IterationID)
		assert.Equal(t, "payments", m.Project)
		assert.Equal(t, "go", m.Constraints["language"])
		require.Len(t, m.Nodes, 3)
		assert.Equal(t, NodeTypeInterface, m.Nodes[0].Type)
		assert.Equal(t, config.PhaseDesign, m.Nodes[0].Phase)
		assert.Equal(t, []string{"design.api"}, m.Nodes[1].DependsOn)
		assert.Equal(t, 120, m.Nodes[1].TimeoutSeconds)
		assert.Equal(t, 2, m.Nodes[1].MaxRetries)
		require.Len(t, m.Policies, 1)
		assert.Equal(t, "default", m.Policies[0].ID)
	}
}

func TestParseManifestGarbage(t *testing.T) {
	_, err := ParseManifest([]byte("{not json\n\t- not: yaml: either:"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither valid JSON")
}

func TestManifestValidate(t *testing.T) {
	valid := func() *Manifest {
		m, err := ParseManifest([]byte(manifestJSON))
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		mutate  func(m *Manifest)
		wantErr error
	}{
		{
			name:    "no nodes",
			mutate:  func(m *Manifest) { m.Nodes = nil },
			wantErr: ErrEmptyWorkflow,
		},
		{
			name:    "missing iteration id",
			mutate:  func(m *Manifest) { m.IterationID = "" },
			wantErr: config.ErrMissingRequiredField,
		},
		{
			name:    "empty node id",
			mutate:  func(m *Manifest) { m.Nodes[0].ID = "" },
			wantErr: config.ErrMissingRequiredField,
		},
		{
			name:    "unknown node type",
			mutate:  func(m *Manifest) { m.Nodes[0].Type = "teleport" },
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "unknown phase",
			mutate:  func(m *Manifest) { m.Nodes[0].Phase = "shipping" },
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "negative timeout",
			mutate:  func(m *Manifest) { m.Nodes[1].TimeoutSeconds = -1 },
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "dependency on unknown node",
			mutate:  func(m *Manifest) { m.Nodes[2].DependsOn = []string{"ghost"} },
			wantErr: ErrUnknownDependency,
		},
		{
			name:    "duplicate node ids",
			mutate:  func(m *Manifest) { m.Nodes[1].ID = m.Nodes[0].ID },
			wantErr: ErrDuplicateNode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(m)
			assert.ErrorIs(t, m.Validate(), tt.wantErr)
		})
	}

	assert.NoError(t, valid().Validate())
}

func TestManifestValidateRejectsCycle(t *testing.T) {
	m, err := ParseManifest([]byte(manifestJSON))
	require.NoError(t, err)
	m.Nodes[0].DependsOn = []string{"qa.suite"}

	err = m.Validate()
	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
}

func TestManifestBuildAppliesEngineDefaults(t *testing.T) {
	m, err := ParseManifest([]byte(manifestJSON))
	require.NoError(t, err)

	cfg := config.DefaultEngineConfig()
	cfg.DefaultNodeTimeout = 45 * time.Second
	cfg.MaxRetries = 1
	cfg.InitialBackoff = 3 * time.Second
	cfg.MaxBackoff = 30 * time.Second

	wf, err := m.Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, "iter-001", wf.ID)
	require.Len(t, wf.Nodes, 3)

	// Explicit values survive; unset ones fall back.
	backend := wf.Nodes["impl.backend"]
	assert.Equal(t, 120*time.Second, backend.Timeout)
	assert.Equal(t, 2, backend.Retry.MaxRetries)
	assert.Equal(t, 3*time.Second, backend.Retry.InitialBackoff)

	api := wf.Nodes["design.api"]
	assert.Equal(t, 45*time.Second, api.Timeout)
	assert.Equal(t, 1, api.Retry.MaxRetries)
	assert.Equal(t, "architect", api.PersonaID)
}

func TestManifestBuildWaves(t *testing.T) {
	m, err := ParseManifest([]byte(manifestJSON))
	require.NoError(t, err)

	wf, err := m.Build(nil)
	require.NoError(t, err)

	waves, err := wf.Waves()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"design.api"},
		{"impl.backend"},
		{"qa.suite"},
	}, waves)

	assert.Equal(t, []string{"impl.backend", "qa.suite"}, wf.Downstream("design.api"))
}

func TestNodesForPhaseKeepsManifestOrder(t *testing.T) {
	m := &Manifest{
		IterationID: "iter-002",
		Nodes: []ManifestNode{
			{ID: "b", Type: NodeTypeAction, Phase: config.PhaseImplementation},
			{ID: "a", Type: NodeTypeAction, Phase: config.PhaseImplementation},
			{ID: "t", Type: NodeTypeAction, Phase: config.PhaseTesting},
		},
	}
	wf, err := m.Build(nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, wf.NodesForPhase(config.PhaseImplementation))
	assert.Equal(t, []string{"t"}, wf.NodesForPhase(config.PhaseTesting))
	assert.Empty(t, wf.NodesForPhase(config.PhaseDesign))
}

func TestEncodeJSONRoundTrips(t *testing.T) {
	m, err := ParseManifest([]byte(manifestYAML))
	require.NoError(t, err)

	data, err := m.EncodeJSON()
	require.NoError(t, err)

	back, err := ParseManifest(data)
	require.NoError(t, err)
	assert.Equal(t, m.IterationID, back.IterationID)
	assert.Equal(t, len(m.Nodes), len(back.Nodes))
}
