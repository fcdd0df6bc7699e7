package workflow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/config"
)

const registryManifestJSON = `{
  "iteration_id": "iter-20260301-100000",
  "project": "billing",
  "nodes": [
    {"id": "req", "type": "action", "phase": "requirements"},
    {"id": "design", "type": "action", "phase": "design", "depends_on": ["req"]}
  ]
}`

const registryManifestYAML = `iteration_id: iter-20260301-110000
project: billing
nodes:
  - id: impl
    type: action
    phase: implementation
`

func TestLoadRegistryDiscoversManifests(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(registryManifestJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(registryManifestYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("not a manifest"), 0o644))

	reg, err := LoadRegistry(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	m, err := reg.Get("iter-20260301-100000")
	require.NoError(t, err)
	assert.Equal(t, "billing", m.Project)
	assert.Len(t, m.Nodes, 2)

	list := reg.List()
	require.Len(t, list, 2)
	assert.Equal(t, "iter-20260301-100000", list[0].IterationID)
	assert.Equal(t, "iter-20260301-110000", list[1].IterationID)
}

func TestLoadRegistryRejectsInvalidManifest(t *testing.T) {
	dir := t.TempDir()
	bad := `{"iteration_id": "iter-x", "nodes": [{"id": "a", "type": "action", "depends_on": ["ghost"]}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(bad), 0o644))

	_, err := LoadRegistry(dir)
	assert.ErrorIs(t, err, ErrUnknownDependency)
}

func TestReloadRejectsDuplicateIterationIDs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(registryManifestJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "copy.json"), []byte(registryManifestJSON), 0o644))

	_, err := LoadRegistry(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one manifest file")
}

func TestReloadKeepsPreviousSetOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.json")
	require.NoError(t, os.WriteFile(path, []byte(registryManifestJSON), 0o644))

	reg, err := LoadRegistry(dir)
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())

	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
	require.Error(t, reg.Reload())

	_, err = reg.Get("iter-20260301-100000")
	assert.NoError(t, err, "failed reload leaves the previous set in place")
}

func TestRegisterValidates(t *testing.T) {
	reg := NewRegistry(t.TempDir())

	err := reg.Register(&Manifest{Nodes: []ManifestNode{{ID: "a", Type: NodeTypeAction}}})
	assert.ErrorIs(t, err, config.ErrMissingRequiredField, "iteration_id is required")

	require.NoError(t, reg.Register(&Manifest{
		IterationID: "iter-1",
		Nodes:       []ManifestNode{{ID: "a", Type: NodeTypeAction, Phase: config.PhaseDesign}},
	}))
	assert.Equal(t, 1, reg.Len())

	_, err = reg.Get("ghost")
	assert.ErrorIs(t, err, ErrWorkflowNotFound)
}
