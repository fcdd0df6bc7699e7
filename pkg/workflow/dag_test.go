package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDAG(t *testing.T, nodes map[string]NodeType, deps map[string][]string) *DAG {
	t.Helper()
	d := NewDAG()
	for id, typ := range nodes {
		require.NoError(t, d.AddNode(id, typ))
	}
	for node, nodeDeps := range deps {
		for _, dep := range nodeDeps {
			require.NoError(t, d.AddDependency(node, dep))
		}
	}
	return d
}

func TestTopologicalGroupsDiamond(t *testing.T) {
	// An interface contract fans out to backend and frontend work that
	// joins again for testing.
	d := buildDAG(t,
		map[string]NodeType{
			"IF.API":   NodeTypeInterface,
			"BE.Impl":  NodeTypeAction,
			"FE.UI":    NodeTypeAction,
			"QA.Tests": NodeTypeAction,
		},
		map[string][]string{
			"BE.Impl":  {"IF.API"},
			"FE.UI":    {"IF.API"},
			"QA.Tests": {"BE.Impl", "FE.UI"},
		})

	waves, err := d.TopologicalGroups()
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"IF.API"},
		{"BE.Impl", "FE.UI"},
		{"QA.Tests"},
	}, waves)
}

func TestTopologicalGroupsPromotesInterfaces(t *testing.T) {
	// An interface node sharing a topological level with plain actions
	// is pulled into its own earlier wave so the contract locks before
	// sibling work starts.
	d := buildDAG(t,
		map[string]NodeType{
			"setup":  NodeTypeAction,
			"schema": NodeTypeInterface,
			"impl":   NodeTypeAction,
		},
		map[string][]string{
			"impl": {"setup", "schema"},
		})

	waves, err := d.TopologicalGroups()
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"schema"},
		{"setup"},
		{"impl"},
	}, waves)
}

func TestTopologicalGroupsIndependentNodesShareWave(t *testing.T) {
	d := buildDAG(t,
		map[string]NodeType{
			"c": NodeTypeAction,
			"a": NodeTypeAction,
			"b": NodeTypeAction,
		}, nil)

	waves, err := d.TopologicalGroups()
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "b", "c"}}, waves)
}

func TestAddDependencyRejectsCycle(t *testing.T) {
	d := buildDAG(t,
		map[string]NodeType{
			"a": NodeTypeAction,
			"b": NodeTypeAction,
			"c": NodeTypeAction,
		},
		map[string][]string{
			"b": {"a"},
			"c": {"b"},
		})

	err := d.AddDependency("a", "c")
	require.Error(t, err)

	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Contains(t, cycleErr.Cycle, "a")
	assert.Contains(t, cycleErr.Cycle, "b")
	assert.Contains(t, cycleErr.Cycle, "c")
	assert.Contains(t, err.Error(), "dependency cycle")
}

func TestAddDependencyRejectsSelfReference(t *testing.T) {
	d := NewDAG()
	require.NoError(t, d.AddNode("a", NodeTypeAction))

	err := d.AddDependency("a", "a")
	assert.ErrorIs(t, err, ErrSelfDependency)
}

func TestAddDependencyRejectsUnknownNodes(t *testing.T) {
	d := NewDAG()
	require.NoError(t, d.AddNode("a", NodeTypeAction))

	assert.ErrorIs(t, d.AddDependency("ghost", "a"), ErrUnknownNode)
	assert.ErrorIs(t, d.AddDependency("a", "ghost"), ErrUnknownDependency)
}

func TestAddNodeRejectsDuplicates(t *testing.T) {
	d := NewDAG()
	require.NoError(t, d.AddNode("a", NodeTypeAction))

	err := d.AddNode("a", NodeTypePhase)
	assert.ErrorIs(t, err, ErrDuplicateNode)
	assert.Equal(t, 1, d.Len())
}

func TestDownstreamIsTransitiveAndSorted(t *testing.T) {
	d := buildDAG(t,
		map[string]NodeType{
			"root": NodeTypeAction,
			"mid":  NodeTypeAction,
			"leaf": NodeTypeAction,
			"side": NodeTypeAction,
		},
		map[string][]string{
			"mid":  {"root"},
			"leaf": {"mid"},
			"side": {"root"},
		})

	assert.Equal(t, []string{"leaf", "mid", "side"}, d.Downstream("root"))
	assert.Equal(t, []string{"leaf"}, d.Downstream("mid"))
	assert.Empty(t, d.Downstream("leaf"))
}

func TestTopologicalGroupsDetectsPrebuiltCycle(t *testing.T) {
	// Hand-built graph bypassing AddDependency's cycle rejection.
	d := NewDAG()
	require.NoError(t, d.AddNode("a", NodeTypeAction))
	require.NoError(t, d.AddNode("b", NodeTypeAction))
	d.dependsOn["a"] = []string{"b"}
	d.dependsOn["b"] = []string{"a"}
	d.dependents["a"] = []string{"b"}
	d.dependents["b"] = []string{"a"}

	_, err := d.TopologicalGroups()
	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.ElementsMatch(t, []string{"a", "b"}, cycleErr.Cycle)
}

func TestNodeStatusTransitions(t *testing.T) {
	tests := []struct {
		from    NodeStatus
		to      NodeStatus
		allowed bool
	}{
		{NodeStatusPending, NodeStatusReady, true},
		{NodeStatusPending, NodeStatusRunning, false},
		{NodeStatusReady, NodeStatusRunning, true},
		{NodeStatusRunning, NodeStatusCompleted, true},
		{NodeStatusRunning, NodeStatusFailed, true},
		{NodeStatusFailed, NodeStatusReady, true},
		{NodeStatusCompleted, NodeStatusRunning, false},
		{NodeStatusSkipped, NodeStatusReady, false},
		{NodeStatusCancelled, NodeStatusRunning, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}

	assert.True(t, NodeStatusCompleted.IsTerminal())
	assert.True(t, NodeStatusSkipped.IsTerminal())
	assert.False(t, NodeStatusRunning.IsTerminal())
}

func TestRetryPolicyBackoffDoublesAndCaps(t *testing.T) {
	p := RetryPolicy{
		MaxRetries:     5,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     350 * time.Millisecond,
	}

	assert.Equal(t, 100*time.Millisecond, p.backoffFor(1))
	assert.Equal(t, 200*time.Millisecond, p.backoffFor(2))
	assert.Equal(t, 350*time.Millisecond, p.backoffFor(3))
	assert.Equal(t, 350*time.Millisecond, p.backoffFor(4))
}

func TestCycleErrorPathMentionsEveryHop(t *testing.T) {
	err := &CycleError{Cycle: []string{"a", "b", "a"}}
	assert.Equal(t, "dependency cycle: a -> b -> a", err.Error())

	target := &CycleError{}
	assert.True(t, errors.As(err, &target))
}
