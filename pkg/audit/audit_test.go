package audit

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerAppendAndScan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trail.jsonl")

	logger, err := Open(path)
	require.NoError(t, err)
	defer logger.Close()

	require.NoError(t, logger.Append(Event{
		EventType:  EventGateEvaluation,
		WorkflowID: "wf-1",
		Phase:      "implementation",
		Gate:       "test_coverage",
		Details:    map[string]any{"passed": false, "score": 0.68},
	}))
	require.NoError(t, logger.Append(Event{
		EventType:  EventBypassRequested,
		WorkflowID: "wf-1",
		BypassID:   "bp-1",
		Actor:      "tech_lead",
	}))
	require.NoError(t, logger.Append(Event{
		EventType:  EventGateEvaluation,
		WorkflowID: "wf-2",
		Phase:      "design",
		Gate:       "quality_score",
		Details:    map[string]any{"passed": true, "score": 0.91},
	}))

	events, err := Collect(path, Filter{WorkflowID: "wf-1"})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, EventGateEvaluation, events[0].EventType)
	assert.Equal(t, "bp-1", events[1].BypassID)
	assert.False(t, events[0].Timestamp.IsZero(), "timestamp should be assigned on append")

	// Filter by event type across workflows.
	gates, err := Collect(path, Filter{EventType: EventGateEvaluation})
	require.NoError(t, err)
	assert.Len(t, gates, 2)
}

func TestLoggerAppendRequiresEventType(t *testing.T) {
	logger, err := Open(filepath.Join(t.TempDir(), "trail.jsonl"))
	require.NoError(t, err)
	defer logger.Close()

	err = logger.Append(Event{WorkflowID: "wf-1"})
	assert.Error(t, err)
}

func TestLoggerAppendAfterClose(t *testing.T) {
	logger, err := Open(filepath.Join(t.TempDir(), "trail.jsonl"))
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	err = logger.Append(Event{EventType: EventNodeTransition})
	assert.Error(t, err)
}

func TestConcurrentAppendsProduceValidLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trail.jsonl")
	logger, err := Open(path)
	require.NoError(t, err)
	defer logger.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = logger.Append(Event{
				EventType: EventNodeTransition,
				NodeID:    "node",
				Details:   map[string]any{"n": n},
			})
		}(i)
	}
	wg.Wait()

	events, err := Collect(path, Filter{})
	require.NoError(t, err)
	assert.Len(t, events, 20, "every concurrent append should produce exactly one intact line")
}

func TestScanSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trail.jsonl")
	logger, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, logger.Append(Event{EventType: EventBypassApproved, BypassID: "bp-1"}))
	require.NoError(t, logger.Close())

	// Corrupt the trail with a truncated line, then append another
	// valid entry after it.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("{\"event_type\": \"gate_eval\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	logger, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, logger.Append(Event{EventType: EventBypassExpired, BypassID: "bp-1"}))
	require.NoError(t, logger.Close())

	events, err := Collect(path, Filter{})
	require.NoError(t, err)
	require.Len(t, events, 2, "malformed line should be skipped, not fail the scan")
	assert.Equal(t, EventBypassApproved, events[0].EventType)
	assert.Equal(t, EventBypassExpired, events[1].EventType)
}

func TestScanEarlyStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trail.jsonl")
	logger, err := Open(path)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, logger.Append(Event{EventType: EventWorkflowStatus}))
	}
	require.NoError(t, logger.Close())

	seen := 0
	err = Scan(path, Filter{}, func(Event) bool {
		seen++
		return seen < 2
	})
	require.NoError(t, err)
	assert.Equal(t, 2, seen)
}

func TestScanTimeWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trail.jsonl")
	logger, err := Open(path)
	require.NoError(t, err)

	old := time.Now().UTC().Add(-48 * time.Hour)
	require.NoError(t, logger.Append(Event{EventType: EventBypassExpired, Timestamp: old}))
	require.NoError(t, logger.Append(Event{EventType: EventBypassExpired}))
	require.NoError(t, logger.Close())

	recent, err := Collect(path, Filter{Since: time.Now().Add(-time.Hour)})
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestBuildReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trail.jsonl")
	logger, err := Open(path)
	require.NoError(t, err)
	defer logger.Close()

	require.NoError(t, logger.Append(Event{
		EventType: EventGateEvaluation, WorkflowID: "wf-1", Gate: "test_coverage",
		Details: map[string]any{"passed": false},
	}))
	require.NoError(t, logger.Append(Event{
		EventType: EventGateEvaluation, WorkflowID: "wf-1", Gate: "test_coverage",
		Details: map[string]any{"passed": false},
	}))
	require.NoError(t, logger.Append(Event{
		EventType: EventGateEvaluation, WorkflowID: "wf-1", Gate: "quality_score",
		Details: map[string]any{"passed": true},
	}))
	require.NoError(t, logger.Append(Event{EventType: EventBypassRequested, WorkflowID: "wf-1", BypassID: "bp-1"}))
	require.NoError(t, logger.Append(Event{EventType: EventBypassApproved, WorkflowID: "wf-1", BypassID: "bp-1"}))

	report, err := BuildReport(path, Filter{WorkflowID: "wf-1"})
	require.NoError(t, err)

	assert.Equal(t, 5, report.TotalEvents)
	assert.Equal(t, 3, report.GatesEvaluated)
	assert.Equal(t, 1, report.GatesPassed)
	assert.Equal(t, 2, report.GatesFailed)
	assert.Equal(t, 1, report.BypassesByState["proposed"])
	assert.Equal(t, 1, report.BypassesByState["approved"])
	assert.Equal(t, []string{"test_coverage"}, report.TopGateFailures()[:1])
}
