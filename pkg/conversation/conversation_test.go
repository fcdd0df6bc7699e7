package conversation

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/config"
)

func TestAppendAssignsIDsAndTimestamps(t *testing.T) {
	store := NewStore("sess-1")

	id, err := store.Append(Message{
		Source: "backend_developer",
		Phase:  config.PhaseImplementation,
		Kind:   KindPersonaWork,
		PersonaWork: &PersonaWork{
			Summary:   "Implemented auth endpoints",
			Questions: []Question{{For: "frontend_developer", Question: "Which token storage do you expect?"}},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	msgs := store.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, id, msgs[0].ID)
	assert.False(t, msgs[0].CreatedAt.IsZero())
	assert.NotEmpty(t, msgs[0].PersonaWork.Questions[0].ID, "raised questions get ids for answer linkage")
}

func TestAppendRejectsInvalidMessages(t *testing.T) {
	store := NewStore("sess-1")

	_, err := store.Append(Message{Kind: KindSystem, System: &SystemNotice{Content: "x"}})
	assert.Error(t, err, "missing source")

	_, err = store.Append(Message{Source: "orchestrator", Kind: KindDiscussion})
	assert.Error(t, err, "payload variant must match kind")

	_, err = store.Append(Message{Source: "orchestrator"})
	assert.Error(t, err, "missing kind")
}

func TestFilter(t *testing.T) {
	store := NewStore("sess-1")

	for i := 0; i < 3; i++ {
		_, err := store.Append(Message{
			Source:     "solution_architect",
			Phase:      config.PhaseDesign,
			Kind:       KindDiscussion,
			Discussion: &Discussion{Content: "design point", MessageType: DiscussionGeneral},
		})
		require.NoError(t, err)
	}
	_, err := store.Append(Message{
		Source: "orchestrator",
		Phase:  config.PhaseDesign,
		Kind:   KindSystem,
		System: &SystemNotice{Content: "entering design phase"},
	})
	require.NoError(t, err)

	assert.Len(t, store.Filter(Query{Source: "solution_architect"}), 3)
	assert.Len(t, store.Filter(Query{Kind: KindSystem}), 1)
	assert.Len(t, store.Filter(Query{Phase: config.PhaseDesign}), 4)
	assert.Len(t, store.Filter(Query{Phase: config.PhaseTesting}), 0)
	assert.Len(t, store.Filter(Query{Limit: 2}), 2)

	// Limit keeps the most recent entries.
	last := store.Filter(Query{Limit: 1})
	assert.Equal(t, KindSystem, last[0].Kind)
}

// Question/answer linkage: a question raised in persona work is pending
// until an answer message references its id, and the answer then shows
// up in the asker's context.
func TestQuestionAnswerLinkage(t *testing.T) {
	store := NewStore("sess-1")

	_, err := store.Append(Message{
		Source: "backend_developer",
		Phase:  config.PhaseImplementation,
		Kind:   KindPersonaWork,
		PersonaWork: &PersonaWork{
			Summary:   "API skeleton done",
			Questions: []Question{{For: "frontend_developer", Question: "Cookie or localStorage for the session token?"}},
		},
	})
	require.NoError(t, err)

	pending := store.PendingQuestionsFor("frontend_developer")
	require.Len(t, pending, 1)
	questionID := pending[0].ID
	require.NotEmpty(t, questionID)

	assert.Empty(t, store.PendingQuestionsFor("qa_engineer"),
		"questions are directed, not broadcast")

	_, err = store.Append(Message{
		Source: "frontend_developer",
		Phase:  config.PhaseImplementation,
		Kind:   KindAnswer,
		Answer: &Answer{QuestionID: questionID, Text: "HttpOnly cookie", AskedBy: "backend_developer"},
	})
	require.NoError(t, err)

	assert.Empty(t, store.PendingQuestionsFor("frontend_developer"),
		"answered questions leave the pending set")
	assert.Empty(t, store.PendingQuestions(config.PhaseImplementation))

	ctx := store.ContextFor("backend_developer", 10)
	assert.Contains(t, ctx, "HttpOnly cookie",
		"the asker's next context should carry the answer")
}

func TestContextForIncludesPendingQuestions(t *testing.T) {
	store := NewStore("sess-1")

	_, err := store.Append(Message{
		Source: "qa_engineer",
		Phase:  config.PhaseTesting,
		Kind:   KindPersonaWork,
		PersonaWork: &PersonaWork{
			Summary:   "Wrote integration tests",
			Questions: []Question{{For: "devops_engineer", Question: "Is there a staging database?", Context: "needed for e2e runs"}},
		},
	})
	require.NoError(t, err)

	ctx := store.ContextFor("devops_engineer", 5)
	assert.Contains(t, ctx, "Questions waiting on you")
	assert.Contains(t, ctx, "Is there a staging database?")
	assert.Contains(t, ctx, "needed for e2e runs")

	assert.Empty(t, NewStore("empty").ContextFor("anyone", 5))
}

// Sectioning keeps answers and orchestrator notices in a persona's
// context even when newer team activity has pushed them past the
// recency window.
func TestContextForSectionsSurviveWindowOverflow(t *testing.T) {
	store := NewStore("sess-1")

	_, err := store.Append(Message{
		Source: "backend_developer",
		Phase:  config.PhaseImplementation,
		Kind:   KindPersonaWork,
		PersonaWork: &PersonaWork{
			Summary:   "API skeleton done",
			Questions: []Question{{For: "frontend_developer", Question: "Cookie or localStorage?"}},
		},
	})
	require.NoError(t, err)
	questionID := store.PendingQuestionsFor("frontend_developer")[0].ID

	_, err = store.Append(Message{
		Source: "frontend_developer",
		Phase:  config.PhaseImplementation,
		Kind:   KindAnswer,
		Answer: &Answer{QuestionID: questionID, Text: "HttpOnly cookie", AskedBy: "backend_developer"},
	})
	require.NoError(t, err)
	_, err = store.Append(Message{
		Source: "orchestrator",
		Kind:   KindSystem,
		System: &SystemNotice{Content: "implementation exit gate passed", Level: "info"},
	})
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		_, err = store.Append(Message{
			Source:      "qa_engineer",
			Phase:       config.PhaseTesting,
			Kind:        KindPersonaWork,
			PersonaWork: &PersonaWork{Summary: fmt.Sprintf("test batch %d", i)},
		})
		require.NoError(t, err)
	}

	ctx := store.ContextFor("backend_developer", 3)
	assert.Contains(t, ctx, "## Answers to your questions")
	assert.Contains(t, ctx, "HttpOnly cookie")
	assert.Contains(t, ctx, "implementation exit gate passed")
	assert.Contains(t, ctx, "test batch 7")
	assert.NotContains(t, ctx, "test batch 0", "older activity falls out of the window")
	assert.NotContains(t, ctx, "API skeleton done", "a persona's own work is not replayed to it")
}

func TestSummaryStats(t *testing.T) {
	store := NewStore("sess-1")

	_, err := store.Append(Message{
		Source: "solution_architect",
		Kind:   KindPersonaWork,
		PersonaWork: &PersonaWork{
			Summary:   "Chose event-driven design",
			Decisions: []Decision{{Decision: "PostgreSQL for persistence", Rationale: "team familiarity"}},
			Questions: []Question{{For: "backend_developer", Question: "Comfortable with pgx?"}},
		},
	})
	require.NoError(t, err)
	_, err = store.Append(Message{
		Source:     "backend_developer",
		Kind:       KindDiscussion,
		Discussion: &Discussion{Content: "yes", MessageType: DiscussionGeneral},
	})
	require.NoError(t, err)

	stats := store.SummaryStats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByKind[KindPersonaWork])
	assert.Equal(t, 1, stats.ByKind[KindDiscussion])
	assert.Equal(t, 1, stats.QuestionsRaised)
	assert.Equal(t, 1, stats.QuestionsPending)
	assert.Equal(t, 1, stats.DecisionsLogged)
}

// The mirror carries every acknowledged append, so a killed process
// still leaves the full conversation on disk without any terminal dump.
func TestMirrorPersistsEveryAppend(t *testing.T) {
	store := NewStore("sess-9")
	path := filepath.Join(t.TempDir(), "conversation.jsonl")
	require.NoError(t, store.OpenMirror(path))
	assert.Equal(t, path, store.MirrorPath())

	_, err := store.Append(Message{
		Source: "requirements_analyst",
		Phase:  config.PhaseRequirements,
		Kind:   KindPersonaWork,
		PersonaWork: &PersonaWork{
			Summary:   "Captured the user stories",
			Questions: []Question{{For: "solution_architect", Question: "Event-driven or CRUD?"}},
		},
	})
	require.NoError(t, err)
	_, err = store.Append(Message{
		Source: "orchestrator",
		Kind:   KindSystem,
		System: &SystemNotice{Content: "Entering phase design.", Level: "info"},
	})
	require.NoError(t, err)

	// Reload without closing the mirror. This is what recovery after an
	// abnormal exit sees, since every append was synced individually.
	restored, err := LoadMirror("sess-9", path)
	require.NoError(t, err)
	assert.Equal(t, "sess-9", restored.SessionID())

	want, err := json.Marshal(store.Messages())
	require.NoError(t, err)
	got, err := json.Marshal(restored.Messages())
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}

func TestOpenMirrorReplaysEarlierMessages(t *testing.T) {
	store := NewStore("sess-10")
	_, err := store.Append(Message{Source: "orchestrator", Kind: KindSystem, System: &SystemNotice{Content: "before the mirror"}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "conversation.jsonl")
	require.NoError(t, store.OpenMirror(path))
	_, err = store.Append(Message{Source: "orchestrator", Kind: KindSystem, System: &SystemNotice{Content: "after the mirror"}})
	require.NoError(t, err)
	require.NoError(t, store.CloseMirror())

	restored, err := LoadMirror("sess-10", path)
	require.NoError(t, err)
	require.Equal(t, 2, restored.Len())
	msgs := restored.Messages()
	assert.Equal(t, "before the mirror", msgs[0].System.Content)
	assert.Equal(t, "after the mirror", msgs[1].System.Content)
}

func TestDumpAndLoadRoundTrip(t *testing.T) {
	store := NewStore("sess-42")

	_, err := store.Append(Message{
		Source: "requirements_analyst",
		Phase:  config.PhaseRequirements,
		Kind:   KindPersonaWork,
		PersonaWork: &PersonaWork{
			Summary:      "Captured twelve user stories",
			FilesCreated: []string{"docs/requirements.md"},
			Dependencies: &Dependencies{ProvidesFor: []string{"solution_architect"}},
		},
	})
	require.NoError(t, err)
	_, err = store.Append(Message{
		Source: "orchestrator",
		Kind:   KindSystem,
		System: &SystemNotice{Content: "requirements exit gate passed", Level: "info"},
	})
	require.NoError(t, err)

	data, err := store.Dump()
	require.NoError(t, err)

	restored, err := LoadDump(data)
	require.NoError(t, err)
	assert.Equal(t, "sess-42", restored.SessionID())
	require.Equal(t, store.Len(), restored.Len())

	msgs := restored.Messages()
	assert.Equal(t, "Captured twelve user stories", msgs[0].PersonaWork.Summary)
	assert.Equal(t, []string{"solution_architect"}, msgs[0].PersonaWork.Dependencies.ProvidesFor)
	assert.Equal(t, "requirements exit gate passed", msgs[1].System.Content)
}

// A dump written by a newer build may contain kinds this build does not
// know. They must survive load and re-dump byte-compatibly.
func TestUnknownKindSurvivesRoundTrip(t *testing.T) {
	raw := `{
		"session_id": "sess-7",
		"messages": [
			{"id": "m1", "source": "orchestrator", "created_at": "2026-08-25T10:00:00Z", "kind": "system",
			 "payload": {"content": "hello"}},
			{"id": "m2", "source": "future_tool", "created_at": "2026-08-25T10:01:00Z", "kind": "telemetry",
			 "payload": {"metric": "latency_ms", "value": 42}}
		]
	}`

	restored, err := LoadDump([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, 2, restored.Len())

	dumped, err := restored.Dump()
	require.NoError(t, err)

	var parsed struct {
		Messages []struct {
			Kind    string          `json:"kind"`
			Payload json.RawMessage `json:"payload"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(dumped, &parsed))
	require.Len(t, parsed.Messages, 2)
	assert.Equal(t, "telemetry", parsed.Messages[1].Kind)
	assert.JSONEq(t, `{"metric": "latency_ms", "value": 42}`, string(parsed.Messages[1].Payload),
		"unknown payloads must be preserved verbatim")
}

func TestFilterSince(t *testing.T) {
	store := NewStore("sess-1")

	_, err := store.Append(Message{
		Source:    "orchestrator",
		Kind:      KindSystem,
		System:    &SystemNotice{Content: "old"},
		CreatedAt: time.Now().Add(-2 * time.Hour),
	})
	require.NoError(t, err)
	_, err = store.Append(Message{
		Source: "orchestrator",
		Kind:   KindSystem,
		System: &SystemNotice{Content: "new"},
	})
	require.NoError(t, err)

	recent := store.Filter(Query{Since: time.Now().Add(-time.Hour)})
	require.Len(t, recent, 1)
	assert.Equal(t, "new", recent[0].System.Content)
}
