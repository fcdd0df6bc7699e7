package collab

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/conversation"
	"github.com/maestro-works/maestro/pkg/llm"
)

func testPersonas() *config.PersonaRegistry {
	return config.NewPersonaRegistry(map[string]*config.PersonaConfig{
		"solution_architect": {
			Role:         "Solution Architect",
			SystemPrompt: "You are the solution architect.",
			Capabilities: []string{"architecture"},
		},
		"backend_developer": {
			Role:         "Backend Developer",
			SystemPrompt: "You are the backend developer.",
			Capabilities: []string{"backend"},
		},
		"frontend_developer": {
			Role:         "Frontend Developer",
			SystemPrompt: "You are the frontend developer.",
			Capabilities: []string{"frontend"},
		},
	})
}

func testDefaults() *config.Defaults {
	return &config.Defaults{
		ConsensusThreshold:      0.7,
		MaxDiscussionRounds:     3,
		DiscussionContextWindow: 20,
		MaxQuestionResolutions:  10,
	}
}

func TestRunDiscussionReachesConsensus(t *testing.T) {
	client := llm.NewCannedClient("I agree with the direction.",
		llm.CannedRule{Match: "reached consensus", Reply: `{"reached": true, "confidence": 0.9, "rationale": "aligned"}`},
		llm.CannedRule{Match: "Synthesize", Reply: `{"summary": "Use REST with JWT auth", "decisions": ["REST API", "JWT sessions"], "action_items": ["draft openapi spec"]}`},
	)
	conv := conversation.NewStore("sess-1")
	orch := NewOrchestrator(client, conv, testPersonas(), testDefaults())

	result, err := orch.RunDiscussion(context.Background(), "auth approach", config.PhaseDesign,
		[]string{"solution_architect", "backend_developer"})
	require.NoError(t, err)

	assert.True(t, result.ConsensusReached)
	assert.Equal(t, 1, result.Rounds, "consensus at 0.9 should end after the first round")
	assert.InDelta(t, 0.9, result.Confidence, 0.001)
	assert.Equal(t, 2, result.MessagesPosted)
	require.NotNil(t, result.Synthesis)
	assert.Equal(t, "Use REST with JWT auth", result.Synthesis.Summary)
	assert.Contains(t, result.Synthesis.Decisions, "REST API")

	// Discussion entries land in the conversation with round metadata,
	// framed by the opening and concluding system notices.
	discussions := conv.Filter(conversation.Query{Kind: conversation.KindDiscussion})
	require.Len(t, discussions, 2)
	assert.Equal(t, 1, discussions[0].Discussion.Round)
	assert.Equal(t, "auth approach", discussions[0].Discussion.Topic)

	notices := conv.Filter(conversation.Query{Kind: conversation.KindSystem})
	require.Len(t, notices, 2)
	assert.Contains(t, notices[0].System.Content, `discussion "auth approach" opened`)
	assert.Contains(t, notices[0].System.Content, "solution_architect, backend_developer")
	assert.Contains(t, notices[1].System.Content, "consensus=true")
}

func TestRunDiscussionExhaustsRounds(t *testing.T) {
	client := llm.NewCannedClient("We still disagree on caching.",
		llm.CannedRule{Match: "reached consensus", Reply: `{"reached": false, "confidence": 0.4}`},
		llm.CannedRule{Match: "Synthesize", Reply: `{"summary": "No agreement on caching; defaulting to no cache", "open_questions": ["redis vs in-memory"]}`},
	)
	conv := conversation.NewStore("sess-1")
	orch := NewOrchestrator(client, conv, testPersonas(), testDefaults())

	result, err := orch.RunDiscussion(context.Background(), "caching", config.PhaseDesign,
		[]string{"solution_architect", "backend_developer"})
	require.NoError(t, err)

	assert.False(t, result.ConsensusReached)
	assert.Equal(t, 3, result.Rounds, "should run all configured rounds")
	assert.Equal(t, 6, result.MessagesPosted)
	require.NotNil(t, result.Synthesis, "synthesis happens even without consensus")
	assert.Contains(t, result.Synthesis.OpenQuestions, "redis vs in-memory")
}

// A consensus check that returns prose instead of JSON must read as "no
// consensus", never as an error.
func TestConsensusCheckFailsOpen(t *testing.T) {
	client := llm.NewCannedClient("position",
		llm.CannedRule{Match: "reached consensus", Reply: "Sorry, I cannot answer in JSON today."},
		llm.CannedRule{Match: "Synthesize", Reply: `{"summary": "wrapped up"}`},
	)
	conv := conversation.NewStore("sess-1")
	orch := NewOrchestrator(client, conv, testPersonas(), testDefaults())

	result, err := orch.RunDiscussion(context.Background(), "topic", config.PhaseDesign,
		[]string{"solution_architect", "backend_developer"})
	require.NoError(t, err)
	assert.False(t, result.ConsensusReached)
	assert.Equal(t, 3, result.Rounds)
}

// A discussion is an exchange; one persona talking to itself is refused
// before anything is posted.
func TestRunDiscussionRequiresTwoParticipants(t *testing.T) {
	conv := conversation.NewStore("s")
	orch := NewOrchestrator(llm.NewCannedClient("x"), conv, testPersonas(), testDefaults())

	_, err := orch.RunDiscussion(context.Background(), "topic", config.PhaseDesign, nil)
	assert.Error(t, err)

	_, err = orch.RunDiscussion(context.Background(), "topic", config.PhaseDesign,
		[]string{"solution_architect"})
	assert.Error(t, err)
	assert.Equal(t, 0, conv.Len(), "a refused discussion leaves no trace in the conversation")
}

func TestSynthesisFallbackKeepsRawSummary(t *testing.T) {
	client := llm.NewCannedClient("position",
		llm.CannedRule{Match: "reached consensus", Reply: `{"reached": true, "confidence": 0.95}`},
		llm.CannedRule{Match: "Synthesize", Reply: "We settled on PostgreSQL, no structured output available."},
	)
	conv := conversation.NewStore("sess-1")
	orch := NewOrchestrator(client, conv, testPersonas(), testDefaults())

	result, err := orch.RunDiscussion(context.Background(), "storage", config.PhaseDesign,
		[]string{"solution_architect", "backend_developer"})
	require.NoError(t, err)
	require.NotNil(t, result.Synthesis)
	assert.Equal(t, "We settled on PostgreSQL, no structured output available.", result.Synthesis.Summary)
	assert.Empty(t, result.Synthesis.Decisions)
}

func TestResolvePendingQuestions(t *testing.T) {
	client := llm.NewCannedClient("answer",
		llm.CannedRule{Match: "token storage", Reply: "Use an HttpOnly cookie; localStorage is XSS-prone."},
	)
	conv := conversation.NewStore("sess-1")
	orch := NewOrchestrator(client, conv, testPersonas(), testDefaults())

	_, err := conv.Append(conversation.Message{
		Source: "backend_developer",
		Phase:  config.PhaseImplementation,
		Kind:   conversation.KindPersonaWork,
		PersonaWork: &conversation.PersonaWork{
			Summary: "auth endpoints done",
			Questions: []conversation.Question{
				{For: "frontend_developer", Question: "What token storage do you expect?", Context: "token storage decision"},
				{For: "nonexistent_persona", Question: "Anyone there?"},
			},
		},
	})
	require.NoError(t, err)

	resolved, err := orch.ResolvePendingQuestions(context.Background(), config.PhaseImplementation, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, resolved)

	answers := conv.Filter(conversation.Query{Kind: conversation.KindAnswer})
	require.Len(t, answers, 1)
	assert.Equal(t, "frontend_developer", answers[0].Source)
	assert.Contains(t, answers[0].Answer.Text, "HttpOnly cookie")

	// The answered question is gone; the unroutable one is flagged but
	// still pending rather than silently dropped.
	assert.Empty(t, conv.PendingQuestionsFor("frontend_developer"))
	warnings := conv.Filter(conversation.Query{Kind: conversation.KindSystem})
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].System.Content, "unknown persona")
}

func TestResolvePendingQuestionsHonorsCap(t *testing.T) {
	client := llm.NewCannedClient("short answer")
	conv := conversation.NewStore("sess-1")
	orch := NewOrchestrator(client, conv, testPersonas(), testDefaults())

	questions := make([]conversation.Question, 5)
	for i := range questions {
		questions[i] = conversation.Question{For: "backend_developer", Question: "q"}
	}
	_, err := conv.Append(conversation.Message{
		Source:      "qa_engineer",
		Phase:       config.PhaseTesting,
		Kind:        conversation.KindPersonaWork,
		PersonaWork: &conversation.PersonaWork{Summary: "s", Questions: questions},
	})
	require.NoError(t, err)

	resolved, err := orch.ResolvePendingQuestions(context.Background(), config.PhaseTesting, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, resolved)
	assert.Len(t, conv.PendingQuestions(config.PhaseTesting), 3)
}
