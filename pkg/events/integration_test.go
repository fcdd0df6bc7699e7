package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/ent/nodeexecution"
	"github.com/maestro-works/maestro/ent/workflowexecution"
	"github.com/maestro-works/maestro/pkg/database"
	"github.com/maestro-works/maestro/pkg/models"
	"github.com/maestro-works/maestro/pkg/services"
	testdb "github.com/maestro-works/maestro/test/database"
	"github.com/maestro-works/maestro/test/util"
)

// eventsTestEnv holds all wired-up components for an integration test.
type eventsTestEnv struct {
	dbClient     *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	workflowID   string
	executionID  string
	channel      string // workflow:<workflowID>
}

// setupEventsTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupEventsTest(t *testing.T) *eventsTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create an execution so events have a real scope to attach to.
	workflowID := "web-api"
	executionService := services.NewExecutionService(dbClient.Client)
	execution, err := executionService.CreateExecution(ctx, models.CreateExecutionRequest{
		ExecutionID: uuid.New().String(),
		WorkflowID:  workflowID,
		Requirement: "integration test requirement",
		TotalNodes:  3,
	})
	require.NoError(t, err)

	channel := WorkflowChannel(workflowID)

	// Real components
	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	manager := NewConnectionManager(catchupQuerier, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &eventsTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		workflowID:   workflowID,
		executionID:  execution.ID,
		channel:      channel,
	}
}

func (env *eventsTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the given channel, reads subscription.confirmed, and
// waits for the LISTEN to propagate.
func (env *eventsTestEnv) subscribeAndWait(t *testing.T, channel string) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	// Read connection.established
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	// Read subscription.confirmed
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Wait for LISTEN to complete on the NotifyListener's dedicated
	// connection, polling instead of sleeping.
	require.Eventually(t, func() bool {
		return env.listener.isListening(channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Publish first event (node status)
	err := env.publisher.PublishNodeStatus(ctx, env.workflowID, NodeStatusPayload{
		BasePayload: BasePayload{
			Type:        EventTypeNodeStatus,
			WorkflowID:  env.workflowID,
			ExecutionID: env.executionID,
			Timestamp:   time.Now().Format(time.RFC3339Nano),
		},
		NodeID: "architect",
		Phase:  "design",
		Status: nodeexecution.StatusRunning,
	})
	require.NoError(t, err)

	// Publish second event (gate result)
	err = env.publisher.PublishGateResult(ctx, env.workflowID, GateResultPayload{
		BasePayload: BasePayload{
			Type:        EventTypeGateResult,
			WorkflowID:  env.workflowID,
			ExecutionID: env.executionID,
			Timestamp:   time.Now().Format(time.RFC3339Nano),
		},
		Phase:  "design",
		Kind:   "exit",
		Passed: true,
		Score:  1.0,
	})
	require.NoError(t, err)

	// Query persisted events via EventService
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	assert.Equal(t, env.executionID, events[0].ExecutionID)
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeNodeStatus, events[0].Payload["type"])
	assert.Equal(t, "architect", events[0].Payload["node_id"])

	assert.Equal(t, EventTypeGateResult, events[1].Payload["type"])
	assert.Equal(t, "exit", events[1].Payload["kind"])
	assert.Equal(t, true, events[1].Payload["passed"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Publish transient event (progress counter)
	err := env.publisher.PublishWorkflowProgress(ctx, env.workflowID, WorkflowProgressPayload{
		BasePayload: BasePayload{
			Type:        EventTypeWorkflowProgress,
			WorkflowID:  env.workflowID,
			ExecutionID: env.executionID,
			Timestamp:   time.Now().Format(time.RFC3339Nano),
		},
		CompletedNodes: 1,
		TotalNodes:     3,
	})
	require.NoError(t, err)

	// Query DB — should have zero persisted events
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted in DB")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Connect, subscribe, and wait for LISTEN to propagate
	conn := env.subscribeAndWait(t, env.channel)

	// Publish a persistent event via EventPublisher
	err := env.publisher.PublishNodeStatus(ctx, env.workflowID, NodeStatusPayload{
		BasePayload: BasePayload{
			Type:        EventTypeNodeStatus,
			WorkflowID:  env.workflowID,
			ExecutionID: env.executionID,
			Timestamp:   time.Now().Format(time.RFC3339Nano),
		},
		NodeID: "implement",
		Phase:  "implementation",
		Status: nodeexecution.StatusCompleted,
	})
	require.NoError(t, err)

	// Read from WebSocket — the event should arrive via pg_notify → listener → manager
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeNodeStatus, msg["type"])
	assert.Equal(t, "implement", msg["node_id"])
	assert.Equal(t, env.workflowID, msg["workflow_id"])
	// db_event_id should be present (added by persistAndNotify after INSERT)
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_StatusDualPublish(t *testing.T) {
	// workflow.status goes to the workflow channel (persistent) AND the
	// global workflows channel (transient) so the execution list updates
	// without a per-workflow subscription.
	env := setupEventsTest(t)
	ctx := context.Background()

	workflowConn := env.subscribeAndWait(t, env.channel)
	globalConn := env.subscribeAndWait(t, GlobalWorkflowsChannel)

	err := env.publisher.PublishWorkflowStatus(ctx, env.workflowID, WorkflowStatusPayload{
		BasePayload: BasePayload{
			Type:        EventTypeWorkflowStatus,
			WorkflowID:  env.workflowID,
			ExecutionID: env.executionID,
			Timestamp:   time.Now().Format(time.RFC3339Nano),
		},
		Status:         workflowexecution.StatusInProgress,
		CurrentPhase:   "design",
		CompletedNodes: 0,
		TotalNodes:     3,
	})
	require.NoError(t, err)

	// Workflow channel copy is the persistent one — carries db_event_id.
	msg := readJSONTimeout(t, workflowConn, 5*time.Second)
	assert.Equal(t, EventTypeWorkflowStatus, msg["type"])
	assert.NotNil(t, msg["db_event_id"])

	// Global copy is transient — no db_event_id.
	msg = readJSONTimeout(t, globalConn, 5*time.Second)
	assert.Equal(t, EventTypeWorkflowStatus, msg["type"])
	assert.Equal(t, env.executionID, msg["execution_id"])
	assert.Nil(t, msg["db_event_id"])

	// Only the workflow channel copy was persisted.
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 1)
	globalEvents, err := env.eventService.GetEventsSince(ctx, GlobalWorkflowsChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, globalEvents)
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupEventsTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 persistent events
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishNodeStatus(ctx, env.workflowID, NodeStatusPayload{
			BasePayload: BasePayload{
				Type:        EventTypeNodeStatus,
				WorkflowID:  env.workflowID,
				ExecutionID: env.executionID,
				Timestamp:   time.Now().Format(time.RFC3339Nano),
			},
			NodeID: "architect",
			Wave:   i,
			Status: nodeexecution.StatusRunning,
		})
		require.NoError(t, err)
	}

	// Verify events exist in DB
	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Connect a NEW WebSocket client (simulates reconnection)
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second) // connection.established
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe — auto-catchup delivers all 3 prior events immediately
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second) // subscription.confirmed
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Read all 3 auto-catchup events in order
	for i := 1; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeNodeStatus, msg["type"])
		assert.Equal(t, float64(i), msg["wave"])
	}

	// Explicit catchup from the first event's ID — should return only events 2 and 3
	catchupFrom := firstEventID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &catchupFrom,
	})
	writeCtx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	require.NoError(t, conn.Write(writeCtx2, websocket.MessageText, catchupMsg))

	for i := 2; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, float64(i), msg["wave"])
	}

	// No more messages — verify with short timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}

func TestIntegration_TerminalCleanupEmptiesCatchup(t *testing.T) {
	// After an execution reaches a terminal state the orchestrator deletes
	// its events; a late subscriber should get an empty catchup rather
	// than replaying a finished run.
	env := setupEventsTest(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := env.publisher.PublishNodeStatus(ctx, env.workflowID, NodeStatusPayload{
			BasePayload: BasePayload{
				Type:        EventTypeNodeStatus,
				WorkflowID:  env.workflowID,
				ExecutionID: env.executionID,
				Timestamp:   time.Now().Format(time.RFC3339Nano),
			},
			NodeID: "implement",
			Status: nodeexecution.StatusCompleted,
		})
		require.NoError(t, err)
	}

	deleted, err := env.eventService.CleanupExecutionEvents(ctx, env.executionID)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestIntegration_PersonaChunkStreaming(t *testing.T) {
	// Verifies the persona streaming sequence: a persistent node.status
	// (running), a burst of transient persona.chunk deltas, then a
	// persistent node.status (completed). Subscribers see all of it live;
	// only the two status events survive for catchup.
	env := setupEventsTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t, env.channel)

	base := func() BasePayload {
		return BasePayload{
			WorkflowID:  env.workflowID,
			ExecutionID: env.executionID,
			Timestamp:   time.Now().Format(time.RFC3339Nano),
		}
	}

	running := NodeStatusPayload{BasePayload: base(), NodeID: "implement", Status: nodeexecution.StatusRunning}
	running.Type = EventTypeNodeStatus
	require.NoError(t, env.publisher.PublishNodeStatus(ctx, env.workflowID, running))

	deltas := []string{"package payments\n", "\nfunc Retry(", "ctx context.Context) error {"}
	for _, delta := range deltas {
		chunk := PersonaChunkPayload{BasePayload: base(), NodeID: "implement", PersonaID: "persona-implementer", Delta: delta}
		chunk.Type = EventTypePersonaChunk
		require.NoError(t, env.publisher.PublishPersonaChunk(ctx, env.workflowID, chunk))
	}

	completed := NodeStatusPayload{BasePayload: base(), NodeID: "implement", Status: nodeexecution.StatusCompleted}
	completed.Type = EventTypeNodeStatus
	require.NoError(t, env.publisher.PublishNodeStatus(ctx, env.workflowID, completed))

	// Live subscriber sees the full sequence in order.
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeNodeStatus, msg["type"])
	assert.Equal(t, string(nodeexecution.StatusRunning), msg["status"])

	for _, delta := range deltas {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypePersonaChunk, msg["type"])
		assert.Equal(t, delta, msg["delta"])
		assert.Nil(t, msg["db_event_id"], "chunks are transient")
	}

	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeNodeStatus, msg["type"])
	assert.Equal(t, string(nodeexecution.StatusCompleted), msg["status"])

	// Only the two status events were persisted.
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
