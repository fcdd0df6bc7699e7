package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/models"
	testdb "github.com/maestro-works/maestro/test/database"
)

func TestEventService_CreateEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	t.Run("creates event with payload", func(t *testing.T) {
		event, err := service.CreateEvent(ctx, models.CreateEventRequest{
			ExecutionID: "exec-1",
			Channel:     "workflow:web-api",
			Payload:     map[string]any{"type": "node.status", "node_id": "architect"},
		})
		require.NoError(t, err)
		assert.Positive(t, event.ID)
		assert.Equal(t, "exec-1", event.ExecutionID)
		assert.Equal(t, "workflow:web-api", event.Channel)
		assert.Equal(t, "node.status", event.Payload["type"])
		assert.NotZero(t, event.CreatedAt)
	})

	t.Run("allows events without execution scope", func(t *testing.T) {
		event, err := service.CreateEvent(ctx, models.CreateEventRequest{
			Channel: "workflows",
			Payload: map[string]any{"type": "workflow.status"},
		})
		require.NoError(t, err)
		assert.Empty(t, event.ExecutionID)
	})

	t.Run("validates channel", func(t *testing.T) {
		_, err := service.CreateEvent(ctx, models.CreateEventRequest{
			Payload: map[string]any{"type": "node.status"},
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	var ids []int
	for i := 0; i < 5; i++ {
		event, err := service.CreateEvent(ctx, models.CreateEventRequest{
			ExecutionID: "exec-1",
			Channel:     "workflow:web-api",
			Payload:     map[string]any{"seq": i},
		})
		require.NoError(t, err)
		ids = append(ids, event.ID)
	}
	// Noise on another channel.
	_, err := service.CreateEvent(ctx, models.CreateEventRequest{
		Channel: "workflows",
		Payload: map[string]any{"type": "workflow.status"},
	})
	require.NoError(t, err)

	t.Run("returns events after cursor in ID order", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "workflow:web-api", ids[1], 0)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, ids[2], events[0].ID)
		assert.Equal(t, ids[4], events[2].ID)
	})

	t.Run("caps results at limit", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "workflow:web-api", 0, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, ids[0], events[0].ID)
	})

	t.Run("empty when cursor is at head", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "workflow:web-api", ids[4], 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_Cleanup(t *testing.T) {
	ctx := context.Background()

	t.Run("cleanup by execution", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewEventService(client.Client)

		for i := 0; i < 3; i++ {
			_, err := service.CreateEvent(ctx, models.CreateEventRequest{
				ExecutionID: "exec-done",
				Channel:     "workflow:web-api",
				Payload:     map[string]any{"seq": i},
			})
			require.NoError(t, err)
		}
		_, err := service.CreateEvent(ctx, models.CreateEventRequest{
			ExecutionID: "exec-live",
			Channel:     "workflow:web-api",
			Payload:     map[string]any{"seq": 0},
		})
		require.NoError(t, err)

		deleted, err := service.CleanupExecutionEvents(ctx, "exec-done")
		require.NoError(t, err)
		assert.Equal(t, 3, deleted)

		remaining, err := service.GetEventsSince(ctx, "workflow:web-api", 0, 0)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, "exec-live", remaining[0].ExecutionID)
	})

	t.Run("cleanup by age", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewEventService(client.Client)

		for i := 0; i < 2; i++ {
			event, err := service.CreateEvent(ctx, models.CreateEventRequest{
				Channel: "workflows",
				Payload: map[string]any{"seq": i},
			})
			require.NoError(t, err)
			_, err = client.Client.Event.UpdateOneID(event.ID).
				SetCreatedAt(time.Now().Add(-48 * time.Hour)).
				Save(ctx)
			require.NoError(t, err)
		}
		_, err := service.CreateEvent(ctx, models.CreateEventRequest{
			Channel: "workflows",
			Payload: map[string]any{"fresh": true},
		})
		require.NoError(t, err)

		deleted, err := service.CleanupOrphanedEvents(ctx, 24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 2, deleted)

		remaining, err := service.GetEventsSince(ctx, "workflows", 0, 0)
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})
}

func TestEventService_CatchupAfterReconnect(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	// Simulate a client that saw event N, disconnected, and missed a burst.
	var lastSeen int
	for i := 0; i < 10; i++ {
		event, err := service.CreateEvent(ctx, models.CreateEventRequest{
			ExecutionID: "exec-1",
			Channel:     "workflow:web-api",
			Payload:     map[string]any{"type": "node.status", "node_id": fmt.Sprintf("node-%d", i)},
		})
		require.NoError(t, err)
		if i == 3 {
			lastSeen = event.ID
		}
	}

	missed, err := service.GetEventsSince(ctx, "workflow:web-api", lastSeen, 100)
	require.NoError(t, err)
	assert.Len(t, missed, 6)
	for i := 1; i < len(missed); i++ {
		assert.Greater(t, missed[i].ID, missed[i-1].ID, "catchup must be ID-ordered")
	}
}
