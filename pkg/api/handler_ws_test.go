package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-works/maestro/pkg/events"
)

func wsTestServer(t *testing.T, secret []byte) *httptest.Server {
	t.Helper()
	server := NewServer(0)
	server.SetJWTSecret(secret)
	server.SetConnectionManager(events.NewConnectionManager(nil, time.Second))

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)
	return ts
}

func wsURL(ts *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + path
}

func TestWorkflowWSRejectsMissingToken(t *testing.T) {
	ts := wsTestServer(t, []byte("test-secret"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(ts, "/ws/workflow/iter-1"), nil)
	require.NoError(t, err, "upgrade succeeds; rejection arrives as a close frame")
	defer conn.CloseNow()

	_, _, err = conn.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusCode(4001), websocket.CloseStatus(err))
}

func TestWorkflowWSRejectsInvalidToken(t *testing.T) {
	ts := wsTestServer(t, []byte("test-secret"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	badToken := signedToken(t, []byte("other-secret"), "mallory", time.Hour)
	conn, _, err := websocket.Dial(ctx, wsURL(ts, "/ws/workflow/iter-1?token="+badToken), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	_, _, err = conn.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusCode(4001), websocket.CloseStatus(err))
}

func TestWorkflowWSAcceptsValidToken(t *testing.T) {
	secret := []byte("test-secret")
	ts := wsTestServer(t, secret)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token := signedToken(t, secret, "alice", time.Hour)
	conn, _, err := websocket.Dial(ctx, wsURL(ts, "/ws/workflow/iter-1?token="+token), nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]string
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}
