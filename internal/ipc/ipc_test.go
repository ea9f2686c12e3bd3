package ipc

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ttesting "skillscout/internal/tui/testing"
)

func socketPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.sock")
}

func TestSendRoundTrip(t *testing.T) {
	path := socketPath(t)

	var mu sync.Mutex
	var got Message
	server, err := Listen(path, func(msg Message) error {
		mu.Lock()
		defer mu.Unlock()
		got = msg
		return nil
	}, nil)
	require.NoError(t, err)
	defer server.Close()

	payload := ttesting.SampleTasksJSON()
	resp, err := Send(path, Message{Type: TypeTasks, Data: payload})
	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Empty(t, resp.Error)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, TypeTasks, got.Type)
	assert.JSONEq(t, string(payload), string(got.Data))
}

func TestSendHandlerErrorBecomesFailedAck(t *testing.T) {
	path := socketPath(t)

	server, err := Listen(path, func(msg Message) error {
		return assert.AnError
	}, nil)
	require.NoError(t, err)
	defer server.Close()

	resp, err := Send(path, Message{Type: "bogus"})
	require.NoError(t, err, "a rejected message is still a delivered message")
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Error)
}

func TestServerRejectsMalformedJSON(t *testing.T) {
	path := socketPath(t)

	server, err := Listen(path, func(Message) error { return nil }, nil)
	require.NoError(t, err)
	defer server.Close()

	conn, err := net.Dial("unix", path)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("this is not json\n"))
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.NewDecoder(conn).Decode(&resp))
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Error)
}

func TestSendNoListener(t *testing.T) {
	_, err := Send(socketPath(t), Message{Type: TypeTodos})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTimeout, "a missing sidebar should fail fast, not time out")
	assert.Contains(t, err.Error(), "not listening")
}

func TestSendTimesOutOnSilentServer(t *testing.T) {
	if testing.Short() {
		t.Skip("waits out the full client timeout")
	}

	path := socketPath(t)
	listener, err := net.Listen("unix", path)
	require.NoError(t, err)
	defer listener.Close()

	// Accept connections but never answer them.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		<-time.After(ClientTimeout + time.Second)
	}()

	_, err = Send(path, Message{Type: TypeTodos})
	assert.ErrorIs(t, err, ErrTimeout)
	listener.Close()
	<-done
}

func TestListenReplacesStaleSocket(t *testing.T) {
	path := socketPath(t)

	// Leave a dead endpoint behind, as a crashed sidebar would.
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	server, err := Listen(path, func(Message) error { return nil }, nil)
	require.NoError(t, err)
	defer server.Close()

	resp, err := Send(path, Message{Type: TypeFocus, Data: json.RawMessage(`"tasks"`)})
	require.NoError(t, err)
	assert.True(t, resp.OK)
}

func TestCloseRemovesSocket(t *testing.T) {
	path := socketPath(t)

	server, err := Listen(path, func(Message) error { return nil }, nil)
	require.NoError(t, err)
	require.NoError(t, server.Close())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
