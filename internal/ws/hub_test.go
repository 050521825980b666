package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// subscribe dials a websocket client against an in-process server that
// registers the server side of the connection with the hub, and returns both
// ends. It only returns once the hub is tracking the connection.
func subscribe(t *testing.T, hub *Hub, electionID uint) (client, server *websocket.Conn) {
	t.Helper()

	registered := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.AddConnection(electionID, conn)
		registered <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	select {
	case server = <-registered:
	case <-time.After(5 * time.Second):
		t.Fatal("connection never registered with hub")
	}
	return client, server
}

func TestConcurrentBroadcasts(t *testing.T) {
	hub := NewHub()
	client, _ := subscribe(t, hub, 7)

	const broadcasts = 20
	var wg sync.WaitGroup
	for i := 0; i < broadcasts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Broadcast(7, WSMessage{Type: "tally_updated", Data: map[string]int64{"count": 1}})
		}()
	}
	wg.Wait()

	require.NoError(t, client.SetReadDeadline(time.Now().Add(5*time.Second)))
	for i := 0; i < broadcasts; i++ {
		var msg WSMessage
		require.NoError(t, client.ReadJSON(&msg))
		assert.Equal(t, "tally_updated", msg.Type)
	}
}

func TestBroadcastPrunesDeadConnections(t *testing.T) {
	hub := NewHub()
	liveClient, _ := subscribe(t, hub, 3)
	_, deadServer := subscribe(t, hub, 3)

	// Closing the server side makes the next write to it fail.
	require.NoError(t, deadServer.Close())
	hub.Broadcast(3, WSMessage{Type: "winner_declared"})

	require.NoError(t, liveClient.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg WSMessage
	require.NoError(t, liveClient.ReadJSON(&msg))
	assert.Equal(t, "winner_declared", msg.Type)

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	assert.Len(t, hub.elections[3], 1)
}

func TestBroadcastIgnoresUnknownElection(t *testing.T) {
	hub := NewHub()
	hub.Broadcast(99, WSMessage{Type: "tally_updated"})
}
