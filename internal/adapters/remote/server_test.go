package remote

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bnema/monster-deck/internal/application"
	"github.com/bnema/monster-deck/internal/domain"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) *application.Controller {
	t.Helper()

	registry, err := domain.NewRegistry([]domain.Slide{
		{ID: "blueprint", Module: "Genesis", Kind: domain.KindVisual, Title: "Blueprint vs. Life", View: "a"},
		{ID: "memory", Module: "Genesis", Kind: domain.KindTheory, Title: "Memory Allocation", View: "b"},
		{ID: "constructor", Module: "Birth", Kind: domain.KindVisual, Title: "Frankenstein's Lab", View: "c"},
		{ID: "this", Module: "Birth", Kind: domain.KindTheory, Title: "Self Awareness", View: "d"},
		{ID: "done", Module: "Finale", Kind: domain.KindEnd, Title: "Level Complete!", View: "e"},
	})
	require.NoError(t, err)

	controller, err := application.NewController(registry, domain.NewPresentationState(), nil)
	require.NoError(t, err)
	return controller
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func decodeState(t *testing.T, body []byte) State {
	t.Helper()

	var state State
	require.NoError(t, json.Unmarshal(body, &state))
	return state
}

func TestServerGetState(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(NewServer(newTestController(t), "Test Deck", nil).Handler())
	t.Cleanup(ts.Close)

	status, body := doRequest(t, ts, http.MethodGet, "/api/state")
	require.Equal(t, http.StatusOK, status)

	state := decodeState(t, body)
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, 5, state.Total)
	assert.Equal(t, "blueprint", state.ID)
	assert.Equal(t, 1, state.ModuleOrdinal)
	assert.True(t, state.IsFirst)
	assert.InDelta(t, 0.2, state.Progress, 1e-9)
}

func TestServerNavigation(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(NewServer(newTestController(t), "Test Deck", nil).Handler())
	t.Cleanup(ts.Close)

	steps := []struct {
		path  string
		index int
	}{
		{path: "/api/previous", index: 0},
		{path: "/api/next", index: 1},
		{path: "/api/next", index: 2},
		{path: "/api/last", index: 4},
		{path: "/api/next", index: 4},
		{path: "/api/jump/1", index: 1},
		{path: "/api/first", index: 0},
	}

	for _, step := range steps {
		status, body := doRequest(t, ts, http.MethodPost, step.path)
		require.Equal(t, http.StatusOK, status, step.path)
		assert.Equal(t, step.index, decodeState(t, body).Index, step.path)
	}
}

func TestServerJumpOutOfRange(t *testing.T) {
	t.Parallel()

	controller := newTestController(t)
	ts := httptest.NewServer(NewServer(controller, "Test Deck", nil).Handler())
	t.Cleanup(ts.Close)

	for _, path := range []string{"/api/jump/5", "/api/jump/-1"} {
		status, body := doRequest(t, ts, http.MethodPost, path)
		assert.Equal(t, http.StatusUnprocessableEntity, status, path)

		var ev Event
		require.NoError(t, json.Unmarshal(body, &ev))
		assert.Equal(t, "error", ev.Type)
		assert.Contains(t, ev.Error, "not in [0, 5)")
	}

	assert.Equal(t, 0, controller.Index())
}

func TestServerMenu(t *testing.T) {
	t.Parallel()

	controller := newTestController(t)
	ts := httptest.NewServer(NewServer(controller, "Test Deck", nil).Handler())
	t.Cleanup(ts.Close)

	status, body := doRequest(t, ts, http.MethodPost, "/api/menu/open")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, decodeState(t, body).MenuOpen)

	_, body = doRequest(t, ts, http.MethodPost, "/api/menu/toggle")
	assert.False(t, decodeState(t, body).MenuOpen)

	_, _ = doRequest(t, ts, http.MethodPost, "/api/menu/toggle")
	_, body = doRequest(t, ts, http.MethodPost, "/api/menu/close")
	assert.False(t, decodeState(t, body).MenuOpen)
	assert.Equal(t, 0, controller.Index())
}

func TestServerGetDeck(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(NewServer(newTestController(t), "Test Deck", nil).Handler())
	t.Cleanup(ts.Close)

	status, body := doRequest(t, ts, http.MethodGet, "/api/deck")
	require.Equal(t, http.StatusOK, status)

	var deck Deck
	require.NoError(t, json.Unmarshal(body, &deck))
	assert.Equal(t, "Test Deck", deck.Title)
	require.Len(t, deck.Modules, 3)
	assert.Equal(t, "Birth", deck.Modules[1].Module)
	assert.Equal(t, []int{2, 3}, []int{deck.Modules[1].Entries[0].Index, deck.Modules[1].Entries[1].Index})
}

func TestServerServesRemotePage(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(NewServer(newTestController(t), "Test Deck", nil).Handler())
	t.Cleanup(ts.Close)

	status, body := doRequest(t, ts, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "<title>deck remote</title>")
}

func TestServerWebsocketMirrorsController(t *testing.T) {
	t.Parallel()

	controller := newTestController(t)
	srv := NewServer(controller, "Test Deck", nil)

	ctx, cancel := context.WithCancel(context.Background())
	srv.Start(ctx)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		cancel()
		<-srv.Done()
		ts.Close()
	})

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ev := readEvent(t, conn)
	require.Equal(t, "state", ev.Type)
	assert.Equal(t, 0, ev.State.Index)

	require.NoError(t, conn.WriteJSON(Command{Action: "next"}))
	ev = readEvent(t, conn)
	require.Equal(t, "state", ev.Type)
	assert.Equal(t, 1, ev.State.Index)

	controller.Last()
	ev = readEvent(t, conn)
	require.Equal(t, "state", ev.Type)
	assert.Equal(t, 4, ev.State.Index)
	assert.True(t, ev.State.IsLast)

	require.NoError(t, conn.WriteJSON(Command{Action: "jump", Index: 99}))
	ev = readEvent(t, conn)
	assert.Equal(t, "error", ev.Type)
	assert.Contains(t, ev.Error, "index 99 not in [0, 5)")

	require.NoError(t, conn.WriteJSON(Command{Action: "teleport"}))
	ev = readEvent(t, conn)
	assert.Equal(t, "error", ev.Type)
	assert.Contains(t, ev.Error, "unknown remote action")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	ev = readEvent(t, conn)
	assert.Equal(t, "error", ev.Type)
	assert.Contains(t, ev.Error, "invalid command")

	assert.Equal(t, 4, controller.Index())
}

func TestServerServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewServer(newTestController(t), "Test Deck", nil)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ctx, ln)
	}()

	client := &http.Client{Timeout: 5 * time.Second}
	require.Eventually(t, func() bool {
		resp, err := client.Get("http://" + ln.Addr().String() + "/api/state")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)
	client.CloseIdleConnections()

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}
