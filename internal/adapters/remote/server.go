package remote

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/bnema/monster-deck/internal/application"
	"github.com/bnema/monster-deck/internal/domain"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

//go:embed static
var staticFS embed.FS

// Server exposes a controller over HTTP and pushes every state change to
// websocket clients, so a phone or a second screen can drive the deck.
type Server struct {
	controller *application.Controller
	deck       Deck
	logger     *zap.Logger
	hub        *hub
	upgrader   websocket.Upgrader
	router     *mux.Router
}

func NewServer(controller *application.Controller, deckTitle string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		controller: controller,
		deck: Deck{
			Title:   deckTitle,
			Modules: application.BuildMenu(controller.Registry()),
		},
		logger: logger,
		hub:    newHub(logger),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.router = s.routes()

	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/deck", s.getDeck).Methods(http.MethodGet)
	api.HandleFunc("/state", s.getState).Methods(http.MethodGet)
	api.HandleFunc("/jump/{index:-?[0-9]+}", s.postJump).Methods(http.MethodPost)
	api.HandleFunc("/menu/{op:open|close|toggle}", s.postMenu).Methods(http.MethodPost)
	api.HandleFunc("/{action:next|previous|first|last}", s.postNavigate).Methods(http.MethodPost)

	r.HandleFunc("/ws", s.serveWS)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.PathPrefix("/").Handler(http.FileServer(http.FS(static))).Methods(http.MethodGet)

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the websocket hub and mirrors controller changes to clients
// until ctx is done.
func (s *Server) Start(ctx context.Context) {
	unwatch := s.controller.Watch(func(snap application.Snapshot) {
		if msg := s.encode(stateEvent(snap)); msg != nil {
			s.hub.publish(snap.Seq, msg)
		}
	})

	go func() {
		defer unwatch()
		s.hub.run(ctx)
	}()
}

// Done is closed once the hub has stopped.
func (s *Server) Done() <-chan struct{} {
	return s.hub.done
}

// Serve starts the hub and serves on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.Start(ctx)

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.logger.Info("remote listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve remote: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown remote: %w", err)
		}
		<-errCh
		<-s.hub.done

		s.logger.Info("remote stopped")
		return nil
	}
}

func (s *Server) getDeck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.deck)
}

func (s *Server) getState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, stateFromSnapshot(s.controller.Snapshot()))
}

func (s *Server) postNavigate(w http.ResponseWriter, r *http.Request) {
	s.applyAndRespond(w, Command{Action: mux.Vars(r)["action"]})
}

func (s *Server) postMenu(w http.ResponseWriter, r *http.Request) {
	s.applyAndRespond(w, Command{Action: "menu_" + mux.Vars(r)["op"]})
}

func (s *Server) postJump(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Event{Type: "error", Error: "index must be an integer"})
		return
	}

	s.applyAndRespond(w, Command{Action: actionJump, Index: index})
}

func (s *Server) applyAndRespond(w http.ResponseWriter, cmd Command) {
	if err := apply(s.controller, cmd); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrOutOfRange) {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, Event{Type: "error", Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, stateFromSnapshot(s.controller.Snapshot()))
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{hub: s.hub, conn: conn, send: make(chan []byte, sendBuffer)}
	if !s.hub.join(c) {
		_ = conn.Close()
		return
	}

	go c.writePump()
	snap := s.controller.Snapshot()
	if msg := s.encode(stateEvent(snap)); msg != nil {
		s.hub.sendState(c, snap.Seq, msg)
	}
	go c.readPump(s.handleMessage)
}

// handleMessage applies one websocket command. State changes reach every
// client through the controller watch, so only failures get a direct reply.
func (s *Server) handleMessage(data []byte) []byte {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return s.encode(Event{Type: "error", Error: "invalid command: " + err.Error()})
	}

	if err := apply(s.controller, cmd); err != nil {
		s.logger.Warn("remote command rejected", zap.String("action", cmd.Action), zap.Error(err))
		return s.encode(Event{Type: "error", Error: err.Error()})
	}

	return nil
}

func (s *Server) encode(ev Event) []byte {
	data, err := json.Marshal(ev)
	if err != nil {
		s.logger.Error("encode remote event", zap.Error(err))
		return nil
	}

	return data
}

func stateEvent(snap application.Snapshot) Event {
	state := stateFromSnapshot(snap)
	return Event{Type: "state", State: &state}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
