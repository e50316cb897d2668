package remote

import (
	"context"

	"go.uber.org/zap"
)

const broadcastBuffer = 16

// envelope carries a message for one client, or for all when to is nil. seq
// is the controller Seq of a state message and 0 for anything else.
type envelope struct {
	to  *client
	seq uint64
	msg []byte
}

// hub fans state messages out to connected websocket clients. Only the run
// goroutine touches the client set or writes to a client's send channel.
type hub struct {
	logger     *zap.Logger
	register   chan *client
	unregister chan *client
	direct     chan envelope
	broadcast  chan envelope
	done       chan struct{}
	clients    map[*client]struct{}
}

func newHub(logger *zap.Logger) *hub {
	return &hub{
		logger:     logger,
		register:   make(chan *client),
		unregister: make(chan *client),
		direct:     make(chan envelope),
		broadcast:  make(chan envelope, broadcastBuffer),
		done:       make(chan struct{}),
		clients:    make(map[*client]struct{}),
	}
}

func (h *hub) run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.logger.Debug("remote client connected", zap.Int("clients", len(h.clients)))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				h.logger.Debug("remote client disconnected", zap.Int("clients", len(h.clients)))
			}
		case env := <-h.direct:
			if _, ok := h.clients[env.to]; ok {
				h.deliver(env.to, env.seq, env.msg)
			}
		case env := <-h.broadcast:
			for c := range h.clients {
				h.deliver(c, env.seq, env.msg)
			}
		}
	}
}

// join registers c. It reports false once the hub has stopped.
func (h *hub) join(c *client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *hub) leave(c *client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *hub) sendTo(c *client, msg []byte) {
	h.sendState(c, 0, msg)
}

func (h *hub) sendState(c *client, seq uint64, msg []byte) {
	select {
	case h.direct <- envelope{to: c, seq: seq, msg: msg}:
	case <-h.done:
	}
}

// publish never blocks; the controller calls it while handling a key press.
func (h *hub) publish(seq uint64, msg []byte) {
	select {
	case h.broadcast <- envelope{seq: seq, msg: msg}:
	default:
		h.logger.Warn("remote broadcast queue full, state update dropped")
	}
}

// deliver skips a state older than the last one c received, so a watcher
// callback that lost a race cannot leave c on a stale slide.
func (h *hub) deliver(c *client, seq uint64, msg []byte) {
	if seq != 0 {
		if seq <= c.seq {
			h.logger.Debug("skipping stale remote state", zap.Uint64("seq", seq), zap.Uint64("last", c.seq))
			return
		}
		c.seq = seq
	}

	select {
	case c.send <- msg:
	default:
		h.logger.Warn("dropping slow remote client")
		h.drop(c)
	}
}

func (h *hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
}
