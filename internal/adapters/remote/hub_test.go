package remote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestHubBroadcastsAndClosesClientsOnStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := newHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	go h.run(ctx)

	a := &client{hub: h, send: make(chan []byte, 1)}
	b := &client{hub: h, send: make(chan []byte, 1)}
	assert.True(t, h.join(a))
	assert.True(t, h.join(b))

	h.publish(1, []byte("state"))
	assert.Equal(t, []byte("state"), <-a.send)
	assert.Equal(t, []byte("state"), <-b.send)

	h.sendTo(a, []byte("only a"))
	assert.Equal(t, []byte("only a"), <-a.send)

	h.leave(b)
	_, open := <-b.send
	assert.False(t, open)

	cancel()
	<-h.done

	_, open = <-a.send
	assert.False(t, open)
	assert.False(t, h.join(&client{hub: h, send: make(chan []byte, 1)}))
}

func TestHubDropsSlowClient(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := newHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	go h.run(ctx)

	slow := &client{hub: h, send: make(chan []byte, 1)}
	slow.send <- []byte("unread")
	healthy := &client{hub: h, send: make(chan []byte, 1)}
	assert.True(t, h.join(slow))
	assert.True(t, h.join(healthy))

	h.publish(1, []byte("one"))
	assert.Equal(t, []byte("one"), <-healthy.send)
	h.publish(2, []byte("two"))
	assert.Equal(t, []byte("two"), <-healthy.send)

	assert.Equal(t, []byte("unread"), <-slow.send)
	_, open := <-slow.send
	assert.False(t, open)

	cancel()
	<-h.done
}

func TestHubSkipsStaleStates(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := newHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	go h.run(ctx)

	c := &client{hub: h, send: make(chan []byte, 4)}
	assert.True(t, h.join(c))

	h.sendState(c, 2, []byte("joined at 2"))
	assert.Equal(t, []byte("joined at 2"), <-c.send)

	h.publish(3, []byte("slide 3"))
	h.publish(1, []byte("slide 1"))
	h.publish(3, []byte("slide 3 again"))
	h.publish(4, []byte("slide 4"))

	assert.Equal(t, []byte("slide 3"), <-c.send)
	assert.Equal(t, []byte("slide 4"), <-c.send)
	assert.Empty(t, c.send)

	h.sendTo(c, []byte("error"))
	assert.Equal(t, []byte("error"), <-c.send)

	cancel()
	<-h.done
	_, open := <-c.send
	assert.False(t, open)
}
