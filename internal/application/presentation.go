package application

import (
	"sync"

	"github.com/bnema/monster-deck/internal/domain"
	"go.uber.org/zap"
)

// Controller owns the presentation state and is the only thing allowed to
// change it. The current index always lies in [0, registry.Size()).
type Controller struct {
	registry *domain.Registry
	logger   *zap.Logger

	mu    sync.RWMutex
	state domain.PresentationState
	seq   uint64

	watchMu   sync.Mutex
	watchers  map[int]func(Snapshot)
	nextWatch int
}

func NewController(registry *domain.Registry, state domain.PresentationState, logger *zap.Logger) (*Controller, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if state.CurrentIndex < 0 || state.CurrentIndex >= registry.Size() {
		return nil, &domain.OutOfRangeError{Op: "seed", Index: state.CurrentIndex, Size: registry.Size()}
	}

	return &Controller{
		registry: registry,
		logger:   logger,
		state:    state,
		watchers: make(map[int]func(Snapshot)),
	}, nil
}

func (c *Controller) Registry() *domain.Registry {
	return c.registry
}

func (c *Controller) Size() int {
	return c.registry.Size()
}

func (c *Controller) Index() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state.CurrentIndex
}

func (c *Controller) State() domain.PresentationState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state
}

func (c *Controller) Current() domain.Slide {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.currentLocked()
}

func (c *Controller) Next() bool {
	var index int
	moved := c.update(func(state *domain.PresentationState) bool {
		if state.CurrentIndex >= c.registry.Size()-1 {
			return false
		}
		state.CurrentIndex++
		index = state.CurrentIndex
		return true
	})
	if !moved {
		c.logger.Debug("next at last slide")
		return false
	}

	c.logger.Debug("navigated", zap.String("op", "next"), zap.Int("index", index))
	return true
}

func (c *Controller) Previous() bool {
	var index int
	moved := c.update(func(state *domain.PresentationState) bool {
		if state.CurrentIndex <= 0 {
			return false
		}
		state.CurrentIndex--
		index = state.CurrentIndex
		return true
	})
	if !moved {
		c.logger.Debug("previous at first slide")
		return false
	}

	c.logger.Debug("navigated", zap.String("op", "previous"), zap.Int("index", index))
	return true
}

// JumpTo sets the current index. It does not touch the menu; closing it after
// a jump is up to the caller.
func (c *Controller) JumpTo(index int) error {
	if index < 0 || index >= c.registry.Size() {
		err := &domain.OutOfRangeError{Op: "jump", Index: index, Size: c.registry.Size()}
		c.logger.Warn("rejected jump", zap.Error(err))
		return err
	}

	c.update(func(state *domain.PresentationState) bool {
		if state.CurrentIndex == index {
			return false
		}
		state.CurrentIndex = index
		return true
	})
	c.logger.Debug("navigated", zap.String("op", "jump"), zap.Int("index", index))
	return nil
}

func (c *Controller) First() {
	_ = c.JumpTo(0)
}

func (c *Controller) Last() {
	_ = c.JumpTo(c.registry.Size() - 1)
}

func (c *Controller) IsFirst() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state.CurrentIndex == 0
}

func (c *Controller) IsLast() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state.CurrentIndex == c.registry.Size()-1
}

func (c *Controller) Progress() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.progressLocked()
}

func (c *Controller) OpenMenu() {
	c.setMenu(true)
}

func (c *Controller) CloseMenu() {
	c.setMenu(false)
}

func (c *Controller) ToggleMenu() {
	c.update(func(state *domain.PresentationState) bool {
		state.MenuOpen = !state.MenuOpen
		return true
	})
}

func (c *Controller) IsMenuOpen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state.MenuOpen
}

// Snapshot reads everything a renderer needs under a single lock.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	index := c.state.CurrentIndex
	size := c.registry.Size()

	return Snapshot{
		Slide:         c.currentLocked(),
		Index:         index,
		Total:         size,
		Progress:      c.progressLocked(),
		IsFirst:       index == 0,
		IsLast:        index == size-1,
		MenuOpen:      c.state.MenuOpen,
		ModuleOrdinal: c.registry.ModuleOrdinal(index),
		Seq:           c.seq,
	}
}

// Watch registers fn to receive a snapshot after every state change. fn runs
// on the goroutine that made the change and must not block. Concurrent changes
// may reach fn out of order; a snapshot with a lower Seq than one already seen
// is stale.
func (c *Controller) Watch(fn func(Snapshot)) (cancel func()) {
	c.watchMu.Lock()
	defer c.watchMu.Unlock()

	id := c.nextWatch
	c.nextWatch++
	c.watchers[id] = fn

	return func() {
		c.watchMu.Lock()
		defer c.watchMu.Unlock()

		delete(c.watchers, id)
	}
}

func (c *Controller) setMenu(open bool) {
	c.update(func(state *domain.PresentationState) bool {
		if state.MenuOpen == open {
			return false
		}
		state.MenuOpen = open
		return true
	})
}

// update applies mutate under the write lock and, if it reports a change,
// notifies watchers with the snapshot taken under that same lock.
func (c *Controller) update(mutate func(state *domain.PresentationState) bool) bool {
	c.mu.Lock()
	changed := mutate(&c.state)
	var snap Snapshot
	if changed {
		c.seq++
		snap = c.snapshotLocked()
	}
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}

	return changed
}

func (c *Controller) notify(snap Snapshot) {
	c.watchMu.Lock()
	watchers := make([]func(Snapshot), 0, len(c.watchers))
	for _, fn := range c.watchers {
		watchers = append(watchers, fn)
	}
	c.watchMu.Unlock()

	for _, fn := range watchers {
		fn(snap)
	}
}

func (c *Controller) currentLocked() domain.Slide {
	slide, err := c.registry.Get(c.state.CurrentIndex)
	if err != nil {
		panic(err)
	}

	return slide
}

func (c *Controller) progressLocked() float64 {
	return float64(c.state.CurrentIndex+1) / float64(c.registry.Size())
}
