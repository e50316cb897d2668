package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/monster-deck/internal/domain"
	"github.com/bnema/monster-deck/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProgressServiceResumeBySlideID(t *testing.T) {
	t.Parallel()

	registry := newTestRegistry(t, "A", "A", "B")
	store := mocks.NewMockProgressStore(t)
	store.EXPECT().Load(mock.Anything, "builtin").Return(domain.Progress{
		Deck:    "builtin",
		SlideID: "c",
		Index:   7,
	}, nil).Once()

	svc := NewProgressService(store, mocks.NewMockClock(t), nil)
	index, ok, err := svc.Resume(context.Background(), "builtin", registry)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, index)
}

func TestProgressServiceResumeWithoutUsableRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		progress domain.Progress
		err      error
	}{
		{name: "nothing saved", err: domain.ErrNoProgress},
		{name: "slide removed from deck", progress: domain.Progress{Deck: "builtin", SlideID: "gone", Index: 1}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewMockProgressStore(t)
			store.EXPECT().Load(mock.Anything, "builtin").Return(tc.progress, tc.err).Once()

			svc := NewProgressService(store, mocks.NewMockClock(t), nil)
			index, ok, err := svc.Resume(context.Background(), "builtin", newTestRegistry(t, "A", "B"))
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Zero(t, index)
		})
	}
}

func TestProgressServiceResumeWrapsStoreErrors(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("database is locked")
	store := mocks.NewMockProgressStore(t)
	store.EXPECT().Load(mock.Anything, "builtin").Return(domain.Progress{}, storeErr).Once()

	svc := NewProgressService(store, mocks.NewMockClock(t), nil)
	_, _, err := svc.Resume(context.Background(), "builtin", newTestRegistry(t, "A"))
	assert.ErrorIs(t, err, storeErr)
	assert.ErrorContains(t, err, "load progress")
}

func TestProgressServiceRecord(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.FixedZone("EET", 2*60*60))
	controller := newTestController(t, "A", "B", "B")
	require.NoError(t, controller.JumpTo(1))

	store := mocks.NewMockProgressStore(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(now).Once()
	store.EXPECT().Save(mock.Anything, domain.Progress{
		Deck:      "/decks/oop.toml",
		SlideID:   "b",
		Index:     1,
		UpdatedAt: now.UTC(),
	}).Return(nil).Once()

	svc := NewProgressService(store, clock, nil)
	require.NoError(t, svc.Record(context.Background(), "/decks/oop.toml", controller.Snapshot()))
}

func TestProgressServiceRecordWrapsStoreErrors(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockProgressStore(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Unix(0, 0)).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	svc := NewProgressService(store, clock, nil)
	err := svc.Record(context.Background(), "builtin", newTestController(t, "A").Snapshot())
	assert.ErrorContains(t, err, "save progress: disk full")
}
