package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slidesForModules(modules ...string) []Slide {
	slides := make([]Slide, 0, len(modules))
	for i, module := range modules {
		slides = append(slides, Slide{
			ID:     SlideID(string(rune('a' + i))),
			Module: module,
			Kind:   KindTheory,
			Title:  "Slide " + string(rune('A'+i)),
			View:   ViewRef("view-" + string(rune('a'+i))),
		})
	}
	return slides
}

func TestNewRegistryValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		slides  []Slide
		wantErr error
	}{
		{
			name:   "valid",
			slides: slidesForModules("A", "B"),
		},
		{
			name:    "empty",
			slides:  nil,
			wantErr: ErrEmptyDeck,
		},
		{
			name: "duplicate id",
			slides: []Slide{
				{ID: "x", Kind: KindVisual},
				{ID: "x", Kind: KindTheory},
			},
			wantErr: ErrDuplicateSlideID,
		},
		{
			name:    "missing id",
			slides:  []Slide{{ID: "  ", Kind: KindVisual}},
			wantErr: ErrMissingSlideID,
		},
		{
			name:    "unknown kind",
			slides:  []Slide{{ID: "x", Kind: "mixed"}},
			wantErr: ErrUnknownKind,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			registry, err := NewRegistry(tc.slides)
			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, len(tc.slides), registry.Size())
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, registry)
		})
	}
}

func TestRegistryGetOutOfRange(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(slidesForModules("A", "A", "B"))
	require.NoError(t, err)

	for _, index := range []int{-1, registry.Size(), registry.Size() + 10} {
		_, err := registry.Get(index)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutOfRange)

		var rangeErr *OutOfRangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, index, rangeErr.Index)
		assert.Equal(t, 3, rangeErr.Size)
		assert.Equal(t, "get", rangeErr.Op)
	}

	got, err := registry.Get(2)
	require.NoError(t, err)
	assert.Equal(t, SlideID("c"), got.ID)
}

func TestRegistryGroupsPreserveFirstSeenOrder(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(slidesForModules("A", "A", "B", "B", "B"))
	require.NoError(t, err)

	assert.Equal(t, []Group{
		{Module: "A", Indices: []int{0, 1}},
		{Module: "B", Indices: []int{2, 3, 4}},
	}, registry.Groups())
}

func TestRegistryGroupsPartitionAllIndices(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(slidesForModules("Intro", "Core", "Intro", "Outro", "Core", "Core"))
	require.NoError(t, err)

	groups := registry.Groups()
	modules := make([]string, 0, len(groups))
	seen := make(map[int]int)
	for _, group := range groups {
		modules = append(modules, group.Module)
		prev := -1
		for _, index := range group.Indices {
			assert.Greater(t, index, prev, "indices inside a module keep registry order")
			prev = index
			seen[index]++
		}
	}

	assert.Equal(t, []string{"Intro", "Core", "Outro"}, modules)
	require.Len(t, seen, registry.Size())
	for index := 0; index < registry.Size(); index++ {
		assert.Equal(t, 1, seen[index], "index %d", index)
	}
}

func TestRegistryGroupsReturnsCopy(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(slidesForModules("A", "A"))
	require.NoError(t, err)

	groups := registry.Groups()
	groups[0].Indices[0] = 99
	groups[0].Module = "mutated"

	assert.Equal(t, []Group{{Module: "A", Indices: []int{0, 1}}}, registry.Groups())
}

func TestRegistryDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	slides := slidesForModules("A", "B")
	registry, err := NewRegistry(slides)
	require.NoError(t, err)

	slides[0].Title = "changed"

	got, err := registry.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Slide A", got.Title)
}

func TestRegistryModuleOrdinal(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(slidesForModules("A", "A", "B", "C", "B"))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1, 2, 3, 2}, []int{
		registry.ModuleOrdinal(0),
		registry.ModuleOrdinal(1),
		registry.ModuleOrdinal(2),
		registry.ModuleOrdinal(3),
		registry.ModuleOrdinal(4),
	})
	assert.Zero(t, registry.ModuleOrdinal(-1))
	assert.Zero(t, registry.ModuleOrdinal(5))
}

func TestRegistryIndexOf(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry(slidesForModules("A", "B", "C"))
	require.NoError(t, err)

	index, ok := registry.IndexOf("c")
	assert.True(t, ok)
	assert.Equal(t, 2, index)

	_, ok = registry.IndexOf("zzz")
	assert.False(t, ok)
}

func TestKindValid(t *testing.T) {
	t.Parallel()

	assert.True(t, KindVisual.Valid())
	assert.True(t, KindTheory.Valid())
	assert.True(t, KindEnd.Valid())
	assert.False(t, Kind("").Valid())
	assert.False(t, Kind("quiz").Valid())
}
