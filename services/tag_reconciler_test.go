package services

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileTags(t *testing.T) {
	tests := []struct {
		name       string
		current    []uint
		requested  []uint
		wantAdd    []uint
		wantRemove []uint
	}{
		{
			name:       "overlapping sets",
			current:    []uint{1, 2, 3},
			requested:  []uint{2, 3, 4},
			wantAdd:    []uint{4},
			wantRemove: []uint{1},
		},
		{
			name:       "duplicates in request collapse",
			current:    nil,
			requested:  []uint{5, 5, 6},
			wantAdd:    []uint{5, 6},
			wantRemove: []uint{},
		},
		{
			name:       "empty request removes everything",
			current:    []uint{3, 1, 2},
			requested:  []uint{},
			wantAdd:    []uint{},
			wantRemove: []uint{1, 2, 3},
		},
		{
			name:       "same set is a no-op",
			current:    []uint{7, 8},
			requested:  []uint{8, 7},
			wantAdd:    []uint{},
			wantRemove: []uint{},
		},
		{
			name:       "disjoint sets",
			current:    []uint{1},
			requested:  []uint{9, 2},
			wantAdd:    []uint{2, 9},
			wantRemove: []uint{1},
		},
		{
			name:       "both empty",
			current:    nil,
			requested:  nil,
			wantAdd:    []uint{},
			wantRemove: []uint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := ReconcileTags(tt.current, tt.requested)
			assert.Equal(t, tt.wantAdd, diff.ToAdd)
			assert.Equal(t, tt.wantRemove, diff.ToRemove)
		})
	}
}

func TestReconcileTags_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	randomIDs := func() []uint {
		n := rng.Intn(8)
		ids := make([]uint, 0, n)
		for i := 0; i < n; i++ {
			ids = append(ids, uint(rng.Intn(10)+1))
		}
		return ids
	}

	for i := 0; i < 200; i++ {
		current := uniqueTagIDs(randomIDs())
		requested := randomIDs()

		diff := ReconcileTags(current, requested)

		// (C - toRemove) ∪ toAdd == R
		after := applyDiff(current, diff)
		want := uniqueTagIDs(requested)
		slices.Sort(want)
		require.Equal(t, want, after, "current=%v requested=%v", current, requested)

		// reconciling the result against itself is a no-op
		assert.True(t, ReconcileTags(after, requested).Empty())

		// duplicates and order in the request do not matter
		shuffled := append(slices.Clone(requested), requested...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, diff, ReconcileTags(current, shuffled))
	}
}

func TestTagDiff_Empty(t *testing.T) {
	assert.True(t, TagDiff{}.Empty())
	assert.False(t, TagDiff{ToAdd: []uint{1}}.Empty())
	assert.False(t, TagDiff{ToRemove: []uint{1}}.Empty())
}

func TestUniqueTagIDs(t *testing.T) {
	assert.Equal(t, []uint{3, 1, 2}, uniqueTagIDs([]uint{3, 1, 3, 2, 1}))
	assert.Empty(t, uniqueTagIDs(nil))
}

func applyDiff(current []uint, diff TagDiff) []uint {
	set := toSet(current)
	for _, id := range diff.ToRemove {
		delete(set, id)
	}
	for _, id := range diff.ToAdd {
		set[id] = struct{}{}
	}
	out := make([]uint, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
