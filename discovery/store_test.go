package discovery

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkDiscoveredIdempotent(t *testing.T) {
	s := NewStore()

	require.True(t, s.MarkDiscovered(3))
	before := s.Snapshot()

	assert.False(t, s.MarkDiscovered(3))
	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, 1, s.Len())
}

func TestDiscoveryIsMonotonic(t *testing.T) {
	s := NewStore()
	rng := rand.New(rand.NewSource(7))
	scope := []ID{1, 2, 3, 4, 5, 6, 7, 8}

	seen := map[ID]bool{}
	last := 0
	for i := 0; i < 200; i++ {
		id := ID(rng.Intn(10))
		s.MarkDiscovered(id)
		seen[id] = true

		count := s.DiscoveredCount(scope)
		require.GreaterOrEqual(t, count, last)
		last = count

		for prev := range seen {
			require.True(t, s.IsDiscovered(prev), "id %d lost", prev)
		}
	}
}

func TestDiscoveredCountAndAll(t *testing.T) {
	s := NewStore()
	scope := []ID{1, 2, 3}

	assert.Equal(t, 0, s.DiscoveredCount(scope))
	assert.False(t, s.AllDiscovered(scope))
	assert.True(t, s.AllDiscovered(nil))

	s.MarkDiscovered(1)
	s.MarkDiscovered(9)
	assert.Equal(t, 1, s.DiscoveredCount(scope))
	assert.Equal(t, 1, s.DiscoveredCount([]ID{1, 1, 1}))

	s.MarkDiscovered(2)
	s.MarkDiscovered(3)
	assert.True(t, s.AllDiscovered(scope))
	assert.Equal(t, []ID{1, 2, 3, 9}, s.Snapshot())
}

func TestSubscribeFiresOncePerID(t *testing.T) {
	s := NewStore()
	var got []ID
	s.Subscribe(func(id ID) { got = append(got, id) })

	s.MarkDiscovered(4)
	s.MarkDiscovered(4)
	s.MarkDiscovered(5)

	assert.Equal(t, []ID{4, 5}, got)
}

func TestSubDiscovery(t *testing.T) {
	s := NewStore()

	n, added := s.MarkSubDiscovered(10, 1)
	assert.True(t, added)
	assert.Equal(t, 1, n)

	n, added = s.MarkSubDiscovered(10, 1)
	assert.False(t, added)
	assert.Equal(t, 1, n)

	n, _ = s.MarkSubDiscovered(10, 2)
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, s.SubDiscoveredCount(11))
	assert.True(t, s.IsSubDiscovered(10, 2))
	assert.False(t, s.IsSubDiscovered(11, 2))
	assert.False(t, s.IsDiscovered(10))
}

func TestSessionID(t *testing.T) {
	a := NewStore()
	b := NewStore()
	assert.NotEmpty(t, a.Session())
	assert.NotEqual(t, a.Session(), b.Session())
}
