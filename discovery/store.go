// Package discovery tracks which scene elements and mini-game sub-elements a
// player has revealed during one session. Entries are only ever added.
package discovery

import (
	"sort"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

// ID identifies an element. IDs are unique across every scene.
type ID int

// SubKey identifies a sub-element inside a composite element.
type SubKey struct {
	Parent ID
	Sub    int
}

// Store is the session-scoped discovery state.
type Store struct {
	session string

	found    mapset.Set[ID]
	subFound mapset.Set[SubKey]
	subCount map[ID]int

	listeners []func(ID)
}

func NewStore() *Store {
	return &Store{
		session:  uuid.NewString(),
		found:    mapset.New[ID](),
		subFound: mapset.New[SubKey](),
		subCount: make(map[ID]int),
	}
}

// Session returns the id of the session this store belongs to.
func (s *Store) Session() string {
	if s == nil {
		return ""
	}
	return s.session
}

// Subscribe registers fn to be called after every successful MarkDiscovered.
func (s *Store) Subscribe(fn func(ID)) {
	if s == nil || fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// MarkDiscovered adds id. It returns false, and notifies nobody, when id was
// already present.
func (s *Store) MarkDiscovered(id ID) bool {
	if s == nil || s.found.Has(id) {
		return false
	}
	s.found.Put(id)
	for _, fn := range s.listeners {
		fn(id)
	}
	return true
}

func (s *Store) IsDiscovered(id ID) bool {
	if s == nil {
		return false
	}
	return s.found.Has(id)
}

// DiscoveredCount returns how many ids in scope are discovered. Duplicates in
// scope are counted once.
func (s *Store) DiscoveredCount(scope []ID) int {
	if s == nil {
		return 0
	}
	seen := mapset.New[ID]()
	for _, id := range scope {
		if s.found.Has(id) {
			seen.Put(id)
		}
	}
	return seen.Size()
}

// AllDiscovered reports whether every id in scope is discovered.
func (s *Store) AllDiscovered(scope []ID) bool {
	if s == nil {
		return false
	}
	for _, id := range scope {
		if !s.found.Has(id) {
			return false
		}
	}
	return true
}

// Len returns the number of discovered elements.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return s.found.Size()
}

// Snapshot returns the discovered ids in ascending order.
func (s *Store) Snapshot() []ID {
	if s == nil {
		return nil
	}
	out := make([]ID, 0, s.found.Size())
	s.found.Each(func(id ID) {
		out = append(out, id)
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MarkSubDiscovered records a sub-element activation and returns the number of
// distinct sub-elements activated for parent.
func (s *Store) MarkSubDiscovered(parent ID, sub int) (int, bool) {
	if s == nil {
		return 0, false
	}
	key := SubKey{Parent: parent, Sub: sub}
	if s.subFound.Has(key) {
		return s.subCount[parent], false
	}
	s.subFound.Put(key)
	s.subCount[parent]++
	return s.subCount[parent], true
}

func (s *Store) IsSubDiscovered(parent ID, sub int) bool {
	if s == nil {
		return false
	}
	return s.subFound.Has(SubKey{Parent: parent, Sub: sub})
}

func (s *Store) SubDiscoveredCount(parent ID) int {
	if s == nil {
		return 0
	}
	return s.subCount[parent]
}
