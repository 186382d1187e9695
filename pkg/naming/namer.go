package naming

import (
	"strconv"

	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// Namer hands out unique generated names. Every name it returns is
// recorded, so a batch of objects never receives the same name twice.
type Namer struct {
	taken map[string]pool.ObjectType
	next  map[pool.ObjectType]int
}

// NewNamer returns a Namer that avoids the names already assigned in names.
// Entries whose ID is missing from p are still treated as taken.
func NewNamer(p *pool.Pool, names map[pool.ObjectID]string) *Namer {
	n := &Namer{
		taken: make(map[string]pool.ObjectType, len(names)),
		next:  make(map[pool.ObjectType]int),
	}
	for id, name := range names {
		t, _ := pool.TypeOf(id)
		if p != nil {
			if o, ok := p.Get(id); ok {
				t = o.Type()
			}
		}
		n.taken[name] = t
	}
	return n
}

// Taken reports whether name is in use.
func (n *Namer) Taken(name string) bool {
	_, ok := n.taken[name]
	return ok
}

// Reserve records name as used by an object of type t.
func (n *Namer) Reserve(name string, t pool.ObjectType) {
	n.taken[name] = t
}

// Next returns and reserves the next free generated name for t.
func (n *Namer) Next(t pool.ObjectType) string {
	// Names taken later by Reserve are still checked below.
	start := max(n.next[t], 1)
	prefix := t.Ident()
	for i := start; ; i++ {
		name := prefix + strconv.Itoa(i)
		if !n.Taken(name) {
			n.taken[name] = t
			n.next[t] = i + 1
			return name
		}
	}
}

// Apply generates a name for every object of p that has no entry in names
// and stores it there. Existing names are never changed, so a second call
// is a no-op. It returns the IDs that were named, in pool order.
func Apply(p *pool.Pool, names map[pool.ObjectID]string) []pool.ObjectID {
	n := NewNamer(p, names)
	var named []pool.ObjectID
	for _, o := range p.Objects() {
		if _, ok := names[o.ObjectID()]; ok {
			continue
		}
		names[o.ObjectID()] = n.Next(o.Type())
		named = append(named, o.ObjectID())
	}
	return named
}
