package pool

import (
	"errors"
	"slices"
)

var (
	// ErrDuplicateID is returned by [Pool.Insert] when an object with the
	// same ID already exists. IDs must be unique within a pool.
	ErrDuplicateID = errors.New("duplicate object ID")

	// ErrNilObject is returned by [Pool.Insert] for a nil object.
	ErrNilObject = errors.New("nil object")
)

// Pool is an ordered set of objects keyed by ID.
//
// Order is the insertion order and only matters for deterministic iteration
// and export. The pool does not check references: objects may point at IDs
// that are not (yet) present, and readers must treat those as missing.
//
// The zero value is an empty pool ready to use. Pool is not safe for
// concurrent use without external synchronization.
type Pool struct {
	objects []Object
	index   map[ObjectID]int // ID -> position in objects
}

// NewPool returns a pool holding objs in the given order. Later objects
// replace earlier ones with the same ID.
func NewPool(objs ...Object) *Pool {
	p := &Pool{}
	for _, o := range objs {
		p.Add(o)
	}
	return p
}

// Len returns the number of objects.
func (p *Pool) Len() int { return len(p.objects) }

// Objects returns the objects in pool order. The slice is a copy but the
// objects are shared with the pool.
func (p *Pool) Objects() []Object { return slices.Clone(p.objects) }

// IDs returns the object IDs in pool order.
func (p *Pool) IDs() []ObjectID {
	ids := make([]ObjectID, len(p.objects))
	for i, o := range p.objects {
		ids[i] = o.ObjectID()
	}
	return ids
}

// Get returns the object with the given ID.
func (p *Pool) Get(id ObjectID) (Object, bool) {
	i, ok := p.index[id]
	if !ok {
		return nil, false
	}
	return p.objects[i], true
}

// Has reports whether an object with the given ID exists.
func (p *Pool) Has(id ObjectID) bool {
	_, ok := p.index[id]
	return ok
}

// Add stores o, replacing any object with the same ID in place. New IDs
// are appended. A nil object is ignored.
func (p *Pool) Add(o Object) {
	if o == nil {
		return
	}
	if p.index == nil {
		p.index = make(map[ObjectID]int)
	}
	id := o.ObjectID()
	if i, ok := p.index[id]; ok {
		p.objects[i] = o
		return
	}
	p.index[id] = len(p.objects)
	p.objects = append(p.objects, o)
}

// Insert stores o and fails with [ErrDuplicateID] if the ID is taken.
func (p *Pool) Insert(o Object) error {
	if o == nil {
		return ErrNilObject
	}
	if p.Has(o.ObjectID()) {
		return ErrDuplicateID
	}
	p.Add(o)
	return nil
}

// Remove deletes the object with the given ID and reports whether it
// existed. References to it held by other objects are left as they are;
// see [Detach].
func (p *Pool) Remove(id ObjectID) bool {
	i, ok := p.index[id]
	if !ok {
		return false
	}
	p.objects = slices.Delete(p.objects, i, i+1)
	p.reindex()
	return true
}

// ByType returns the objects of type t in pool order.
func (p *Pool) ByType(t ObjectType) []Object {
	var out []Object
	for _, o := range p.objects {
		if o.Type() == t {
			out = append(out, o)
		}
	}
	return out
}

// WorkingSet returns the first working set object, if any.
func (p *Pool) WorkingSet() (*WorkingSet, bool) {
	for _, o := range p.objects {
		if ws, ok := o.(*WorkingSet); ok {
			return ws, true
		}
	}
	return nil, false
}

// Parents returns the IDs of objects holding a reference to id, in pool
// order, each listed once.
func (p *Pool) Parents(id ObjectID) []ObjectID {
	var out []ObjectID
	for _, o := range p.objects {
		for _, r := range References(o) {
			if r.ID == id {
				out = append(out, o.ObjectID())
				break
			}
		}
	}
	return out
}

// SortByID reorders the pool by ascending ID.
func (p *Pool) SortByID() {
	slices.SortFunc(p.objects, func(a, b Object) int {
		return int(a.ObjectID()) - int(b.ObjectID())
	})
	p.reindex()
}

// Clone returns a deep copy of the pool.
func (p *Pool) Clone() *Pool {
	c := &Pool{
		objects: make([]Object, len(p.objects)),
		index:   make(map[ObjectID]int, len(p.objects)),
	}
	for i, o := range p.objects {
		c.objects[i] = Clone(o)
		c.index[o.ObjectID()] = i
	}
	return c
}

// Equal reports whether p and q hold equal objects in the same order.
func (p *Pool) Equal(q *Pool) bool {
	if p.Len() != q.Len() {
		return false
	}
	for i := range p.objects {
		if !Equal(p.objects[i], q.objects[i]) {
			return false
		}
	}
	return true
}

func (p *Pool) reindex() {
	p.index = make(map[ObjectID]int, len(p.objects))
	for i, o := range p.objects {
		p.index[o.ObjectID()] = i
	}
}
