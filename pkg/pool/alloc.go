package pool

import "github.com/matzehuels/vtdesigner/pkg/errors"

// Range returns the inclusive ID range reserved for t.
func Range(t ObjectType) (first, last ObjectID) {
	if !t.Valid() {
		return NullObjectID, NullObjectID
	}
	ti := typeTable[t]
	return ti.first, ti.last
}

// InRange reports whether id lies in the range reserved for t.
func InRange(t ObjectType, id ObjectID) bool {
	first, last := Range(t)
	return t.Valid() && id >= first && id <= last
}

// TypeOf returns the type whose range contains id.
func TypeOf(id ObjectID) (ObjectType, bool) {
	for i, ti := range typeTable {
		if id >= ti.first && id <= ti.last {
			return ObjectType(i), true
		}
	}
	return 0, false
}

// AllocateID returns the lowest ID in t's range that p does not use. It
// does not reserve the ID: the caller claims it by inserting an object.
// A full range fails with [errors.ErrCodeRangeExhausted].
func AllocateID(p *Pool, t ObjectType) (ObjectID, error) {
	return AllocateFunc(t, 0, p.Has)
}

// AllocateFunc returns the lowest ID in t's range for which taken is false.
// The search starts at hint when hint lies inside the range, so callers
// may cache the previous result as long as no lower ID becomes free.
func AllocateFunc(t ObjectType, hint ObjectID, taken func(ObjectID) bool) (ObjectID, error) {
	if !t.Valid() {
		return 0, errors.New(errors.ErrCodeInvalidInput, "unknown object type %d", uint8(t))
	}
	first, last := Range(t)
	start := first
	if hint > first && hint <= last {
		start = hint
	}
	for id := uint32(start); id <= uint32(last); id++ {
		if !taken(ObjectID(id)) {
			return ObjectID(id), nil
		}
	}
	return 0, errors.New(errors.ErrCodeRangeExhausted,
		"no free ID left for %s (%d-%d)", t, first, last)
}

// Allocator hands out IDs for a batch of new objects. Every ID it returns
// is reserved, so one batch never receives the same ID twice even before
// the objects are inserted.
type Allocator struct {
	pool     *Pool
	reserved map[ObjectID]bool
	hints    map[ObjectType]ObjectID
}

// NewAllocator returns an allocator that avoids the IDs used in p.
func NewAllocator(p *Pool) *Allocator {
	if p == nil {
		p = &Pool{}
	}
	return &Allocator{
		pool:     p,
		reserved: make(map[ObjectID]bool),
		hints:    make(map[ObjectType]ObjectID),
	}
}

// Next reserves and returns the lowest free ID for t.
func (a *Allocator) Next(t ObjectType) (ObjectID, error) {
	id, err := AllocateFunc(t, a.hints[t], a.taken)
	if err != nil {
		return 0, err
	}
	a.reserved[id] = true
	a.hints[t] = id + 1
	return id, nil
}

// Reserve marks id as used without allocating it.
func (a *Allocator) Reserve(id ObjectID) {
	a.reserved[id] = true
}

func (a *Allocator) taken(id ObjectID) bool {
	return a.reserved[id] || a.pool.Has(id)
}
