package document

import (
	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/pool"
	"github.com/matzehuels/vtdesigner/pkg/pool/transform"
)

// AllocateID returns the lowest ID in t's range used by neither the
// committed nor the staging pool. It does not reserve the ID.
func (d *Document) AllocateID(t pool.ObjectType) (pool.ObjectID, error) {
	if d.hints == nil {
		d.hints = make(map[pool.ObjectType]pool.ObjectID)
	}
	id, err := pool.AllocateFunc(t, d.hints[t], d.taken)
	if err != nil {
		return 0, err
	}
	d.hints[t] = id
	return id, nil
}

func (d *Document) taken(id pool.ObjectID) bool {
	return d.committed.Has(id) || d.staging.Has(id)
}

// allocator returns a batch allocator avoiding committed and staged IDs.
func (d *Document) allocator() *pool.Allocator {
	a := pool.NewAllocator(d.staging)
	for _, id := range d.committed.IDs() {
		a.Reserve(id)
	}
	return a
}

// NewObject stages a default object of type t under a fresh ID. An empty
// name generates one. The caller commits.
func (d *Document) NewObject(t pool.ObjectType, name string) (pool.Object, error) {
	if name != "" {
		if err := d.checkName(pool.NullObjectID, name); err != nil {
			return nil, err
		}
	}
	o := pool.Default(t, d.staging)
	if o == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown object type %d", uint8(t))
	}
	id, err := d.AllocateID(t)
	if err != nil {
		return nil, err
	}
	o.SetObjectID(id)
	d.staging.Add(o)
	d.hints[t] = id + 1

	if name == "" {
		name = d.GenerateName(t)
	}
	d.info[id] = Info{}
	d.claimName(id, name)
	return o, nil
}

// Remove deletes id from the staging pool and detaches every staged
// reference to it. It reports whether the object existed. The caller
// commits.
func (d *Document) Remove(id pool.ObjectID) bool {
	if !d.staging.Remove(id) {
		return false
	}
	for _, o := range d.staging.Objects() {
		pool.Detach(o, id)
	}
	d.hints = nil
	if v, ok := d.staged.Get(); ok && v == id {
		d.staged = pool.NoObject
	}
	return true
}

// CanReference reports whether parent may display child without creating
// a structural cycle in the staging pool.
func (d *Document) CanReference(parent, child pool.ObjectID) bool {
	return !transform.WouldCycle(d.staging, parent, child)
}

// AddChild appends child to parent's display list in the staging pool.
// Edits that would create a cycle fail with CYCLE before anything changes.
// The child does not need to exist yet.
func (d *Document) AddChild(parent, child pool.ObjectID, x, y int16) error {
	p, ok := d.staging.Get(parent)
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "object %d not found", parent)
	}
	if !d.CanReference(parent, child) {
		return errors.New(errors.ErrCodeCycle,
			"adding %d to %d would create a cycle", child, parent)
	}
	if !pool.AppendChild(p, child, x, y) {
		return errors.New(errors.ErrCodeInvalidInput, "%s %d cannot hold children", p.Type(), parent)
	}
	return nil
}
