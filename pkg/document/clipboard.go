package document

import (
	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// CopyExact returns a clone of the selected object, ID included. It
// returns nil when nothing is selected or the selection no longer exists.
// Pasting the copy back replaces the original.
func (d *Document) CopyExact() []pool.Object {
	o, ok := d.SelectedObject()
	if !ok {
		return nil
	}
	return []pool.Object{pool.Clone(o)}
}

// CopyAsNew returns a clone of the selected object under a freshly
// allocated ID. References held by the clone are not rewritten: a copied
// button still points at the original's attributes and children.
func (d *Document) CopyAsNew() ([]pool.Object, error) {
	o, ok := d.SelectedObject()
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "no object selected")
	}
	id, err := d.AllocateID(o.Type())
	if err != nil {
		return nil, err
	}
	c := pool.Clone(o)
	c.SetObjectID(id)
	return []pool.Object{c}, nil
}

// Paste adds clones of objs to the staging pool, replacing objects with
// the same IDs, and commits. It reports whether the pool changed.
func (d *Document) Paste(objs []pool.Object) bool {
	for _, o := range objs {
		if o != nil {
			d.staging.Add(pool.Clone(o))
		}
	}
	d.hints = nil
	return d.Commit()
}
