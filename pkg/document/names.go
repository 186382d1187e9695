package document

import (
	"maps"

	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/naming"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// Name returns the display name of id: its assigned name, or the default
// name when it has none. Unknown IDs get a default name too.
func (d *Document) Name(id pool.ObjectID) string {
	if inf, ok := d.info[id]; ok && inf.Name != "" {
		return inf.Name
	}
	if name, ok := d.nameCache[id]; ok {
		return name
	}
	name := naming.DefaultName(id, d.typeOf(id))
	if d.nameCache == nil {
		d.nameCache = make(map[pool.ObjectID]string)
	}
	d.nameCache[id] = name
	return name
}

func (d *Document) typeOf(id pool.ObjectID) pool.ObjectType {
	if o, ok := d.staging.Get(id); ok {
		return o.Type()
	}
	if o, ok := d.committed.Get(id); ok {
		return o.Type()
	}
	t, _ := pool.TypeOf(id)
	return t
}

// Info returns the metadata stored for id.
func (d *Document) Info(id pool.ObjectID) (Info, bool) {
	inf, ok := d.info[id]
	return inf, ok
}

// SetName assigns a user-supplied name. Names must be valid and unique.
func (d *Document) SetName(id pool.ObjectID, name string) error {
	if !d.exists(id) {
		return errors.New(errors.ErrCodeNotFound, "object %d not found", id)
	}
	if err := d.checkName(id, name); err != nil {
		return err
	}
	d.claimName(id, name)
	return nil
}

// SetNotes stores free-form notes for id. Empty notes clear them.
func (d *Document) SetNotes(id pool.ObjectID, notes string) error {
	if !d.exists(id) {
		return errors.New(errors.ErrCodeNotFound, "object %d not found", id)
	}
	inf := d.info[id]
	inf.Notes = notes
	d.info[id] = inf
	return nil
}

func (d *Document) exists(id pool.ObjectID) bool {
	return d.staging.Has(id) || d.committed.Has(id)
}

// checkName validates name for use by self. Names kept for objects that
// are in neither pool, such as objects removed by undo, do not conflict.
func (d *Document) checkName(self pool.ObjectID, name string) error {
	if err := naming.Validate(name); err != nil {
		return err
	}
	for id, inf := range d.info {
		if id != self && inf.Name == name && d.exists(id) {
			return errors.New(errors.ErrCodeNameConflict, "name %q is already used by object %d", name, id)
		}
	}
	return nil
}

// claimName assigns name to id. An absent object holding the same name
// loses it, so a later redo brings that object back with a default name.
func (d *Document) claimName(id pool.ObjectID, name string) {
	for other, inf := range d.info {
		if other != id && inf.Name == name {
			inf.Name = ""
			d.info[other] = inf
		}
	}
	inf := d.info[id]
	inf.Name = name
	d.info[id] = inf
}

// AllNames returns a copy of every assigned name.
func (d *Document) AllNames() map[pool.ObjectID]string {
	out := make(map[pool.ObjectID]string, len(d.info))
	for id, inf := range d.info {
		if inf.Name != "" {
			out[id] = inf.Name
		}
	}
	return out
}

// AllInfo returns a copy of all stored metadata.
func (d *Document) AllInfo() map[pool.ObjectID]Info {
	return maps.Clone(d.info)
}

// GenerateName returns the name a new object of type t would receive.
func (d *Document) GenerateName(t pool.ObjectType) string {
	existing := make(map[string]pool.ObjectType, len(d.info))
	for id, inf := range d.info {
		if inf.Name != "" {
			existing[inf.Name] = d.typeOf(id)
		}
	}
	return naming.NameFor(t, existing)
}

// ApplyNaming names every staged object that has no name yet and returns
// the IDs it named. User-supplied names are kept.
func (d *Document) ApplyNaming() []pool.ObjectID {
	names := d.AllNames()
	named := naming.Apply(d.staging, names)
	for _, id := range named {
		inf := d.info[id]
		inf.Name = names[id]
		d.info[id] = inf
	}
	return named
}
