package document

import (
	"slices"
	"time"

	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/naming"
	"github.com/matzehuels/vtdesigner/pkg/observability"
	"github.com/matzehuels/vtdesigner/pkg/pool"
	"github.com/matzehuels/vtdesigner/pkg/pool/transform"
)

// ImportResult describes a completed import.
type ImportResult struct {
	// Mapping maps source IDs to the IDs they received in the document.
	Mapping map[pool.ObjectID]pool.ObjectID
	// Added lists the new IDs in ascending order.
	Added []pool.ObjectID
}

// Import merges the chosen objects of src, together with everything they
// reference, into the document under fresh IDs. Working sets are never
// imported. Imported objects keep their name from names unless it is
// missing or already used, in which case they get a generated one.
//
// References to IDs that src does not contain are copied unchanged, so
// they may resolve to an unrelated object of the document after the merge.
//
// The merge is committed once and the first imported object is selected.
// On error the document is unchanged.
func (d *Document) Import(src *pool.Pool, chosen []pool.ObjectID, names map[pool.ObjectID]string) (*ImportResult, error) {
	start := time.Now()
	res, err := d.merge(src, chosen, names)
	added := 0
	if res != nil {
		added = len(res.Added)
	}
	observability.Document().OnImport(len(chosen), added, time.Since(start), err)
	return res, err
}

func (d *Document) merge(src *pool.Pool, chosen []pool.ObjectID, names map[pool.ObjectID]string) (*ImportResult, error) {
	for _, id := range chosen {
		if !src.Has(id) {
			return nil, errors.New(errors.ErrCodeNotFound, "object %d not found in source pool", id)
		}
	}

	var ids []pool.ObjectID
	for _, id := range transform.Closure(src, chosen) {
		if o, _ := src.Get(id); o.Type() != pool.TypeWorkingSet {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	res := &ImportResult{Mapping: make(map[pool.ObjectID]pool.ObjectID, len(ids))}
	if len(ids) == 0 {
		return res, nil
	}

	// All IDs are allocated before any object is remapped, so references
	// between imported objects resolve regardless of order.
	alloc := d.allocator()
	for _, id := range ids {
		o, _ := src.Get(id)
		newID, err := alloc.Next(o.Type())
		if err != nil {
			return nil, err
		}
		res.Mapping[id] = newID
	}

	namer := naming.NewNamer(d.staging, d.AllNames())
	for _, id := range ids {
		o, _ := src.Get(id)
		c := pool.Clone(o)
		c.SetObjectID(res.Mapping[id])
		pool.RemapReferences(c, res.Mapping)
		d.staging.Add(c)

		name := names[id]
		if name == "" || namer.Taken(name) || naming.Validate(name) != nil {
			name = namer.Next(c.Type())
		} else {
			namer.Reserve(name, c.Type())
		}
		d.info[c.ObjectID()] = Info{Name: name}
		res.Added = append(res.Added, c.ObjectID())
	}
	slices.Sort(res.Added)

	d.staging.SortByID()
	d.hints = nil
	d.Commit()

	for _, id := range chosen {
		if newID, ok := res.Mapping[id]; ok {
			d.Select(pool.Some(newID))
			d.CommitSelection()
			break
		}
	}
	return res, nil
}
