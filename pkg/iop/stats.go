package iop

import (
	"cmp"
	"slices"

	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// Size is the encoded size of one object.
type Size struct {
	ID    pool.ObjectID
	Type  pool.ObjectType
	Bytes int
}

// Sizes reports the encoded size of every object in p, in pool order.
func Sizes(p *pool.Pool) []Size {
	objs := p.Objects()
	out := make([]Size, len(objs))
	for i, o := range objs {
		out[i] = Size{ID: o.ObjectID(), Type: o.Type(), Bytes: ObjectSize(o)}
	}
	return out
}

// Largest returns the n largest objects of p, biggest first. Ties keep
// ascending ID order. n <= 0 returns all objects.
func Largest(p *pool.Pool, n int) []Size {
	sizes := Sizes(p)
	slices.SortStableFunc(sizes, func(a, b Size) int {
		if c := cmp.Compare(b.Bytes, a.Bytes); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if n > 0 && n < len(sizes) {
		sizes = sizes[:n]
	}
	return sizes
}

// TotalSize returns the encoded size of the whole pool.
func TotalSize(p *pool.Pool) int {
	total := 0
	for _, s := range Sizes(p) {
		if s.Bytes > 0 {
			total += s.Bytes
		}
	}
	return total
}
