package transform

import (
	"slices"

	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// Closure returns roots plus every object they transitively reference,
// structural or shared, in breadth-first order. IDs that are not in p
// are skipped.
func Closure(p *pool.Pool, roots []pool.ObjectID) []pool.ObjectID {
	seen := make(map[pool.ObjectID]bool)
	var out []pool.ObjectID
	queue := slices.Clone(roots)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen[id] {
			continue
		}
		seen[id] = true

		o, ok := p.Get(id)
		if !ok {
			continue
		}
		out = append(out, id)
		for _, r := range pool.References(o) {
			if !seen[r.ID] {
				queue = append(queue, r.ID)
			}
		}
	}
	return out
}

// Roots returns the objects no other object references structurally, in
// pool order. Import pickers show these at the top level.
func Roots(p *pool.Pool) []pool.ObjectID {
	hasParent := make(map[pool.ObjectID]bool)
	for _, o := range p.Objects() {
		for _, c := range pool.Children(o) {
			if c != o.ObjectID() {
				hasParent[c] = true
			}
		}
	}
	var out []pool.ObjectID
	for _, id := range p.IDs() {
		if !hasParent[id] {
			out = append(out, id)
		}
	}
	return out
}
