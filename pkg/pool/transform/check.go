package transform

import (
	"fmt"
	"strings"

	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// Kind classifies a consistency problem.
type Kind int

const (
	// Dangling is a reference to an object that is not in the pool.
	Dangling Kind = iota
	// OutOfRange is an object whose ID lies outside its type's range.
	OutOfRange
	// Cycle is a structural cycle.
	Cycle
	// WorkingSetCount is a pool without exactly one working set.
	WorkingSetCount
)

func (k Kind) String() string {
	switch k {
	case Dangling:
		return "dangling"
	case OutOfRange:
		return "out-of-range"
	case Cycle:
		return "cycle"
	case WorkingSetCount:
		return "working-set"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Problem is one finding of [Check].
type Problem struct {
	Kind   Kind
	Object pool.ObjectID   // object holding the problem, NullObjectID for pool-wide ones
	Target pool.ObjectID   // missing object for Dangling
	Path   []pool.ObjectID // cycle path for Cycle
}

func (p Problem) String() string {
	switch p.Kind {
	case Dangling:
		return fmt.Sprintf("object %d references missing object %d", p.Object, p.Target)
	case OutOfRange:
		return fmt.Sprintf("object %d is outside the ID range of its type", p.Object)
	case Cycle:
		parts := make([]string, len(p.Path))
		for i, id := range p.Path {
			parts[i] = fmt.Sprint(id)
		}
		return "structural cycle " + strings.Join(parts, " -> ")
	case WorkingSetCount:
		return fmt.Sprintf("pool has %d working sets, want 1", p.Target)
	}
	return p.Kind.String()
}

// Check reports dangling references, out-of-range IDs, the first
// structural cycle and a missing or duplicated working set. Loaded pools
// may contain all of these; the editor tolerates them at read sites.
func Check(p *pool.Pool) []Problem {
	var out []Problem
	for _, o := range p.Objects() {
		if !pool.InRange(o.Type(), o.ObjectID()) {
			out = append(out, Problem{Kind: OutOfRange, Object: o.ObjectID()})
		}
		seen := make(map[pool.ObjectID]bool)
		for _, r := range pool.References(o) {
			if !p.Has(r.ID) && !seen[r.ID] {
				seen[r.ID] = true
				out = append(out, Problem{Kind: Dangling, Object: o.ObjectID(), Target: r.ID})
			}
		}
	}
	if cycle := FindCycle(p); cycle != nil {
		out = append(out, Problem{Kind: Cycle, Object: cycle[0], Path: cycle})
	}
	if n := len(p.ByType(pool.TypeWorkingSet)); n != 1 {
		out = append(out, Problem{Kind: WorkingSetCount, Object: pool.NullObjectID, Target: pool.ObjectID(n)})
	}
	return out
}

// Repair detaches dangling references and breaks structural cycles in
// place. It returns the number of detached references plus removed back
// edges. Out-of-range IDs and working set problems are left alone.
func Repair(p *pool.Pool) int {
	fixed := 0
	for _, o := range p.Objects() {
		for _, r := range pool.References(o) {
			if !p.Has(r.ID) && pool.Detach(o, r.ID) {
				fixed++
			}
		}
	}
	return fixed + BreakCycles(p)
}
