package transform

import (
	"slices"
	"testing"

	"github.com/matzehuels/vtdesigner/pkg/pool"
	"github.com/matzehuels/vtdesigner/pkg/pool/pooltest"
)

func container(id pool.ObjectID, children ...pool.ObjectID) *pool.Container {
	c := &pool.Container{Header: pool.Header{ID: id}}
	for _, ch := range children {
		c.Objects = append(c.Objects, pool.ObjectRef{ID: ch})
	}
	return c
}

func TestWouldCycle(t *testing.T) {
	// 3000 -> 3001 -> 3002, 3000 -> 3003
	p := pool.NewPool(
		container(3000, 3001, 3003),
		container(3001, 3002),
		container(3002),
		container(3003),
	)

	tests := []struct {
		name          string
		parent, child pool.ObjectID
		want          bool
	}{
		{"self", 3001, 3001, true},
		{"direct back edge", 3001, 3000, true},
		{"indirect back edge", 3002, 3000, true},
		{"sibling", 3003, 3001, false},
		{"existing forward edge", 3000, 3002, false},
		{"missing child", 3000, 3999, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WouldCycle(p, tt.parent, tt.child); got != tt.want {
				t.Errorf("WouldCycle(%d, %d) = %v, want %v", tt.parent, tt.child, got, tt.want)
			}
		})
	}
}

func TestWouldCycle_SharedEdgesIgnored(t *testing.T) {
	// A font attributes object used by an output string is not a parent.
	p := pooltest.Every()
	if WouldCycle(p, 23000, 11000) {
		t.Error("WouldCycle(font, output string) = true, want false")
	}
}

func TestWouldCycle_InjectedCycle(t *testing.T) {
	// 3000 -> 3001 -> 3002 -> 3000 already loops.
	p := pool.NewPool(
		container(3000, 3001),
		container(3001, 3002),
		container(3002, 3000),
		container(3003),
	)

	if WouldCycle(p, 3003, 3000) {
		t.Error("WouldCycle(3003, 3000) = true, want false")
	}
	if !WouldCycle(p, 3002, 3001) {
		t.Error("WouldCycle(3002, 3001) = false, want true")
	}
}

func TestFindCycle(t *testing.T) {
	if c := FindCycle(pooltest.Every()); c != nil {
		t.Errorf("FindCycle(Every) = %v, want nil", c)
	}

	p := pool.NewPool(
		container(3000, 3001),
		container(3001, 3002),
		container(3002, 3001),
	)
	got := FindCycle(p)
	want := []pool.ObjectID{3001, 3002, 3001}
	if !slices.Equal(got, want) {
		t.Errorf("FindCycle() = %v, want %v", got, want)
	}
}

func TestFindCycle_SelfReference(t *testing.T) {
	p := pool.NewPool(container(3000, 3000))
	got := FindCycle(p)
	if !slices.Equal(got, []pool.ObjectID{3000, 3000}) {
		t.Errorf("FindCycle() = %v, want [3000 3000]", got)
	}
}

func TestBreakCycles_NoCycles(t *testing.T) {
	p := pooltest.Every()
	if removed := BreakCycles(p); removed != 0 {
		t.Errorf("BreakCycles() removed %d edges, want 0", removed)
	}
}

func TestBreakCycles_TriangleCycle(t *testing.T) {
	p := pool.NewPool(
		container(3000, 3001),
		container(3001, 3002),
		container(3002, 3000),
	)

	if removed := BreakCycles(p); removed != 1 {
		t.Errorf("BreakCycles() removed %d edges, want 1", removed)
	}
	if c := FindCycle(p); c != nil {
		t.Errorf("FindCycle() after BreakCycles = %v, want nil", c)
	}
	o, _ := p.Get(3002)
	if n := len(o.(*pool.Container).Objects); n != 0 {
		t.Errorf("3002 still has %d children", n)
	}
}
