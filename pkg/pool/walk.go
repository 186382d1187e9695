package pool

import "slices"

// Edge classifies a reference field.
type Edge uint8

const (
	// EdgeStructural is a parent to child display containment edge.
	// The structural graph must stay acyclic.
	EdgeStructural Edge = iota
	// EdgeShared points at a shared resource (attributes, variables, macros).
	EdgeShared
)

func (e Edge) String() string {
	if e == EdgeStructural {
		return "structural"
	}
	return "shared"
}

// Mode tells an object's Walk method what the visitor does with list fields.
type Mode uint8

const (
	// ModeInspect reads fields without touching the object.
	ModeInspect Mode = iota
	// ModeDecode fills the object; lists are allocated with the length
	// returned by Visitor.Len.
	ModeDecode
	// ModeClone replaces every slice with a private copy.
	ModeClone
)

// Visitor receives every field of an object in wire order.
//
// Len is called for every variable-length list before any of the list's
// elements, with the current length and the width of the count on the
// wire in bytes. Decoding visitors return the length read from input,
// all others return n unchanged.
type Visitor interface {
	Mode() Mode

	U8(p *uint8)
	Bool(p *bool)
	U16(p *uint16)
	I16(p *int16)
	U32(p *uint32)
	I32(p *int32)
	F32(p *float32)

	Ref(p *ObjectID, e Edge)
	NullRef(p *NullableObjectID, e Edge)

	Len(n, width int) int
	Bytes(p *[]byte, n int)
	// Text visits a string of exactly n bytes.
	Text(p *string, n int)
}

// pruner is implemented by visitors that delete list entries. pruned
// reports whether the element just visited should be dropped and resets
// the flag.
type pruner interface {
	pruned() bool
}

// walkList visits each element of *s, resizing it to n when decoding.
func walkList[T any](v Visitor, s *[]T, n int, each func(*T)) {
	if pr, ok := v.(pruner); ok {
		pr.pruned()
		kept := (*s)[:0]
		for i := range *s {
			each(&(*s)[i])
			if !pr.pruned() {
				kept = append(kept, (*s)[i])
			}
		}
		clear((*s)[len(kept):])
		*s = kept
		return
	}
	switch v.Mode() {
	case ModeDecode:
		if n == 0 {
			*s = nil
			return
		}
		*s = make([]T, n)
	case ModeClone:
		*s = slices.Clone(*s)
	}
	for i := range *s {
		each(&(*s)[i])
	}
}

func walkObjectRefs(v Visitor, s *[]ObjectRef, n int, e Edge) {
	walkList(v, s, n, func(r *ObjectRef) {
		v.Ref(&r.ID, e)
		v.I16(&r.X)
		v.I16(&r.Y)
	})
}

func walkIDs(v Visitor, s *[]ObjectID, n int, e Edge) {
	walkList(v, s, n, func(id *ObjectID) { v.Ref(id, e) })
}

func walkNullableIDs(v Visitor, s *[]NullableObjectID, n int, e Edge) {
	walkList(v, s, n, func(id *NullableObjectID) { v.NullRef(id, e) })
}

func walkMacros(v Visitor, s *[]MacroRef, n int) {
	walkList(v, s, n, func(m *MacroRef) {
		v.U8(&m.Event)
		v.Ref(&m.Macro, EdgeShared)
	})
}

// ObjectRef places a child object at an offset inside its parent.
type ObjectRef struct {
	ID ObjectID
	X  int16
	Y  int16
}

// MacroRef binds a macro object to an event.
type MacroRef struct {
	Event uint8
	Macro ObjectID
}

// Point is a polygon vertex relative to the polygon's origin.
type Point struct {
	X uint16
	Y uint16
}

// Reference is one reference field found by References.
type Reference struct {
	ID   ObjectID
	Edge Edge
}

type refCollector struct {
	inspector
	refs []Reference
	only Edge
	all  bool
}

func (c *refCollector) add(id ObjectID, e Edge) {
	if c.all || e == c.only {
		c.refs = append(c.refs, Reference{ID: id, Edge: e})
	}
}

func (c *refCollector) Ref(p *ObjectID, e Edge) {
	if *p != NullObjectID {
		c.add(*p, e)
	}
}

func (c *refCollector) NullRef(p *NullableObjectID, e Edge) {
	if id, ok := p.Get(); ok {
		c.add(id, e)
	}
}

// References returns every non-null reference held by o, in field order.
func References(o Object) []Reference {
	c := &refCollector{all: true}
	o.Walk(c)
	return c.refs
}

// Children returns the IDs o contains structurally, in field order.
// Duplicates are kept.
func Children(o Object) []ObjectID {
	c := &refCollector{only: EdgeStructural}
	o.Walk(c)
	out := make([]ObjectID, len(c.refs))
	for i, r := range c.refs {
		out[i] = r.ID
	}
	return out
}

// inspector is a Visitor that ignores every field. Embed it and override
// the methods of interest.
type inspector struct{}

func (inspector) Mode() Mode { return ModeInspect }
func (inspector) U8(*uint8) {}
func (inspector) Bool(*bool) {}
func (inspector) U16(*uint16) {}
func (inspector) I16(*int16) {}
func (inspector) U32(*uint32) {}
func (inspector) I32(*int32) {}
func (inspector) F32(*float32) {}
func (inspector) Ref(*ObjectID, Edge) {}
func (inspector) NullRef(*NullableObjectID, Edge) {}
func (inspector) Len(n, _ int) int { return n }
func (inspector) Bytes(*[]byte, int) {}
func (inspector) Text(*string, int) {}
