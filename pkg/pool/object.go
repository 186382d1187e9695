package pool

import (
	"math"
	"reflect"
)

// Object is one typed node of an object pool. It is implemented by the
// pointer types in this package only; construct values with New.
type Object interface {
	// ObjectID returns the object's own identifier.
	ObjectID() ObjectID
	// SetObjectID changes the object's own identifier. References held by
	// other objects are not touched; see RemapReferences.
	SetObjectID(id ObjectID)
	// Type returns the ISO object type.
	Type() ObjectType
	// Walk visits every attribute after the ID and type, in wire order.
	Walk(v Visitor)

	header() *Header
}

// Header holds the attributes shared by all objects.
type Header struct {
	ID ObjectID
}

func (h *Header) ObjectID() ObjectID { return h.ID }

func (h *Header) SetObjectID(id ObjectID) { h.ID = id }

func (h *Header) header() *Header { return h }

// Clone returns a deep copy of o.
func Clone(o Object) Object {
	if o == nil {
		return nil
	}
	src := reflect.ValueOf(o).Elem()
	dst := reflect.New(src.Type())
	dst.Elem().Set(src)
	c := dst.Interface().(Object)
	c.Walk(cloner{})
	return c
}

type cloner struct{ inspector }

func (cloner) Mode() Mode { return ModeClone }

func (cloner) Bytes(p *[]byte, _ int) {
	if *p != nil {
		*p = append([]byte(nil), *p...)
	}
}

// Equal reports whether a and b have the same type, ID and attributes.
// Floats compare by bit pattern so NaN attributes stay comparable.
func Equal(a, b Object) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type() != b.Type() || a.ObjectID() != b.ObjectID() {
		return false
	}
	fa, fb := flatten(a), flatten(b)
	if len(fa.nums) != len(fb.nums) || len(fa.blobs) != len(fb.blobs) {
		return false
	}
	for i := range fa.nums {
		if fa.nums[i] != fb.nums[i] {
			return false
		}
	}
	for i := range fa.blobs {
		if fa.blobs[i] != fb.blobs[i] {
			return false
		}
	}
	return true
}

// flattener records every attribute as a number or a string.
type flattener struct {
	inspector
	nums  []uint64
	blobs []string
}

func flatten(o Object) *flattener {
	f := &flattener{}
	o.Walk(f)
	return f
}

func (f *flattener) num(v uint64) { f.nums = append(f.nums, v) }

func (f *flattener) U8(p *uint8) { f.num(uint64(*p)) }
func (f *flattener) U16(p *uint16) { f.num(uint64(*p)) }
func (f *flattener) I16(p *int16) { f.num(uint64(uint16(*p))) }
func (f *flattener) U32(p *uint32) { f.num(uint64(*p)) }
func (f *flattener) I32(p *int32) { f.num(uint64(uint32(*p))) }
func (f *flattener) F32(p *float32) {
	f.num(uint64(math.Float32bits(*p)))
}

func (f *flattener) Bool(p *bool) {
	if *p {
		f.num(1)
	} else {
		f.num(0)
	}
}

func (f *flattener) Ref(p *ObjectID, _ Edge) { f.num(uint64(*p)) }

func (f *flattener) NullRef(p *NullableObjectID, _ Edge) { f.num(uint64(p.Raw())) }

func (f *flattener) Len(n, _ int) int {
	f.num(uint64(n))
	return n
}

func (f *flattener) Bytes(p *[]byte, _ int) { f.blobs = append(f.blobs, string(*p)) }

func (f *flattener) Text(p *string, _ int) { f.blobs = append(f.blobs, *p) }
