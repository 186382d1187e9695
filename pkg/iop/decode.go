package iop

import (
	"encoding/binary"
	"math"

	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// Decode parses a raw object pool. Empty input yields an empty pool.
func Decode(data []byte) (*pool.Pool, error) {
	p := pool.NewPool()
	for off := 0; off < len(data); {
		o, n, err := DecodeObject(data[off:])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedPool, err, "object at offset %d", off)
		}
		if err := p.Insert(o); err != nil {
			return nil, errors.New(errors.ErrCodeMalformedPool,
				"duplicate object ID %d at offset %d", o.ObjectID(), off)
		}
		off += n
	}
	return p, nil
}

// DecodeObject parses the object at the start of data and returns it with
// the number of bytes consumed.
func DecodeObject(data []byte) (pool.Object, int, error) {
	d := &decoder{data: data}
	var raw uint16
	var t uint8
	d.U16(&raw)
	d.U8(&t)
	if d.err != nil {
		return nil, 0, d.err
	}

	typ := pool.ObjectType(t)
	o := pool.New(typ)
	if o == nil {
		return nil, 0, errors.New(errors.ErrCodeMalformedPool, "unknown object type %d", t)
	}
	o.SetObjectID(pool.ObjectID(raw))
	o.Walk(d)
	if d.err != nil {
		return nil, 0, errors.Wrap(errors.ErrCodeMalformedPool, d.err, "%s %d", typ, raw)
	}
	return o, d.off, nil
}

type decoder struct {
	data []byte
	off  int
	err  error
}

func (*decoder) Mode() pool.Mode { return pool.ModeDecode }

// take returns the next n bytes, or nil after recording a truncation error.
func (d *decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n < 0 || len(d.data)-d.off < n {
		d.err = errors.New(errors.ErrCodeMalformedPool,
			"truncated: need %d bytes at offset %d, have %d", n, d.off, len(d.data)-d.off)
		return nil
	}
	b := d.data[d.off : d.off+n]
	d.off += n
	return b
}

func (d *decoder) U8(p *uint8) {
	if b := d.take(1); b != nil {
		*p = b[0]
	}
}

func (d *decoder) Bool(p *bool) {
	if b := d.take(1); b != nil {
		*p = b[0] != 0
	}
}

func (d *decoder) U16(p *uint16) {
	if b := d.take(2); b != nil {
		*p = binary.LittleEndian.Uint16(b)
	}
}

func (d *decoder) I16(p *int16) {
	var v uint16
	d.U16(&v)
	*p = int16(v)
}

func (d *decoder) U32(p *uint32) {
	if b := d.take(4); b != nil {
		*p = binary.LittleEndian.Uint32(b)
	}
}

func (d *decoder) I32(p *int32) {
	var v uint32
	d.U32(&v)
	*p = int32(v)
}

func (d *decoder) F32(p *float32) {
	var v uint32
	d.U32(&v)
	*p = math.Float32frombits(v)
}

func (d *decoder) Ref(p *pool.ObjectID, _ pool.Edge) {
	var v uint16
	d.U16(&v)
	*p = pool.ObjectID(v)
}

func (d *decoder) NullRef(p *pool.NullableObjectID, _ pool.Edge) {
	var v uint16
	d.U16(&v)
	*p = pool.Some(pool.ObjectID(v))
}

// Len reads a list count. Every list element takes at least one byte, so a
// count larger than the remaining input is rejected before allocating.
func (d *decoder) Len(_, width int) int {
	var n int
	switch width {
	case 1:
		var v uint8
		d.U8(&v)
		n = int(v)
	case 2:
		var v uint16
		d.U16(&v)
		n = int(v)
	default:
		var v uint32
		d.U32(&v)
		n = int(v)
	}
	if d.err != nil {
		return 0
	}
	if n > len(d.data)-d.off {
		d.err = errors.New(errors.ErrCodeMalformedPool,
			"truncated: list of %d entries at offset %d, %d bytes left", n, d.off, len(d.data)-d.off)
		return 0
	}
	return n
}

func (d *decoder) Bytes(p *[]byte, n int) {
	if b := d.take(n); b != nil && n > 0 {
		*p = append([]byte(nil), b...)
	}
}

func (d *decoder) Text(p *string, n int) {
	if b := d.take(n); b != nil {
		*p = string(b)
	}
}
