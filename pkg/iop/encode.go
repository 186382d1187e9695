package iop

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// Encode serializes every object of p in pool order.
func Encode(p *pool.Pool) ([]byte, error) {
	var buf []byte
	for _, o := range p.Objects() {
		var err error
		if buf, err = AppendObject(buf, o); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// EncodeObject serializes a single object including its ID and type.
func EncodeObject(o pool.Object) ([]byte, error) {
	return AppendObject(nil, o)
}

// AppendObject appends the encoding of o to buf.
func AppendObject(buf []byte, o pool.Object) ([]byte, error) {
	e := &encoder{buf: binary.LittleEndian.AppendUint16(buf, uint16(o.ObjectID()))}
	e.buf = append(e.buf, uint8(o.Type()))
	o.Walk(e)
	if e.err != nil {
		return buf, errors.Wrap(errors.ErrCodeInvalidInput, e.err,
			"cannot encode %s %d", o.Type(), o.ObjectID())
	}
	return e.buf, nil
}

// ObjectSize returns the number of bytes o occupies in a raw pool, or -1
// if it cannot be encoded.
func ObjectSize(o pool.Object) int {
	e := &encoder{}
	o.Walk(e)
	if e.err != nil {
		return -1
	}
	return 3 + len(e.buf)
}

type encoder struct {
	buf []byte
	err error
}

func (*encoder) Mode() pool.Mode { return pool.ModeInspect }

func (e *encoder) U8(p *uint8) { e.buf = append(e.buf, *p) }

func (e *encoder) Bool(p *bool) {
	if *p {
		e.buf = append(e.buf, 1)
	} else {
		e.buf = append(e.buf, 0)
	}
}

func (e *encoder) U16(p *uint16) { e.buf = binary.LittleEndian.AppendUint16(e.buf, *p) }
func (e *encoder) I16(p *int16)  { e.buf = binary.LittleEndian.AppendUint16(e.buf, uint16(*p)) }
func (e *encoder) U32(p *uint32) { e.buf = binary.LittleEndian.AppendUint32(e.buf, *p) }
func (e *encoder) I32(p *int32)  { e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(*p)) }

func (e *encoder) F32(p *float32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, math.Float32bits(*p))
}

func (e *encoder) Ref(p *pool.ObjectID, _ pool.Edge) {
	e.buf = binary.LittleEndian.AppendUint16(e.buf, uint16(*p))
}

func (e *encoder) NullRef(p *pool.NullableObjectID, _ pool.Edge) {
	e.buf = binary.LittleEndian.AppendUint16(e.buf, uint16(p.Raw()))
}

func (e *encoder) Len(n, width int) int {
	if max := uint64(1)<<(8*width) - 1; uint64(n) > max {
		if e.err == nil {
			e.err = errors.New(errors.ErrCodeInvalidInput, "list of %d entries exceeds %d", n, max)
		}
	}
	switch width {
	case 1:
		e.buf = append(e.buf, uint8(n))
	case 2:
		e.buf = binary.LittleEndian.AppendUint16(e.buf, uint16(n))
	default:
		e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(n))
	}
	return n
}

func (e *encoder) Bytes(p *[]byte, _ int) { e.buf = append(e.buf, *p...) }

// Text writes exactly n bytes, padding with spaces or truncating.
func (e *encoder) Text(p *string, n int) {
	s := *p
	if len(s) > n {
		s = s[:n]
	} else if len(s) < n {
		s += strings.Repeat(" ", n-len(s))
	}
	e.buf = append(e.buf, s...)
}
