package iop_test

import (
	"bytes"
	"testing"

	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/iop"
	"github.com/matzehuels/vtdesigner/pkg/pool"
	"github.com/matzehuels/vtdesigner/pkg/pool/pooltest"
)

func workingSet() *pool.WorkingSet {
	return &pool.WorkingSet{
		Header:           pool.Header{ID: 0},
		BackgroundColour: 7,
		Selectable:       true,
		ActiveMask:       pool.Some(1000),
		Objects:          []pool.ObjectRef{{ID: 11000, X: -1, Y: 2}},
		Languages:        []string{"en"},
	}
}

func TestEncodeObject_Bytes(t *testing.T) {
	got, err := iop.EncodeObject(workingSet())
	if err != nil {
		t.Fatalf("EncodeObject() error: %v", err)
	}
	want := []byte{
		0x00, 0x00, // ID
		0x00,       // type
		0x07,       // background
		0x01,       // selectable
		0xE8, 0x03, // active mask 1000
		0x01, 0x00, 0x01, // object, macro, language counts
		0xF8, 0x2A, 0xFF, 0xFF, 0x02, 0x00, // 11000 at (-1, 2)
		'e', 'n',
	}
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeObject() = % X, want % X", got, want)
	}
	if n := iop.ObjectSize(workingSet()); n != len(want) {
		t.Errorf("ObjectSize() = %d, want %d", n, len(want))
	}
}

func TestEncodeObject_NullReference(t *testing.T) {
	ws := workingSet()
	ws.ActiveMask = pool.NoObject
	got, err := iop.EncodeObject(ws)
	if err != nil {
		t.Fatalf("EncodeObject() error: %v", err)
	}
	if got[5] != 0xFF || got[6] != 0xFF {
		t.Errorf("null reference encoded as % X, want FF FF", got[5:7])
	}

	o, _, err := iop.DecodeObject(got)
	if err != nil {
		t.Fatalf("DecodeObject() error: %v", err)
	}
	if !o.(*pool.WorkingSet).ActiveMask.IsNull() {
		t.Errorf("decoded ActiveMask = %v, want null", o.(*pool.WorkingSet).ActiveMask)
	}
}

func TestEncodeObject_FixedText(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en", "en"},
		{"e", "e "},
		{"", "  "},
		{"eng", "en"},
	}

	for _, tt := range tests {
		ws := workingSet()
		ws.Languages = []string{tt.lang}
		got, err := iop.EncodeObject(ws)
		if err != nil {
			t.Fatalf("EncodeObject() error: %v", err)
		}
		if tail := string(got[len(got)-2:]); tail != tt.want {
			t.Errorf("language %q encoded as %q, want %q", tt.lang, tail, tt.want)
		}
	}
}

func TestEncodeObject_ListTooLong(t *testing.T) {
	c := pool.New(pool.TypeContainer).(*pool.Container)
	c.ID = 3000
	c.Objects = make([]pool.ObjectRef, 256)

	_, err := iop.EncodeObject(c)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("EncodeObject() error = %v, want INVALID_INPUT", err)
	}
	if n := iop.ObjectSize(c); n != -1 {
		t.Errorf("ObjectSize() = %d, want -1", n)
	}
}

func TestRoundTrip_EveryType(t *testing.T) {
	p := pooltest.Every()

	data, err := iop.Encode(p)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	got, err := iop.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got.Len() != p.Len() {
		t.Fatalf("Decode() returned %d objects, want %d", got.Len(), p.Len())
	}
	for _, want := range p.Objects() {
		o, ok := got.Get(want.ObjectID())
		if !ok {
			t.Errorf("object %d missing after round trip", want.ObjectID())
			continue
		}
		if !pool.Equal(o, want) {
			t.Errorf("%s %d changed in round trip", want.Type(), want.ObjectID())
		}
	}

	again, err := iop.Encode(got)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !bytes.Equal(again, data) {
		t.Error("re-encoding a decoded pool changed its bytes")
	}
	if total := iop.TotalSize(p); total != len(data) {
		t.Errorf("TotalSize() = %d, want %d", total, len(data))
	}
}

func TestDecode_Empty(t *testing.T) {
	p, err := iop.Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil) error: %v", err)
	}
	if p.Len() != 0 {
		t.Errorf("Decode(nil) returned %d objects, want 0", p.Len())
	}
}

func TestDecode_Malformed(t *testing.T) {
	ws, err := iop.EncodeObject(workingSet())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"short header", []byte{0x00, 0x00}},
		{"unknown type", []byte{0x00, 0x00, 0xC8}},
		{"truncated body", ws[:len(ws)-1]},
		{"duplicate ID", append(append([]byte{}, ws...), ws...)},
		{"list count beyond input", []byte{0xE8, 0x03, 0x03, 0x00, 0x10, 0x00, 0x10, 0x00, 0x00, 0xFF, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := iop.Decode(tt.data)
			if !errors.Is(err, errors.ErrCodeMalformedPool) {
				t.Errorf("Decode() error = %v, want MALFORMED_POOL", err)
			}
		})
	}
}

func TestDecodeObject_Consumed(t *testing.T) {
	data, err := iop.Encode(pooltest.Minimal())
	if err != nil {
		t.Fatal(err)
	}
	o, n, err := iop.DecodeObject(data)
	if err != nil {
		t.Fatalf("DecodeObject() error: %v", err)
	}
	if o.Type() != pool.TypeWorkingSet {
		t.Errorf("DecodeObject() type = %s, want WorkingSet", o.Type())
	}
	if n != iop.ObjectSize(o) {
		t.Errorf("DecodeObject() consumed %d bytes, want %d", n, iop.ObjectSize(o))
	}
}

func TestLargest(t *testing.T) {
	p := pooltest.Every()
	top := iop.Largest(p, 3)
	if len(top) != 3 {
		t.Fatalf("Largest() returned %d entries, want 3", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].Bytes > top[i-1].Bytes {
			t.Errorf("Largest() not sorted: %v", top)
		}
	}
	if all := iop.Largest(p, 0); len(all) != p.Len() {
		t.Errorf("Largest(0) returned %d entries, want %d", len(all), p.Len())
	}
}
