package pool_test

import (
	"slices"
	"testing"

	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/pool"
	"github.com/matzehuels/vtdesigner/pkg/pool/pooltest"
)

func TestTypeRangesDisjoint(t *testing.T) {
	types := pool.Types()
	if len(types) != 49 {
		t.Fatalf("len(Types()) = %d, want 49", len(types))
	}
	for i, a := range types {
		af, al := pool.Range(a)
		if af > al {
			t.Errorf("Range(%s) = %d-%d, first > last", a, af, al)
		}
		for _, b := range types[i+1:] {
			bf, bl := pool.Range(b)
			if af <= bl && bf <= al {
				t.Errorf("Range(%s) %d-%d overlaps Range(%s) %d-%d", a, af, al, b, bf, bl)
			}
		}
	}
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		id     pool.ObjectID
		want   pool.ObjectType
		wantOK bool
	}{
		{0, pool.TypeWorkingSet, true},
		{1, 0, false},
		{1000, pool.TypeDataMask, true},
		{6999, pool.TypeButton, true},
		{37000, pool.TypeOutputList, true},
		{48000, pool.TypeGraphicData, true},
		{49000, 0, false},
		{pool.NullObjectID, 0, false},
	}

	for _, tt := range tests {
		got, ok := pool.TypeOf(tt.id)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("TypeOf(%d) = %v, %v, want %v, %v", tt.id, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in     string
		want   pool.ObjectType
		wantOK bool
	}{
		{"Button", pool.TypeButton, true},
		{"button", pool.TypeButton, true},
		{"Data Mask", pool.TypeDataMask, true},
		{"datamask", pool.TypeDataMask, true},
		{"AuxFunction2", pool.TypeAuxiliaryFunctionType2, true},
		{"nope", 0, false},
	}

	for _, tt := range tests {
		got, ok := pool.ParseType(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseType(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNewCoversEveryType(t *testing.T) {
	for _, typ := range pool.Types() {
		o := pool.New(typ)
		if o == nil {
			t.Errorf("New(%s) = nil", typ)
			continue
		}
		if o.Type() != typ {
			t.Errorf("New(%s).Type() = %s", typ, o.Type())
		}
	}
	if o := pool.New(pool.ObjectType(200)); o != nil {
		t.Errorf("New(200) = %T, want nil", o)
	}
}

func TestDefaultUsesFirstFont(t *testing.T) {
	p := pool.NewPool(&pool.FontAttributes{Header: pool.Header{ID: 23005}})

	o := pool.Default(pool.TypeOutputString, p).(*pool.OutputString)
	if o.FontAttributes != 23005 {
		t.Errorf("FontAttributes = %d, want 23005", o.FontAttributes)
	}

	o = pool.New(pool.TypeOutputString).(*pool.OutputString)
	if o.FontAttributes != pool.NullObjectID {
		t.Errorf("FontAttributes = %d, want NullObjectID", o.FontAttributes)
	}
	if refs := pool.References(o); len(refs) != 0 {
		t.Errorf("References() = %v, want none", refs)
	}
}

func TestAllocateID(t *testing.T) {
	p := pooltest.Minimal()

	id, err := pool.AllocateID(p, pool.TypeButton)
	if err != nil {
		t.Fatalf("AllocateID() error = %v", err)
	}
	if id != 6000 {
		t.Errorf("AllocateID(Button) = %d, want 6000", id)
	}

	// Not reserved: asking again gives the same ID.
	again, _ := pool.AllocateID(p, pool.TypeButton)
	if again != id {
		t.Errorf("second AllocateID(Button) = %d, want %d", again, id)
	}

	id, _ = pool.AllocateID(p, pool.TypeDataMask)
	if id != 1001 {
		t.Errorf("AllocateID(DataMask) = %d, want 1001", id)
	}
}

func TestAllocateIDFillsGaps(t *testing.T) {
	p := pool.NewPool()
	for _, id := range []pool.ObjectID{6000, 6001, 6003} {
		b := pool.New(pool.TypeButton)
		b.SetObjectID(id)
		p.Add(b)
	}
	id, err := pool.AllocateID(p, pool.TypeButton)
	if err != nil || id != 6002 {
		t.Errorf("AllocateID() = %d, %v, want 6002, nil", id, err)
	}
}

func TestAllocateIDExhausted(t *testing.T) {
	p := pooltest.Minimal()
	_, err := pool.AllocateID(p, pool.TypeWorkingSet)
	if !errors.Is(err, errors.ErrCodeRangeExhausted) {
		t.Fatalf("AllocateID(WorkingSet) error = %v, want %s", err, errors.ErrCodeRangeExhausted)
	}

	full := pool.NewPool()
	first, last := pool.Range(pool.TypeMacro)
	for id := first; id <= last; id++ {
		m := pool.New(pool.TypeMacro)
		m.SetObjectID(id)
		full.Add(m)
	}
	if _, err := pool.AllocateID(full, pool.TypeMacro); !errors.Is(err, errors.ErrCodeRangeExhausted) {
		t.Errorf("AllocateID(Macro) on full range error = %v, want %s", err, errors.ErrCodeRangeExhausted)
	}
}

func TestAllocatorReservesWithinBatch(t *testing.T) {
	p := pooltest.Every()
	a := pool.NewAllocator(p)

	seen := map[pool.ObjectID]bool{}
	for _, typ := range pool.Types() {
		if typ == pool.TypeWorkingSet {
			continue
		}
		for range 3 {
			id, err := a.Next(typ)
			if err != nil {
				t.Fatalf("Next(%s) error = %v", typ, err)
			}
			if !pool.InRange(typ, id) {
				t.Errorf("Next(%s) = %d, outside range", typ, id)
			}
			if p.Has(id) || seen[id] {
				t.Errorf("Next(%s) = %d, already used", typ, id)
			}
			seen[id] = true
		}
	}

	a.Reserve(6004)
	for _, want := range []pool.ObjectID{6005, 6006} {
		if got, _ := a.Next(pool.TypeButton); got != want {
			t.Errorf("Next(Button) = %d, want %d", got, want)
		}
	}
}

func TestPoolAddReplacesInPlace(t *testing.T) {
	p := pooltest.Minimal()
	dm := pool.New(pool.TypeDataMask).(*pool.DataMask)
	dm.ID = 1000
	dm.BackgroundColour = 9
	p.Add(dm)

	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	got, _ := p.Get(1000)
	if got.(*pool.DataMask).BackgroundColour != 9 {
		t.Error("Add did not replace the existing object")
	}
	if ids := p.IDs(); !slices.Equal(ids, []pool.ObjectID{0, 1000}) {
		t.Errorf("IDs() = %v, want [0 1000]", ids)
	}
}

func TestPoolInsertDuplicate(t *testing.T) {
	p := pooltest.Minimal()
	dm := pool.New(pool.TypeDataMask)
	dm.SetObjectID(1000)
	if err := p.Insert(dm); err != pool.ErrDuplicateID {
		t.Errorf("Insert() error = %v, want ErrDuplicateID", err)
	}
	if err := p.Insert(nil); err != pool.ErrNilObject {
		t.Errorf("Insert(nil) error = %v, want ErrNilObject", err)
	}
}

func TestPoolRemoveAndSort(t *testing.T) {
	p := pool.NewPool()
	for _, id := range []pool.ObjectID{21002, 21000, 21001} {
		v := pool.New(pool.TypeNumberVariable)
		v.SetObjectID(id)
		p.Add(v)
	}

	if !p.Remove(21000) {
		t.Fatal("Remove(21000) = false")
	}
	if p.Remove(21000) {
		t.Error("second Remove(21000) = true")
	}
	if _, ok := p.Get(21000); ok {
		t.Error("Get(21000) found a removed object")
	}
	if _, ok := p.Get(21001); !ok {
		t.Error("Get(21001) lost after Remove")
	}

	p.SortByID()
	if ids := p.IDs(); !slices.Equal(ids, []pool.ObjectID{21001, 21002}) {
		t.Errorf("IDs() after sort = %v", ids)
	}
}

func TestPoolCloneIsDeep(t *testing.T) {
	p := pooltest.Every()
	c := p.Clone()
	if !p.Equal(c) {
		t.Fatal("Clone() not equal to source")
	}

	o, _ := c.Get(1000)
	dm := o.(*pool.DataMask)
	dm.Objects[0].X = 99
	dm.Macros = append(dm.Macros, pool.MacroRef{Event: 2, Macro: 28000})

	pic, _ := c.Get(20000)
	pic.(*pool.PictureGraphic).Data[0] = 0xFF

	if p.Equal(c) {
		t.Error("mutating the clone changed the source")
	}
	orig, _ := p.Get(1000)
	if orig.(*pool.DataMask).Objects[0].X != 10 {
		t.Error("source object ref changed")
	}
	origPic, _ := p.Get(20000)
	if origPic.(*pool.PictureGraphic).Data[0] != 1 {
		t.Error("source picture data changed")
	}
}

func TestEqual(t *testing.T) {
	a := &pool.Button{Header: pool.Header{ID: 6000}, Width: 10}
	tests := []struct {
		name string
		b    pool.Object
		want bool
	}{
		{"same", &pool.Button{Header: pool.Header{ID: 6000}, Width: 10}, true},
		{"nil vs empty list", &pool.Button{Header: pool.Header{ID: 6000}, Width: 10, Objects: []pool.ObjectRef{}}, true},
		{"other id", &pool.Button{Header: pool.Header{ID: 6001}, Width: 10}, false},
		{"other field", &pool.Button{Header: pool.Header{ID: 6000}, Width: 11}, false},
		{"other type", &pool.Container{Header: pool.Header{ID: 6000}, Width: 10}, false},
		{"extra child", &pool.Button{Header: pool.Header{ID: 6000}, Width: 10,
			Objects: []pool.ObjectRef{{ID: 3000}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pool.Equal(a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReferencesAndChildren(t *testing.T) {
	dm := &pool.DataMask{
		Header:      pool.Header{ID: 1000},
		SoftKeyMask: pool.Some(4000),
		Objects:     []pool.ObjectRef{{ID: 3000}, {ID: 11000}},
		Macros:      []pool.MacroRef{{Event: 1, Macro: 28000}},
	}

	if got := pool.Children(dm); !slices.Equal(got, []pool.ObjectID{4000, 3000, 11000}) {
		t.Errorf("Children() = %v", got)
	}

	refs := pool.References(dm)
	want := []pool.Reference{
		{ID: 4000, Edge: pool.EdgeStructural},
		{ID: 3000, Edge: pool.EdgeStructural},
		{ID: 11000, Edge: pool.EdgeStructural},
		{ID: 28000, Edge: pool.EdgeShared},
	}
	if !slices.Equal(refs, want) {
		t.Errorf("References() = %v, want %v", refs, want)
	}
}

func TestParents(t *testing.T) {
	p := pooltest.Every()
	got := p.Parents(11000)
	want := []pool.ObjectID{0, 2000, 5000, 10000, 29000, 40000, 41000, 43000, 44000}
	if !slices.Equal(got, want) {
		t.Errorf("Parents(11000) = %v, want %v", got, want)
	}
}

func TestRemapReferences(t *testing.T) {
	c := &pool.Container{
		Header:  pool.Header{ID: 3000},
		Objects: []pool.ObjectRef{{ID: 6000, X: 1, Y: 2}, {ID: 7000}},
		Macros:  []pool.MacroRef{{Event: 1, Macro: 28000}},
	}
	n := pool.RemapReferences(c, map[pool.ObjectID]pool.ObjectID{6000: 6100, 28000: 28001, 3000: 3500})
	if n != 2 {
		t.Errorf("RemapReferences() = %d, want 2", n)
	}
	if c.ID != 3000 {
		t.Errorf("own ID changed to %d", c.ID)
	}
	if c.Objects[0] != (pool.ObjectRef{ID: 6100, X: 1, Y: 2}) {
		t.Errorf("Objects[0] = %+v", c.Objects[0])
	}
	if c.Objects[1].ID != 7000 {
		t.Errorf("unmapped reference changed to %d", c.Objects[1].ID)
	}
	if c.Macros[0].Macro != 28001 {
		t.Errorf("macro = %d, want 28001", c.Macros[0].Macro)
	}

	dm := &pool.DataMask{Header: pool.Header{ID: 1000}}
	pool.RemapReferences(dm, map[pool.ObjectID]pool.ObjectID{pool.NullObjectID: 4000})
	if !dm.SoftKeyMask.IsNull() {
		t.Errorf("null reference remapped to %v", dm.SoftKeyMask)
	}
}

func TestDetach(t *testing.T) {
	p := pooltest.Every()

	o, _ := p.Get(4000)
	skm := o.(*pool.SoftKeyMask)
	if !pool.Detach(skm, 5000) {
		t.Fatal("Detach(SoftKeyMask, 5000) = false")
	}
	if !skm.Objects[0].IsNull() || len(skm.Objects) != 3 {
		t.Errorf("soft key slots = %v, want the key slot nulled", skm.Objects)
	}

	o, _ = p.Get(1000)
	dm := o.(*pool.DataMask)
	pool.Detach(dm, 3000)
	if len(dm.Objects) != 1 || dm.Objects[0].ID != 6000 {
		t.Errorf("Objects = %v, want only 6000", dm.Objects)
	}

	o, _ = p.Get(46000)
	labels := o.(*pool.ObjectLabelReferenceList)
	pool.Detach(labels, 22000)
	if len(labels.Labels) != 1 || !labels.Labels[0].StringVariable.IsNull() {
		t.Errorf("Labels = %+v, want string variable nulled", labels.Labels)
	}
	pool.Detach(labels, 6000)
	if len(labels.Labels) != 0 {
		t.Errorf("Labels = %+v, want label dropped", labels.Labels)
	}

	o, _ = p.Get(11000)
	os := o.(*pool.OutputString)
	pool.Detach(os, 23000)
	if os.FontAttributes != pool.NullObjectID {
		t.Errorf("FontAttributes = %d, want NullObjectID", os.FontAttributes)
	}
	if pool.Detach(os, 9999) {
		t.Error("Detach of unreferenced ID reported a change")
	}
}

func TestNullableObjectIDJSON(t *testing.T) {
	tests := []struct {
		in   pool.NullableObjectID
		want string
	}{
		{pool.NoObject, "null"},
		{pool.Some(0), "0"},
		{pool.Some(5000), "5000"},
		{pool.Some(pool.NullObjectID), "null"},
	}
	for _, tt := range tests {
		b, err := tt.in.MarshalJSON()
		if err != nil || string(b) != tt.want {
			t.Errorf("MarshalJSON(%v) = %s, %v, want %s", tt.in, b, err, tt.want)
		}
		var back pool.NullableObjectID
		if err := back.UnmarshalJSON(b); err != nil || back != tt.in {
			t.Errorf("UnmarshalJSON(%s) = %v, %v, want %v", b, back, err, tt.in)
		}
	}
}

func TestAllocateFuncHint(t *testing.T) {
	taken := func(id pool.ObjectID) bool { return id == 3000 || id == 3005 }

	tests := []struct {
		hint pool.ObjectID
		want pool.ObjectID
	}{
		{0, 3001},
		{3005, 3006},
		{3500, 3500},
		{9000, 3001}, // outside the range
	}

	for _, tt := range tests {
		got, err := pool.AllocateFunc(pool.TypeContainer, tt.hint, taken)
		if err != nil {
			t.Fatalf("AllocateFunc(hint %d) error: %v", tt.hint, err)
		}
		if got != tt.want {
			t.Errorf("AllocateFunc(hint %d) = %d, want %d", tt.hint, got, tt.want)
		}
	}
}

func TestAppendChild(t *testing.T) {
	tests := []struct {
		typ  pool.ObjectType
		want bool
	}{
		{pool.TypeDataMask, true},
		{pool.TypeContainer, true},
		{pool.TypeSoftKeyMask, true},
		{pool.TypeKeyGroup, true},
		{pool.TypeOutputList, true},
		{pool.TypeObjectPointer, true},
		{pool.TypeNumberVariable, false},
		{pool.TypeFontAttributes, false},
	}

	for _, tt := range tests {
		o := pool.New(tt.typ)
		if got := pool.AppendChild(o, 5000, 1, 2); got != tt.want {
			t.Errorf("AppendChild(%s) = %v, want %v", tt.typ, got, tt.want)
			continue
		}
		if !tt.want {
			continue
		}
		if kids := pool.Children(o); !slices.Contains(kids, 5000) {
			t.Errorf("Children(%s) = %v after AppendChild, want 5000", tt.typ, kids)
		}
	}

	dm := pool.New(pool.TypeDataMask).(*pool.DataMask)
	pool.AppendChild(dm, 3000, -4, 9)
	if want := (pool.ObjectRef{ID: 3000, X: -4, Y: 9}); dm.Objects[0] != want {
		t.Errorf("DataMask.Objects[0] = %+v, want %+v", dm.Objects[0], want)
	}
}
