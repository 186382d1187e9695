package pool

// =============================================================================
// Variables
// =============================================================================

// NumberVariable holds a value shared by number fields.
type NumberVariable struct {
	Header
	Value uint32
}

func (*NumberVariable) Type() ObjectType { return TypeNumberVariable }

func (o *NumberVariable) Walk(v Visitor) { v.U32(&o.Value) }

// StringVariable holds text shared by string fields.
type StringVariable struct {
	Header
	Value string
}

func (*StringVariable) Type() ObjectType { return TypeStringVariable }

func (o *StringVariable) Walk(v Visitor) {
	n := v.Len(len(o.Value), 2)
	v.Text(&o.Value, n)
}

// =============================================================================
// Attribute objects
// =============================================================================

// FontAttributes describes how text is drawn.
type FontAttributes struct {
	Header
	Colour   uint8
	Size     uint8
	FontType uint8
	Style    uint8
	Macros   []MacroRef
}

func (*FontAttributes) Type() ObjectType { return TypeFontAttributes }

func (o *FontAttributes) Walk(v Visitor) {
	v.U8(&o.Colour)
	v.U8(&o.Size)
	v.U8(&o.FontType)
	v.U8(&o.Style)
	n := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, n)
}

// LineAttributes describes how lines are drawn.
type LineAttributes struct {
	Header
	Colour uint8
	Width  uint8
	Art    uint16 // dash pattern, one bit per pixel
	Macros []MacroRef
}

func (*LineAttributes) Type() ObjectType { return TypeLineAttributes }

func (o *LineAttributes) Walk(v Visitor) {
	v.U8(&o.Colour)
	v.U8(&o.Width)
	v.U16(&o.Art)
	n := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, n)
}

// FillAttributes sets how shapes are filled.
type FillAttributes struct {
	Header
	FillType   uint8
	FillColour uint8
	Pattern    NullableObjectID // picture graphic
	Macros     []MacroRef
}

func (*FillAttributes) Type() ObjectType { return TypeFillAttributes }

func (o *FillAttributes) Walk(v Visitor) {
	v.U8(&o.FillType)
	v.U8(&o.FillColour)
	v.NullRef(&o.Pattern, EdgeShared)
	n := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, n)
}

// InputAttributes restricts the characters an input string accepts.
type InputAttributes struct {
	Header
	ValidationType   uint8
	ValidationString string
	Macros           []MacroRef
}

func (*InputAttributes) Type() ObjectType { return TypeInputAttributes }

func (o *InputAttributes) Walk(v Visitor) {
	v.U8(&o.ValidationType)
	n := v.Len(len(o.ValidationString), 1)
	v.Text(&o.ValidationString, n)
	nMac := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, nMac)
}

// CharacterRange is an inclusive range of code points within a code plane.
type CharacterRange struct {
	First uint16
	Last  uint16
}

// CodePlane lists the character ranges valid in one code plane.
type CodePlane struct {
	Number uint8
	Ranges []CharacterRange
}

// ExtendedInputAttributes restricts input characters per code plane.
type ExtendedInputAttributes struct {
	Header
	ValidationType uint8
	CodePlanes     []CodePlane
}

func (*ExtendedInputAttributes) Type() ObjectType { return TypeExtendedInputAttributes }

func (o *ExtendedInputAttributes) Walk(v Visitor) {
	v.U8(&o.ValidationType)
	n := v.Len(len(o.CodePlanes), 1)
	walkList(v, &o.CodePlanes, n, func(cp *CodePlane) {
		v.U8(&cp.Number)
		nr := v.Len(len(cp.Ranges), 1)
		walkList(v, &cp.Ranges, nr, func(r *CharacterRange) {
			v.U16(&r.First)
			v.U16(&r.Last)
		})
	})
}

// =============================================================================
// Pointers and macros
// =============================================================================

// ObjectPointer shows the object it points to. A null value shows nothing.
type ObjectPointer struct {
	Header
	Value NullableObjectID
}

func (*ObjectPointer) Type() ObjectType { return TypeObjectPointer }

func (o *ObjectPointer) Walk(v Visitor) { v.NullRef(&o.Value, EdgeStructural) }

// ExternalObjectPointer shows an object exported by another working set.
// ExternalObject is an ID in that working set's pool, not in this one.
type ExternalObjectPointer struct {
	Header
	DefaultObject         NullableObjectID
	ExternalReferenceName NullableObjectID
	ExternalObject        uint16
	Macros                []MacroRef
}

func (*ExternalObjectPointer) Type() ObjectType { return TypeExternalObjectPointer }

func (o *ExternalObjectPointer) Walk(v Visitor) {
	v.NullRef(&o.DefaultObject, EdgeStructural)
	v.NullRef(&o.ExternalReferenceName, EdgeShared)
	v.U16(&o.ExternalObject)
	n := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, n)
}

// Macro holds raw VT command bytes. IDs embedded in commands are not
// treated as references.
type Macro struct {
	Header
	Commands []byte
}

func (*Macro) Type() ObjectType { return TypeMacro }

func (o *Macro) Walk(v Visitor) {
	n := v.Len(len(o.Commands), 2)
	v.Bytes(&o.Commands, n)
}

// =============================================================================
// Colours, labels and external references
// =============================================================================

// ColourMap remaps the colour indexes of the standard palette.
type ColourMap struct {
	Header
	Indexes []byte
}

func (*ColourMap) Type() ObjectType { return TypeColourMap }

func (o *ColourMap) Walk(v Visitor) {
	n := v.Len(len(o.Indexes), 2)
	v.Bytes(&o.Indexes, n)
}

// Colour is one palette entry.
type Colour struct {
	B, G, R, A uint8
}

// ColourPalette replaces the standard colour palette.
type ColourPalette struct {
	Header
	Options uint16
	Colours []Colour
}

func (*ColourPalette) Type() ObjectType { return TypeColourPalette }

func (o *ColourPalette) Walk(v Visitor) {
	v.U16(&o.Options)
	n := v.Len(len(o.Colours), 2)
	walkList(v, &o.Colours, n, func(c *Colour) {
		v.U8(&c.B)
		v.U8(&c.G)
		v.U8(&c.R)
		v.U8(&c.A)
	})
}

// ObjectLabel attaches a text and/or graphic label to an object.
type ObjectLabel struct {
	Object         ObjectID
	StringVariable NullableObjectID
	FontType       uint8
	Graphic        NullableObjectID
}

// ObjectLabelReferenceList holds the labels of objects.
type ObjectLabelReferenceList struct {
	Header
	Labels []ObjectLabel
}

func (*ObjectLabelReferenceList) Type() ObjectType { return TypeObjectLabelReferenceList }

func (o *ObjectLabelReferenceList) Walk(v Visitor) {
	n := v.Len(len(o.Labels), 2)
	walkList(v, &o.Labels, n, func(l *ObjectLabel) {
		v.Ref(&l.Object, EdgeShared)
		v.NullRef(&l.StringVariable, EdgeShared)
		v.U8(&l.FontType)
		v.NullRef(&l.Graphic, EdgeShared)
	})
}

// ExternalObjectDefinition lists objects this pool exports to the working
// set with the given NAME.
type ExternalObjectDefinition struct {
	Header
	Options uint8
	Name    uint64
	Objects []ObjectID
}

func (*ExternalObjectDefinition) Type() ObjectType { return TypeExternalObjectDefinition }

func (o *ExternalObjectDefinition) Walk(v Visitor) {
	v.U8(&o.Options)
	walkU64(v, &o.Name)
	n := v.Len(len(o.Objects), 1)
	walkIDs(v, &o.Objects, n, EdgeShared)
}

// ExternalReferenceName identifies a working set whose exported objects this pool uses.
type ExternalReferenceName struct {
	Header
	Options uint8
	Name    uint64
}

func (*ExternalReferenceName) Type() ObjectType { return TypeExternalReferenceName }

func (o *ExternalReferenceName) Walk(v Visitor) {
	v.U8(&o.Options)
	walkU64(v, &o.Name)
}

// LanguagePair is a two letter language code with a two letter country code.
type LanguagePair struct {
	Language string
	Country  string
}

// WorkingSetSpecialControls overrides colours and lists the supported languages.
type WorkingSetSpecialControls struct {
	Header
	ColourMap     NullableObjectID
	ColourPalette NullableObjectID
	Languages     []LanguagePair
}

func (*WorkingSetSpecialControls) Type() ObjectType { return TypeWorkingSetSpecialControls }

func (o *WorkingSetSpecialControls) Walk(v Visitor) {
	v.NullRef(&o.ColourMap, EdgeShared)
	v.NullRef(&o.ColourPalette, EdgeShared)
	n := v.Len(len(o.Languages), 1)
	walkList(v, &o.Languages, n, func(lp *LanguagePair) {
		v.Text(&lp.Language, 2)
		v.Text(&lp.Country, 2)
	})
}

// walkU64 visits a 64-bit value as two little-endian 32-bit halves.
func walkU64(v Visitor, p *uint64) {
	lo, hi := uint32(*p), uint32(*p>>32)
	v.U32(&lo)
	v.U32(&hi)
	*p = uint64(hi)<<32 | uint64(lo)
}
