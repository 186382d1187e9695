package pool

// =============================================================================
// Input fields
// =============================================================================

// InputBoolean is a checkbox-like field bound to a value or a number variable.
type InputBoolean struct {
	Header
	BackgroundColour uint8
	Width            uint16
	Foreground       ObjectID // font attributes
	Variable         NullableObjectID
	Value            bool
	Enabled          bool
	Macros           []MacroRef
}

func (*InputBoolean) Type() ObjectType { return TypeInputBoolean }

func (o *InputBoolean) Walk(v Visitor) {
	v.U8(&o.BackgroundColour)
	v.U16(&o.Width)
	v.Ref(&o.Foreground, EdgeShared)
	v.NullRef(&o.Variable, EdgeShared)
	v.Bool(&o.Value)
	v.Bool(&o.Enabled)
	n := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, n)
}

// InputString is an editable text field.
type InputString struct {
	Header
	Width            uint16
	Height           uint16
	BackgroundColour uint8
	FontAttributes   ObjectID
	InputAttributes  NullableObjectID
	Options          uint8
	Variable         NullableObjectID
	Justification    uint8
	Value            string // padded to the field length
	Enabled          bool
	Macros           []MacroRef
}

func (*InputString) Type() ObjectType { return TypeInputString }

func (o *InputString) Walk(v Visitor) {
	v.U16(&o.Width)
	v.U16(&o.Height)
	v.U8(&o.BackgroundColour)
	v.Ref(&o.FontAttributes, EdgeShared)
	v.NullRef(&o.InputAttributes, EdgeShared)
	v.U8(&o.Options)
	v.NullRef(&o.Variable, EdgeShared)
	v.U8(&o.Justification)
	n := v.Len(len(o.Value), 1)
	v.Text(&o.Value, n)
	v.Bool(&o.Enabled)
	nMac := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, nMac)
}

// InputNumber is an editable scaled numeric field.
type InputNumber struct {
	Header
	Width            uint16
	Height           uint16
	BackgroundColour uint8
	FontAttributes   ObjectID
	Options          uint8
	Variable         NullableObjectID
	Value            uint32
	Min              uint32
	Max              uint32
	Offset           int32
	Scale            float32
	Decimals         uint8
	Format           uint8
	Justification    uint8
	Options2         uint8
	Macros           []MacroRef
}

func (*InputNumber) Type() ObjectType { return TypeInputNumber }

func (o *InputNumber) Walk(v Visitor) {
	v.U16(&o.Width)
	v.U16(&o.Height)
	v.U8(&o.BackgroundColour)
	v.Ref(&o.FontAttributes, EdgeShared)
	v.U8(&o.Options)
	v.NullRef(&o.Variable, EdgeShared)
	v.U32(&o.Value)
	v.U32(&o.Min)
	v.U32(&o.Max)
	v.I32(&o.Offset)
	v.F32(&o.Scale)
	v.U8(&o.Decimals)
	v.U8(&o.Format)
	v.U8(&o.Justification)
	v.U8(&o.Options2)
	n := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, n)
}

// InputList lets the operator pick one of its items.
type InputList struct {
	Header
	Width    uint16
	Height   uint16
	Variable NullableObjectID
	Value    uint8
	Options  uint8
	Items    []NullableObjectID
	Macros   []MacroRef
}

func (*InputList) Type() ObjectType { return TypeInputList }

func (o *InputList) Walk(v Visitor) {
	v.U16(&o.Width)
	v.U16(&o.Height)
	v.NullRef(&o.Variable, EdgeShared)
	v.U8(&o.Value)
	nItems := v.Len(len(o.Items), 1)
	v.U8(&o.Options)
	nMac := v.Len(len(o.Macros), 1)
	walkNullableIDs(v, &o.Items, nItems, EdgeStructural)
	walkMacros(v, &o.Macros, nMac)
}

// =============================================================================
// Output fields
// =============================================================================

// OutputString displays text.
type OutputString struct {
	Header
	Width            uint16
	Height           uint16
	BackgroundColour uint8
	FontAttributes   ObjectID
	Options          uint8
	Variable         NullableObjectID
	Justification    uint8
	Value            string
	Macros           []MacroRef
}

func (*OutputString) Type() ObjectType { return TypeOutputString }

func (o *OutputString) Walk(v Visitor) {
	v.U16(&o.Width)
	v.U16(&o.Height)
	v.U8(&o.BackgroundColour)
	v.Ref(&o.FontAttributes, EdgeShared)
	v.U8(&o.Options)
	v.NullRef(&o.Variable, EdgeShared)
	v.U8(&o.Justification)
	n := v.Len(len(o.Value), 2)
	v.Text(&o.Value, n)
	nMac := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, nMac)
}

// OutputNumber displays a scaled numeric value.
type OutputNumber struct {
	Header
	Width            uint16
	Height           uint16
	BackgroundColour uint8
	FontAttributes   ObjectID
	Options          uint8
	Variable         NullableObjectID
	Value            uint32
	Offset           int32
	Scale            float32
	Decimals         uint8
	Format           uint8
	Justification    uint8
	Macros           []MacroRef
}

func (*OutputNumber) Type() ObjectType { return TypeOutputNumber }

func (o *OutputNumber) Walk(v Visitor) {
	v.U16(&o.Width)
	v.U16(&o.Height)
	v.U8(&o.BackgroundColour)
	v.Ref(&o.FontAttributes, EdgeShared)
	v.U8(&o.Options)
	v.NullRef(&o.Variable, EdgeShared)
	v.U32(&o.Value)
	v.I32(&o.Offset)
	v.F32(&o.Scale)
	v.U8(&o.Decimals)
	v.U8(&o.Format)
	v.U8(&o.Justification)
	n := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, n)
}

// OutputList displays the item selected by its value.
type OutputList struct {
	Header
	Width    uint16
	Height   uint16
	Variable NullableObjectID
	Value    uint8
	Items    []NullableObjectID
	Macros   []MacroRef
}

func (*OutputList) Type() ObjectType { return TypeOutputList }

func (o *OutputList) Walk(v Visitor) {
	v.U16(&o.Width)
	v.U16(&o.Height)
	v.NullRef(&o.Variable, EdgeShared)
	v.U8(&o.Value)
	nItems := v.Len(len(o.Items), 1)
	nMac := v.Len(len(o.Macros), 1)
	walkNullableIDs(v, &o.Items, nItems, EdgeStructural)
	walkMacros(v, &o.Macros, nMac)
}

// =============================================================================
// Meters and bar graphs
// =============================================================================

// OutputMeter is a needle meter.
type OutputMeter struct {
	Header
	Width            uint16
	NeedleColour     uint8
	BorderColour     uint8
	ArcAndTickColour uint8
	Options          uint8
	Ticks            uint8
	StartAngle       uint8
	EndAngle         uint8
	Min              uint16
	Max              uint16
	Variable         NullableObjectID
	Value            uint16
	Macros           []MacroRef
}

func (*OutputMeter) Type() ObjectType { return TypeOutputMeter }

func (o *OutputMeter) Walk(v Visitor) {
	v.U16(&o.Width)
	v.U8(&o.NeedleColour)
	v.U8(&o.BorderColour)
	v.U8(&o.ArcAndTickColour)
	v.U8(&o.Options)
	v.U8(&o.Ticks)
	v.U8(&o.StartAngle)
	v.U8(&o.EndAngle)
	v.U16(&o.Min)
	v.U16(&o.Max)
	v.NullRef(&o.Variable, EdgeShared)
	v.U16(&o.Value)
	n := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, n)
}

// OutputLinearBarGraph is a horizontal or vertical bar graph.
type OutputLinearBarGraph struct {
	Header
	Width            uint16
	Height           uint16
	Colour           uint8
	TargetLineColour uint8
	Options          uint8
	Ticks            uint8
	Min              uint16
	Max              uint16
	Variable         NullableObjectID
	Value            uint16
	TargetVariable   NullableObjectID
	TargetValue      uint16
	Macros           []MacroRef
}

func (*OutputLinearBarGraph) Type() ObjectType { return TypeOutputLinearBarGraph }

func (o *OutputLinearBarGraph) Walk(v Visitor) {
	v.U16(&o.Width)
	v.U16(&o.Height)
	v.U8(&o.Colour)
	v.U8(&o.TargetLineColour)
	v.U8(&o.Options)
	v.U8(&o.Ticks)
	v.U16(&o.Min)
	v.U16(&o.Max)
	v.NullRef(&o.Variable, EdgeShared)
	v.U16(&o.Value)
	v.NullRef(&o.TargetVariable, EdgeShared)
	v.U16(&o.TargetValue)
	n := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, n)
}

// OutputArchedBarGraph is a bar graph drawn along an arc.
type OutputArchedBarGraph struct {
	Header
	Width            uint16
	Height           uint16
	Colour           uint8
	TargetLineColour uint8
	Options          uint8
	StartAngle       uint8
	EndAngle         uint8
	BarGraphWidth    uint16
	Min              uint16
	Max              uint16
	Variable         NullableObjectID
	Value            uint16
	TargetVariable   NullableObjectID
	TargetValue      uint16
	Macros           []MacroRef
}

func (*OutputArchedBarGraph) Type() ObjectType { return TypeOutputArchedBarGraph }

func (o *OutputArchedBarGraph) Walk(v Visitor) {
	v.U16(&o.Width)
	v.U16(&o.Height)
	v.U8(&o.Colour)
	v.U8(&o.TargetLineColour)
	v.U8(&o.Options)
	v.U8(&o.StartAngle)
	v.U8(&o.EndAngle)
	v.U16(&o.BarGraphWidth)
	v.U16(&o.Min)
	v.U16(&o.Max)
	v.NullRef(&o.Variable, EdgeShared)
	v.U16(&o.Value)
	v.NullRef(&o.TargetVariable, EdgeShared)
	v.U16(&o.TargetValue)
	n := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, n)
}
