package pool

// =============================================================================
// Top level and mask objects
// =============================================================================

// WorkingSet is the root of a pool. ActiveMask is the data or alarm mask
// shown first.
type WorkingSet struct {
	Header
	BackgroundColour uint8
	Selectable       bool
	ActiveMask       NullableObjectID
	Objects          []ObjectRef
	Macros           []MacroRef
	Languages        []string // two letter codes
}

func (*WorkingSet) Type() ObjectType { return TypeWorkingSet }

func (o *WorkingSet) Walk(v Visitor) {
	v.U8(&o.BackgroundColour)
	v.Bool(&o.Selectable)
	v.NullRef(&o.ActiveMask, EdgeStructural)
	nObj := v.Len(len(o.Objects), 1)
	nMac := v.Len(len(o.Macros), 1)
	nLang := v.Len(len(o.Languages), 1)
	walkObjectRefs(v, &o.Objects, nObj, EdgeStructural)
	walkMacros(v, &o.Macros, nMac)
	walkList(v, &o.Languages, nLang, func(s *string) { v.Text(s, 2) })
}

// DataMask is a full-screen page shown in the data area.
type DataMask struct {
	Header
	BackgroundColour uint8
	SoftKeyMask      NullableObjectID
	Objects          []ObjectRef
	Macros           []MacroRef
}

func (*DataMask) Type() ObjectType { return TypeDataMask }

func (o *DataMask) Walk(v Visitor) {
	v.U8(&o.BackgroundColour)
	v.NullRef(&o.SoftKeyMask, EdgeStructural)
	nObj := v.Len(len(o.Objects), 1)
	nMac := v.Len(len(o.Macros), 1)
	walkObjectRefs(v, &o.Objects, nObj, EdgeStructural)
	walkMacros(v, &o.Macros, nMac)
}

// AlarmMask is a mask the VT shows in place of the active data mask when an alarm is raised.
type AlarmMask struct {
	Header
	BackgroundColour uint8
	SoftKeyMask      NullableObjectID
	Priority         uint8
	AcousticSignal   uint8
	Objects          []ObjectRef
	Macros           []MacroRef
}

func (*AlarmMask) Type() ObjectType { return TypeAlarmMask }

func (o *AlarmMask) Walk(v Visitor) {
	v.U8(&o.BackgroundColour)
	v.NullRef(&o.SoftKeyMask, EdgeStructural)
	v.U8(&o.Priority)
	v.U8(&o.AcousticSignal)
	nObj := v.Len(len(o.Objects), 1)
	nMac := v.Len(len(o.Macros), 1)
	walkObjectRefs(v, &o.Objects, nObj, EdgeStructural)
	walkMacros(v, &o.Macros, nMac)
}

// Container groups child objects so they can be placed and hidden together.
type Container struct {
	Header
	Width   uint16
	Height  uint16
	Hidden  bool
	Objects []ObjectRef
	Macros  []MacroRef
}

func (*Container) Type() ObjectType { return TypeContainer }

func (o *Container) Walk(v Visitor) {
	v.U16(&o.Width)
	v.U16(&o.Height)
	v.Bool(&o.Hidden)
	nObj := v.Len(len(o.Objects), 1)
	nMac := v.Len(len(o.Macros), 1)
	walkObjectRefs(v, &o.Objects, nObj, EdgeStructural)
	walkMacros(v, &o.Macros, nMac)
}

// SoftKeyMask lists keys, object pointers or external object pointers.
type SoftKeyMask struct {
	Header
	BackgroundColour uint8
	Objects          []NullableObjectID
	Macros           []MacroRef
}

func (*SoftKeyMask) Type() ObjectType { return TypeSoftKeyMask }

func (o *SoftKeyMask) Walk(v Visitor) {
	v.U8(&o.BackgroundColour)
	nObj := v.Len(len(o.Objects), 1)
	nMac := v.Len(len(o.Macros), 1)
	walkNullableIDs(v, &o.Objects, nObj, EdgeStructural)
	walkMacros(v, &o.Macros, nMac)
}

// Key is one soft key of a soft key mask.
type Key struct {
	Header
	BackgroundColour uint8
	KeyCode          uint8
	Objects          []ObjectRef
	Macros           []MacroRef
}

func (*Key) Type() ObjectType { return TypeKey }

func (o *Key) Walk(v Visitor) {
	v.U8(&o.BackgroundColour)
	v.U8(&o.KeyCode)
	nObj := v.Len(len(o.Objects), 1)
	nMac := v.Len(len(o.Macros), 1)
	walkObjectRefs(v, &o.Objects, nObj, EdgeStructural)
	walkMacros(v, &o.Macros, nMac)
}

// Button is an on-screen key drawn inside a mask or container.
type Button struct {
	Header
	Width            uint16
	Height           uint16
	BackgroundColour uint8
	BorderColour     uint8
	KeyCode          uint8
	Options          uint8
	Objects          []ObjectRef
	Macros           []MacroRef
}

func (*Button) Type() ObjectType { return TypeButton }

func (o *Button) Walk(v Visitor) {
	v.U16(&o.Width)
	v.U16(&o.Height)
	v.U8(&o.BackgroundColour)
	v.U8(&o.BorderColour)
	v.U8(&o.KeyCode)
	v.U8(&o.Options)
	nObj := v.Len(len(o.Objects), 1)
	nMac := v.Len(len(o.Macros), 1)
	walkObjectRefs(v, &o.Objects, nObj, EdgeStructural)
	walkMacros(v, &o.Macros, nMac)
}

// WindowMask is a user-layout window. References are the window type's
// required objects; Objects are free-form children.
type WindowMask struct {
	Header
	Width            uint8 // in user-layout cells
	Height           uint8
	WindowType       uint8
	BackgroundColour uint8
	Options          uint8
	Name             NullableObjectID
	Title            NullableObjectID
	Icon             NullableObjectID
	References       []NullableObjectID
	Objects          []ObjectRef
	Macros           []MacroRef
}

func (*WindowMask) Type() ObjectType { return TypeWindowMask }

func (o *WindowMask) Walk(v Visitor) {
	v.U8(&o.Width)
	v.U8(&o.Height)
	v.U8(&o.WindowType)
	v.U8(&o.BackgroundColour)
	v.U8(&o.Options)
	v.NullRef(&o.Name, EdgeShared)
	v.NullRef(&o.Title, EdgeShared)
	v.NullRef(&o.Icon, EdgeShared)
	nRef := v.Len(len(o.References), 1)
	nObj := v.Len(len(o.Objects), 1)
	nMac := v.Len(len(o.Macros), 1)
	walkNullableIDs(v, &o.References, nRef, EdgeStructural)
	walkObjectRefs(v, &o.Objects, nObj, EdgeStructural)
	walkMacros(v, &o.Macros, nMac)
}

// KeyGroup is a set of keys offered to a user-layout key area.
type KeyGroup struct {
	Header
	Options uint8
	Name    NullableObjectID
	Icon    NullableObjectID
	Keys    []ObjectID
	Macros  []MacroRef
}

func (*KeyGroup) Type() ObjectType { return TypeKeyGroup }

func (o *KeyGroup) Walk(v Visitor) {
	v.U8(&o.Options)
	v.NullRef(&o.Name, EdgeShared)
	v.NullRef(&o.Icon, EdgeShared)
	nObj := v.Len(len(o.Keys), 1)
	nMac := v.Len(len(o.Macros), 1)
	walkIDs(v, &o.Keys, nObj, EdgeStructural)
	walkMacros(v, &o.Macros, nMac)
}

// =============================================================================
// Auxiliary control objects
// =============================================================================

// AuxiliaryFunctionType1 designates an auxiliary function of the first auxiliary control version.
type AuxiliaryFunctionType1 struct {
	Header
	BackgroundColour uint8
	FunctionType     uint8
	Objects          []ObjectRef
}

func (*AuxiliaryFunctionType1) Type() ObjectType { return TypeAuxiliaryFunctionType1 }

func (o *AuxiliaryFunctionType1) Walk(v Visitor) {
	v.U8(&o.BackgroundColour)
	v.U8(&o.FunctionType)
	n := v.Len(len(o.Objects), 1)
	walkObjectRefs(v, &o.Objects, n, EdgeStructural)
}

// AuxiliaryInputType1 designates an auxiliary input of the first auxiliary control version.
type AuxiliaryInputType1 struct {
	Header
	BackgroundColour uint8
	FunctionType     uint8
	InputID          uint8
	Objects          []ObjectRef
}

func (*AuxiliaryInputType1) Type() ObjectType { return TypeAuxiliaryInputType1 }

func (o *AuxiliaryInputType1) Walk(v Visitor) {
	v.U8(&o.BackgroundColour)
	v.U8(&o.FunctionType)
	v.U8(&o.InputID)
	n := v.Len(len(o.Objects), 1)
	walkObjectRefs(v, &o.Objects, n, EdgeStructural)
}

// AuxiliaryFunctionType2 designates an auxiliary function.
type AuxiliaryFunctionType2 struct {
	Header
	BackgroundColour   uint8
	FunctionAttributes uint8
	Objects            []ObjectRef
}

func (*AuxiliaryFunctionType2) Type() ObjectType { return TypeAuxiliaryFunctionType2 }

func (o *AuxiliaryFunctionType2) Walk(v Visitor) {
	v.U8(&o.BackgroundColour)
	v.U8(&o.FunctionAttributes)
	n := v.Len(len(o.Objects), 1)
	walkObjectRefs(v, &o.Objects, n, EdgeStructural)
}

// AuxiliaryInputType2 designates an auxiliary input.
type AuxiliaryInputType2 struct {
	Header
	BackgroundColour   uint8
	FunctionAttributes uint8
	Objects            []ObjectRef
}

func (*AuxiliaryInputType2) Type() ObjectType { return TypeAuxiliaryInputType2 }

func (o *AuxiliaryInputType2) Walk(v Visitor) {
	v.U8(&o.BackgroundColour)
	v.U8(&o.FunctionAttributes)
	n := v.Len(len(o.Objects), 1)
	walkObjectRefs(v, &o.Objects, n, EdgeStructural)
}

// AuxiliaryControlDesignatorType2 shows the assignment of an auxiliary function or input.
type AuxiliaryControlDesignatorType2 struct {
	Header
	PointerType     uint8
	AuxiliaryObject NullableObjectID
}

func (*AuxiliaryControlDesignatorType2) Type() ObjectType {
	return TypeAuxiliaryControlDesignatorType2
}

func (o *AuxiliaryControlDesignatorType2) Walk(v Visitor) {
	v.U8(&o.PointerType)
	v.NullRef(&o.AuxiliaryObject, EdgeShared)
}
