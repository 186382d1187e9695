package pool

import (
	"fmt"
	"strconv"
	"strings"
)

// ObjectID identifies an object within a pool.
type ObjectID uint16

// NullObjectID is the reserved "no reference" value.
const NullObjectID ObjectID = 0xFFFF

// String returns the decimal form of the ID.
func (id ObjectID) String() string { return strconv.Itoa(int(id)) }

// NullableObjectID is an object reference that may be empty.
// The zero value is the null reference.
type NullableObjectID struct {
	id    ObjectID
	valid bool
}

// NoObject is the null reference.
var NoObject = NullableObjectID{}

// Some returns a reference to id. Some(NullObjectID) is NoObject.
func Some(id ObjectID) NullableObjectID {
	if id == NullObjectID {
		return NoObject
	}
	return NullableObjectID{id: id, valid: true}
}

// IsNull reports whether the reference is empty.
func (n NullableObjectID) IsNull() bool { return !n.valid }

// Get returns the referenced ID and whether it is set.
func (n NullableObjectID) Get() (ObjectID, bool) { return n.id, n.valid }

// Raw returns the wire value, NullObjectID when empty.
func (n NullableObjectID) Raw() ObjectID {
	if !n.valid {
		return NullObjectID
	}
	return n.id
}

func (n NullableObjectID) String() string {
	if !n.valid {
		return "null"
	}
	return n.id.String()
}

// MarshalJSON encodes the reference as a number or null.
func (n NullableObjectID) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}
	return []byte(n.id.String()), nil
}

// UnmarshalJSON accepts a number or null.
func (n *NullableObjectID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = NoObject
		return nil
	}
	v, err := strconv.ParseUint(string(b), 10, 16)
	if err != nil {
		return fmt.Errorf("object id: %w", err)
	}
	*n = Some(ObjectID(v))
	return nil
}

// MarshalYAML encodes the reference as a number or null.
func (n NullableObjectID) MarshalYAML() (any, error) {
	if !n.valid {
		return nil, nil
	}
	return uint16(n.id), nil
}

// ObjectType is the ISO 11783-6 object type code.
type ObjectType uint8

const (
	TypeWorkingSet ObjectType = iota
	TypeDataMask
	TypeAlarmMask
	TypeContainer
	TypeSoftKeyMask
	TypeKey
	TypeButton
	TypeInputBoolean
	TypeInputString
	TypeInputNumber
	TypeInputList
	TypeOutputString
	TypeOutputNumber
	TypeOutputLine
	TypeOutputRectangle
	TypeOutputEllipse
	TypeOutputPolygon
	TypeOutputMeter
	TypeOutputLinearBarGraph
	TypeOutputArchedBarGraph
	TypePictureGraphic
	TypeNumberVariable
	TypeStringVariable
	TypeFontAttributes
	TypeLineAttributes
	TypeFillAttributes
	TypeInputAttributes
	TypeObjectPointer
	TypeMacro
	TypeAuxiliaryFunctionType1
	TypeAuxiliaryInputType1
	TypeAuxiliaryFunctionType2
	TypeAuxiliaryInputType2
	TypeAuxiliaryControlDesignatorType2
	TypeWindowMask
	TypeKeyGroup
	TypeGraphicsContext
	TypeOutputList
	TypeExtendedInputAttributes
	TypeColourMap
	TypeObjectLabelReferenceList
	TypeExternalObjectDefinition
	TypeExternalReferenceName
	TypeExternalObjectPointer
	TypeAnimation
	TypeColourPalette
	TypeGraphicData
	TypeWorkingSetSpecialControls
	TypeScaledGraphic

	typeCount
)

type typeInfo struct {
	ident   string // CamelCase, used as naming prefix
	display string // human readable
	first   ObjectID
	last    ObjectID
}

var typeTable = [typeCount]typeInfo{
	TypeWorkingSet:                      {"WorkingSet", "Working Set", 0, 0},
	TypeDataMask:                        {"DataMask", "Data Mask", 1000, 1999},
	TypeAlarmMask:                       {"AlarmMask", "Alarm Mask", 2000, 2999},
	TypeContainer:                       {"Container", "Container", 3000, 3999},
	TypeSoftKeyMask:                     {"SoftKeyMask", "Soft Key Mask", 4000, 4999},
	TypeKey:                             {"Key", "Key", 5000, 5999},
	TypeButton:                          {"Button", "Button", 6000, 6999},
	TypeInputBoolean:                    {"InputBoolean", "Input Boolean", 7000, 7999},
	TypeInputString:                     {"InputString", "Input String", 8000, 8999},
	TypeInputNumber:                     {"InputNumber", "Input Number", 9000, 9999},
	TypeInputList:                       {"InputList", "Input List", 10000, 10999},
	TypeOutputString:                    {"OutputString", "Output String", 11000, 11999},
	TypeOutputNumber:                    {"OutputNumber", "Output Number", 12000, 12999},
	TypeOutputLine:                      {"OutputLine", "Output Line", 13000, 13999},
	TypeOutputRectangle:                 {"OutputRectangle", "Output Rectangle", 14000, 14999},
	TypeOutputEllipse:                   {"OutputEllipse", "Output Ellipse", 15000, 15999},
	TypeOutputPolygon:                   {"OutputPolygon", "Output Polygon", 16000, 16999},
	TypeOutputMeter:                     {"OutputMeter", "Output Meter", 17000, 17999},
	TypeOutputLinearBarGraph:            {"OutputLinearBarGraph", "Output Linear Bar Graph", 18000, 18999},
	TypeOutputArchedBarGraph:            {"OutputArchedBarGraph", "Output Arched Bar Graph", 19000, 19999},
	TypePictureGraphic:                  {"PictureGraphic", "Picture Graphic", 20000, 20999},
	TypeNumberVariable:                  {"NumberVariable", "Number Variable", 21000, 21999},
	TypeStringVariable:                  {"StringVariable", "String Variable", 22000, 22999},
	TypeFontAttributes:                  {"FontAttributes", "Font Attributes", 23000, 23999},
	TypeLineAttributes:                  {"LineAttributes", "Line Attributes", 24000, 24999},
	TypeFillAttributes:                  {"FillAttributes", "Fill Attributes", 25000, 25999},
	TypeInputAttributes:                 {"InputAttributes", "Input Attributes", 26000, 26999},
	TypeObjectPointer:                   {"ObjectPointer", "Object Pointer", 27000, 27999},
	TypeMacro:                           {"Macro", "Macro", 28000, 28999},
	TypeAuxiliaryFunctionType1:          {"AuxFunction1", "Auxiliary Function Type 1", 29000, 29999},
	TypeAuxiliaryInputType1:             {"AuxInput1", "Auxiliary Input Type 1", 30000, 30999},
	TypeAuxiliaryFunctionType2:          {"AuxFunction2", "Auxiliary Function Type 2", 31000, 31999},
	TypeAuxiliaryInputType2:             {"AuxInput2", "Auxiliary Input Type 2", 32000, 32999},
	TypeAuxiliaryControlDesignatorType2: {"AuxDesignator2", "Auxiliary Control Designator Type 2", 33000, 33999},
	TypeColourMap:                       {"ColourMap", "Colour Map", 34000, 34999},
	TypeGraphicsContext:                 {"GraphicsContext", "Graphics Context", 35000, 35999},
	TypeColourPalette:                   {"ColourPalette", "Colour Palette", 36000, 36999},
	TypeOutputList:                      {"OutputList", "Output List", 37000, 37999},
	TypeWorkingSetSpecialControls:       {"WorkingSetSpecialControls", "Working Set Special Controls", 38000, 38999},
	TypeScaledGraphic:                   {"ScaledGraphic", "Scaled Graphic", 39000, 39999},
	TypeWindowMask:                      {"WindowMask", "Window Mask", 40000, 40999},
	TypeKeyGroup:                        {"KeyGroup", "Key Group", 41000, 41999},
	TypeExtendedInputAttributes:         {"ExtendedInputAttributes", "Extended Input Attributes", 42000, 42999},
	TypeExternalObjectPointer:           {"ExternalObjectPointer", "External Object Pointer", 43000, 43999},
	TypeExternalObjectDefinition:        {"ExternalObjectDefinition", "External Object Definition", 44000, 44999},
	TypeExternalReferenceName:           {"ExternalReferenceName", "External Reference Name", 45000, 45999},
	TypeObjectLabelReferenceList:        {"ObjectLabelReferenceList", "Object Label Reference List", 46000, 46999},
	TypeAnimation:                       {"Animation", "Animation", 47000, 47999},
	TypeGraphicData:                     {"GraphicData", "Graphic Data", 48000, 48999},
}

// Types returns every object type in code order.
func Types() []ObjectType {
	out := make([]ObjectType, typeCount)
	for i := range out {
		out[i] = ObjectType(i)
	}
	return out
}

// Valid reports whether t is a known type code.
func (t ObjectType) Valid() bool { return t < typeCount }

// String returns the human readable type name, e.g. "Data Mask".
func (t ObjectType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
	return typeTable[t].display
}

// Ident returns the CamelCase type name, e.g. "DataMask".
func (t ObjectType) Ident() string {
	if !t.Valid() {
		return fmt.Sprintf("Unknown%d", uint8(t))
	}
	return typeTable[t].ident
}

// ParseType resolves a type from its Ident or display name (case-insensitive).
func ParseType(s string) (ObjectType, bool) {
	for i, ti := range typeTable {
		if strings.EqualFold(s, ti.ident) || strings.EqualFold(s, ti.display) {
			return ObjectType(i), true
		}
	}
	return 0, false
}
