package pool

// New returns a default object of type t with ID 0, or nil for an unknown
// type. Attribute references that cannot be null point at NullObjectID.
func New(t ObjectType) Object {
	return Default(t, nil)
}

// Default is like New but binds text fields to the first font attributes
// object of p, when p has one.
func Default(t ObjectType, p *Pool) Object {
	font := NullObjectID
	if p != nil {
		if fonts := p.ByType(TypeFontAttributes); len(fonts) > 0 {
			font = fonts[0].ObjectID()
		}
	}

	switch t {
	case TypeWorkingSet:
		return &WorkingSet{Selectable: true}
	case TypeDataMask:
		return &DataMask{}
	case TypeAlarmMask:
		return &AlarmMask{}
	case TypeContainer:
		return &Container{}
	case TypeSoftKeyMask:
		return &SoftKeyMask{}
	case TypeKey:
		return &Key{}
	case TypeButton:
		return &Button{}
	case TypeInputBoolean:
		return &InputBoolean{Foreground: font, Enabled: true}
	case TypeInputString:
		return &InputString{FontAttributes: font, Enabled: true}
	case TypeInputNumber:
		return &InputNumber{FontAttributes: font, Max: ^uint32(0), Scale: 1}
	case TypeInputList:
		return &InputList{}
	case TypeOutputString:
		return &OutputString{FontAttributes: font}
	case TypeOutputNumber:
		return &OutputNumber{FontAttributes: font, Scale: 1}
	case TypeOutputLine:
		return &OutputLine{LineAttributes: NullObjectID}
	case TypeOutputRectangle:
		return &OutputRectangle{LineAttributes: NullObjectID}
	case TypeOutputEllipse:
		return &OutputEllipse{LineAttributes: NullObjectID}
	case TypeOutputPolygon:
		return &OutputPolygon{LineAttributes: NullObjectID, Points: make([]Point, 3)}
	case TypeOutputMeter:
		return &OutputMeter{}
	case TypeOutputLinearBarGraph:
		return &OutputLinearBarGraph{}
	case TypeOutputArchedBarGraph:
		return &OutputArchedBarGraph{}
	case TypePictureGraphic:
		return &PictureGraphic{}
	case TypeNumberVariable:
		return &NumberVariable{}
	case TypeStringVariable:
		return &StringVariable{}
	case TypeFontAttributes:
		return &FontAttributes{}
	case TypeLineAttributes:
		return &LineAttributes{Width: 1, Art: 0xFFFF}
	case TypeFillAttributes:
		return &FillAttributes{}
	case TypeInputAttributes:
		return &InputAttributes{}
	case TypeObjectPointer:
		return &ObjectPointer{}
	case TypeMacro:
		return &Macro{}
	case TypeAuxiliaryFunctionType1:
		return &AuxiliaryFunctionType1{}
	case TypeAuxiliaryInputType1:
		return &AuxiliaryInputType1{}
	case TypeAuxiliaryFunctionType2:
		return &AuxiliaryFunctionType2{}
	case TypeAuxiliaryInputType2:
		return &AuxiliaryInputType2{}
	case TypeAuxiliaryControlDesignatorType2:
		return &AuxiliaryControlDesignatorType2{}
	case TypeWindowMask:
		return &WindowMask{}
	case TypeKeyGroup:
		return &KeyGroup{}
	case TypeGraphicsContext:
		return &GraphicsContext{}
	case TypeOutputList:
		return &OutputList{}
	case TypeExtendedInputAttributes:
		return &ExtendedInputAttributes{}
	case TypeColourMap:
		return &ColourMap{}
	case TypeObjectLabelReferenceList:
		return &ObjectLabelReferenceList{}
	case TypeExternalObjectDefinition:
		return &ExternalObjectDefinition{Options: 1}
	case TypeExternalReferenceName:
		return &ExternalReferenceName{Options: 1}
	case TypeExternalObjectPointer:
		return &ExternalObjectPointer{ExternalObject: uint16(NullObjectID)}
	case TypeAnimation:
		return &Animation{Enabled: true}
	case TypeColourPalette:
		return &ColourPalette{}
	case TypeGraphicData:
		return &GraphicData{}
	case TypeWorkingSetSpecialControls:
		return &WorkingSetSpecialControls{}
	case TypeScaledGraphic:
		return &ScaledGraphic{}
	}
	return nil
}
