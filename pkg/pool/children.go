package pool

// AppendChild adds child to the display list of parent and reports whether
// parent's type can hold children. Positions are ignored by types whose
// lists carry no coordinates. Object pointers have a single slot, which
// is overwritten.
func AppendChild(parent Object, child ObjectID, x, y int16) bool {
	ref := ObjectRef{ID: child, X: x, Y: y}
	switch o := parent.(type) {
	case *WorkingSet:
		o.Objects = append(o.Objects, ref)
	case *DataMask:
		o.Objects = append(o.Objects, ref)
	case *AlarmMask:
		o.Objects = append(o.Objects, ref)
	case *Container:
		o.Objects = append(o.Objects, ref)
	case *Key:
		o.Objects = append(o.Objects, ref)
	case *Button:
		o.Objects = append(o.Objects, ref)
	case *WindowMask:
		o.Objects = append(o.Objects, ref)
	case *AuxiliaryFunctionType1:
		o.Objects = append(o.Objects, ref)
	case *AuxiliaryInputType1:
		o.Objects = append(o.Objects, ref)
	case *AuxiliaryFunctionType2:
		o.Objects = append(o.Objects, ref)
	case *AuxiliaryInputType2:
		o.Objects = append(o.Objects, ref)
	case *Animation:
		o.Objects = append(o.Objects, ref)
	case *SoftKeyMask:
		o.Objects = append(o.Objects, Some(child))
	case *InputList:
		o.Items = append(o.Items, Some(child))
	case *OutputList:
		o.Items = append(o.Items, Some(child))
	case *KeyGroup:
		o.Keys = append(o.Keys, child)
	case *ObjectPointer:
		o.Value = Some(child)
	default:
		return false
	}
	return true
}
