package pool

// =============================================================================
// Shapes
// =============================================================================

// OutputLine draws a line across its bounding box.
type OutputLine struct {
	Header
	LineAttributes ObjectID
	Width          uint16
	Height         uint16
	Direction      uint8
	Macros         []MacroRef
}

func (*OutputLine) Type() ObjectType { return TypeOutputLine }

func (o *OutputLine) Walk(v Visitor) {
	v.Ref(&o.LineAttributes, EdgeShared)
	v.U16(&o.Width)
	v.U16(&o.Height)
	v.U8(&o.Direction)
	n := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, n)
}

// OutputRectangle draws a rectangle.
type OutputRectangle struct {
	Header
	LineAttributes  ObjectID
	Width           uint16
	Height          uint16
	LineSuppression uint8
	FillAttributes  NullableObjectID
	Macros          []MacroRef
}

func (*OutputRectangle) Type() ObjectType { return TypeOutputRectangle }

func (o *OutputRectangle) Walk(v Visitor) {
	v.Ref(&o.LineAttributes, EdgeShared)
	v.U16(&o.Width)
	v.U16(&o.Height)
	v.U8(&o.LineSuppression)
	v.NullRef(&o.FillAttributes, EdgeShared)
	n := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, n)
}

// OutputEllipse draws an ellipse, arc or segment.
type OutputEllipse struct {
	Header
	LineAttributes ObjectID
	Width          uint16
	Height         uint16
	EllipseType    uint8
	StartAngle     uint8
	EndAngle       uint8
	FillAttributes NullableObjectID
	Macros         []MacroRef
}

func (*OutputEllipse) Type() ObjectType { return TypeOutputEllipse }

func (o *OutputEllipse) Walk(v Visitor) {
	v.Ref(&o.LineAttributes, EdgeShared)
	v.U16(&o.Width)
	v.U16(&o.Height)
	v.U8(&o.EllipseType)
	v.U8(&o.StartAngle)
	v.U8(&o.EndAngle)
	v.NullRef(&o.FillAttributes, EdgeShared)
	n := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, n)
}

// OutputPolygon draws a polygon through its points.
type OutputPolygon struct {
	Header
	Width          uint16
	Height         uint16
	LineAttributes ObjectID
	FillAttributes NullableObjectID
	PolygonType    uint8
	Points         []Point
	Macros         []MacroRef
}

func (*OutputPolygon) Type() ObjectType { return TypeOutputPolygon }

func (o *OutputPolygon) Walk(v Visitor) {
	v.U16(&o.Width)
	v.U16(&o.Height)
	v.Ref(&o.LineAttributes, EdgeShared)
	v.NullRef(&o.FillAttributes, EdgeShared)
	v.U8(&o.PolygonType)
	nPts := v.Len(len(o.Points), 1)
	nMac := v.Len(len(o.Macros), 1)
	walkList(v, &o.Points, nPts, func(p *Point) {
		v.U16(&p.X)
		v.U16(&p.Y)
	})
	walkMacros(v, &o.Macros, nMac)
}

// =============================================================================
// Graphics
// =============================================================================

// PictureGraphic is a raw bitmap image.
type PictureGraphic struct {
	Header
	Width              uint16
	ActualWidth        uint16
	ActualHeight       uint16
	Format             uint8
	Options            uint8
	TransparencyColour uint8
	Data               []byte
	Macros             []MacroRef
}

func (*PictureGraphic) Type() ObjectType { return TypePictureGraphic }

func (o *PictureGraphic) Walk(v Visitor) {
	v.U16(&o.Width)
	v.U16(&o.ActualWidth)
	v.U16(&o.ActualHeight)
	v.U8(&o.Format)
	v.U8(&o.Options)
	v.U8(&o.TransparencyColour)
	nRaw := v.Len(len(o.Data), 4)
	nMac := v.Len(len(o.Macros), 1)
	v.Bytes(&o.Data, nRaw)
	walkMacros(v, &o.Macros, nMac)
}

// GraphicData carries an image in a standard file format, e.g. PNG.
type GraphicData struct {
	Header
	Format uint8
	Data   []byte
}

func (*GraphicData) Type() ObjectType { return TypeGraphicData }

func (o *GraphicData) Walk(v Visitor) {
	v.U8(&o.Format)
	n := v.Len(len(o.Data), 4)
	v.Bytes(&o.Data, n)
}

// ScaledGraphic shows another graphic scaled to its size.
type ScaledGraphic struct {
	Header
	Width     uint16
	Height    uint16
	ScaleType uint8
	Options   uint8
	Value     NullableObjectID
	Macros    []MacroRef
}

func (*ScaledGraphic) Type() ObjectType { return TypeScaledGraphic }

func (o *ScaledGraphic) Walk(v Visitor) {
	v.U16(&o.Width)
	v.U16(&o.Height)
	v.U8(&o.ScaleType)
	v.U8(&o.Options)
	v.NullRef(&o.Value, EdgeStructural)
	n := v.Len(len(o.Macros), 1)
	walkMacros(v, &o.Macros, n)
}

// GraphicsContext is a drawing canvas the ECU paints with commands.
type GraphicsContext struct {
	Header
	ViewportWidth      uint16
	ViewportHeight     uint16
	ViewportX          int16
	ViewportY          int16
	CanvasWidth        uint16
	CanvasHeight       uint16
	ViewportZoom       float32
	CursorX            int16
	CursorY            int16
	ForegroundColour   uint8
	BackgroundColour   uint8
	FontAttributes     NullableObjectID
	LineAttributes     NullableObjectID
	FillAttributes     NullableObjectID
	Format             uint8
	Options            uint8
	TransparencyColour uint8
}

func (*GraphicsContext) Type() ObjectType { return TypeGraphicsContext }

func (o *GraphicsContext) Walk(v Visitor) {
	v.U16(&o.ViewportWidth)
	v.U16(&o.ViewportHeight)
	v.I16(&o.ViewportX)
	v.I16(&o.ViewportY)
	v.U16(&o.CanvasWidth)
	v.U16(&o.CanvasHeight)
	v.F32(&o.ViewportZoom)
	v.I16(&o.CursorX)
	v.I16(&o.CursorY)
	v.U8(&o.ForegroundColour)
	v.U8(&o.BackgroundColour)
	v.NullRef(&o.FontAttributes, EdgeShared)
	v.NullRef(&o.LineAttributes, EdgeShared)
	v.NullRef(&o.FillAttributes, EdgeShared)
	v.U8(&o.Format)
	v.U8(&o.Options)
	v.U8(&o.TransparencyColour)
}

// Animation cycles through its children between FirstChild and LastChild.
type Animation struct {
	Header
	Width           uint16
	Height          uint16
	RefreshInterval uint16
	Value           uint8
	Enabled         bool
	FirstChild      uint8
	LastChild       uint8
	DefaultChild    uint8
	Options         uint8
	Objects         []ObjectRef
	Macros          []MacroRef
}

func (*Animation) Type() ObjectType { return TypeAnimation }

func (o *Animation) Walk(v Visitor) {
	v.U16(&o.Width)
	v.U16(&o.Height)
	v.U16(&o.RefreshInterval)
	v.U8(&o.Value)
	v.Bool(&o.Enabled)
	v.U8(&o.FirstChild)
	v.U8(&o.LastChild)
	v.U8(&o.DefaultChild)
	v.U8(&o.Options)
	nObj := v.Len(len(o.Objects), 1)
	nMac := v.Len(len(o.Macros), 1)
	walkObjectRefs(v, &o.Objects, nObj, EdgeStructural)
	walkMacros(v, &o.Macros, nMac)
}
