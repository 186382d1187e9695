// Package pooltest provides object pool fixtures for tests.
package pooltest

import "github.com/matzehuels/vtdesigner/pkg/pool"

// Minimal returns a pool with a working set (0) showing one data mask (1000).
func Minimal() *pool.Pool {
	ws := pool.New(pool.TypeWorkingSet).(*pool.WorkingSet)
	ws.ActiveMask = pool.Some(1000)
	ws.Languages = []string{"en"}

	dm := pool.New(pool.TypeDataMask).(*pool.DataMask)
	dm.ID = 1000

	return pool.NewPool(ws, dm)
}

// Every returns a pool holding one populated object of every type, with
// references between them, sorted by ID. The structural graph is acyclic.
func Every() *pool.Pool {
	ref := func(id pool.ObjectID, x, y int16) pool.ObjectRef { return pool.ObjectRef{ID: id, X: x, Y: y} }
	macros := []pool.MacroRef{{Event: 1, Macro: 28000}}

	objs := []pool.Object{
		&pool.WorkingSet{
			Header: pool.Header{ID: 0}, BackgroundColour: 1, Selectable: true,
			ActiveMask: pool.Some(1000),
			Objects:    []pool.ObjectRef{ref(11000, 0, 0)},
			Macros:     macros,
			Languages:  []string{"en", "de"},
		},
		&pool.DataMask{
			Header: pool.Header{ID: 1000}, BackgroundColour: 2, SoftKeyMask: pool.Some(4000),
			Objects: []pool.ObjectRef{ref(3000, 10, 20), ref(6000, -5, 7)},
			Macros:  macros,
		},
		&pool.AlarmMask{
			Header: pool.Header{ID: 2000}, BackgroundColour: 3, Priority: 1, AcousticSignal: 2,
			Objects: []pool.ObjectRef{ref(11000, 1, 1)},
		},
		&pool.Container{
			Header: pool.Header{ID: 3000}, Width: 200, Height: 100, Hidden: true,
			Objects: []pool.ObjectRef{ref(7000, 0, 0), ref(8000, 0, 20)},
		},
		&pool.SoftKeyMask{
			Header: pool.Header{ID: 4000}, BackgroundColour: 4,
			Objects: []pool.NullableObjectID{pool.Some(5000), pool.NoObject, pool.Some(27000)},
		},
		&pool.Key{
			Header: pool.Header{ID: 5000}, BackgroundColour: 5, KeyCode: 1,
			Objects: []pool.ObjectRef{ref(11000, 2, 2)},
			Macros:  macros,
		},
		&pool.Button{
			Header: pool.Header{ID: 6000}, Width: 80, Height: 40, BackgroundColour: 6,
			BorderColour: 7, KeyCode: 2, Options: 1,
			Objects: []pool.ObjectRef{ref(14000, 0, 0)},
		},
		&pool.InputBoolean{
			Header: pool.Header{ID: 7000}, BackgroundColour: 1, Width: 16,
			Foreground: 23000, Variable: pool.Some(21000), Value: true, Enabled: true,
		},
		&pool.InputString{
			Header: pool.Header{ID: 8000}, Width: 100, Height: 16, BackgroundColour: 1,
			FontAttributes: 23000, InputAttributes: pool.Some(26000), Options: 2,
			Variable: pool.Some(22000), Justification: 1, Value: "hello   ", Enabled: true,
		},
		&pool.InputNumber{
			Header: pool.Header{ID: 9000}, Width: 60, Height: 16, FontAttributes: 23000,
			Variable: pool.NoObject, Value: 5, Min: 0, Max: 100, Offset: -3, Scale: 0.5,
			Decimals: 1, Format: 0, Justification: 2, Options2: 1,
		},
		&pool.InputList{
			Header: pool.Header{ID: 10000}, Width: 60, Height: 16, Variable: pool.Some(21000),
			Value: 1, Options: 1,
			Items: []pool.NullableObjectID{pool.Some(11000), pool.NoObject},
		},
		&pool.OutputString{
			Header: pool.Header{ID: 11000}, Width: 100, Height: 16, BackgroundColour: 1,
			FontAttributes: 23000, Variable: pool.NoObject, Justification: 0, Value: "Speed",
			Macros: macros,
		},
		&pool.OutputNumber{
			Header: pool.Header{ID: 12000}, Width: 40, Height: 16, FontAttributes: 23000,
			Variable: pool.Some(21000), Value: 42, Offset: 1, Scale: 2.5, Decimals: 2,
		},
		&pool.OutputLine{
			Header: pool.Header{ID: 13000}, LineAttributes: 24000, Width: 50, Height: 1, Direction: 1,
		},
		&pool.OutputRectangle{
			Header: pool.Header{ID: 14000}, LineAttributes: 24000, Width: 80, Height: 40,
			LineSuppression: 0, FillAttributes: pool.Some(25000),
		},
		&pool.OutputEllipse{
			Header: pool.Header{ID: 15000}, LineAttributes: 24000, Width: 30, Height: 30,
			EllipseType: 1, StartAngle: 0, EndAngle: 180, FillAttributes: pool.NoObject,
		},
		&pool.OutputPolygon{
			Header: pool.Header{ID: 16000}, Width: 20, Height: 20, LineAttributes: 24000,
			FillAttributes: pool.Some(25000), PolygonType: 0,
			Points: []pool.Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 10, Y: 20}},
		},
		&pool.OutputMeter{
			Header: pool.Header{ID: 17000}, Width: 60, NeedleColour: 1, BorderColour: 2,
			ArcAndTickColour: 3, Options: 1, Ticks: 5, StartAngle: 10, EndAngle: 170,
			Min: 0, Max: 1000, Variable: pool.Some(21000), Value: 300,
		},
		&pool.OutputLinearBarGraph{
			Header: pool.Header{ID: 18000}, Width: 10, Height: 80, Colour: 4, TargetLineColour: 5,
			Options: 2, Ticks: 4, Min: 0, Max: 100, Variable: pool.Some(21000), Value: 50,
			TargetVariable: pool.NoObject, TargetValue: 75,
		},
		&pool.OutputArchedBarGraph{
			Header: pool.Header{ID: 19000}, Width: 60, Height: 60, Colour: 4, TargetLineColour: 5,
			Options: 2, StartAngle: 0, EndAngle: 180, BarGraphWidth: 8, Min: 0, Max: 100,
			Variable: pool.Some(21000), Value: 20, TargetVariable: pool.Some(21000), TargetValue: 30,
		},
		&pool.PictureGraphic{
			Header: pool.Header{ID: 20000}, Width: 4, ActualWidth: 2, ActualHeight: 2,
			Format: 2, Options: 0, TransparencyColour: 0, Data: []byte{1, 2, 3, 4},
		},
		&pool.NumberVariable{Header: pool.Header{ID: 21000}, Value: 12345},
		&pool.StringVariable{Header: pool.Header{ID: 22000}, Value: "text"},
		&pool.FontAttributes{
			Header: pool.Header{ID: 23000}, Colour: 0, Size: 2, FontType: 0, Style: 1,
		},
		&pool.LineAttributes{Header: pool.Header{ID: 24000}, Colour: 1, Width: 2, Art: 0xF0F0},
		&pool.FillAttributes{
			Header: pool.Header{ID: 25000}, FillType: 2, FillColour: 3, Pattern: pool.Some(20000),
		},
		&pool.InputAttributes{
			Header: pool.Header{ID: 26000}, ValidationType: 0, ValidationString: "0123456789",
		},
		&pool.ObjectPointer{Header: pool.Header{ID: 27000}, Value: pool.Some(5000)},
		&pool.Macro{Header: pool.Header{ID: 28000}, Commands: []byte{0xA8, 0x00, 0x00, 0x01}},
		&pool.AuxiliaryFunctionType1{
			Header: pool.Header{ID: 29000}, BackgroundColour: 1, FunctionType: 0,
			Objects: []pool.ObjectRef{ref(11000, 0, 0)},
		},
		&pool.AuxiliaryInputType1{
			Header: pool.Header{ID: 30000}, BackgroundColour: 1, FunctionType: 1, InputID: 3,
		},
		&pool.AuxiliaryFunctionType2{
			Header: pool.Header{ID: 31000}, BackgroundColour: 2, FunctionAttributes: 4,
			Objects: []pool.ObjectRef{ref(20000, 1, 1)},
		},
		&pool.AuxiliaryInputType2{
			Header: pool.Header{ID: 32000}, BackgroundColour: 2, FunctionAttributes: 5,
		},
		&pool.AuxiliaryControlDesignatorType2{
			Header: pool.Header{ID: 33000}, PointerType: 1, AuxiliaryObject: pool.Some(31000),
		},
		&pool.ColourMap{Header: pool.Header{ID: 34000}, Indexes: []byte{0, 1, 2, 3}},
		&pool.GraphicsContext{
			Header: pool.Header{ID: 35000}, ViewportWidth: 100, ViewportHeight: 50,
			ViewportX: -10, ViewportY: 5, CanvasWidth: 200, CanvasHeight: 100,
			ViewportZoom: 1.5, CursorX: 3, CursorY: -4, ForegroundColour: 1,
			BackgroundColour: 0, FontAttributes: pool.Some(23000), LineAttributes: pool.Some(24000),
			FillAttributes: pool.NoObject, Format: 2, Options: 1, TransparencyColour: 9,
		},
		&pool.ColourPalette{
			Header: pool.Header{ID: 36000}, Options: 0,
			Colours: []pool.Colour{{B: 0, G: 0, R: 255, A: 255}, {B: 10, G: 20, R: 30, A: 40}},
		},
		&pool.OutputList{
			Header: pool.Header{ID: 37000}, Width: 50, Height: 16, Variable: pool.NoObject, Value: 0,
			Items: []pool.NullableObjectID{pool.Some(12000)},
		},
		&pool.WorkingSetSpecialControls{
			Header: pool.Header{ID: 38000}, ColourMap: pool.Some(34000), ColourPalette: pool.Some(36000),
			Languages: []pool.LanguagePair{{Language: "en", Country: "US"}},
		},
		&pool.ScaledGraphic{
			Header: pool.Header{ID: 39000}, Width: 32, Height: 32, ScaleType: 1,
			Value: pool.Some(48000),
		},
		&pool.WindowMask{
			Header: pool.Header{ID: 40000}, Width: 1, Height: 1, WindowType: 1,
			BackgroundColour: 0, Options: 1, Name: pool.Some(11000), Title: pool.NoObject,
			Icon: pool.Some(20000),
			References: []pool.NullableObjectID{pool.Some(12000)},
			Objects:    []pool.ObjectRef{ref(15000, 0, 0)},
		},
		&pool.KeyGroup{
			Header: pool.Header{ID: 41000}, Options: 1, Name: pool.Some(11000), Icon: pool.NoObject,
			Keys: []pool.ObjectID{5000},
		},
		&pool.ExtendedInputAttributes{
			Header: pool.Header{ID: 42000}, ValidationType: 1,
			CodePlanes: []pool.CodePlane{
				{Number: 0, Ranges: []pool.CharacterRange{{First: 0x30, Last: 0x39}}},
				{Number: 1},
			},
		},
		&pool.ExternalObjectPointer{
			Header: pool.Header{ID: 43000}, DefaultObject: pool.Some(11000),
			ExternalReferenceName: pool.Some(45000), ExternalObject: 1234,
		},
		&pool.ExternalObjectDefinition{
			Header: pool.Header{ID: 44000}, Options: 1, Name: 0x0102030405060708,
			Objects: []pool.ObjectID{11000},
		},
		&pool.ExternalReferenceName{Header: pool.Header{ID: 45000}, Options: 1, Name: 0xA0B0C0D0E0F00010},
		&pool.ObjectLabelReferenceList{
			Header: pool.Header{ID: 46000},
			Labels: []pool.ObjectLabel{
				{Object: 6000, StringVariable: pool.Some(22000), FontType: 0, Graphic: pool.NoObject},
			},
		},
		&pool.Animation{
			Header: pool.Header{ID: 47000}, Width: 20, Height: 20, RefreshInterval: 100,
			Value: 0, Enabled: true, FirstChild: 0, LastChild: 1, DefaultChild: 0, Options: 3,
			Objects: []pool.ObjectRef{ref(20000, 0, 0), ref(39000, 0, 0)},
		},
		&pool.GraphicData{Header: pool.Header{ID: 48000}, Format: 0, Data: []byte{0x89, 'P', 'N', 'G'}},
	}

	p := pool.NewPool(objs...)
	p.SortByID()
	return p
}
