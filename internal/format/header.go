package format

// Header is the record scanned from NRRD header text. Fields hold what the
// header declared, before any interpretation; per-axis slices are either nil
// or exactly Dimension long.
type Header struct {
	Version int

	Type      DataType
	TypeName  string
	Dimension int
	Sizes     []int

	Spacings    []float64
	AxisMins    []float64
	AxisMaxs    []float64
	Thicknesses []float64
	Units       []string
	Labels      []string
	Kinds       []string
	Centerings  []string

	// SpaceUnits has one entry per space-kind axis.
	SpaceUnits       []string
	Space            string
	SpaceDimension   int
	SpaceDirections  [][]float64 // nil entry for a non-spatial ("none") axis
	SpaceOrigin      []float64
	MeasurementFrame [][]float64

	Encoding Encoding
	Endian   Endian
	LineSkip int
	ByteSkip int64 // -1 selects the trailing payload bytes
	DataFile string
	Content  string

	Min, Max       *float64
	OldMin, OldMax *float64
	SampleUnits    string

	Modality    string
	BValue      *float64
	Gradients   map[int][3]float64
	Excitations map[int]int
	KeyValues   map[string]string

	// Unrecognised holds field lines the interpreter skipped.
	Unrecognised []string

	// HeaderEnd is the byte offset of the first payload byte when the data
	// is attached to the header.
	HeaderEnd int64
}

// SpaceAxes returns the indices of axes tagged with a spatial kind.
func (h *Header) SpaceAxes() []int {
	var axes []int
	for i, k := range h.Kinds {
		if IsSpaceKind(k) {
			axes = append(axes, i)
		}
	}
	return axes
}
