package nrrd

import (
	"github.com/dchen116/nrrd/internal/format"
	"github.com/dchen116/nrrd/internal/geometry"
)

// Types shared with the internal packages.
type (
	Header      = format.Header
	Descriptor  = format.Descriptor
	DataType    = format.DataType
	Unit        = format.Unit
	Slice       = geometry.Slice
	Orientation = geometry.Orientation
)

// Sample types.
const (
	Int8          = format.Int8
	Uint8         = format.Uint8
	Int16         = format.Int16
	Uint16        = format.Uint16
	Int32         = format.Int32
	Uint32        = format.Uint32
	Int64         = format.Int64
	Uint64        = format.Uint64
	Float32       = format.Float32
	Float64       = format.Float64
	VectorUint8   = format.VectorUint8
	VectorUint16  = format.VectorUint16
	VectorFloat32 = format.VectorFloat32
)

// Axis orientations.
const (
	R2L = geometry.R2L
	L2R = geometry.L2R
	A2P = geometry.A2P
	P2A = geometry.P2A
	I2S = geometry.I2S
	S2I = geometry.S2I
)

// ParseOrientation parses an orientation name such as "R2L".
func ParseOrientation(s string) (Orientation, error) {
	return geometry.ParseOrientation(s)
}
