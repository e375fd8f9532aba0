package format

import (
	"fmt"
	"strings"
)

// DataType is the in-memory sample type of a volume.
type DataType uint8

// Scalar and vector sample types.
const (
	Unknown DataType = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64

	// Vector ("color") types hold 2 or 3 channels per voxel.
	VectorUint8
	VectorUint16
	VectorFloat32
)

var dataTypeNames = map[DataType]string{
	Unknown:       "unknown",
	Int8:          "int8",
	Uint8:         "uint8",
	Int16:         "int16",
	Uint16:        "uint16",
	Int32:         "int32",
	Uint32:        "uint32",
	Int64:         "int64",
	Uint64:        "uint64",
	Float32:       "float",
	Float64:       "double",
	VectorUint8:   "vector uint8",
	VectorUint16:  "vector uint16",
	VectorFloat32: "vector float",
}

func (t DataType) String() string {
	if s, ok := dataTypeNames[t]; ok {
		return s
	}
	return "invalid"
}

// Size returns the byte width of one element (one channel for vector types).
func (t DataType) Size() int {
	switch t {
	case Int8, Uint8, VectorUint8:
		return 1
	case Int16, Uint16, VectorUint16:
		return 2
	case Int32, Uint32, Float32, VectorFloat32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

// IsVector reports whether t stores several channels per voxel.
func (t DataType) IsVector() bool {
	return t == VectorUint8 || t == VectorUint16 || t == VectorFloat32
}

// Scalar returns the per-channel scalar type of a vector type, or t itself.
func (t DataType) Scalar() DataType {
	switch t {
	case VectorUint8:
		return Uint8
	case VectorUint16:
		return Uint16
	case VectorFloat32:
		return Float32
	default:
		return t
	}
}

// vectorOf lists the scalar types that may collapse into a vector type.
var vectorOf = map[DataType]DataType{
	Uint8:   VectorUint8,
	Uint16:  VectorUint16,
	Float32: VectorFloat32,
}

// typeNames maps every spelling NRRD allows for the type field.
var typeNames = map[string]DataType{
	"signed char": Int8,
	"int8":        Int8,
	"int8_t":      Int8,

	"uchar":         Uint8,
	"unsigned char": Uint8,
	"uint8":         Uint8,
	"uint8_t":       Uint8,

	"short":            Int16,
	"short int":        Int16,
	"signed short":     Int16,
	"signed short int": Int16,
	"int16":            Int16,
	"int16_t":          Int16,

	"ushort":             Uint16,
	"unsigned short":     Uint16,
	"unsigned short int": Uint16,
	"uint16":             Uint16,
	"uint16_t":           Uint16,

	"int":        Int32,
	"signed int": Int32,
	"int32":      Int32,
	"int32_t":    Int32,

	"uint":         Uint32,
	"unsigned int": Uint32,
	"uint32":       Uint32,
	"uint32_t":     Uint32,

	"longlong":             Int64,
	"long long":            Int64,
	"long long int":        Int64,
	"signed long long":     Int64,
	"signed long long int": Int64,
	"int64":                Int64,
	"int64_t":              Int64,

	"ulonglong":              Uint64,
	"unsigned long long":     Uint64,
	"unsigned long long int": Uint64,
	"uint64":                 Uint64,
	"uint64_t":               Uint64,

	"float":  Float32,
	"double": Float64,
}

// ParseDataType maps a type descriptor to a scalar DataType.
func ParseDataType(s string) (DataType, error) {
	key := strings.ToLower(strings.Join(strings.Fields(s), " "))
	if key == "block" {
		return Unknown, NewFieldError("type", fmt.Errorf("%w: block type", ErrUnsupported))
	}
	if t, ok := typeNames[key]; ok {
		return t, nil
	}
	return Unknown, FieldErrorf("type", "unknown type %q", s)
}
