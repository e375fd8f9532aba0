package format

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Encoding is the payload encoding.
type Encoding uint8

// Payload encodings.
const (
	EncodingRaw Encoding = iota
	EncodingGzip
	EncodingBzip2
)

func (e Encoding) String() string {
	switch e {
	case EncodingRaw:
		return "raw"
	case EncodingGzip:
		return "gzip"
	case EncodingBzip2:
		return "bzip2"
	default:
		return "invalid"
	}
}

// Compressed reports whether the payload must be inflated before reading.
func (e Encoding) Compressed() bool {
	return e == EncodingGzip || e == EncodingBzip2
}

// ParseEncoding maps an encoding descriptor.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return EncodingRaw, nil
	case "gzip", "gz":
		return EncodingGzip, nil
	case "bzip2", "bz2":
		return EncodingBzip2, nil
	case "ascii", "text", "txt", "hex":
		return EncodingRaw, NewFieldError("encoding", fmt.Errorf("%w: %s encoding", ErrUnsupported, s))
	default:
		return EncodingRaw, FieldErrorf("encoding", "unknown encoding %q", s)
	}
}

// Endian is the declared byte order of multi-byte samples.
type Endian uint8

// Byte orders. EndianUnset means the header did not say.
const (
	EndianUnset Endian = iota
	EndianLittle
	EndianBig
)

// ParseEndian maps an endian descriptor.
func ParseEndian(s string) (Endian, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little":
		return EndianLittle, nil
	case "big":
		return EndianBig, nil
	default:
		return EndianUnset, FieldErrorf("endian", "unknown byte order %q", s)
	}
}

// ByteOrder returns the binary.ByteOrder for e, little endian when unset.
func (e Endian) ByteOrder() binary.ByteOrder {
	if e == EndianBig {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// IsSpaceKind reports whether an axis kind tag denotes a spatial axis.
func IsSpaceKind(kind string) bool {
	return strings.EqualFold(strings.TrimSpace(kind), "space")
}
