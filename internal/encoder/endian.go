// Package encoder converts raw NRRD sample bytes between byte orders and
// into numeric values.
package encoder

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/dchen116/nrrd/internal/format"
)

// Order is the byte order samples are stored in once assembled.
var Order binary.ByteOrder = binary.LittleEndian

// ToLittleEndian rewrites buf in place so that every width-byte element is
// little endian. from is the order the bytes were read in.
func ToLittleEndian(buf []byte, width int, from format.Endian) error {
	if width <= 1 || from != format.EndianBig {
		return nil
	}
	if len(buf)%width != 0 {
		return fmt.Errorf("buffer of %d bytes is not a multiple of element width %d", len(buf), width)
	}
	Swap(buf, width)
	return nil
}

// Swap reverses the bytes of every width-byte element of buf in place.
func Swap(buf []byte, width int) {
	switch width {
	case 2:
		for i := 0; i+1 < len(buf); i += 2 {
			buf[i], buf[i+1] = buf[i+1], buf[i]
		}
	case 4:
		for i := 0; i+3 < len(buf); i += 4 {
			binary.LittleEndian.PutUint32(buf[i:], binary.BigEndian.Uint32(buf[i:]))
		}
	case 8:
		for i := 0; i+7 < len(buf); i += 8 {
			binary.LittleEndian.PutUint64(buf[i:], binary.BigEndian.Uint64(buf[i:]))
		}
	}
}

// Float64At decodes element i of a little-endian buffer of scalar type t.
func Float64At(buf []byte, t format.DataType, i int) float64 {
	t = t.Scalar()
	off := i * t.Size()
	switch t {
	case format.Int8:
		return float64(int8(buf[off]))
	case format.Uint8:
		return float64(buf[off])
	case format.Int16:
		return float64(int16(Order.Uint16(buf[off:])))
	case format.Uint16:
		return float64(Order.Uint16(buf[off:]))
	case format.Int32:
		return float64(int32(Order.Uint32(buf[off:])))
	case format.Uint32:
		return float64(Order.Uint32(buf[off:]))
	case format.Int64:
		return float64(int64(Order.Uint64(buf[off:])))
	case format.Uint64:
		return float64(Order.Uint64(buf[off:]))
	case format.Float32:
		return float64(math.Float32frombits(Order.Uint32(buf[off:])))
	case format.Float64:
		return math.Float64frombits(Order.Uint64(buf[off:]))
	default:
		return math.NaN()
	}
}

// Float64s decodes every element of buf.
func Float64s(buf []byte, t format.DataType) []float64 {
	w := t.Size()
	if w == 0 {
		return nil
	}
	out := make([]float64, len(buf)/w)
	for i := range out {
		out[i] = Float64At(buf, t, i)
	}
	return out
}
