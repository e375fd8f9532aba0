package encoder

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dchen116/nrrd/internal/format"
)

func TestToLittleEndian(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		width int
		in    []byte
		want  []byte
	}{
		{"int16", 2, []byte{0x01, 0x02, 0x03, 0x04}, []byte{0x02, 0x01, 0x04, 0x03}},
		{"int32", 4, []byte{1, 2, 3, 4, 5, 6, 7, 8}, []byte{4, 3, 2, 1, 8, 7, 6, 5}},
		{"int64", 8, []byte{1, 2, 3, 4, 5, 6, 7, 8}, []byte{8, 7, 6, 5, 4, 3, 2, 1}},
		{"bytes untouched", 1, []byte{1, 2, 3}, []byte{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			buf := append([]byte(nil), tt.in...)
			require.NoError(t, ToLittleEndian(buf, tt.width, format.EndianBig))
			assert.Equal(t, tt.want, buf)
		})
	}
}

func TestToLittleEndianNoOp(t *testing.T) {
	t.Parallel()

	buf := []byte{1, 2, 3, 4}
	require.NoError(t, ToLittleEndian(buf, 2, format.EndianLittle))
	assert.Equal(t, []byte{1, 2, 3, 4}, buf)
	require.NoError(t, ToLittleEndian(buf, 4, format.EndianUnset))
	assert.Equal(t, []byte{1, 2, 3, 4}, buf)
}

func TestToLittleEndianBadLength(t *testing.T) {
	t.Parallel()

	assert.Error(t, ToLittleEndian([]byte{1, 2, 3}, 2, format.EndianBig))
}

func TestSwapRoundTrip(t *testing.T) {
	t.Parallel()

	buf := []byte{9, 8, 7, 6, 5, 4, 3, 2}
	Swap(buf, 4)
	Swap(buf, 4)
	assert.Equal(t, []byte{9, 8, 7, 6, 5, 4, 3, 2}, buf)
}

func TestFloat64At(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 8)
	binary.LittleEndian.PutUint16(buf, uint16(0xFFFE))
	assert.Equal(t, -2.0, Float64At(buf, format.Int16, 0))
	assert.Equal(t, 65534.0, Float64At(buf, format.Uint16, 0))
	assert.Equal(t, 254.0, Float64At(buf, format.Uint8, 0))
	assert.Equal(t, -2.0, Float64At(buf, format.Int8, 0))

	binary.LittleEndian.PutUint32(buf, math.Float32bits(1.5))
	assert.Equal(t, 1.5, Float64At(buf, format.Float32, 0))
	assert.Equal(t, 1.5, Float64At(buf, format.VectorFloat32, 0))

	binary.LittleEndian.PutUint64(buf, math.Float64bits(-0.25))
	assert.Equal(t, -0.25, Float64At(buf, format.Float64, 0))

	binary.LittleEndian.PutUint64(buf, uint64(1)<<40)
	assert.Equal(t, float64(uint64(1)<<40), Float64At(buf, format.Int64, 0))
	assert.True(t, math.IsNaN(Float64At(buf, format.Unknown, 0)))
}

func TestFloat64s(t *testing.T) {
	t.Parallel()

	buf := []byte{1, 0, 2, 0, 0xFF, 0xFF}
	assert.Equal(t, []float64{1, 2, -1}, Float64s(buf, format.Int16))
	assert.Nil(t, Float64s(buf, format.Unknown))
}
