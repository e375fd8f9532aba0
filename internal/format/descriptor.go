package format

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Descriptor is the volume layout derived from a Header. Extents,
// Resolutions, Units, Origin and (when present) Labels are index-aligned and
// Dims long.
type Descriptor struct {
	Type     DataType
	Channels int // samples per voxel, 1 for scalar types
	Dims     int

	Extents     []int
	Resolutions []float64
	Units       []Unit
	Labels      []string
	Origin      []float64

	// SliceThickness is set only when exactly one axis declared a thickness.
	SliceThickness *float64

	Encoding Encoding
	Endian   Endian
}

// Map derives a Descriptor from h. It never modifies h and returns equal
// results for equal headers.
func Map(h *Header) (*Descriptor, error) {
	if h.Type == Unknown {
		return nil, FieldErrorf("type", "missing")
	}
	if len(h.Sizes) != h.Dimension || h.Dimension == 0 {
		return nil, FieldErrorf("sizes", "expected %d sizes, have %d", h.Dimension, len(h.Sizes))
	}

	d := &Descriptor{
		Type:     h.Type,
		Channels: 1,
		Dims:     h.Dimension,
		Encoding: h.Encoding,
		Endian:   h.Endian,
	}

	// first declared axis that maps to an output axis
	first := 0
	if vt, ok := vectorOf[h.Type]; ok && h.Dimension >= 3 && (h.Sizes[0] == 2 || h.Sizes[0] == 3) {
		d.Type = vt
		d.Channels = h.Sizes[0]
		d.Dims = h.Dimension - 1
		first = 1
	}

	d.Extents = append([]int(nil), h.Sizes[first:]...)
	d.Resolutions = resolutions(h)[first:]
	d.Origin = origin(h, first, d.Dims)

	unitNames := axisUnits(h, first)
	d.Units = make([]Unit, d.Dims)
	for i, name := range unitNames[first:] {
		d.Units[i] = ParseUnit(name)
	}

	if h.Labels != nil {
		d.Labels = append([]string(nil), h.Labels[first:]...)
	}

	d.SliceThickness = thickness(h.Thicknesses)
	return d, nil
}

// resolutions returns one spacing per declared axis.
func resolutions(h *Header) []float64 {
	res := make([]float64, h.Dimension)
	for i := range res {
		res[i] = 1
		switch {
		case h.Spacings != nil:
			if s := h.Spacings[i]; !math.IsNaN(s) {
				res[i] = math.Abs(s)
			}
		case h.SpaceDirections != nil && h.SpaceDirections[i] != nil:
			if n := floats.Norm(h.SpaceDirections[i], 2); n > 0 && !math.IsNaN(n) {
				res[i] = n
			}
		}
	}
	return res
}

// axisUnits returns one unit string per declared axis. Per-axis units win;
// space units fill the spatial axes that per-axis units leave blank.
func axisUnits(h *Header, first int) []string {
	units := make([]string, h.Dimension)
	copy(units, h.Units)

	if len(h.SpaceUnits) == 0 {
		return units
	}
	spaceAxes := h.SpaceAxes()
	if len(spaceAxes) == 0 {
		for j := range h.SpaceUnits {
			if a := first + j; a < h.Dimension {
				spaceAxes = append(spaceAxes, a)
			}
		}
	}
	for j, a := range spaceAxes {
		if j < len(h.SpaceUnits) && units[a] == "" {
			units[a] = h.SpaceUnits[j]
		}
	}
	return units
}

// origin takes the space origin when declared, else the axis minimums.
func origin(h *Header, first, dims int) []float64 {
	o := make([]float64, dims)
	switch {
	case h.SpaceOrigin != nil:
		copy(o, h.SpaceOrigin)
	case h.AxisMins != nil:
		for i := range o {
			if v := h.AxisMins[first+i]; !math.IsNaN(v) {
				o[i] = v
			}
		}
	}
	for i, v := range o {
		if math.IsNaN(v) {
			o[i] = 0
		}
	}
	return o
}

func thickness(ts []float64) *float64 {
	var found *float64
	for _, t := range ts {
		if math.IsNaN(t) {
			continue
		}
		if found != nil {
			return nil
		}
		v := math.Abs(t)
		found = &v
	}
	return found
}

// Elements returns the number of scalar elements (channels included).
func (d *Descriptor) Elements() (int64, error) {
	n := int64(d.Channels)
	for _, e := range d.Extents {
		if e <= 0 {
			return 0, FieldErrorf("sizes", "non-positive extent %d", e)
		}
		if n > math.MaxInt64/int64(e) {
			return 0, fmt.Errorf("%w: extent product overflows", ErrResourceExhausted)
		}
		n *= int64(e)
	}
	return n, nil
}

// ByteSize returns the payload size in bytes, failing with
// ErrResourceExhausted when it overflows or exceeds limit (0 = no limit).
func (d *Descriptor) ByteSize(limit int64) (int64, error) {
	n, err := d.Elements()
	if err != nil {
		return 0, err
	}
	w := int64(d.Type.Size())
	if n > math.MaxInt64/w || n*w > math.MaxInt {
		return 0, fmt.Errorf("%w: %d elements of %d bytes", ErrResourceExhausted, n, w)
	}
	size := n * w
	if limit > 0 && size > limit {
		return 0, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrResourceExhausted, size, limit)
	}
	return size, nil
}

// SliceCount returns the number of 2-D slices (extent of axis 2, 1 when the
// volume has fewer than three axes).
func (d *Descriptor) SliceCount() int {
	if d.Dims < 3 {
		return 1
	}
	return d.Extents[2]
}

// TimeCount returns the extent of axis 3, 1 when absent.
func (d *Descriptor) TimeCount() int {
	if d.Dims < 4 {
		return 1
	}
	return d.Extents[3]
}
