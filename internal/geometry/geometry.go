// Package geometry stamps per-slice origins onto an assembled volume.
package geometry

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Orientation says which anatomical direction an axis runs in as its
// index increases.
type Orientation uint8

// Axis orientations.
const (
	Unknown Orientation = iota
	R2L                 // right to left
	L2R                 // left to right
	A2P                 // anterior to posterior
	P2A                 // posterior to anterior
	I2S                 // inferior to superior
	S2I                 // superior to inferior
)

var orientationNames = map[Orientation]string{
	Unknown: "unknown",
	R2L:     "R2L",
	L2R:     "L2R",
	A2P:     "A2P",
	P2A:     "P2A",
	I2S:     "I2S",
	S2I:     "S2I",
}

func (o Orientation) String() string {
	if s, ok := orientationNames[o]; ok {
		return s
	}
	return "invalid"
}

// ParseOrientation accepts the names printed by String, in any case.
func ParseOrientation(s string) (Orientation, error) {
	for o, name := range orientationNames {
		if o != Unknown && strings.EqualFold(strings.TrimSpace(s), name) {
			return o, nil
		}
	}
	return Unknown, fmt.Errorf("unknown orientation %q", s)
}

// Sign returns -1 when coordinates shrink with index in LPS space (L2R,
// P2A, S2I) and +1 otherwise.
func (o Orientation) Sign() float64 {
	switch o {
	case L2R, P2A, S2I:
		return -1
	default:
		return 1
	}
}

// OrientationsForSpace maps an NRRD "space" name to axis orientations.
func OrientationsForSpace(space string) ([]Orientation, bool) {
	switch strings.ToLower(space) {
	case "left-posterior-superior", "lps", "left-posterior-superior-time", "lpst":
		return []Orientation{R2L, A2P, I2S}, true
	case "right-anterior-superior", "ras", "right-anterior-superior-time", "rast":
		return []Orientation{L2R, P2A, I2S}, true
	case "left-anterior-superior", "las", "left-anterior-superior-time", "last":
		return []Orientation{R2L, P2A, I2S}, true
	default:
		return nil, false
	}
}

// Slice is the origin of one 2-D slice at one time index.
type Slice struct {
	Slice      int
	Time       int
	Origin     r3.Vec
	TimeOrigin float64
}

// Frame is the base geometry slices are computed from.
type Frame struct {
	Origin       []float64 // per-axis base origin; missing entries are 0
	Resolutions  []float64
	Orientations []Orientation // per spatial axis; only axis 2 is used
	Slices       int
	Times        int
}

// Slices returns one Slice per slice and time index, time-major. The
// axis-2 coordinate restarts from its base at every time index while the
// time origin advances once per index.
func Slices(f Frame) []Slice {
	slices, times := max(f.Slices, 1), max(f.Times, 1)

	base := r3.Vec{X: at(f.Origin, 0), Y: at(f.Origin, 1), Z: at(f.Origin, 2)}
	step := r3.Vec{Z: sliceSign(f.Orientations) * atOr(f.Resolutions, 2, 1)}
	timeStep := atOr(f.Resolutions, 3, 1)

	out := make([]Slice, 0, slices*times)
	t0 := at(f.Origin, 3)
	for t := range times {
		o := base
		for z := range slices {
			out = append(out, Slice{Slice: z, Time: t, Origin: o, TimeOrigin: t0})
			o = r3.Add(o, step)
		}
		t0 += timeStep
	}
	return out
}

func sliceSign(o []Orientation) float64 {
	if len(o) < 3 {
		return 1
	}
	return o[2].Sign()
}

func at(v []float64, i int) float64 {
	return atOr(v, i, 0)
}

func atOr(v []float64, i int, def float64) float64 {
	if i < len(v) {
		return v[i]
	}
	return def
}
