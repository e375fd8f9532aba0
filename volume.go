package nrrd

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/dchen116/nrrd/internal/encoder"
)

// Volume is a decoded NRRD volume.
type Volume struct {
	Header     *Header
	Descriptor *Descriptor

	// Data holds every sample in little-endian order, first axis fastest.
	// Vector types interleave their channels.
	Data []byte

	// Slices holds the origin of every slice, time-major.
	Slices []Slice
}

// Len returns the number of scalar elements in Data (channels included).
func (v *Volume) Len() int {
	return len(v.Data) / v.Descriptor.Type.Size()
}

// Float64At returns scalar element i as a float64.
func (v *Volume) Float64At(i int) float64 {
	return encoder.Float64At(v.Data, v.Descriptor.Type, i)
}

// Float64s returns every element as a float64.
func (v *Volume) Float64s() []float64 {
	return encoder.Float64s(v.Data, v.Descriptor.Type)
}

// Stats summarises sample values.
type Stats struct {
	Min, Max     float64
	Mean, StdDev float64
}

// Stats computes summary statistics over every element.
func (v *Volume) Stats() Stats {
	x := v.Float64s()
	if len(x) == 0 {
		return Stats{}
	}
	mean, std := stat.MeanStdDev(x, nil)
	return Stats{
		Min:    floats.Min(x),
		Max:    floats.Max(x),
		Mean:   mean,
		StdDev: std,
	}
}
