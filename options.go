package nrrd

import "go.uber.org/zap"

// Options configures Read. The zero value reads slabs one at a time with
// no size limit and no logging.
type Options struct {
	Workers  int    // slabs read concurrently (default: 1)
	TempDir  string // where compressed slabs are inflated (default: os.TempDir)
	MaxBytes int64  // refuse volumes larger than this; 0 for no limit

	// Origin and Orientations override what the header implies for
	// per-slice geometry.
	Origin       []float64
	Orientations []Orientation

	Logger *zap.Logger
}

func (o *Options) withDefaults() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.Workers <= 0 {
		out.Workers = 1
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	return &out
}
