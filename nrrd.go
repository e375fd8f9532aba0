// Package nrrd reads NRRD volumes: a text header followed by raw or
// compressed samples stored in the same file, in a detached file, or in a
// numbered sequence of files.
package nrrd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dchen116/nrrd/internal/assemble"
	"github.com/dchen116/nrrd/internal/format"
	"github.com/dchen116/nrrd/internal/geometry"
	"github.com/dchen116/nrrd/internal/parser"
	"github.com/dchen116/nrrd/internal/sequence"
)

// ReadHeader parses the header of the file at path.
func ReadHeader(path string) (*Header, error) {
	h, _, err := readHeader(path)
	return h, err
}

// readHeader also returns the path the header was found at, which differs
// from path when only the alternate extension case exists.
func readHeader(path string) (*Header, string, error) {
	found, ok := sequence.Locate(path)
	if !ok {
		return nil, "", fmt.Errorf("%w: header %s: %w", ErrIO, path, os.ErrNotExist)
	}
	f, err := os.Open(found) //nolint:gosec // caller names the file
	if err != nil {
		return nil, "", fmt.Errorf("%w: opening header: %w", ErrIO, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	h, err := parser.Parse(f)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", found, err)
	}
	return h, found, nil
}

// Read decodes the volume whose header is at path. Nothing is allocated
// for samples until the header, layout and data files have all been
// validated; any later failure discards the whole volume.
func Read(ctx context.Context, path string, opts *Options) (*Volume, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	h, path, err := readHeader(path)
	if err != nil {
		return nil, err
	}
	for _, line := range h.Unrecognised {
		log.Debug("ignoring header line", zap.String("line", line))
	}

	d, err := format.Map(h)
	if err != nil {
		return nil, err
	}
	if d.Type.Size() > 1 && h.Endian == format.EndianUnset {
		log.Warn("no endian field for multi-byte samples, assuming little endian", zap.String("file", path))
	}
	if d.Type.IsVector() {
		log.Debug("leading axis read as channels",
			zap.Int("channels", d.Channels), zap.Stringer("type", d.Type))
	}

	size, err := d.ByteSize(opts.MaxBytes)
	if err != nil {
		return nil, err
	}

	plans, err := plan(path, h, d)
	if err != nil {
		return nil, err
	}
	data, err := allocate(size)
	if err != nil {
		return nil, err
	}

	err = assemble.Assemble(ctx, plans, data, &assemble.Options{
		Workers: opts.Workers,
		TempDir: opts.TempDir,
		Logger:  log,
	})
	if err != nil {
		return nil, err
	}

	v := &Volume{Header: h, Descriptor: d, Data: data}
	v.Slices = geometry.Slices(frame(h, d, opts))

	log.Debug("volume read",
		zap.String("file", path),
		zap.Ints("extents", d.Extents),
		zap.Stringer("type", d.Type),
		zap.Int("slabs", len(plans)))
	return v, nil
}

// allocate reports a make that the runtime rejects as ErrResourceExhausted.
func allocate(size int64) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("%w: allocating %d bytes: %v", ErrResourceExhausted, size, r)
		}
	}()
	return make([]byte, size), nil
}

// plan resolves where every slab of the volume lives. headerPath is the
// file the header was read from.
func plan(headerPath string, h *Header, d *Descriptor) ([]assemble.Plan, error) {
	total, err := d.Elements()
	if err != nil {
		return nil, err
	}
	base := assemble.Plan{
		LineSkip: h.LineSkip,
		ByteSkip: h.ByteSkip,
		Encoding: h.Encoding,
		Endian:   h.Endian,
		Width:    d.Type.Size(),
		Elements: total,
	}

	if h.DataFile == "" {
		p := base
		p.Path = headerPath
		p.Base = h.HeaderEnd
		return []assemble.Plan{p}, nil
	}

	dir := filepath.Dir(headerPath)
	switch sequence.Classify(h.DataFile) {
	case sequence.List:
		return nil, format.FieldErrorf("data file", "%w: LIST form", ErrUnsupported)

	case sequence.Pattern:
		seq, err := sequence.Parse(h.DataFile)
		if err != nil {
			return nil, err
		}
		per, err := seq.SlabElements(h.Sizes)
		if err != nil {
			return nil, err
		}
		names := seq.Filenames()
		plans := make([]assemble.Plan, len(names))
		for i, name := range names {
			path, err := locate(dir, name)
			if err != nil {
				return nil, err
			}
			plans[i] = base
			plans[i].Path = path
			plans[i].Elements = per
			plans[i].Dest = int64(i) * per * int64(base.Width)
		}
		return plans, nil

	default:
		path, err := locate(dir, h.DataFile)
		if err != nil {
			return nil, err
		}
		p := base
		p.Path = path
		return []assemble.Plan{p}, nil
	}
}

func locate(dir, name string) (string, error) {
	want := sequence.Join(dir, name)
	path, ok := sequence.Locate(want)
	if !ok {
		return "", fmt.Errorf("%w: data file %s: %w", ErrIO, want, os.ErrNotExist)
	}
	return path, nil
}

// frame picks the geometry base: options first, then the header.
func frame(h *Header, d *Descriptor, opts *Options) geometry.Frame {
	f := geometry.Frame{
		Origin:       d.Origin,
		Resolutions:  d.Resolutions,
		Orientations: opts.Orientations,
		Slices:       d.SliceCount(),
		Times:        d.TimeCount(),
	}
	if opts.Origin != nil {
		f.Origin = opts.Origin
	}
	if len(f.Orientations) == 0 {
		f.Orientations, _ = geometry.OrientationsForSpace(h.Space)
	}
	return f
}
