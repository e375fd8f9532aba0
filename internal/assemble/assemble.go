// Package assemble reads NRRD payload slabs into a volume buffer.
package assemble

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dchen116/nrrd/internal/encoder"
	"github.com/dchen116/nrrd/internal/format"
)

// Plan describes one slab: the file it lives in and where its bytes go.
type Plan struct {
	Path     string
	Base     int64 // offset of the slab's stream in Path (header length for attached data)
	LineSkip int
	ByteSkip int64 // -1 reads the last Size() bytes of the stream
	Encoding format.Encoding
	Endian   format.Endian
	Width    int   // bytes per element
	Elements int64 // elements in this slab
	Dest     int64 // byte offset in the output buffer
}

// Size returns the slab's payload size in bytes.
func (p *Plan) Size() int64 {
	return p.Elements * int64(p.Width)
}

// Options configures assembly.
type Options struct {
	Workers int    // slabs read concurrently (default: 1)
	TempDir string // directory for inflated slabs (default: os.TempDir)
	Logger  *zap.Logger
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

// Assemble reads every slab into dst. Slab destinations must be disjoint
// and lie within dst. Any failure aborts the whole volume.
func Assemble(ctx context.Context, plans []Plan, dst []byte, opts *Options) error {
	opts = opts.withDefaults()

	for i := range plans {
		p := &plans[i]
		if p.Dest < 0 || p.Dest+p.Size() > int64(len(dst)) {
			return fmt.Errorf("slab %d: destination %d+%d outside buffer of %d bytes", i, p.Dest, p.Size(), len(dst))
		}
	}

	// Single worker path (simpler, no goroutine overhead)
	if opts.Workers == 1 || len(plans) == 1 {
		for i := range plans {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := readSlab(&plans[i], dst, opts); err != nil {
				return err
			}
		}
		return nil
	}

	return assembleParallel(ctx, plans, dst, opts)
}

func assembleParallel(ctx context.Context, plans []Plan, dst []byte, opts *Options) error {
	jobs := make(chan *Plan, opts.Workers*2)

	g, ctx := errgroup.WithContext(ctx)

	// Start workers
	for range opts.Workers {
		g.Go(func() error {
			for p := range jobs {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if err := readSlab(p, dst, opts); err != nil {
					return err
				}
			}
			return nil
		})
	}

	// Producer: dispatch slabs in ascending order
	g.Go(func() error {
		defer close(jobs)
		for i := range plans {
			select {
			case jobs <- &plans[i]:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	return g.Wait()
}

// readSlab performs line skip, decompression, byte skip and the raw read
// for one slab, writing into its disjoint range of dst.
func readSlab(p *Plan, dst []byte, opts *Options) error {
	f, err := os.Open(p.Path) //nolint:gosec // reader opens files named by the header
	if err != nil {
		return ioError("opening data file", p.Path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	fi, err := f.Stat()
	if err != nil {
		return ioError("stat data file", p.Path, err)
	}

	offset := p.Base
	if p.LineSkip > 0 {
		if offset, err = skipLines(f, offset, p.LineSkip); err != nil {
			return ioError("skipping lines in", p.Path, err)
		}
	}

	var src io.ReaderAt = f
	length := fi.Size()
	if p.Encoding.Compressed() {
		tmp, n, err := inflate(f, offset, length, p.Encoding, opts.TempDir)
		if err != nil {
			return ioError("decompressing", p.Path, err)
		}
		defer removeTemp(tmp)
		src, offset, length = tmp, 0, n
	}

	start, err := readOffset(offset, length, p.ByteSkip, p.Size())
	if err != nil {
		return ioError("locating data in", p.Path, err)
	}

	opts.Logger.Debug("reading slab",
		zap.String("file", p.Path),
		zap.Int64("offset", start),
		zap.Int64("bytes", p.Size()),
		zap.Int64("dest", p.Dest),
		zap.Stringer("encoding", p.Encoding))

	out := dst[p.Dest : p.Dest+p.Size()]
	if _, err := io.ReadFull(io.NewSectionReader(src, start, p.Size()), out); err != nil {
		return ioError("reading", p.Path, err)
	}
	return encoder.ToLittleEndian(out, p.Width, p.Endian)
}

// readOffset resolves the first payload byte. A negative skip selects the
// last size bytes of a stream of the given length.
func readOffset(base, length, skip, size int64) (int64, error) {
	if skip >= 0 {
		return base + skip, nil
	}
	if length-size < 0 {
		return 0, fmt.Errorf("stream of %d bytes is shorter than payload of %d: %w", length, size, io.ErrUnexpectedEOF)
	}
	return length - size, nil
}

// skipLines returns the offset just past the n-th line feed at or after
// offset.
func skipLines(r io.ReaderAt, offset int64, n int) (int64, error) {
	br := bufio.NewReader(io.NewSectionReader(r, offset, 1<<62))
	for seen := 0; seen < n; {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("found %d of %d lines: %w", seen, n, io.ErrUnexpectedEOF)
		}
		if err != nil {
			return 0, err
		}
		offset++
		if b == '\n' {
			seen++
		}
	}
	return offset, nil
}

func ioError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", format.ErrIO, op, path, err)
}
