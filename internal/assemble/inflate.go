package assemble

import (
	"compress/bzip2"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/dchen116/nrrd/internal/format"
)

// inflate decompresses r[offset:length] into a temporary file and returns
// it with its size. The caller removes it with removeTemp.
func inflate(r io.ReaderAt, offset, length int64, enc format.Encoding, dir string) (*os.File, int64, error) {
	section := io.NewSectionReader(r, offset, length-offset)

	var zr io.Reader
	switch enc {
	case format.EncodingGzip:
		gz, err := gzip.NewReader(section)
		if err != nil {
			return nil, 0, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer gz.Close() //nolint:errcheck // read side only
		zr = gz
	case format.EncodingBzip2:
		zr = bzip2.NewReader(section)
	default:
		return nil, 0, fmt.Errorf("encoding %s is not compressed", enc)
	}

	tmp, err := os.CreateTemp(dir, "nrrd-slab-*.raw")
	if err != nil {
		return nil, 0, err
	}
	n, err := io.Copy(tmp, zr)
	if err != nil {
		removeTemp(tmp)
		return nil, 0, fmt.Errorf("inflating %s stream: %w", enc, err)
	}
	return tmp, n, nil
}

func removeTemp(f *os.File) {
	_ = f.Close()
	_ = os.Remove(f.Name())
}
