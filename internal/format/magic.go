// Package format defines the NRRD data model: magic line, sample types,
// units and the mapping from a parsed header to a volume descriptor.
package format

import (
	"strconv"
	"strings"
)

// Magic is the four-letter token opening every NRRD header.
const Magic = "NRRD"

// Supported format versions.
const (
	MinVersion = 1
	MaxVersion = 5
)

// ParseMagic validates the first header line (e.g. "NRRD0004") and
// returns its version number.
func ParseMagic(line string) (int, error) {
	if !strings.HasPrefix(line, Magic) {
		return 0, FieldErrorf("magic", "not an NRRD file: %q", line)
	}
	digits := line[len(Magic):]
	if digits == "" {
		return 0, FieldErrorf("magic", "missing version in %q", line)
	}
	version, err := strconv.Atoi(digits)
	if err != nil {
		return 0, FieldErrorf("magic", "bad version %q", digits)
	}
	if version < MinVersion || version > MaxVersion {
		return 0, FieldErrorf("magic", "unsupported version %d", version)
	}
	return version, nil
}
