// Package sequence resolves the NRRD "data file" field into the list of
// files holding the payload.
package sequence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dchen116/nrrd/internal/format"
)

// Spec describes a numbered family of data files, e.g. "img%04d.raw 1 10 1".
type Spec struct {
	Prefix string // text before the number
	Suffix string // text between the number and Extension
	Width  int    // zero-padding width, 0 for none

	// NumberInExtension is true when the number follows the last dot, as
	// in "slab.%03d". Extension is then empty.
	NumberInExtension bool
	Extension         string

	Start, Stop, Step int

	// SubDim is the number of leading axes one file spans; 0 when the
	// field did not say.
	SubDim int
}

// Kind classifies a data file descriptor.
type Kind uint8

// Descriptor kinds.
const (
	Single Kind = iota
	Pattern
	List
)

// Classify reports which data file form desc uses.
func Classify(desc string) Kind {
	f := strings.Fields(desc)
	switch {
	case len(f) >= 1 && f[0] == "LIST":
		return List
	case len(f) >= 3:
		return Pattern
	default:
		return Single
	}
}

// Parse reads a "pattern start stop [step [subdim]]" descriptor.
func Parse(desc string) (*Spec, error) {
	f := strings.Fields(desc)
	if len(f) < 3 || len(f) > 5 {
		return nil, fmt.Errorf("%w: expected 3 to 5 fields in %q", format.ErrSequenceFormat, desc)
	}

	s, err := parsePattern(f[0])
	if err != nil {
		return nil, err
	}

	nums := make([]int, len(f)-1)
	for i, tok := range f[1:] {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q in %q", format.ErrSequenceFormat, tok, desc)
		}
		nums[i] = n
	}
	s.Start, s.Stop, s.Step = nums[0], nums[1], 1
	if len(nums) > 2 {
		s.Step = nums[2]
	}
	if len(nums) > 3 {
		s.SubDim = nums[3]
		if s.SubDim < 1 {
			return nil, fmt.Errorf("%w: bad sub-dimension %d", format.ErrSequenceFormat, s.SubDim)
		}
	}

	switch {
	case s.Step <= 0:
		return nil, fmt.Errorf("%w: step %d must be positive", format.ErrSequenceFormat, s.Step)
	case s.Start > s.Stop:
		return nil, fmt.Errorf("%w: start %d after stop %d", format.ErrSequenceFormat, s.Start, s.Stop)
	case s.Start < 0:
		return nil, fmt.Errorf("%w: negative start %d", format.ErrSequenceFormat, s.Start)
	case (s.Stop-s.Start)%s.Step != 0:
		return nil, fmt.Errorf("%w: range %d..%d is not a multiple of step %d", format.ErrSequenceFormat, s.Start, s.Stop, s.Step)
	}
	return s, nil
}

// parsePattern splits a printf-style pattern around its "%[0][width]d".
func parsePattern(p string) (*Spec, error) {
	pct := strings.IndexByte(p, '%')
	if pct < 0 {
		return nil, fmt.Errorf("%w: no number placeholder in %q", format.ErrSequenceFormat, p)
	}
	end := pct + 1
	for end < len(p) && p[end] >= '0' && p[end] <= '9' {
		end++
	}
	if end >= len(p) || p[end] != 'd' {
		return nil, fmt.Errorf("%w: bad placeholder in %q", format.ErrSequenceFormat, p)
	}
	if strings.IndexByte(p[end+1:], '%') >= 0 {
		return nil, fmt.Errorf("%w: more than one placeholder in %q", format.ErrSequenceFormat, p)
	}

	s := &Spec{}
	if digits := p[pct+1 : end]; digits != "" {
		s.Width, _ = strconv.Atoi(digits) // digits only, leading zero is the pad flag
	}
	s.Prefix = p[:pct]
	after := p[end+1:]

	dot := strings.LastIndexByte(p, '.')
	if dot > end {
		// number in the base name: img%04d_x.raw
		cut := dot - (end + 1)
		s.Suffix = after[:cut]
		s.Extension = after[cut:]
	} else {
		// number in the extension (img.%03d) or no extension at all
		slash := strings.LastIndexAny(p, `/\`)
		s.NumberInExtension = dot > slash && dot < pct
		s.Suffix = after
	}
	return s, nil
}

// Count returns the number of files in the sequence.
func (s *Spec) Count() int {
	return (s.Stop-s.Start)/s.Step + 1
}

// Name returns the file name for number v.
func (s *Spec) Name(v int) string {
	return s.Prefix + fmt.Sprintf("%0*d", s.Width, v) + s.Suffix + s.Extension
}

// Filenames returns every name from Start to Stop inclusive, in order.
func (s *Spec) Filenames() []string {
	names := make([]string, 0, s.Count())
	for v := s.Start; v <= s.Stop; v += s.Step {
		names = append(names, s.Name(v))
	}
	return names
}

// SlabElements returns how many elements each file holds for a volume
// with the given declared sizes.
func (s *Spec) SlabElements(sizes []int) (int64, error) {
	var total int64 = 1
	for _, n := range sizes {
		total *= int64(n)
	}
	files := int64(s.Count())

	if s.SubDim == 0 {
		if total%files != 0 {
			return 0, fmt.Errorf("%w: %d elements do not split evenly over %d files", format.ErrSequenceFormat, total, files)
		}
		return total / files, nil
	}

	if s.SubDim > len(sizes) {
		return 0, fmt.Errorf("%w: sub-dimension %d exceeds dimension %d", format.ErrSequenceFormat, s.SubDim, len(sizes))
	}
	var per int64 = 1
	for _, n := range sizes[:s.SubDim] {
		per *= int64(n)
	}
	if per*files != total {
		return 0, fmt.Errorf("%w: %d files of %d elements do not cover %d elements", format.ErrSequenceFormat, files, per, total)
	}
	return per, nil
}
