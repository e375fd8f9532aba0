// Package parser scans NRRD header text into a format.Header.
package parser

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/dchen116/nrrd/internal/format"
)

// Key/value keys with special meaning, lower-cased.
const (
	keyModality       = "modality"
	keyBValue         = "dwmri_b-value"
	keyGradientPrefix = "dwmri_gradient_"
	keyNEXPrefix      = "dwmri_nex_"
)

// Parser builds a header from a stream of tokenized lines.
type Parser struct {
	scanner *Scanner
	header  *format.Header
}

// New creates a parser reading header text from r.
func New(r io.Reader) *Parser {
	return &Parser{scanner: NewScanner(r)}
}

// Parse reads a complete header from r.
func Parse(r io.Reader) (*format.Header, error) {
	return New(r).Header()
}

// Header scans the header and returns the finished record. The reader is
// left positioned somewhere after the header; use Header.HeaderEnd to find
// the payload.
func (p *Parser) Header() (*format.Header, error) {
	if p.header != nil {
		return p.header, nil
	}

	line, err := p.scanner.Next()
	if errors.Is(err, io.EOF) {
		return nil, format.FieldErrorf("magic", "empty header")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", format.ErrIO, err)
	}

	h := &format.Header{
		Gradients:   map[int][3]float64{},
		Excitations: map[int]int{},
		KeyValues:   map[string]string{},
	}
	if h.Version, err = format.ParseMagic(line); err != nil {
		return nil, err
	}

	for {
		line, err := p.scanner.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading header: %w", format.ErrIO, err)
		}
		if err := interpret(h, line); err != nil {
			return nil, err
		}
	}
	h.HeaderEnd = p.scanner.Offset()

	if err := validate(h); err != nil {
		return nil, err
	}
	expandExcitations(h)

	p.header = h
	return h, nil
}

// interpret classifies one line as a key/value pair ("key:=value") or a
// field ("id: descriptor") and records it.
func interpret(h *format.Header, line string) error {
	if i := strings.Index(line, ":="); i >= 1 {
		return keyValue(h, line[:i], line[i+2:])
	}

	i := strings.IndexByte(line, ':')
	if i < 1 {
		h.Unrecognised = append(h.Unrecognised, line)
		return nil
	}
	id := strings.TrimSpace(line[:i])
	desc := strings.TrimSpace(line[i+1:])

	fn, ok := fields[fieldKey(id)]
	if !ok {
		h.Unrecognised = append(h.Unrecognised, line)
		return nil
	}
	return fn(h, strings.ToLower(id), desc)
}

func keyValue(h *format.Header, key, value string) error {
	lower := strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	switch lower {
	case keyModality:
		h.Modality = value
		return nil
	case keyBValue:
		v, err := ParseFloat(key, value)
		if err != nil {
			return err
		}
		h.BValue = &v
		return nil
	}

	if idx, ok := keyIndex(lower, keyGradientPrefix); ok {
		v, err := ParseFloats(key, value, 3)
		if err != nil {
			return err
		}
		h.Gradients[idx] = [3]float64{v[0], v[1], v[2]}
		return nil
	}
	if idx, ok := keyIndex(lower, keyNEXPrefix); ok {
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return format.FieldErrorf(key, "bad repetition count %q", value)
		}
		h.Excitations[idx] = n
		return nil
	}

	h.KeyValues[strings.TrimSpace(key)] = value
	return nil
}

// keyIndex returns the numeric suffix of key after prefix.
func keyIndex(key, prefix string) (int, bool) {
	if !strings.HasPrefix(key, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(key[len(prefix):])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func validate(h *format.Header) error {
	switch {
	case h.Type == format.Unknown:
		return format.FieldErrorf("type", "missing")
	case h.Dimension == 0:
		return format.FieldErrorf("dimension", "missing")
	case h.Sizes == nil:
		return format.FieldErrorf("sizes", "missing")
	}
	return nil
}

// expandExcitations copies gradient i to i+1..i+k-1 for every repetition
// count k declared at index i.
func expandExcitations(h *format.Header) {
	indices := make([]int, 0, len(h.Excitations))
	for i := range h.Excitations {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	for _, i := range indices {
		g, ok := h.Gradients[i]
		if !ok {
			continue
		}
		for j := i + 1; j < i+h.Excitations[i]; j++ {
			h.Gradients[j] = g
		}
	}
}
