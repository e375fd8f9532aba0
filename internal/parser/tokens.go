package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/dchen116/nrrd/internal/format"
)

// Delim selects how a descriptor is split into tokens.
type Delim uint8

// Delimiter kinds.
const (
	Whitespace Delim = iota // runs of spaces or tabs
	Quoted                  // content between pairs of double quotes
)

// Tokens walks a descriptor string one token at a time.
type Tokens struct {
	s     string
	delim Delim
	pos   int
}

// NewTokens returns a token sequence over s.
func NewTokens(s string, delim Delim) *Tokens {
	return &Tokens{s: s, delim: delim}
}

// Reset rewinds to the first token.
func (t *Tokens) Reset() {
	t.pos = 0
}

// Next returns the next token and true, or "" and false when exhausted.
func (t *Tokens) Next() (string, bool) {
	if t.delim == Quoted {
		return t.nextQuoted()
	}
	for t.pos < len(t.s) && isSpace(t.s[t.pos]) {
		t.pos++
	}
	if t.pos >= len(t.s) {
		return "", false
	}
	start := t.pos
	for t.pos < len(t.s) && !isSpace(t.s[t.pos]) {
		t.pos++
	}
	return t.s[start:t.pos], true
}

func (t *Tokens) nextQuoted() (string, bool) {
	open := strings.IndexByte(t.s[t.pos:], '"')
	if open < 0 {
		t.pos = len(t.s)
		return "", false
	}
	start := t.pos + open + 1
	end := strings.IndexByte(t.s[start:], '"')
	if end < 0 {
		t.pos = len(t.s)
		return "", false
	}
	t.pos = start + end + 1
	return t.s[start : start+end], true
}

// rest reports whether anything but whitespace remains.
func (t *Tokens) rest() bool {
	return strings.TrimSpace(t.s[t.pos:]) != ""
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// Split returns exactly n tokens of s.
func Split(field, s string, delim Delim, n int) ([]string, error) {
	tok := NewTokens(s, delim)
	out := make([]string, 0, n)
	for len(out) < n {
		v, ok := tok.Next()
		if !ok {
			return nil, format.FieldErrorf(field, "expected %d values, found %d", n, len(out))
		}
		out = append(out, v)
	}
	if tok.rest() {
		return nil, format.FieldErrorf(field, "expected %d values, found more in %q", n, s)
	}
	return out, nil
}

// ParseFloats parses exactly n whitespace-separated numbers. "nan" in any
// case is accepted as NaN.
func ParseFloats(field, s string, n int) ([]float64, error) {
	toks, err := Split(field, s, Whitespace, n)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i, tok := range toks {
		v, err := parseFloat(field, tok)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ParseInts parses exactly n whitespace-separated non-negative integers.
func ParseInts(field, s string, n int) ([]int, error) {
	toks, err := Split(field, s, Whitespace, n)
	if err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i, tok := range toks {
		v, err := strconv.Atoi(tok)
		if err != nil || v < 0 {
			return nil, format.FieldErrorf(field, "bad integer %q", tok)
		}
		out[i] = v
	}
	return out, nil
}

// ParseStrings returns exactly n quoted strings.
func ParseStrings(field, s string, n int) ([]string, error) {
	return Split(field, s, Quoted, n)
}

// ParseVectors parses n parenthesised vectors such as "(1,0,0) none (0,0,1)".
// A "none" token yields a nil vector. Non-nil vectors must have width
// components when width > 0.
func ParseVectors(field, s string, n, width int) ([][]float64, error) {
	toks, err := splitVectors(field, s, n)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, n)
	for i, tok := range toks {
		if strings.EqualFold(tok, "none") {
			continue
		}
		v, err := ParseVector(field, tok)
		if err != nil {
			return nil, err
		}
		if width > 0 && len(v) != width {
			return nil, format.FieldErrorf(field, "vector %q has %d components, want %d", tok, len(v), width)
		}
		out[i] = v
	}
	return out, nil
}

// ParseVector parses one "(a,b,c)" vector.
func ParseVector(field, s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return nil, format.FieldErrorf(field, "bad vector %q", s)
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := parseFloat(field, strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// splitVectors splits on whitespace outside parentheses, so vectors may
// carry spaces after their commas.
func splitVectors(field, s string, n int) ([]string, error) {
	var out []string
	depth, start := 0, -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '(':
			if depth == 0 {
				start = i
			}
			depth++
		case c == ')':
			depth--
			if depth == 0 && start >= 0 {
				out = append(out, s[start:i+1])
				start = -1
			}
		case depth == 0 && !isSpace(c):
			j := i
			for j < len(s) && !isSpace(s[j]) && s[j] != '(' {
				j++
			}
			out = append(out, s[i:j])
			i = j - 1
		}
	}
	if depth != 0 || len(out) != n {
		return nil, format.FieldErrorf(field, "expected %d vectors in %q", n, s)
	}
	return out, nil
}

func parseFloat(field, tok string) (float64, error) {
	if strings.EqualFold(tok, "nan") {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, format.FieldErrorf(field, "bad number %q", tok)
	}
	return v, nil
}

// ParseFloat parses a single number, accepting "nan".
func ParseFloat(field, s string) (float64, error) {
	return parseFloat(field, strings.TrimSpace(s))
}
