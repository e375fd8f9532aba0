package parser

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// Scanner yields trimmed, comment-stripped header lines. It stops at the
// first blank line or at end of input and records how many bytes the
// header occupied.
type Scanner struct {
	reader *bufio.Reader
	line   []byte // reusable buffer for reading lines
	offset int64
	done   bool
}

// NewScanner creates a Scanner reading header text from r.
func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{line: make([]byte, 0, 256)}
	s.Reset(r)
	return s
}

// Reset discards all state and starts scanning r from its current position.
func (s *Scanner) Reset(r io.Reader) {
	if s.reader == nil {
		s.reader = bufio.NewReaderSize(r, 64<<10)
	} else {
		s.reader.Reset(r)
	}
	s.line = s.line[:0]
	s.offset = 0
	s.done = false
}

// Offset returns the number of bytes consumed so far. Once Next has
// returned io.EOF this is the offset of the first payload byte.
func (s *Scanner) Offset() int64 {
	return s.offset
}

// Next returns the next non-empty header line. Lines consisting only of a
// comment are skipped. Returns io.EOF at the end of the header.
func (s *Scanner) Next() (string, error) {
	for !s.done {
		raw, err := s.readLine()
		if errors.Is(err, io.EOF) {
			s.done = true
			if len(raw) == 0 {
				break
			}
		} else if err != nil {
			return "", err
		}

		if len(bytes.TrimSpace(raw)) == 0 {
			s.done = true
			break
		}

		if i := bytes.IndexByte(raw, '#'); i >= 0 {
			raw = raw[:i]
		}
		if text := bytes.TrimSpace(raw); len(text) > 0 {
			return string(text), nil
		}
	}
	return "", io.EOF
}

// readLine reads a line from the input, stripping the newline, and advances
// the byte offset by the full length read.
func (s *Scanner) readLine() ([]byte, error) {
	s.line = s.line[:0]

	for {
		segment, err := s.reader.ReadSlice('\n')
		s.offset += int64(len(segment))
		s.line = append(s.line, segment...)

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil {
			return s.line, err
		}
		break
	}

	s.line = bytes.TrimSuffix(s.line, []byte{'\n'})
	s.line = bytes.TrimSuffix(s.line, []byte{'\r'})
	return s.line, nil
}
