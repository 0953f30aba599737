// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// maxRecordLines bounds how many physical lines one quoted record may span
// before its opening quote is treated as unterminated.
const maxRecordLines = 500

// recordScanner splits CSV input into logical records. A quoted field may
// span lines; a quote that is still open at end of input or after
// maxRecordLines lines marks the record's first line as malformed. That
// line is dropped and the lines after it are scanned again, so one bad row
// cannot absorb the rows that follow it.
type recordScanner struct {
	br      *bufio.Reader
	pending []string
	eof     bool
	skipped int
}

func newRecordScanner(r io.Reader) *recordScanner {
	return &recordScanner{br: bufio.NewReader(r)}
}

// Next returns the next logical record with its line endings, or io.EOF.
func (s *recordScanner) Next() (string, error) {
	for {
		var lines []string
		open := false
		for len(lines) < maxRecordLines {
			line, ok, err := s.line()
			if err != nil {
				return "", err
			}
			if !ok {
				break
			}
			lines = append(lines, line)
			if open = scanQuotes(line, open); !open {
				break
			}
		}
		if len(lines) == 0 {
			return "", io.EOF
		}
		if !open {
			return strings.Join(lines, ""), nil
		}

		s.skipped++
		rest := make([]string, 0, len(lines)-1+len(s.pending))
		rest = append(rest, lines[1:]...)
		s.pending = append(rest, s.pending...)
	}
}

// Skipped reports how many lines were dropped as malformed.
func (s *recordScanner) Skipped() int {
	return s.skipped
}

func (s *recordScanner) line() (string, bool, error) {
	if len(s.pending) > 0 {
		line := s.pending[0]
		s.pending = s.pending[1:]
		return line, true, nil
	}
	if s.eof {
		return "", false, nil
	}
	line, err := s.br.ReadString('\n')
	if errors.Is(err, io.EOF) {
		s.eof = true
		return line, line != "", nil
	}
	if err != nil {
		return "", false, err
	}
	return line, true, nil
}

// scanQuotes walks one physical line and reports whether a quoted field is
// still open at its end. A quote opens a field only at the start of the
// field; inside a quoted field a doubled quote is an escaped quote.
func scanQuotes(line string, open bool) bool {
	fieldStart := !open
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case open:
			if c == '"' {
				if i+1 < len(line) && line[i+1] == '"' {
					i++
					continue
				}
				open = false
			}
		case c == '"' && fieldStart:
			open = true
		}
		fieldStart = !open && c == ','
	}
	return open
}
