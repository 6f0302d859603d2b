package equipment

import (
	"bytes"
	"strings"
)

// Scanner walks a buffer holding one or more brace-delimited equipment
// objects and yields one Record per object. Objects do not nest and quoted
// strings have no escapes. The scan position only moves forward, so a key in
// one object is never read as part of another.
type Scanner struct {
	buf      []byte
	pos      int
	consumed int
}

// NewScanner returns a Scanner positioned at the start of data.
func NewScanner(data []byte) *Scanner {
	return &Scanner{buf: data}
}

// Next scans the next object. It reports false once no opening brace is left.
func (s *Scanner) Next() (Record, bool) {
	open := bytes.IndexByte(s.buf[s.pos:], '{')
	if open < 0 {
		s.pos = len(s.buf)
		return Record{}, false
	}
	rec, end := s.object(s.pos + open + 1)
	s.pos = end
	s.consumed = end
	return rec, true
}

// Consumed is the offset just past the last object returned by Next.
// An unterminated final object counts as running to the end of the buffer.
func (s *Scanner) Consumed() int { return s.consumed }

// Parse scans every object in data.
func Parse(data []byte) ([]Record, int) {
	var out []Record
	sc := NewScanner(data)
	for {
		rec, ok := sc.Next()
		if !ok {
			break
		}
		out = append(out, rec)
	}
	return out, sc.Consumed()
}

// object reads key/value pairs starting at i (just past the opening brace)
// and returns the record plus the position after the closing brace.
func (s *Scanner) object(i int) (Record, int) {
	var rec Record
	n := len(s.buf)
	for {
		i = s.skip(i, " \t\r\n,")
		if i >= n {
			return rec, n
		}
		var key string
		switch s.buf[i] {
		case '}':
			return rec, i + 1
		case ':':
			// Stray separator with no key in front of it.
			i++
			continue
		case '"':
			key, i = s.quoted(i)
		default:
			key, i = s.bare(i, ":,} \t\r\n")
		}

		i = s.skip(i, " \t\r\n")
		if i >= n || s.buf[i] != ':' {
			continue
		}
		i = s.skip(i+1, " \t\r\n")
		if i >= n {
			return rec, n
		}

		var raw string
		if s.buf[i] == '"' {
			raw, i = s.quoted(i)
		} else {
			raw, i = s.bare(i, ",}")
			raw = strings.TrimSpace(raw)
		}
		rec.set(key, raw)
	}
}

// quoted reads a string starting at the opening quote at i. An unterminated
// string runs to the end of the buffer.
func (s *Scanner) quoted(i int) (string, int) {
	start := i + 1
	end := bytes.IndexByte(s.buf[start:], '"')
	if end < 0 {
		return string(s.buf[start:]), len(s.buf)
	}
	return string(s.buf[start : start+end]), start + end + 1
}

// bare reads up to, but not including, the first byte found in stop.
func (s *Scanner) bare(i int, stop string) (string, int) {
	start := i
	for i < len(s.buf) && !isOneOf(s.buf[i], stop) {
		i++
	}
	return string(s.buf[start:i]), i
}

func (s *Scanner) skip(i int, set string) int {
	for i < len(s.buf) && isOneOf(s.buf[i], set) {
		i++
	}
	return i
}

func isOneOf(c byte, set string) bool {
	return strings.IndexByte(set, c) >= 0
}
