// Package dxf implements an ASCII DXF codec over a boundary
// representation geometry kernel. Reading happens in three stages:
// a group-code tokenizer, an entity assembler and per-entity geometry
// builders. Writing classifies kernel curves back into the fixed DXF
// entity grammar.
package dxf

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedGroupCode reports a code line that does not parse as an
// integer. DXF has no recovery unit smaller than the whole entity
// stream, so this aborts the import.
var ErrMalformedGroupCode = errors.New("dxf: malformed group code")

// Token is one group code/value pair from the record stream.
type Token struct {
	Code  int
	Value string
}

// Tokenizer splits DXF text into an ordered sequence of tokens.
// DXF is strictly line-paired: a code line is always followed by
// exactly one value line.
type Tokenizer struct {
	rest []byte
	line int
}

// NewTokenizer returns a tokenizer over the raw DXF bytes.
func NewTokenizer(data []byte) *Tokenizer {
	return &Tokenizer{rest: data}
}

// nextLine returns the next trimmed, non-blank line. Lines are split
// directly off the input slice, so their length is unbounded; nothing
// in the stream can end iteration before the last byte.
func (t *Tokenizer) nextLine() (string, bool) {
	for len(t.rest) > 0 {
		var raw []byte
		if i := bytes.IndexByte(t.rest, '\n'); i >= 0 {
			raw, t.rest = t.rest[:i], t.rest[i+1:]
		} else {
			raw, t.rest = t.rest, nil
		}
		t.line++
		line := strings.Trim(string(raw), " \t\r\n")
		if line == "" {
			continue
		}
		return line, true
	}
	return "", false
}

// isCodeLine reports whether the trimmed line starts like an integer
// group code. Negative codes are legal in some header and seqend
// contexts.
func isCodeLine(line string) bool {
	if line[0] >= '0' && line[0] <= '9' {
		return true
	}
	return line[0] == '-' && len(line) > 1 && line[1] >= '0' && line[1] <= '9'
}

// Next returns the next token. ok is false at end of input. A trailing
// code with no paired value line is dropped, not emitted.
func (t *Tokenizer) Next() (tok Token, ok bool, err error) {
	for {
		line, more := t.nextLine()
		if !more {
			return Token{}, false, nil
		}
		if !isCodeLine(line) {
			// A stray value line with no preceding code carries no
			// meaning on its own.
			continue
		}
		code, convErr := strconv.Atoi(line)
		if convErr != nil {
			return Token{}, false, fmt.Errorf("%w: %q at line %d", ErrMalformedGroupCode, line, t.line)
		}
		value, more := t.nextLine()
		if !more {
			return Token{}, false, nil
		}
		return Token{Code: code, Value: value}, true, nil
	}
}
