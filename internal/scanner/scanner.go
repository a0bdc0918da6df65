// Package scanner parses the event-data text format: a sequence of
// key:"value" pairs separated by optional whitespace. Keys run up to the
// first ':' and are taken verbatim; values are double-quoted with \" as
// the only escape.
package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// cursor is a forward-only position over the input. Each Parse call owns
// exactly one cursor; there is no rewinding.
type cursor struct {
	input string
	pos   int
}

func (c *cursor) peek() (rune, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.pos:])
	return r, true
}

func (c *cursor) next() (rune, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += size
	return r, true
}

func (c *cursor) skipWhitespace() {
	for {
		r, ok := c.peek()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		c.next()
	}
}

// Parse scans input in a single pass and returns the key/value mapping.
// A key repeated later in the input overwrites the earlier value. The
// first malformed segment aborts the parse; no partial mapping is
// returned.
func Parse(input string) (map[string]string, error) {
	cur := &cursor{input: input}
	pairs := make(map[string]string)

	for {
		cur.skipWhitespace()
		if _, ok := cur.peek(); !ok {
			return pairs, nil
		}

		key, err := parseKey(cur)
		if err != nil {
			return nil, err
		}

		value, err := parseValue(cur)
		if err != nil {
			return nil, err
		}

		pairs[key] = value
	}
}

// parseKey accumulates runes verbatim until ':', which is consumed and
// excluded. Only whitespace before the key is skipped; whitespace inside
// the key is preserved and the key is never trimmed or validated.
func parseKey(cur *cursor) (string, error) {
	cur.skipWhitespace()

	start := cur.pos
	var key strings.Builder

	for {
		r, ok := cur.next()
		if !ok {
			return "", scanError(ErrInvalidKey, "no ':' after position %d", start)
		}
		if r == ':' {
			return key.String(), nil
		}
		key.WriteRune(r)
	}
}

// parseValue reads a double-quoted string. The only escape form is the
// two-character sequence \" which decodes to a literal '"'.
func parseValue(cur *cursor) (string, error) {
	cur.skipWhitespace()

	start := cur.pos
	r, ok := cur.next()
	if !ok {
		return "", scanError(ErrInvalidValue, "expected '\"' at position %d, got end of input", start)
	}
	if r != '"' {
		return "", scanError(ErrInvalidValue, "expected '\"' at position %d, got %q", start, r)
	}

	var value strings.Builder
	for {
		r, ok := cur.next()
		if !ok {
			return "", scanError(ErrInvalidValue, "unterminated value starting at position %d", start)
		}

		switch r {
		case '"':
			return value.String(), nil
		case '\\':
			escaped, ok := cur.next()
			if !ok {
				return "", scanError(ErrInvalidValue, "unterminated escape sequence at position %d", cur.pos)
			}
			if escaped != '"' {
				return "", scanError(ErrInvalidValue, "unsupported escape sequence \\%c at position %d", escaped, cur.pos)
			}
			value.WriteRune('"')
		default:
			value.WriteRune(r)
		}
	}
}
