// Package derive computes the fifth event value from the four that appear
// in the input.
//
// The values one..four decode, after XOR with 0x17F, to an increasing
// integer sequence (43, 47, 53, 59 for the known event data). The next
// term follows the recurrence
//
//	x[i+2] = x[i+1] + firstMismatchingBit(x[i], x[i+1]) * i
//
// where firstMismatchingBit is the 1-based index of the lowest bit in
// which the two terms differ, and i counts terms from 1. The derived term
// is XORed back with 0x17F before it is re-encoded.
package derive

import (
	"errors"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"
)

// The event hint reads "Hello, try XOR with 0x17F".
const xorKey = 0x17F

// Key is the mapping key the derived value is stored under.
const Key = "five"

var sourceKeys = [...]string{"one", "two", "three", "four"}

// ErrMissingValue indicates that one of the four source keys is absent
// from the mapping.
var ErrMissingValue = errors.New("missing source value")

// ErrBadValue indicates a source value that does not decode as a 16-bit
// hexadecimal integer.
var ErrBadValue = errors.New("bad source value")

// FifthValue derives the fifth value from the keys one..four in pairs.
// When trace is non-nil, one working line per source key is written to it.
func FifthValue(pairs map[string]string, trace io.Writer) (uint16, error) {
	terms := make([]uint16, 0, len(sourceKeys))
	for _, key := range sourceKeys {
		raw, ok := pairs[key]
		if !ok {
			return 0, fmt.Errorf("%w: key %q not present", ErrMissingValue, key)
		}

		n, err := strconv.ParseUint(strings.TrimPrefix(raw, "0x"), 16, 16)
		if err != nil {
			return 0, fmt.Errorf("%w: key %q value %q is not a 16-bit hex integer", ErrBadValue, key, raw)
		}

		term := uint16(n) ^ xorKey
		if trace != nil {
			fmt.Fprintf(trace, "%-5s %s %#b xorred:%#b %d %c\n", key, raw, n, term, term, rune(term))
		}
		terms = append(terms, term)
	}

	third, fourth := terms[2], terms[3]
	fifth := fourth + firstMismatchingBit(third, fourth)*4

	return fifth ^ xorKey, nil
}

// Format renders a derived value in the same 0x-prefixed hexadecimal form
// as the source values.
func Format(value uint16) string {
	return fmt.Sprintf("0x%x", value)
}

// firstMismatchingBit returns the 1-based index of the lowest bit in
// which a and b differ.
func firstMismatchingBit(a, b uint16) uint16 {
	return uint16(bits.TrailingZeros16(a^b)) + 1
}
