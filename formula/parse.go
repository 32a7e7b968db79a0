// SPDX-License-Identifier: MIT

package formula

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/molaudionet/molbit/element"
)

// ErrMalformedFormula indicates a formula string that Parse cannot read.
var ErrMalformedFormula = errors.New("formula: malformed formula")

// Parse reads a flat formula such as "NaCl" or "C2H6O" into per-symbol
// counts. A symbol is one upper-case letter followed by optional
// lower-case letters; a missing count means 1. Repeated symbols add up.
// Parentheses, charges and hydrates are not supported.
//
// Errors: ErrMalformedFormula.
func Parse(s string) (map[element.Symbol]int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrMalformedFormula)
	}
	out := make(map[element.Symbol]int)
	for i := 0; i < len(s); {
		if !isUpper(s[i]) {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrMalformedFormula, s, i)
		}
		j := i + 1
		for j < len(s) && isLower(s[j]) {
			j++
		}
		sym := element.Symbol(s[i:j])

		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		n := 1
		if k > j {
			v, err := strconv.Atoi(s[j:k])
			if err != nil || v < 1 {
				return nil, fmt.Errorf("%w: %q bad count for %s", ErrMalformedFormula, s, sym)
			}
			n = v
		}
		out[sym] += n
		i = k
	}

	return out, nil
}

// Canonical re-renders s in canonical order ("NaCl" -> "ClNa").
// Errors: ErrMalformedFormula.
func Canonical(s string) (string, error) {
	counts, err := Parse(s)
	if err != nil {
		return "", err
	}

	return FromCounts(counts), nil
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
