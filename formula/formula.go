// SPDX-License-Identifier: MIT

// Package formula derives the molecular formula and molar mass of a
// molecule.Graph from its atom multiset.
//
// Ordering is Hill-like: carbon first (if present), then hydrogen (if
// present), then every remaining symbol in lexicographic byte order. A
// count is written only when it is greater than one: {C:1, H:4} -> "CH4",
// {H:2, O:1} -> "H2O", {Cl:1, Na:1} -> "ClNa". The empty graph yields "".
package formula

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/molaudionet/molbit/element"
	"github.com/molaudionet/molbit/molecule"
)

// MassDecimals is the number of decimals kept by MolarMass and FormatMass.
const MassDecimals = 3

// Counts returns the number of atoms per element symbol. A nil graph
// yields an empty map.
func Counts(g *molecule.Graph) map[element.Symbol]int {
	out := make(map[element.Symbol]int)
	if g == nil {
		return out
	}
	for _, a := range g.Atoms() {
		out[a.Element]++
	}

	return out
}

// Formula returns the canonical formula of g.
func Formula(g *molecule.Graph) string { return FromCounts(Counts(g)) }

// FromCounts renders counts in canonical order. Symbols with a count of
// zero or less are skipped.
func FromCounts(counts map[element.Symbol]int) string {
	syms := make([]element.Symbol, 0, len(counts))
	for s, n := range counts {
		if n > 0 {
			syms = append(syms, s)
		}
	}
	sort.Slice(syms, func(i, j int) bool { return less(syms[i], syms[j]) })

	var sb strings.Builder
	for _, s := range syms {
		sb.WriteString(string(s))
		if n := counts[s]; n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
	}

	return sb.String()
}

// rank puts carbon before hydrogen before everything else.
func rank(s element.Symbol) int {
	switch s {
	case element.Carbon:
		return 0
	case element.Hydrogen:
		return 1
	default:
		return 2
	}
}

func less(a, b element.Symbol) bool {
	if ra, rb := rank(a), rank(b); ra != rb {
		return ra < rb
	}

	return a < b
}

// MolarMass returns the summed element masses of all atoms in g, rounded
// to MassDecimals places. Atoms whose element is missing from the graph's
// table contribute nothing.
func MolarMass(g *molecule.Graph) float64 {
	if g == nil {
		return 0
	}
	tbl := g.Table()
	total := 0.0
	for _, a := range g.Atoms() {
		if e, err := tbl.Lookup(a.Element); err == nil {
			total += e.Mass
		}
	}

	return round(total)
}

// FormatMass renders m with MassDecimals places ("16.043").
func FormatMass(m float64) string {
	return strconv.FormatFloat(m, 'f', MassDecimals, 64)
}

func round(m float64) float64 {
	p := math.Pow10(MassDecimals)
	return math.Round(m*p) / p
}

var subscripts = strings.NewReplacer(
	"0", "₀", "1", "₁", "2", "₂", "3", "₃", "4", "₄",
	"5", "₅", "6", "₆", "7", "₇", "8", "₈", "9", "₉",
)

// Pretty renders the digits of a formula as Unicode subscripts ("CH₄").
func Pretty(f string) string { return subscripts.Replace(f) }
