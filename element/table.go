// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: Immutable symbol -> Element table and the declarative ion table.
// Determinism:
//   - Symbols() returns symbols in insertion (palette) order.
// Concurrency:
//   - A Table is never mutated after construction; all methods are safe
//     for concurrent use without locking.

package element

import (
	"fmt"
	"sync"
)

// Table maps element symbols to their Element rows and to the ion charge
// they take in an ionic bond.
type Table struct {
	order   []Symbol
	entries map[Symbol]Element
	ions    map[Symbol]Charge
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// defaultElements is the reference configuration in palette order.
var defaultElements = []Element{
	{Symbol: Hydrogen, Name: "Hydrogen", Valence: 1, Mass: 1.008, Color: "#ffffff"},
	{Symbol: Carbon, Name: "Carbon", Valence: 4, Mass: 12.011, Color: "#909090"},
	{Symbol: Nitrogen, Name: "Nitrogen", Valence: 3, Mass: 14.007, Color: "#3050f8"},
	{Symbol: Oxygen, Name: "Oxygen", Valence: 2, Mass: 15.999, Color: "#ff0d0d"},
	{Symbol: Phosphorus, Name: "Phosphorus", Valence: 5, Mass: 30.974, Color: "#ff8000"},
	{Symbol: Sulfur, Name: "Sulfur", Valence: 6, Mass: 32.06, Color: "#ffff30"},
	{Symbol: Chlorine, Name: "Chlorine", Valence: 1, Mass: 35.45, Ionic: true, Color: "#1ff01f"},
	{Symbol: Sodium, Name: "Sodium", Valence: 1, Mass: 22.990, Ionic: true, Color: "#ab5cf2"},
	{Symbol: Potassium, Name: "Potassium", Valence: 1, Mass: 39.098, Ionic: true, Color: "#8f40d4"},
	{Symbol: Calcium, Name: "Calcium", Valence: 2, Mass: 40.078, Ionic: true, Color: "#3dff00"},
}

// defaultIons is the per-element polarity lookup applied on ionic bonding.
var defaultIons = map[Symbol]Charge{
	Sodium:    Cation,
	Potassium: Cation,
	Calcium:   DivalentCation,
	Chlorine:  Anion,
}

// Default returns the shared reference table (10 elements).
// The table is built on first use and never mutated afterwards.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := NewTable(defaultElements, defaultIons)
		if err != nil {
			// The reference data is static; a failure here is a programming error.
			panic(err)
		}
		defaultTable = t
	})

	return defaultTable
}

// NewTable builds an immutable table from elems and the ion lookup ions.
//
// Errors:
//   - ErrInvalidTable: empty or duplicate symbol, non-positive valence or mass,
//     or an ion entry for a symbol missing from elems.
//
// Complexity: O(len(elems) + len(ions)).
func NewTable(elems []Element, ions map[Symbol]Charge) (*Table, error) {
	t := &Table{
		order:   make([]Symbol, 0, len(elems)),
		entries: make(map[Symbol]Element, len(elems)),
		ions:    make(map[Symbol]Charge, len(ions)),
	}
	for _, e := range elems {
		switch {
		case e.Symbol == "":
			return nil, fmt.Errorf("%w: empty symbol", ErrInvalidTable)
		case e.Valence <= 0:
			return nil, fmt.Errorf("%w: %s valence %d must be positive", ErrInvalidTable, e.Symbol, e.Valence)
		case e.Mass <= 0:
			return nil, fmt.Errorf("%w: %s mass %g must be positive", ErrInvalidTable, e.Symbol, e.Mass)
		}
		if _, dup := t.entries[e.Symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %s", ErrInvalidTable, e.Symbol)
		}
		t.entries[e.Symbol] = e
		t.order = append(t.order, e.Symbol)
	}
	for sym, c := range ions {
		if _, ok := t.entries[sym]; !ok {
			return nil, fmt.Errorf("%w: ion entry for unknown symbol %s", ErrInvalidTable, sym)
		}
		if c.Sign() == 0 {
			return nil, fmt.Errorf("%w: ion entry for %s has no polarity", ErrInvalidTable, sym)
		}
		t.ions[sym] = c
	}

	return t, nil
}

// Lookup returns the Element registered under sym.
// Errors: ErrUnknownElement (wrapped with the symbol).
// Complexity: O(1).
func (t *Table) Lookup(sym Symbol) (Element, error) {
	e, ok := t.entries[sym]
	if !ok {
		return Element{}, fmt.Errorf("%w: %q", ErrUnknownElement, sym)
	}

	return e, nil
}

// Has reports whether sym is present in the table.
func (t *Table) Has(sym Symbol) bool {
	_, ok := t.entries[sym]
	return ok
}

// IonCharge returns the polarity tag sym receives in an ionic bond.
// ok is false for elements with no ion entry (covalent-only elements).
func (t *Table) IonCharge(sym Symbol) (c Charge, ok bool) {
	c, ok = t.ions[sym]
	return c, ok
}

// Symbols returns the table's symbols in palette order. The slice is a copy.
func (t *Table) Symbols() []Symbol {
	out := make([]Symbol, len(t.order))
	copy(out, t.order)

	return out
}

// Len returns the number of elements in the table.
func (t *Table) Len() int { return len(t.entries) }
