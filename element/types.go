// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Element, Symbol and Charge value types plus sentinel errors.

package element

import "errors"

// Sentinel errors for element lookups and table construction.
var (
	// ErrUnknownElement indicates a symbol that is not present in the table.
	ErrUnknownElement = errors.New("element: unknown element")

	// ErrInvalidTable indicates NewTable received an inconsistent entry set.
	ErrInvalidTable = errors.New("element: invalid element table")
)

// Symbol is a chemical element symbol such as "C" or "Na".
type Symbol string

// Symbols of the reference configuration.
const (
	Hydrogen   Symbol = "H"
	Carbon     Symbol = "C"
	Nitrogen   Symbol = "N"
	Oxygen     Symbol = "O"
	Phosphorus Symbol = "P"
	Sulfur     Symbol = "S"
	Chlorine   Symbol = "Cl"
	Sodium     Symbol = "Na"
	Potassium  Symbol = "K"
	Calcium    Symbol = "Ca"
)

// Element is one immutable row of the element table.
type Element struct {
	// Symbol is the table key.
	Symbol Symbol

	// Name is the display name ("Carbon").
	Name string

	// Valence is the number of bond-equivalents the element can form
	// before it is considered over-bonded. Always positive.
	Valence int

	// Mass is the relative atomic mass in g/mol. Always positive.
	Mass float64

	// Ionic reports whether the element may take part in ionic bonds.
	Ionic bool

	// Color is a display hint for renderers; the core never reads it.
	Color string
}

// Charge is the polarity tag an atom receives when it joins an ionic bond.
// The zero value means "no charge".
type Charge string

// Polarity tags assigned by the ion table.
const (
	NoCharge       Charge = ""
	Cation         Charge = "+"
	DivalentCation Charge = "2+"
	Anion          Charge = "-"
)

// Sign returns the polarity family of the tag: +1 for "+" and "2+",
// -1 for "-", 0 for no charge or an unrecognised tag.
func (c Charge) Sign() int {
	switch c {
	case Cation, DivalentCation:
		return 1
	case Anion:
		return -1
	default:
		return 0
	}
}

// Value returns the signed formal charge of the tag (+1, +2, -1 or 0).
func (c Charge) Value() int {
	switch c {
	case Cation:
		return 1
	case DivalentCation:
		return 2
	case Anion:
		return -1
	default:
		return 0
	}
}

// IsZero reports whether the tag carries no charge.
func (c Charge) IsZero() bool { return c == NoCharge }

// String returns the tag as written after an element symbol ("Na+").
func (c Charge) String() string { return string(c) }
