// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Atom, Bond, BondOrder and Graph declarations, options, sentinel
//       errors and the NewGraph constructor.

package molecule

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/molaudionet/molbit/element"
)

// Sentinel errors for molecule graph operations.
var (
	// ErrAtomNotFound indicates an operation referenced a non-existent atom.
	ErrAtomNotFound = errors.New("molecule: atom not found")

	// ErrSelfBond indicates a bond from an atom to itself was requested.
	ErrSelfBond = errors.New("molecule: cannot bond atom to itself")

	// ErrDuplicateBond indicates the unordered atom pair is already bonded.
	ErrDuplicateBond = errors.New("molecule: bond already exists between these atoms")

	// ErrInvalidBondOrder indicates an order outside single/double/triple/ionic.
	ErrInvalidBondOrder = errors.New("molecule: invalid bond order")

	// ErrInvalidIonicPair indicates an ionic bond between two covalent-only elements.
	ErrInvalidIonicPair = errors.New("molecule: ionic bonds require an ionic element")

	// ErrSameChargePolarity indicates an ionic bond whose ions would not be
	// one positive and one negative.
	ErrSameChargePolarity = errors.New("molecule: ionic bonds need one positive and one negative ion")
)

// AtomID identifies an atom within its Graph.
type AtomID int

// Position is an opaque canvas location owned by the presentation layer.
type Position struct {
	X, Y float64
}

// Atom is a placed atom. Values returned by Graph methods are copies.
type Atom struct {
	// ID is unique within the graph and never reused.
	ID AtomID

	// Element is the element-table key of this atom.
	Element element.Symbol

	// Position is carried for renderers and never interpreted.
	Position Position

	// Charge is set only once the atom participates in an ionic bond.
	Charge element.Charge
}

// Label renders the atom as symbol plus charge ("Na+", "C").
func (a Atom) Label() string { return string(a.Element) + a.Charge.String() }

// BondOrder is the covalent multiplicity of a bond, or the ionic category.
type BondOrder int

// Bond orders. The zero value is invalid.
const (
	Single BondOrder = iota + 1
	Double
	Triple
	Ionic
)

// Weight returns the bond-equivalents the order contributes to each endpoint:
// 1/2/3 for single/double/triple and 1 for ionic. Invalid orders weigh 0.
func (o BondOrder) Weight() int {
	switch o {
	case Single, Double, Triple:
		return int(o)
	case Ionic:
		return 1
	default:
		return 0
	}
}

// Valid reports whether o is one of the four bond orders.
func (o BondOrder) Valid() bool { return o >= Single && o <= Ionic }

// IsIonic reports whether o is the ionic category.
func (o BondOrder) IsIonic() bool { return o == Ionic }

// String returns the lower-case order name.
func (o BondOrder) String() string {
	switch o {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Ionic:
		return "ionic"
	default:
		return fmt.Sprintf("BondOrder(%d)", int(o))
	}
}

// ParseBondOrder accepts "single"/"1", "double"/"2", "triple"/"3" and
// "ionic" (case-insensitive).
// Errors: ErrInvalidBondOrder.
func ParseBondOrder(s string) (BondOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "1":
		return Single, nil
	case "double", "2":
		return Double, nil
	case "triple", "3":
		return Triple, nil
	case "ionic":
		return Ionic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidBondOrder, s)
	}
}

// Bond connects two distinct atoms.
type Bond struct {
	// ID is a stable textual identifier ("b1", "b2", ...).
	ID string

	// A and B are the endpoints; the pair is unordered.
	A, B AtomID

	// Order is the bond multiplicity or the ionic category.
	Order BondOrder
}

// Touches reports whether id is one of the bond's endpoints.
func (b Bond) Touches(id AtomID) bool { return b.A == id || b.B == id }

// Other returns the endpoint opposite id. If id is not an endpoint, A is returned.
func (b Bond) Other(id AtomID) AtomID {
	if b.A == id {
		return b.B
	}

	return b.A
}

// BondError describes a rejected TryBond call. It unwraps to one of the
// package sentinels so callers branch with errors.Is.
type BondError struct {
	A, B  AtomID
	Order BondOrder
	Err   error
}

// Error implements error.
func (e *BondError) Error() string {
	return fmt.Sprintf("bond %d-%d (%s): %v", e.A, e.B, e.Order, e.Err)
}

// Unwrap exposes the sentinel.
func (e *BondError) Unwrap() error { return e.Err }

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithElementTable sets the element table used for lookups.
// A nil table is ignored and element.Default() is kept.
func WithElementTable(t *element.Table) GraphOption {
	return func(g *Graph) {
		if t != nil {
			g.table = t
		}
	}
}

// AtomOption configures an atom when it is placed.
type AtomOption func(a *Atom)

// WithPosition records the canvas position of the new atom.
func WithPosition(x, y float64) AtomOption {
	return func(a *Atom) { a.Position = Position{X: x, Y: y} }
}

// Graph is the molecule under construction.
//
// mu guards every field below it. nextAtomID and nextBondID survive Clear.
type Graph struct {
	mu sync.RWMutex

	table *element.Table

	nextAtomID AtomID
	nextBondID uint64

	atoms map[AtomID]*Atom
	bonds []*Bond

	// adjacency[a][b] = bond between a and b, mirrored for b.
	adjacency map[AtomID]map[AtomID]*Bond
}

// NewGraph creates an empty Graph backed by element.Default() unless
// WithElementTable overrides it.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		table:     element.Default(),
		atoms:     make(map[AtomID]*Atom),
		adjacency: make(map[AtomID]map[AtomID]*Bond),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Table returns the element table the graph resolves symbols against.
func (g *Graph) Table() *element.Table { return g.table }
