// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Bond validation and commit (TryBond).
// Policy:
//   - Checks short-circuit in the documented order.
//   - Either the bond and both ion charges are committed, or nothing is.
//   - Covalent bonds are never rejected for valence; scoring handles that.

package molecule

import (
	"strconv"

	"github.com/molaudionet/molbit/element"
)

// bondIDPrefix yields identifiers such as "b1", "b2", ...
const bondIDPrefix = "b"

// TryBond validates and, on success, forms a bond of the given order
// between atoms a and b. See the package documentation for the check order.
//
// On success the bond is appended to the graph; for ionic bonds both atoms
// receive their ion charge from the element table's ion lookup.
//
// Errors (always *BondError, unwrapping to):
//   - ErrSelfBond, ErrAtomNotFound, ErrDuplicateBond, ErrInvalidBondOrder,
//     ErrInvalidIonicPair, ErrSameChargePolarity.
//
// Complexity: O(1).
// Concurrency: holds the write lock for the whole check-and-commit.
func (g *Graph) TryBond(a, b AtomID, order BondOrder) (Bond, error) {
	fail := func(err error) (Bond, error) {
		return Bond{}, &BondError{A: a, B: b, Order: order, Err: err}
	}

	// 1) Self bond
	if a == b {
		return fail(ErrSelfBond)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Endpoints must exist
	atomA, okA := g.atoms[a]
	atomB, okB := g.atoms[b]
	if !okA || !okB {
		return fail(ErrAtomNotFound)
	}

	// 3) At most one bond per unordered pair
	if _, dup := g.adjacency[a][b]; dup {
		return fail(ErrDuplicateBond)
	}

	if !order.Valid() {
		return fail(ErrInvalidBondOrder)
	}

	// 4) Ionic preconditions; charges are computed but not yet applied.
	var chargeA, chargeB element.Charge
	if order.IsIonic() {
		elemA, err := g.table.Lookup(atomA.Element)
		if err != nil {
			return fail(err)
		}
		elemB, err := g.table.Lookup(atomB.Element)
		if err != nil {
			return fail(err)
		}
		if !elemA.Ionic && !elemB.Ionic {
			return fail(ErrInvalidIonicPair)
		}
		chargeA, _ = g.table.IonCharge(elemA.Symbol)
		chargeB, _ = g.table.IonCharge(elemB.Symbol)
		if !oppositePolarity(chargeA, chargeB) {
			return fail(ErrSameChargePolarity)
		}
	}

	// 5) Commit
	g.nextBondID++
	bond := &Bond{
		ID:    bondIDPrefix + strconv.FormatUint(g.nextBondID, 10),
		A:     a,
		B:     b,
		Order: order,
	}
	g.bonds = append(g.bonds, bond)
	g.link(a, b, bond)
	if order.IsIonic() {
		atomA.Charge = chargeA
		atomB.Charge = chargeB
	}

	return *bond, nil
}

// TryBond is the free-function form of (*Graph).TryBond.
func TryBond(g *Graph, a, b AtomID, order BondOrder) (Bond, error) {
	return g.TryBond(a, b, order)
}

// oppositePolarity reports whether one tag is in the positive family and
// the other in the negative family. An untagged atom matches neither.
func oppositePolarity(x, y element.Charge) bool {
	return x.Sign()*y.Sign() == -1
}

// link records bond in the mirrored adjacency. Caller holds the write lock.
func (g *Graph) link(a, b AtomID, bond *Bond) {
	if g.adjacency[a] == nil {
		g.adjacency[a] = make(map[AtomID]*Bond)
	}
	if g.adjacency[b] == nil {
		g.adjacency[b] = make(map[AtomID]*Bond)
	}
	g.adjacency[a][b] = bond
	g.adjacency[b][a] = bond
}
