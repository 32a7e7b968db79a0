// SPDX-License-Identifier: MIT

// Package molecule is the authoritative in-memory representation of a
// molecule under construction: atoms (nodes) and typed bonds (edges).
//
// The Graph G = (atoms, bonds) is the single system of record. Renderers
// project it via Snapshot() and redraw from state; they never own atoms or
// bonds themselves.
//
// Structure:
//
//   - Atom ids are assigned monotonically from 0 by AddAtom and are never
//     reused, not even after Clear.
//   - Bonds are undirected, never self-loops, and at most one bond exists
//     per unordered pair of atoms. Adjacency is mirrored:
//     adjacency[a][b] == adjacency[b][a] == *Bond.
//   - A bond's weight is 1/2/3 for single/double/triple and exactly 1 for
//     ionic, regardless of the formal charges involved.
//
// Bond validation (TryBond) is checked in order and short-circuits:
//
//  1. a == b                                      -> ErrSelfBond
//  2. a or b missing                              -> ErrAtomNotFound
//  3. bond between a and b already exists          -> ErrDuplicateBond
//  4. order is not single/double/triple/ionic      -> ErrInvalidBondOrder
//  5. ionic and neither element is ionic-capable   -> ErrInvalidIonicPair
//  6. ionic and ion tags are not opposite in sign  -> ErrSameChargePolarity
//
// Covalent bonds are never rejected for exceeding valence; over-bonding is
// penalised by the score package instead. On success an ionic bond commits
// both atoms' charges together with the bond; on failure nothing changes.
//
// Core Methods:
//
//	AddAtom(sym, opts...) (Atom, error)          // O(1)
//	Atom(id) (Atom, error)                       // O(1)
//	Atoms() []Atom                               // O(V log V), sorted by id
//	TryBond(a, b, order) (Bond, error)           // O(1)
//	Bonds() []Bond                               // O(E), creation order
//	BondsOf(id) ([]Bond, error)                  // O(d log d)
//	BondCount(id) (int, error)                   // O(d), sum of weights
//	NeighborIDs(id) ([]AtomID, error)            // O(d log d)
//	Fragments() [][]AtomID                       // O(V + E)
//	Stats() GraphStats                           // O(E)
//	Snapshot() Snapshot                          // O(V + E)
//	Clear()                                      // O(1)
//
// Errors:
//
//	ErrAtomNotFound       - referenced atom id is absent.
//	ErrSelfBond           - both endpoints are the same atom.
//	ErrDuplicateBond      - the unordered pair is already bonded.
//	ErrInvalidBondOrder   - order is not one of the four bond orders.
//	ErrInvalidIonicPair   - ionic bond requested between covalent-only elements.
//	ErrSameChargePolarity - ionic bond whose ion tags do not have opposite sign.
//
// Element lookups fail with element.ErrUnknownElement.
package molecule
