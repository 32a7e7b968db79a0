// SPDX-License-Identifier: MIT
//
// File: methods_bonds.go
// Role: Bond queries: Bonds/BondsOf/BondCount/HasBond/NeighborIDs.
// Determinism:
//   - Bonds() returns bonds in creation order.
//   - BondsOf() and NeighborIDs() are sorted by neighbor id ascending.
// Concurrency:
//   - Read lock on mu.

package molecule

import (
	"fmt"
	"sort"
)

// Bonds returns copies of all bonds in creation order.
// Complexity: O(E).
func (g *Graph) Bonds() []Bond {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.bondsLocked()
}

func (g *Graph) bondsLocked() []Bond {
	out := make([]Bond, len(g.bonds))
	for i, b := range g.bonds {
		out[i] = *b
	}

	return out
}

// BondsOf returns every bond touching id, sorted by the opposite endpoint.
// Errors: ErrAtomNotFound.
// Complexity: O(d log d).
func (g *Graph) BondsOf(id AtomID) ([]Bond, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.atoms[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrAtomNotFound, id)
	}

	return g.bondsOfLocked(id), nil
}

func (g *Graph) bondsOfLocked(id AtomID) []Bond {
	nbrs := g.adjacency[id]
	out := make([]Bond, 0, len(nbrs))
	for _, b := range nbrs {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Other(id) < out[j].Other(id) })

	return out
}

// BondCount returns the bond-equivalents touching id: the sum of bond
// weights (single=1, double=2, triple=3, ionic=1). An atom with no bonds
// counts 0.
// Errors: ErrAtomNotFound.
// Complexity: O(d).
func (g *Graph) BondCount(id AtomID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.atoms[id]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrAtomNotFound, id)
	}

	return g.bondCountLocked(id), nil
}

func (g *Graph) bondCountLocked(id AtomID) int {
	n := 0
	for _, b := range g.adjacency[id] {
		n += b.Order.Weight()
	}

	return n
}

// HasIonicBond reports whether id participates in at least one ionic bond.
// Errors: ErrAtomNotFound.
func (g *Graph) HasIonicBond(id AtomID) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.atoms[id]; !ok {
		return false, fmt.Errorf("%w: %d", ErrAtomNotFound, id)
	}
	for _, b := range g.adjacency[id] {
		if b.Order.IsIonic() {
			return true, nil
		}
	}

	return false, nil
}

// HasBond reports whether a bond joins a and b, in either direction.
// Complexity: O(1).
func (g *Graph) HasBond(a, b AtomID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[a][b]

	return ok
}

// NeighborIDs returns the ids bonded to id, sorted ascending.
// Errors: ErrAtomNotFound.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id AtomID) ([]AtomID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.atoms[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrAtomNotFound, id)
	}

	return g.neighborIDsLocked(id), nil
}

func (g *Graph) neighborIDsLocked(id AtomID) []AtomID {
	out := make([]AtomID, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
