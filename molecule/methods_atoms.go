// SPDX-License-Identifier: MIT
//
// File: methods_atoms.go
// Role: Atom lifecycle and atom queries.
// Determinism:
//   - Atoms() returns atoms sorted by id ascending.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package molecule

import (
	"fmt"
	"sort"

	"github.com/molaudionet/molbit/element"
)

// AddAtom places a new uncharged atom of element sym and returns a copy of it.
//
// Steps:
//  1. Resolve sym in the element table (ErrUnknownElement on miss).
//  2. Under the write lock allocate the next id and register the atom.
//  3. Apply opts to the new atom.
//
// Errors:
//   - element.ErrUnknownElement: sym is not in the table; graph unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph) AddAtom(sym element.Symbol, opts ...AtomOption) (Atom, error) {
	if _, err := g.table.Lookup(sym); err != nil {
		return Atom{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	a := &Atom{ID: g.nextAtomID, Element: sym}
	for _, opt := range opts {
		opt(a)
	}
	a.ID = g.nextAtomID // options must not rewrite identity
	a.Charge = element.NoCharge
	g.nextAtomID++
	g.atoms[a.ID] = a

	return *a, nil
}

// Atom returns a copy of the atom with the given id.
// Errors: ErrAtomNotFound.
// Complexity: O(1).
func (g *Graph) Atom(id AtomID) (Atom, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a, ok := g.atoms[id]
	if !ok {
		return Atom{}, fmt.Errorf("%w: %d", ErrAtomNotFound, id)
	}

	return *a, nil
}

// HasAtom reports whether id is present.
// Complexity: O(1).
func (g *Graph) HasAtom(id AtomID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.atoms[id]

	return ok
}

// ElementOf returns the element row of the atom with the given id.
// Errors: ErrAtomNotFound.
func (g *Graph) ElementOf(id AtomID) (element.Element, error) {
	a, err := g.Atom(id)
	if err != nil {
		return element.Element{}, err
	}

	return g.table.Lookup(a.Element)
}

// Atoms returns copies of all atoms sorted by id ascending.
// Complexity: O(V log V).
func (g *Graph) Atoms() []Atom {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.atomsLocked()
}

func (g *Graph) atomsLocked() []Atom {
	out := make([]Atom, 0, len(g.atoms))
	for _, a := range g.atoms {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// AtomCount returns the number of atoms.
// Complexity: O(1).
func (g *Graph) AtomCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.atoms)
}
