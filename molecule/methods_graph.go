// SPDX-License-Identifier: MIT
//
// File: methods_graph.go
// Role: Whole-graph operations: Stats, Snapshot, Fragments, Clear.
// Determinism:
//   - Fragments() lists components by their smallest atom id; members are
//     sorted ascending.

package molecule

import "sort"

// GraphStats is a read-only summary of graph size.
type GraphStats struct {
	AtomCount     int
	BondCount     int
	IonicBonds    int
	CovalentBonds int // number of single/double/triple bonds
	BondWeight    int // sum of bond weights over all bonds
	ChargedAtoms  int
}

// Stats returns a summary of the current graph.
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{AtomCount: len(g.atoms), BondCount: len(g.bonds)}
	for _, b := range g.bonds {
		if b.Order.IsIonic() {
			s.IonicBonds++
		} else {
			s.CovalentBonds++
		}
		s.BondWeight += b.Order.Weight()
	}
	for _, a := range g.atoms {
		if !a.Charge.IsZero() {
			s.ChargedAtoms++
		}
	}

	return s
}

// Snapshot is an immutable projection of the graph for renderers.
type Snapshot struct {
	Atoms []Atom // sorted by id
	Bonds []Bond // creation order
}

// Snapshot copies atoms and bonds under one read lock so the pair is
// consistent. Renderers redraw from it.
// Complexity: O(V log V + E).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Snapshot{Atoms: g.atomsLocked(), Bonds: g.bondsLocked()}
}

// Fragments returns the connected components of the graph as sorted id
// lists. An isolated atom is a fragment of its own. The empty graph has
// no fragments.
//
// Implementation: breadth-first search from each unvisited atom in id
// order, enqueuing neighbors in ascending id order.
// Complexity: O(V log V + E log d).
func (g *Graph) Fragments() [][]AtomID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	atoms := g.atomsLocked()
	visited := make(map[AtomID]bool, len(atoms))
	var out [][]AtomID
	for _, start := range atoms {
		if visited[start.ID] {
			continue
		}
		visited[start.ID] = true
		queue := []AtomID{start.ID}
		var comp []AtomID
		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]
			comp = append(comp, curr)
			for _, nbr := range g.neighborIDsLocked(curr) {
				if !visited[nbr] {
					visited[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
		sortIDs(comp)
		out = append(out, comp)
	}

	return out
}

// Clear removes every atom and bond. Id counters keep counting, so ids
// issued after Clear never collide with earlier ones.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.atoms = make(map[AtomID]*Atom)
	g.bonds = nil
	g.adjacency = make(map[AtomID]map[AtomID]*Bond)
}

func sortIDs(ids []AtomID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
