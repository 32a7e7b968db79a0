// SPDX-License-Identifier: MIT
// Package molecule_test contains fixtures shared by the molecule tests.

package molecule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/molaudionet/molbit/element"
	"github.com/molaudionet/molbit/molecule"
)

// place adds one atom per symbol and returns their ids in order.
func place(t *testing.T, g *molecule.Graph, syms ...element.Symbol) []molecule.AtomID {
	t.Helper()
	ids := make([]molecule.AtomID, 0, len(syms))
	for _, s := range syms {
		a, err := g.AddAtom(s)
		require.NoError(t, err, "AddAtom(%s)", s)
		ids = append(ids, a.ID)
	}

	return ids
}

// mustBond forms a bond and fails the test on rejection.
func mustBond(t *testing.T, g *molecule.Graph, a, b molecule.AtomID, o molecule.BondOrder) molecule.Bond {
	t.Helper()
	bond, err := g.TryBond(a, b, o)
	require.NoError(t, err, "TryBond(%d,%d,%s)", a, b, o)

	return bond
}

// methane builds CH4 with four single C-H bonds; ids[0] is the carbon.
func methane(t *testing.T) (*molecule.Graph, []molecule.AtomID) {
	t.Helper()
	g := molecule.NewGraph()
	ids := place(t, g, element.Carbon, element.Hydrogen, element.Hydrogen, element.Hydrogen, element.Hydrogen)
	for _, h := range ids[1:] {
		mustBond(t, g, ids[0], h, molecule.Single)
	}

	return g, ids
}
