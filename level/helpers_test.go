// SPDX-License-Identifier: MIT

package level_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/molaudionet/molbit/element"
	"github.com/molaudionet/molbit/molecule"
)

type bondSpec struct {
	a, b  int
	order molecule.BondOrder
}

// assemble places syms in order and forms bonds between their indices.
func assemble(t *testing.T, syms []element.Symbol, bonds ...bondSpec) *molecule.Graph {
	t.Helper()
	g := molecule.NewGraph()
	ids := make([]molecule.AtomID, len(syms))
	for i, s := range syms {
		a, err := g.AddAtom(s)
		require.NoError(t, err)
		ids[i] = a.ID
	}
	for _, b := range bonds {
		_, err := g.TryBond(ids[b.a], ids[b.b], b.order)
		require.NoError(t, err)
	}

	return g
}

func methane(t *testing.T) *molecule.Graph {
	return assemble(t, []element.Symbol{"C", "H", "H", "H", "H"},
		bondSpec{0, 1, molecule.Single}, bondSpec{0, 2, molecule.Single},
		bondSpec{0, 3, molecule.Single}, bondSpec{0, 4, molecule.Single})
}
