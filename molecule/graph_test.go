// SPDX-License-Identifier: MIT

package molecule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molaudionet/molbit/element"
	"github.com/molaudionet/molbit/molecule"
)

func TestAddAtom_AssignsMonotonicIDs(t *testing.T) {
	g := molecule.NewGraph()

	a, err := g.AddAtom(element.Carbon, molecule.WithPosition(10, 20))
	require.NoError(t, err)
	b, err := g.AddAtom(element.Hydrogen)
	require.NoError(t, err)

	assert.Equal(t, molecule.AtomID(0), a.ID)
	assert.Equal(t, molecule.AtomID(1), b.ID)
	assert.Equal(t, element.Carbon, a.Element)
	assert.Equal(t, molecule.Position{X: 10, Y: 20}, a.Position)
	assert.True(t, a.Charge.IsZero(), "new atoms carry no charge")
	assert.Equal(t, 2, g.AtomCount())
}

func TestAddAtom_UnknownElement(t *testing.T) {
	g := molecule.NewGraph()

	_, err := g.AddAtom("Xx")
	assert.ErrorIs(t, err, element.ErrUnknownElement)
	assert.Equal(t, 0, g.AtomCount(), "graph unchanged on failure")

	a, err := g.AddAtom(element.Oxygen)
	require.NoError(t, err)
	assert.Equal(t, molecule.AtomID(0), a.ID, "failed placement must not consume an id")
}

func TestAtom_Lookup(t *testing.T) {
	g := molecule.NewGraph()
	ids := place(t, g, element.Nitrogen)

	a, err := g.Atom(ids[0])
	require.NoError(t, err)
	assert.Equal(t, element.Nitrogen, a.Element)
	assert.True(t, g.HasAtom(ids[0]))

	_, err = g.Atom(42)
	assert.ErrorIs(t, err, molecule.ErrAtomNotFound)
	assert.False(t, g.HasAtom(42))

	e, err := g.ElementOf(ids[0])
	require.NoError(t, err)
	assert.Equal(t, 3, e.Valence)
}

func TestBondCount_SumsWeights(t *testing.T) {
	g := molecule.NewGraph()
	ids := place(t, g, element.Carbon, element.Oxygen, element.Nitrogen, element.Hydrogen, element.Sodium, element.Chlorine)
	c, o, n, h, na, cl := ids[0], ids[1], ids[2], ids[3], ids[4], ids[5]

	mustBond(t, g, c, o, molecule.Double)
	mustBond(t, g, c, n, molecule.Triple)
	mustBond(t, g, c, h, molecule.Single)
	mustBond(t, g, na, cl, molecule.Ionic)

	tests := []struct {
		id   molecule.AtomID
		want int
	}{
		{c, 6}, {o, 2}, {n, 3}, {h, 1}, {na, 1}, {cl, 1},
	}
	for _, tt := range tests {
		got, err := g.BondCount(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "BondCount(%d)", tt.id)

		bonds, err := g.BondsOf(tt.id)
		require.NoError(t, err)
		sum := 0
		for _, b := range bonds {
			assert.True(t, b.Touches(tt.id))
			sum += b.Order.Weight()
		}
		assert.Equal(t, got, sum, "BondCount equals sum of weights over BondsOf")
	}

	_, err := g.BondCount(99)
	assert.ErrorIs(t, err, molecule.ErrAtomNotFound)
}

func TestBondsOf_SortedByNeighbor(t *testing.T) {
	g, ids := methane(t)

	bonds, err := g.BondsOf(ids[0])
	require.NoError(t, err)
	require.Len(t, bonds, 4)
	for i, b := range bonds {
		assert.Equal(t, ids[i+1], b.Other(ids[0]))
	}

	nbrs, err := g.NeighborIDs(ids[0])
	require.NoError(t, err)
	assert.Equal(t, ids[1:], nbrs)

	isolated, err := g.AddAtom(element.Oxygen)
	require.NoError(t, err)
	bonds, err = g.BondsOf(isolated.ID)
	require.NoError(t, err)
	assert.Empty(t, bonds)
}

func TestBonds_CreationOrderAndIDs(t *testing.T) {
	g, ids := methane(t)

	bonds := g.Bonds()
	require.Len(t, bonds, 4)
	for i, b := range bonds {
		assert.Equal(t, "b"+string(rune('1'+i)), b.ID)
		assert.Equal(t, ids[0], b.A)
		assert.Equal(t, ids[i+1], b.B)
		assert.Equal(t, molecule.Single, b.Order)
	}
	assert.True(t, g.HasBond(ids[1], ids[0]), "HasBond is symmetric")
	assert.False(t, g.HasBond(ids[1], ids[2]))
}

func TestStats(t *testing.T) {
	g := molecule.NewGraph()
	ids := place(t, g, element.Sodium, element.Chlorine, element.Oxygen, element.Oxygen)
	mustBond(t, g, ids[0], ids[1], molecule.Ionic)
	mustBond(t, g, ids[2], ids[3], molecule.Double)

	s := g.Stats()
	assert.Equal(t, molecule.GraphStats{
		AtomCount:     4,
		BondCount:     2,
		IonicBonds:    1,
		CovalentBonds: 1,
		BondWeight:    3,
		ChargedAtoms:  2,
	}, s)
}

func TestFragments(t *testing.T) {
	g := molecule.NewGraph()
	assert.Empty(t, g.Fragments())

	ids := place(t, g, element.Hydrogen, element.Oxygen, element.Hydrogen, element.Nitrogen, element.Nitrogen, element.Carbon)
	mustBond(t, g, ids[1], ids[0], molecule.Single)
	mustBond(t, g, ids[1], ids[2], molecule.Single)
	mustBond(t, g, ids[3], ids[4], molecule.Triple)

	assert.Equal(t, [][]molecule.AtomID{
		{ids[0], ids[1], ids[2]},
		{ids[3], ids[4]},
		{ids[5]},
	}, g.Fragments())
}

func TestSnapshot_IsACopy(t *testing.T) {
	g, ids := methane(t)

	snap := g.Snapshot()
	require.Len(t, snap.Atoms, 5)
	require.Len(t, snap.Bonds, 4)

	snap.Atoms[0].Element = element.Sulfur
	snap.Bonds[0].Order = molecule.Triple

	a, err := g.Atom(ids[0])
	require.NoError(t, err)
	assert.Equal(t, element.Carbon, a.Element)
	assert.Equal(t, molecule.Single, g.Bonds()[0].Order)
}

func TestClear_KeepsIDsMonotonic(t *testing.T) {
	g, _ := methane(t)

	g.Clear()
	assert.Equal(t, 0, g.AtomCount())
	assert.Empty(t, g.Bonds())
	assert.Equal(t, molecule.GraphStats{}, g.Stats())

	a, err := g.AddAtom(element.Carbon)
	require.NoError(t, err)
	assert.Equal(t, molecule.AtomID(5), a.ID, "ids continue after Clear")
}

func TestWithElementTable(t *testing.T) {
	tbl, err := element.NewTable([]element.Element{{Symbol: "Li", Name: "Lithium", Valence: 1, Mass: 6.94, Ionic: true}}, nil)
	require.NoError(t, err)

	g := molecule.NewGraph(molecule.WithElementTable(tbl))
	assert.Same(t, tbl, g.Table())

	_, err = g.AddAtom("Li")
	assert.NoError(t, err)
	_, err = g.AddAtom(element.Carbon)
	assert.ErrorIs(t, err, element.ErrUnknownElement)

	assert.Same(t, element.Default(), molecule.NewGraph(molecule.WithElementTable(nil)).Table())
}

func TestBondOrder(t *testing.T) {
	tests := []struct {
		in     string
		want   molecule.BondOrder
		weight int
	}{
		{"single", molecule.Single, 1},
		{"1", molecule.Single, 1},
		{"Double", molecule.Double, 2},
		{"2", molecule.Double, 2},
		{"triple", molecule.Triple, 3},
		{"3", molecule.Triple, 3},
		{" ionic ", molecule.Ionic, 1},
	}
	for _, tt := range tests {
		got, err := molecule.ParseBondOrder(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.weight, got.Weight())
		assert.True(t, got.Valid())
	}

	_, err := molecule.ParseBondOrder("quadruple")
	assert.ErrorIs(t, err, molecule.ErrInvalidBondOrder)
	assert.Equal(t, 0, molecule.BondOrder(0).Weight())
	assert.False(t, molecule.BondOrder(9).Valid())
	assert.Equal(t, "ionic", molecule.Ionic.String())
	assert.Equal(t, "BondOrder(7)", molecule.BondOrder(7).String())
}
