// SPDX-License-Identifier: MIT

package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molaudionet/molbit/element"
	"github.com/molaudionet/molbit/molecule"
	"github.com/molaudionet/molbit/score"
)

const eps = 1e-9

func build(t *testing.T, syms ...element.Symbol) (*molecule.Graph, []molecule.AtomID) {
	t.Helper()
	g := molecule.NewGraph()
	ids := make([]molecule.AtomID, len(syms))
	for i, s := range syms {
		a, err := g.AddAtom(s)
		require.NoError(t, err)
		ids[i] = a.ID
	}

	return g, ids
}

func bond(t *testing.T, g *molecule.Graph, a, b molecule.AtomID, o molecule.BondOrder) {
	t.Helper()
	_, err := g.TryBond(a, b, o)
	require.NoError(t, err)
}

func TestScore_EmptyAndNil(t *testing.T) {
	assert.Equal(t, 0.0, score.Score(molecule.NewGraph()))
	assert.Equal(t, 0.0, score.Score(nil))
	assert.Nil(t, score.Default().Breakdown(nil))
}

func TestScore_SingleUnbondedCarbon(t *testing.T) {
	g, _ := build(t, element.Carbon)
	assert.Equal(t, 0.0, score.Score(g))
}

func TestScore_Methane(t *testing.T) {
	g, ids := build(t, element.Carbon, element.Hydrogen, element.Hydrogen, element.Hydrogen, element.Hydrogen)
	for _, h := range ids[1:] {
		bond(t, g, ids[0], h, molecule.Single)
	}

	c, err := score.Default().Atom(g, ids[0])
	require.NoError(t, err)
	assert.InDelta(t, 100, c.Score, eps)
	assert.True(t, c.Satisfied())
	assert.InDelta(t, 100, score.Score(g), eps)
}

func TestScore_UnderbondedCarbon(t *testing.T) {
	g, ids := build(t, element.Carbon, element.Hydrogen, element.Hydrogen, element.Hydrogen)
	for _, h := range ids[1:] {
		bond(t, g, ids[0], h, molecule.Single)
	}

	c, err := score.Default().Atom(g, ids[0])
	require.NoError(t, err)
	assert.InDelta(t, 75, c.Score, eps)
	assert.Equal(t, 3, c.BondCount)
	assert.Equal(t, 4, c.Valence)

	// (75 + 3*100) / 400
	assert.InDelta(t, 93.75, score.Score(g), eps)
	assert.Less(t, score.Score(g), 100.0)
}

func TestScore_OverbondedHydrogen(t *testing.T) {
	g, ids := build(t, element.Hydrogen, element.Hydrogen, element.Hydrogen)
	bond(t, g, ids[0], ids[1], molecule.Single)
	bond(t, g, ids[0], ids[2], molecule.Single)

	h, err := score.Default().Atom(g, ids[0])
	require.NoError(t, err)
	assert.InDelta(t, 70, h.Score, eps)
}

func TestScore_OverbondFloorsAtZero(t *testing.T) {
	g, ids := build(t, element.Hydrogen, element.Carbon, element.Carbon)
	bond(t, g, ids[0], ids[1], molecule.Triple)
	bond(t, g, ids[0], ids[2], molecule.Triple)

	h, err := score.Default().Atom(g, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 6, h.BondCount)
	assert.Equal(t, 0.0, h.Score, "100 - 5*30 floors at 0")
}

func TestScore_IonicRules(t *testing.T) {
	g, ids := build(t, element.Sodium, element.Chlorine, element.Potassium, element.Carbon, element.Calcium)
	na, cl, k, c, ca := ids[0], ids[1], ids[2], ids[3], ids[4]
	bond(t, g, na, cl, molecule.Ionic)
	bond(t, g, k, c, molecule.Single)

	rows := score.Default().Breakdown(g)
	require.Len(t, rows, 5)

	byID := map[molecule.AtomID]score.AtomScore{}
	for _, r := range rows {
		byID[r.ID] = r
	}
	assert.InDelta(t, 100, byID[na].Score, eps)
	assert.InDelta(t, 100, byID[cl].Score, eps)
	assert.InDelta(t, 50, byID[k].Score, eps, "bonded but not ionic")
	assert.InDelta(t, 25, byID[c].Score, eps, "1/4 of carbon valence")
	assert.InDelta(t, 0, byID[ca].Score, eps, "isolated ionic element")
	assert.True(t, byID[na].HasIonic)
	assert.False(t, byID[k].HasIonic)
}

func TestScore_IonicElementIgnoresValence(t *testing.T) {
	// Sodium has valence 1 but an ionic element is judged by bond kind only.
	g, ids := build(t, element.Sodium, element.Chlorine, element.Hydrogen)
	bond(t, g, ids[0], ids[1], molecule.Ionic)
	bond(t, g, ids[0], ids[2], molecule.Triple)

	na, err := score.Default().Atom(g, ids[0])
	require.NoError(t, err)
	assert.InDelta(t, 100, na.Score, eps)
}

func TestScore_Range(t *testing.T) {
	g, ids := build(t, element.Oxygen, element.Oxygen, element.Hydrogen, element.Sulfur)
	bond(t, g, ids[0], ids[1], molecule.Triple)
	bond(t, g, ids[0], ids[2], molecule.Double)
	bond(t, g, ids[2], ids[3], molecule.Single)

	s := score.Score(g)
	assert.GreaterOrEqual(t, s, 0.0)
	assert.LessOrEqual(t, s, 100.0)
}

func TestNew_OverbondPenalty(t *testing.T) {
	g, ids := build(t, element.Hydrogen, element.Hydrogen, element.Hydrogen)
	bond(t, g, ids[0], ids[1], molecule.Single)
	bond(t, g, ids[0], ids[2], molecule.Single)

	s, err := score.New(score.WithOverbondPenalty(50))
	require.NoError(t, err)
	assert.Equal(t, 50.0, s.Penalty())

	h, err := s.Atom(g, ids[0])
	require.NoError(t, err)
	assert.InDelta(t, 50, h.Score, eps)

	_, err = score.New(score.WithOverbondPenalty(-1))
	assert.ErrorIs(t, err, score.ErrOptionViolation)
}

func TestAtom_Errors(t *testing.T) {
	_, err := score.Default().Atom(nil, 0)
	assert.ErrorIs(t, err, score.ErrGraphNil)

	_, err = score.Default().Atom(molecule.NewGraph(), 3)
	assert.ErrorIs(t, err, molecule.ErrAtomNotFound)
}
