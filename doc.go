// SPDX-License-Identifier: MIT

// Package molbit is the rules core of a molecule-building game: place atoms,
// bond them, and check the result against level objectives.
//
// Everything is organized under these subpackages:
//
//	element/    the reference element table and ion polarity tags
//	molecule/   thread-safe atom/bond graph and the bond validator
//	score/      valence-based completeness scoring with per-atom breakdown
//	formula/    carbon-first formula, molar mass, subscript rendering, parsing
//	level/      level catalog (built-in or YAML) and the objective matcher
//	session/    one play-through with level gating, logging and metrics
//	cmd/molbit  CLI: elements, levels, play (scripted sessions), check
//
// Quick example (methane):
//
//	g := molecule.NewGraph()
//	c, _ := g.AddAtom(element.Carbon)
//	for i := 0; i < 4; i++ {
//		h, _ := g.AddAtom(element.Hydrogen)
//		_, _ = g.TryBond(c.ID, h.ID, molecule.Single)
//	}
//	formula.Formula(g) // "CH4"
//	score.Score(g)     // 100
//
// The library packages do no I/O and never log; session and cmd carry the
// zap/prometheus/viper plumbing.
package molbit
