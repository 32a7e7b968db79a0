// SPDX-License-Identifier: MIT

// Package score computes how chemically complete a molecule.Graph is.
//
// Every atom contributes up to 100 points; the molecule score is
// total / (100 * atomCount) * 100, a value in [0, 100]. An empty graph
// scores 0.
//
// Ionic-capable elements:
//
//	at least one ionic bond        -> 100
//	bonds, but none ionic          -> 50
//	no bonds                       -> 0
//
// Covalent elements, with b = bond-equivalents and v = valence capacity:
//
//	b == v                         -> 100
//	b <  v                         -> b / v * 100
//	b >  v                         -> max(0, 100 - (b - v) * penalty)
//
// The over-bond penalty defaults to DefaultOverbondPenalty (30 points per
// excess bond-equivalent) and may be tuned with WithOverbondPenalty.
// Under-bonding degrades linearly; over-bonding degrades faster and can
// bottom out at 0.
package score
