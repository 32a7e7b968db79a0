// SPDX-License-Identifier: MIT

package score

import (
	"errors"
	"fmt"
	"math"

	"github.com/molaudionet/molbit/element"
	"github.com/molaudionet/molbit/molecule"
)

// Tuning constants.
const (
	// MaxAtomScore is the contribution of a fully satisfied atom.
	MaxAtomScore = 100.0

	// PartialIonicScore is awarded to an ionic-capable atom that has bonds
	// but no ionic bond.
	PartialIonicScore = 50.0

	// DefaultOverbondPenalty is subtracted per excess bond-equivalent on a
	// covalent atom.
	DefaultOverbondPenalty = 30.0
)

// Sentinel errors.
var (
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("score: invalid option supplied")

	// ErrGraphNil indicates a nil graph was passed.
	ErrGraphNil = errors.New("score: graph is nil")
)

// Option configures a Scorer.
type Option func(*Scorer)

// WithOverbondPenalty sets the points removed per excess bond-equivalent.
// Negative values are recorded and surfaced as ErrOptionViolation by New.
func WithOverbondPenalty(p float64) Option {
	return func(s *Scorer) {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			s.err = fmt.Errorf("%w: overbond penalty must be a finite value >= 0 (got %g)", ErrOptionViolation, p)
			return
		}
		s.penalty = p
	}
}

// Scorer evaluates completeness. The zero value is not usable; call New
// or use the package-level Score.
type Scorer struct {
	penalty float64
	err     error
}

var defaultScorer = &Scorer{penalty: DefaultOverbondPenalty}

// New returns a Scorer configured by opts.
// Errors: ErrOptionViolation.
func New(opts ...Option) (*Scorer, error) {
	s := &Scorer{penalty: DefaultOverbondPenalty}
	for _, opt := range opts {
		opt(s)
	}
	if s.err != nil {
		return nil, s.err
	}

	return s, nil
}

// Default returns the scorer using DefaultOverbondPenalty.
func Default() *Scorer { return defaultScorer }

// Penalty returns the configured over-bond penalty.
func (s *Scorer) Penalty() float64 { return s.penalty }

// AtomScore is one row of a Breakdown.
type AtomScore struct {
	ID        molecule.AtomID
	Symbol    element.Symbol
	BondCount int
	Valence   int
	Ionic     bool // element is ionic-capable
	HasIonic  bool // atom participates in an ionic bond
	Score     float64
}

// Satisfied reports whether the atom earns the full MaxAtomScore.
func (a AtomScore) Satisfied() bool { return a.Score >= MaxAtomScore }

// Score returns the molecule completeness in [0, 100] using the default
// penalty. A nil or empty graph scores 0.
func Score(g *molecule.Graph) float64 { return defaultScorer.Score(g) }

// Score returns the molecule completeness in [0, 100].
// Complexity: O(V + E).
func (s *Scorer) Score(g *molecule.Graph) float64 {
	rows := s.Breakdown(g)
	if len(rows) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range rows {
		total += r.Score
	}

	return total / (MaxAtomScore * float64(len(rows))) * 100
}

// Atom returns the contribution of a single atom.
// Errors: ErrGraphNil, molecule.ErrAtomNotFound.
func (s *Scorer) Atom(g *molecule.Graph, id molecule.AtomID) (AtomScore, error) {
	if g == nil {
		return AtomScore{}, ErrGraphNil
	}
	a, err := g.Atom(id)
	if err != nil {
		return AtomScore{}, err
	}

	return s.rate(g, a)
}

// Breakdown returns the per-atom contributions sorted by atom id.
// A nil graph yields nil.
func (s *Scorer) Breakdown(g *molecule.Graph) []AtomScore {
	if g == nil {
		return nil
	}
	atoms := g.Atoms()
	out := make([]AtomScore, 0, len(atoms))
	for _, a := range atoms {
		row, err := s.rate(g, a)
		if err != nil {
			// atoms are only placed with known elements
			continue
		}
		out = append(out, row)
	}

	return out
}

func (s *Scorer) rate(g *molecule.Graph, a molecule.Atom) (AtomScore, error) {
	elem, err := g.Table().Lookup(a.Element)
	if err != nil {
		return AtomScore{}, err
	}
	bonds, err := g.BondsOf(a.ID)
	if err != nil {
		return AtomScore{}, err
	}
	row := AtomScore{ID: a.ID, Symbol: a.Element, Valence: elem.Valence, Ionic: elem.Ionic}
	for _, b := range bonds {
		row.BondCount += b.Order.Weight()
		if b.Order.IsIonic() {
			row.HasIonic = true
		}
	}

	if elem.Ionic {
		row.Score = ionicScore(row)
	} else {
		row.Score = s.covalentScore(row.BondCount, row.Valence)
	}

	return row, nil
}

func ionicScore(r AtomScore) float64 {
	switch {
	case r.HasIonic:
		return MaxAtomScore
	case r.BondCount > 0:
		return PartialIonicScore
	default:
		return 0
	}
}

func (s *Scorer) covalentScore(b, v int) float64 {
	switch {
	case b == v:
		return MaxAtomScore
	case b < v:
		return float64(b) / float64(v) * MaxAtomScore
	default:
		return math.Max(0, MaxAtomScore-float64(b-v)*s.penalty)
	}
}
