// SPDX-License-Identifier: MIT
//
// File: matcher.go
// Role: Objective matching: formula + completeness -> Outcome.
// Policy:
//   - Formula comparison is canonical on both sides, so a target written
//     "NaCl" matches a derived "ClNa".
//   - Advancing to the next level is emitted as intent (Outcome.Advance);
//     scheduling it is the caller's concern.

package level

import (
	"fmt"
	"math"

	"github.com/molaudionet/molbit/formula"
	"github.com/molaudionet/molbit/molecule"
	"github.com/molaudionet/molbit/score"
)

// DefaultPassThreshold is the completeness needed to pass a level or to
// earn the success variant of a free build.
const DefaultPassThreshold = 95.0

// OutcomeKind classifies a submission.
type OutcomeKind int

// Outcome kinds.
const (
	FreeBuildKeepImproving OutcomeKind = iota
	FreeBuildSuccess
	LevelPass
	FormulaMismatch
	IncompleteStructure
)

// String returns a stable snake_case name, used for metrics labels.
func (k OutcomeKind) String() string {
	switch k {
	case FreeBuildKeepImproving:
		return "free_build_keep_improving"
	case FreeBuildSuccess:
		return "free_build_success"
	case LevelPass:
		return "level_pass"
	case FormulaMismatch:
		return "formula_mismatch"
	case IncompleteStructure:
		return "incomplete_structure"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of evaluating a submission against a level.
type Outcome struct {
	Kind OutcomeKind

	// Formula is the derived formula of the submitted graph.
	Formula string

	// Expected is the level's target as written; empty for free builds.
	// Matching is order-insensitive: "NaCl" accepts a derived "ClNa".
	Expected string

	// Completeness is the molecule score in [0, 100].
	Completeness float64

	// Advance is set on LevelPass when a following level exists;
	// NextIndex is then its catalog index.
	Advance   bool
	NextIndex int
}

// Passed reports whether the outcome is a success variant.
func (o Outcome) Passed() bool { return o.Kind == LevelPass || o.Kind == FreeBuildSuccess }

// String renders the user-facing feedback sentence.
func (o Outcome) String() string {
	pct := int(math.Round(o.Completeness))
	switch o.Kind {
	case FreeBuildSuccess:
		return fmt.Sprintf("Great molecule! %s is %d%% complete!", o.Formula, pct)
	case FreeBuildKeepImproving:
		return fmt.Sprintf("Molecule is only %d%% complete. Keep improving!", pct)
	case LevelPass:
		return fmt.Sprintf("Level Complete! %s built successfully!", o.Formula)
	case FormulaMismatch:
		return fmt.Sprintf("Not quite! You built %s, but need %s", o.Formula, o.Expected)
	case IncompleteStructure:
		return fmt.Sprintf("Correct formula, but only %d%% complete. Check your bonds!", pct)
	default:
		return o.Kind.String()
	}
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithPassThreshold sets the completeness needed to pass. Values outside
// (0, 100] surface as ErrOptionViolation from NewMatcher.
func WithPassThreshold(t float64) MatcherOption {
	return func(m *Matcher) {
		if !(t > 0 && t <= 100) {
			m.err = fmt.Errorf("%w: pass threshold must be in (0, 100] (got %g)", ErrOptionViolation, t)
			return
		}
		m.threshold = t
	}
}

// WithScorer replaces the default completeness scorer. nil is ignored.
func WithScorer(s *score.Scorer) MatcherOption {
	return func(m *Matcher) {
		if s != nil {
			m.scorer = s
		}
	}
}

// WithCatalog lets the matcher emit advance intent on LevelPass.
func WithCatalog(c *Catalog) MatcherOption {
	return func(m *Matcher) { m.catalog = c }
}

// Matcher evaluates submissions.
type Matcher struct {
	threshold float64
	scorer    *score.Scorer
	catalog   *Catalog
	err       error
}

// NewMatcher builds a Matcher; defaults are DefaultPassThreshold,
// score.Default() and no catalog (no advance intent).
// Errors: ErrOptionViolation.
func NewMatcher(opts ...MatcherOption) (*Matcher, error) {
	m := &Matcher{threshold: DefaultPassThreshold, scorer: score.Default()}
	for _, opt := range opts {
		opt(m)
	}
	if m.err != nil {
		return nil, m.err
	}

	return m, nil
}

// Threshold returns the configured pass threshold.
func (m *Matcher) Threshold() float64 { return m.threshold }

// Scorer returns the scorer used for completeness.
func (m *Matcher) Scorer() *score.Scorer { return m.scorer }

// Evaluate compares g against lvl.
//
//   - Free build: FreeBuildSuccess when completeness >= threshold, else
//     FreeBuildKeepImproving.
//   - Formula differs from target: FormulaMismatch.
//   - Formula matches, completeness below threshold: IncompleteStructure.
//   - Otherwise LevelPass, with Advance set when lvl is in the catalog and
//     is not the final level.
func (m *Matcher) Evaluate(lvl Level, g *molecule.Graph) Outcome {
	out := Outcome{
		Formula:      formula.Formula(g),
		Expected:     lvl.Target(),
		Completeness: m.scorer.Score(g),
	}

	if lvl.FreeBuild() {
		out.Kind = FreeBuildKeepImproving
		if out.Completeness >= m.threshold {
			out.Kind = FreeBuildSuccess
		}
		return out
	}

	if !m.formulaMatches(out.Formula, out.Expected) {
		out.Kind = FormulaMismatch
		return out
	}
	if out.Completeness < m.threshold {
		out.Kind = IncompleteStructure
		return out
	}

	out.Kind = LevelPass
	if m.catalog != nil {
		if i := m.catalog.IndexOf(lvl.ID); i >= 0 && !m.catalog.IsFinal(i) {
			out.Advance = true
			out.NextIndex = i + 1
		}
	}

	return out
}

func (m *Matcher) formulaMatches(actual, target string) bool {
	if actual == target {
		return true
	}
	canon, err := formula.Canonical(target)
	if err != nil {
		return false
	}

	return actual == canon
}

var defaultMatcher = &Matcher{threshold: DefaultPassThreshold, scorer: score.Default(), catalog: Default()}

// EvaluateSubmission evaluates g against lvl with default thresholds. Advance
// intent is resolved against the built-in catalog by level id; use a Matcher
// built WithCatalog for loaded catalogs.
func EvaluateSubmission(lvl Level, g *molecule.Graph) Outcome {
	return defaultMatcher.Evaluate(lvl, g)
}
