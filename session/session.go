// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: One play-through: a molecule graph, the active level, and the
//       pending "advance to next level" intent raised by a passing submission.
// Concurrency:
//   - Session state (level cursor, pending advance) is guarded by mu; the
//     graph carries its own lock.
//   - Logging and metrics happen here only; the library packages stay silent.

// Package session drives the molecule core the way a game front end does:
// it gates placements by the active level, forwards bond attempts to the
// validator, and turns submissions into outcomes and level changes.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/molaudionet/molbit/element"
	"github.com/molaudionet/molbit/formula"
	"github.com/molaudionet/molbit/level"
	"github.com/molaudionet/molbit/molecule"
	"github.com/molaudionet/molbit/score"
)

// Sentinel errors for session operations.
var (
	// ErrElementNotAllowed indicates a placement outside the active level's palette.
	ErrElementNotAllowed = errors.New("session: element not allowed on this level")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("session: invalid option supplied")
)

// Option configures a Session.
type Option func(*Session)

// WithCatalog replaces the built-in level catalog.
func WithCatalog(c *level.Catalog) Option {
	return func(s *Session) {
		if c == nil || c.Len() == 0 {
			s.err = fmt.Errorf("%w: catalog must hold at least one level", ErrOptionViolation)
			return
		}
		s.catalog = c
	}
}

// WithElementTable sets the element table of the session's graph.
func WithElementTable(t *element.Table) Option {
	return func(s *Session) {
		if t != nil {
			s.table = t
		}
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// WithMatcher replaces the default matcher (DefaultPassThreshold, default scorer).
func WithMatcher(m *level.Matcher) Option {
	return func(s *Session) {
		if m != nil {
			s.matcher = m
		}
	}
}

// Session is a single player's game state.
type Session struct {
	mu sync.Mutex

	id      uuid.UUID
	graph   *molecule.Graph
	table   *element.Table
	catalog *level.Catalog
	matcher *level.Matcher
	log     *zap.Logger
	metrics *Metrics

	index       int
	pending     bool
	pendingNext int

	err error
}

// New creates a session positioned on the first level with an empty graph.
// Errors: ErrOptionViolation, level.ErrOptionViolation.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		id:      uuid.New(),
		table:   element.Default(),
		catalog: level.Default(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.err != nil {
		return nil, s.err
	}
	if s.matcher == nil {
		m, err := level.NewMatcher(level.WithCatalog(s.catalog))
		if err != nil {
			return nil, err
		}
		s.matcher = m
	}

	s.graph = molecule.NewGraph(molecule.WithElementTable(s.table))
	s.log = s.log.With(zap.String("session", s.id.String()))
	s.log.Debug("session started", zap.Int("levels", s.catalog.Len()))

	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id.String() }

// Graph returns the session's molecule graph.
func (s *Session) Graph() *molecule.Graph { return s.graph }

// Catalog returns the level catalog in play.
func (s *Session) Catalog() *level.Catalog { return s.catalog }

// Level returns the active level and its index.
func (s *Session) Level() (level.Level, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentLocked(), s.index
}

func (s *Session) currentLocked() level.Level {
	l, _ := s.catalog.At(s.index)
	return l
}

// LoadLevel selects the level at index, clears the graph and drops any
// pending advance.
// Errors: level.ErrLevelNotFound.
func (s *Session) LoadLevel(index int) (level.Level, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked(index)
}

func (s *Session) loadLocked(index int) (level.Level, error) {
	l, err := s.catalog.At(index)
	if err != nil {
		return level.Level{}, fmt.Errorf("%w: index %d", err, index)
	}
	s.index = index
	s.pending = false
	s.graph.Clear()
	s.log.Info("level loaded", zap.Int("index", index), zap.String("title", l.Title))

	return l, nil
}

// PlaceAtom adds an atom of sym at (x, y) if the active level allows it.
// Errors: ErrElementNotAllowed, element.ErrUnknownElement.
func (s *Session) PlaceAtom(sym element.Symbol, x, y float64) (molecule.Atom, error) {
	s.mu.Lock()
	lvl := s.currentLocked()
	s.mu.Unlock()

	if !lvl.Allows(sym) {
		s.metrics.atomRejected()
		s.log.Info("placement refused", zap.String("element", string(sym)), zap.Int("level", lvl.ID))
		return molecule.Atom{}, fmt.Errorf("%w: %q on %q", ErrElementNotAllowed, sym, lvl.Title)
	}

	a, err := s.graph.AddAtom(sym, molecule.WithPosition(x, y))
	if err != nil {
		s.log.Info("placement failed", zap.String("element", string(sym)), zap.Error(err))
		return molecule.Atom{}, err
	}
	s.metrics.atomPlaced()
	s.log.Debug("atom placed", zap.Int("atom", int(a.ID)), zap.String("element", string(sym)))

	return a, nil
}

// Bond asks the validator for a bond between a and b.
// Errors: the *molecule.BondError returned by molecule.Graph.TryBond.
func (s *Session) Bond(a, b molecule.AtomID, order molecule.BondOrder) (molecule.Bond, error) {
	bond, err := s.graph.TryBond(a, b, order)
	if err != nil {
		s.metrics.bondRejected(err)
		s.log.Info("bond rejected",
			zap.Int("a", int(a)),
			zap.Int("b", int(b)),
			zap.Stringer("order", order),
			zap.Error(err),
		)
		return molecule.Bond{}, err
	}
	s.metrics.bondFormed(order)
	s.log.Debug("bond formed", zap.String("bond", bond.ID), zap.Stringer("order", order))

	return bond, nil
}

// Status is a read-only summary of the canvas.
type Status struct {
	Level        level.Level
	Formula      string
	Pretty       string
	Mass         float64
	Completeness float64
	Atoms        int
	Bonds        int
	Fragments    int
	// Unsatisfied lists atoms scoring below full marks, in id order.
	Unsatisfied []score.AtomScore
}

// Status derives formula, mass and completeness from the current graph.
func (s *Session) Status() Status {
	lvl, _ := s.Level()
	scorer := s.matcher.Scorer()

	st := Status{
		Level:        lvl,
		Formula:      formula.Formula(s.graph),
		Mass:         formula.MolarMass(s.graph),
		Completeness: scorer.Score(s.graph),
		Atoms:        s.graph.AtomCount(),
		Bonds:        len(s.graph.Bonds()),
		Fragments:    len(s.graph.Fragments()),
	}
	st.Pretty = formula.Pretty(st.Formula)
	for _, row := range scorer.Breakdown(s.graph) {
		if !row.Satisfied() {
			st.Unsatisfied = append(st.Unsatisfied, row)
		}
	}
	s.metrics.observe(st.Completeness)

	return st
}

// Submit evaluates the canvas against the active level. A LevelPass on a
// non-final level records a pending advance (see Advance); the graph is
// left untouched.
func (s *Session) Submit() level.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	lvl := s.currentLocked()
	out := s.matcher.Evaluate(lvl, s.graph)

	// The matcher may have been built without a catalog; the session's own
	// cursor is authoritative.
	out.Advance, out.NextIndex = false, 0
	if out.Kind == level.LevelPass && !s.catalog.IsFinal(s.index) {
		out.Advance, out.NextIndex = true, s.index+1
		s.pending, s.pendingNext = true, s.index+1
	}

	s.metrics.submitted(out.Kind.String(), out.Completeness)
	s.log.Info("submission",
		zap.Int("level", lvl.ID),
		zap.Stringer("outcome", out.Kind),
		zap.String("formula", out.Formula),
		zap.Float64("completeness", out.Completeness),
		zap.Bool("advance", out.Advance),
	)

	return out
}

// Pending reports whether a passing submission is waiting to advance.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pending
}

// Advance applies a pending advance, loading the next level and clearing
// the graph. ok is false when nothing is pending.
func (s *Session) Advance() (lvl level.Level, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pending {
		return level.Level{}, false
	}
	l, err := s.loadLocked(s.pendingNext)
	if err != nil {
		// Catalogs are immutable, so pendingNext always resolves.
		s.pending = false
		return level.Level{}, false
	}

	return l, true
}

// Hint returns the active level's hint text.
func (s *Session) Hint() string {
	lvl, _ := s.Level()
	return lvl.Hint
}

// Clear removes every atom and bond from the canvas; the level is kept.
func (s *Session) Clear() {
	s.graph.Clear()
	s.log.Debug("canvas cleared")
}
