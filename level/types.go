// SPDX-License-Identifier: MIT

// Package level holds the static level catalog and the objective matcher
// that turns a submitted molecule.Graph into an Outcome.
//
// A Level either targets a formula ("CH4") or, when TargetFormula is nil,
// is a free-build level judged by completeness alone. Catalogs are loaded
// once (Default or Load) and never mutated.
package level

import (
	"errors"
	"slices"

	"github.com/molaudionet/molbit/element"
)

// Sentinel errors for catalog access and loading.
var (
	// ErrLevelNotFound indicates an index or id outside the catalog.
	ErrLevelNotFound = errors.New("level: level not found")

	// ErrInvalidCatalog indicates a catalog document failed validation.
	ErrInvalidCatalog = errors.New("level: invalid level catalog")

	// ErrOptionViolation indicates an invalid MatcherOption value.
	ErrOptionViolation = errors.New("level: invalid option supplied")
)

// BondCategory is the kind of bonding a level expects. It is descriptive
// only; the matcher never checks it.
type BondCategory string

// Bond categories.
const (
	Covalent  BondCategory = "covalent"
	IonicOnly BondCategory = "ionic"
	Mixed     BondCategory = "mixed"
)

// Level is one objective of the game.
type Level struct {
	ID            int              `yaml:"id" validate:"required,gt=0"`
	Title         string           `yaml:"title" validate:"required"`
	Objective     string           `yaml:"objective" validate:"required"`
	TargetFormula *string          `yaml:"target_formula,omitempty" validate:"omitempty,min=1"`
	Elements      []element.Symbol `yaml:"elements" validate:"required,min=1,unique,dive,required"`
	Hint          string           `yaml:"hint"`
	BondCategory  BondCategory     `yaml:"bond_category" validate:"required,oneof=covalent ionic mixed"`
}

// FreeBuild reports whether the level has no target formula.
func (l Level) FreeBuild() bool { return l.TargetFormula == nil }

// Target returns the target formula, or "" for free-build levels.
func (l Level) Target() string {
	if l.TargetFormula == nil {
		return ""
	}

	return *l.TargetFormula
}

// Allows reports whether sym may be placed while this level is active.
func (l Level) Allows(sym element.Symbol) bool { return slices.Contains(l.Elements, sym) }

// Catalog is an ordered, immutable list of levels.
type Catalog struct {
	levels []Level
}

// NewCatalog wraps levels without validation. Use Load for untrusted input.
func NewCatalog(levels ...Level) *Catalog {
	return &Catalog{levels: slices.Clone(levels)}
}

// Len returns the number of levels.
func (c *Catalog) Len() int { return len(c.levels) }

// Levels returns a copy of the levels in play order.
func (c *Catalog) Levels() []Level { return slices.Clone(c.levels) }

// At returns the level at index (0-based play order).
// Errors: ErrLevelNotFound.
func (c *Catalog) At(index int) (Level, error) {
	if index < 0 || index >= len(c.levels) {
		return Level{}, ErrLevelNotFound
	}

	return c.levels[index], nil
}

// IndexOf returns the play-order index of the level with the given id, or -1.
func (c *Catalog) IndexOf(id int) int {
	return slices.IndexFunc(c.levels, func(l Level) bool { return l.ID == id })
}

// ByID returns the level with the given id.
// Errors: ErrLevelNotFound.
func (c *Catalog) ByID(id int) (Level, error) {
	i := c.IndexOf(id)
	if i < 0 {
		return Level{}, ErrLevelNotFound
	}

	return c.levels[i], nil
}

// IsFinal reports whether index is the last level.
func (c *Catalog) IsFinal(index int) bool { return index == len(c.levels)-1 }

// Next returns the level after index; ok is false past the end.
func (c *Catalog) Next(index int) (lvl Level, ok bool) {
	if index < 0 || index+1 >= len(c.levels) {
		return Level{}, false
	}

	return c.levels[index+1], true
}
