// SPDX-License-Identifier: MIT

package session

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/molaudionet/molbit/molecule"
)

// Metrics holds the Prometheus collectors a Session updates. Each Metrics
// owns its registry, so several sessions (or tests) never collide on
// registration.
type Metrics struct {
	registry *prometheus.Registry

	AtomsPlaced   prometheus.Counter
	AtomsRejected prometheus.Counter
	BondsFormed   *prometheus.CounterVec
	BondsRejected *prometheus.CounterVec
	Submissions   *prometheus.CounterVec
	Completeness  prometheus.Gauge
}

// NewMetrics creates the collectors under namespace and registers them
// with a fresh registry.
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	atomsPlaced := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "atoms_placed_total",
			Help:      "Total number of atoms placed on the canvas",
		},
	)

	atomsRejected := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "atoms_rejected_total",
			Help:      "Total number of placements refused by the active level",
		},
	)

	bondsFormed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bonds_formed_total",
			Help:      "Total number of bonds formed",
		},
		[]string{"order"},
	)

	bondsRejected := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bonds_rejected_total",
			Help:      "Total number of bond attempts rejected by the validator",
		},
		[]string{"reason"},
	)

	submissions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Total number of submissions by outcome",
		},
		[]string{"outcome"},
	)

	completeness := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "completeness_percent",
			Help:      "Completeness of the molecule at the last status or submission",
		},
	)

	registry.MustRegister(
		atomsPlaced,
		atomsRejected,
		bondsFormed,
		bondsRejected,
		submissions,
		completeness,
	)

	return &Metrics{
		registry:      registry,
		AtomsPlaced:   atomsPlaced,
		AtomsRejected: atomsRejected,
		BondsFormed:   bondsFormed,
		BondsRejected: bondsRejected,
		Submissions:   submissions,
		Completeness:  completeness,
	}
}

// Registry exposes the registry for scraping or gathering.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// rejectReason maps a validator error to a bounded label value.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, molecule.ErrSelfBond):
		return "self_bond"
	case errors.Is(err, molecule.ErrAtomNotFound):
		return "atom_not_found"
	case errors.Is(err, molecule.ErrDuplicateBond):
		return "duplicate_bond"
	case errors.Is(err, molecule.ErrInvalidBondOrder):
		return "invalid_bond_order"
	case errors.Is(err, molecule.ErrInvalidIonicPair):
		return "invalid_ionic_pair"
	case errors.Is(err, molecule.ErrSameChargePolarity):
		return "same_charge_polarity"
	default:
		return "other"
	}
}

// The helpers below tolerate a nil *Metrics so a Session without metrics
// needs no branches at call sites.

func (m *Metrics) atomPlaced() {
	if m != nil {
		m.AtomsPlaced.Inc()
	}
}

func (m *Metrics) atomRejected() {
	if m != nil {
		m.AtomsRejected.Inc()
	}
}

func (m *Metrics) bondFormed(order molecule.BondOrder) {
	if m != nil {
		m.BondsFormed.WithLabelValues(order.String()).Inc()
	}
}

func (m *Metrics) bondRejected(err error) {
	if m != nil {
		m.BondsRejected.WithLabelValues(rejectReason(err)).Inc()
	}
}

func (m *Metrics) submitted(outcome string, completeness float64) {
	if m != nil {
		m.Submissions.WithLabelValues(outcome).Inc()
		m.Completeness.Set(completeness)
	}
}

func (m *Metrics) observe(completeness float64) {
	if m != nil {
		m.Completeness.Set(completeness)
	}
}
