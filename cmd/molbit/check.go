// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/molaudionet/molbit/element"
	"github.com/molaudionet/molbit/formula"
	"github.com/molaudionet/molbit/molecule"
)

var errBadStructure = errors.New("check: malformed structure")

// bondArg is one "--bonds" entry: "0-1" or "0-1:double".
type bondArg struct {
	a, b  molecule.AtomID
	order molecule.BondOrder
}

func parseAtoms(s string) ([]element.Symbol, error) {
	var syms []element.Symbol
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		syms = append(syms, element.Symbol(part))
	}
	if len(syms) == 0 {
		return nil, fmt.Errorf("%w: no atoms", errBadStructure)
	}

	return syms, nil
}

func parseBonds(s string) ([]bondArg, error) {
	var out []bondArg
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		b := bondArg{order: molecule.Single}
		pair, orderText, hasOrder := strings.Cut(part, ":")
		if hasOrder {
			o, err := molecule.ParseBondOrder(orderText)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", errBadStructure, part, err)
			}
			b.order = o
		}
		left, right, ok := strings.Cut(pair, "-")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not i-j", errBadStructure, part)
		}
		x, errA := strconv.Atoi(left)
		y, errB := strconv.Atoi(right)
		if errA != nil || errB != nil {
			return nil, fmt.Errorf("%w: %q has a non-numeric index", errBadStructure, part)
		}
		b.a, b.b = molecule.AtomID(x), molecule.AtomID(y)
		out = append(out, b)
	}

	return out, nil
}

// buildStructure places syms in order (ids 0..n-1) and forms bonds, stopping
// at the first rejected bond.
func buildStructure(syms []element.Symbol, bonds []bondArg) (*molecule.Graph, error) {
	g := molecule.NewGraph()
	for _, sym := range syms {
		if _, err := g.AddAtom(sym); err != nil {
			return nil, err
		}
	}
	for _, b := range bonds {
		if _, err := g.TryBond(b.a, b.b, b.order); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		atoms      string
		bonds      string
		levelID    int
		levelsFile string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Score an ad-hoc structure and optionally judge it against a level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			syms, err := parseAtoms(atoms)
			if err != nil {
				return err
			}
			bs, err := parseBonds(bonds)
			if err != nil {
				return err
			}
			g, err := buildStructure(syms, bs)
			if err != nil {
				return err
			}

			cat, err := a.catalog(levelsFile)
			if err != nil {
				return err
			}
			m, err := a.matcher(cat)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			writeReport(w, g, m.Scorer().Score(g))
			if levelID == 0 {
				return nil
			}
			lvl, err := cat.ByID(levelID)
			if err != nil {
				return fmt.Errorf("%w: id %d", err, levelID)
			}
			fmt.Fprintf(w, "%s: %s\n", lvl.Title, m.Evaluate(lvl, g))

			return nil
		},
	}
	cmd.Flags().StringVar(&atoms, "atoms", "", "Comma-separated element symbols; atom i gets id i")
	cmd.Flags().StringVar(&bonds, "bonds", "", "Comma-separated bonds i-j[:order]")
	cmd.Flags().IntVar(&levelID, "level", 0, "Judge against this level id")
	cmd.Flags().StringVar(&levelsFile, "levels", "", "YAML level catalog")
	_ = cmd.MarkFlagRequired("atoms")

	return cmd
}

func writeReport(w io.Writer, g *molecule.Graph, completeness float64) {
	f := formula.Formula(g)
	fmt.Fprintf(w, "formula:      %s\n", formula.Pretty(f))
	fmt.Fprintf(w, "molar mass:   %s g/mol\n", formula.FormatMass(formula.MolarMass(g)))
	fmt.Fprintf(w, "completeness: %d%%\n", int(math.Round(completeness)))
	for _, atom := range g.Atoms() {
		n, _ := g.BondCount(atom.ID)
		fmt.Fprintf(w, "  %s#%d bonds=%d\n", atom.Label(), atom.ID, n)
	}
}
