// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/molaudionet/molbit/element"
	"github.com/molaudionet/molbit/formula"
	"github.com/molaudionet/molbit/level"
	"github.com/molaudionet/molbit/molecule"
	"github.com/molaudionet/molbit/session"
)

// errBadScript wraps every script decoding or reference problem.
var errBadScript = errors.New("play: invalid script")

// script is a recorded play-through:
//
//	level: 1
//	steps:
//	  - {action: place, element: C, as: c}
//	  - {action: place, element: H, as: h1, x: 40}
//	  - {action: bond, a: c, b: h1, order: single}
//	  - {action: submit}
//	  - {action: advance}
type script struct {
	Level int    `yaml:"level" validate:"gte=0"`
	Steps []step `yaml:"steps" validate:"required,min=1,dive"`
}

type step struct {
	Action  string  `yaml:"action" validate:"required,oneof=place bond submit advance level clear status hint"`
	Element string  `yaml:"element" validate:"required_if=Action place"`
	As      string  `yaml:"as"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	A       string  `yaml:"a" validate:"required_if=Action bond"`
	B       string  `yaml:"b" validate:"required_if=Action bond"`
	Order   string  `yaml:"order"`
	Level   int     `yaml:"level" validate:"required_if=Action level"`
}

var scriptValidator = validator.New(validator.WithRequiredStructEnabled())

func decodeScript(r io.Reader) (script, error) {
	var sc script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return script{}, fmt.Errorf("%w: %v", errBadScript, err)
	}
	if err := scriptValidator.Struct(sc); err != nil {
		return script{}, fmt.Errorf("%w: %v", errBadScript, err)
	}

	return sc, nil
}

func newPlayCmd(a *app) *cobra.Command {
	var (
		scriptPath  string
		levelID     int
		levelsFile  string
		dumpMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Replay a YAML play script through a game session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(scriptPath)
			if err != nil {
				return err
			}
			defer f.Close()

			sc, err := decodeScript(f)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("level") {
				sc.Level = levelID
			}

			cat, err := a.catalog(levelsFile)
			if err != nil {
				return err
			}
			metrics := session.NewMetrics("molbit")
			s, err := a.newSession(cat, metrics)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if err := runScript(w, s, sc); err != nil {
				return err
			}
			if dumpMetrics {
				return writeMetrics(w, metrics)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "Path to the YAML play script")
	cmd.Flags().IntVar(&levelID, "level", 0, "Start on this level id (overrides the script)")
	cmd.Flags().StringVar(&levelsFile, "levels", "", "YAML level catalog")
	cmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "Print session metrics in Prometheus text format")
	_ = cmd.MarkFlagRequired("script")

	return cmd
}

// runScript executes sc against s, printing one line per step. Game-level
// rejections are reported and play continues; unknown atom references and
// levels abort.
func runScript(w io.Writer, s *session.Session, sc script) error {
	if sc.Level != 0 {
		if err := selectLevel(w, s, sc.Level); err != nil {
			return err
		}
	} else {
		lvl, _ := s.Level()
		fmt.Fprintf(w, "* %s\n", lvl.Title)
	}

	refs := make(map[string]molecule.AtomID)
	for i, st := range sc.Steps {
		switch st.Action {
		case "place":
			atom, err := s.PlaceAtom(element.Symbol(st.Element), st.X, st.Y)
			if err != nil {
				fmt.Fprintf(w, "! %v\n", err)
				continue
			}
			if st.As != "" {
				refs[st.As] = atom.ID
			}
			fmt.Fprintf(w, "+ %s#%d\n", atom.Element, atom.ID)

		case "bond":
			x, err := resolveRef(refs, st.A)
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			y, err := resolveRef(refs, st.B)
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			order := molecule.Single
			if st.Order != "" {
				if order, err = molecule.ParseBondOrder(st.Order); err != nil {
					return fmt.Errorf("%w: step %d: %v", errBadScript, i+1, err)
				}
			}
			b, err := s.Bond(x, y, order)
			if err != nil {
				fmt.Fprintf(w, "! %v\n", err)
				continue
			}
			fmt.Fprintf(w, "+ %s %d-%d %s\n", b.ID, b.A, b.B, b.Order)

		case "submit":
			fmt.Fprintf(w, "> %s\n", s.Submit())

		case "advance":
			lvl, ok := s.Advance()
			if !ok {
				fmt.Fprintln(w, "* nothing to advance")
				continue
			}
			clear(refs)
			fmt.Fprintf(w, "* %s\n", lvl.Title)

		case "level":
			if err := selectLevel(w, s, st.Level); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			clear(refs)

		case "clear":
			s.Clear()
			clear(refs)
			fmt.Fprintln(w, "~ canvas cleared")

		case "status":
			writeStatus(w, s.Status())

		case "hint":
			fmt.Fprintf(w, "? %s\n", s.Hint())
		}
	}

	return nil
}

func selectLevel(w io.Writer, s *session.Session, id int) error {
	idx := s.Catalog().IndexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %d", level.ErrLevelNotFound, id)
	}
	lvl, err := s.LoadLevel(idx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "* %s\n", lvl.Title)

	return nil
}

// resolveRef accepts a name bound with `as` or a numeric atom id.
func resolveRef(refs map[string]molecule.AtomID, ref string) (molecule.AtomID, error) {
	if id, ok := refs[ref]; ok {
		return id, nil
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown atom reference %q", errBadScript, ref)
	}

	return molecule.AtomID(n), nil
}

func writeStatus(w io.Writer, st session.Status) {
	name := st.Pretty
	if name == "" {
		name = "(empty)"
	}
	fmt.Fprintf(w, "= %s %s g/mol %d%% (%d atoms, %d bonds, %d fragments)\n",
		name, formula.FormatMass(st.Mass), int(math.Round(st.Completeness)), st.Atoms, st.Bonds, st.Fragments)
	for _, row := range st.Unsatisfied {
		fmt.Fprintf(w, "  %s#%d %d/%d bonds, %.0f%%\n", row.Symbol, row.ID, row.BondCount, row.Valence, row.Score)
	}
}

func writeMetrics(w io.Writer, m *session.Metrics) error {
	families, err := m.Registry().Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
