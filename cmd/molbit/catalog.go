// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/molaudionet/molbit/element"
	"github.com/molaudionet/molbit/formula"
)

func newElementsCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List the element palette",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			table := element.Default()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-4s %-12s %-8s %-9s %s\n", "SYM", "NAME", "VALENCE", "MASS", "ION")
			for _, sym := range table.Symbols() {
				e, _ := table.Lookup(sym)
				ion := "-"
				if c, ok := table.IonCharge(sym); ok {
					ion = string(sym) + c.String()
				}
				fmt.Fprintf(w, "%-4s %-12s %-8d %-9s %s\n", e.Symbol, e.Name, e.Valence, formula.FormatMass(e.Mass), ion)
			}
		},
	}
}

func newLevelsCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List the level catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog(file)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, l := range cat.Levels() {
				target := "free build"
				if !l.FreeBuild() {
					target = formula.Pretty(l.Target())
				}
				fmt.Fprintf(w, "%d. %s [%s] %s\n", l.ID, l.Title, l.BondCategory, target)
				fmt.Fprintf(w, "   %s\n", l.Objective)
				fmt.Fprintf(w, "   elements: %s\n", joinSymbols(l.Elements))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML level catalog (defaults to levels.file or the built-in levels)")

	return cmd
}

func joinSymbols(syms []element.Symbol) string {
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = string(s)
	}

	return strings.Join(parts, ", ")
}
