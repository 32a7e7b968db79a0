// SPDX-License-Identifier: MIT

package level_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molaudionet/molbit/level"
)

const twoLevels = `
levels:
  - id: 1
    title: "Ammonia"
    objective: "Build NH3"
    target_formula: NH3
    elements: [N, H]
    hint: "Nitrogen takes three hydrogens."
    bond_category: covalent
  - id: 2
    title: "Sandbox"
    objective: "Anything goes"
    elements: [C, H, O]
    bond_category: mixed
`

func TestLoad_Valid(t *testing.T) {
	cat, err := level.Load(strings.NewReader(twoLevels), nil)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())

	first, err := cat.At(0)
	require.NoError(t, err)
	assert.Equal(t, "NH3", first.Target())
	assert.Equal(t, level.Covalent, first.BondCategory)

	second, err := cat.At(1)
	require.NoError(t, err)
	assert.True(t, second.FreeBuild())
	assert.Empty(t, second.Hint)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "", "empty document"},
		{"no levels", "levels: []\n", "Levels"},
		{"syntax", "levels: [\n", ""},
		{"unknown field", "levels:\n  - id: 1\n    colour: red\n", "colour"},
		{"missing title", `
levels:
  - id: 1
    objective: o
    elements: [H]
    bond_category: covalent
`, "Title"},
		{"bad category", `
levels:
  - id: 1
    title: t
    objective: o
    elements: [H]
    bond_category: metallic
`, "BondCategory"},
		{"duplicate id", `
levels:
  - {id: 1, title: a, objective: o, elements: [H], bond_category: covalent}
  - {id: 1, title: b, objective: o, elements: [O], bond_category: covalent}
`, "duplicate level id 1"},
		{"unknown element", `
levels:
  - {id: 1, title: a, objective: o, elements: [H, Xe], bond_category: covalent}
`, `unknown element "Xe"`},
		{"malformed target", `
levels:
  - {id: 1, title: a, objective: o, target_formula: h2o, elements: [H, O], bond_category: covalent}
`, "malformed formula"},
		{"unknown target element", `
levels:
  - {id: 1, title: a, objective: o, target_formula: Fe2O3, elements: [O], bond_category: covalent}
`, `unknown element "Fe"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := level.Load(strings.NewReader(tt.doc), nil)
			require.ErrorIs(t, err, level.ErrInvalidCatalog)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoLevels), 0o600))

	cat, err := level.LoadFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	_, err = level.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, level.ErrInvalidCatalog)
}
