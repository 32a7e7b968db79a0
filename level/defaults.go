// SPDX-License-Identifier: MIT

package level

import "github.com/molaudionet/molbit/element"

func target(f string) *string { return &f }

var defaultLevels = []Level{
	{
		ID:            1,
		Title:         "Level 1: Methane",
		Objective:     "Build CH₄ (1 Carbon + 4 Hydrogens)",
		TargetFormula: target("CH4"),
		Elements:      []element.Symbol{element.Carbon, element.Hydrogen},
		Hint:          "Carbon needs 4 bonds, each Hydrogen needs 1. Make 4 C-H single bonds.",
		BondCategory:  Covalent,
	},
	{
		ID:            2,
		Title:         "Level 2: Water",
		Objective:     "Build H₂O (2 Hydrogens + 1 Oxygen)",
		TargetFormula: target("H2O"),
		Elements:      []element.Symbol{element.Hydrogen, element.Oxygen},
		Hint:          "Oxygen needs 2 bonds. Connect 2 Hydrogens to the Oxygen.",
		BondCategory:  Covalent,
	},
	{
		ID:            3,
		Title:         "Level 3: Nitrogen Gas",
		Objective:     "Build N₂ (2 Nitrogens with triple bond)",
		TargetFormula: target("N2"),
		Elements:      []element.Symbol{element.Nitrogen},
		Hint:          "Each Nitrogen needs 3 bonds. Use a TRIPLE bond between them.",
		BondCategory:  Covalent,
	},
	{
		ID:            4,
		Title:         "Level 4: Table Salt",
		Objective:     "Build NaCl (Sodium + Chlorine with IONIC bond)",
		TargetFormula: target("NaCl"),
		Elements:      []element.Symbol{element.Sodium, element.Chlorine},
		Hint:          "This is IONIC! Na gives an electron to Cl. Use an ionic bond.",
		BondCategory:  IonicOnly,
	},
	{
		ID:            5,
		Title:         "Level 5: Oxygen Gas",
		Objective:     "Build O₂ (2 Oxygens with double bond)",
		TargetFormula: target("O2"),
		Elements:      []element.Symbol{element.Oxygen},
		Hint:          "Each Oxygen needs 2 bonds. Use a DOUBLE bond between them.",
		BondCategory:  Covalent,
	},
	{
		ID:        6,
		Title:     "Free Build",
		Objective: "Build any molecule you want!",
		Elements: []element.Symbol{
			element.Hydrogen, element.Carbon, element.Nitrogen, element.Oxygen, element.Phosphorus,
			element.Sulfur, element.Chlorine, element.Sodium, element.Potassium, element.Calcium,
		},
		Hint:         "Experiment! Mix covalent and ionic bonds.",
		BondCategory: Mixed,
	},
}

// Default returns the six built-in levels.
func Default() *Catalog { return NewCatalog(defaultLevels...) }
