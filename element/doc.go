// SPDX-License-Identifier: MIT

// Package element provides the immutable element table used by every other
// molbit package: symbol, display name, valence capacity, molar mass and the
// ionic-capable flag, plus the declarative ion-charge table consulted when an
// ionic bond forms.
//
// The table is pure data. It is built once (Default) and never mutated after
// construction, so a *Table may be shared freely between sessions.
//
// Reference configuration (Default):
//
//	Symbol  Name        Valence  Mass     Ionic  Ion
//	H       Hydrogen    1        1.008    -      -
//	C       Carbon      4        12.011   -      -
//	N       Nitrogen    3        14.007   -      -
//	O       Oxygen      2        15.999   -      -
//	P       Phosphorus  5        30.974   -      -
//	S       Sulfur      6        32.06    -      -
//	Cl      Chlorine    1        35.45    yes    -
//	Na      Sodium      1        22.990   yes    +
//	K       Potassium   1        39.098   yes    +
//	Ca      Calcium     2        40.078   yes    2+
//
// Errors:
//
//	ErrUnknownElement - symbol is not present in the table.
//	ErrInvalidTable   - NewTable received inconsistent entries.
package element
