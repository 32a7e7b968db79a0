// SPDX-License-Identifier: MIT
//
// File: load.go
// Role: YAML catalog decoding and validation.
// Policy:
//   - Struct-level rules come from `validate` tags (go-playground/validator).
//   - Cross-reference rules (unique ids, known elements, parsable targets)
//     are checked afterwards against the element table.
//   - All issues are collected and reported together, wrapped in
//     ErrInvalidCatalog.

package level

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/molaudionet/molbit/element"
	"github.com/molaudionet/molbit/formula"
)

// catalogDocument is the on-disk shape:
//
//	levels:
//	  - id: 1
//	    title: "Level 1: Methane"
//	    objective: "Build CH4"
//	    target_formula: CH4
//	    elements: [C, H]
//	    hint: "..."
//	    bond_category: covalent
type catalogDocument struct {
	Levels []Level `yaml:"levels" validate:"required,min=1,dive"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Load decodes a YAML catalog from r and validates it against table
// (element.Default() when nil).
//
// Errors:
//   - ErrInvalidCatalog: YAML syntax errors, tag violations, duplicate ids,
//     unknown elements, or malformed/unknown target formulas.
func Load(r io.Reader, table *element.Table) (*Catalog, error) {
	if table == nil {
		table = element.Default()
	}

	var doc catalogDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	var issues []string
	if err := structValidator().Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		for _, fe := range verrs {
			issues = append(issues, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
		}
	}
	issues = append(issues, crossCheck(doc.Levels, table)...)
	if len(issues) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(issues, "; "))
	}

	return NewCatalog(doc.Levels...), nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, table *element.Table) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("level: open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f, table)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

func crossCheck(levels []Level, table *element.Table) []string {
	var issues []string
	seen := make(map[int]bool, len(levels))
	for i, l := range levels {
		prefix := fmt.Sprintf("level at index %d", i)
		if l.ID != 0 {
			prefix = fmt.Sprintf("level %d", l.ID)
			if seen[l.ID] {
				issues = append(issues, "duplicate level id "+fmt.Sprint(l.ID))
			}
			seen[l.ID] = true
		}
		for _, sym := range l.Elements {
			if sym != "" && !table.Has(sym) {
				issues = append(issues, fmt.Sprintf("%s: unknown element %q", prefix, sym))
			}
		}
		if l.TargetFormula == nil || *l.TargetFormula == "" {
			continue
		}
		counts, err := formula.Parse(*l.TargetFormula)
		if err != nil {
			issues = append(issues, fmt.Sprintf("%s: %v", prefix, err))
			continue
		}
		for sym := range counts {
			if !table.Has(sym) {
				issues = append(issues, fmt.Sprintf("%s: target formula uses unknown element %q", prefix, sym))
			}
		}
	}

	return issues
}
