package label

import "fmt"

// Compat describes what a logical type is compatible with: the categories a
// column of that type may carry, and the types it may be cast into.
type Compat struct {
	// Categories lists the categories valid for the type. The first entry is
	// the default category assumed immediately after a successful cast.
	Categories []Category
	// CastableTo lists the types a column of this type may be cast into.
	CastableTo []Type
}

// Default returns the default category for the type.
func (c Compat) Default() Category {
	return c.Categories[0]
}

// Allows reports whether cat is compatible with the type.
func (c Compat) Allows(cat Category) bool {
	for _, accepted := range c.Categories {
		if cat == accepted {
			return true
		}
	}
	return false
}

// CanCastTo reports whether the type may be cast into t.
func (c Compat) CanCastTo(t Type) bool {
	for _, target := range c.CastableTo {
		if t == target {
			return true
		}
	}
	return false
}

// Matrix is the compatibility matrix: for every logical type, the categories
// it accepts and the casts it permits. It is static configuration data,
// built once at startup and never mutated.
type Matrix map[Type]Compat

// Default returns the standard compatibility matrix.
func Default() Matrix {
	return Matrix{
		TypeInt: {
			Categories: []Category{CategoryNumeric, CategoryCategorical},
			CastableTo: []Type{TypeFloat, TypeString},
		},
		TypeFloat: {
			Categories: []Category{CategoryNumeric},
			CastableTo: []Type{TypeInt, TypeString},
		},
		TypeString: {
			Categories: []Category{CategoryCategorical, CategoryText},
			CastableTo: []Type{TypeInt, TypeFloat, TypeDateTime},
		},
		TypeDateTime: {
			Categories: []Category{CategoryDateTime},
			CastableTo: []Type{TypeString},
		},
	}
}

// Validate checks the matrix's internal consistency: every type keyed must be
// an accepted type, every category referenced must be an accepted category,
// every entry must declare at least one category (the cast default), and
// every cast target must itself be a matrix key.
func (m Matrix) Validate() error {
	for t, compat := range m {
		if !ValidType(t) {
			return fmt.Errorf("matrix keys unknown type %q", t)
		}
		if len(compat.Categories) == 0 {
			return fmt.Errorf("matrix entry for %q has no categories", t)
		}
		for _, c := range compat.Categories {
			if !ValidCategory(c) {
				return fmt.Errorf("matrix entry for %q references unknown category %q", t, c)
			}
		}
		for _, target := range compat.CastableTo {
			if _, ok := m[target]; !ok {
				return fmt.Errorf("matrix entry for %q allows cast to %q, which is not a matrix key", t, target)
			}
		}
	}
	return nil
}
