// Package label models column metadata for tabular datasets. Every column
// carries a ColumnLabel: a semantic category, a logical data type, and an
// active flag. Labels are validated against a compatibility Matrix on
// construction and on every mutation, so a Dataset can rely on its label map
// never holding an illegal category/type pairing.
package label

// Category is the high-level semantic grouping of a column's values.
type Category string

const (
	CategoryCategorical Category = "categorical"
	CategoryNumeric     Category = "numeric"
	CategoryText        Category = "text"
	CategoryDateTime    Category = "datetime"
)

// Type is the logical data type of a column's values. It is independent of
// how the underlying table library stores them.
type Type string

const (
	TypeInt      Type = "int"
	TypeFloat    Type = "float"
	TypeString   Type = "str"
	TypeDateTime Type = "datetime"
)

// Field names a ColumnLabel attribute for use with Set.
type Field string

const (
	FieldCategory Field = "category"
	FieldType     Field = "type"
	FieldIsActive Field = "is_active"
)

// Categories returns the accepted category values.
func Categories() []Category {
	return []Category{CategoryCategorical, CategoryNumeric, CategoryText, CategoryDateTime}
}

// Types returns the accepted logical type values.
func Types() []Type {
	return []Type{TypeInt, TypeFloat, TypeString, TypeDateTime}
}

// ValidCategory reports whether c is an accepted category.
func ValidCategory(c Category) bool {
	for _, accepted := range Categories() {
		if c == accepted {
			return true
		}
	}
	return false
}

// ValidType reports whether t is an accepted logical type.
func ValidType(t Type) bool {
	for _, accepted := range Types() {
		if t == accepted {
			return true
		}
	}
	return false
}

func categoryStrings() []string {
	cats := Categories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

func typeStrings() []string {
	types := Types()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}
