package label

import (
	"fmt"
	"strings"
)

// InvalidAttributeError reports a ColumnLabel field given a value of the
// wrong kind (for example a number where a category is expected).
type InvalidAttributeError struct {
	Field Field
	Want  string
	Value any
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("%q must be of type %s, got %T", string(e.Field), e.Want, e.Value)
}

// InvalidValueError reports a ColumnLabel field given a value outside its
// accepted set.
type InvalidValueError struct {
	Field    Field
	Value    any
	Accepted []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%v is not an accepted value for %q: accepted values are %s",
		e.Value, string(e.Field), strings.Join(e.Accepted, ", "))
}

// CategoryTypeMismatchError reports a category/type combination not present
// in the compatibility matrix.
type CategoryTypeMismatchError struct {
	Category Category
	Type     Type
}

func (e *CategoryTypeMismatchError) Error() string {
	return fmt.Sprintf("category %q is not compatible with type %q", e.Category, e.Type)
}
