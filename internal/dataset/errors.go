package dataset

import (
	"fmt"

	"github.com/leapstack-labs/leapprep/pkg/label"
)

// ColumnNotFoundError reports a referenced column absent from the table.
// Every column-scoped operation raises it before mutating anything.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q was not found in the dataset", e.Column)
}

// TypeNotFoundError reports that auto-type inference found no non-null value
// to inspect.
type TypeNotFoundError struct {
	Column string
}

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("a data type for column %q could not be found", e.Column)
}

// InvalidCastError reports a type cast not permitted from the column's
// current type by the compatibility matrix.
type InvalidCastError struct {
	Column string
	From   label.Type
	To     label.Type
}

func (e *InvalidCastError) Error() string {
	return fmt.Sprintf("cannot cast column %q from %s to %s: not an accepted type cast",
		e.Column, e.From, e.To)
}

// Value-level cast failure reasons. The message depends on the source type.
const (
	castReasonNonNumeric   = "contains non-numeric values, parse before casting"
	castReasonMissingValue = "cannot convert missing value to integer"
)

// CastValueError reports an element-wise cast failure.
type CastValueError struct {
	Column string
	From   label.Type
	Reason string
}

func (e *CastValueError) Error() string {
	return fmt.Sprintf("cannot cast column %q: %s", e.Column, e.Reason)
}

// DateParseError reports a datetime parse failure under the supplied format.
type DateParseError struct {
	Column string
	Format string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("column %q could not be converted to datetime: check 'format' and try again", e.Column)
}

// UnknownNullStrategyError reports an unrecognized null-handling strategy.
type UnknownNullStrategyError struct {
	Strategy string
}

func (e *UnknownNullStrategyError) Error() string {
	return fmt.Sprintf("%q is not an accepted null-handling strategy", e.Strategy)
}
