package dataset

// infer.go - column auto-labeling: type and category inference at load time

import (
	"unicode/utf8"

	"github.com/go-gota/gota/series"

	"github.com/leapstack-labs/leapprep/pkg/label"
)

// textLengthThreshold is the first-value length at which a string column is
// labeled text instead of categorical.
const textLengthThreshold = 20

// assignLabel infers a column's initial label from its values. Auto-assigned
// labels are always active.
func (d *Dataset) assignLabel(s series.Series) (*label.ColumnLabel, error) {
	t, err := inferType(s)
	if err != nil {
		return nil, err
	}
	return label.New(d.matrix, inferCategory(t, s, d.matrix), t, true)
}

// inferType derives the logical type from the first non-null value. The
// storage type is homogeneous per column, so finding that value is what
// decides between a typed column and TypeNotFoundError.
func inferType(s series.Series) (label.Type, error) {
	for _, isNA := range s.IsNaN() {
		if !isNA {
			return normalizeType(s.Type()), nil
		}
	}
	return "", &TypeNotFoundError{Column: s.Name}
}

// normalizeType maps the table library's storage types onto the logical type
// enum. Bool is a storage-level alias with no logical counterpart and
// normalizes to int.
func normalizeType(t series.Type) label.Type {
	switch t {
	case series.Int:
		return label.TypeInt
	case series.Float:
		return label.TypeFloat
	case series.Bool:
		return label.TypeInt
	default:
		return label.TypeString
	}
}

// inferCategory assigns a category for the inferred type. String columns are
// split between text and categorical on the length of the first value only;
// a representative sample is deliberately not taken. Everything else gets
// the type's default category from the matrix.
func inferCategory(t label.Type, s series.Series, m label.Matrix) label.Category {
	if t != label.TypeString {
		return m[t].Default()
	}
	if s.Len() > 0 && !s.Elem(0).IsNA() {
		if utf8.RuneCountInString(s.Elem(0).String()) >= textLengthThreshold {
			return label.CategoryText
		}
	}
	return label.CategoryCategorical
}
