package dataset

// cast.go - type, category, and active-flag casts

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/series"

	"github.com/leapstack-labs/leapprep/pkg/label"
)

// commonLayouts are tried in order when CastType gets no explicit format.
var commonLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"15:04:05",
}

// CastType converts a column's values and label to a new type. The target
// must be reachable from the current type per the compatibility matrix,
// except datetime: a datetime parse is always attempted regardless of the
// declared cast targets. A value-level failure leaves both the data and the
// label untouched; the label is updated only after the values have been
// stored.
func (d *Dataset) CastType(col string, to label.Type, format string) error {
	if err := d.checkColumn(col); err != nil {
		return err
	}
	l := d.labels[col]
	from := l.Type()
	s := d.df.Col(col)

	var cast series.Series
	if to == label.TypeDateTime {
		out, err := parseDateTimes(s, format)
		if err != nil {
			return &DateParseError{Column: col, Format: format}
		}
		cast = out
	} else {
		if !d.matrix[from].CanCastTo(to) {
			return &InvalidCastError{Column: col, From: from, To: to}
		}
		out, err := castValues(s, from, to, col)
		if err != nil {
			return err
		}
		cast = out
	}

	nd := d.df.Mutate(cast)
	if nd.Err != nil {
		return fmt.Errorf("failed to store cast values for column %q: %w", col, nd.Err)
	}
	d.df = nd

	if err := l.Recast(to); err != nil {
		return err
	}
	d.logger.Debug("cast type", "column", col, "from", from, "to", to)
	return nil
}

// CastCategory moves a column's label to a new category. Validation happens
// before commit, so an incompatible category leaves the previous one in
// place.
func (d *Dataset) CastCategory(col string, cat label.Category) error {
	if err := d.checkColumn(col); err != nil {
		return err
	}
	if err := d.labels[col].Set(label.FieldCategory, cat); err != nil {
		return err
	}
	d.logger.Debug("cast category", "column", col, "category", cat)
	return nil
}

// CastActive sets a column's active flag. The flag is independent of the
// category/type pairing, so no cross-field validation applies.
func (d *Dataset) CastActive(col string, isActive bool) error {
	if err := d.checkColumn(col); err != nil {
		return err
	}
	if err := d.labels[col].Set(label.FieldIsActive, isActive); err != nil {
		return err
	}
	d.logger.Debug("cast active", "column", col, "is_active", isActive)
	return nil
}

// castValues converts every element of s to the target type, or fails with a
// CastValueError whose message depends on the source type.
func castValues(s series.Series, from, to label.Type, col string) (series.Series, error) {
	switch to {
	case label.TypeInt:
		return castToInt(s, from, col)
	case label.TypeFloat:
		return castToFloat(s, from, col)
	case label.TypeString:
		// Storage records are already the string forms; nulls stay null.
		return series.New(s.Records(), series.String, s.Name), nil
	default:
		return series.Series{}, &InvalidCastError{Column: col, From: from, To: to}
	}
}

func castToInt(s series.Series, from label.Type, col string) (series.Series, error) {
	if from == label.TypeString {
		recs := s.Records()
		mask := s.IsNaN()
		ints := make([]int, len(recs))
		for i, rec := range recs {
			if mask[i] {
				return series.Series{}, &CastValueError{Column: col, From: from, Reason: castReasonNonNumeric}
			}
			v, err := strconv.Atoi(strings.TrimSpace(rec))
			if err != nil {
				return series.Series{}, &CastValueError{Column: col, From: from, Reason: castReasonNonNumeric}
			}
			ints[i] = v
		}
		return series.New(ints, series.Int, s.Name), nil
	}

	// Numeric source: ints cannot represent a missing value.
	if s.HasNaN() {
		return series.Series{}, &CastValueError{Column: col, From: from, Reason: castReasonMissingValue}
	}
	vals := s.Float()
	ints := make([]int, len(vals))
	for i, v := range vals {
		ints[i] = int(v)
	}
	return series.New(ints, series.Int, s.Name), nil
}

func castToFloat(s series.Series, from label.Type, col string) (series.Series, error) {
	if from == label.TypeString {
		recs := s.Records()
		mask := s.IsNaN()
		floats := make([]float64, len(recs))
		for i, rec := range recs {
			if mask[i] {
				floats[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(rec), 64)
			if err != nil {
				return series.Series{}, &CastValueError{Column: col, From: from, Reason: castReasonNonNumeric}
			}
			floats[i] = v
		}
		return series.New(floats, series.Float, s.Name), nil
	}
	return series.New(s.Float(), series.Float, s.Name), nil
}

// parseDateTimes parses every non-null value with the given layout (or the
// common layouts when empty) and stores the results as RFC 3339 strings. The
// label's logical type is what records the column as datetime; storage stays
// string-backed.
func parseDateTimes(s series.Series, layout string) (series.Series, error) {
	recs := s.Records()
	mask := s.IsNaN()
	out := make([]string, len(recs))
	for i, rec := range recs {
		if mask[i] {
			out[i] = "NaN"
			continue
		}
		t, err := parseDateTime(strings.TrimSpace(rec), layout)
		if err != nil {
			return series.Series{}, err
		}
		out[i] = t.Format(time.RFC3339)
	}
	return series.New(out, series.String, s.Name), nil
}

func parseDateTime(value, layout string) (time.Time, error) {
	if layout != "" {
		return time.Parse(layout, value)
	}
	var lastErr error
	for _, l := range commonLayouts {
		t, err := time.Parse(l, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
