package label

import "fmt"

// ColumnLabel holds one column's semantic metadata. All mutation goes through
// Set or Recast, which run the full validation pipeline: field kind, enum
// membership, then the cross-field category/type match against the matrix.
// A failed mutation leaves the label unchanged.
type ColumnLabel struct {
	matrix   Matrix
	category Category
	typ      Type
	isActive bool
}

// New constructs a validated ColumnLabel against the given matrix. A nil
// matrix means the default one. Fields are validated in order (category,
// type, is_active), then the category/type match is checked.
func New(m Matrix, category Category, typ Type, isActive bool) (*ColumnLabel, error) {
	if m == nil {
		m = Default()
	}
	if !ValidCategory(category) {
		return nil, &InvalidValueError{Field: FieldCategory, Value: category, Accepted: categoryStrings()}
	}
	if !ValidType(typ) {
		return nil, &InvalidValueError{Field: FieldType, Value: typ, Accepted: typeStrings()}
	}
	l := &ColumnLabel{matrix: m, category: category, typ: typ, isActive: isActive}
	if err := l.CheckCategoryTypeMatch(); err != nil {
		return nil, err
	}
	return l, nil
}

// Category returns the label's current category.
func (l *ColumnLabel) Category() Category { return l.category }

// Type returns the label's current logical type.
func (l *ColumnLabel) Type() Type { return l.typ }

// IsActive reports whether the column is enabled by the user.
func (l *ColumnLabel) IsActive() bool { return l.isActive }

// Set mutates a single field after running the validation pipeline on the
// candidate value: kind check, enum membership, then the category/type match
// the mutation would result in. On failure the label is left unchanged.
func (l *ColumnLabel) Set(field Field, value any) error {
	switch field {
	case FieldCategory:
		c, err := asCategory(value)
		if err != nil {
			return err
		}
		if !ValidCategory(c) {
			return &InvalidValueError{Field: FieldCategory, Value: value, Accepted: categoryStrings()}
		}
		if !l.matrix[l.typ].Allows(c) {
			return &CategoryTypeMismatchError{Category: c, Type: l.typ}
		}
		l.category = c
	case FieldType:
		t, err := asType(value)
		if err != nil {
			return err
		}
		if !ValidType(t) {
			return &InvalidValueError{Field: FieldType, Value: value, Accepted: typeStrings()}
		}
		if !l.matrix[t].Allows(l.category) {
			return &CategoryTypeMismatchError{Category: l.category, Type: t}
		}
		l.typ = t
	case FieldIsActive:
		b, ok := value.(bool)
		if !ok {
			return &InvalidAttributeError{Field: FieldIsActive, Want: "bool", Value: value}
		}
		l.isActive = b
	default:
		return fmt.Errorf("unknown label field %q", string(field))
	}
	return nil
}

// Recast moves the label to a new type and that type's default category in a
// single step. Casts routinely change both fields at once (float/numeric to
// str/categorical, say), which Set alone cannot express without passing
// through an invalid intermediate state.
func (l *ColumnLabel) Recast(t Type) error {
	if !ValidType(t) {
		return &InvalidValueError{Field: FieldType, Value: t, Accepted: typeStrings()}
	}
	compat, ok := l.matrix[t]
	if !ok {
		return &CategoryTypeMismatchError{Category: l.category, Type: t}
	}
	l.typ = t
	l.category = compat.Default()
	// Consistency assertion: the default category always matches by
	// construction of a valid matrix.
	return l.CheckCategoryTypeMatch()
}

// CheckCategoryTypeMatch re-derives the allowed categories for the current
// type from the matrix and fails if the current category is not among them.
func (l *ColumnLabel) CheckCategoryTypeMatch() error {
	compat, ok := l.matrix[l.typ]
	if !ok || !compat.Allows(l.category) {
		return &CategoryTypeMismatchError{Category: l.category, Type: l.typ}
	}
	return nil
}

// String renders the label in its stable form, used in logs and tests.
func (l *ColumnLabel) String() string {
	return fmt.Sprintf("category: %s, type: %s, is_active: %t", l.category, l.typ, l.isActive)
}

func asCategory(value any) (Category, error) {
	switch v := value.(type) {
	case Category:
		return v, nil
	case string:
		return Category(v), nil
	default:
		return "", &InvalidAttributeError{Field: FieldCategory, Want: "Category", Value: value}
	}
}

func asType(value any) (Type, error) {
	switch v := value.(type) {
	case Type:
		return v, nil
	case string:
		return Type(v), nil
	default:
		return "", &InvalidAttributeError{Field: FieldType, Want: "Type", Value: value}
	}
}
