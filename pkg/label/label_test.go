package label

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BaseCase(t *testing.T) {
	l, err := New(nil, CategoryCategorical, TypeString, true)
	require.NoError(t, err)
	assert.Equal(t, "category: categorical, type: str, is_active: true", l.String())
}

func TestNew_AllValidTriples(t *testing.T) {
	// Every (category, type) pair the matrix declares must construct, for
	// both active flags, and render in the stable string form.
	m := Default()
	for typ, compat := range m {
		for _, cat := range compat.Categories {
			for _, active := range []bool{true, false} {
				l, err := New(m, cat, typ, active)
				require.NoError(t, err, "category=%s type=%s", cat, typ)
				expected := fmt.Sprintf("category: %s, type: %s, is_active: %t", cat, typ, active)
				assert.Equal(t, expected, l.String())
			}
		}
	}
}

func TestNew_AllIncompatiblePairs(t *testing.T) {
	// Every (category, type) pair the matrix does NOT declare must fail
	// with a CategoryTypeMismatchError.
	m := Default()
	for _, typ := range Types() {
		for _, cat := range Categories() {
			if m[typ].Allows(cat) {
				continue
			}
			_, err := New(m, cat, typ, true)
			var mismatch *CategoryTypeMismatchError
			require.ErrorAs(t, err, &mismatch, "category=%s type=%s", cat, typ)
			assert.Equal(t, cat, mismatch.Category)
			assert.Equal(t, typ, mismatch.Type)
		}
	}
}

func TestNew_InvalidValues(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		_, err := New(nil, Category("potato"), TypeString, true)
		var invalid *InvalidValueError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, FieldCategory, invalid.Field)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := New(nil, CategoryNumeric, Type("potato"), false)
		var invalid *InvalidValueError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, FieldType, invalid.Field)
	})
}

func TestSet_ValidationPipeline(t *testing.T) {
	newLabel := func(t *testing.T) *ColumnLabel {
		l, err := New(nil, CategoryNumeric, TypeInt, true)
		require.NoError(t, err)
		return l
	}

	t.Run("wrong kind fails with InvalidAttributeError", func(t *testing.T) {
		l := newLabel(t)
		var attr *InvalidAttributeError
		require.ErrorAs(t, l.Set(FieldCategory, 0.1), &attr)
		require.ErrorAs(t, l.Set(FieldType, 42), &attr)
		require.ErrorAs(t, l.Set(FieldIsActive, "yes"), &attr)
	})

	t.Run("value outside enum fails with InvalidValueError", func(t *testing.T) {
		l := newLabel(t)
		var invalid *InvalidValueError
		require.ErrorAs(t, l.Set(FieldCategory, "nonsense"), &invalid)
		require.ErrorAs(t, l.Set(FieldType, "nonsense"), &invalid)
	})

	t.Run("incompatible category fails and leaves label unchanged", func(t *testing.T) {
		l := newLabel(t)
		var mismatch *CategoryTypeMismatchError
		require.ErrorAs(t, l.Set(FieldCategory, CategoryText), &mismatch)
		assert.Equal(t, CategoryNumeric, l.Category())
		assert.Equal(t, TypeInt, l.Type())
	})

	t.Run("incompatible type fails and leaves label unchanged", func(t *testing.T) {
		l := newLabel(t)
		// numeric is not a str category, so the type move must be refused.
		var mismatch *CategoryTypeMismatchError
		require.ErrorAs(t, l.Set(FieldType, TypeString), &mismatch)
		assert.Equal(t, TypeInt, l.Type())
	})

	t.Run("compatible mutation commits", func(t *testing.T) {
		l := newLabel(t)
		require.NoError(t, l.Set(FieldCategory, CategoryCategorical))
		assert.Equal(t, CategoryCategorical, l.Category())

		require.NoError(t, l.Set(FieldIsActive, false))
		assert.False(t, l.IsActive())
	})

	t.Run("string values are accepted for enums", func(t *testing.T) {
		l := newLabel(t)
		require.NoError(t, l.Set(FieldCategory, "categorical"))
		assert.Equal(t, CategoryCategorical, l.Category())
	})

	t.Run("unknown field", func(t *testing.T) {
		l := newLabel(t)
		assert.Error(t, l.Set(Field("nonsense"), "x"))
	})
}

func TestRecast(t *testing.T) {
	t.Run("moves to the target's default category", func(t *testing.T) {
		l, err := New(nil, CategoryNumeric, TypeFloat, true)
		require.NoError(t, err)

		require.NoError(t, l.Recast(TypeString))
		assert.Equal(t, TypeString, l.Type())
		assert.Equal(t, CategoryCategorical, l.Category())
		require.NoError(t, l.CheckCategoryTypeMatch())
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		l, err := New(nil, CategoryNumeric, TypeFloat, true)
		require.NoError(t, err)

		var invalid *InvalidValueError
		require.ErrorAs(t, l.Recast(Type("potato")), &invalid)
		assert.Equal(t, TypeFloat, l.Type())
	})
}
