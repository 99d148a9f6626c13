package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatrix_Validate(t *testing.T) {
	// Startup self-check: the shipped matrix must be internally consistent.
	require.NoError(t, Default().Validate())
}

func TestDefaultMatrix_References(t *testing.T) {
	m := Default()
	for typ, compat := range m {
		assert.True(t, ValidType(typ), "matrix key %q", typ)
		require.NotEmpty(t, compat.Categories, "entry for %q needs a default category", typ)
		for _, c := range compat.Categories {
			assert.True(t, ValidCategory(c), "entry for %q references %q", typ, c)
		}
		for _, target := range compat.CastableTo {
			_, ok := m[target]
			assert.True(t, ok, "entry for %q allows cast to non-key %q", typ, target)
		}
	}
}

func TestMatrix_Validate_Broken(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		m := Matrix{
			TypeInt: {Categories: []Category{Category("bogus")}},
		}
		assert.Error(t, m.Validate())
	})

	t.Run("cast target not a key", func(t *testing.T) {
		m := Matrix{
			TypeInt: {Categories: []Category{CategoryNumeric}, CastableTo: []Type{TypeFloat}},
		}
		assert.Error(t, m.Validate())
	})

	t.Run("entry without categories", func(t *testing.T) {
		m := Matrix{
			TypeInt: {},
		}
		assert.Error(t, m.Validate())
	})

	t.Run("unknown type key", func(t *testing.T) {
		m := Matrix{
			Type("bogus"): {Categories: []Category{CategoryNumeric}},
		}
		assert.Error(t, m.Validate())
	})
}

func TestCompat_Default(t *testing.T) {
	m := Default()
	assert.Equal(t, CategoryNumeric, m[TypeInt].Default())
	assert.Equal(t, CategoryNumeric, m[TypeFloat].Default())
	assert.Equal(t, CategoryCategorical, m[TypeString].Default())
	assert.Equal(t, CategoryDateTime, m[TypeDateTime].Default())
}
