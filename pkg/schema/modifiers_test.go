package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/schema"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

func TestOptional(t *testing.T) {
	t.Parallel()

	s := schema.Object(
		schema.Field("name", schema.String()),
		schema.Field("taxPrice", schema.Optional(schema.Coerce().Monetary("Tax price must have exactly two decimal places (e.g., 49.99)"))),
	)

	t.Run("absent key is skipped", func(t *testing.T) {
		v, err := schema.Validate(s, map[string]any{"name": "cart"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "cart"}, v)
	})

	t.Run("null is validated", func(t *testing.T) {
		errs := mustFail(t, s, map[string]any{"name": "cart", "taxPrice": nil})
		require.Len(t, errs, 1)
		assert.Equal(t, "taxPrice", errs[0].Field)
		assert.Equal(t, validator.CodeTypeMismatch, errs[0].Code)
		assert.Equal(t, "Expected number, received null", errs[0].Message)
	})

	t.Run("present value is validated", func(t *testing.T) {
		errs := mustFail(t, s, map[string]any{"name": "cart", "taxPrice": 1.234})
		assert.Equal(t, []string{"Tax price must have exactly two decimal places (e.g., 49.99)"}, errs.Get("taxPrice"))

		v, err := schema.Validate(s, map[string]any{"name": "cart", "taxPrice": "1.20"})
		require.NoError(t, err)
		assert.Equal(t, 1.2, v.(map[string]any)["taxPrice"])
	})

	t.Run("unwrap", func(t *testing.T) {
		inner := schema.String()
		assert.Same(t, inner, schema.Optional(inner).Unwrap())
	})
}

func TestDefault(t *testing.T) {
	t.Parallel()

	s := schema.Object(
		schema.Field("pageSize", schema.Default(schema.Coerce().Int("").Min(1, "Page size must be at least 1"), 9)),
		schema.Field("tags", schema.Default(schema.Array(schema.String()), []any{})),
		schema.Field("defaultTheme", schema.Default(schema.String().Min(1, "Default theme is required"), "light")),
	)

	t.Run("null does not take the default", func(t *testing.T) {
		errs := mustFail(t, s, map[string]any{"defaultTheme": nil})
		require.Len(t, errs, 1)
		assert.Equal(t, "defaultTheme", errs[0].Field)
		assert.Equal(t, validator.CodeTypeMismatch, errs[0].Code)
	})

	t.Run("absent keys take the default", func(t *testing.T) {
		v, err := schema.Validate(s, map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"pageSize":     9.0,
			"tags":         []any{},
			"defaultTheme": "light",
		}, v)
	})

	t.Run("supplied value is validated", func(t *testing.T) {
		errs := mustFail(t, s, map[string]any{"pageSize": 0, "defaultTheme": ""})
		assert.Equal(t, []string{"pageSize", "defaultTheme"}, errs.Fields())
	})

	t.Run("each result gets its own default", func(t *testing.T) {
		first, err := schema.Validate(s, map[string]any{})
		require.NoError(t, err)
		first.(map[string]any)["defaultTheme"] = "dark"

		second, err := schema.Validate(s, map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, "light", second.(map[string]any)["defaultTheme"])
	})

	t.Run("invalid default panics at construction", func(t *testing.T) {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			assert.True(t, errors.Is(err, schema.ErrInvalidDefault))
		}()
		schema.Default(schema.Coerce().Min(1, ""), 0)
	})

	t.Run("accessors", func(t *testing.T) {
		d := schema.Default(schema.Bool(), false)
		assert.Equal(t, false, d.Value())
		assert.Equal(t, schema.KindPrimitive, d.Unwrap().Kind())
	})
}
