package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/schema"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

func TestRefine(t *testing.T) {
	t.Parallel()

	signUp := schema.Object(
		schema.Field("password", schema.String().Min(3, "Password must be at least 3 characters")),
		schema.Field("confirmPassword", schema.String().Min(3, "Confirm password must be at least 3 characters")),
	).Refine(schema.FieldsMatch("password", "confirmPassword", "Passwords don't match"))

	t.Run("passes when fields match", func(t *testing.T) {
		_, err := schema.Validate(signUp, map[string]any{"password": "abc", "confirmPassword": "abc"})
		assert.NoError(t, err)
	})

	t.Run("mismatch is reported at the confirm field", func(t *testing.T) {
		errs := mustFail(t, signUp, map[string]any{"password": "abc", "confirmPassword": "xyz"})
		require.Len(t, errs, 1)
		assert.Equal(t, "confirmPassword", errs[0].Field)
		assert.Equal(t, validator.CodeRefinementFailure, errs[0].Code)
		assert.Equal(t, "Passwords don't match", errs[0].Message)
	})

	t.Run("refinements do not run over invalid values", func(t *testing.T) {
		errs := mustFail(t, signUp, map[string]any{"password": "ab", "confirmPassword": "xyz"})
		require.Len(t, errs, 1)
		assert.False(t, errs.HasCode(validator.CodeRefinementFailure))
	})

	t.Run("every refinement runs", func(t *testing.T) {
		s := schema.Refine(signUp, schema.ObjectRefinement("password", "Password must differ from abc", func(obj map[string]any) bool {
			return obj["password"] != "abc"
		}))
		errs := mustFail(t, s, map[string]any{"password": "abc", "confirmPassword": "xyz"})
		assert.Equal(t, []string{"confirmPassword", "password"}, errs.Fields())
		assert.Equal(t, schema.KindObject, s.Unwrap().Kind())
	})

	t.Run("paths are relative to the refined value", func(t *testing.T) {
		form := schema.Object(schema.Field("account", signUp))
		errs := mustFail(t, form, map[string]any{
			"account": map[string]any{"password": "abc", "confirmPassword": "xyz"},
		})
		assert.Equal(t, []string{"account.confirmPassword"}, errs.Fields())
	})

	t.Run("one of field", func(t *testing.T) {
		s := schema.Object(
			schema.Field("availableCurrencies", schema.Array(schema.Object(schema.Field("code", schema.String())))),
			schema.Field("defaultCurrency", schema.String()),
		).Refine(schema.OneOfField("defaultCurrency", "availableCurrencies", "code", "Default currency must be one of the available currencies"))

		_, err := schema.Validate(s, map[string]any{
			"availableCurrencies": []any{map[string]any{"code": "USD"}, map[string]any{"code": "EUR"}},
			"defaultCurrency":     "EUR",
		})
		assert.NoError(t, err)

		errs := mustFail(t, s, map[string]any{
			"availableCurrencies": []any{map[string]any{"code": "USD"}},
			"defaultCurrency":     "GBP",
		})
		assert.Equal(t, []string{"Default currency must be one of the available currencies"}, errs.Get("defaultCurrency"))
	})

	t.Run("fields match over arrays and objects", func(t *testing.T) {
		s := schema.Object(
			schema.Field("tags", schema.Array(schema.String())),
			schema.Field("confirmTags", schema.Array(schema.String())),
			schema.Field("address", schema.Object(schema.Field("city", schema.String()))),
			schema.Field("confirmAddress", schema.Object(schema.Field("city", schema.String()))),
		).Refine(
			schema.FieldsMatch("tags", "confirmTags", "Tags don't match"),
			schema.FieldsMatch("address", "confirmAddress", "Addresses don't match"),
		)

		_, err := schema.Validate(s, map[string]any{
			"tags":           []any{"a"},
			"confirmTags":    []any{"a"},
			"address":        map[string]any{"city": "Oslo"},
			"confirmAddress": map[string]any{"city": "Oslo"},
		})
		assert.NoError(t, err)

		errs := mustFail(t, s, map[string]any{
			"tags":           []any{"a"},
			"confirmTags":    []any{"b"},
			"address":        map[string]any{"city": "Oslo"},
			"confirmAddress": map[string]any{"city": "Bergen"},
		})
		assert.Equal(t, []string{"confirmTags", "confirmAddress"}, errs.Fields())
		assert.True(t, errs.HasCode(validator.CodeRefinementFailure))
	})

	t.Run("one of field with object keys", func(t *testing.T) {
		s := schema.Object(
			schema.Field("available", schema.Array(schema.Object(schema.Field("key", schema.Array(schema.String()))))),
			schema.Field("selected", schema.Array(schema.String())),
		).Refine(schema.OneOfField("selected", "available", "key", "Selection must be available"))

		_, err := schema.Validate(s, map[string]any{
			"available": []any{map[string]any{"key": []any{"a", "b"}}},
			"selected":  []any{"a", "b"},
		})
		assert.NoError(t, err)

		errs := mustFail(t, s, map[string]any{
			"available": []any{map[string]any{"key": []any{"a"}}},
			"selected":  []any{"b"},
		})
		assert.Equal(t, []string{"Selection must be available"}, errs.Get("selected"))
	})

	t.Run("refinement without a check panics", func(t *testing.T) {
		assert.Panics(t, func() { schema.Refine(schema.String(), schema.Refinement{Path: "x"}) })
	})
}
