package environment_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storefront/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{"production", environment.Production},
		{"prod", environment.Production},
		{" Staging ", environment.Staging},
		{"stage", environment.Staging},
		{"development", environment.Development},
		{"", environment.Development},
		{"qa", environment.Development},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, environment.Parse(tt.in))
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("round trips the environment", func(t *testing.T) {
		ctx := environment.WithContext(context.Background(), environment.Production)
		assert.Equal(t, environment.Production, environment.FromContext(ctx))
		assert.True(t, environment.IsProduction(ctx))
	})

	t.Run("empty when not set", func(t *testing.T) {
		assert.Equal(t, environment.Environment(""), environment.FromContext(context.Background()))
		assert.False(t, environment.IsProduction(context.Background()))
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := environment.LoggerExtractor()

	attr, ok := extract(environment.WithContext(context.Background(), environment.Staging))
	assert.True(t, ok)
	assert.Equal(t, "env", attr.Key)
	assert.Equal(t, slog.KindString, attr.Value.Kind())
	assert.Equal(t, "staging", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
