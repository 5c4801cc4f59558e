package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/internal/seed"
)

const validSeed = `
webPages:
  - title: About Us
    slug: about-us
    content: We sell shirts.
    isPublished: true
`

const invalidSeed = `{"webPages": [{"title": "Hi", "slug": "hi", "content": "", "isPublished": true}]}`

func writeSeed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// memoryStore records replaced collections.
type memoryStore struct {
	collections map[string][]any
	err         error
}

func (s *memoryStore) Replace(_ context.Context, collection string, docs []any) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.collections == nil {
		s.collections = make(map[string][]any)
	}
	s.collections[collection] = docs
	return len(docs), nil
}

func useStore(t *testing.T, store seed.Store, err error) {
	t.Helper()
	prev := openStore
	openStore = func(context.Context) (seed.Store, func(), error) {
		return store, func() {}, err
	}
	t.Cleanup(func() { openStore = prev })
}

func TestCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("valid seed", func(t *testing.T) {
		var out bytes.Buffer
		err := check(ctx, Config{SeedFile: writeSeed(t, "seed.yaml", validSeed), AppEnv: "production"}, &out)
		require.NoError(t, err)
		assert.Contains(t, out.String(), `"msg":"seed check finished"`)
		assert.Contains(t, out.String(), `"service":"seed"`)
		assert.Contains(t, out.String(), `"env":"production"`)
	})

	t.Run("invalid seed", func(t *testing.T) {
		var out bytes.Buffer
		err := check(ctx, Config{SeedFile: writeSeed(t, "seed.json", invalidSeed), AppEnv: "production"}, &out)
		require.ErrorIs(t, err, errInvalidSeed)
		assert.Contains(t, err.Error(), "1 of 1")
		assert.Contains(t, out.String(), `"collection":"webPages"`)
	})

	t.Run("missing file name", func(t *testing.T) {
		var out bytes.Buffer
		err := check(ctx, Config{AppEnv: "production"}, &out)
		require.ErrorIs(t, err, errNoSeedFile)
		assert.Contains(t, out.String(), `"level":"ERROR"`)
	})

	t.Run("log level override", func(t *testing.T) {
		var out bytes.Buffer
		err := check(ctx, Config{SeedFile: writeSeed(t, "seed.yaml", validSeed), AppEnv: "production", LogLevel: "error"}, &out)
		require.NoError(t, err)
		assert.Empty(t, out.String())
	})
}

func TestImportSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the normalized records", func(t *testing.T) {
		store := &memoryStore{}
		useStore(t, store, nil)

		var out bytes.Buffer
		err := importSeed(ctx, Config{SeedFile: writeSeed(t, "seed.yaml", validSeed), AppEnv: "production"}, &out)
		require.NoError(t, err)
		require.Len(t, store.collections["webpages"], 1)
		assert.Equal(t, "about-us", store.collections["webpages"][0].(map[string]any)["slug"])
		assert.Contains(t, out.String(), `"msg":"seeded database successfully"`)
	})

	t.Run("invalid seed writes nothing", func(t *testing.T) {
		store := &memoryStore{}
		useStore(t, store, nil)

		var out bytes.Buffer
		err := importSeed(ctx, Config{SeedFile: writeSeed(t, "seed.json", invalidSeed), AppEnv: "production"}, &out)
		require.ErrorIs(t, err, errInvalidSeed)
		assert.ErrorIs(t, err, seed.ErrInvalidSeed)
		assert.Empty(t, store.collections)
	})

	t.Run("store unavailable", func(t *testing.T) {
		boom := errors.New("no reachable servers")
		useStore(t, nil, boom)

		var out bytes.Buffer
		err := importSeed(ctx, Config{SeedFile: writeSeed(t, "seed.yaml", validSeed), AppEnv: "production"}, &out)
		require.ErrorIs(t, err, boom)
		assert.Contains(t, out.String(), "no reachable servers")
	})
}

func TestRootCmd(t *testing.T) {
	t.Setenv("SEED_FILE", "")
	t.Setenv("APP_ENV", "production")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check", "--strict-settings", writeSeed(t, "seed.json", invalidSeed)})

	err := cmd.Execute()
	require.ErrorIs(t, err, errInvalidSeed)
	assert.Contains(t, out.String(), `"msg":"invalid seed record"`)
}
