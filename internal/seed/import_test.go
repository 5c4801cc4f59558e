package seed_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/storefront/internal/seed"
)

// MockStore is a mock implementation of seed.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Replace(ctx context.Context, collection string, docs []any) (int, error) {
	args := m.Called(ctx, collection, docs)
	return args.Int(0), args.Error(1)
}

func TestChecker_Import(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("writes normalized records of non-empty collections", func(t *testing.T) {
		doc, err := seed.Load(filepath.Join("testdata", "seed.yaml"))
		require.NoError(t, err)
		doc.WebPages = doc.WebPages[:1]

		store := new(MockStore)
		store.On("Replace", ctx, "products", mock.MatchedBy(func(docs []any) bool {
			if len(docs) != 1 {
				return false
			}
			p := docs[0].(map[string]any)
			return p["listPrice"] == 59.99 && len(p["tags"].([]any)) == 0
		})).Return(1, nil).Once()
		store.On("Replace", ctx, "users", mock.Anything).Return(1, nil).Once()
		store.On("Replace", ctx, "webpages", mock.Anything).Return(1, nil).Once()

		report, err := seed.NewChecker().Import(ctx, store, doc)
		require.NoError(t, err)
		assert.True(t, report.OK())
		assert.Equal(t, 3, report.Checked)
		store.AssertExpectations(t)
		store.AssertNotCalled(t, "Replace", ctx, "settings", mock.Anything)
	})

	t.Run("invalid documents write nothing", func(t *testing.T) {
		doc, err := seed.Load(filepath.Join("testdata", "seed.json"))
		require.NoError(t, err)

		store := new(MockStore)
		report, err := seed.NewChecker().Import(ctx, store, doc)
		require.ErrorIs(t, err, seed.ErrInvalidSeed)
		assert.Equal(t, 1, report.Failed)
		store.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("user passwords are stored as bcrypt hashes", func(t *testing.T) {
		doc, err := seed.Load(filepath.Join("testdata", "seed.json"))
		require.NoError(t, err)
		doc.Products = nil
		doc.WebPages = nil
		doc.Settings = nil

		hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
		require.NoError(t, err)
		second := map[string]any{}
		for k, v := range doc.Users[0].(map[string]any) {
			second[k] = v
		}
		second["email"] = "bob@example.com"
		second["password"] = string(hashed)
		doc.Users = append(doc.Users, second)

		var stored []any
		store := new(MockStore)
		store.On("Replace", ctx, "users", mock.Anything).
			Run(func(args mock.Arguments) { stored = args.Get(2).([]any) }).
			Return(2, nil).Once()

		_, err = seed.NewChecker(seed.WithBcryptCost(bcrypt.MinCost)).Import(ctx, store, doc)
		require.NoError(t, err)
		store.AssertExpectations(t)
		require.Len(t, stored, 2)

		first := stored[0].(map[string]any)["password"].(string)
		assert.NotEqual(t, "123456", first)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(first), []byte("123456")))

		assert.Equal(t, string(hashed), stored[1].(map[string]any)["password"])
	})

	t.Run("check leaves passwords untouched", func(t *testing.T) {
		doc, err := seed.Load(filepath.Join("testdata", "seed.json"))
		require.NoError(t, err)

		seed.NewChecker().Check(ctx, doc)
		assert.Equal(t, "123456", doc.Users[0].(map[string]any)["password"])
	})

	t.Run("store failures stop the import", func(t *testing.T) {
		doc, err := seed.Load(filepath.Join("testdata", "seed.json"))
		require.NoError(t, err)
		doc.Products = doc.Products[:1]

		boom := errors.New("connection reset")
		store := new(MockStore)
		store.On("Replace", ctx, "products", mock.Anything).Return(1, nil).Once()
		store.On("Replace", ctx, "users", mock.Anything).Return(0, boom).Once()

		_, err = seed.NewChecker().Import(ctx, store, doc)
		require.ErrorIs(t, err, seed.ErrImport)
		assert.ErrorIs(t, err, boom)
		store.AssertExpectations(t)
		store.AssertNumberOfCalls(t, "Replace", 2)
	})
}
