package localstore_test

import (
	"context"
	"testing"

	"milan/internal/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	s, err := localstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	t.Run("missing_key", func(t *testing.T) {
		_, err := s.GetItem(ctx, "nope")
		assert.ErrorIs(t, err, localstore.ErrNotFound)
	})

	t.Run("set_get_overwrite", func(t *testing.T) {
		require.NoError(t, s.SetItem(ctx, "milan_cart", []byte(`[1]`)))
		require.NoError(t, s.SetItem(ctx, "milan_cart", []byte(`[1,2]`)))

		got, err := s.GetItem(ctx, "milan_cart")
		require.NoError(t, err)
		assert.Equal(t, `[1,2]`, string(got))
	})

	t.Run("remove_is_idempotent", func(t *testing.T) {
		require.NoError(t, s.SetItem(ctx, "k", []byte("v")))
		require.NoError(t, s.RemoveItem(ctx, "k"))
		require.NoError(t, s.RemoveItem(ctx, "k"))

		_, err := s.GetItem(ctx, "k")
		assert.ErrorIs(t, err, localstore.ErrNotFound)
	})

	t.Run("keys_with_separators", func(t *testing.T) {
		require.NoError(t, s.SetItem(ctx, "a/b:c", []byte("x")))
		got, err := s.GetItem(ctx, "a/b:c")
		require.NoError(t, err)
		assert.Equal(t, "x", string(got))
	})
}

func TestNamespace(t *testing.T) {
	ctx := context.Background()
	base, err := localstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	alice := localstore.Namespace(base, "alice")
	bob := localstore.Namespace(base, "bob")

	require.NoError(t, alice.SetItem(ctx, "milan_cart", []byte("A")))
	require.NoError(t, bob.SetItem(ctx, "milan_cart", []byte("B")))

	a, err := alice.GetItem(ctx, "milan_cart")
	require.NoError(t, err)
	b, err := bob.GetItem(ctx, "milan_cart")
	require.NoError(t, err)

	assert.Equal(t, "A", string(a))
	assert.Equal(t, "B", string(b))

	raw, err := base.GetItem(ctx, "alice:milan_cart")
	require.NoError(t, err)
	assert.Equal(t, "A", string(raw))
}
