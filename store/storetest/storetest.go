// Package storetest keeps common tests for Store implementations.
package storetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-effects/store"
)

// TestStore runs the behaviour every Store must share against the store
// returned by open. open is called once per subtest and must return an
// empty store.
func TestStore(t *testing.T, open func(t *testing.T) store.Store) {
	t.Run("MissingKey", func(t *testing.T) {
		s := open(t)
		v, ok, err := s.Get("name")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "", v)
	})

	t.Run("SetThenGet", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set("name", "Ada"))
		v, ok, err := s.Get("name")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Ada", v)
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set("name", "Ada"))
		require.NoError(t, s.Set("name", "Grace"))
		v, _, err := s.Get("name")
		require.NoError(t, err)
		assert.Equal(t, "Grace", v)
	})

	t.Run("EmptyValueIsPresent", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set("name", ""))
		v, ok, err := s.Get("name")
		require.NoError(t, err)
		assert.True(t, ok, "a stored empty string must be distinguishable from a missing key")
		assert.Equal(t, "", v)
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Set("name", "Ada"))
		require.NoError(t, s.Set("other", "x"))
		v, _, err := s.Get("name")
		require.NoError(t, err)
		assert.Equal(t, "Ada", v)
	})

	t.Run("ClosedStore", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Close())
		_, _, err := s.Get("name")
		assert.ErrorIs(t, err, store.ErrClosed)
		assert.ErrorIs(t, s.Set("name", "Ada"), store.ErrClosed)
	})
}
