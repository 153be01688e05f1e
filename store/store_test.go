//go:build !wasm
// +build !wasm

package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/vcrobe/nojs-effects/store"
	"github.com/vcrobe/nojs-effects/store/storetest"
)

func TestMemStore(t *testing.T) {
	storetest.TestStore(t, func(t *testing.T) store.Store {
		return store.NewMemStore()
	})
}

func TestBoltStore(t *testing.T) {
	storetest.TestStore(t, func(t *testing.T) store.Store {
		s, err := store.OpenBolt(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestSQLiteStore(t *testing.T) {
	storetest.TestStore(t, func(t *testing.T) store.Store {
		s, err := store.OpenSQLite(filepath.Join(t.TempDir(), "test.sqlite"))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	})
}

// TestBoltStore_Persists verifies a value survives closing and reopening the file.
func TestBoltStore_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := store.OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("name", "Ada"))
	require.NoError(t, s.Close())

	s, err = store.OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()
	v, ok, err := s.Get("name")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Ada", v)
}

// TestSQLiteStore_Persists verifies a value survives closing and reopening the file.
func TestSQLiteStore_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")

	s, err := store.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("name", "Grace"))
	require.NoError(t, s.Close())

	s, err = store.OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	v, ok, err := s.Get("name")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Grace", v)
}

// TestOpenSQLite_FailureReleasesHandle opens a directory as a database. The
// table setup fails and the handle, with its connection goroutine, is closed.
func TestOpenSQLite_FailureReleasesHandle(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s, err := store.OpenSQLite(t.TempDir())

	require.Error(t, err)
	assert.Nil(t, s)
}

func TestMemStore_FailNext(t *testing.T) {
	s := store.NewMemStoreWith(map[string]string{"name": "Ada"})
	boom := errors.New("boom")

	s.FailNext(boom)
	_, _, err := s.Get("name")
	assert.ErrorIs(t, err, boom)

	// the injected error is used once
	v, ok, err := s.Get("name")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Ada", v)
}

func TestOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	for _, tc := range []struct {
		backend string
		file    string
	}{
		{store.BackendBolt, "effectlab.db"},
		{store.BackendSQLite, "effectlab.sqlite"},
	} {
		t.Run(tc.backend, func(t *testing.T) {
			s, err := store.Open(tc.backend, dir)
			require.NoError(t, err)
			defer s.Close()
			_, err = os.Stat(filepath.Join(dir, tc.file))
			assert.NoError(t, err)
		})
	}

	t.Run("memory", func(t *testing.T) {
		s, err := store.Open(store.BackendMemory, "")
		require.NoError(t, err)
		assert.IsType(t, &store.MemStore{}, s)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := store.Open("redis", dir)
		assert.ErrorContains(t, err, `unknown store backend "redis"`)
	})
}
