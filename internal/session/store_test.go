package session_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelez/tireshop/internal/session"
)

func TestNewToken_UniqueAndUnguessableLength(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tok, err := session.NewToken()
		require.NoError(t, err)
		assert.Len(t, tok, 96)
		assert.False(t, seen[tok], "token collision")
		seen[tok] = true
	}
}

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	tok, err := session.NewToken()
	require.NoError(t, err)

	// unknown token is invalid
	_, ok, err := store.Identity(ctx, tok)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(ctx, tok, "admin"))
	id, ok, err := store.Identity(ctx, tok)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "admin", id)

	require.NoError(t, store.Delete(ctx, tok))
	_, ok, err = store.Identity(ctx, tok)
	require.NoError(t, err)
	assert.False(t, ok, "token must be rejected after logout")

	// deleting again is not an error
	require.NoError(t, store.Delete(ctx, tok))
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok, err := session.NewToken()
			if err != nil {
				t.Error(err)
				return
			}
			_ = store.Put(ctx, tok, "admin")
			if _, ok, _ := store.Identity(ctx, tok); !ok {
				t.Error("token missing right after Put")
			}
			_ = store.Delete(ctx, tok)
		}()
	}
	wg.Wait()
}
