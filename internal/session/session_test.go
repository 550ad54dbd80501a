package session

import (
	"testing"

	"BankChat/internal/intent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateDefaults(t *testing.T) {
	store := NewStore()

	sess, created := store.GetOrCreate("u1")
	require.NotNil(t, sess)
	assert.True(t, created)
	assert.Equal(t, "u1", sess.UserID)
	assert.False(t, sess.Authenticated)
	assert.Empty(t, sess.LastIntent)
	assert.NotNil(t, sess.Context)
}

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	store := NewStore()

	first, created := store.GetOrCreate("u1")
	require.True(t, created)
	first.LastIntent = intent.Greeting

	second, created := store.GetOrCreate("u1")
	assert.False(t, created)
	assert.Same(t, first, second)
	assert.Equal(t, intent.Greeting, second.LastIntent)
	assert.Equal(t, 1, store.Len())
}

func TestCreateReplacesExisting(t *testing.T) {
	store := NewStore()

	old, _ := store.GetOrCreate("u1")
	old.Authenticated = true

	fresh := store.Create("u1")
	assert.NotSame(t, old, fresh)
	assert.False(t, fresh.Authenticated)
	assert.Equal(t, 1, store.Len())
}

func TestEndIsIdempotent(t *testing.T) {
	store := NewStore()
	store.GetOrCreate("u1")

	store.End("u1")
	store.End("u1")
	store.End("never-existed")

	_, ok := store.Get("u1")
	assert.False(t, ok)
	assert.Zero(t, store.Len())
}
