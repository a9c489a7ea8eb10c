package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreDefaultsUntilSet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(true)

	dark, err := store.DarkMode(ctx)
	require.NoError(t, err)
	assert.True(t, dark)

	require.NoError(t, store.SetDarkMode(ctx, false))

	dark, err = store.DarkMode(ctx)
	require.NoError(t, err)
	assert.False(t, dark)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(false)

	require.NoError(t, store.SetDarkMode(ctx, true))

	dark, err := store.DarkMode(ctx)
	require.NoError(t, err)
	assert.True(t, dark)
	assert.NoError(t, store.Close())
}
