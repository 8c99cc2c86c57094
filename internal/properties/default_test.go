package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetDefault(t *testing.T) {
	t.Helper()
	Reset()
	t.Cleanup(Reset)
}

// Not parallel: Init and Default share process-wide state.
func TestDefaultRegistry(t *testing.T) {
	resetDefault(t)

	_, err := Default()
	require.ErrorIs(t, err, ErrNotInitialized)

	client := newFakeClient("9.0")
	r, err := Init(client)
	require.NoError(t, err)

	got, err := Default()
	require.NoError(t, err)
	assert.Same(t, r, got)

	_, err = Init(newFakeClient("19"))
	require.ErrorIs(t, err, ErrAlreadyInitialized)

	// The first client stays in effect.
	v, err := got.Get(StatementCacheSize)
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.Equal(t, 1, client.versionCalls)
}

func TestReset(t *testing.T) {
	resetDefault(t)

	_, err := Init(newFakeClient("9.0"))
	require.NoError(t, err)

	Reset()
	_, err = Default()
	require.ErrorIs(t, err, ErrNotInitialized)

	r, err := Init(newFakeClient("19"))
	require.NoError(t, err)
	size, ok := r.StatementCacheSize()
	assert.True(t, ok)
	assert.Zero(t, size)
}
