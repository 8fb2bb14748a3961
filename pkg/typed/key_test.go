package typed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/flexnote/pkg/adapters/memory"
	"github.com/aretw0/flexnote/pkg/core"
	"github.com/aretw0/flexnote/pkg/typed"
)

type settings struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestKey_RoundTrip(t *testing.T) {
	storage := memory.NewRepository()
	key := typed.NewKey[settings](storage, "settings")
	ctx := context.Background()

	_, err := key.Get(ctx)
	require.ErrorIs(t, err, core.ErrNotFound)

	exists, err := key.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, key.Set(ctx, settings{Name: "a", Count: 2}))

	got, err := key.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings{Name: "a", Count: 2}, got)

	raw, err := storage.Get(ctx, "settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"a","count":2}`, string(raw))

	require.NoError(t, key.Delete(ctx))
	exists, err = key.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestKey_Malformed(t *testing.T) {
	storage := memory.NewRepository()
	ctx := context.Background()
	require.NoError(t, storage.Set(ctx, "flag", []byte("{not json")))

	key := typed.NewKey[bool](storage, "flag")

	_, err := key.Get(ctx)
	assert.ErrorIs(t, err, core.ErrMalformed)
	assert.True(t, key.GetOr(ctx, true))
}
