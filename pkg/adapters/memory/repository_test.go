package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/flexnote/pkg/adapters/memory"
	"github.com/aretw0/flexnote/pkg/core"
)

func TestRepository_CRUD(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx, "a")
	require.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, repo.Set(ctx, "b", []byte("2")))
	require.NoError(t, repo.Set(ctx, "a", []byte("1")))

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, repo.Delete(ctx, "a"))
	require.NoError(t, repo.Delete(ctx, "a"))
	_, err = repo.Get(ctx, "a")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRepository_CopiesValues(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	buf := []byte("abc")
	require.NoError(t, repo.Set(ctx, "k", buf))
	buf[0] = 'z'

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestRepository_ReadOnly(t *testing.T) {
	repo := memory.NewReadOnly(map[string][]byte{"k": []byte("v")})
	ctx := context.Background()

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))

	assert.ErrorIs(t, repo.Set(ctx, "k", []byte("x")), core.ErrReadOnly)
	assert.ErrorIs(t, repo.Delete(ctx, "k"), core.ErrReadOnly)
}

func TestRepository_EmptyKey(t *testing.T) {
	repo := memory.NewRepository()
	assert.ErrorIs(t, repo.Set(context.Background(), "", nil), core.ErrEmptyKey)
}
