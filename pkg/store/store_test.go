package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/flexnote/pkg/adapters/memory"
	"github.com/aretw0/flexnote/pkg/core"
	"github.com/aretw0/flexnote/pkg/store"
)

func TestBlockStore_LoadEmptyReturnsSeed(t *testing.T) {
	s := store.NewBlockStore(memory.NewRepository(), nil)

	blocks := s.Load(context.Background())

	require.Len(t, blocks, 2)
	assert.Equal(t, core.BlockHeading, blocks[0].Type)
	assert.Equal(t, 1, blocks[0].Level)
	assert.Equal(t, "Welcome to FlexNote", blocks[0].Content)
	assert.Equal(t, core.BlockParagraph, blocks[1].Type)
	assert.Equal(t, `This is your flexible workspace. Start typing or use the "+" button to add blocks.`, blocks[1].Content)
}

func TestBlockStore_RoundTrip(t *testing.T) {
	storage := memory.NewRepository()
	s := store.NewBlockStore(storage, nil)
	ctx := context.Background()

	checked := true
	unchecked := false
	in := []core.Block{
		{ID: "3", Type: core.BlockTodo, Content: "b", Checked: &checked},
		{ID: "1", Type: core.BlockHeading, Content: "Title", Level: 2},
		{ID: "2", Type: core.BlockTodo, Content: "a", Checked: &unchecked},
		{ID: "4", Type: core.BlockImage, Content: "https://example.com/cat.png"},
		{ID: "5", Type: core.BlockCode, Content: "x := 1\n"},
	}

	require.NoError(t, s.Save(ctx, in))
	assert.Equal(t, in, s.Load(ctx))
}

func TestBlockStore_WireFormat(t *testing.T) {
	storage := memory.NewRepository()
	s := store.NewBlockStore(storage, nil)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []core.Block{
		{ID: "1", Type: core.BlockParagraph, Content: "p"},
		{ID: "2", Type: core.BlockHeading, Content: "h", Level: 1},
	}))

	raw, err := storage.Get(ctx, store.BlocksKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","type":"paragraph","content":"p"},{"id":"2","type":"heading","content":"h","level":1}]`, string(raw))
}

func TestBlockStore_EmptyListIsData(t *testing.T) {
	s := store.NewBlockStore(memory.NewRepository(), nil)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, nil))

	blocks := s.Load(ctx)
	assert.NotNil(t, blocks)
	assert.Empty(t, blocks)
}

func TestBlockStore_MalformedFallsBackToSeed(t *testing.T) {
	for _, raw := range []string{"{broken", "null", `{"id":"x"}`, `[{"id":1}]`} {
		t.Run(raw, func(t *testing.T) {
			storage := memory.NewRepository()
			require.NoError(t, storage.Set(context.Background(), store.BlocksKey, []byte(raw)))

			blocks := store.NewBlockStore(storage, nil).Load(context.Background())
			assert.Equal(t, store.SeedBlocks(), blocks)
		})
	}
}

func TestPreferences(t *testing.T) {
	storage := memory.NewRepository()
	prefs := store.NewPreferences(storage)
	ctx := context.Background()

	assert.True(t, prefs.DarkMode(ctx, true))
	assert.False(t, prefs.DarkMode(ctx, false))

	require.NoError(t, prefs.SetDarkMode(ctx, true))
	assert.True(t, prefs.DarkMode(ctx, false))

	raw, err := storage.Get(ctx, store.DarkModeKey)
	require.NoError(t, err)
	assert.Equal(t, "true", string(raw))
}
