package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/flexnote/internal/platform"
	"github.com/aretw0/flexnote/pkg/adapters/fs"
	"github.com/aretw0/flexnote/pkg/adapters/memory"
	"github.com/aretw0/flexnote/pkg/adapters/sqlite"
	"github.com/aretw0/flexnote/pkg/core"
	"github.com/aretw0/flexnote/pkg/store"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestInit_Adapters(t *testing.T) {
	t.Run("fs", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "data")
		storage, err := platform.Init(dir)
		require.NoError(t, err)
		assert.IsType(t, &fs.Repository{}, storage)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("sqlite", func(t *testing.T) {
		dir := t.TempDir()
		storage, err := platform.Init(dir, platform.WithAdapter(platform.AdapterSQLite))
		require.NoError(t, err)
		repo, ok := storage.(*sqlite.Repository)
		require.True(t, ok)
		defer repo.Close()

		_, err = os.Stat(filepath.Join(dir, platform.DatabaseFile))
		assert.NoError(t, err)
	})

	t.Run("memory", func(t *testing.T) {
		storage, err := platform.Init("", platform.WithAdapter(platform.AdapterMemory))
		require.NoError(t, err)
		assert.IsType(t, &memory.Repository{}, storage)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := platform.Init(t.TempDir(), platform.WithAdapter("s3"))
		assert.ErrorContains(t, err, "unknown adapter")
	})

	t.Run("injected", func(t *testing.T) {
		injected := memory.NewRepository()
		storage, err := platform.Init("ignored", platform.WithAdapter("s3"), platform.WithStorage(injected))
		require.NoError(t, err)
		assert.Same(t, injected, storage)
	})

	t.Run("must exist", func(t *testing.T) {
		_, err := platform.Init(filepath.Join(t.TempDir(), "missing"), platform.WithMustExist(true))
		assert.Error(t, err)
	})
}

func TestInit_DevSandbox(t *testing.T) {
	// Test binaries count as dev runs, so a relative path is re-rooted.
	storage, err := platform.Init("sandboxed-notes", platform.WithAdapter(platform.AdapterFS))
	require.NoError(t, err)

	repo := storage.(*fs.Repository)
	assert.Equal(t, filepath.Join(os.TempDir(), platform.DevDirName, "sandboxed-notes"), repo.Path)
	os.RemoveAll(repo.Path)
}

func TestNew_Session(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewRepository()
	var notes []core.Notification

	session, err := platform.New("",
		platform.WithStorage(storage),
		platform.WithClock(fixedClock{now: time.UnixMilli(1000)}),
		platform.WithNotifier(core.NotifierFunc(func(n core.Notification) { notes = append(notes, n) })),
	)
	require.NoError(t, err)
	defer session.Close()

	// Nothing stored yet: the welcome document is shown.
	assert.Equal(t, store.SeedBlocks(), session.Editor.Blocks())
	assert.Equal(t, "Personal", session.Tree.CurrentWorkspaceName())
	assert.Equal(t, "p1", session.Tree.CurrentPageID())

	id := session.Editor.ExecuteCommand(ctx, "todo ship it")
	assert.Equal(t, "1000", id)

	raw, err := storage.Get(ctx, store.BlocksKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"ship it"`)

	// Editor and tree share one id source, so ids never collide.
	ws := session.Tree.AddWorkspace()
	assert.Equal(t, "workspace-1001", ws)

	assert.False(t, session.DarkMode(ctx, false))
	assert.True(t, session.ToggleDarkMode(ctx, false))
	assert.True(t, session.DarkMode(ctx, false))

	require.Len(t, notes, 3)
	assert.Equal(t, "Added new todo block", notes[0].Message)
	assert.Equal(t, "Switched to dark mode", notes[2].Message)
}

func TestNew_ReadOnly(t *testing.T) {
	dir := t.TempDir()
	rw, err := platform.New(dir)
	require.NoError(t, err)
	rw.Editor.ExecuteCommand(context.Background(), "h1 Kept")

	ro, err := platform.New(dir, platform.WithReadOnly(true))
	require.NoError(t, err)

	blocks := ro.Editor.Blocks()
	require.Len(t, blocks, 3)
	assert.Equal(t, "Kept", blocks[2].Content)

	// Writes fail silently; the in-memory list still changes.
	ro.Editor.ExecuteCommand(context.Background(), "lost")
	assert.Equal(t, 4, ro.Editor.Len())

	again, err := platform.New(dir, platform.WithReadOnly(true))
	require.NoError(t, err)
	assert.Equal(t, 3, again.Editor.Len())
}

func TestNew_Watch(t *testing.T) {
	session, err := platform.New("", platform.WithAdapter(platform.AdapterMemory))
	require.NoError(t, err)

	_, err = session.Watch(context.Background(), "*")
	assert.ErrorIs(t, err, core.ErrNotWatchable)
}
