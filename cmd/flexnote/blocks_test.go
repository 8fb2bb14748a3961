package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/flexnote/internal/config"
	"github.com/aretw0/flexnote/pkg/core"
)

// useTempStore points the global flags at a fresh fs store for one test.
func useTempStore(t *testing.T) {
	t.Helper()
	prevCfg, prevDir, prevAdapter := cfg, dataDir, adapter
	cfg = config.Default()
	dataDir = t.TempDir()
	adapter = "fs"
	t.Cleanup(func() {
		cfg, dataDir, adapter = prevCfg, prevDir, prevAdapter
	})
}

func resetAddFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		addType, addLevel, addChecked = "", 1, false
		for _, name := range []string{"type", "level", "checked"} {
			addCmd.Flags().Lookup(name).Changed = false
		}
	})
}

func runAdd(t *testing.T, flags map[string]string, args ...string) string {
	t.Helper()
	for name, value := range flags {
		require.NoError(t, addCmd.Flags().Set(name, value))
	}
	var out bytes.Buffer
	addCmd.SetOut(&out)
	addCmd.Run(addCmd, args)
	return out.String()
}

func listBlocks(t *testing.T) []core.Block {
	t.Helper()
	prev := listJSON
	listJSON = true
	defer func() { listJSON = prev }()

	var out bytes.Buffer
	listCmd.SetOut(&out)
	listCmd.Run(listCmd, nil)

	var blocks []core.Block
	require.NoError(t, json.Unmarshal(out.Bytes(), &blocks))
	return blocks
}

func TestAddCommand_Typed(t *testing.T) {
	useTempStore(t)
	resetAddFlags(t)

	out := runAdd(t, map[string]string{"type": "heading", "level": "2"}, "Notes")
	assert.Contains(t, out, "Added new heading block")

	out = runAdd(t, map[string]string{"type": "paragraph", "checked": "true"}, "h1", "stays", "verbatim")
	assert.Contains(t, out, "Added new paragraph block")

	blocks := listBlocks(t)
	require.Len(t, blocks, 4, "seed plus two added blocks")

	heading := blocks[2]
	assert.Equal(t, core.BlockHeading, heading.Type)
	assert.Equal(t, 2, heading.Level)
	assert.Equal(t, "Notes", heading.Content)

	para := blocks[3]
	assert.Equal(t, core.BlockParagraph, para.Type)
	assert.Equal(t, "h1 stays verbatim", para.Content)
	assert.Nil(t, para.Checked)
	assert.Zero(t, para.Level)
}

func TestAddCommand_CommandGrammar(t *testing.T) {
	useTempStore(t)
	resetAddFlags(t)

	runAdd(t, nil, "todo", "Buy", "milk")

	blocks := listBlocks(t)
	require.Len(t, blocks, 3)
	todo := blocks[2]
	assert.Equal(t, core.BlockTodo, todo.Type)
	assert.Equal(t, "Buy milk", todo.Content)
	require.NotNil(t, todo.Checked)
	assert.False(t, *todo.Checked)
}
