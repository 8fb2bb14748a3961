// Package store persists the FlexNote document and preferences as JSON
// values in a core.Storage.
package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/flexnote/pkg/core"
	"github.com/aretw0/flexnote/pkg/typed"
)

const (
	// BlocksKey holds the serialized block sequence.
	BlocksKey = "flexnote-blocks"
	// DarkModeKey holds the boolean theme preference.
	DarkModeKey = "darkMode"
)

// SeedBlocks returns the welcome document shown when nothing is stored.
func SeedBlocks() []core.Block {
	return []core.Block{
		{ID: "welcome", Type: core.BlockHeading, Content: "Welcome to FlexNote", Level: 1},
		{ID: "intro", Type: core.BlockParagraph, Content: `This is your flexible workspace. Start typing or use the "+" button to add blocks.`},
	}
}

// BlockStore implements core.BlockRepository on a single storage key.
type BlockStore struct {
	key    *typed.Key[[]core.Block]
	logger *slog.Logger
}

// NewBlockStore creates a BlockStore. logger may be nil.
func NewBlockStore(storage core.Storage, logger *slog.Logger) *BlockStore {
	return &BlockStore{
		key:    typed.NewKey[[]core.Block](storage, BlocksKey),
		logger: logger,
	}
}

// Load returns the stored sequence verbatim, or the seed when the key is
// absent or does not decode. A stored empty list loads as empty.
func (s *BlockStore) Load(ctx context.Context) []core.Block {
	blocks, err := s.key.Get(ctx)
	if err != nil {
		if !errors.Is(err, core.ErrNotFound) && s.logger != nil {
			s.logger.Debug("ignoring unreadable blocks", "key", BlocksKey, "error", err)
		}
		return SeedBlocks()
	}
	if blocks == nil {
		// A stored JSON null carries no document.
		return SeedBlocks()
	}
	return blocks
}

// Save overwrites the stored sequence with blocks.
func (s *BlockStore) Save(ctx context.Context, blocks []core.Block) error {
	if blocks == nil {
		blocks = []core.Block{}
	}
	return s.key.Set(ctx, blocks)
}

// Preferences implements core.PreferenceRepository.
type Preferences struct {
	dark *typed.Key[bool]
}

// NewPreferences creates a Preferences store.
func NewPreferences(storage core.Storage) *Preferences {
	return &Preferences{dark: typed.NewKey[bool](storage, DarkModeKey)}
}

// DarkMode returns the stored preference, or fallback when none is usable.
func (p *Preferences) DarkMode(ctx context.Context, fallback bool) bool {
	return p.dark.GetOr(ctx, fallback)
}

// SetDarkMode stores the preference.
func (p *Preferences) SetDarkMode(ctx context.Context, dark bool) error {
	return p.dark.Set(ctx, dark)
}

var _ core.BlockRepository = (*BlockStore)(nil)
var _ core.PreferenceRepository = (*Preferences)(nil)
