package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Editor owns the ordered block list of the open document.
//
// Every mutating operation rewrites the complete list through the
// BlockRepository. Persistence is fire-and-forget: write failures are
// logged and never reported to the caller.
//
// An Editor is driven by a single UI goroutine and is not safe for
// concurrent use.
type Editor struct {
	repo      BlockRepository
	blocks    []Block
	editingID string
	ids       *IDSource
	notifier  Notifier
	logger    *slog.Logger
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithIDSource sets the id generator (mostly for deterministic tests).
func WithIDSource(ids *IDSource) EditorOption {
	return func(e *Editor) {
		e.ids = ids
	}
}

// WithEditorNotifier sets the receiver of confirmation notifications.
func WithEditorNotifier(n Notifier) EditorOption {
	return func(e *Editor) {
		e.notifier = n
	}
}

// WithEditorLogger sets the logger for the editor.
func WithEditorLogger(logger *slog.Logger) EditorOption {
	return func(e *Editor) {
		e.logger = logger
	}
}

// NewEditor creates an Editor and loads its blocks from repo.
func NewEditor(ctx context.Context, repo BlockRepository, opts ...EditorOption) *Editor {
	e := &Editor{repo: repo}
	for _, opt := range opts {
		opt(e)
	}
	if e.ids == nil {
		e.ids = NewIDSource(nil)
	}
	e.notifier = notifyOrDiscard(e.notifier)
	e.blocks = repo.Load(ctx)
	e.observeIDs()
	return e
}

// BlockOption customizes a block created by AddBlock.
type BlockOption func(*Block)

// WithChecked sets the todo state of the new block. It has no effect on
// other block types.
func WithChecked(checked bool) BlockOption {
	return func(b *Block) {
		if b.Type == BlockTodo {
			b.Checked = &checked
		}
	}
}

// WithLevel overrides the heading level of the new block. Only headings
// accept a level, and only 1 or 2.
func WithLevel(level int) BlockOption {
	return func(b *Block) {
		if b.Type == BlockHeading && (level == 1 || level == 2) {
			b.Level = level
		}
	}
}

// WithContent sets the initial content of the new block.
func WithContent(content string) BlockOption {
	return func(b *Block) {
		b.Content = content
	}
}

// Blocks returns a copy of the current block list.
func (e *Editor) Blocks() []Block {
	out := make([]Block, len(e.blocks))
	for i, b := range e.blocks {
		out[i] = b.Clone()
	}
	return out
}

// Len returns the number of blocks.
func (e *Editor) Len() int { return len(e.blocks) }

// Block returns the block with the given id.
func (e *Editor) Block(id string) (Block, bool) {
	i := e.index(id)
	if i < 0 {
		return Block{}, false
	}
	return e.blocks[i].Clone(), true
}

// EditingID returns the id of the block currently receiving input, if any.
func (e *Editor) EditingID() string { return e.editingID }

// SetEditing marks id as the editable block. Unknown ids are ignored.
func (e *Editor) SetEditing(id string) {
	if e.index(id) >= 0 {
		e.editingID = id
	}
}

// StopEditing clears the editable block.
func (e *Editor) StopEditing() { e.editingID = "" }

// AddBlock appends an empty block of type t and makes it editable.
// Headings start at level 1. It returns the new block id, or "" when t is
// not a known block type.
func (e *Editor) AddBlock(ctx context.Context, t BlockType, opts ...BlockOption) string {
	if !t.Valid() {
		if e.logger != nil {
			e.logger.Debug("add block ignored: unknown type", "type", t)
		}
		return ""
	}
	b := e.newBlock(t)
	for _, opt := range opts {
		opt(&b)
	}
	e.blocks = append(e.blocks, b)
	e.editingID = b.ID
	e.persist(ctx)

	e.notifier.Notify(Notification{Kind: NotifySuccess, Message: fmt.Sprintf("Added new %s block", t)})
	return b.ID
}

// UpdateBlock replaces the content of the block with the given id.
func (e *Editor) UpdateBlock(ctx context.Context, id, content string) {
	i := e.index(id)
	if i < 0 {
		return
	}
	e.blocks[i].Content = content
	e.persist(ctx)
}

// DeleteBlock removes the block with the given id.
func (e *Editor) DeleteBlock(ctx context.Context, id string) {
	i := e.index(id)
	if i < 0 {
		return
	}
	e.blocks = append(e.blocks[:i], e.blocks[i+1:]...)
	if e.editingID == id {
		e.editingID = ""
	}
	e.persist(ctx)

	e.notifier.Notify(Notification{Kind: NotifyInfo, Message: "Block deleted"})
}

// ToggleTodo flips the checked state of a todo block.
func (e *Editor) ToggleTodo(ctx context.Context, id string) {
	i := e.index(id)
	if i < 0 || e.blocks[i].Type != BlockTodo {
		return
	}
	checked := !e.blocks[i].IsChecked()
	e.blocks[i].Checked = &checked
	e.persist(ctx)
}

// Command is the result of parsing command palette input.
type Command struct {
	Type    BlockType
	Level   int
	Checked *bool
	Content string
}

var commandPrefixes = []struct {
	prefix string
	build  func(rest string) Command
}{
	{"h1 ", func(rest string) Command { return Command{Type: BlockHeading, Level: 1, Content: rest} }},
	{"h2 ", func(rest string) Command { return Command{Type: BlockHeading, Level: 2, Content: rest} }},
	{"todo ", func(rest string) Command {
		unchecked := false
		return Command{Type: BlockTodo, Checked: &unchecked, Content: rest}
	}},
	{"code ", func(rest string) Command { return Command{Type: BlockCode, Content: rest} }},
}

// ParseCommand maps palette input to the block it produces.
// Prefixes are matched case-insensitively on the trimmed input; the
// remainder keeps its original case. Anything else becomes a paragraph
// holding the input unchanged.
func ParseCommand(text string) Command {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	for _, p := range commandPrefixes {
		if strings.HasPrefix(lower, p.prefix) {
			return p.build(trimmed[len(p.prefix):])
		}
	}
	return Command{Type: BlockParagraph, Content: text}
}

// ExecuteCommand parses text and appends exactly one block built from it.
// It returns the new block id.
func (e *Editor) ExecuteCommand(ctx context.Context, text string) string {
	cmd := ParseCommand(text)
	b := e.newBlock(cmd.Type)
	b.Content = cmd.Content
	if cmd.Level != 0 {
		b.Level = cmd.Level
	}
	b.Checked = cmd.Checked
	e.blocks = append(e.blocks, b)
	e.persist(ctx)

	e.notifier.Notify(Notification{Kind: NotifySuccess, Message: fmt.Sprintf("Added new %s block", cmd.Type)})
	return b.ID
}

// Reload replaces the in-memory list with the stored one.
// It is used when another process changed the store.
func (e *Editor) Reload(ctx context.Context) {
	e.blocks = e.repo.Load(ctx)
	e.observeIDs()
	if e.index(e.editingID) < 0 {
		e.editingID = ""
	}
}

func (e *Editor) newBlock(t BlockType) Block {
	b := Block{
		ID:   e.ids.NextString(""),
		Type: t,
	}
	if t == BlockHeading {
		b.Level = 1
	}
	return b
}

func (e *Editor) index(id string) int {
	if id == "" {
		return -1
	}
	for i := range e.blocks {
		if e.blocks[i].ID == id {
			return i
		}
	}
	return -1
}

func (e *Editor) observeIDs() {
	for _, b := range e.blocks {
		e.ids.Observe("", b.ID)
	}
}

func (e *Editor) persist(ctx context.Context) {
	if err := e.repo.Save(ctx, e.Blocks()); err != nil && e.logger != nil {
		e.logger.Warn("failed to persist blocks", "error", err, "count", len(e.blocks))
	}
}
