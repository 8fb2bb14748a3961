// Block is the central entity of the domain.
package core

import "fmt"

// BlockType identifies how a block is rendered and which optional fields it carries.
type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockTodo      BlockType = "todo"
	BlockCode      BlockType = "code"
	BlockImage     BlockType = "image"
)

// BlockTypes lists every block type in menu order.
var BlockTypes = []BlockType{BlockParagraph, BlockHeading, BlockTodo, BlockCode, BlockImage}

// Valid reports whether t is one of the known block types.
func (t BlockType) Valid() bool {
	switch t {
	case BlockHeading, BlockParagraph, BlockTodo, BlockCode, BlockImage:
		return true
	}
	return false
}

// ParseBlockType converts a user supplied name into a BlockType.
func ParseBlockType(s string) (BlockType, error) {
	t := BlockType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown block type %q", s)
	}
	return t, nil
}

// Block is one unit of document content.
// Ordering is the position in the owning slice; there is no rank field.
// Level is only set for headings and Checked only for todos.
type Block struct {
	ID      string    `json:"id" yaml:"id"`
	Type    BlockType `json:"type" yaml:"type"`
	Content string    `json:"content" yaml:"content"`
	Level   int       `json:"level,omitempty" yaml:"level,omitempty"`
	Checked *bool     `json:"checked,omitempty" yaml:"checked,omitempty"`
}

// IsChecked reports the todo state. An unset flag reads as unchecked.
func (b Block) IsChecked() bool {
	return b.Checked != nil && *b.Checked
}

// Clone returns a copy that shares no memory with b.
func (b Block) Clone() Block {
	if b.Checked != nil {
		v := *b.Checked
		b.Checked = &v
	}
	return b
}

// EventType represents the type of change in the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a storage key made outside this process.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Key)
}
