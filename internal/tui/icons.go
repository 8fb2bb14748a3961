package tui

import "github.com/aretw0/flexnote/pkg/core"

// Icon identifies a glyph drawn by the interface. The set is closed: every
// Icon has an entry in glyphs.
type Icon int

const (
	IconParagraph Icon = iota
	IconHeading
	IconTodo
	IconTodoDone
	IconCode
	IconImage
	IconCommand
	IconAdd
	IconFilePlus
	IconFolderPlus
	IconChevronDown
	IconChevronRight
	IconCheck
	IconMoon
	IconSun
	IconMenu
	iconCount
)

var glyphs = [iconCount]string{
	IconParagraph:    "¶",
	IconHeading:      "H",
	IconTodo:         "☐",
	IconTodoDone:     "☑",
	IconCode:         "</>",
	IconImage:        "🖼",
	IconCommand:      "⌘",
	IconAdd:          "+",
	IconFilePlus:     "⊕",
	IconFolderPlus:   "⊞",
	IconChevronDown:  "▾",
	IconChevronRight: "▸",
	IconCheck:        "✓",
	IconMoon:         "☾",
	IconSun:          "☀",
	IconMenu:         "☰",
}

// String returns the glyph for i.
func (i Icon) String() string {
	if i < 0 || i >= iconCount {
		return "?"
	}
	return glyphs[i]
}

// BlockIcon returns the icon shown for a block type in menus.
func BlockIcon(t core.BlockType) Icon {
	switch t {
	case core.BlockHeading:
		return IconHeading
	case core.BlockTodo:
		return IconTodo
	case core.BlockCode:
		return IconCode
	case core.BlockImage:
		return IconImage
	default:
		return IconParagraph
	}
}
