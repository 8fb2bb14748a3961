package core

import (
	"github.com/aretw0/introspection"
)

// EditorState exposes internal editor state for observability.
type EditorState struct {
	BlockCount int    `json:"block_count"`
	EditingID  string `json:"editing_id,omitempty"`
}

// State implements introspection.Introspectable.
func (e *Editor) State() any {
	return EditorState{
		BlockCount: len(e.blocks),
		EditingID:  e.editingID,
	}
}

// ComponentType implements introspection.Component.
func (e *Editor) ComponentType() string {
	return "editor"
}

// SessionState exposes internal session state for observability.
type SessionState struct {
	Storage          string      `json:"storage"`
	Editor           EditorState `json:"editor"`
	Workspaces       int         `json:"workspaces"`
	CurrentWorkspace string      `json:"current_workspace"`
	CurrentPage      string      `json:"current_page"`
}

// State implements introspection.Introspectable.
func (s *Session) State() any {
	storageType := "unknown"
	if s.storage != nil {
		storageType = "storage"
		if comp, ok := s.storage.(introspection.Component); ok {
			storageType = comp.ComponentType()
		}
	}

	state := SessionState{Storage: storageType}
	if s.Editor != nil {
		state.Editor = s.Editor.State().(EditorState)
	}
	if s.Tree != nil {
		state.Workspaces = len(s.Tree.workspaces)
		state.CurrentWorkspace = s.Tree.currentWorkspace
		state.CurrentPage = s.Tree.currentPage
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Session) ComponentType() string {
	return "session"
}

var _ introspection.Introspectable = (*Editor)(nil)
var _ introspection.Component = (*Editor)(nil)
var _ introspection.Introspectable = (*Session)(nil)
var _ introspection.Component = (*Session)(nil)
