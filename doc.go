// Package flexnote is the Composition Root for FlexNote.
//
// FlexNote is a block-based note editor for the terminal. A document is an
// ordered list of typed blocks (headings, paragraphs, todos, code, images)
// persisted as one JSON value in a local key-value store, next to a dark
// mode preference. Workspaces and pages form a sidebar tree that lives only
// for the session.
//
// This package connects the domain (pkg/core) with the storage adapters
// (pkg/adapters/fs, pkg/adapters/sqlite, pkg/adapters/memory) using the
// Hexagonal Architecture pattern.
//
// Usage:
//
//	session, err := flexnote.New("./notes",
//		flexnote.WithAdapter("sqlite"),
//		flexnote.WithLogger(logger),
//	)
//
//	// Append a heading through the command palette grammar
//	session.Editor.ExecuteCommand(ctx, "h1 Weekly plan")
package flexnote
