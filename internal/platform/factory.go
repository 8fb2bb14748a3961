package platform

import (
	"context"

	"github.com/aretw0/flexnote/pkg/core"
	"github.com/aretw0/flexnote/pkg/store"
)

// New opens the storage and wires a ready session on top of it:
//
//	session, err := platform.New("./notes", platform.WithAdapter("sqlite"))
//
// The block list and theme preference are read once here.
func New(uri string, opts ...Option) (*core.Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	storage, err := initStorage(uri, o)
	if err != nil {
		return nil, err
	}

	ids := core.NewIDSource(o.clock)
	editor := core.NewEditor(context.Background(), store.NewBlockStore(storage, o.logger),
		core.WithIDSource(ids),
		core.WithEditorNotifier(o.notifier),
		core.WithEditorLogger(o.logger),
	)
	tree := core.NewTree(core.SeedWorkspaces(),
		core.WithTreeIDSource(ids),
		core.WithTreeNotifier(o.notifier),
		core.WithTreeLogger(o.logger),
	)

	return core.NewSession(storage, editor, tree, store.NewPreferences(storage), o.notifier, o.logger), nil
}
