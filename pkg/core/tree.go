package core

import "log/slog"

const (
	// NewWorkspaceName is the display name given to created workspaces.
	NewWorkspaceName = "New Workspace"
	// NewPageName is the display name given to created pages.
	NewPageName = "Untitled"
	// NewPageIcon is the glyph given to created pages.
	NewPageIcon = "📄"
)

// Page is a named, iconified leaf selectable within a workspace.
type Page struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

// Workspace is a named grouping of pages.
type Workspace struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Pages []Page `json:"pages" yaml:"pages"`
}

func (w Workspace) clone() Workspace {
	w.Pages = append([]Page(nil), w.Pages...)
	if w.Pages == nil {
		w.Pages = []Page{}
	}
	return w
}

// SeedWorkspaces returns the workspaces a fresh session starts with.
func SeedWorkspaces() []Workspace {
	return []Workspace{
		{ID: "personal", Name: "Personal", Pages: []Page{
			{ID: "p1", Name: "Getting Started", Icon: "📘"},
			{ID: "p2", Name: "Tasks", Icon: "✅"},
			{ID: "p3", Name: "Ideas", Icon: "💡"},
		}},
		{ID: "work", Name: "Work", Pages: []Page{
			{ID: "w1", Name: "Projects", Icon: "📊"},
			{ID: "w2", Name: "Meetings", Icon: "🗓️"},
		}},
	}
}

// Tree is the session-only workspace → pages mapping.
//
// The current workspace pointer holds a workspace name and the current
// page pointer holds a page id. Neither pointer is forced to resolve:
// lookups through a dangling pointer simply find nothing.
type Tree struct {
	workspaces       []Workspace
	currentWorkspace string
	currentPage      string
	ids              *IDSource
	notifier         Notifier
	logger           *slog.Logger
}

// TreeOption configures a Tree.
type TreeOption func(*Tree)

// WithTreeIDSource sets the id generator used for new workspaces and pages.
func WithTreeIDSource(ids *IDSource) TreeOption {
	return func(t *Tree) {
		t.ids = ids
	}
}

// WithTreeNotifier sets the receiver of confirmation notifications.
func WithTreeNotifier(n Notifier) TreeOption {
	return func(t *Tree) {
		t.notifier = n
	}
}

// WithTreeLogger sets the logger for the tree.
func WithTreeLogger(logger *slog.Logger) TreeOption {
	return func(t *Tree) {
		t.logger = logger
	}
}

// WithSelection sets the initial workspace name and page id pointers.
func WithSelection(workspace, page string) TreeOption {
	return func(t *Tree) {
		t.currentWorkspace = workspace
		t.currentPage = page
	}
}

// NewTree creates a tree over a copy of workspaces. Without WithSelection
// the first workspace and its first page are selected.
func NewTree(workspaces []Workspace, opts ...TreeOption) *Tree {
	t := &Tree{}
	for _, w := range workspaces {
		t.workspaces = append(t.workspaces, w.clone())
	}
	if len(t.workspaces) > 0 {
		t.currentWorkspace = t.workspaces[0].Name
		if len(t.workspaces[0].Pages) > 0 {
			t.currentPage = t.workspaces[0].Pages[0].ID
		}
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.ids == nil {
		t.ids = NewIDSource(nil)
	}
	t.notifier = notifyOrDiscard(t.notifier)
	return t
}

// Workspaces returns a copy of all workspaces in order.
func (t *Tree) Workspaces() []Workspace {
	out := make([]Workspace, len(t.workspaces))
	for i, w := range t.workspaces {
		out[i] = w.clone()
	}
	return out
}

// CurrentWorkspaceName returns the raw workspace pointer.
func (t *Tree) CurrentWorkspaceName() string { return t.currentWorkspace }

// CurrentPageID returns the raw page pointer.
func (t *Tree) CurrentPageID() string { return t.currentPage }

// CurrentWorkspace resolves the workspace pointer by name.
func (t *Tree) CurrentWorkspace() (Workspace, bool) {
	for _, w := range t.workspaces {
		if w.Name == t.currentWorkspace {
			return w.clone(), true
		}
	}
	return Workspace{}, false
}

// CurrentWorkspaceID returns the id of the current workspace, or "" when
// the name pointer does not resolve.
func (t *Tree) CurrentWorkspaceID() string {
	w, ok := t.CurrentWorkspace()
	if !ok {
		return ""
	}
	return w.ID
}

// CurrentPageName resolves workspace then page; it returns "" when either
// lookup fails.
func (t *Tree) CurrentPageName() string {
	w, ok := t.CurrentWorkspace()
	if !ok {
		return ""
	}
	for _, p := range w.Pages {
		if p.ID == t.currentPage {
			return p.Name
		}
	}
	return ""
}

// SelectWorkspace points the current workspace at name.
func (t *Tree) SelectWorkspace(name string) { t.currentWorkspace = name }

// SelectPage points the current page at id.
func (t *Tree) SelectPage(id string) { t.currentPage = id }

// AddWorkspace appends an empty workspace and selects it by name.
// It returns the new workspace id.
func (t *Tree) AddWorkspace() string {
	w := Workspace{
		ID:    t.ids.NextString("workspace-"),
		Name:  NewWorkspaceName,
		Pages: []Page{},
	}
	t.workspaces = append(t.workspaces, w)
	t.currentWorkspace = w.Name
	t.notifier.Notify(Notification{Kind: NotifySuccess, Message: "Created new workspace!"})
	return w.ID
}

// AddPage appends an untitled page to the workspace with the given id and
// selects it. It returns the new page id, or "" when no workspace matches.
func (t *Tree) AddPage(workspaceID string) string {
	for i := range t.workspaces {
		if t.workspaces[i].ID != workspaceID {
			continue
		}
		p := Page{
			ID:   t.ids.NextString("page-"),
			Name: NewPageName,
			Icon: NewPageIcon,
		}
		t.workspaces[i].Pages = append(t.workspaces[i].Pages, p)
		t.currentPage = p.ID
		t.notifier.Notify(Notification{Kind: NotifySuccess, Message: "Created new page!"})
		return p.ID
	}
	if t.logger != nil {
		t.logger.Debug("add page ignored: unknown workspace", "workspace_id", workspaceID)
	}
	return ""
}
