package client

import (
	"context"
	"errors"
	"sync"
)

// Editor state machine errors
var (
	ErrEditorClosed     = errors.New("editor is closed")
	ErrEditorOpen       = errors.New("editor is already open")
	ErrNotPrefilled     = errors.New("editor holds no existing flavor")
	ErrNotConfirming    = errors.New("no delete confirmation pending")
	ErrConfirmingDelete = errors.New("delete confirmation pending")
)

// EditorState enumerates the modal states
type EditorState int

const (
	// EditorClosed means no modal is showing
	EditorClosed EditorState = iota
	// EditorOpen means the modal shows either an empty form or a
	// prefilled one
	EditorOpen
	// EditorConfirmingDelete means the modal awaits delete confirmation
	EditorConfirmingDelete
)

// Mutator issues the mutation calls the editor resolves against
type Mutator interface {
	Create(ctx context.Context, name string, image *ImageFile) (*Flavor, error)
	Update(ctx context.Context, id uint64, name string, image *ImageFile) (*Flavor, error)
	Delete(ctx context.Context, id uint64) error
}

// Editor drives the modal flow over a catalog. It opens empty for adds or
// prefilled for edits, and only a prefilled editor can reach the delete
// confirmation step. Every transition to Closed waits for its network call
// to resolve, except a plain cancel. Safe for concurrent use; state is
// locked while a call resolves.
type Editor struct {
	mu      sync.Mutex
	api     Mutator
	catalog *Catalog
	state   EditorState
	target  *Flavor
}

// NewEditor creates a closed editor over the given catalog
func NewEditor(api Mutator, catalog *Catalog) *Editor {
	return &Editor{
		api:     api,
		catalog: catalog,
		state:   EditorClosed,
	}
}

// State returns the current modal state
func (e *Editor) State() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Target returns a copy of the flavor being edited, or nil for an add
func (e *Editor) Target() *Flavor {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.target == nil {
		return nil
	}
	target := *e.target
	return &target
}

// OpenEmpty opens the editor with empty fields for an add
func (e *Editor) OpenEmpty() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != EditorClosed {
		return ErrEditorOpen
	}
	e.state = EditorOpen
	e.target = nil
	return nil
}

// OpenFor opens the editor prefilled with an existing flavor. The image
// field starts empty; saving with a new file opts into replacement.
func (e *Editor) OpenFor(flavor Flavor) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != EditorClosed {
		return ErrEditorOpen
	}
	e.state = EditorOpen
	e.target = &flavor
	return nil
}

// Save resolves the pending add or edit. On success the returned row is
// merged into the catalog and the editor closes; on failure the editor
// stays open with its state untouched.
func (e *Editor) Save(ctx context.Context, name string, image *ImageFile) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == EditorClosed {
		return ErrEditorClosed
	}
	if e.state == EditorConfirmingDelete {
		return ErrConfirmingDelete
	}

	if e.target == nil {
		created, err := e.api.Create(ctx, name, image)
		if err != nil {
			return err
		}
		e.catalog.Append(*created)
	} else {
		updated, err := e.api.Update(ctx, e.target.ID, name, image)
		if err != nil {
			return err
		}
		e.catalog.ReplaceByID(*updated)
	}

	e.close()
	return nil
}

// RequestDelete moves a prefilled editor into the confirmation step
func (e *Editor) RequestDelete() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == EditorClosed {
		return ErrEditorClosed
	}
	if e.state != EditorOpen || e.target == nil {
		return ErrNotPrefilled
	}
	e.state = EditorConfirmingDelete
	return nil
}

// CancelDelete backs out of the confirmation step, returning to the
// prefilled form
func (e *Editor) CancelDelete() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != EditorConfirmingDelete {
		return ErrNotConfirming
	}
	e.state = EditorOpen
	return nil
}

// ConfirmDelete resolves the pending delete. The row leaves the catalog
// only after the call succeeds; a failure keeps the confirmation showing.
func (e *Editor) ConfirmDelete(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != EditorConfirmingDelete {
		return ErrNotConfirming
	}

	if err := e.api.Delete(ctx, e.target.ID); err != nil {
		return err
	}

	e.catalog.RemoveByID(e.target.ID)
	e.close()
	return nil
}

// Cancel closes the editor immediately without any network call
func (e *Editor) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == EditorClosed {
		return ErrEditorClosed
	}
	e.close()
	return nil
}

func (e *Editor) close() {
	e.state = EditorClosed
	e.target = nil
}
