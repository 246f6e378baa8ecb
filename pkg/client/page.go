package client

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrRequestInFlight is returned when a mutation is triggered while a
// previous one has not resolved yet.
var ErrRequestInFlight = errors.New("a request is already in flight")

// API combines the calls the page needs
type API interface {
	List(ctx context.Context) ([]Flavor, error)
	Mutator
}

// ViewMode selects how the sorted list is rendered
type ViewMode int

const (
	// ViewGrid renders the catalog as picture cards
	ViewGrid ViewMode = iota
	// ViewTable renders the catalog as rows
	ViewTable
)

// Page is the state container behind the catalog view: the held list, the
// sort selection, the grid/table flag and the editor modal. Mutations are
// serialized through an in-flight flag so rapid edits cannot race.
type Page struct {
	mu       sync.Mutex
	api      API
	catalog  *Catalog
	editor   *Editor
	order    SortOrder
	view     ViewMode
	loaded   bool
	inFlight bool
	logger   *zap.Logger
}

// NewPage creates a page over the given API. A nil logger disables
// diagnostics.
func NewPage(api API, logger *zap.Logger) *Page {
	if logger == nil {
		logger = zap.NewNop()
	}
	catalog := NewCatalog()
	return &Page{
		api:     api,
		catalog: catalog,
		editor:  NewEditor(api, catalog),
		order:   SortNameAsc,
		view:    ViewGrid,
		logger:  logger,
	}
}

// Load fetches the catalog exactly once. A failed fetch leaves the list
// empty and logs a diagnostic; it is not surfaced to the caller. Repeated
// calls are no-ops.
func (p *Page) Load(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loaded {
		return
	}
	p.loaded = true

	flavors, err := p.api.List(ctx)
	if err != nil {
		p.logger.Warn("Failed to load catalog", zap.Error(err))
		return
	}
	p.catalog.SetAll(flavors)
}

// Flavors returns the held list sorted per the current selection
func (p *Page) Flavors() []Flavor {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.catalog.Sorted(p.order)
}

// SortOrder returns the current sort selection
func (p *Page) SortOrder() SortOrder {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.order
}

// SetSortOrder changes the sort selection
func (p *Page) SetSortOrder(order SortOrder) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.order = order
}

// View returns the current view mode
func (p *Page) View() ViewMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view
}

// ToggleView flips between the grid and table renderings
func (p *Page) ToggleView() ViewMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.view == ViewGrid {
		p.view = ViewTable
	} else {
		p.view = ViewGrid
	}
	return p.view
}

// Busy reports whether a mutation is currently in flight
func (p *Page) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inFlight
}

// OpenAdd opens the editor with empty fields
func (p *Page) OpenAdd() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.editor.OpenEmpty()
}

// OpenEdit opens the editor prefilled with the flavor carrying the given ID
func (p *Page) OpenEdit(id uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, flavor := range p.catalog.All() {
		if flavor.ID == id {
			return p.editor.OpenFor(flavor)
		}
	}
	return ErrNotFound
}

// EditorState returns the current modal state
func (p *Page) EditorState() EditorState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.editor.State()
}

// EditTarget returns a copy of the flavor being edited, nil for an add
func (p *Page) EditTarget() *Flavor {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.editor.Target()
}

// Save resolves the open editor's add or edit. The trigger is disabled
// while a previous request is still in flight.
func (p *Page) Save(ctx context.Context, name string, image *ImageFile) error {
	release, err := p.acquire()
	if err != nil {
		return err
	}
	defer release()

	return p.editor.Save(ctx, name, image)
}

// RequestDelete moves the editor into its confirmation step
func (p *Page) RequestDelete() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.editor.RequestDelete()
}

// CancelDelete backs out of the confirmation step
func (p *Page) CancelDelete() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.editor.CancelDelete()
}

// ConfirmDelete resolves the pending delete, guarded like Save
func (p *Page) ConfirmDelete(ctx context.Context) error {
	release, err := p.acquire()
	if err != nil {
		return err
	}
	defer release()

	return p.editor.ConfirmDelete(ctx)
}

// Cancel closes the editor without a network call
func (p *Page) Cancel() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.editor.Cancel()
}

// acquire claims the in-flight flag for the duration of one mutation
func (p *Page) acquire() (func(), error) {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return nil, ErrRequestInFlight
	}
	p.inFlight = true
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		p.inFlight = false
		p.mu.Unlock()
	}, nil
}
