package catalog

import (
	"context"
)

// FlavorReader defines the interface for reading flavors
type FlavorReader interface {
	// FindByID finds a flavor by its numeric ID
	FindByID(ctx context.Context, id uint64) (*Flavor, error)

	// FindAll returns every flavor in the catalog
	FindAll(ctx context.Context) ([]Flavor, error)
}

// FlavorWriter defines the interface for flavor persistence (create, update, delete)
type FlavorWriter interface {
	// Create inserts a new flavor and assigns its ID
	Create(ctx context.Context, flavor *Flavor) error

	// Update persists changes to an existing flavor
	Update(ctx context.Context, flavor *Flavor) error

	// Delete permanently deletes a flavor
	Delete(ctx context.Context, id uint64) error
}

// FlavorRepository defines the full interface for flavor persistence.
// Prefer the specific interfaces (FlavorReader, FlavorWriter) when possible
// to improve testability and express intent more clearly.
type FlavorRepository interface {
	FlavorReader
	FlavorWriter
}
