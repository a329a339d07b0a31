package ports

import (
	"context"

	"github.com/aretw0/dectab/pkg/domain"
)

// TableStore defines the interface for persisting recognized decision tables.
type TableStore interface {
	// Save persists the table under its ID, replacing any previous version.
	Save(ctx context.Context, table *domain.StoredTable) error

	// Load retrieves the table with the given ID.
	// Returns domain.ErrTableNotFound if the table does not exist.
	Load(ctx context.Context, id string) (*domain.StoredTable, error)

	// Delete removes the table with the given ID.
	// Returns domain.ErrTableNotFound if the table does not exist.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored tables in ascending order.
	List(ctx context.Context) ([]string, error)
}
