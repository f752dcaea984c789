// Package directory answers "who works this warehouse": the user population
// filtered by default warehouse and enabled state.
package directory

import (
	"context"

	"warebell/internal/domain"
)

// Store is the user directory boundary.
type Store interface {
	// ActiveByWarehouse returns enabled users whose default warehouse
	// equals warehouse. Zero results is a valid answer, not an error.
	ActiveByWarehouse(ctx context.Context, warehouse string) ([]domain.User, error)
}
