// Package ritual provides the ritual catalog the rules service casts from
package ritual

//go:generate mockgen -destination=mock/mock_repository.go -package=ritualmock github.com/KirkDiggler/ordem-api/internal/repositories/ritual Repository

import (
	"context"

	"github.com/KirkDiggler/ordem-api/internal/entities/ordem"
)

// Repository looks up ritual definitions
type Repository interface {
	// Get retrieves a ritual by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the ritual is not in the catalog
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns rituals ordered by circle then name. Zero filters match
	// everything.
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// GetInput defines the input for getting a ritual
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a ritual
type GetOutput struct {
	Ritual *ordem.Ritual
}

// ListInput defines the filters for listing rituals
type ListInput struct {
	Circle  int
	Element ordem.Element
}

// ListOutput defines the output for listing rituals
type ListOutput struct {
	Rituals []*ordem.Ritual
}
