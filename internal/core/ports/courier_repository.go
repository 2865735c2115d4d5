package ports

import (
	"context"

	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for couriers.
type CourierRepository interface {
	// Add stores a new courier and returns its identity.
	Add(ctx context.Context, c *courier.Courier) (kernel.ID, error)

	// Update stores contact data and availability.
	Update(ctx context.Context, c *courier.Courier) error

	// Delete removes a courier. Returns errs.ConflictError while orders reference it.
	Delete(ctx context.Context, id kernel.ID) error

	// Get loads a courier or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*courier.Courier, error)
}
