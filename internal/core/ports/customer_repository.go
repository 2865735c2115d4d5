package ports

import (
	"context"

	"deliveryhub/internal/core/domain/model/customer"
	"deliveryhub/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add stores a new customer and returns the identity assigned by the store.
	Add(ctx context.Context, c *customer.Customer) (kernel.ID, error)

	// Update stores changed contact data. Returns errs.ObjectNotFoundError if the row is gone.
	Update(ctx context.Context, c *customer.Customer) error

	// Delete removes a customer. Returns errs.ObjectNotFoundError if absent and
	// errs.ConflictError while orders still reference it.
	Delete(ctx context.Context, id kernel.ID) error

	// Get loads a customer or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)
}
