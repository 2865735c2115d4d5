package ports

import (
	"context"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add stores a new product and returns its identity.
	Add(ctx context.Context, p *product.Product) (kernel.ID, error)

	// Update stores every attribute of the product, stock included.
	Update(ctx context.Context, p *product.Product) error

	// Delete removes the line items that reference the product and then the product.
	// Callers run it inside a transaction so both deletes happen together.
	Delete(ctx context.Context, id kernel.ID) error

	// Get loads a product or returns errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)

	// GetForUpdate loads a product and locks its row until the transaction ends.
	// Concurrent order creations for the same product serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.ID) (*product.Product, error)
}
