package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
	"deliveryhub/internal/pkg/sanitize"

	"github.com/shopspring/decimal"
)

var ErrSaveProductCommandIsNotConstructed = errors.New(
	"SaveProductCommand must be created via NewSaveProductCommand constructor",
)

// SaveProductCommand creates or updates a catalog product.
type SaveProductCommand struct { //nolint:recvcheck //using for validation
	id          *kernel.ID
	name        string
	description string
	price       kernel.Money
	stock       int
	category    string

	guard guard.ConstructorGuard
}

// NewSaveProductCommand validates the price as money; the remaining rules are enforced
// by the product entity.
//
// Example:
//
//	cmd, err := NewSaveProductCommand(nil, "Pizza", "Muzzarella", decimal.RequireFromString("5"), 10, "")
func NewSaveProductCommand(
	id *int64,
	name string,
	description string,
	price decimal.Decimal,
	stock int,
	category string,
) (SaveProductCommand, error) {
	productID, idErr := kernel.NewOptionalID(id)
	if idErr != nil {
		idErr = errs.NewValueIsInvalidErrorWithCause("id", idErr)
	}

	money, priceErr := kernel.NewMoney(price)
	if priceErr != nil {
		priceErr = errs.NewValueIsInvalidErrorWithCause("precio", priceErr)
	}

	if err := errors.Join(idErr, priceErr); err != nil {
		return SaveProductCommand{}, err
	}

	return SaveProductCommand{
		id:          productID,
		name:        sanitize.Text(name),
		description: sanitize.Text(description),
		price:       money,
		stock:       stock,
		category:    sanitize.Text(category),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SaveProductCommand) Validate() error {
	return c.guard.Validate(ErrSaveProductCommandIsNotConstructed)
}

// ID returns the product to update, or nil for a new product.
func (c SaveProductCommand) ID() *kernel.ID {
	return c.id
}

func (c SaveProductCommand) Name() string {
	return c.name
}

func (c SaveProductCommand) Description() string {
	return c.description
}

func (c SaveProductCommand) Price() kernel.Money {
	return c.price
}

func (c SaveProductCommand) Stock() int {
	return c.stock
}

func (c SaveProductCommand) Category() string {
	return c.category
}
