package product

import (
	"errors"
	"fmt"
	"strings"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
)

// DefaultCategory is assigned to products created without a category.
const DefaultCategory = "General"

var (
	ErrNameIsRequired = errs.NewValueIsRequiredError("nombre")
	// ErrProductIsNotConstructed is returned when a zero-value Product is used.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrInsufficientStock is the sentinel wrapped by every stock shortage.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product is an item of the catalog.
type Product struct {
	id          kernel.ID
	name        string
	description string
	price       kernel.Money
	stock       int
	category    string
	guard       guard.ConstructorGuard
}

// NewProduct creates a product that has not been stored yet.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("5.00")
//	p, err := product.NewProduct("Pizza", "Muzzarella", price, 10, "")
//	// p.Category() == "General"
func NewProduct(name, description string, price kernel.Money, stock int, category string) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := p.set(name, description, price, stock, category); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a stored product.
func RestoreProduct(
	id kernel.ID,
	name string,
	description string,
	price kernel.Money,
	stock int,
	category string,
) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(id.Validate(), p.set(name, description, price, stock, category)); err != nil {
		return nil, err
	}
	p.id = id

	return p, nil
}

// Update replaces every catalog attribute, stock included. On error nothing changes.
func (p *Product) Update(name, description string, price kernel.Money, stock int, category string) error {
	next := *p
	if err := next.set(name, description, price, stock, category); err != nil {
		return err
	}
	*p = next
	return nil
}

// Withdraw takes quantity units out of stock.
//
// Returns a ConflictError wrapping ErrInsufficientStock when fewer units are on hand; the
// message names the product with the available and requested amounts.
func (p *Product) Withdraw(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cantidad",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if quantity > p.stock {
		return errs.NewConflictErrorWithCause(
			fmt.Sprintf("insufficient stock for product %s (%s): available %d, requested %d",
				p.id, p.name, p.stock, quantity),
			ErrInsufficientStock,
		)
	}

	p.stock -= quantity
	return nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.ID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) Stock() int {
	return p.stock
}

func (p *Product) Category() string {
	return p.category
}

func (p *Product) set(name, description string, price kernel.Money, stock int, category string) error {
	var joined []error
	if strings.TrimSpace(name) == "" {
		joined = append(joined, ErrNameIsRequired)
	}
	if err := price.Validate(); err != nil {
		joined = append(joined, err)
	}
	if stock < 0 {
		joined = append(joined, errs.NewValueIsOutOfRangeError("stock", stock, 0, "unbounded"))
	}
	if err := errors.Join(joined...); err != nil {
		return err
	}

	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}

	p.name = name
	p.description = description
	p.price = price
	p.stock = stock
	p.category = category
	return nil
}
