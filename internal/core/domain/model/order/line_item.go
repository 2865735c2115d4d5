package order

import (
	"errors"
	"fmt"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a zero-value LineItem is used.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product of an order. The unit price is the catalog price at the moment
// the order was created, so later price changes never alter existing orders.
type LineItem struct {
	id        kernel.ID
	productID kernel.ID
	quantity  int
	unitPrice kernel.Money
	guard     guard.ConstructorGuard
}

// NewLineItem creates a line item that has not been stored yet.
func NewLineItem(productID kernel.ID, quantity int, unitPrice kernel.Money) (*LineItem, error) {
	item := &LineItem{guard: guard.NewConstructorGuard()}

	if err := item.set(productID, quantity, unitPrice); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreLineItem rebuilds a stored line item.
func RestoreLineItem(id, productID kernel.ID, quantity int, unitPrice kernel.Money) (*LineItem, error) {
	item := &LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(id.Validate(), item.set(productID, quantity, unitPrice)); err != nil {
		return nil, err
	}
	item.id = id

	return item, nil
}

func (l *LineItem) Validate() error {
	if l == nil {
		return ErrLineItemIsNotConstructed
	}
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

func (l *LineItem) ID() kernel.ID {
	return l.id
}

func (l *LineItem) ProductID() kernel.ID {
	return l.productID
}

func (l *LineItem) Quantity() int {
	return l.quantity
}

func (l *LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal is quantity times unit price.
func (l *LineItem) Subtotal() kernel.Money {
	return l.unitPrice.Multiply(l.quantity)
}

func (l *LineItem) set(productID kernel.ID, quantity int, unitPrice kernel.Money) error {
	var joined []error
	if err := productID.Validate(); err != nil {
		joined = append(joined, errs.NewValueIsInvalidErrorWithCause("id_producto", err))
	}
	if quantity <= 0 {
		joined = append(joined, errs.NewValueIsInvalidErrorWithCause(
			"cantidad", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err := unitPrice.Validate(); err != nil {
		joined = append(joined, err)
	}
	if err := errors.Join(joined...); err != nil {
		return err
	}

	l.productID = productID
	l.quantity = quantity
	l.unitPrice = unitPrice
	return nil
}
