package customer

import (
	"errors"
	"strings"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
)

var (
	ErrNameIsRequired    = errs.NewValueIsRequiredError("nombre_completo")
	ErrAddressIsRequired = errs.NewValueIsRequiredError("direccion")
	ErrPhoneIsRequired   = errs.NewValueIsRequiredError("telefono")
	// ErrCustomerIsNotConstructed is returned when a zero-value Customer is used.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is the recipient of orders.
//
// Business rules:
//   - name, address and phone are required
//   - the identity is assigned by the store on insert and never changes afterwards
type Customer struct {
	id      kernel.ID
	name    string
	address string
	phone   string
	guard   guard.ConstructorGuard
}

// NewCustomer creates a customer that has not been stored yet (zero ID).
//
// Example:
//
//	c, err := customer.NewCustomer("Ana Pérez", "Calle 1 #23", "555-0101")
//	if err != nil {
//	    return err
//	}
func NewCustomer(name, address, phone string) (*Customer, error) {
	c := &Customer{guard: guard.NewConstructorGuard()}

	if err := c.set(name, address, phone); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a stored customer.
func RestoreCustomer(id kernel.ID, name, address, phone string) (*Customer, error) {
	c := &Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(id.Validate(), c.set(name, address, phone)); err != nil {
		return nil, err
	}
	c.id = id

	return c, nil
}

// Update replaces the contact data. On error the customer is left unchanged.
func (c *Customer) Update(name, address, phone string) error {
	next := *c
	if err := next.set(name, address, phone); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.ID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Address() string {
	return c.address
}

func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) set(name, address, phone string) error {
	var joined []error
	if strings.TrimSpace(name) == "" {
		joined = append(joined, ErrNameIsRequired)
	}
	if strings.TrimSpace(address) == "" {
		joined = append(joined, ErrAddressIsRequired)
	}
	if strings.TrimSpace(phone) == "" {
		joined = append(joined, ErrPhoneIsRequired)
	}
	if err := errors.Join(joined...); err != nil {
		return err
	}

	c.name = name
	c.address = address
	c.phone = phone
	return nil
}
