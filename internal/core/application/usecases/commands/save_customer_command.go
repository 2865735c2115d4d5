package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
	"deliveryhub/internal/pkg/sanitize"
)

var ErrSaveCustomerCommandIsNotConstructed = errors.New(
	"SaveCustomerCommand must be created via NewSaveCustomerCommand constructor",
)

// SaveCustomerCommand creates a customer when no id is given and updates it otherwise.
// Free text is stripped of markup before validation.
type SaveCustomerCommand struct { //nolint:recvcheck //using for validation
	id      *kernel.ID
	name    string
	address string
	phone   string

	guard guard.ConstructorGuard
}

func NewSaveCustomerCommand(id *int64, name, address, phone string) (SaveCustomerCommand, error) {
	customerID, err := kernel.NewOptionalID(id)
	if err != nil {
		return SaveCustomerCommand{}, errs.NewValueIsInvalidErrorWithCause("id_cliente", err)
	}

	return SaveCustomerCommand{
		id:      customerID,
		name:    sanitize.Text(name),
		address: sanitize.Text(address),
		phone:   sanitize.Text(phone),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SaveCustomerCommand) Validate() error {
	return c.guard.Validate(ErrSaveCustomerCommandIsNotConstructed)
}

// ID returns the customer to update, or nil for a new customer.
func (c SaveCustomerCommand) ID() *kernel.ID {
	return c.id
}

func (c SaveCustomerCommand) Name() string {
	return c.name
}

func (c SaveCustomerCommand) Address() string {
	return c.address
}

func (c SaveCustomerCommand) Phone() string {
	return c.phone
}
