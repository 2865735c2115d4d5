package commands

import (
	"context"

	"deliveryhub/internal/core/domain/model/customer"
	"deliveryhub/internal/core/domain/model/kernel"
)

// SaveCustomerCommandHandler stores customer contact data.
type SaveCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewSaveCustomerCommandHandler(uowFactory CustomerUoWFactory) SaveCustomerCommandHandler {
	return SaveCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the identity of the created or updated customer.
func (h SaveCustomerCommandHandler) Handle(ctx context.Context, cmd SaveCustomerCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()

	var id kernel.ID
	if cmd.ID() == nil {
		c, err := customer.NewCustomer(cmd.Name(), cmd.Address(), cmd.Phone())
		if err != nil {
			return 0, err
		}
		if id, err = repo.Add(ctx, c); err != nil {
			return 0, err
		}
	} else {
		c, err := repo.Get(ctx, *cmd.ID())
		if err != nil {
			return 0, err
		}
		if err = c.Update(cmd.Name(), cmd.Address(), cmd.Phone()); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, c); err != nil {
			return 0, err
		}
		id = c.ID()
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
