package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
)

var ErrDeleteCommandIsNotConstructed = errors.New(
	"DeleteCommand must be created via NewDeleteCommand constructor",
)

// DeleteCommand names the row to remove. It is shared by the customer, product and
// courier delete handlers; paramName is the wire name used in validation errors.
type DeleteCommand struct { //nolint:recvcheck //using for validation
	id kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteCommand(paramName string, id int64) (DeleteCommand, error) {
	validID, err := kernel.NewID(id)
	if err != nil {
		return DeleteCommand{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}

	return DeleteCommand{
		id:    validID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCommandIsNotConstructed)
}

func (c DeleteCommand) ID() kernel.ID {
	return c.id
}
