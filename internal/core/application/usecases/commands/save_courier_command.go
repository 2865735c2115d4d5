package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
	"deliveryhub/internal/pkg/sanitize"
)

var ErrSaveCourierCommandIsNotConstructed = errors.New(
	"SaveCourierCommand must be created via NewSaveCourierCommand constructor",
)

// SaveCourierCommand creates or updates a courier. An empty status keeps the current
// availability on update and means Available on create.
type SaveCourierCommand struct { //nolint:recvcheck //using for validation
	id      *kernel.ID
	name    string
	phone   string
	vehicle string
	status  *courier.Status

	guard guard.ConstructorGuard
}

func NewSaveCourierCommand(id *int64, name, phone, vehicle, status string) (SaveCourierCommand, error) {
	courierID, idErr := kernel.NewOptionalID(id)
	if idErr != nil {
		idErr = errs.NewValueIsInvalidErrorWithCause("id_repartidor", idErr)
	}

	var parsed *courier.Status
	var statusErr error
	if status != "" {
		var s courier.Status
		if s, statusErr = courier.ParseStatus(status); statusErr == nil {
			parsed = &s
		}
	}

	if err := errors.Join(idErr, statusErr); err != nil {
		return SaveCourierCommand{}, err
	}

	return SaveCourierCommand{
		id:      courierID,
		name:    sanitize.Text(name),
		phone:   sanitize.Text(phone),
		vehicle: sanitize.Text(vehicle),
		status:  parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SaveCourierCommand) Validate() error {
	return c.guard.Validate(ErrSaveCourierCommandIsNotConstructed)
}

// ID returns the courier to update, or nil for a new courier.
func (c SaveCourierCommand) ID() *kernel.ID {
	return c.id
}

func (c SaveCourierCommand) Name() string {
	return c.name
}

func (c SaveCourierCommand) Phone() string {
	return c.phone
}

func (c SaveCourierCommand) Vehicle() string {
	return c.vehicle
}

// Status returns the requested availability, or nil when none was sent.
func (c SaveCourierCommand) Status() *courier.Status {
	return c.status
}
