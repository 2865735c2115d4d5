package courier

import (
	"errors"
	"strings"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when a courier has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("nombre_completo")
	// ErrPhoneIsRequired is returned when a courier has no phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("telefono")
	// ErrVehicleIsRequired is returned when a courier has no vehicle.
	ErrVehicleIsRequired = errs.NewValueIsRequiredError("vehiculo")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier.
//
// Key responsibilities:
//   - Keeping the contact data dispatchers need (name, phone, vehicle)
//   - Tracking availability while orders are out for delivery
//
// Business rules:
//   - Name, phone and vehicle are required
//   - Status must be one of Available, Busy or Inactive
//   - Assignment to an order marks only an Available courier as Busy
//
// Example usage:
//
//	c, err := courier.NewCourier("Juan", "555-0199", "Moto", courier.Available)
//	if err != nil {
//	    return err
//	}
//	c.MarkBusy()
type Courier struct {
	// id is assigned by the store, zero until the courier is saved
	id kernel.ID
	// name is the courier's full name
	name string
	// phone is the contact number
	phone string
	// vehicle describes how the courier travels (bike, motorcycle, car)
	vehicle string
	// status is the current availability
	status Status
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a courier that has not been stored yet.
//
// Parameters:
//   - name, phone, vehicle: contact data, all required
//   - status: initial availability, use Available for a new hire
//
// Returns:
//   - *Courier: the courier, with a zero ID until it is saved
//   - error: aggregated validation errors
func NewCourier(name, phone, vehicle string, status Status) (*Courier, error) {
	c := &Courier{guard: guard.NewConstructorGuard()}

	if err := c.set(name, phone, vehicle, status); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a stored courier, preserving its availability.
func RestoreCourier(id kernel.ID, name, phone, vehicle string, status Status) (*Courier, error) {
	c := &Courier{guard: guard.NewConstructorGuard()}

	if err := errors.Join(id.Validate(), c.set(name, phone, vehicle, status)); err != nil {
		return nil, err
	}
	c.id = id

	return c, nil
}

// IsEqual compares two couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id == other.id
}

// Validate checks if the Courier was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// Update replaces contact data and availability. On error nothing changes.
func (c *Courier) Update(name, phone, vehicle string, status Status) error {
	next := *c
	if err := next.set(name, phone, vehicle, status); err != nil {
		return err
	}
	*c = next
	return nil
}

// MarkBusy flags the courier as out on a delivery. Busy and Inactive couriers keep their status.
func (c *Courier) MarkBusy() {
	if c.status == Available {
		c.status = Busy
	}
}

// Release makes the courier available again, whatever its current status.
func (c *Courier) Release() {
	c.status = Available
}

func (c *Courier) ID() kernel.ID {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

func (c *Courier) Phone() string {
	return c.phone
}

func (c *Courier) Vehicle() string {
	return c.vehicle
}

func (c *Courier) Status() Status {
	return c.status
}

func (c *Courier) set(name, phone, vehicle string, status Status) error {
	var joined []error
	if strings.TrimSpace(name) == "" {
		joined = append(joined, ErrNameIsRequired)
	}
	if strings.TrimSpace(phone) == "" {
		joined = append(joined, ErrPhoneIsRequired)
	}
	if strings.TrimSpace(vehicle) == "" {
		joined = append(joined, ErrVehicleIsRequired)
	}
	joined = append(joined, status.Validate())
	if err := errors.Join(joined...); err != nil {
		return err
	}

	c.name = name
	c.phone = phone
	c.vehicle = vehicle
	c.status = status
	return nil
}
