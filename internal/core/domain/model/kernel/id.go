package kernel

import (
	"fmt"
	"strconv"

	"deliveryhub/internal/pkg/errs"
)

// ID is the identity of a stored entity. Identities are assigned by the database
// sequence, so only positive values are valid; the zero value means "not assigned yet".
type ID int64

// NewID validates a raw identifier received from outside the domain.
//
// Example:
//
//	customerID, err := kernel.NewID(req.CustomerID)
//	if err != nil {
//	    return err // value is invalid: id_cliente ...
//	}
func NewID(value int64) (ID, error) {
	id := ID(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// NewOptionalID validates an identifier that may be absent. A nil or zero value
// yields (nil, nil); a negative value is rejected.
func NewOptionalID(value *int64) (*ID, error) {
	if value == nil || *value == 0 {
		return nil, nil //nolint:nilnil // absent identifier
	}
	id, err := NewID(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Validate reports whether the identifier is a positive integer.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive integer", int64(id)))
	}
	return nil
}

// IsZero reports whether no identity has been assigned.
func (id ID) IsZero() bool {
	return id == 0
}

// Int64 returns the raw identifier for persistence and transport.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
