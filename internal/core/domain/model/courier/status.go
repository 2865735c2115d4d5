package courier

import (
	"fmt"

	"deliveryhub/internal/pkg/errs"
)

// Status is the availability of a courier.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Available
	Busy
	Inactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Available: "disponible",
		Busy:      "ocupado",
		Inactive:  "inactivo",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "disponible",
		Busy:      "ocupado",
		Inactive:  "inactivo",
	}
}

// ParseStatus converts a stored or wire label into a Status. An empty label means Available.
func ParseStatus(label string) (Status, error) {
	if label == "" {
		return Available, nil
	}
	for status, str := range getValidStatusStrings() {
		if str == label {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"estado",
		fmt.Errorf("%q is not one of disponible, ocupado, inactivo", label),
	)
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("estado", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the label used in the database and on the wire.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
