package order

import (
	"fmt"

	"deliveryhub/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Typical flow:
//
//	Pending ──> Preparing ──> OutForDelivery ──> Delivered
//	   └───────────┴───────────────┴───────────> Cancelled
//
// The flow is not enforced. Dispatchers may move an order to any state from any state,
// so Status only validates membership in the set.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	Pending

	// Preparing means the kitchen or warehouse is putting the order together.
	Preparing

	// OutForDelivery means a courier has the order. Entering it requires a courier.
	OutForDelivery

	// Delivered means the customer received the order.
	Delivered

	// Cancelled means the order will not be delivered.
	Cancelled
)

// getStatusStrings returns the stored label of every status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Desconocido",
		Pending:        "Pendiente",
		Preparing:      "En preparación",
		OutForDelivery: "En camino",
		Delivered:      "Entregado",
		Cancelled:      "Cancelado",
	}
}

// getValidStatusStrings returns only the statuses an order may hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pendiente",
		Preparing:      "En preparación",
		OutForDelivery: "En camino",
		Delivered:      "Entregado",
		Cancelled:      "Cancelado",
	}
}

// ParseStatus converts a stored or wire label into a Status.
//
// Example:
//
//	status, err := order.ParseStatus("En camino") // OutForDelivery
func ParseStatus(label string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == label {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"nuevo_estado",
		fmt.Errorf("%q is not a valid order status", label),
	)
}

// Validate checks if the Status value is one of the five order states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the stored label of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return getStatusStrings()[Unknown]
}

// RequiresCourier reports whether entering the status needs a courier.
func (s Status) RequiresCourier() bool {
	return s == OutForDelivery
}

// ReleasesCourier reports whether entering the status frees the previously assigned courier.
func (s Status) ReleasesCourier() bool {
	return s == Delivered || s == Cancelled
}
