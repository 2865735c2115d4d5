// Package courier provides the Courier entity: a person who delivers orders.
//
// Besides contact data (name, phone, vehicle) a courier has an availability Status.
// The order workflow flips it:
//
//	Available ──MarkBusy──> Busy ──Release──> Available
//
// MarkBusy is a no-op unless the courier is Available, so an Inactive courier stays
// Inactive when assigned to an order. Release sets Available unconditionally, which is how
// a delivered or cancelled order frees its courier.
package courier
