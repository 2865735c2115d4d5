// Package kernel provides the value objects shared by every aggregate of the delivery backend.
//
// The package includes:
//   - ID: the positive integer identity assigned by the store to customers, products,
//     couriers, orders and line items
//   - Money: a non-negative decimal amount with two fractional digits, used for
//     catalog prices, line item snapshots and order totals
//
// Both types are immutable. Money refuses negative amounts and must be created through
// its constructors; an ID is valid only when it is greater than zero.
package kernel
