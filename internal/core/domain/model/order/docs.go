// Package order provides the Order aggregate of the delivery backend: a customer's purchase of
// one or more catalog products, together with its delivery lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding customer, optional courier, status, total and line items
//   - LineItem: one product with quantity and the unit price captured when the order was placed
//   - Status: the five delivery states with their stored labels
//
// Key business rules:
//   - An order has at least one line item and starts Pending
//   - The total is computed from the line items and never supplied by callers
//   - Line items are immutable once created
//   - Any status may follow any other; only OutForDelivery requires a courier
package order
