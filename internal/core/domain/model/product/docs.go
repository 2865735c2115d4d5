// Package product provides the catalog entity sold by the delivery business.
//
// A Product has a name, an optional description, a unit price (kernel.Money), a stock level and
// a category. Stock is a non-negative count of units on hand; it only goes down through Withdraw,
// which is what order creation uses to allocate units, and it can be reset by a catalog update.
//
// Key business rules:
//   - name is required, price and stock must not be negative
//   - category defaults to DefaultCategory when left empty
//   - withdrawing more units than are on hand is a conflict, not a validation error
package product
