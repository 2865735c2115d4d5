// Package services holds domain services: business logic that spans several aggregates
// and does not belong to any single one of them.
//
// OrderAssembler turns a customer and a list of requested products into a new Order.
// It allocates stock from each product and captures the catalog price of every line item.
// It performs no I/O; the caller loads the aggregates and persists the results.
package services
