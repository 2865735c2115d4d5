// Package customer contains the Customer entity: the person an order is delivered to.
//
// A customer is identified by the store-assigned kernel.ID and carries the contact data the
// courier needs at the door: full name, address and phone. All three are mandatory and are
// expected to arrive already sanitized by the application layer.
package customer
