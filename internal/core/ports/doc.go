// Package ports defines the contracts between the application core and its adapters:
// repositories bound to a unit of work, the event publisher, and the authentication
// services used by login.
package ports
