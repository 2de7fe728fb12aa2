// Package reserveresource implements placing a reservation. There is no reservation queue:
// a reservation is journaled and logged, nothing else.
package reserveresource
