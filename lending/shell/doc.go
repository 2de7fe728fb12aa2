// Package shell is the imperative shell around the lending core.
//
// It owns the Library, the single place where lending state mutates, and translates
// between domain events and the journal's StorableEvents. It also carries the
// observability helpers shared by all command and query handlers.
package shell
