// Package core holds the pure domain of resource lending: the lendable resource variants,
// members and their tiers, the per-kind lending policy, loans, domain events and the
// DecisionResult returned by every Decide function.
//
// Nothing in this package mutates shared state or performs I/O. State lives in the shell
// (see package shell), which hands a LendingState snapshot to a Decide function and applies
// the resulting event.
package core
