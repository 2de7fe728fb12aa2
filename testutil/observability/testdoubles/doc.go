// Package testdoubles provides spies for the journal and lending observability interfaces.
//
// Each spy is created with a recordCalls flag. With recordCalls=false the spy silently
// drops all calls, which is handy for benchmarks and tests that only need a non-nil collaborator.
package testdoubles
