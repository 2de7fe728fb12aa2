// Package memberloans implements a read model over the library: what a member holds,
// when it is due and what it would cost to return it today.
package memberloans
