// Package renewloan implements loan renewal. Renewing never changes availability or the borrowed sets;
// a granted renewal of an active loan pushes its due date out by one loan period.
package renewloan
