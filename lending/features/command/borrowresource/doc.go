// Package borrowresource implements the borrow use case: a member takes a resource on loan.
package borrowresource
