package core

import (
	"errors"
)

var (
	// ErrResourceUnavailable is returned when borrowing a resource that is currently unavailable.
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrLoanLimitExceeded is returned when a member already holds as many resources as the tier allows.
	ErrLoanLimitExceeded = errors.New("loan limit exceeded")

	// ErrInvalidMembership is returned for a member with an unknown tier or missing identity.
	ErrInvalidMembership = errors.New("invalid membership")

	// ErrInvalidResource is returned when a resource fails validation on construction.
	ErrInvalidResource = errors.New("invalid resource")

	// ErrRenewalRefused is returned when the renew rule of the resource kind does not allow renewing now.
	ErrRenewalRefused = errors.New("renewal refused")
)
