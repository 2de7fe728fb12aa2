package journal

import (
	"errors"
)

// ErrNilEventSupplied is returned when Append is called without any events.
var ErrNilEventSupplied = errors.New("no events supplied to append")

// ErrPredicateEvaluationFailed is returned when a payload cannot be inspected for filter predicates.
var ErrPredicateEvaluationFailed = errors.New("predicate evaluation failed")

// MaxSequenceNumberUint is the highest sequence number contained in a query result.
type MaxSequenceNumberUint = uint
