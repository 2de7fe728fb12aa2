package core

// Outcome classifies a DecisionResult.
type Outcome string

const (
	OutcomeIdempotent Outcome = "idempotent"
	OutcomeSuccess    Outcome = "success"
	OutcomeError      Outcome = "error"
)

// DecisionResult is what a Decide function returns.
// Construct it only via IdempotentDecision, SuccessDecision or ErrorDecision.
type DecisionResult struct {
	Outcome Outcome
	Event   DomainEvent // nil for idempotent decisions
	Err     error
}

// IdempotentDecision means the command is already satisfied and nothing changes.
func IdempotentDecision() DecisionResult {
	return DecisionResult{Outcome: OutcomeIdempotent}
}

// SuccessDecision means the state changes as described by event.
func SuccessDecision(event DomainEvent) DecisionResult {
	return DecisionResult{Outcome: OutcomeSuccess, Event: event}
}

// ErrorDecision means a business rule refused the command. The failure event is still journaled.
func ErrorDecision(event DomainEvent, err error) DecisionResult {
	return DecisionResult{Outcome: OutcomeError, Event: event, Err: err}
}

// HasEventToAppend reports whether the decision carries an event for the journal.
func (r DecisionResult) HasEventToAppend() bool {
	return r.Outcome != OutcomeIdempotent && r.Event != nil
}

// HasError returns the business rule error of an error decision, otherwise nil.
func (r DecisionResult) HasError() error {
	if r.Outcome == OutcomeError {
		return r.Err
	}

	return nil
}

// IsIdempotent reports whether nothing was decided.
func (r DecisionResult) IsIdempotent() bool {
	return r.Outcome == OutcomeIdempotent
}
