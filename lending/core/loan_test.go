package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

func Test_Loan(t *testing.T) {
	// arrange
	borrowedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	// act
	loan := core.BuildLoan("B001", "M001", core.KindBook, borrowedAt)
	extended := loan.Extended()

	// assert
	assert.Equal(t, borrowedAt.AddDate(0, 0, 14), loan.DueAt)
	assert.Equal(t, borrowedAt.AddDate(0, 0, 28), extended.DueAt)
	assert.Equal(t, borrowedAt, extended.BorrowedAt)

	returnedAt := loan.DueAt.AddDate(0, 0, 3)
	assert.Equal(t, 3, loan.DaysLateAt(returnedAt))
	assert.InDelta(t, 6.0, loan.LateFeeAt(returnedAt), 1e-9)
	assert.Zero(t, extended.LateFeeAt(returnedAt))
}

func Test_Loan_WithoutDueDateIsNeverLate(t *testing.T) {
	loan := core.Loan{ResourceID: "B001", MemberID: "M001", Kind: core.KindBook}

	assert.Zero(t, loan.DaysLateAt(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
	assert.Zero(t, loan.LateFeeAt(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
}

func Test_DecisionResult(t *testing.T) {
	event := core.BuildBorrowingResourceFailed("B001", "M001", "resource is not available", time.Now())

	idempotent := core.IdempotentDecision()
	success := core.SuccessDecision(core.BuildResourceReserved("B001", "M001", time.Now()))
	failure := core.ErrorDecision(event, core.ErrResourceUnavailable)

	assert.True(t, idempotent.IsIdempotent())
	assert.False(t, idempotent.HasEventToAppend())
	assert.NoError(t, idempotent.HasError())

	assert.True(t, success.HasEventToAppend())
	assert.NoError(t, success.HasError())

	assert.True(t, failure.HasEventToAppend())
	assert.True(t, failure.Event.IsErrorEvent())
	assert.ErrorIs(t, failure.HasError(), core.ErrResourceUnavailable)
}
