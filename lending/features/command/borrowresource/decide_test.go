package borrowresource_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/resource-lending-go/lending/core"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/command/borrowresource"
)

func Test_Decide_Success_WhenAvailableAndBelowCapacity(t *testing.T) {
	// arrange
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	state := givenState(core.Book{ID: "B001", Title: "Go"}, true, core.TierStandard, 4)
	command := borrowresource.BuildCommand("B001", "M001", now)

	// act
	result := borrowresource.Decide(state, command)

	// assert
	require.NoError(t, result.HasError())
	event, ok := result.Event.(core.ResourceBorrowed)
	require.True(t, ok, "expected ResourceBorrowed, got %T", result.Event)
	assert.Equal(t, "B001", event.ResourceID)
	assert.Equal(t, "M001", event.MemberID)
	assert.Equal(t, core.KindBook, event.Kind)
	assert.Equal(t, now.AddDate(0, 0, 14), event.DueAt)
}

func Test_Decide_DueDateFollowsKind(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	result := borrowresource.Decide(
		givenState(core.DigitalContent{ID: "D001", Title: "Go Patterns"}, true, core.TierPremium, 0),
		borrowresource.BuildCommand("D001", "M001", now),
	)

	event, ok := result.Event.(core.ResourceBorrowed)
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, 7), event.DueAt)
}

func Test_Decide_BusinessErrors(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name           string
		state          core.LendingState
		expectedErr    error
		expectedReason string
	}{
		{
			name:           "resource unavailable",
			state:          givenState(core.Book{ID: "B001", Title: "Go"}, false, core.TierStandard, 0),
			expectedErr:    core.ErrResourceUnavailable,
			expectedReason: "resource is not available",
		},
		{
			name:           "unavailable wins over full capacity",
			state:          givenState(core.Book{ID: "B001", Title: "Go"}, false, core.TierStandard, 5),
			expectedErr:    core.ErrResourceUnavailable,
			expectedReason: "resource is not available",
		},
		{
			name:           "standard member holds five",
			state:          givenState(core.Periodical{ID: "B001", Title: "Go Weekly"}, true, core.TierStandard, 5),
			expectedErr:    core.ErrLoanLimitExceeded,
			expectedReason: "member has reached the loan limit of the membership tier",
		},
		{
			name:           "premium member holds ten",
			state:          givenState(core.Book{ID: "B001", Title: "Go"}, true, core.TierPremium, 10),
			expectedErr:    core.ErrLoanLimitExceeded,
			expectedReason: "member has reached the loan limit of the membership tier",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := borrowresource.Decide(tc.state, borrowresource.BuildCommand("B001", "M001", now))

			// assert
			assert.ErrorIs(t, result.HasError(), tc.expectedErr)
			event, ok := result.Event.(core.BorrowingResourceFailed)
			require.True(t, ok, "expected BorrowingResourceFailed, got %T", result.Event)
			assert.Equal(t, tc.expectedReason, event.FailureInfo)
			assert.True(t, event.IsErrorEvent())
		})
	}
}

func Test_Decide_PremiumMemberMayBorrowSixth(t *testing.T) {
	result := borrowresource.Decide(
		givenState(core.Book{ID: "B006", Title: "Sixth"}, true, core.TierPremium, 5),
		borrowresource.BuildCommand("B006", "M001", time.Now()),
	)

	assert.NoError(t, result.HasError())
	assert.IsType(t, core.ResourceBorrowed{}, result.Event)
}

func givenState(resource core.Resource, available bool, tier core.Tier, borrowedCount int) core.LendingState {
	borrowed := make([]core.ResourceIDString, 0, borrowedCount)
	for i := 0; i < borrowedCount; i++ {
		borrowed = append(borrowed, fmt.Sprintf("X%03d", i))
	}

	return core.LendingState{
		Resource:          resource,
		ResourceAvailable: available,
		Member:            core.Member{ID: "M001", Name: "Alice", Tier: tier},
		MemberBorrowed:    borrowed,
	}
}
