package returnresource_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/resource-lending-go/lending/core"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/command/returnresource"
)

func Test_Decide_Success_OnTime(t *testing.T) {
	// arrange
	borrowedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	state := givenBorrowedState(core.Book{ID: "B001", Title: "Go"}, borrowedAt)
	command := returnresource.BuildCommand("B001", "M001", borrowedAt.AddDate(0, 0, 10))

	// act
	result := returnresource.Decide(state, command)

	// assert
	event, ok := result.Event.(core.ResourceReturned)
	require.True(t, ok, "expected ResourceReturned, got %T", result.Event)
	assert.Equal(t, 0, event.DaysLate)
	assert.Zero(t, event.LateFee)
}

func Test_Decide_Success_Late(t *testing.T) {
	testCases := []struct {
		name        string
		resource    core.Resource
		daysLate    int
		expectedFee float64
	}{
		{name: "book three days late", resource: core.Book{ID: "B001", Title: "Go"}, daysLate: 3, expectedFee: 6.0},
		{name: "periodical ten days late", resource: core.Periodical{ID: "B001", Title: "Go Weekly"}, daysLate: 10, expectedFee: 5.0},
		{name: "digital content two days late", resource: core.DigitalContent{ID: "B001", Title: "Go Patterns"}, daysLate: 2, expectedFee: 2.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			borrowedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
			state := givenBorrowedState(tc.resource, borrowedAt)
			returnedAt := state.ActiveLoan.DueAt.AddDate(0, 0, tc.daysLate)

			// act
			result := returnresource.Decide(state, returnresource.BuildCommand("B001", "M001", returnedAt))

			// assert
			event, ok := result.Event.(core.ResourceReturned)
			require.True(t, ok)
			assert.Equal(t, tc.daysLate, event.DaysLate)
			assert.InDelta(t, tc.expectedFee, event.LateFee, 1e-9)
		})
	}
}

func Test_Decide_Success_WhenMemberDoesNotHoldResource(t *testing.T) {
	testCases := map[string]core.LendingState{
		"out of circulation": {
			Resource:          core.Book{ID: "B001", Title: "Go"},
			ResourceAvailable: false,
			Member:            core.Member{ID: "M001", Name: "Alice", Tier: core.TierStandard},
			MemberBorrowed:    []core.ResourceIDString{"B002"},
		},
		"lent to another member": {
			Resource:          core.Book{ID: "B001", Title: "Go"},
			ResourceAvailable: false,
			ActiveLoan:        core.BuildLoan("B001", "M002", core.KindBook, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			HasActiveLoan:     true,
			Member:            core.Member{ID: "M001", Name: "Alice", Tier: core.TierStandard},
		},
	}

	for name, state := range testCases {
		t.Run(name, func(t *testing.T) {
			// act
			result := returnresource.Decide(state, returnresource.BuildCommand("B001", "M001", time.Now()))

			// assert
			require.True(t, result.HasEventToAppend())
			assert.NoError(t, result.HasError())

			event, ok := result.Event.(core.ResourceReturned)
			require.True(t, ok)
			assert.Zero(t, event.DaysLate)
			assert.Zero(t, event.LateFee)
		})
	}
}

func givenBorrowedState(resource core.Resource, borrowedAt time.Time) core.LendingState {
	return core.LendingState{
		Resource:          resource,
		ResourceAvailable: false,
		ActiveLoan:        core.BuildLoan(resource.ResourceID(), "M001", resource.Kind(), borrowedAt),
		HasActiveLoan:     true,
		Member:            core.Member{ID: "M001", Name: "Alice", Tier: core.TierStandard},
		MemberBorrowed:    []core.ResourceIDString{resource.ResourceID()},
	}
}
