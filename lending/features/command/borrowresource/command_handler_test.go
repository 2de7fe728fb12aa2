package borrowresource_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/resource-lending-go/journal"
	"github.com/AntonStoeckl/resource-lending-go/lending/core"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/command/borrowresource"
	"github.com/AntonStoeckl/resource-lending-go/lending/shell"
)

func Test_CommandHandler_Handle_SecondBorrowerIsRefused(t *testing.T) {
	// arrange
	ctx := context.Background()
	j := journal.NewMemoryJournal()
	library := shell.NewLibrary(j)
	require.NoError(t, library.AddResource(ctx, core.Book{ID: "B001", Title: "Go"}, true))
	require.NoError(t, library.RegisterMember(ctx, core.Member{ID: "M001", Name: "Alice", Tier: core.TierStandard}))
	require.NoError(t, library.RegisterMember(ctx, core.Member{ID: "M002", Name: "Bob", Tier: core.TierPremium}))
	handler := borrowresource.NewCommandHandler(library)
	now := time.Now()

	// act
	aliceResult, aliceErr := handler.Handle(ctx, borrowresource.BuildCommand("B001", "M001", now))
	bobResult, bobErr := handler.Handle(ctx, borrowresource.BuildCommand("B001", "M002", now))

	// assert
	require.NoError(t, aliceErr)
	assert.Equal(t, core.ResourceBorrowedEventType, aliceResult.EventType)

	assert.ErrorIs(t, bobErr, core.ErrResourceUnavailable)
	assert.True(t, bobResult.Rejected)

	available, _ := library.IsAvailable("B001")
	assert.False(t, available)
	aliceHolds, _ := library.BorrowedBy("M001")
	bobHolds, _ := library.BorrowedBy("M002")
	assert.Equal(t, []string{"B001"}, aliceHolds)
	assert.Empty(t, bobHolds)

	failed, _, err := j.Query(ctx, journal.BuildFilter().
		Matching().
		AnyEventTypeOf(core.BorrowingResourceFailedEventType).
		AndAnyPredicateOf(journal.P("MemberID", "M002")).
		Finalize())
	require.NoError(t, err)
	assert.Len(t, failed, 1)
}

func Test_CommandHandler_Handle_TierCapacity(t *testing.T) {
	testCases := []struct {
		tier          core.Tier
		sixthSucceeds bool
	}{
		{tier: core.TierStandard, sixthSucceeds: false},
		{tier: core.TierPremium, sixthSucceeds: true},
	}

	for _, tc := range testCases {
		t.Run(string(tc.tier), func(t *testing.T) {
			// arrange
			ctx := context.Background()
			library := shell.NewLibrary(journal.NewMemoryJournal())
			require.NoError(t, library.RegisterMember(ctx, core.Member{ID: "M001", Name: "Alice", Tier: tc.tier}))
			for i := 1; i <= 6; i++ {
				require.NoError(t, library.AddResource(ctx, core.Book{ID: fmt.Sprintf("B%03d", i), Title: "Book"}, true))
			}
			handler := borrowresource.NewCommandHandler(library)

			for i := 1; i <= 5; i++ {
				_, err := handler.Handle(ctx, borrowresource.BuildCommand(fmt.Sprintf("B%03d", i), "M001", time.Now()))
				require.NoError(t, err)
			}

			// act
			_, err := handler.Handle(ctx, borrowresource.BuildCommand("B006", "M001", time.Now()))

			// assert
			borrowed, _ := library.BorrowedBy("M001")
			available, _ := library.IsAvailable("B006")
			if tc.sixthSucceeds {
				assert.NoError(t, err)
				assert.Len(t, borrowed, 6)
				assert.False(t, available)
			} else {
				assert.ErrorIs(t, err, core.ErrLoanLimitExceeded)
				assert.Len(t, borrowed, 5)
				assert.True(t, available, "a refused borrow changes nothing")
			}
		})
	}
}

func Test_CommandHandler_Handle_UnknownMember(t *testing.T) {
	ctx := context.Background()
	library := shell.NewLibrary(journal.NewMemoryJournal())
	require.NoError(t, library.AddResource(ctx, core.Book{ID: "B001", Title: "Go"}, true))

	result, err := borrowresource.NewCommandHandler(library).Handle(ctx, borrowresource.BuildCommand("B001", "M404", time.Now()))

	assert.ErrorIs(t, err, shell.ErrMemberNotFound)
	assert.Equal(t, shell.NewErrorResult(), result)
}

func Test_CommandHandler_Handle_ConcurrentBorrowersOneWins(t *testing.T) {
	// arrange
	const members = 20
	ctx := context.Background()
	library := shell.NewLibrary(journal.NewMemoryJournal())
	require.NoError(t, library.AddResource(ctx, core.Periodical{ID: "P001", Title: "Go Weekly"}, true))
	for i := 0; i < members; i++ {
		require.NoError(t, library.RegisterMember(ctx, core.Member{ID: fmt.Sprintf("M%03d", i), Name: "Member", Tier: core.TierStandard}))
	}
	handler := borrowresource.NewCommandHandler(library)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		refusals  int
	)

	// act
	for i := 0; i < members; i++ {
		wg.Add(1)
		go func(memberID string) {
			defer wg.Done()
			_, err := handler.Handle(ctx, borrowresource.BuildCommand("P001", memberID, time.Now()))

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if assert.ErrorIs(t, err, core.ErrResourceUnavailable) {
				refusals++
			}
		}(fmt.Sprintf("M%03d", i))
	}
	wg.Wait()

	// assert
	assert.Equal(t, 1, successes)
	assert.Equal(t, members-1, refusals)
}
