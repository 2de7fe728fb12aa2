package memberloans_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/resource-lending-go/journal"
	"github.com/AntonStoeckl/resource-lending-go/lending/core"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/command/borrowresource"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/command/returnresource"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/query/memberloans"
	"github.com/AntonStoeckl/resource-lending-go/lending/shell"
)

func Test_QueryHandler_Handle_ReflectsBorrowAndReturn(t *testing.T) {
	// arrange
	ctx := context.Background()
	library := shell.NewLibrary(journal.NewMemoryJournal())
	require.NoError(t, library.AddResource(ctx, core.Book{ID: "B001", Title: "Go"}, true))
	require.NoError(t, library.AddResource(ctx, core.DigitalContent{ID: "D001", Title: "Go Patterns"}, true))
	require.NoError(t, library.RegisterMember(ctx, core.Member{ID: "M001", Name: "Alice", Tier: core.TierStandard}))
	borrowedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	borrow := borrowresource.NewCommandHandler(library)
	_, err := borrow.Handle(ctx, borrowresource.BuildCommand("B001", "M001", borrowedAt))
	require.NoError(t, err)
	_, err = borrow.Handle(ctx, borrowresource.BuildCommand("D001", "M001", borrowedAt))
	require.NoError(t, err)
	_, err = returnresource.NewCommandHandler(library).Handle(ctx, returnresource.BuildCommand("B001", "M001", borrowedAt.AddDate(0, 0, 1)))
	require.NoError(t, err)
	handler := memberloans.NewQueryHandler(library)

	// act
	result, err := handler.Handle(ctx, memberloans.BuildQuery("M001", borrowedAt.AddDate(0, 0, 9)))

	// assert
	require.NoError(t, err)
	require.Len(t, result.Loans, 1)
	assert.Equal(t, "D001", result.Loans[0].ResourceID)
	assert.Equal(t, "Go Patterns", result.Loans[0].Title)
	assert.Equal(t, core.KindDigitalContent, result.Loans[0].Kind)
	assert.Equal(t, borrowedAt.AddDate(0, 0, 7), result.Loans[0].DueAt)
	assert.Equal(t, 2, result.Loans[0].DaysLate)
	assert.InDelta(t, 2.0, result.TotalFee, 1e-9)
}

func Test_QueryHandler_Handle_UnknownMember(t *testing.T) {
	handler := memberloans.NewQueryHandler(shell.NewLibrary(journal.NewMemoryJournal()))

	_, err := handler.Handle(context.Background(), memberloans.BuildQuery("M404", time.Now()))

	assert.ErrorIs(t, err, shell.ErrMemberNotFound)
}
