package journal_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/resource-lending-go/journal"
	"github.com/AntonStoeckl/resource-lending-go/testutil/observability/testdoubles"
)

func Test_MemoryJournal_Append_AssignsSequenceNumbers(t *testing.T) {
	// arrange
	j := journal.NewMemoryJournal()
	ctx := context.Background()

	// act
	err := j.Append(ctx,
		storableEvent(t, "ResourceBorrowed", `{"MemberID":"M001"}`),
		storableEvent(t, "ResourceReturned", `{"MemberID":"M001"}`),
	)

	// assert
	require.NoError(t, err)
	events, maxSeq, err := j.Query(ctx, journal.BuildFilter().MatchingAnyEvent())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, uint(1), events[0].SequenceNumber)
	assert.Equal(t, uint(2), events[1].SequenceNumber)
	assert.Equal(t, uint(2), maxSeq)
	assert.Equal(t, 2, j.Len())
}

func Test_MemoryJournal_Append_WithoutEvents(t *testing.T) {
	j := journal.NewMemoryJournal()

	err := j.Append(context.Background())

	assert.ErrorIs(t, err, journal.ErrNilEventSupplied)
}

func Test_MemoryJournal_Query_Filtered(t *testing.T) {
	// arrange
	j := journal.NewMemoryJournal()
	ctx := context.Background()
	require.NoError(t, j.Append(ctx,
		storableEvent(t, "ResourceBorrowed", `{"MemberID":"M001"}`),
		storableEvent(t, "ResourceBorrowed", `{"MemberID":"M002"}`),
		storableEvent(t, "ResourceReturned", `{"MemberID":"M001"}`),
	))

	filter := journal.BuildFilter().
		Matching().
		AnyEventTypeOf("ResourceBorrowed").
		AndAnyPredicateOf(journal.P("MemberID", "M002")).
		Finalize()

	// act
	events, maxSeq, err := j.Query(ctx, filter)

	// assert
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, uint(2), events[0].SequenceNumber)
	assert.Equal(t, uint(3), maxSeq, "max sequence reflects the whole journal")
}

func Test_MemoryJournal_Query_CanceledContext(t *testing.T) {
	j := journal.NewMemoryJournal()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := j.Query(ctx, journal.BuildFilter().MatchingAnyEvent())

	assert.ErrorIs(t, err, context.Canceled)
}

func Test_MemoryJournal_ConcurrentAppends(t *testing.T) {
	// arrange
	j := journal.NewMemoryJournal()
	ctx := context.Background()
	var wg sync.WaitGroup

	// act
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			event, err := journal.BuildStorableEventWithEmptyMetadata("ResourceReserved", time.Now(), []byte(fmt.Sprintf(`{"N":%d}`, i)))
			if err == nil {
				_ = j.Append(ctx, event)
			}
		}(i)
	}
	wg.Wait()

	// assert
	events, maxSeq, err := j.Query(ctx, journal.BuildFilter().MatchingAnyEvent())
	require.NoError(t, err)
	assert.Len(t, events, 50)
	assert.Equal(t, uint(50), maxSeq)
	for i, event := range events {
		assert.Equal(t, uint(i+1), event.SequenceNumber)
	}
}

func Test_MemoryJournal_Observability(t *testing.T) {
	// arrange
	metrics := testdoubles.NewMetricsCollectorSpy(true)
	tracing := testdoubles.NewTracingCollectorSpy(true)
	logger := testdoubles.NewContextualLoggerSpy(true)

	j := journal.NewMemoryJournal(
		journal.WithMetrics(metrics),
		journal.WithTracing(tracing),
		journal.WithContextualLogger(logger),
	)
	ctx := context.Background()

	// act
	require.NoError(t, j.Append(ctx, storableEvent(t, "ResourceBorrowed", `{"MemberID":"M001"}`)))
	_, _, err := j.Query(ctx, journal.BuildFilter().MatchingAnyEvent())

	// assert
	require.NoError(t, err)
	assert.True(t, metrics.HasCounterRecordForMetric(journal.AppendedEventsMetric).
		WithLabel("event_type", "ResourceBorrowed").
		Assert())
	assert.True(t, metrics.HasDurationRecord(journal.AppendDurationMetric))
	assert.True(t, metrics.HasDurationRecord(journal.QueryDurationMetric))
	assert.True(t, metrics.HasValueRecord(journal.SizeMetric))
	assert.Equal(t, 2, tracing.GetSpanRecordCount())
	assert.True(t, logger.HasDebugLog("events appended"))
	assert.True(t, logger.HasDebugLog("query completed"))
}
