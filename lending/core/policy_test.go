package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

func Test_CalculateLateFee(t *testing.T) {
	testCases := []struct {
		name     string
		kind     core.Kind
		daysLate int
		expected float64
	}{
		{name: "book 3 days late", kind: core.KindBook, daysLate: 3, expected: 6.0},
		{name: "periodical 10 days late", kind: core.KindPeriodical, daysLate: 10, expected: 5.0},
		{name: "digital content 4 days late", kind: core.KindDigitalContent, daysLate: 4, expected: 4.0},
		{name: "on time", kind: core.KindBook, daysLate: 0, expected: 0},
		{name: "negative days are clamped", kind: core.KindPeriodical, daysLate: -5, expected: 0},
		{name: "unknown kind", kind: core.Kind("Map"), daysLate: 10, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, core.CalculateLateFee(tc.kind, tc.daysLate), 1e-9)
		})
	}
}

func Test_CalculateLateFee_IsLinear(t *testing.T) {
	for _, kind := range []core.Kind{core.KindBook, core.KindDigitalContent, core.KindPeriodical} {
		for d := 0; d <= 30; d++ {
			assert.InDelta(t, float64(d)*core.CalculateLateFee(kind, 1), core.CalculateLateFee(kind, d), 1e-9)
		}
	}
}

func Test_MaxLoanPeriod(t *testing.T) {
	assert.Equal(t, 14, core.MaxLoanPeriod(core.KindBook))
	assert.Equal(t, 7, core.MaxLoanPeriod(core.KindDigitalContent))
	assert.Equal(t, 7, core.MaxLoanPeriod(core.KindPeriodical))
	assert.Equal(t, 0, core.MaxLoanPeriod(core.Kind("Map")))
}

func Test_PolicyFor(t *testing.T) {
	p, ok := core.PolicyFor(core.KindDigitalContent)
	require.True(t, ok)
	assert.Equal(t, core.RenewRuleAlways, p.RenewRule)
	assert.False(t, p.Reservable)

	_, ok = core.PolicyFor(core.Kind("Map"))
	assert.False(t, ok)

	assert.Len(t, core.Policies(), 3)
}

func Test_DaysLate(t *testing.T) {
	due := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, core.DaysLate(due, due.Add(-time.Hour)), "early")
	assert.Equal(t, 0, core.DaysLate(due, due), "exactly on time")
	assert.Equal(t, 1, core.DaysLate(due, due.Add(time.Minute)), "a started day counts")
	assert.Equal(t, 3, core.DaysLate(due, due.Add(72*time.Hour)))
}
