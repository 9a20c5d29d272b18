package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestVacationAllocationDays(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"single day", date(2026, 8, 10), date(2026, 8, 10), 1},
		{"full week", date(2026, 8, 10), date(2026, 8, 16), 7},
		{"spanning two months", date(2026, 8, 25), date(2026, 9, 3), 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			allocation := &VacationAllocation{StartDate: tc.start, EndDate: tc.end}
			assert.Equal(t, tc.expected, allocation.Days())
		})
	}
}

func TestVacationAllocationDaysInMonth(t *testing.T) {
	allocation := &VacationAllocation{
		StartDate: date(2026, 8, 25),
		EndDate:   date(2026, 9, 3),
	}

	assert.Equal(t, 7, allocation.DaysInMonth(date(2026, 8, 1)))
	assert.Equal(t, 3, allocation.DaysInMonth(date(2026, 9, 15)))
	assert.Equal(t, 0, allocation.DaysInMonth(date(2026, 10, 1)))
}

func TestVacationAllocationOverlapsMonth(t *testing.T) {
	allocation := &VacationAllocation{
		StartDate: date(2026, 8, 25),
		EndDate:   date(2026, 9, 3),
	}

	assert.True(t, allocation.OverlapsMonth(date(2026, 8, 31)))
	assert.True(t, allocation.OverlapsMonth(date(2026, 9, 1)))
	assert.False(t, allocation.OverlapsMonth(date(2026, 7, 15)))
	assert.False(t, allocation.OverlapsMonth(date(2026, 10, 15)))
}

func TestParticipantTenureDaysAt(t *testing.T) {
	participant := &Participant{HiredAt: date(2026, 1, 1)}

	assert.Equal(t, 0, participant.TenureDaysAt(date(2026, 1, 1)))
	assert.Equal(t, 45, participant.TenureDaysAt(date(2026, 2, 15)))
	assert.Equal(t, 212, participant.TenureDaysAt(date(2026, 8, 1)))
}

func TestEnumValidity(t *testing.T) {
	t.Run("group kinds", func(t *testing.T) {
		assert.True(t, GroupKindLocation.IsValid())
		assert.True(t, GroupKindSector.IsValid())
		assert.False(t, GroupKind("region").IsValid())
	})

	t.Run("shifts", func(t *testing.T) {
		assert.True(t, ShiftMorning.IsValid())
		assert.True(t, ShiftAfternoon.IsValid())
		assert.True(t, ShiftFullDay.IsValid())
		assert.False(t, Shift("night").IsValid())
	})

	t.Run("credit statuses", func(t *testing.T) {
		assert.True(t, CreditStatusAvailable.IsValid())
		assert.True(t, CreditStatusUsed.IsValid())
		assert.False(t, CreditStatus("pending").IsValid())
	})

	t.Run("forfeiture reasons", func(t *testing.T) {
		assert.True(t, ForfeitureReasonUnexcusedAbsence.IsValid())
		assert.True(t, ForfeitureReasonOther.IsValid())
		assert.False(t, ForfeitureReason("vacation").IsValid())
	})

	t.Run("vacation statuses", func(t *testing.T) {
		assert.True(t, VacationStatusScheduled.IsValid())
		assert.True(t, VacationStatusCancelled.IsValid())
		assert.False(t, VacationStatus("pending").IsValid())
	})
}
