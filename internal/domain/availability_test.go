package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/PSM-BookingService/pkg/types"
)

// now is a Thursday; nextMonday is 11 days later.
var (
	testNow    = time.Date(2026, 9, 3, 10, 30, 0, 0, time.UTC) // Thursday
	nextMonday = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)  // Monday, +11 days
)

func openDay() DaySchedule {
	return DaySchedule{
		Active:    true,
		Morning:   SlotWindow{Available: true, Start: "09:00", End: "13:00"},
		Afternoon: SlotWindow{Available: true, Start: "13:00", End: "17:00"},
	}
}

func testSupplier() *Supplier {
	return &Supplier{
		ID:       1,
		Name:     "Bouncy Castle Kingdom",
		Category: CategoryEntertainer,
		WorkingHours: WorkingHours{
			Monday:    openDay(),
			Tuesday:   openDay(),
			Wednesday: openDay(),
			Thursday:  openDay(),
			Friday:    openDay(),
			Saturday:  openDay(),
			// Sunday inactive
		},
		AdvanceBookingDays: 2,
		MaxBookingDays:     365,
	}
}

func TestCheckSlot_PastDatesAlwaysRejected(t *testing.T) {
	s := testSupplier()

	for _, daysAgo := range []int{1, 7, 400} {
		date := testNow.AddDate(0, 0, -daysAgo)
		for _, slot := range AllSlots {
			result := CheckSlot(s, date, slot, testNow)
			assert.False(t, result.Available)
			assert.Equal(t, ReasonPast, result.Reason)
		}
	}
}

func TestCheckSlot_SameDayWithDifferentClockTimes(t *testing.T) {
	// The request carries a late clock time while "now" is earlier in the
	// day; calendar-day comparison must not treat today as past.
	s := testSupplier()
	s.AdvanceBookingDays = 0

	today := time.Date(2026, 9, 3, 23, 45, 0, 0, time.UTC) // same Thursday as testNow
	result := CheckSlot(s, today, SlotMorning, testNow)
	assert.True(t, result.Available)
}

func TestCheckSlot_BookingWindow(t *testing.T) {
	s := testSupplier()
	s.AdvanceBookingDays = 7
	s.MaxBookingDays = 30

	tests := []struct {
		name       string
		daysAhead  int
		wantOK     bool
		wantReason Reason
	}{
		{"below minimum lead time", 1, false, ReasonOutsideWindow},
		{"exactly at minimum", 7, true, ""},
		{"inside window", 10, true, ""},
		{"exactly at maximum", 30, true, ""},
		{"past maximum", 31, false, ReasonOutsideWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 2026-09-07 is a Monday; offsets land on open weekdays for
			// every case except where weekday does not matter anyway.
			date := testNow.AddDate(0, 0, tt.daysAhead)
			if date.Weekday() == time.Sunday {
				date = date.AddDate(0, 0, 1)
			}
			result := CheckSlot(s, date, SlotMorning, testNow)
			assert.Equal(t, tt.wantOK, result.Available)
			if !tt.wantOK {
				assert.Equal(t, tt.wantReason, result.Reason)
			}
		})
	}
}

func TestCheckSlot_WindowBoundaryShiftedByWeekday(t *testing.T) {
	// advance=7 with a request 1 day out: rejected as outside-window even
	// though the date is otherwise perfectly bookable.
	s := testSupplier()
	s.AdvanceBookingDays = 7

	tomorrow := testNow.AddDate(0, 0, 1)
	for _, slot := range AllSlots {
		result := CheckSlot(s, tomorrow, slot, testNow)
		assert.False(t, result.Available)
		assert.Equal(t, ReasonOutsideWindow, result.Reason)
	}
}

func TestCheckSlot_InactiveWeekday(t *testing.T) {
	s := testSupplier()

	// 2026-09-13 is a Sunday.
	sunday := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	for _, slot := range AllSlots {
		result := CheckSlot(s, sunday, slot, testNow)
		assert.False(t, result.Available)
		assert.Equal(t, ReasonClosed, result.Reason)
	}
}

func TestCheckSlot_SlotDisabledInWorkingHours(t *testing.T) {
	s := testSupplier()
	s.WorkingHours.Monday.Afternoon.Available = false

	assert.True(t, CheckSlot(s, nextMonday, SlotMorning, testNow).Available)

	result := CheckSlot(s, nextMonday, SlotAfternoon, testNow)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonUnavailable, result.Reason)
}

func TestCheckSlot_ManualBlockSingleSlot(t *testing.T) {
	// A block for the morning only leaves the afternoon open.
	s := testSupplier()
	s.UnavailableDates = []DateBlock{
		{Date: types.NewDateString(nextMonday), Slots: []SlotID{SlotMorning}, Source: BlockSourceManual},
	}

	morning := CheckSlot(s, nextMonday, SlotMorning, testNow)
	assert.False(t, morning.Available)
	assert.Equal(t, ReasonUnavailable, morning.Reason)

	afternoon := CheckSlot(s, nextMonday, SlotAfternoon, testNow)
	assert.True(t, afternoon.Available)
}

func TestCheckSlot_BareDateBlockCoversAllSlots(t *testing.T) {
	s := testSupplier()
	s.UnavailableDates = []DateBlock{
		{Date: types.NewDateString(nextMonday), Source: BlockSourceManual, Label: "family day"},
	}

	for _, slot := range AllSlots {
		result := CheckSlot(s, nextMonday, slot, testNow)
		assert.False(t, result.Available, "slot %s", slot)
		assert.Equal(t, ReasonUnavailable, result.Reason)
	}
}

func TestCheckSlot_DuplicateBlockAcrossBothLists(t *testing.T) {
	// The same date/slot blocked both manually and by calendar sync must
	// behave exactly like a single block.
	s := testSupplier()
	day := types.NewDateString(nextMonday)
	s.UnavailableDates = []DateBlock{{Date: day, Slots: []SlotID{SlotMorning}, Source: BlockSourceManual}}
	s.BusyDates = []DateBlock{{Date: day, Slots: []SlotID{SlotMorning}, Source: BlockSourceCalendar}}

	result := CheckSlot(s, nextMonday, SlotMorning, testNow)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonUnavailable, result.Reason)

	assert.True(t, CheckSlot(s, nextMonday, SlotAfternoon, testNow).Available)
}

func TestCheckSlot_CalendarBlocksActLikeManual(t *testing.T) {
	s := testSupplier()
	s.BusyDates = []DateBlock{
		{Date: types.NewDateString(nextMonday), Slots: []SlotID{SlotAfternoon}, Source: BlockSourceCalendar},
	}

	assert.True(t, CheckSlot(s, nextMonday, SlotMorning, testNow).Available)
	assert.False(t, CheckSlot(s, nextMonday, SlotAfternoon, testNow).Available)
}

func TestCheckSlot_Idempotent(t *testing.T) {
	s := testSupplier()
	s.UnavailableDates = []DateBlock{{Date: types.NewDateString(nextMonday), Slots: []SlotID{SlotMorning}}}

	first := CheckSlot(s, nextMonday, SlotMorning, testNow)
	second := CheckSlot(s, nextMonday, SlotMorning, testNow)
	assert.Equal(t, first, second)
}

func TestCheckSlot_FailClosedOnMissingData(t *testing.T) {
	assert.False(t, CheckSlot(nil, nextMonday, SlotMorning, testNow).Available)

	// Supplier with no working hours at all.
	empty := &Supplier{ID: 2}
	result := CheckSlot(empty, nextMonday, SlotMorning, testNow)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonClosed, result.Reason)

	// Unknown slot identifier.
	s := testSupplier()
	assert.False(t, CheckSlot(s, nextMonday, SlotID("evening"), testNow).Available)
}

func TestCheckSlot_HappyPath(t *testing.T) {
	// advance=2, max=365, open Monday, no blocks, Monday 11 days out.
	s := testSupplier()

	result := CheckSlot(s, nextMonday, SlotMorning, testNow)
	assert.True(t, result.Available)
	assert.Empty(t, result.Reason)
}

func TestEvaluateDay_Statuses(t *testing.T) {
	day := types.NewDateString(nextMonday)

	tests := []struct {
		name  string
		setup func(*Supplier)
		date  time.Time
		want  DayStatus
	}{
		{
			name:  "all slots open",
			setup: func(s *Supplier) {},
			date:  nextMonday,
			want:  DayAvailable,
		},
		{
			name: "one slot blocked",
			setup: func(s *Supplier) {
				s.UnavailableDates = []DateBlock{{Date: day, Slots: []SlotID{SlotMorning}}}
			},
			date: nextMonday,
			want: DayPartiallyAvailable,
		},
		{
			name: "whole day blocked",
			setup: func(s *Supplier) {
				s.UnavailableDates = []DateBlock{{Date: day}}
			},
			date: nextMonday,
			want: DayUnavailable,
		},
		{
			name:  "inactive weekday",
			setup: func(s *Supplier) {},
			date:  time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC), // Sunday
			want:  DayClosed,
		},
		{
			name:  "past date",
			setup: func(s *Supplier) {},
			date:  testNow.AddDate(0, 0, -3),
			want:  DayPast,
		},
		{
			name:  "before minimum lead time",
			setup: func(s *Supplier) { s.AdvanceBookingDays = 7 },
			date:  testNow.AddDate(0, 0, 1),
			want:  DayOutsideWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSupplier()
			tt.setup(s)

			got := EvaluateDay(s, tt.date, testNow)
			assert.Equal(t, tt.want, got.Status)
			assert.Len(t, got.Slots, len(AllSlots))
		})
	}
}
