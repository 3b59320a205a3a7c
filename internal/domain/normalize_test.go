package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PSM-BookingService/pkg/ptr"
	"github.com/m04kA/PSM-BookingService/pkg/types"
)

func TestNormalizeWorkingHours_PerSlotShape(t *testing.T) {
	raw := RawWorkingHours{
		Monday: RawDaySchedule{
			Active: true,
			TimeSlots: &RawTimeSlots{
				Morning:   &RawSlotWindow{Available: true, Start: ptr.Ptr(types.TimeString("08:00")), End: ptr.Ptr(types.TimeString("12:00"))},
				Afternoon: &RawSlotWindow{Available: false},
			},
		},
	}

	hours := NormalizeWorkingHours(raw)

	assert.True(t, hours.Monday.Active)
	assert.True(t, hours.Monday.Morning.Available)
	assert.Equal(t, types.TimeString("08:00"), hours.Monday.Morning.Start)
	assert.Equal(t, types.TimeString("12:00"), hours.Monday.Morning.End)
	assert.False(t, hours.Monday.Afternoon.Available)
	// Missing start/end fall back to the defaults.
	assert.Equal(t, types.TimeString(DefaultSlotBoundary), hours.Monday.Afternoon.Start)

	// Days absent from the stored row are inactive.
	assert.False(t, hours.Tuesday.Active)
	assert.False(t, hours.Sunday.Active)
}

func TestNormalizeWorkingHours_LegacySingleRange(t *testing.T) {
	// Legacy rows carry one open/close pair per day. The range is split
	// at the 13:00 boundary into the two-slot shape.
	raw := RawWorkingHours{
		Saturday: RawDaySchedule{
			Active: true,
			Open:   ptr.Ptr(types.TimeString("10:00")),
			Close:  ptr.Ptr(types.TimeString("16:00")),
		},
	}

	hours := NormalizeWorkingHours(raw)
	day := hours.Saturday

	require.True(t, day.Active)
	assert.True(t, day.Morning.Available)
	assert.Equal(t, types.TimeString("10:00"), day.Morning.Start)
	assert.Equal(t, types.TimeString("13:00"), day.Morning.End)
	assert.True(t, day.Afternoon.Available)
	assert.Equal(t, types.TimeString("13:00"), day.Afternoon.Start)
	assert.Equal(t, types.TimeString("16:00"), day.Afternoon.End)
}

func TestNormalizeWorkingHours_LegacyRangeOnOneSideOfBoundary(t *testing.T) {
	// An afternoon-only legacy range leaves the morning slot unavailable.
	raw := RawWorkingHours{
		Friday: RawDaySchedule{
			Active: true,
			Open:   ptr.Ptr(types.TimeString("13:00")),
			Close:  ptr.Ptr(types.TimeString("18:00")),
		},
	}

	day := NormalizeWorkingHours(raw).Friday
	assert.False(t, day.Morning.Available)
	assert.True(t, day.Afternoon.Available)
	assert.Equal(t, types.TimeString("18:00"), day.Afternoon.End)
}

func TestNormalizeWorkingHours_LegacyFeedsMatcher(t *testing.T) {
	// End to end: a legacy record must produce a sensible split rather
	// than erroring inside the matcher.
	raw := RawWorkingHours{
		Monday: RawDaySchedule{
			Active: true,
			Open:   ptr.Ptr(types.TimeString("09:00")),
			Close:  ptr.Ptr(types.TimeString("12:00")),
		},
	}

	s := &Supplier{ID: 1, WorkingHours: NormalizeWorkingHours(raw), MaxBookingDays: 365}

	assert.True(t, CheckSlot(s, nextMonday, SlotMorning, testNow).Available)
	assert.False(t, CheckSlot(s, nextMonday, SlotAfternoon, testNow).Available)
}

func TestRawDateBlock_UnmarshalBareString(t *testing.T) {
	var blocks []RawDateBlock
	payload := `["2026-09-14", {"date": "2026-09-15", "timeSlots": ["morning"], "label": "setup day"}]`
	require.NoError(t, json.Unmarshal([]byte(payload), &blocks))

	require.Len(t, blocks, 2)
	assert.Equal(t, "2026-09-14", blocks[0].Date)
	assert.Empty(t, blocks[0].Slots)
	assert.Equal(t, []string{"morning"}, blocks[1].Slots)
	assert.Equal(t, "setup day", blocks[1].Label)
}

func TestNormalizeBlocks(t *testing.T) {
	raw := []RawDateBlock{
		{Date: "2026-09-14", Slots: []string{"morning"}},
		{Date: "2026-09-15T00:00:00Z"},             // timestamp from a calendar export
		{Date: "not a date"},                       // dropped
		{Date: "2026-09-16", Slots: []string{"brunch"}}, // unknown slot -> blocks whole day
	}

	blocks := NormalizeBlocks(raw, BlockSourceManual)

	require.Len(t, blocks, 3)
	assert.Equal(t, types.DateString("2026-09-14"), blocks[0].Date)
	assert.Equal(t, []SlotID{SlotMorning}, blocks[0].Slots)
	assert.Equal(t, BlockSourceManual, blocks[0].Source)

	assert.Equal(t, types.DateString("2026-09-15"), blocks[1].Date)
	assert.Empty(t, blocks[1].Slots)

	assert.Empty(t, blocks[2].Slots)
	assert.True(t, blocks[2].BlocksSlot(SlotMorning))
	assert.True(t, blocks[2].BlocksSlot(SlotAfternoon))
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"2026-09-14", "2026-09-14", true},
		{"2026-09-14T15:30:00+02:00", "2026-09-14", true},
		{"2026-09-14 15:30:00", "2026-09-14", true},
		{"14/09/2026", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeDate(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		if ok {
			assert.Equal(t, types.DateString(tt.want), got)
		}
	}
}

func TestBlockSourceNeverAffectsLogic(t *testing.T) {
	day := types.NewDateString(nextMonday)

	manual := testSupplier()
	manual.UnavailableDates = []DateBlock{{Date: day, Source: BlockSourceManual}}

	synced := testSupplier()
	synced.BusyDates = []DateBlock{{Date: day, Source: BlockSourceCalendar}}

	for _, slot := range AllSlots {
		assert.Equal(t,
			CheckSlot(manual, nextMonday, slot, testNow),
			CheckSlot(synced, nextMonday, slot, testNow))
	}
}
