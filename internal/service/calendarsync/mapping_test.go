package calendarsync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PSM-BookingService/internal/domain"
	"github.com/m04kA/PSM-BookingService/pkg/types"
)

func TestMapBusyBlocks_MorningOnly(t *testing.T) {
	busy := []domain.BusyBlock{
		{
			Start:   time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC),
			End:     time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC),
			Summary: "Wedding setup",
		},
	}

	blocks := MapBusyBlocks(busy)

	require.Len(t, blocks, 1)
	assert.Equal(t, types.DateString("2026-09-14"), blocks[0].Date)
	assert.Equal(t, []domain.SlotID{domain.SlotMorning}, blocks[0].Slots)
	assert.Equal(t, domain.BlockSourceCalendar, blocks[0].Source)
	assert.Equal(t, "Wedding setup", blocks[0].Label)
}

func TestMapBusyBlocks_AfternoonOnly(t *testing.T) {
	busy := []domain.BusyBlock{
		{
			Start: time.Date(2026, 9, 14, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 9, 14, 16, 30, 0, 0, time.UTC),
		},
	}

	blocks := MapBusyBlocks(busy)

	require.Len(t, blocks, 1)
	assert.Equal(t, []domain.SlotID{domain.SlotAfternoon}, blocks[0].Slots)
}

func TestMapBusyBlocks_IntervalSpanningBoundaryBlocksBothSlots(t *testing.T) {
	busy := []domain.BusyBlock{
		{
			Start: time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 9, 14, 15, 0, 0, 0, time.UTC),
		},
	}

	blocks := MapBusyBlocks(busy)

	// Both slots hit: the block carries no slot list, meaning whole day.
	require.Len(t, blocks, 1)
	assert.Empty(t, blocks[0].Slots)
	assert.True(t, blocks[0].BlocksSlot(domain.SlotMorning))
	assert.True(t, blocks[0].BlocksSlot(domain.SlotAfternoon))
}

func TestMapBusyBlocks_MultiDayInterval(t *testing.T) {
	busy := []domain.BusyBlock{
		{
			// From Monday noon-ish until Wednesday morning.
			Start: time.Date(2026, 9, 14, 15, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 9, 16, 10, 0, 0, 0, time.UTC),
		},
	}

	blocks := MapBusyBlocks(busy)
	require.Len(t, blocks, 3)

	// Monday: only the afternoon is touched.
	assert.Equal(t, types.DateString("2026-09-14"), blocks[0].Date)
	assert.Equal(t, []domain.SlotID{domain.SlotAfternoon}, blocks[0].Slots)

	// Tuesday is fully covered.
	assert.Equal(t, types.DateString("2026-09-15"), blocks[1].Date)
	assert.Empty(t, blocks[1].Slots)

	// Wednesday: the interval ends at 10:00, so only the morning.
	assert.Equal(t, types.DateString("2026-09-16"), blocks[2].Date)
	assert.Equal(t, []domain.SlotID{domain.SlotMorning}, blocks[2].Slots)
}

func TestMapBusyBlocks_OverlappingIntervalsMerge(t *testing.T) {
	busy := []domain.BusyBlock{
		{
			Start: time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
		},
		{
			Start: time.Date(2026, 9, 14, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 9, 14, 15, 0, 0, 0, time.UTC),
		},
	}

	blocks := MapBusyBlocks(busy)

	require.Len(t, blocks, 1)
	assert.Empty(t, blocks[0].Slots)
}

func TestMapBusyBlocks_IgnoresDegenerateIntervals(t *testing.T) {
	at := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	busy := []domain.BusyBlock{
		{Start: at, End: at},
		{Start: at.Add(time.Hour), End: at},
	}

	assert.Empty(t, MapBusyBlocks(busy))
}
