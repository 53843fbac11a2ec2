package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
	"github.com/m04kA/SMC-PitchBookingService/pkg/types"
)

func mustTimeString(t *testing.T, value string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(value)
	require.NoError(t, err)
	return ts
}

func testPitch(t *testing.T, open, close string) *domain.Pitch {
	t.Helper()
	return &domain.Pitch{
		ID:        "pitch-1",
		Name:      "Центральное поле",
		OpenTime:  mustTimeString(t, open),
		CloseTime: mustTimeString(t, close),
	}
}

func TestFirstShowableAfter(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "middle of hour rounds up",
			now:  time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
			want: time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
		},
		{
			name: "one second past hour rounds up",
			now:  time.Date(2026, 3, 10, 14, 0, 1, 0, time.UTC),
			want: time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
		},
		{
			name: "exact hour boundary stays",
			now:  time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "last hour of day rolls to next day",
			now:  time.Date(2026, 3, 10, 23, 45, 0, 0, time.UTC),
			want: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstShowableAfter(tt.now))
		})
	}
}

func TestGeneratePitchSlots_WindowBounds(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	firstShowable := firstShowableAfter(now)
	cutoff := now.Add(domain.SlotWindow)

	pitch := testPitch(t, "08:00", "22:00")
	slots := generatePitchSlots(pitch, firstShowable, cutoff, nil)

	require.NotEmpty(t, slots)
	for _, slot := range slots {
		assert.False(t, slot.DatetimeStart.Before(firstShowable), "slot %s starts before first showable", slot.ID)
		assert.True(t, slot.DatetimeStart.Before(cutoff), "slot %s starts at or after cutoff", slot.ID)
		assert.Equal(t, slot.DatetimeStart.Add(time.Hour), slot.DatetimeEnd)
		assert.Equal(t, 0, slot.DatetimeStart.Minute())
	}

	// 15:00-21:00 сегодня и 08:00-14:00 завтра (14:00 < cutoff 14:30)
	assert.Len(t, slots, 7+7)
	assert.Equal(t, time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC), slots[0].DatetimeStart)
	assert.Equal(t, time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC), slots[len(slots)-1].DatetimeStart)
}

func TestGeneratePitchSlots_MidnightClose(t *testing.T) {
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	pitch := testPitch(t, "08:00", "24:00")

	slots := generatePitchSlots(pitch, now, now.Add(domain.SlotWindow), nil)

	require.NotEmpty(t, slots)
	// последний слот сегодняшнего дня 23:00-00:00
	var lastToday time.Time
	for _, slot := range slots {
		if slot.DatetimeStart.Day() == 10 {
			lastToday = slot.DatetimeStart
		}
	}
	assert.Equal(t, time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC), lastToday)
}

func TestGeneratePitchSlots_OvernightClose(t *testing.T) {
	// закрытие 02:00 раньше открытия 18:00 - площадка работает до двух ночи
	now := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	pitch := testPitch(t, "18:00", "02:00")

	slots := generatePitchSlots(pitch, now, now.Add(domain.SlotWindow), nil)

	starts := make(map[time.Time]bool, len(slots))
	for _, slot := range slots {
		starts[slot.DatetimeStart] = true
	}
	assert.True(t, starts[time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)])
	assert.True(t, starts[time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)])
	assert.True(t, starts[time.Date(2026, 3, 11, 1, 0, 0, 0, time.UTC)])
	assert.False(t, starts[time.Date(2026, 3, 11, 2, 0, 0, 0, time.UTC)])
}

func TestGeneratePitchSlots_BookingMarksSlot(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	pitch := testPitch(t, "08:00", "22:00")

	bookings := []*domain.Booking{
		{
			ID:           "booking-1",
			UserID:       "user-42",
			PitchID:      pitch.ID,
			SlotDatetime: time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
			Status:       domain.StatusActive,
		},
	}

	slots := generatePitchSlots(pitch, now, now.Add(domain.SlotWindow), bookings)

	var booked, available int
	for _, slot := range slots {
		if slot.IsAvailable {
			available++
			assert.Nil(t, slot.BookerID)
			continue
		}
		booked++
		require.NotNil(t, slot.BookerID)
		assert.Equal(t, "user-42", *slot.BookerID)
		assert.Equal(t, time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC), slot.DatetimeStart)
	}
	assert.Equal(t, 1, booked)
	assert.Equal(t, len(slots)-1, available)
}

func TestGeneratePitchSlots_BookingWithOffsetMinutesMatchesHour(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	pitch := testPitch(t, "08:00", "22:00")

	// бронирование с минутами внутри часа всё равно занимает часовой слот
	bookings := []*domain.Booking{
		{
			ID:           "booking-1",
			UserID:       "user-42",
			PitchID:      pitch.ID,
			SlotDatetime: time.Date(2026, 3, 10, 11, 15, 0, 0, time.UTC),
			Status:       domain.StatusActive,
		},
	}

	slots := generatePitchSlots(pitch, now, now.Add(domain.SlotWindow), bookings)

	for _, slot := range slots {
		if slot.DatetimeStart.Equal(time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)) {
			assert.False(t, slot.IsAvailable)
			return
		}
	}
	t.Fatal("slot 11:00 not generated")
}

func TestSlotID_Format(t *testing.T) {
	start := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "pitch-1-2026-03-10T15:00:00Z", domain.SlotID("pitch-1", start))
}
