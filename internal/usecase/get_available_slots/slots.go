package get_available_slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
)

// firstShowableAfter возвращает начало первого показываемого слота:
// текущий час, если now ровно на границе часа, иначе следующий час.
func firstShowableAfter(now time.Time) time.Time {
	now = now.UTC()
	truncated := now.Truncate(time.Hour)
	if truncated.Equal(now) {
		return truncated
	}
	return truncated.Add(time.Hour)
}

// generatePitchSlots генерирует виртуальные слоты площадки в окне
// [firstShowable, cutoff) по календарным дням UTC с учётом часов работы.
func generatePitchSlots(pitch *domain.Pitch, firstShowable, cutoff time.Time, bookings []*domain.Booking) []domain.VirtualSlot {
	openHour, closeHour := pitch.OperatingHours()

	slots := make([]domain.VirtualSlot, 0, domain.SlotWindowHours)

	year, month, day := firstShowable.UTC().Date()
	for dayOffset := 0; dayOffset < domain.SlotWindowDays; dayOffset++ {
		dayStart := time.Date(year, month, day+dayOffset, 0, 0, 0, 0, time.UTC)

		// closeHour > 24 означает закрытие на следующий день
		for hour := openHour; hour < closeHour; hour++ {
			slotStart := dayStart.Add(time.Duration(hour) * time.Hour)
			if slotStart.Before(firstShowable) || !slotStart.Before(cutoff) {
				continue
			}

			slot := domain.VirtualSlot{
				ID:            domain.SlotID(pitch.ID, slotStart),
				PitchID:       pitch.ID,
				PitchName:     pitch.Name,
				DatetimeStart: slotStart,
				DatetimeEnd:   slotStart.Add(domain.SlotDuration),
				IsAvailable:   true,
			}

			if booking := findBookingForSlot(bookings, slotStart); booking != nil {
				bookerID := booking.UserID
				slot.IsAvailable = false
				slot.BookerID = &bookerID
			}

			slots = append(slots, slot)
		}
	}

	return slots
}

// findBookingForSlot ищет активное бронирование, попадающее в час слота
func findBookingForSlot(bookings []*domain.Booking, slotStart time.Time) *domain.Booking {
	for _, booking := range bookings {
		if booking.MatchesSlotHour(slotStart) {
			return booking
		}
	}
	return nil
}

// sortSlotsByStart сортирует слоты по возрастанию времени начала
func sortSlotsByStart(slots []domain.VirtualSlot) {
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].DatetimeStart.Before(slots[j].DatetimeStart)
	})
}
