package get_available_slots

import "time"

// Request параметры запроса доступных слотов
type Request struct {
	PitchID *string // nil - слоты по всем площадкам
}

// Slot виртуальный слот в ответе
type Slot struct {
	ID            string
	PitchID       string
	PitchName     string
	DatetimeStart time.Time
	DatetimeEnd   time.Time
	IsAvailable   bool
	BookerID      *string
	BookerName    *string
}

// Response список слотов, отсортированный по времени начала
type Response struct {
	Slots []Slot
}
