package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда на этот слот уже есть активное бронирование
	// (срабатывает частичный уникальный индекс по (pitch_id, slot_datetime))
	ErrSlotTaken = errors.New("booking.repository: slot already booked")

	// ErrUserHasActiveBooking возвращается, когда у пользователя уже есть
	// активное бронирование (частичный уникальный индекс по user_id)
	ErrUserHasActiveBooking = errors.New("booking.repository: user already has an active booking")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
