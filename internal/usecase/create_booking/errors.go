package create_booking

import "errors"

var (
	// ErrValidation невалидные параметры запроса
	ErrValidation = errors.New("validation error")
	// ErrSlotInPast слот уже начался или прошёл
	ErrSlotInPast = errors.New("slot is in the past")
	// ErrDuplicateActiveBooking у пользователя уже есть активное бронирование
	ErrDuplicateActiveBooking = errors.New("user already has an active booking")
	// ErrSlotAlreadyBooked слот уже занят другим бронированием
	ErrSlotAlreadyBooked = errors.New("slot is already booked")
	// ErrPitchNotFound площадка не найдена
	ErrPitchNotFound = errors.New("pitch not found")
	// ErrUserNotApproved профиль пользователя не подтверждён
	ErrUserNotApproved = errors.New("user profile is not approved")
	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)
