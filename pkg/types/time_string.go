package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString представляет время в формате HH:MM ("08:00", "22:00").
// Хранится как строка для прозрачной сериализации в JSON и БД.
// Допускается значение "24:00" — полночь следующего дня (конец рабочего дня).
type TimeString string

// NewTimeString создает TimeString из time.Time (часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString создает TimeString из строки с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет формат HH:MM и диапазон значений (00:00 - 24:00)
func (t TimeString) Validate() error {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid time string format: %q", string(t))
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid time string format: %q", string(t))
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid time string format: %q", string(t))
	}

	if hour < 0 || hour > 24 || minute < 0 || minute > 59 {
		return fmt.Errorf("time out of range: %q", string(t))
	}

	// "24:00" допустимо как граница, "24:30" — нет
	if hour == 24 && minute != 0 {
		return fmt.Errorf("time out of range: %q", string(t))
	}

	return nil
}

// Hour возвращает часовую составляющую. Для некорректных значений возвращает -1.
func (t TimeString) Hour() int {
	parts := strings.Split(string(t), ":")
	if len(parts) == 0 {
		return -1
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return -1
	}
	return hour
}

// Minute возвращает минутную составляющую. Для некорректных значений возвращает -1.
func (t TimeString) Minute() int {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return -1
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return -1
	}
	return minute
}

// totalMinutes возвращает время в минутах от полуночи
func (t TimeString) totalMinutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes возвращает новый TimeString со смещением на minutes минут.
// Выход за границу 24:00 считается ошибкой.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.totalMinutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("time out of range after adding %d minutes to %q", minutes, string(t))
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.totalMinutes()
	b, errB := other.totalMinutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.totalMinutes()
	b, errB := other.totalMinutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return string(t) == ""
}

func (t TimeString) String() string {
	return string(t)
}
