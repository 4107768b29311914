package types

import (
	"errors"
	"fmt"
	"time"
)

// DateString календарная дата в формате "YYYY-MM-DD" (например, "2025-06-10")
// Движок бронирований работает с точностью до календарного дня,
// поэтому дата хранится и передается без компонента времени
type DateString string

const dateLayout = "2006-01-02"

var (
	// ErrInvalidDateFormat возвращается при некорректном формате даты
	ErrInvalidDateFormat = errors.New("invalid date string format, expected YYYY-MM-DD")
)

// NewDateString создает DateString из time.Time (компонент времени отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString создает DateString из строки с валидацией формата
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return DateString(s), nil
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// IsZero возвращает true, если дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет формат даты
func (d DateString) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return nil
}

// Time конвертирует дату в time.Time (полночь UTC)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return t, nil
}

// IsBefore возвращает true, если дата раньше other
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}

// IsAfter возвращает true, если дата позже other
func (d DateString) IsAfter(other DateString) bool {
	return string(d) > string(other)
}

// AddDays возвращает дату, сдвинутую на days дней
func (d DateString) AddDays(days int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, days)), nil
}
