package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking number scheme: sequential per year, zero-padded to 4 digits
const (
	BookingNumberPrefix = "RES"
	BookingNumberFormat = "RES-%d-%04d" // RES-2025-0001
)

// Business validation constants
const (
	MinAdults                   = 1
	MinChildren                 = 0
	MaxNotesLength              = 1000
	MaxCancellationReasonLength = 500
)

// ActiveStatuses список статусов, при которых бронирование занимает номер
// Используется при проверке конфликтов дат
var ActiveStatuses = []BookingStatus{
	StatusPreBooking,
	StatusConfirmed,
	StatusCheckedIn,
}

// InactiveStatuses список статусов, не занимающих номер
// Используется для фильтрации при выборках
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// AllStatuses полный список допустимых статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPreBooking,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
	StatusNoShow,
}

// AllRoomStatuses полный список допустимых статусов номера
var AllRoomStatuses = []RoomStatus{
	RoomAvailable,
	RoomOccupied,
	RoomCleaning,
	RoomMaintenance,
	RoomBlocked,
}
