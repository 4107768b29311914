package guestservice

// Guest данные гостя из справочника гостей
type Guest struct {
	ID       int64   `json:"id"`
	FullName string  `json:"fullName"`
	Document *string `json:"document,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
