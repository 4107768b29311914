package timeline

import "errors"

var (
	// ErrInvalidWindow возвращается при некорректных параметрах окна таймлайна
	ErrInvalidWindow = errors.New("timeline: invalid window parameters")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("timeline: internal error")
)
