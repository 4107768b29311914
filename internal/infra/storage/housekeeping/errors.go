package housekeeping

import "errors"

var (
	// ErrTaskNotFound возвращается, когда задача уборки не найдена
	ErrTaskNotFound = errors.New("housekeeping.repository: cleaning task not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("housekeeping.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("housekeeping.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("housekeeping.repository: failed to scan row")
)
