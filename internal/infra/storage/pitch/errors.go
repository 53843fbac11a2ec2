package pitch

import "errors"

var (
	// ErrPitchNotFound возвращается, когда площадка не найдена
	ErrPitchNotFound = errors.New("pitch.repository: pitch not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pitch.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pitch.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pitch.repository: failed to scan row")
)
