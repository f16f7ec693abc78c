package quote

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("quote: court not found")

	// ErrInvalidTimeRange возвращается, когда start_time >= end_time
	ErrInvalidTimeRange = errors.New("quote: start_time must be before end_time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote: internal error")
)
