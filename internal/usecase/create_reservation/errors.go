package create_reservation

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_reservation: court not found")

	// ErrCourtInactive возвращается, когда корт отключён от бронирования
	ErrCourtInactive = errors.New("create_reservation: court is not active")

	// ErrCompanyNotFound возвращается, когда компания корта не найдена
	ErrCompanyNotFound = errors.New("create_reservation: company not found")

	// ErrLicenseInvalid возвращается, когда лицензия компании недействительна
	ErrLicenseInvalid = errors.New("create_reservation: company license is not valid")

	// ErrInvalidTimeRange возвращается, когда start_time >= end_time
	ErrInvalidTimeRange = errors.New("create_reservation: start_time must be before end_time")

	// ErrGatewayFailed возвращается, когда шлюз не создал платёжную preference.
	// Вся транзакция создания брони при этом откатывается.
	ErrGatewayFailed = errors.New("create_reservation: payment gateway failure")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
