package payments

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда платёж не найден
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAlreadySettled возвращается при повторном подтверждении платежа
	ErrAlreadySettled = errors.New("payment already settled")

	// ErrReservationClosed возвращается при платеже по завершённому бронированию
	ErrReservationClosed = errors.New("reservation is closed")

	// ErrInvalidMethod возвращается для шлюзового метода в ручном платеже
	ErrInvalidMethod = errors.New("invalid payment method")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
