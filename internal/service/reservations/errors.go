package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAddOnNotFound возвращается, когда доп. услуга не найдена
	ErrAddOnNotFound = errors.New("addon not found")

	// ErrAddOnUnavailable возвращается для неактивной или чужой доп. услуги
	ErrAddOnUnavailable = errors.New("addon unavailable")

	// ErrOutOfStock возвращается, когда запрошенное количество превышает остаток
	ErrOutOfStock = errors.New("addon out of stock")

	// ErrReservationClosed возвращается при изменении завершённого бронирования
	ErrReservationClosed = errors.New("reservation is closed")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
