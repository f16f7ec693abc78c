package mercadopago

import "errors"

var (
	// ErrPreferenceFailed возвращается, когда шлюз не вернул пригодную preference.
	// Транзакция создания брони при этой ошибке откатывается целиком.
	ErrPreferenceFailed = errors.New("mercadopago client: failed to create payment preference")

	// ErrPaymentNotFound возвращается, когда платёж не найден в шлюзе
	ErrPaymentNotFound = errors.New("mercadopago client: payment not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mercadopago client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("mercadopago client: invalid response")
)
