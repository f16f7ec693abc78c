package settle_webhook

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase.
	// Handler логирует ошибку, но всё равно отвечает шлюзу 200.
	ErrInternal = errors.New("settle_webhook: internal error")
)
