package record_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/payments"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidAmount        = "некорректная сумма платежа"
	msgInvalidMethod        = "недопустимый способ оплаты"
	msgReservationNotFound  = "бронирование не найдено"
	msgReservationClosed    = "бронирование завершено, платежи не принимаются"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/payments - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req RecordPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/payments - Invalid amount %q: %v", req.Amount, err)
		handlers.RespondBadRequest(w, msgInvalidAmount)
		return
	}

	payment, err := h.service.Record(r.Context(), reservationID, amount, domain.PaymentMethod(req.Method))
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/payments - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, payments.ErrReservationClosed):
			h.logger.Warn("POST /reservations/{id}/payments - Reservation closed: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgReservationClosed)

		case errors.Is(err, payments.ErrInvalidMethod):
			h.logger.Warn("POST /reservations/{id}/payments - Invalid method %q", req.Method)
			handlers.RespondBadRequest(w, msgInvalidMethod)

		case errors.Is(err, payments.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/payments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAmount)

		default:
			h.logger.Error("POST /reservations/{id}/payments - Failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/payments - Payment recorded: payment_id=%d, reservation_id=%d, amount=%s",
		payment.ID, reservationID, payment.Amount.StringFixed(2))
	handlers.RespondJSON(w, http.StatusCreated, FromDomainPayment(payment))
}
