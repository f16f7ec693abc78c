package approve_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/payments"
)

const (
	msgInvalidPaymentID    = "некорректный ID платежа"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgPaymentNotFound     = "платёж не найден"
	msgReservationNotFound = "бронирование не найдено"
	msgAlreadySettled      = "платёж уже обработан"
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

// Handle POST /api/v1/payments/{paymentId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	paymentID, err := strconv.ParseInt(vars["paymentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /payments/{id}/approve - Invalid payment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	approverID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /payments/{id}/approve - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	payment, err := h.service.Approve(r.Context(), paymentID, approverID)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrPaymentNotFound):
			h.logger.Warn("POST /payments/{id}/approve - Payment not found: payment_id=%d", paymentID)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		case errors.Is(err, payments.ErrReservationNotFound):
			h.logger.Warn("POST /payments/{id}/approve - Reservation not found: payment_id=%d", paymentID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, payments.ErrAlreadySettled):
			h.logger.Warn("POST /payments/{id}/approve - Already settled: payment_id=%d", paymentID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadySettled)

		default:
			h.logger.Error("POST /payments/{id}/approve - Failed: payment_id=%d, error=%v", paymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/{id}/approve - Payment approved: payment_id=%d, approver=%d",
		paymentID, approverID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainPayment(payment))
}
