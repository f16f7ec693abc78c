package add_reservation_addon

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
	msgReservationNotFound  = "бронирование не найдено"
	msgAddOnNotFound        = "доп. услуга не найдена"
	msgAddOnUnavailable     = "доп. услуга недоступна"
	msgOutOfStock           = "недостаточно остатка доп. услуги"
	msgReservationClosed    = "бронирование завершено и не может быть изменено"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/addons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/addons - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/{id}/addons - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddAddOnRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/addons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	details, err := h.service.AddAddOn(r.Context(), reservationID, userID, req.AddOnID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/addons - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("POST /reservations/{id}/addons - Access denied: reservation_id=%d, user_id=%d",
				reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrAddOnNotFound):
			h.logger.Warn("POST /reservations/{id}/addons - AddOn not found: addon_id=%d", req.AddOnID)
			handlers.RespondNotFound(w, msgAddOnNotFound)

		case errors.Is(err, reservations.ErrAddOnUnavailable):
			h.logger.Warn("POST /reservations/{id}/addons - AddOn unavailable: addon_id=%d", req.AddOnID)
			handlers.RespondError(w, http.StatusConflict, msgAddOnUnavailable)

		case errors.Is(err, reservations.ErrOutOfStock):
			h.logger.Warn("POST /reservations/{id}/addons - Out of stock: addon_id=%d, quantity=%d",
				req.AddOnID, req.Quantity)
			handlers.RespondError(w, http.StatusConflict, msgOutOfStock)

		case errors.Is(err, reservations.ErrReservationClosed):
			h.logger.Warn("POST /reservations/{id}/addons - Reservation closed: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgReservationClosed)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/addons - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations/{id}/addons - Failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/addons - AddOn added: reservation_id=%d, addon_id=%d, total=%s",
		reservationID, req.AddOnID, details.Reservation.TotalPrice.StringFixed(2))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(details))
}
