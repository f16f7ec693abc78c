package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	addonRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/addon"
	reservationRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/reservation"
)

// ReservationDetails бронирование вместе с его позициями доп. услуг
type ReservationDetails struct {
	Reservation *domain.Reservation
	AddOns      []*domain.ReservationAddOn
}

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	addonRepo       AddOnRepository
	courtRepo       CourtRepository
	companyRepo     CompanyRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	addonRepo AddOnRepository,
	courtRepo CourtRepository,
	companyRepo CompanyRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		addonRepo:       addonRepo,
		courtRepo:       courtRepo,
		companyRepo:     companyRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID вместе с позициями доп. услуг.
// Пользователь может видеть только своё бронирование.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*ReservationDetails, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if res.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	items, err := s.addonRepo.ListByReservationID(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list addons for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to list addons: %v", ErrInternal, err)
	}

	return &ReservationDetails{Reservation: res, AddOns: items}, nil
}

// AddAddOn добавляет позицию доп. услуги к бронированию.
//
// Цена каталога замораживается в price_snapshot на момент вставки, после
// чего subtotal_addons и производные суммы пересчитываются под блокировкой
// брони. Добавление возможно только владельцем и только пока бронирование
// не завершено.
func (s *Service) AddAddOn(ctx context.Context, reservationID, userID, addOnID, quantity int64) (*ReservationDetails, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	s.logger.Info("AddAddOn: reservation=%d, addon=%d, quantity=%d, user=%d",
		reservationID, addOnID, quantity, userID)

	var details *ReservationDetails
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		res, err := s.reservationRepo.GetByIDForUpdate(ctx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: AddAddOn - failed to lock reservation: %v", ErrInternal, err)
		}

		if res.UserID != userID {
			return ErrAccessDenied
		}
		if res.IsTerminal() {
			return ErrReservationClosed
		}

		addOn, err := s.addonRepo.GetByID(ctx, addOnID)
		if err != nil {
			if errors.Is(err, addonRepo.ErrAddOnNotFound) {
				return ErrAddOnNotFound
			}
			return fmt.Errorf("%w: AddAddOn - failed to get addon: %v", ErrInternal, err)
		}

		court, err := s.courtRepo.GetByID(ctx, res.CourtID)
		if err != nil {
			return fmt.Errorf("%w: AddAddOn - failed to get court: %v", ErrInternal, err)
		}

		// Услуга должна быть активной и принадлежать компании корта
		if !addOn.IsActive || addOn.CompanyID != court.CompanyID {
			return ErrAddOnUnavailable
		}
		if addOn.StockQuantity < quantity {
			return ErrOutOfStock
		}

		item := &domain.ReservationAddOn{
			ReservationID: res.ID,
			AddOnID:       addOn.ID,
			Quantity:      quantity,
			PriceSnapshot: addOn.Price,
		}
		if _, err := s.addonRepo.CreateReservationAddOn(ctx, item); err != nil {
			return fmt.Errorf("%w: AddAddOn - failed to create line item: %v", ErrInternal, err)
		}

		items, err := s.addonRepo.ListByReservationID(ctx, res.ID)
		if err != nil {
			return fmt.Errorf("%w: AddAddOn - failed to list line items: %v", ErrInternal, err)
		}

		company, err := s.companyRepo.GetByID(ctx, court.CompanyID)
		if err != nil {
			return fmt.Errorf("%w: AddAddOn - failed to get company: %v", ErrInternal, err)
		}

		res.SubtotalAddons = domain.SumAddOnLines(items)
		res.Recompute(company.AdvancePaymentPercentage)

		if err := s.reservationRepo.UpdateTotals(ctx, res); err != nil {
			return fmt.Errorf("%w: AddAddOn - failed to update totals: %v", ErrInternal, err)
		}

		details = &ReservationDetails{Reservation: res, AddOns: items}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("AddAddOn: reservation=%d updated, subtotal_addons=%s, total=%s, status=%s",
		reservationID,
		details.Reservation.SubtotalAddons.StringFixed(domain.MoneyScale),
		details.Reservation.TotalPrice.StringFixed(domain.MoneyScale),
		details.Reservation.Status)

	return details, nil
}
