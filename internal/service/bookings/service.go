package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями залов
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID вместе с историей оплат
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	payments, err := s.bookingRepo.GetPayments(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to load payments for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to load payments: %v", ErrInternal, err)
	}

	resp := models.FromDomainBooking(booking)
	resp.Payments = models.FromDomainPayments(payments)

	return resp, nil
}

// GetCustomerBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetCustomerBookings(ctx context.Context, customerID int64, status *string) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", customerID, status)

	var domainStatus *domain.BookingStatus
	if status != nil {
		st, err := models.ToDomainBookingStatus(*status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%d", *status, customerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &st
	}

	bookings, err := s.bookingRepo.GetByCustomer(ctx, customerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetHallBookings получает бронирования зала с фильтрацией по периоду и статусу
func (s *Service) GetHallBookings(ctx context.Context, req *models.HallBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetHallBookings: fetching bookings for hall=%d", req.HallID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetHallBookings: invalid filter for hall=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetRange(ctx, filter)
	if err != nil {
		s.logger.Error("GetHallBookings: repository error for hall=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: GetHallBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование и фиксирует дату отмены
// Идемпотентна: повторная отмена уже отменённого бронирования - no-op, не ошибка
// Отмена из терминального статуса settled запрещена
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.IsCancelled() {
		s.logger.Info("Cancel: booking id=%d already cancelled, no-op", bookingID)
		return nil
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Settle закрывает расчёт: выплачено = всего, остаток = 0, статус settled
// Идемпотентна: повторное закрытие уже закрытого расчёта - no-op
// Осмысленна только из статусов advance/paid
func (s *Service) Settle(ctx context.Context, bookingID int64) error {
	s.logger.Info("Settle: settling booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Settle: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Settle: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Settle - repository error: %v", ErrInternal, err)
	}

	if booking.IsSettled() {
		s.logger.Info("Settle: booking id=%d already settled, no-op", bookingID)
		return nil
	}

	if !booking.CanBeSettled() {
		s.logger.Warn("Settle: booking id=%d cannot be settled, status=%s", bookingID, booking.Status)
		return ErrCannotSettle
	}

	if err := s.bookingRepo.Settle(ctx, bookingID); err != nil {
		s.logger.Error("Settle: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Settle - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Settle: successfully settled booking id=%d", bookingID)
	return nil
}

// RecordPayment вносит оплату по бронированию
// Оплаченная сумма ограничивается общей (инвариант paid <= total);
// статус пересчитывается машиной статусов из новых сумм
func (s *Service) RecordPayment(ctx context.Context, bookingID int64, req *models.RecordPaymentRequest) (*models.BookingResponse, error) {
	s.logger.Info("RecordPayment: booking id=%d, amount=%.2f", bookingID, req.Amount)

	if req.Amount <= 0 {
		s.logger.Warn("RecordPayment: non-positive amount=%.2f for booking id=%d", req.Amount, bookingID)
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("RecordPayment: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("RecordPayment: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: RecordPayment - repository error: %v", ErrInternal, err)
	}

	if booking.IsCancelled() {
		s.logger.Warn("RecordPayment: booking id=%d is cancelled", bookingID)
		return nil, ErrCannotPay
	}

	booking.PaidTotal += req.Amount
	booking.ClampPaid()
	newStatus := domain.DeriveStatus("", booking.PaidTotal, booking.TotalAmount)

	// Закрытый расчёт остаётся закрытым независимо от пересчёта по суммам
	if booking.IsSettled() {
		newStatus = domain.StatusSettled
	}

	payment := &domain.Payment{
		BookingID: bookingID,
		Amount:    req.Amount,
		Method:    req.Method,
		PaidAt:    time.Now(),
	}

	if err := s.bookingRepo.AddPayment(ctx, payment, booking.PaidTotal, newStatus); err != nil {
		s.logger.Error("RecordPayment: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: RecordPayment - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus

	s.logger.Info("RecordPayment: booking id=%d paid_total=%.2f status=%s", bookingID, booking.PaidTotal, newStatus)
	return models.FromDomainBooking(booking), nil
}
