package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/availability"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/integrations/masterdata"
)

// UseCase - создание бронирования с проверкой конфликтов
// Проверка и вставка выполняются в одной сериализуемой транзакции,
// строки зала блокируются на время проверки
type UseCase struct {
	bookings   BookingRepository
	masterData MasterDataClient
	txManager  TxManager
	logger     Logger
}

func NewUseCase(bookings BookingRepository, masterData MasterDataClient, txManager TxManager, logger Logger) *UseCase {
	return &UseCase{
		bookings:   bookings,
		masterData: masterData,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute создаёт бронирование
// Возвращает ErrSlotNotAvailable, если какой-либо из заявленных слотов занят -
// эта ошибка восстановимая: клиент перечитывает доступность и пробует снова
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация заявки
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Клиент: денормализуем имя и телефон в бронирование
	customer, err := uc.masterData.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, masterdata.ErrCustomerNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrCustomerNotFound, req.CustomerID)
		}
		uc.logger.Error("CreateBooking: failed to fetch customer %d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: Execute - fetch customer: %v", ErrInternal, err)
	}

	// 3. Зал должен существовать и быть активным
	halls, err := uc.masterData.GetHalls(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to fetch halls: %v", err)
		return nil, fmt.Errorf("%w: Execute - fetch halls: %v", ErrInternal, err)
	}
	hall := findHall(halls, req.HallID)
	if hall == nil {
		return nil, fmt.Errorf("%w: id=%d", ErrHallNotFound, req.HallID)
	}
	if !hall.Active {
		return nil, fmt.Errorf("%w: id=%d", ErrHallInactive, req.HallID)
	}

	// 4. Каталог слотов; пустой каталог переключает на легаси-периоды
	slots, err := uc.masterData.GetSlots(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to fetch slots: %v", err)
		return nil, fmt.Errorf("%w: Execute - fetch slots: %v", ErrInternal, err)
	}
	if len(slots) == 0 {
		slots = availability.LegacyPeriods()
	}
	if err := validateSlotIDs(req.Dates, slots); err != nil {
		return nil, err
	}

	// 5. Начальный статус выводится из сумм; оплата не превышает общую
	paid := req.AdvanceAmount
	if paid > req.TotalAmount {
		paid = req.TotalAmount
	}
	status := domain.DeriveStatus("", paid, req.TotalAmount)

	booking := buildBooking(req, customer, status, paid)

	// 6. Проверка конфликтов и вставка в одной сериализуемой транзакции
	var created *domain.Booking
	startDate, endDate := dateBounds(req.Dates)
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookings.GetRange(txCtx, domain.BookingsFilter{
			HallID:    &req.HallID,
			StartDate: &startDate,
			EndDate:   &endDate,
		})
		if err != nil {
			return fmt.Errorf("%w: Execute - fetch bookings for conflict check: %v", ErrInternal, err)
		}

		occupancies := availability.Normalize(existing, slots)
		for _, sel := range req.Dates {
			for _, slotID := range claimedSlotIDs(sel, slots) {
				if !availability.IsFree(req.HallID, sel.Date, slotID, occupancies, nil) {
					return fmt.Errorf("%w: hall=%d date=%s slot=%d", ErrSlotNotAvailable, req.HallID, sel.Date, slotID)
				}
			}
		}

		created, err = uc.bookings.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: Execute - create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Info("CreateBooking: conflict for hall %d: %v", req.HallID, err)
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking %d created for hall %d, customer %d", created.ID, created.HallID, created.CustomerID)
	return FromDomainBooking(created), nil
}

// validateSlotIDs проверяет, что все явно заявленные слоты существуют в каталоге
func validateSlotIDs(dates []DateSelection, slots []domain.Slot) error {
	known := make(map[int64]struct{}, len(slots))
	for _, slot := range slots {
		known[slot.ID] = struct{}{}
	}
	for _, sel := range dates {
		for _, id := range sel.SlotIDs {
			if _, ok := known[id]; !ok {
				return fmt.Errorf("%w: id=%d", ErrSlotNotFound, id)
			}
		}
	}
	return nil
}

func findHall(halls []domain.Hall, hallID int64) *domain.Hall {
	for i := range halls {
		if halls[i].ID == hallID {
			return &halls[i]
		}
	}
	return nil
}
