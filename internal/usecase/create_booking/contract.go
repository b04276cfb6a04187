package create_booking

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// BookingRepository - создание и чтение бронирований
// GetRange внутри сериализуемой транзакции блокирует строки зала (FOR UPDATE)
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// MasterDataClient - клиент справочников: залы, слоты, типы мероприятий, клиенты
type MasterDataClient interface {
	GetHalls(ctx context.Context) ([]domain.Hall, error)
	GetSlots(ctx context.Context) ([]domain.Slot, error)
	GetCustomer(ctx context.Context, customerID int64) (*domain.Customer, error)
}

// TxManager - управление сериализуемыми транзакциями
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
