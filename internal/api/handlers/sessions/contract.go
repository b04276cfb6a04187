package sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/staging"
	"github.com/m04kA/SMC-VenueBookingService/internal/session"
	uc "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
)

// StagingService - сессии композиции бронирования
type StagingService interface {
	CreateSession(ctx context.Context, hallID int64, from, to time.Time) (*session.Session, error)
	RefreshSnapshot(ctx context.Context, sessionID string, hallID int64, from, to time.Time) error
	AddSelection(ctx context.Context, sessionID string, hallID int64, date string, slotIDs []int64, isFullDay bool) ([]staging.SelectionView, error)
	ToggleSlot(ctx context.Context, sessionID string, hallID int64, date string, slotID int64) ([]staging.SelectionView, error)
	ToggleFullDay(ctx context.Context, sessionID string, hallID int64, date string, enable bool) ([]staging.SelectionView, error)
	Selections(ctx context.Context, sessionID string) ([]staging.SelectionView, error)
	Finalize(ctx context.Context, sessionID string) (*session.Submission, error)
	Invalidate(sessionID string)
	DeleteSession(sessionID string)
}

// CreateBookingUseCase - создание бронирования из завершённой композиции
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req uc.Request) (*uc.Response, error)
}

// CacheInvalidator сбрасывает кэш месячных проекций после записи
type CacheInvalidator interface {
	Invalidate(ctx context.Context, scope string, year, month int, hallID int64)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
