package staging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/availability"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/integrations/masterdata"
	"github.com/m04kA/SMC-VenueBookingService/internal/session"
	"github.com/m04kA/SMC-VenueBookingService/pkg/coalesce"
)

// Service оркестрирует сессии композиции бронирования: владеет менеджером
// сессий, выборкой снимков занятости и применением выборов к аккумулятору
//
// Пока по сессии нет подтверждённого снимка, изменения выбора отклоняются
// с ErrSnapshotNotReady: выбор по неизвестной занятости бессмыслен
type Service struct {
	sessions   *session.Manager
	bookings   BookingRepository
	masterData MasterDataClient
	group      *coalesce.Group
	logger     Logger
}

func NewService(sessions *session.Manager, bookings BookingRepository, masterData MasterDataClient, logger Logger) *Service {
	return &Service{
		sessions:   sessions,
		bookings:   bookings,
		masterData: masterData,
		group:      coalesce.NewGroup(),
		logger:     logger,
	}
}

// CreateSession создаёт сессию и синхронно выбирает первичный снимок занятости
// Неудача выборки не отменяет создание: сессия остаётся без снимка,
// клиент может запросить обновление повторно
func (s *Service) CreateSession(ctx context.Context, hallID int64, from, to time.Time) (*session.Session, error) {
	if hallID <= 0 {
		return nil, fmt.Errorf("%w: hallId must be positive", ErrInvalidInput)
	}
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, fmt.Errorf("%w: bad snapshot period", ErrInvalidInput)
	}

	sess := s.sessions.Create()
	if err := s.RefreshSnapshot(ctx, sess.ID, hallID, from, to); err != nil {
		s.logger.Warn("CreateSession: initial snapshot fetch failed for session %s: %v", sess.ID, err)
	}
	return sess, nil
}

// RefreshSnapshot перечитывает занятость зала за период в снимок сессии
// Конкурентные выборки одного ключа схлопываются; устаревший ответ
// отбрасывается защитой по номеру выборки
func (s *Service) RefreshSnapshot(ctx context.Context, sessionID string, hallID int64, from, to time.Time) error {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("hall:%d:%s:%s", hallID, from.Format(domain.DateFormat), to.Format(domain.DateFormat))
	seq := sess.Snapshot.Begin(key)

	result, err, _ := s.group.FetchOrJoin(key, func() (interface{}, error) {
		bookings, err := s.bookings.GetRange(ctx, domain.BookingsFilter{
			HallID:    &hallID,
			StartDate: &from,
			EndDate:   &to,
		})
		if err != nil {
			return nil, err
		}
		slots, err := s.catalogSlots(ctx)
		if err != nil {
			return nil, err
		}
		return availability.Normalize(bookings, slots), nil
	})
	if err != nil {
		sess.Snapshot.Fail(seq)
		s.logger.Error("RefreshSnapshot: fetch failed for session %s key %s: %v", sessionID, key, err)
		return fmt.Errorf("%w: %v", ErrSnapshotFailed, err)
	}

	if !sess.Snapshot.Complete(seq, key, result.([]domain.Occupancy)) {
		s.logger.Info("RefreshSnapshot: stale fetch discarded for session %s key %s", sessionID, key)
	}
	return nil
}

// AddSelection добавляет или заменяет выбор по дате
func (s *Service) AddSelection(ctx context.Context, sessionID string, hallID int64, date string, slotIDs []int64, isFullDay bool) ([]SelectionView, error) {
	sess, _, _, err := s.readySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Accumulator.AddSelection(date, hallID, slotIDs, isFullDay); err != nil {
		return nil, err
	}
	return s.views(ctx, sess)
}

// ToggleSlot переключает один слот в выборе по дате
func (s *Service) ToggleSlot(ctx context.Context, sessionID string, hallID int64, date string, slotID int64) ([]SelectionView, error) {
	sess, snap, slots, err := s.readySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Свободные по снимку, без учёта выборов этой же сессии
	free := availability.FreeSlotIDs(hallID, date, slots, snap.Occupancies, nil)
	sess.Accumulator.ToggleSlot(date, hallID, slotID, free)
	return s.views(ctx, sess)
}

// ToggleFullDay переключает режим "весь день" по дате
// Включение выбирает слоты, свободные на момент вызова
func (s *Service) ToggleFullDay(ctx context.Context, sessionID string, hallID int64, date string, enable bool) ([]SelectionView, error) {
	sess, snap, slots, err := s.readySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	free := availability.FreeSlotIDs(hallID, date, slots, snap.Occupancies, nil)
	sess.Accumulator.ToggleFullDay(date, hallID, enable, free)
	return s.views(ctx, sess)
}

// Selections возвращает текущие выборы сессии
func (s *Service) Selections(ctx context.Context, sessionID string) ([]SelectionView, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, sess)
}

// Finalize закрывает композицию и возвращает её содержимое для создания брони
// Аккумулятор очищается; снимок сбрасывает вызывающая сторона после успешной
// записи
func (s *Service) Finalize(ctx context.Context, sessionID string) (*session.Submission, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Accumulator.Finalize()
}

// Invalidate сбрасывает снимок сессии после успешной записи
func (s *Service) Invalidate(sessionID string) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return
	}
	sess.Snapshot.Invalidate()
}

// DeleteSession удаляет сессию (отказ от композиции)
func (s *Service) DeleteSession(sessionID string) {
	s.sessions.Delete(sessionID)
}

// readySession возвращает сессию с подтверждённым снимком и каталогом слотов
func (s *Service) readySession(ctx context.Context, sessionID string) (*session.Session, *session.Snapshot, []domain.Slot, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, nil, nil, err
	}

	snap, state := sess.Snapshot.Current()
	if state != session.SnapshotReady || snap == nil {
		return nil, nil, nil, session.ErrSnapshotNotReady
	}

	slots, err := s.catalogSlots(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: fetch slots: %v", ErrInternal, err)
	}
	return sess, snap, slots, nil
}

func (s *Service) catalogSlots(ctx context.Context) ([]domain.Slot, error) {
	slots, err := s.masterData.GetSlots(ctx)
	if err != nil {
		if errors.Is(err, masterdata.ErrInvalidResponse) {
			s.logger.Warn("catalogSlots: degraded masterdata response, falling back to legacy periods: %v", err)
			return availability.LegacyPeriods(), nil
		}
		return nil, err
	}
	if len(slots) == 0 {
		slots = availability.LegacyPeriods()
	}
	return slots, nil
}

func (s *Service) views(ctx context.Context, sess *session.Session) ([]SelectionView, error) {
	slots, err := s.catalogSlots(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch slots: %v", ErrInternal, err)
	}
	total := len(slots)

	return selectionViews(sess.Accumulator.Entries(), func(date string, hallID int64) string {
		return StateLabel(sess.Accumulator.State(date, hallID, total))
	}), nil
}
