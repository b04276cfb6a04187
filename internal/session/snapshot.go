package session

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// SnapshotState состояние снимка занятости
// Unknown и Loading блокируют новые выборы: отказ загрузки никогда
// не трактуется как "все слоты свободны"
type SnapshotState int

const (
	SnapshotUnknown SnapshotState = iota
	SnapshotLoading
	SnapshotReady
)

// Snapshot подтверждённый снимок занятости по (scope, диапазон дат, фильтр зала)
type Snapshot struct {
	Key         string
	Occupancies []domain.Occupancy
	FetchedAt   time.Time
}

// SnapshotHolder владеет текущим снимком и защитой от устаревших ответов.
// Каждая выборка получает монотонно растущий номер; ответ с номером меньше
// последнего выданного отбрасывается независимо от порядка прихода
type SnapshotHolder struct {
	mu    sync.Mutex
	seq   uint64
	state SnapshotState
	snap  *Snapshot
}

// NewSnapshotHolder создает holder без снимка
func NewSnapshotHolder() *SnapshotHolder {
	return &SnapshotHolder{state: SnapshotUnknown}
}

// Begin регистрирует начало выборки и возвращает её номер
// Пока подтверждённого снимка нет, состояние становится Loading
func (h *SnapshotHolder) Begin(key string) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	if h.snap == nil {
		h.state = SnapshotLoading
	}
	return h.seq
}

// Complete фиксирует результат выборки с номером seq
// Возвращает false и отбрасывает результат, если с момента Begin стартовала
// более новая выборка (защита от гонки "старый ответ пришёл позже нового")
func (h *SnapshotHolder) Complete(seq uint64, key string, occupancies []domain.Occupancy) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if seq != h.seq {
		// Устаревший ответ: его результат игнорируется, не сливается со свежим
		return false
	}

	h.snap = &Snapshot{
		Key:         key,
		Occupancies: occupancies,
		FetchedAt:   time.Now(),
	}
	h.state = SnapshotReady
	return true
}

// Fail фиксирует неудачу выборки с номером seq
// Текущая выборка провалилась - снимка нет, выборы остаются заблокированными
func (h *SnapshotHolder) Fail(seq uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if seq != h.seq {
		return
	}
	if h.snap == nil {
		h.state = SnapshotUnknown
	}
}

// Invalidate сбрасывает снимок после успешной записи (создание, отмена,
// закрытие расчёта): до повторной выборки данным доверять нельзя
func (h *SnapshotHolder) Invalidate() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.snap = nil
	h.state = SnapshotUnknown
}

// Current возвращает текущий снимок и состояние
func (h *SnapshotHolder) Current() (*Snapshot, SnapshotState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snap, h.state
}

// Ready сообщает, можно ли доверять снимку
func (h *SnapshotHolder) Ready() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state == SnapshotReady && h.snap != nil
}
