package session

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// SelectionState состояние выбора по дате для чекбокса "весь день"
// Явная машина состояний вместо двух независимых флагов, синхронизируемых
// по договорённости: partial рендерится как indeterminate
type SelectionState int

const (
	SelectionNone SelectionState = iota
	SelectionPartial
	SelectionFull
)

// Accumulator буфер несохранённых выборов слотов для многошаговой композиции
// бронирования по нескольким датам. Потокобезопасен; очищается при отправке
// или отказе от композиции
type Accumulator struct {
	mu      sync.Mutex
	entries []domain.StagedSelection
}

// NewAccumulator создает пустой аккумулятор
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// AddSelection добавляет (или заменяет) выбор по дате
// Пустой выбор без флага "весь день" - ошибка валидации, не паника:
// вызывающая сторона решает, как её показать
func (a *Accumulator) AddSelection(date string, hallID int64, slotIDs []int64, isFullDay bool) error {
	if len(slotIDs) == 0 && !isFullDay {
		return ErrEmptySelection
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.setEntry(domain.StagedSelection{
		Date:      date,
		HallID:    hallID,
		SlotIDs:   append([]int64(nil), slotIDs...),
		IsFullDay: isFullDay,
	})

	return nil
}

// ToggleFullDay переключает выбор "весь день" по дате
// Включение выбирает ровно те слоты, которые свободны в момент вызова
// (снимок на момент переключения, не живая привязка); выключение очищает
// текущий выбор по дате
func (a *Accumulator) ToggleFullDay(date string, hallID int64, enable bool, freeSlots []int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !enable {
		a.removeEntry(date, hallID)
		return
	}

	a.setEntry(domain.StagedSelection{
		Date:      date,
		HallID:    hallID,
		SlotIDs:   append([]int64(nil), freeSlots...),
		IsFullDay: true,
	})
}

// ToggleSlot переключает один слот в выборе по дате
//
// Несвободный и не выбранный слот игнорируется (no-op). Если активен режим
// "весь день", режим снимается и выбор становится "все свободные слоты, кроме
// этого" - явное исключение, а не чистый лист. Иначе слот добавляется или
// убирается; если получившийся набор совпал со всеми свободными слотами,
// выбор автоматически повышается до "весь день"
//
// freeSlots - слоты, свободные по подтверждённому снимку без учёта выборов
// этой же сессии (иначе повторное переключение выбранного слота было бы no-op)
func (a *Accumulator) ToggleSlot(date string, hallID int64, slotID int64, freeSlots []int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry, ok := a.findEntry(date, hallID)

	if ok && entry.IsFullDay {
		if !containsID(freeSlots, slotID) && !containsID(entry.SlotIDs, slotID) {
			// Занятый слот не переключается и не снимает "весь день"
			return
		}
		// Снимаем "весь день": все свободные, кроме исключаемого слота
		remaining := make([]int64, 0, len(freeSlots))
		for _, id := range freeSlots {
			if id != slotID {
				remaining = append(remaining, id)
			}
		}
		if len(remaining) == 0 {
			a.removeEntry(date, hallID)
			return
		}
		a.setEntry(domain.StagedSelection{Date: date, HallID: hallID, SlotIDs: remaining})
		return
	}

	if ok && containsID(entry.SlotIDs, slotID) {
		// Убираем слот из выбора
		kept := make([]int64, 0, len(entry.SlotIDs))
		for _, id := range entry.SlotIDs {
			if id != slotID {
				kept = append(kept, id)
			}
		}
		if len(kept) == 0 {
			a.removeEntry(date, hallID)
			return
		}
		a.setEntry(domain.StagedSelection{Date: date, HallID: hallID, SlotIDs: kept})
		return
	}

	if !containsID(freeSlots, slotID) {
		// Занятый слот не переключается
		return
	}

	var selected []int64
	if ok {
		selected = append(append([]int64(nil), entry.SlotIDs...), slotID)
	} else {
		selected = []int64{slotID}
	}

	a.setEntry(domain.StagedSelection{
		Date:      date,
		HallID:    hallID,
		SlotIDs:   selected,
		IsFullDay: sameIDSet(selected, freeSlots), // автоповышение до "весь день"
	})
}

// State возвращает состояние чекбокса "весь день" по дате
// Full только когда выбран каждый слот каталога; выбор "все свободные, но не
// все слоты каталога" - partial (indeterminate), даже при активном флаге
func (a *Accumulator) State(date string, hallID int64, totalSlotCount int) SelectionState {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry, ok := a.findEntry(date, hallID)
	if !ok || len(entry.SlotIDs) == 0 {
		return SelectionNone
	}

	if entry.IsFullDay && len(entry.SlotIDs) == totalSlotCount {
		return SelectionFull
	}

	return SelectionPartial
}

// Entries возвращает копию накопленных выборов в порядке добавления
func (a *Accumulator) Entries() []domain.StagedSelection {
	a.mu.Lock()
	defer a.mu.Unlock()

	entries := make([]domain.StagedSelection, len(a.entries))
	for i, e := range a.entries {
		entries[i] = e
		entries[i].SlotIDs = append([]int64(nil), e.SlotIDs...)
	}
	return entries
}

// Clear очищает аккумулятор (отправка или отказ от композиции)
func (a *Accumulator) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = nil
}

// Finalize собирает накопленные выборы в payload отправки и очищает аккумулятор
// Однодатная композиция сериализуется одним слотом или списком через запятую;
// многодатная - полным списком датированных записей
func (a *Accumulator) Finalize() (*Submission, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.entries) == 0 {
		return nil, ErrNothingStaged
	}

	hallID := a.entries[0].HallID
	dates := make([]SubmissionDate, 0, len(a.entries))

	for _, entry := range a.entries {
		if entry.HallID != hallID {
			return nil, ErrMixedHalls
		}
		dates = append(dates, SubmissionDate{
			Date:      entry.Date,
			SlotIDs:   append([]int64(nil), entry.SlotIDs...),
			IsFullDay: entry.IsFullDay,
		})
	}

	a.entries = nil

	return &Submission{HallID: hallID, Dates: dates}, nil
}

// Submission payload отправки композиции в booking store
type Submission struct {
	HallID int64
	Dates  []SubmissionDate
}

// SubmissionDate один день композиции
type SubmissionDate struct {
	Date      string
	SlotIDs   []int64
	IsFullDay bool
}

// IsMultiDate возвращает true для многодатной композиции
func (s *Submission) IsMultiDate() bool {
	return len(s.Dates) > 1
}

// SlotList сериализует слоты дня: один id или список через запятую
func (d SubmissionDate) SlotList() string {
	parts := make([]string, len(d.SlotIDs))
	for i, id := range d.SlotIDs {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ",")
}

// Внутренние помощники; вызываются только под мьютексом

func (a *Accumulator) findEntry(date string, hallID int64) (domain.StagedSelection, bool) {
	for _, e := range a.entries {
		if e.Date == date && e.HallID == hallID {
			return e, true
		}
	}
	return domain.StagedSelection{}, false
}

func (a *Accumulator) setEntry(entry domain.StagedSelection) {
	for i, e := range a.entries {
		if e.Date == entry.Date && e.HallID == entry.HallID {
			a.entries[i] = entry
			return
		}
	}
	a.entries = append(a.entries, entry)
}

func (a *Accumulator) removeEntry(date string, hallID int64) {
	for i, e := range a.entries {
		if e.Date == date && e.HallID == hallID {
			a.entries = append(a.entries[:i], a.entries[i+1:]...)
			return
		}
	}
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func sameIDSet(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]int64(nil), a...)
	bs := append([]int64(nil), b...)
	sort.Slice(as, func(i, j int) bool { return as[i] < as[j] })
	sort.Slice(bs, func(i, j int) bool { return bs[i] < bs[j] })
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
