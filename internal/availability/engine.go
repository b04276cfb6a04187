package availability

import "github.com/m04kA/SMC-VenueBookingService/internal/domain"

// DayStatus сводный статус дня по залу
type DayStatus string

const (
	DayFullyAvailable     DayStatus = "fully-available"
	DayPartiallyAvailable DayStatus = "partially-available"
	DayUnavailable        DayStatus = "unavailable"
)

// DaySummary сводка доступности дня по отфильтрованному набору слотов
type DaySummary struct {
	Status         DayStatus
	AvailableCount int
	TotalCount     int
}

// SlotStatus статус одного слота в выдаче SlotsWithStatus
// Blocking заполняется идентичностью занявшего бронирования, если слот занят
type SlotStatus struct {
	Slot     domain.Slot
	IsFree   bool
	Blocking *domain.Occupancy
	IsStaged bool
}

// IsFree отвечает, свободен ли слот (зал, дата, слот) с учётом фактов занятости
// и несохранённых выборов текущей сессии
func IsFree(hallID int64, date string, slotID int64, occupancies []domain.Occupancy, staged []domain.StagedSelection) bool {
	for _, occ := range occupancies {
		if occ.HallID == hallID && occ.Date == date && occ.Blocks(slotID) {
			return false
		}
	}

	for _, sel := range staged {
		if sel.Claims(hallID, date, slotID) {
			return false
		}
	}

	return true
}

// SlotsWithStatus возвращает статус каждого слота в порядке каталога
// Результат вычисляется заново при каждом вызове - снимок, а не живое представление
func SlotsWithStatus(hallID int64, date string, slots []domain.Slot, occupancies []domain.Occupancy, staged []domain.StagedSelection) []SlotStatus {
	result := make([]SlotStatus, 0, len(slots))

	for _, slot := range slots {
		status := SlotStatus{Slot: slot, IsFree: true}

		for i := range occupancies {
			occ := &occupancies[i]
			if occ.HallID == hallID && occ.Date == date && occ.Blocks(slot.ID) {
				status.IsFree = false
				status.Blocking = occ
				break
			}
		}

		if status.IsFree {
			for _, sel := range staged {
				if sel.Claims(hallID, date, slot.ID) {
					status.IsFree = false
					status.IsStaged = true
					break
				}
			}
		}

		result = append(result, status)
	}

	return result
}

// SummarizeDay сводит доступность дня по переданному (уже отфильтрованному)
// набору слотов: fully-available / partially-available / unavailable
func SummarizeDay(hallID int64, date string, slots []domain.Slot, occupancies []domain.Occupancy, staged []domain.StagedSelection) DaySummary {
	total := len(slots)
	available := 0

	for _, slot := range slots {
		if IsFree(hallID, date, slot.ID, occupancies, staged) {
			available++
		}
	}

	return DaySummary{
		Status:         dayStatus(available, total),
		AvailableCount: available,
		TotalCount:     total,
	}
}

// FreeSlotIDs возвращает id свободных слотов в порядке каталога
// Используется аккумулятором выбора для снимка "все свободные на момент вызова"
func FreeSlotIDs(hallID int64, date string, slots []domain.Slot, occupancies []domain.Occupancy, staged []domain.StagedSelection) []int64 {
	free := make([]int64, 0, len(slots))
	for _, slot := range slots {
		if IsFree(hallID, date, slot.ID, occupancies, staged) {
			free = append(free, slot.ID)
		}
	}
	return free
}

func dayStatus(available, total int) DayStatus {
	switch {
	case total > 0 && available == total:
		return DayFullyAvailable
	case available == 0:
		return DayUnavailable
	default:
		return DayPartiallyAvailable
	}
}
