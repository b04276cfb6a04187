package domain

// AllDaySlot сентинел "занят весь день": блокирует каждый слот зала на дату
const AllDaySlot int64 = -1

// Occupancy производный факт занятости: (зал, дата, слот) занят активным бронированием
// Никогда не хранится; вычисляется нормализатором из сырых бронирований
// Несколько фактов могут ссылаться на одно бронирование (многодатное бронирование)
type Occupancy struct {
	HallID int64
	Date   string // YYYY-MM-DD
	SlotID int64  // AllDaySlot, если занят весь день

	// Идентичность блокирующего бронирования - чтобы показать "кто занял"
	BookingID     int64
	CustomerName  string
	CustomerPhone string
}

// IsAllDay возвращает true, если факт блокирует весь день
func (o Occupancy) IsAllDay() bool {
	return o.SlotID == AllDaySlot
}

// Blocks проверяет, блокирует ли факт указанный слот
func (o Occupancy) Blocks(slotID int64) bool {
	return o.SlotID == AllDaySlot || o.SlotID == slotID
}
