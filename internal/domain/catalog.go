package domain

import "github.com/m04kA/SMC-VenueBookingService/pkg/types"

// Hall бронируемый зал (площадка)
// Принадлежит каталогу мастер-данных; здесь только ссылаемся, никогда не копируем
type Hall struct {
	ID       int64
	Name     string
	Location string
	Active   bool
}

// Slot именованное окно времени суток, на которые разбит день зала
// Окно может переходить через полночь (end <= start)
type Slot struct {
	ID        int64
	Name      string
	StartTime types.TimeString
	EndTime   types.TimeString
}

// EventType тип мероприятия из каталога мастер-данных
type EventType struct {
	ID   int64
	Name string
}

// Customer клиент из каталога мастер-данных
type Customer struct {
	ID    int64
	Name  string
	Phone string
}
