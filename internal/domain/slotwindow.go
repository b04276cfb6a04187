package domain

// SlotWindow окно слота в минутах от полуночи
// Для окон через полночь EndMin > MinutesPerDay (эффективный конец = конец + 24ч)
type SlotWindow struct {
	StartMin int
	EndMin   int
}

// Window возвращает окно слота в сравнимых минутных смещениях
// Если конец <= начала, окно переходит через полночь и конец сдвигается на сутки
func (s Slot) Window() (SlotWindow, error) {
	start, err := s.StartTime.MinuteOfDay()
	if err != nil {
		return SlotWindow{}, err
	}

	end, err := s.EndTime.MinuteOfDay()
	if err != nil {
		return SlotWindow{}, err
	}

	if end <= start {
		end += MinutesPerDay
	}

	return SlotWindow{StartMin: start, EndMin: end}, nil
}

// Contains проверяет попадание минуты суток в полуинтервал [StartMin, EndMin)
// Время после полуночи дополнительно проверяется со сдвигом на сутки,
// чтобы попадать в окна, переходящие через полночь
func (w SlotWindow) Contains(minuteOfDay int) bool {
	if minuteOfDay >= w.StartMin && minuteOfDay < w.EndMin {
		return true
	}

	shifted := minuteOfDay + MinutesPerDay
	return shifted >= w.StartMin && shifted < w.EndMin
}
