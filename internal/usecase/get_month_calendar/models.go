package get_month_calendar

// Request - запрос месячной сетки занятости зала
type Request struct {
	Scope  string
	Year   int
	Month  int
	HallID int64
}

// Response - календарь месяца: сводка по каждому дню
type Response struct {
	HallID int64     `json:"hallId"`
	Year   int       `json:"year"`
	Month  int       `json:"month"`
	Days   []DayCell `json:"days"`
}

// DayCell сводка одного дня
type DayCell struct {
	Date           string `json:"date"`
	Status         string `json:"status"`
	AvailableCount int    `json:"availableCount"`
	TotalCount     int    `json:"totalCount"`
}
