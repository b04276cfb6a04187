package get_booking_report

import (
	"sort"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// aggregate сводит активные бронирования периода в срезы отчёта
// Каждое бронирование учитывается в каждом срезе ровно один раз:
// многодатные брони относятся к своей основной дате, суммы не дублируются
func aggregate(bookings []*domain.Booking) (Totals, []DayBucket, []HallBucket, []StatusBucket, []CustomerBucket) {
	var totals Totals
	byDay := make(map[string]*Totals)
	byHall := make(map[int64]*Totals)
	byStatus := make(map[domain.BookingStatus]*Totals)
	byCustomer := make(map[int64]*CustomerBucket)

	// Все платёжные статусы присутствуют в отчёте всегда
	for _, status := range domain.PaymentStatuses {
		byStatus[status] = &Totals{}
	}

	for _, b := range bookings {
		addBooking(&totals, b)

		date := b.EventDate.Format(domain.DateFormat)
		if byDay[date] == nil {
			byDay[date] = &Totals{}
		}
		addBooking(byDay[date], b)

		if byHall[b.HallID] == nil {
			byHall[b.HallID] = &Totals{}
		}
		addBooking(byHall[b.HallID], b)

		status := domain.DeriveStatus(string(b.Status), b.PaidTotal, b.TotalAmount)
		if byStatus[status] == nil {
			byStatus[status] = &Totals{}
		}
		addBooking(byStatus[status], b)

		if byCustomer[b.CustomerID] == nil {
			byCustomer[b.CustomerID] = &CustomerBucket{
				CustomerID:    b.CustomerID,
				CustomerName:  b.CustomerName,
				CustomerPhone: b.CustomerPhone,
			}
		}
		addBooking(&byCustomer[b.CustomerID].Totals, b)
	}

	return totals, sortDays(byDay), sortHalls(byHall), sortStatuses(byStatus), sortCustomers(byCustomer)
}

func addBooking(t *Totals, b *domain.Booking) {
	t.Count++
	t.TotalAmount += b.TotalAmount
	t.PaidTotal += b.PaidTotal
	t.PendingTotal += b.PendingTotal()
}

func sortDays(m map[string]*Totals) []DayBucket {
	buckets := make([]DayBucket, 0, len(m))
	for date, t := range m {
		buckets = append(buckets, DayBucket{Date: date, Totals: *t})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Date < buckets[j].Date })
	return buckets
}

func sortHalls(m map[int64]*Totals) []HallBucket {
	buckets := make([]HallBucket, 0, len(m))
	for hallID, t := range m {
		buckets = append(buckets, HallBucket{HallID: hallID, Totals: *t})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].HallID < buckets[j].HallID })
	return buckets
}

// sortStatuses возвращает статусы в фиксированном порядке жизненного цикла
func sortStatuses(m map[domain.BookingStatus]*Totals) []StatusBucket {
	buckets := make([]StatusBucket, 0, len(domain.PaymentStatuses))
	for _, status := range domain.PaymentStatuses {
		buckets = append(buckets, StatusBucket{Status: string(status), Totals: *m[status]})
	}
	return buckets
}

func sortCustomers(m map[int64]*CustomerBucket) []CustomerBucket {
	buckets := make([]CustomerBucket, 0, len(m))
	for _, bucket := range m {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].CustomerID < buckets[j].CustomerID })
	return buckets
}
