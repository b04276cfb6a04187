package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeRepo репозиторий в памяти для тестов сервиса
type fakeRepo struct {
	bookings map[int64]*domain.Booking
	payments map[int64][]domain.Payment

	cancelCalls int
	settleCalls int
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	r := &fakeRepo{
		bookings: make(map[int64]*domain.Booking),
		payments: make(map[int64][]domain.Payment),
	}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepo) GetPayments(_ context.Context, bookingID int64) ([]domain.Payment, error) {
	return r.payments[bookingID], nil
}

func (r *fakeRepo) GetRange(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeRepo) GetByCustomer(_ context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.CustomerID != customerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeRepo) Cancel(_ context.Context, id int64) error {
	r.cancelCalls++
	r.bookings[id].Status = domain.StatusCancelled
	return nil
}

func (r *fakeRepo) Settle(_ context.Context, id int64) error {
	r.settleCalls++
	b := r.bookings[id]
	b.Status = domain.StatusSettled
	b.PaidTotal = b.TotalAmount
	return nil
}

func (r *fakeRepo) AddPayment(_ context.Context, payment *domain.Payment, paidTotal float64, status domain.BookingStatus) error {
	r.payments[payment.BookingID] = append(r.payments[payment.BookingID], *payment)
	b := r.bookings[payment.BookingID]
	b.PaidTotal = paidTotal
	b.Status = status
	return nil
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("pending booking cancelled", func(t *testing.T) {
		repo := newFakeRepo(&domain.Booking{ID: 1, Status: domain.StatusPending})
		svc := NewService(repo, nopLogger{})

		require.NoError(t, svc.Cancel(ctx, 1))
		assert.Equal(t, 1, repo.cancelCalls)
		assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
	})

	t.Run("repeat cancel is no-op", func(t *testing.T) {
		repo := newFakeRepo(&domain.Booking{ID: 1, Status: domain.StatusCancelled})
		svc := NewService(repo, nopLogger{})

		require.NoError(t, svc.Cancel(ctx, 1))
		assert.Zero(t, repo.cancelCalls)
	})

	t.Run("settled booking cannot be cancelled", func(t *testing.T) {
		repo := newFakeRepo(&domain.Booking{ID: 1, Status: domain.StatusSettled})
		svc := NewService(repo, nopLogger{})

		assert.ErrorIs(t, svc.Cancel(ctx, 1), ErrCannotCancel)
		assert.Zero(t, repo.cancelCalls)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc := NewService(newFakeRepo(), nopLogger{})
		assert.ErrorIs(t, svc.Cancel(ctx, 42), ErrBookingNotFound)
	})
}

func TestSettle(t *testing.T) {
	ctx := context.Background()

	t.Run("advance booking settled", func(t *testing.T) {
		repo := newFakeRepo(&domain.Booking{ID: 1, Status: domain.StatusAdvance, TotalAmount: 100, PaidTotal: 40})
		svc := NewService(repo, nopLogger{})

		require.NoError(t, svc.Settle(ctx, 1))
		assert.Equal(t, 1, repo.settleCalls)
		assert.Equal(t, domain.StatusSettled, repo.bookings[1].Status)
		assert.Equal(t, 100.0, repo.bookings[1].PaidTotal)
	})

	t.Run("repeat settle is no-op", func(t *testing.T) {
		repo := newFakeRepo(&domain.Booking{ID: 1, Status: domain.StatusSettled})
		svc := NewService(repo, nopLogger{})

		require.NoError(t, svc.Settle(ctx, 1))
		assert.Zero(t, repo.settleCalls)
	})

	t.Run("cancelled booking cannot be settled", func(t *testing.T) {
		repo := newFakeRepo(&domain.Booking{ID: 1, Status: domain.StatusCancelled})
		svc := NewService(repo, nopLogger{})

		assert.ErrorIs(t, svc.Settle(ctx, 1), ErrCannotSettle)
	})
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("partial payment moves to advance", func(t *testing.T) {
		repo := newFakeRepo(&domain.Booking{ID: 1, Status: domain.StatusPending, TotalAmount: 100})
		svc := NewService(repo, nopLogger{})

		resp, err := svc.RecordPayment(ctx, 1, &models.RecordPaymentRequest{Amount: 40})
		require.NoError(t, err)
		assert.Equal(t, 40.0, resp.PaidTotal)
		assert.Equal(t, string(domain.StatusAdvance), resp.Status)
		assert.Len(t, repo.payments[1], 1)
	})

	t.Run("payment is clamped to total", func(t *testing.T) {
		repo := newFakeRepo(&domain.Booking{ID: 1, Status: domain.StatusAdvance, TotalAmount: 100, PaidTotal: 80})
		svc := NewService(repo, nopLogger{})

		resp, err := svc.RecordPayment(ctx, 1, &models.RecordPaymentRequest{Amount: 500})
		require.NoError(t, err)
		assert.Equal(t, 100.0, resp.PaidTotal)
		assert.Equal(t, string(domain.StatusPaid), resp.Status)
	})

	t.Run("settled stays settled after payment", func(t *testing.T) {
		repo := newFakeRepo(&domain.Booking{ID: 1, Status: domain.StatusSettled, TotalAmount: 100, PaidTotal: 60})
		svc := NewService(repo, nopLogger{})

		resp, err := svc.RecordPayment(ctx, 1, &models.RecordPaymentRequest{Amount: 10})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusSettled), resp.Status)
	})

	t.Run("cancelled booking rejects payment", func(t *testing.T) {
		repo := newFakeRepo(&domain.Booking{ID: 1, Status: domain.StatusCancelled, TotalAmount: 100})
		svc := NewService(repo, nopLogger{})

		_, err := svc.RecordPayment(ctx, 1, &models.RecordPaymentRequest{Amount: 10})
		assert.ErrorIs(t, err, ErrCannotPay)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		repo := newFakeRepo(&domain.Booking{ID: 1, Status: domain.StatusPending, TotalAmount: 100})
		svc := NewService(repo, nopLogger{})

		_, err := svc.RecordPayment(ctx, 1, &models.RecordPaymentRequest{Amount: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
