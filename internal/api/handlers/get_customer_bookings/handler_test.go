package get_customer_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	calls int
}

func (f *fakeService) GetCustomerBookings(_ context.Context, _ int64, _ *string) (*models.BookingListResponse, error) {
	f.calls++
	return &models.BookingListResponse{Bookings: []*models.BookingResponse{}, Total: 0}, nil
}

func doRequest(t *testing.T, svc *fakeService, customerID string, userID interface{}) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/"+customerID+"/bookings", nil)
	req = mux.SetURLVars(req, map[string]string{"customerId": customerID})
	if userID != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, userID))
	}

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleOwnBookings(t *testing.T) {
	svc := &fakeService{}

	rec := doRequest(t, svc, "42", int64(42))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.calls)
}

func TestHandleForeignCustomerForbidden(t *testing.T) {
	svc := &fakeService{}

	rec := doRequest(t, svc, "42", int64(7))

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestHandleMissingUserID(t *testing.T) {
	svc := &fakeService{}

	rec := doRequest(t, svc, "42", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, svc.calls)
}
