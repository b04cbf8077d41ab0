package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
)

func statsFixtures() ([]models.Customer, []models.Booking) {
	customers := []models.Customer{
		{CustomerRef: "CUST-1001", Gender: models.GenderFemale},
		{CustomerRef: "CUST-1002", Gender: models.GenderMale},
		{CustomerRef: "CUST-1003", Gender: models.GenderFemale},
	}
	bookings := []models.Booking{
		{BookingRef: "BOOK-2001", Status: models.StatusConfirmed, PaymentStatus: models.PaymentPaid, TotalAmount: 495},
		{BookingRef: "BOOK-2002", Status: models.StatusPending, PaymentStatus: models.PaymentPending, TotalAmount: 330},
		{BookingRef: "BOOK-2003", Status: models.StatusCancelled, PaymentStatus: models.PaymentPending, TotalAmount: 275},
	}
	return customers, bookings
}

func TestStats_ComputeWithoutCache(t *testing.T) {
	customers, bookings := statsFixtures()
	customerRepo := new(mockCustomerRepo)
	bookingRepo := new(mockBookingRepo)
	customerRepo.On("List", mock.Anything).Return(customers, nil)
	bookingRepo.On("List", mock.Anything).Return(bookings, nil)

	svc := services.NewStatsService(customerRepo, bookingRepo, nil, time.Minute)

	cs, err := svc.CustomerStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, cs.Total)
	assert.Equal(t, 2, cs.ByGender[models.GenderFemale])
	assert.Equal(t, 1, cs.ByGender[models.GenderMale])

	bs, err := svc.BookingStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, bs.Total)
	assert.Equal(t, 1, bs.ByStatus[models.StatusConfirmed])
	assert.Equal(t, 495.0, bs.Revenue)
	// Cancelled bookings never count toward outstanding balance.
	assert.Equal(t, 330.0, bs.Outstanding)
}

func TestStats_CacheMissComputesAndStores(t *testing.T) {
	customers, _ := statsFixtures()
	customerRepo := new(mockCustomerRepo)
	bookingRepo := new(mockBookingRepo)
	customerRepo.On("List", mock.Anything).Return(customers, nil)

	client, cacheMock := redismock.NewClientMock()
	svc := services.NewStatsService(customerRepo, bookingRepo, client, time.Minute)

	expected := services.CustomerStats{
		Total:    3,
		ByGender: map[string]int{models.GenderFemale: 2, models.GenderMale: 1},
	}
	raw, err := json.Marshal(&expected)
	require.NoError(t, err)

	cacheMock.ExpectGet("stats:customers").RedisNil()
	cacheMock.ExpectSet("stats:customers", raw, time.Minute).SetVal("OK")

	cs, err := svc.CustomerStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected.Total, cs.Total)
	require.NoError(t, cacheMock.ExpectationsWereMet())
	customerRepo.AssertExpectations(t)
}

func TestStats_CacheHitSkipsRepository(t *testing.T) {
	customerRepo := new(mockCustomerRepo)
	bookingRepo := new(mockBookingRepo)

	client, cacheMock := redismock.NewClientMock()
	svc := services.NewStatsService(customerRepo, bookingRepo, client, time.Minute)

	cached := services.CustomerStats{Total: 42, ByGender: map[string]int{models.GenderMale: 42}}
	raw, err := json.Marshal(&cached)
	require.NoError(t, err)
	cacheMock.ExpectGet("stats:customers").SetVal(string(raw))

	cs, err := svc.CustomerStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, cs.Total)
	require.NoError(t, cacheMock.ExpectationsWereMet())
	customerRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestStats_CorruptCacheEntryFallsBackToRepository(t *testing.T) {
	customers, _ := statsFixtures()
	customerRepo := new(mockCustomerRepo)
	bookingRepo := new(mockBookingRepo)
	customerRepo.On("List", mock.Anything).Return(customers, nil)

	client, cacheMock := redismock.NewClientMock()
	svc := services.NewStatsService(customerRepo, bookingRepo, client, time.Minute)

	cacheMock.ExpectGet("stats:customers").SetVal("{not json")
	cacheMock.Regexp().ExpectSet("stats:customers", `.*`, time.Minute).SetVal("OK")

	cs, err := svc.CustomerStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, cs.Total)
	customerRepo.AssertExpectations(t)
}

func TestStats_InvalidateDropsBothKeys(t *testing.T) {
	customerRepo := new(mockCustomerRepo)
	bookingRepo := new(mockBookingRepo)

	client, cacheMock := redismock.NewClientMock()
	svc := services.NewStatsService(customerRepo, bookingRepo, client, time.Minute)

	cacheMock.ExpectDel("stats:customers", "stats:bookings").SetVal(2)
	svc.Invalidate(context.Background())
	require.NoError(t, cacheMock.ExpectationsWereMet())
}

func TestStats_NilCacheIsDisabled(t *testing.T) {
	customers, _ := statsFixtures()
	customerRepo := new(mockCustomerRepo)
	bookingRepo := new(mockBookingRepo)
	customerRepo.On("List", mock.Anything).Return(customers, nil).Twice()

	svc := services.NewStatsService(customerRepo, bookingRepo, nil, time.Minute)

	_, err := svc.CustomerStats(context.Background())
	require.NoError(t, err)
	_, err = svc.CustomerStats(context.Background())
	require.NoError(t, err)
	svc.Invalidate(context.Background())
	customerRepo.AssertExpectations(t)
}
