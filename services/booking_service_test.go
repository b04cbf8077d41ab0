package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotel-backoffice/failure"
	"hotel-backoffice/models"
	"hotel-backoffice/services"
)

func validBooking() *models.Booking {
	return &models.Booking{
		BookingRef:     "BOOK-2001",
		CustomerRef:    "7894561231",
		RoomNumber:     "204",
		RoomType:       models.RoomDeluxe,
		NumberOfGuests: 2,
		CheckInDate:    date(2026, 3, 10),
		CheckOutDate:   date(2026, 3, 13),
		TotalAmount:    1, // client-supplied, overwritten by the calculator
	}
}

func TestBookingCreate_ComputesCostFields(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	svc := services.NewBookingService(bookingRepo)

	bookingRepo.On("GetByRef", mock.Anything, "BOOK-2001").Return(nil, nil)
	bookingRepo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	created, err := svc.Create(context.Background(), validBooking())
	require.NoError(t, err)

	// Deluxe, 3 nights: 3*150 room, 3*15 tax.
	assert.Equal(t, 3, created.NoOfDays)
	assert.Equal(t, 450.0, created.ActualTotal)
	assert.Equal(t, 45.0, created.PaidTax)
	assert.Equal(t, 495.0, created.TotalCost)
	assert.Equal(t, 495.0, created.TotalAmount)
	assert.Equal(t, models.MealBreakfast, created.Meal)
	assert.Equal(t, models.StatusPending, created.Status)
}

func TestBookingCreate_DuplicateReference(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	svc := services.NewBookingService(bookingRepo)

	bookingRepo.On("GetByRef", mock.Anything, "BOOK-2001").Return(validBooking(), nil)

	_, err := svc.Create(context.Background(), validBooking())
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	bookingRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestBookingCreate_GeneratesRefWhenAbsent(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	svc := services.NewBookingService(bookingRepo)

	bookingRepo.On("GetByRef", mock.Anything, mock.AnythingOfType("string")).Return(nil, nil)
	bookingRepo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	booking := validBooking()
	booking.BookingRef = ""
	created, err := svc.Create(context.Background(), booking)
	require.NoError(t, err)
	assert.Regexp(t, `^BOOK-\d{4}$`, created.BookingRef)
}

func TestBookingCreate_MissingFieldsNamesAll(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	svc := services.NewBookingService(bookingRepo)

	_, err := svc.Create(context.Background(), &models.Booking{RoomNumber: "204"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "customerRef")
	assert.Contains(t, err.Error(), "checkInDate")
	assert.Contains(t, err.Error(), "checkOutDate")
	assert.Contains(t, err.Error(), "numberOfGuests")
	assert.Contains(t, err.Error(), "roomType")
	assert.Contains(t, err.Error(), "totalAmount")
}

func TestBookingCreate_InvalidDateRange(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	svc := services.NewBookingService(bookingRepo)

	booking := validBooking()
	booking.CheckInDate, booking.CheckOutDate = booking.CheckOutDate, booking.CheckInDate
	_, err := svc.Create(context.Background(), booking)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	bookingRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestBookingCreate_NormalizesCustomerRef(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	svc := services.NewBookingService(bookingRepo)

	bookingRepo.On("GetByRef", mock.Anything, "BOOK-2001").Return(nil, nil)
	bookingRepo.On("Insert", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

	booking := validBooking()
	booking.CustomerRef = "0789-456 1231"
	created, err := svc.Create(context.Background(), booking)
	require.NoError(t, err)
	assert.Equal(t, "7894561231", created.CustomerRef)
}

func TestBookingUpdate_RecomputesCostOnDateChange(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	svc := services.NewBookingService(bookingRepo)

	stored := validBooking()
	stored.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	bookingRepo.On("GetByRef", mock.Anything, "BOOK-2001").Return(stored, nil)
	bookingRepo.On("Update", mock.Anything, "BOOK-2001", mock.AnythingOfType("*models.Booking")).Return(nil)

	updated := validBooking()
	updated.CheckOutDate = date(2026, 3, 15) // 5 nights instead of 3
	result, err := svc.Update(context.Background(), updated)
	require.NoError(t, err)

	assert.Equal(t, 5, result.NoOfDays)
	assert.Equal(t, 750.0, result.ActualTotal)
	assert.Equal(t, 75.0, result.PaidTax)
	assert.Equal(t, 825.0, result.TotalCost)
	assert.Equal(t, stored.CreatedAt, result.CreatedAt)
}

func TestBookingUpdate_NotFound(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	svc := services.NewBookingService(bookingRepo)

	bookingRepo.On("GetByRef", mock.Anything, "BOOK-9999").Return(nil, nil)

	missing := validBooking()
	missing.BookingRef = "BOOK-9999"
	_, err := svc.Update(context.Background(), missing)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingDelete_NotFoundWhenNothingDeleted(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	svc := services.NewBookingService(bookingRepo)

	bookingRepo.On("Delete", mock.Anything, "BOOK-9999").Return(int64(0), nil)

	err := svc.Delete(context.Background(), "BOOK-9999")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingFilter_AllowListAndDateParsing(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	svc := services.NewBookingService(bookingRepo)

	_, err := svc.Filter(context.Background(), "paidTax", "10")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = svc.Filter(context.Background(), "checkInDate", "not-a-date")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	bookingRepo.On("Filter", mock.Anything, "checkInDate", day).Return([]models.Booking{}, nil)
	_, err = svc.Filter(context.Background(), "checkInDate", "2026-03-10")
	require.NoError(t, err)
	bookingRepo.AssertExpectations(t)
}

func TestBookingFilter_NormalizesCustomerRef(t *testing.T) {
	bookingRepo := new(mockBookingRepo)
	svc := services.NewBookingService(bookingRepo)

	bookingRepo.On("Filter", mock.Anything, "customerRef", interface{}("7894561231")).
		Return([]models.Booking{*validBooking()}, nil)

	found, err := svc.Filter(context.Background(), "customerRef", "07894561231")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
