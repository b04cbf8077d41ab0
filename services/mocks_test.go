package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hotel-backoffice/models"
)

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) List(ctx context.Context) ([]models.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *mockCustomerRepo) GetByRef(ctx context.Context, customerRef string) (*models.Customer, error) {
	args := m.Called(ctx, customerRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *mockCustomerRepo) Insert(ctx context.Context, customer *models.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomerRepo) Update(ctx context.Context, customerRef string, customer *models.Customer) error {
	return m.Called(ctx, customerRef, customer).Error(0)
}

func (m *mockCustomerRepo) Delete(ctx context.Context, customerRef string) (int64, error) {
	args := m.Called(ctx, customerRef)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCustomerRepo) Filter(ctx context.Context, field, value string) ([]models.Customer, error) {
	args := m.Called(ctx, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *mockCustomerRepo) ReplaceAll(ctx context.Context, customers []models.Customer) error {
	return m.Called(ctx, customers).Error(0)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockBookingRepo) GetByRef(ctx context.Context, bookingRef string) (*models.Booking, error) {
	args := m.Called(ctx, bookingRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepo) Update(ctx context.Context, bookingRef string, booking *models.Booking) error {
	return m.Called(ctx, bookingRef, booking).Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, bookingRef string) (int64, error) {
	args := m.Called(ctx, bookingRef)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) DeleteByCustomerRef(ctx context.Context, mobile string) (int64, error) {
	args := m.Called(ctx, mobile)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) UpdateCustomerRef(ctx context.Context, oldMobile, newMobile string) (int64, error) {
	args := m.Called(ctx, oldMobile, newMobile)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) Filter(ctx context.Context, field string, value interface{}) ([]models.Booking, error) {
	args := m.Called(ctx, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockBookingRepo) DeleteOrphans(ctx context.Context, validMobiles []string) (int64, error) {
	args := m.Called(ctx, validMobiles)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) UpsertPlaceholder(ctx context.Context, booking *models.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepo) FindMissingRefs(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockBookingRepo) SetBookingRef(ctx context.Context, customerRef, bookingRef string) error {
	return m.Called(ctx, customerRef, bookingRef).Error(0)
}

func (m *mockBookingRepo) ReplaceAll(ctx context.Context, bookings []models.Booking) error {
	return m.Called(ctx, bookings).Error(0)
}
