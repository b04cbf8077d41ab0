package services

import (
	"context"
	"errors"
	"time"

	"hotel-backoffice/failure"
	"hotel-backoffice/models"
	"hotel-backoffice/repository"
	"hotel-backoffice/utils"
)

// bookingFilterFields maps each allow-listed filter field to whether its
// value is a calendar date.
var bookingFilterFields = map[string]bool{
	"bookingRef":   false,
	"customerRef":  false,
	"roomNumber":   false,
	"status":       false,
	"roomType":     false,
	"checkInDate":  true,
	"checkOutDate": true,
}

type BookingService struct {
	bookings repository.BookingRepository
}

func NewBookingService(bookings repository.BookingRepository) *BookingService {
	return &BookingService{bookings: bookings}
}

func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, failure.StorageUnavailable(err)
	}
	return bookings, nil
}

// Create validates and stores a new booking. The financial fields are always
// recomputed from the stay dates and room type; client-supplied totals only
// satisfy the required-field check and are then overwritten.
func (s *BookingService) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if missing := booking.MissingFields(); len(missing) > 0 {
		return nil, failure.MissingFields(missing)
	}
	booking.ApplyDefaults()
	if err := booking.Validate(); err != nil {
		return nil, err
	}
	booking.CustomerRef = utils.NormalizePhoneNumber(booking.CustomerRef)

	cost, err := ComputeBookingCost(booking.CheckInDate, booking.CheckOutDate, booking.RoomType)
	if err != nil {
		return nil, err
	}
	ApplyCost(booking, cost)

	if booking.BookingRef != "" {
		existing, err := s.bookings.GetByRef(ctx, booking.BookingRef)
		if err != nil {
			return nil, failure.StorageUnavailable(err)
		}
		if existing != nil {
			return nil, failure.DuplicateReference(booking.BookingRef)
		}
	} else {
		ref, err := s.freshBookingRef(ctx)
		if err != nil {
			return nil, err
		}
		booking.BookingRef = ref
	}

	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if err := s.bookings.Insert(ctx, booking); err != nil {
		return nil, failure.StorageUnavailable(err)
	}
	return booking, nil
}

// Update replaces a booking record by bookingRef. Cost fields are recomputed
// from the incoming dates and room type so stale derived values never
// survive a date change.
func (s *BookingService) Update(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if booking.BookingRef == "" {
		return nil, failure.BadRequest("bookingRef is required")
	}

	old, err := s.bookings.GetByRef(ctx, booking.BookingRef)
	if err != nil {
		return nil, failure.StorageUnavailable(err)
	}
	if old == nil {
		return nil, failure.NotFound("booking")
	}

	if missing := booking.MissingFields(); len(missing) > 0 {
		return nil, failure.MissingFields(missing)
	}
	booking.ApplyDefaults()
	if err := booking.Validate(); err != nil {
		return nil, err
	}
	booking.CustomerRef = utils.NormalizePhoneNumber(booking.CustomerRef)

	cost, err := ComputeBookingCost(booking.CheckInDate, booking.CheckOutDate, booking.RoomType)
	if err != nil {
		return nil, err
	}
	ApplyCost(booking, cost)

	booking.CreatedAt = old.CreatedAt
	booking.UpdatedAt = time.Now().UTC()

	if err := s.bookings.Update(ctx, booking.BookingRef, booking); err != nil {
		return nil, failure.StorageUnavailable(err)
	}
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, bookingRef string) error {
	deleted, err := s.bookings.Delete(ctx, bookingRef)
	if err != nil {
		return failure.StorageUnavailable(err)
	}
	if deleted == 0 {
		return failure.NotFound("booking")
	}
	return nil
}

func (s *BookingService) Filter(ctx context.Context, field, value string) ([]models.Booking, error) {
	if field == "" || value == "" {
		return nil, failure.BadRequest("field and value parameters are required")
	}
	isDate, ok := bookingFilterFields[field]
	if !ok {
		return nil, failure.BadRequest("invalid search field: " + field)
	}

	var match interface{} = value
	if isDate {
		day, err := time.Parse("2006-01-02", value)
		if err != nil {
			return nil, failure.BadRequest("invalid date value: " + value)
		}
		match = day
	} else if field == "customerRef" {
		match = utils.NormalizePhoneNumber(value)
	}

	bookings, err := s.bookings.Filter(ctx, field, match)
	if err != nil {
		return nil, failure.StorageUnavailable(err)
	}
	return bookings, nil
}

func (s *BookingService) freshBookingRef(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		ref, err := utils.NewBookingRef()
		if err != nil {
			return "", err
		}
		existing, err := s.bookings.GetByRef(ctx, ref)
		if err != nil {
			return "", failure.StorageUnavailable(err)
		}
		if existing == nil {
			return ref, nil
		}
	}
	return "", errors.New("could not allocate a unique booking reference")
}
