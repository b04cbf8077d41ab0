package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"hotel-backoffice/failure"
	"hotel-backoffice/models"
	"hotel-backoffice/repository"
	"hotel-backoffice/utils"
)

// customerFilterFields is the allow-list for the customer filter endpoint.
var customerFilterFields = map[string]bool{
	"customerRef":  true,
	"customerName": true,
	"motherName":   true,
	"gender":       true,
	"mobile":       true,
	"email":        true,
	"nationality":  true,
	"idProofType":  true,
	"idNumber":     true,
	"address":      true,
	"postCode":     true,
}

type CustomerService struct {
	customers repository.CustomerRepository
	bookings  repository.BookingRepository
}

func NewCustomerService(customers repository.CustomerRepository, bookings repository.BookingRepository) *CustomerService {
	return &CustomerService{customers: customers, bookings: bookings}
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, failure.StorageUnavailable(err)
	}
	return customers, nil
}

func (s *CustomerService) GetByRef(ctx context.Context, customerRef string) (*models.Customer, error) {
	customer, err := s.customers.GetByRef(ctx, customerRef)
	if err != nil {
		return nil, failure.StorageUnavailable(err)
	}
	if customer == nil {
		return nil, failure.NotFound("customer")
	}
	return customer, nil
}

// Create validates and stores a new customer, then auto-creates the
// placeholder booking linked by the customer's normalized mobile number.
func (s *CustomerService) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if missing := customer.MissingFields(); len(missing) > 0 {
		return nil, failure.MissingFields(missing)
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if !utils.ValidatePhoneNumber(customer.Mobile) {
		return nil, failure.ValidationError("mobile is not a valid phone number")
	}
	customer.ApplyDefaults()
	customer.Mobile = utils.NormalizePhoneNumber(customer.Mobile)

	if customer.CustomerRef != "" {
		existing, err := s.customers.GetByRef(ctx, customer.CustomerRef)
		if err != nil {
			return nil, failure.StorageUnavailable(err)
		}
		if existing != nil {
			return nil, failure.DuplicateReference(customer.CustomerRef)
		}
	} else {
		ref, err := s.freshCustomerRef(ctx)
		if err != nil {
			return nil, err
		}
		customer.CustomerRef = ref
	}

	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	if err := s.customers.Insert(ctx, customer); err != nil {
		return nil, failure.StorageUnavailable(err)
	}

	booking, err := s.newPlaceholderBooking(customer.Mobile)
	if err != nil {
		return nil, err
	}
	if err := s.bookings.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Str("customerRef", customer.CustomerRef).
			Msg("customer created but placeholder booking insert failed")
		return nil, failure.StorageUnavailable(err)
	}

	return customer, nil
}

// Update replaces a customer record by customerRef. When the update changes
// the mobile number, dependent bookings are re-pointed at the new number as a
// second, independently committed write: a failure there is logged and
// reported through the returned flag but never rolls back the customer
// change.
func (s *CustomerService) Update(ctx context.Context, customer *models.Customer) (*models.Customer, bool, error) {
	if customer.CustomerRef == "" {
		return nil, false, failure.BadRequest("customerRef is required")
	}

	old, err := s.customers.GetByRef(ctx, customer.CustomerRef)
	if err != nil {
		return nil, false, failure.StorageUnavailable(err)
	}
	if old == nil {
		return nil, false, failure.NotFound("customer")
	}

	if missing := customer.MissingFields(); len(missing) > 0 {
		return nil, false, failure.MissingFields(missing)
	}
	if err := customer.Validate(); err != nil {
		return nil, false, err
	}
	if !utils.ValidatePhoneNumber(customer.Mobile) {
		return nil, false, failure.ValidationError("mobile is not a valid phone number")
	}
	customer.ApplyDefaults()
	customer.Mobile = utils.NormalizePhoneNumber(customer.Mobile)
	customer.CreatedAt = old.CreatedAt
	customer.UpdatedAt = time.Now().UTC()

	if err := s.customers.Update(ctx, customer.CustomerRef, customer); err != nil {
		return nil, false, failure.StorageUnavailable(err)
	}

	syncFailed := false
	if !utils.SamePhoneNumber(old.Mobile, customer.Mobile) {
		if _, err := s.bookings.UpdateCustomerRef(ctx, old.Mobile, customer.Mobile); err != nil {
			syncFailed = true
			log.Error().Err(err).
				Str("customerRef", customer.CustomerRef).
				Str("oldMobile", old.Mobile).
				Str("newMobile", customer.Mobile).
				Msg("customer updated but booking reference sync failed")
		}
	}

	return customer, syncFailed, nil
}

// Delete removes a customer and cascades to every booking carrying the
// customer's mobile number. Deleting an unknown customerRef deletes nothing.
func (s *CustomerService) Delete(ctx context.Context, customerRef string) (int64, error) {
	customer, err := s.customers.GetByRef(ctx, customerRef)
	if err != nil {
		return 0, failure.StorageUnavailable(err)
	}
	if customer == nil {
		return 0, failure.NotFound("customer")
	}

	if _, err := s.customers.Delete(ctx, customerRef); err != nil {
		return 0, failure.StorageUnavailable(err)
	}

	deleted, err := s.bookings.DeleteByCustomerRef(ctx, customer.Mobile)
	if err != nil {
		log.Error().Err(err).Str("customerRef", customerRef).
			Msg("customer deleted but booking cascade failed")
		return 0, failure.StorageUnavailable(err)
	}
	return deleted, nil
}

func (s *CustomerService) Filter(ctx context.Context, field, value string) ([]models.Customer, error) {
	if field == "" || value == "" {
		return nil, failure.BadRequest("field and value parameters are required")
	}
	if !customerFilterFields[field] {
		return nil, failure.BadRequest("invalid search field: " + field)
	}
	if field == "mobile" {
		value = utils.NormalizePhoneNumber(value)
	}
	customers, err := s.customers.Filter(ctx, field, value)
	if err != nil {
		return nil, failure.StorageUnavailable(err)
	}
	return customers, nil
}

// SyncBookings reconciles the bookings collection with the customer set:
// bookings pointing at a mobile number no customer owns are removed, and each
// customer without a booking gets a fresh placeholder. Returns the number of
// orphans removed.
func (s *CustomerService) SyncBookings(ctx context.Context) (int64, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return 0, failure.StorageUnavailable(err)
	}

	mobiles := make([]string, 0, len(customers))
	for _, c := range customers {
		mobiles = append(mobiles, c.Mobile)
	}

	removed, err := s.bookings.DeleteOrphans(ctx, mobiles)
	if err != nil {
		return 0, failure.StorageUnavailable(err)
	}

	for _, c := range customers {
		booking, err := s.newPlaceholderBooking(c.Mobile)
		if err != nil {
			return removed, err
		}
		if err := s.bookings.UpsertPlaceholder(ctx, booking); err != nil {
			return removed, failure.StorageUnavailable(err)
		}
	}
	return removed, nil
}

func (s *CustomerService) freshCustomerRef(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		ref, err := utils.NewCustomerRef()
		if err != nil {
			return "", err
		}
		existing, err := s.customers.GetByRef(ctx, ref)
		if err != nil {
			return "", failure.StorageUnavailable(err)
		}
		if existing == nil {
			return ref, nil
		}
	}
	return "", errors.New("could not allocate a unique customer reference")
}

func (s *CustomerService) newPlaceholderBooking(mobile string) (*models.Booking, error) {
	ref, err := utils.NewBookingRef()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &models.Booking{
		BookingRef:     ref,
		CustomerRef:    mobile,
		RoomNumber:     "",
		RoomType:       models.RoomStandard,
		Meal:           models.MealBreakfast,
		NumberOfGuests: 1,
		Status:         models.StatusPending,
		PaymentStatus:  models.PaymentPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
