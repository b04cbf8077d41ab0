package models

import (
	"fmt"
	"time"

	"hotel-backoffice/failure"
)

// Room types carrying a tariff.
const (
	RoomStandard  = "Standard"
	RoomDeluxe    = "Deluxe"
	RoomSuite     = "Suite"
	RoomExecutive = "Executive"
)

// Meal plans.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealNone      = "None"
)

// Booking lifecycle states.
const (
	StatusPending    = "Pending"
	StatusConfirmed  = "Confirmed"
	StatusCheckedIn  = "Checked In"
	StatusCheckedOut = "Checked Out"
	StatusCancelled  = "Cancelled"
)

// Payment states.
const (
	PaymentPending  = "Pending"
	PaymentPaid     = "Paid"
	PaymentRefunded = "Refunded"
)

// Booking is a reservation stored in the bookings collection. CustomerRef
// stores the owning customer's normalized mobile number, not the customer's
// CustomerRef identifier; that is the join key the whole system uses.
// NoOfDays and the four monetary fields are derived by the cost calculator
// and never entered independently.
type Booking struct {
	BookingRef      string     `bson:"bookingRef" json:"bookingRef"`
	CustomerRef     string     `bson:"customerRef" json:"customerRef"`
	RoomNumber      string     `bson:"roomNumber" json:"roomNumber"`
	RoomType        string     `bson:"roomType" json:"roomType"`
	Meal            string     `bson:"meal" json:"meal"`
	NumberOfGuests  int        `bson:"numberOfGuests" json:"numberOfGuests"`
	CheckInDate     *time.Time `bson:"checkInDate" json:"checkInDate"`
	CheckOutDate    *time.Time `bson:"checkOutDate" json:"checkOutDate"`
	NoOfDays        int        `bson:"noOfDays" json:"noOfDays"`
	PaidTax         float64    `bson:"paidTax" json:"paidTax"`
	ActualTotal     float64    `bson:"actualTotal" json:"actualTotal"`
	TotalCost       float64    `bson:"totalCost" json:"totalCost"`
	TotalAmount     float64    `bson:"totalAmount" json:"totalAmount"`
	Status          string     `bson:"status" json:"status"`
	PaymentStatus   string     `bson:"paymentStatus" json:"paymentStatus"`
	SpecialRequests string     `bson:"specialRequests" json:"specialRequests"`
	Notes           string     `bson:"notes" json:"notes"`
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// MissingFields returns the names of required booking fields that are empty.
func (b *Booking) MissingFields() []string {
	var missing []string
	if b.CustomerRef == "" {
		missing = append(missing, "customerRef")
	}
	if b.RoomNumber == "" {
		missing = append(missing, "roomNumber")
	}
	if b.CheckInDate == nil {
		missing = append(missing, "checkInDate")
	}
	if b.CheckOutDate == nil {
		missing = append(missing, "checkOutDate")
	}
	if b.NumberOfGuests == 0 {
		missing = append(missing, "numberOfGuests")
	}
	if b.RoomType == "" {
		missing = append(missing, "roomType")
	}
	if b.TotalAmount == 0 {
		missing = append(missing, "totalAmount")
	}
	return missing
}

// Validate checks enum and range constraints after the required set is
// satisfied.
func (b *Booking) Validate() error {
	switch b.RoomType {
	case RoomStandard, RoomDeluxe, RoomSuite, RoomExecutive:
	default:
		return errInvalidEnum("roomType", b.RoomType)
	}
	switch b.Meal {
	case "", MealBreakfast, MealLunch, MealDinner, MealNone:
	default:
		return errInvalidEnum("meal", b.Meal)
	}
	switch b.Status {
	case "", StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
	default:
		return errInvalidEnum("status", b.Status)
	}
	switch b.PaymentStatus {
	case "", PaymentPending, PaymentPaid, PaymentRefunded:
	default:
		return errInvalidEnum("paymentStatus", b.PaymentStatus)
	}
	if b.NumberOfGuests < 1 {
		return failure.ValidationError("numberOfGuests must be at least 1")
	}
	return nil
}

// ApplyDefaults fills enum defaults the way the document schema declares them.
func (b *Booking) ApplyDefaults() {
	if b.Meal == "" {
		b.Meal = MealBreakfast
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentPending
	}
}

func errInvalidEnum(field, value string) error {
	return failure.ValidationError(fmt.Sprintf("invalid value %q for %s", value, field))
}
