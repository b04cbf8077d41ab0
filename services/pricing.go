package services

import (
	"math"
	"time"

	"hotel-backoffice/failure"
	"hotel-backoffice/models"
)

// Tariff holds the fixed per-night cost and tax for a room type.
type Tariff struct {
	CostPerNight float64
	TaxPerNight  float64
}

// tariffTable is the fixed rate card. Unknown room types are rejected, never
// silently billed at the Standard rate.
var tariffTable = map[string]Tariff{
	models.RoomStandard:  {CostPerNight: 100, TaxPerNight: 10},
	models.RoomDeluxe:    {CostPerNight: 150, TaxPerNight: 15},
	models.RoomSuite:     {CostPerNight: 250, TaxPerNight: 25},
	models.RoomExecutive: {CostPerNight: 300, TaxPerNight: 30},
}

// BookingCost is the set of derived financial fields on a booking.
// TotalAmount duplicates TotalCost; reports built on the old schema still
// read it.
type BookingCost struct {
	NoOfDays    int
	PaidTax     float64
	ActualTotal float64
	TotalCost   float64
	TotalAmount float64
}

// ComputeBookingCost derives the financial fields of a stay from its dates
// and room type. Pure: same inputs always produce the same outputs, and
// nothing is persisted here.
//
// A fractional-day stay rounds up, so 10:00 one day to 09:00 the next still
// counts as one day.
func ComputeBookingCost(checkIn, checkOut *time.Time, roomType string) (BookingCost, error) {
	if checkIn == nil || checkOut == nil {
		return BookingCost{}, failure.InvalidDateRange("checkInDate and checkOutDate are required")
	}
	if !checkOut.After(*checkIn) {
		return BookingCost{}, failure.InvalidDateRange("checkOutDate must be after checkInDate")
	}

	tariff, ok := tariffTable[roomType]
	if !ok {
		return BookingCost{}, failure.ValidationError("unknown room type: " + roomType)
	}

	days := int(math.Ceil(checkOut.Sub(*checkIn).Hours() / 24))
	if days < 1 {
		days = 1
	}

	actualTotal := float64(days) * tariff.CostPerNight
	paidTax := float64(days) * tariff.TaxPerNight
	totalCost := actualTotal + paidTax

	return BookingCost{
		NoOfDays:    days,
		PaidTax:     paidTax,
		ActualTotal: actualTotal,
		TotalCost:   totalCost,
		TotalAmount: totalCost,
	}, nil
}

// ApplyCost writes the derived fields onto a booking.
func ApplyCost(b *models.Booking, cost BookingCost) {
	b.NoOfDays = cost.NoOfDays
	b.PaidTax = cost.PaidTax
	b.ActualTotal = cost.ActualTotal
	b.TotalCost = cost.TotalCost
	b.TotalAmount = cost.TotalAmount
}
