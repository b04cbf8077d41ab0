package models

import (
	"time"

	"gorm.io/datatypes"
)

// Legacy relational schema. The back office no longer serves requests from
// MySQL, but the tables are still read by the migration command and their
// column names differ from the document fields (name vs customerName, phone
// vs mobile, customerPhone vs customerRef, roomNo vs roomNumber).

type LegacyCustomer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"column:name;size:100;not null" json:"name"`
	Gender      string    `gorm:"column:gender;size:10;not null" json:"gender"`
	Email       string    `gorm:"column:email;size:100" json:"email"`
	Nationality string    `gorm:"column:nationality;size:50" json:"nationality"`
	Address     string    `gorm:"column:address;type:text" json:"address"`
	Phone       string    `gorm:"column:phone;size:20;uniqueIndex;not null" json:"phone"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (LegacyCustomer) TableName() string { return "customers" }

type LegacyBooking struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CustomerPhone string         `gorm:"column:customerPhone;size:20;not null" json:"customerPhone"`
	CheckInDate   datatypes.Date `gorm:"column:checkInDate;not null" json:"checkInDate"`
	CheckOutDate  datatypes.Date `gorm:"column:checkOutDate;not null" json:"checkOutDate"`
	RoomType      string         `gorm:"column:roomType;size:20;not null" json:"roomType"`
	RoomNo        string         `gorm:"column:roomNo;size:10;not null" json:"roomNo"`
	Meal          string         `gorm:"column:meal;size:20;not null" json:"meal"`
	NoOfDays      int            `gorm:"column:noOfDays;not null" json:"noOfDays"`
	PaidTax       float64        `gorm:"column:paidTax;type:decimal(10,2);not null" json:"paidTax"`
	ActualTotal   float64        `gorm:"column:actualTotal;type:decimal(10,2);not null" json:"actualTotal"`
	TotalCost     float64        `gorm:"column:totalCost;type:decimal(10,2);not null" json:"totalCost"`
	CreatedAt     time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (LegacyBooking) TableName() string { return "bookings" }
