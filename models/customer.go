package models

import (
	"time"
)

// Gender values accepted on a customer record.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// ID proof types accepted on a customer record.
const (
	IDProofDrivingLicence = "DrivingLicence"
	IDProofPassport       = "Passport"
	IDProofNationalID     = "NationalID"
)

// Customer is a guest profile stored in the customers collection.
// CustomerRef is the unique, immutable identifier; Mobile is kept normalized
// (digits only, no leading zeros) because bookings join on it.
type Customer struct {
	CustomerRef  string    `bson:"customerRef" json:"customerRef"`
	CustomerName string    `bson:"customerName" json:"customerName"`
	MotherName   string    `bson:"motherName" json:"motherName"`
	Gender       string    `bson:"gender" json:"gender"`
	PostCode     string    `bson:"postCode" json:"postCode"`
	Mobile       string    `bson:"mobile" json:"mobile"`
	Email        string    `bson:"email" json:"email"`
	Nationality  string    `bson:"nationality" json:"nationality"`
	IDProofType  string    `bson:"idProofType" json:"idProofType"`
	IDNumber     string    `bson:"idNumber" json:"idNumber"`
	Address      string    `bson:"address" json:"address"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// MissingFields returns the names of required customer fields that are empty.
func (c *Customer) MissingFields() []string {
	var missing []string
	if c.CustomerName == "" {
		missing = append(missing, "customerName")
	}
	if c.Gender == "" {
		missing = append(missing, "gender")
	}
	if c.Mobile == "" {
		missing = append(missing, "mobile")
	}
	if c.Email == "" {
		missing = append(missing, "email")
	}
	return missing
}

// Validate checks enum fields after the required set is satisfied.
func (c *Customer) Validate() error {
	switch c.Gender {
	case GenderMale, GenderFemale:
	default:
		return errInvalidEnum("gender", c.Gender)
	}
	switch c.IDProofType {
	case "", IDProofDrivingLicence, IDProofPassport, IDProofNationalID:
	default:
		return errInvalidEnum("idProofType", c.IDProofType)
	}
	return nil
}

// ApplyDefaults fills optional profile fields the way the document schema
// declares them.
func (c *Customer) ApplyDefaults() {
	if c.Nationality == "" {
		c.Nationality = "American"
	}
	if c.IDProofType == "" {
		c.IDProofType = IDProofDrivingLicence
	}
}
