package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

// randomDigits returns n decimal digits, first digit never zero so the
// reference keeps a fixed width.
func randomDigits(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		max := big.NewInt(10)
		if i == 0 {
			max = big.NewInt(9)
		}
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		d := num.Int64()
		if i == 0 {
			d++
		}
		sb.WriteByte(byte('0' + d))
	}
	return sb.String(), nil
}

// NewCustomerRef generates a customer reference like "CUST-4821".
func NewCustomerRef() (string, error) {
	digits, err := randomDigits(4)
	if err != nil {
		return "", err
	}
	return "CUST-" + digits, nil
}

// NewBookingRef generates a booking reference like "BOOK-4821".
func NewBookingRef() (string, error) {
	digits, err := randomDigits(4)
	if err != nil {
		return "", err
	}
	return "BOOK-" + digits, nil
}
