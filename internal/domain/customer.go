package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w{2,}$`)
	phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// Customer represents a registered bank customer
type Customer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	DateOfBirth time.Time `json:"dateOfBirth"`
}

// NewCustomer validates the contact details and creates a customer with a
// fresh unique ID. It fails with ErrInvalidCustomer if the email or phone
// number is malformed.
func NewCustomer(name, email, phoneNumber string, dateOfBirth time.Time) (Customer, error) {
	if !emailPattern.MatchString(email) || !phonePattern.MatchString(phoneNumber) {
		return Customer{}, ErrInvalidCustomer
	}

	return Customer{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		PhoneNumber: phoneNumber,
		DateOfBirth: dateOfBirth,
	}, nil
}
