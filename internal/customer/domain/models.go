// Package domain contains the customer record shapes and validation rules.
package domain

import "time"

// Address is a postal address embedded by value in Customer. It has no
// identity of its own.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Customer is the persisted record. ID and CreatedAt are generated by the
// repository at creation and never change afterwards. Email and Phone are
// optional individually, but at least one is always present on a record that
// passed validation.
type Customer struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	BillingAddress  Address   `json:"billingAddress"`
	ShippingAddress Address   `json:"shippingAddress"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateCustomer is the input to Repository.Add: a Customer minus the
// generated fields. Empty Email/Phone mean absent, never empty string on the
// stored record.
type CreateCustomer struct {
	Name            string
	Email           string
	Phone           string
	BillingAddress  Address
	ShippingAddress Address
}

// PersonalInfo is the validated output of the personal step.
type PersonalInfo struct {
	Name  string
	Email string
	Phone string
}

// AddressInfo is the validated output of the address step.
type AddressInfo struct {
	BillingAddress        Address
	CopyBillingToShipping bool
	ShippingAddress       Address
}
