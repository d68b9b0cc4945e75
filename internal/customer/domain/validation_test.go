package domain

import (
	"testing"
)

func validAddressInput() AddressInput {
	return AddressInput{
		Line1:      "12 High Street",
		Line2:      "Flat 3",
		City:       "Bristol",
		State:      "BRS",
		PostalCode: "BS1 4DJ",
		Country:    "GB",
	}
}

func TestValidateAddress(t *testing.T) {
	address, errs := ValidateAddress(validAddressInput())
	if errs != nil {
		t.Fatalf("expected valid address, got %v", errs)
	}
	if address.Line1 != "12 High Street" || address.Country != "GB" {
		t.Fatalf("unexpected address %+v", address)
	}
}

func TestValidateAddressTrimsFields(t *testing.T) {
	in := validAddressInput()
	in.City = "  Bristol  "
	in.Line2 = " "

	address, errs := ValidateAddress(in)
	if errs != nil {
		t.Fatalf("expected valid address, got %v", errs)
	}
	if address.City != "Bristol" {
		t.Fatalf("expected trimmed city, got %q", address.City)
	}
	if address.Line2 != "" {
		t.Fatalf("expected blank line2 to normalize empty, got %q", address.Line2)
	}
}

func TestValidateAddressFieldErrors(t *testing.T) {
	in := validAddressInput()
	in.Line1 = ""
	in.PostalCode = "12"

	_, errs := ValidateAddress(in)
	if errs == nil {
		t.Fatal("expected field errors")
	}
	if errs["line1"] != "Required" {
		t.Fatalf("expected required error on line1, got %q", errs["line1"])
	}
	if errs["postalCode"] != "Invalid" {
		t.Fatalf("expected invalid error on postalCode, got %q", errs["postalCode"])
	}
	if _, ok := errs["line2"]; ok {
		t.Fatal("line2 is optional, should not error")
	}
}

func TestValidatePersonalInfo(t *testing.T) {
	info, errs := ValidatePersonalInfo(PersonalInfoInput{
		Name:  "Grace Hopper",
		Email: "grace@example.com",
	})
	if errs != nil {
		t.Fatalf("expected valid personal info, got %v", errs)
	}
	if info.Email != "grace@example.com" || info.Phone != "" {
		t.Fatalf("unexpected personal info %+v", info)
	}
}

func TestValidatePersonalInfoNameTooShort(t *testing.T) {
	_, errs := ValidatePersonalInfo(PersonalInfoInput{Name: "G", Phone: "020 7946 0958"})
	if errs["name"] != "Name is too short" {
		t.Fatalf("expected name error, got %v", errs)
	}
}

func TestValidatePersonalInfoEmailOrPhoneRequired(t *testing.T) {
	_, errs := ValidatePersonalInfo(PersonalInfoInput{Name: "Grace Hopper"})
	if errs == nil {
		t.Fatal("expected field errors")
	}
	if errs["email"] != "Provide email or phone" {
		t.Fatalf("expected cross-field error on email path, got %v", errs)
	}
}

func TestValidatePersonalInfoBadEmail(t *testing.T) {
	_, errs := ValidatePersonalInfo(PersonalInfoInput{Name: "Grace Hopper", Email: "not-an-email"})
	if errs["email"] != "Invalid email" {
		t.Fatalf("expected email format error, got %v", errs)
	}
}

func TestValidatePersonalInfoPhone(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"0207946", true},
		{"+44 (0) 20-7946", true},
		{"+123456", false}, // leading + does not count toward the minimum
		{"123456", false},
		{"call me", false},
	}
	for _, tc := range cases {
		_, errs := ValidatePersonalInfo(PersonalInfoInput{Name: "Grace Hopper", Phone: tc.phone})
		if tc.valid && errs != nil {
			t.Fatalf("phone %q: expected valid, got %v", tc.phone, errs)
		}
		if !tc.valid && errs["phone"] != "Invalid phone number" {
			t.Fatalf("phone %q: expected phone error, got %v", tc.phone, errs)
		}
	}
}

func TestValidateAddressInfoNestedPaths(t *testing.T) {
	in := AddressInfoInput{
		BillingAddress:  validAddressInput(),
		ShippingAddress: validAddressInput(),
	}
	in.ShippingAddress.City = ""

	_, errs := ValidateAddressInfo(in)
	if errs == nil {
		t.Fatal("expected field errors")
	}
	if errs["shippingAddress.city"] != "Required" {
		t.Fatalf("expected nested path error, got %v", errs)
	}
	if _, ok := errs["billingAddress.city"]; ok {
		t.Fatal("billing address is valid, should not error")
	}
}

func TestNewRecordCopiesBillingToShipping(t *testing.T) {
	billing := Address{Line1: "1 Billing Rd", City: "Leeds", State: "LS", PostalCode: "LS1", Country: "GB"}
	shipping := Address{Line1: "9 Shipping Ln", City: "York", State: "YK", PostalCode: "YO1", Country: "GB"}

	record := NewRecord(
		PersonalInfo{Name: "Grace Hopper", Email: "grace@example.com"},
		AddressInfo{BillingAddress: billing, CopyBillingToShipping: true, ShippingAddress: shipping},
	)
	if record.ShippingAddress != billing {
		t.Fatalf("expected shipping copied from billing, got %+v", record.ShippingAddress)
	}

	record = NewRecord(
		PersonalInfo{Name: "Grace Hopper", Email: "grace@example.com"},
		AddressInfo{BillingAddress: billing, ShippingAddress: shipping},
	)
	if record.ShippingAddress != shipping {
		t.Fatalf("expected shipping kept, got %+v", record.ShippingAddress)
	}
}
