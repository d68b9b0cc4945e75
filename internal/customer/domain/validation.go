package domain

import (
	"strings"

	"github.com/smallbiznis/folio/internal/validate"
)

var personalMessages = map[string]string{
	"name": "Name is too short",
}

// ValidateAddress checks a single address. Fields are trimmed before the
// rules run, and the returned Address carries the trimmed values.
func ValidateAddress(in AddressInput) (Address, validate.FieldErrors) {
	in = trimAddress(in)
	if errs := validate.Struct(in, nil); errs != nil {
		return Address{}, errs
	}
	return Address{
		Line1:      in.Line1,
		Line2:      in.Line2,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Country:    in.Country,
	}, nil
}

// ValidatePersonalInfo checks the personal step. This covers the field rules
// and the email-or-phone cross-field rule only; the duplicate-email check is
// a separate repository lookup the caller sequences afterwards, because it
// reads stored state.
func ValidatePersonalInfo(in PersonalInfoInput) (PersonalInfo, validate.FieldErrors) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if errs := validate.Struct(in, personalMessages); errs != nil {
		return PersonalInfo{}, errs
	}
	if in.Email == "" && in.Phone == "" {
		errs := make(validate.FieldErrors)
		errs.Add("email", "Provide email or phone")
		return PersonalInfo{}, errs
	}
	return PersonalInfo{Name: in.Name, Email: in.Email, Phone: in.Phone}, nil
}

// ValidateAddressInfo checks the address step. Both addresses are validated
// independently; CopyBillingToShipping does not relax the shipping rules
// here, it only decides which address the transform persists.
func ValidateAddressInfo(in AddressInfoInput) (AddressInfo, validate.FieldErrors) {
	in.BillingAddress = trimAddress(in.BillingAddress)
	in.ShippingAddress = trimAddress(in.ShippingAddress)

	if errs := validate.Struct(in, nil); errs != nil {
		return AddressInfo{}, errs
	}
	return AddressInfo{
		BillingAddress:        toAddress(in.BillingAddress),
		CopyBillingToShipping: in.CopyBillingToShipping,
		ShippingAddress:       toAddress(in.ShippingAddress),
	}, nil
}

// NewRecord builds the creation record from validated steps. Shipping is
// taken verbatim from billing when the copy flag is set.
func NewRecord(personal PersonalInfo, info AddressInfo) CreateCustomer {
	shipping := info.ShippingAddress
	if info.CopyBillingToShipping {
		shipping = info.BillingAddress
	}
	return CreateCustomer{
		Name:            personal.Name,
		Email:           personal.Email,
		Phone:           personal.Phone,
		BillingAddress:  info.BillingAddress,
		ShippingAddress: shipping,
	}
}

func trimAddress(in AddressInput) AddressInput {
	return AddressInput{
		Line1:      strings.TrimSpace(in.Line1),
		Line2:      strings.TrimSpace(in.Line2),
		City:       strings.TrimSpace(in.City),
		State:      strings.TrimSpace(in.State),
		PostalCode: strings.TrimSpace(in.PostalCode),
		Country:    strings.TrimSpace(in.Country),
	}
}

func toAddress(in AddressInput) Address {
	return Address{
		Line1:      in.Line1,
		Line2:      in.Line2,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Country:    in.Country,
	}
}
