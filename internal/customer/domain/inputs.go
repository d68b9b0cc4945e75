package domain

// Raw form input, exactly as the form hands it over. Validation rules live
// on the struct tags; messages come from the validate package.

type AddressInput struct {
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postalCode" validate:"min=3"`
	Country    string `json:"country" validate:"required"`
}

type PersonalInfoInput struct {
	Name  string `json:"name" validate:"min=2"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,phone"`
}

type AddressInfoInput struct {
	BillingAddress        AddressInput `json:"billingAddress"`
	CopyBillingToShipping bool         `json:"copyBillingToShipping"`
	ShippingAddress       AddressInput `json:"shippingAddress"`
}

// FormInput is the full multi-step submission.
type FormInput struct {
	Personal    PersonalInfoInput `json:"personal"`
	AddressInfo AddressInfoInput  `json:"addressInfo"`
}
