package domain

import (
	"strings"

	"github.com/smallbiznis/folio/internal/validate"
)

type InvoiceItemInput struct {
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"min=1"`
	Price       float64 `json:"price" validate:"min=0"`
	TaxRate     float64 `json:"taxRate" validate:"min=0,max=100"`
}

// InvoiceInput is the raw invoice form submission. Date and DueDate are ISO
// date strings; only presence is validated, the form widget owns the format.
type InvoiceInput struct {
	CustomerID string             `json:"customerId" validate:"required"`
	Date       string             `json:"date" validate:"required"`
	DueDate    string             `json:"dueDate" validate:"required"`
	Items      []InvoiceItemInput `json:"items" validate:"min=1,dive"`
	Status     Status             `json:"status" validate:"oneof=paid unpaid"`
}

var inputMessages = map[string]string{
	"customerId": "Select a customer",
	"items":      "Add at least one item",
	"quantity":   "Min 1",
	"price":      "Min 0",
}

// ValidateInput checks an invoice submission. An empty status defaults to
// unpaid before the rules run.
func ValidateInput(in InvoiceInput) (InvoiceInput, validate.FieldErrors) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.Date = strings.TrimSpace(in.Date)
	in.DueDate = strings.TrimSpace(in.DueDate)
	for i := range in.Items {
		in.Items[i].Description = strings.TrimSpace(in.Items[i].Description)
	}
	if in.Status == "" {
		in.Status = StatusUnpaid
	}

	if errs := validate.Struct(in, inputMessages); errs != nil {
		return InvoiceInput{}, errs
	}
	return in, nil
}
