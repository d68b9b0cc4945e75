// Package seed bootstraps a demo customer and invoice on first start so a
// fresh install has something to show. It goes through the services, not the
// repositories, so the demo data passes the same validation as user input.
package seed

import (
	"context"

	customerdomain "github.com/smallbiznis/folio/internal/customer/domain"
	invoicedomain "github.com/smallbiznis/folio/internal/invoice/domain"
)

const demoEmail = "ada@example.com"

// EnsureDemoData creates the demo customer and one invoice when the book is
// empty. It is idempotent: a second start finds the customer and does
// nothing.
func EnsureDemoData(ctx context.Context, customers customerdomain.Service, invoices invoicedomain.Service) error {
	existing, err := customers.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	address := customerdomain.AddressInput{
		Line1:      "1 Analytical Way",
		City:       "London",
		State:      "LDN",
		PostalCode: "EC1A",
		Country:    "GB",
	}
	customer, err := customers.Create(ctx, customerdomain.FormInput{
		Personal: customerdomain.PersonalInfoInput{
			Name:  "Ada Lovelace",
			Email: demoEmail,
		},
		AddressInfo: customerdomain.AddressInfoInput{
			BillingAddress:        address,
			CopyBillingToShipping: true,
			ShippingAddress:       address,
		},
	})
	if err != nil {
		return err
	}

	_, err = invoices.Create(ctx, invoicedomain.InvoiceInput{
		CustomerID: customer.ID,
		Date:       "2024-01-01",
		DueDate:    "2024-01-31",
		Items: []invoicedomain.InvoiceItemInput{
			{Description: "Consulting", Quantity: 2, Price: 10, TaxRate: 10},
		},
		Status: invoicedomain.StatusUnpaid,
	})
	return err
}
