// Package domain contains the invoice record shapes, line-item totals and
// validation rules.
package domain

import "time"

// Status represents invoice payment states.
type Status string

const (
	StatusPaid   Status = "paid"
	StatusUnpaid Status = "unpaid"
)

// InvoiceItem is one line of an invoice. TaxRate is a percentage: 10 means
// 10%. ID is a synthetic per-row identifier kept for list stability; it has
// no meaning beyond that.
type InvoiceItem struct {
	ID          string  `json:"id,omitempty"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	TaxRate     float64 `json:"taxRate"`
}

// Invoice is the persisted record. Subtotal, TaxTotal and GrandTotal are
// derived from Items at creation. CustomerID is not checked against the
// customer store; an invoice can reference a customer that no longer exists.
type Invoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customerId"`
	Date       string        `json:"date"`
	DueDate    string        `json:"dueDate"`
	Items      []InvoiceItem `json:"items"`
	Subtotal   float64       `json:"subtotal"`
	TaxTotal   float64       `json:"taxTotal"`
	GrandTotal float64       `json:"grandTotal"`
	Status     Status        `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// CreateInvoice is the input to Repository.Add: an Invoice minus the
// generated fields.
type CreateInvoice struct {
	CustomerID string
	Date       string
	DueDate    string
	Items      []InvoiceItem
	Subtotal   float64
	TaxTotal   float64
	GrandTotal float64
	Status     Status
}
