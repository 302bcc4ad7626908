package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents an invoice issued to a customer, identified by its
// invoice number
type Invoice struct {
	ID             uint64    `json:"id"`
	InvoiceNumber  string    `json:"invoice_number"`
	CustomerID     uint64    `json:"customer_id"`
	BillingPeriod  string    `json:"billing_period"`
	InvoicedAmount string    `json:"invoiced_amount"`
	PaidAmount     string    `json:"paid_amount"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// InvoiceFragment carries the invoice fields resolved from one import row
type InvoiceFragment struct {
	InvoiceNumber  string
	BillingPeriod  string
	InvoicedAmount string
	PaidAmount     string
}

// NormalizeBillingPeriod coerces a bare year-month value into the first day
// of that month: "2024-05" becomes "2024-05-01". Any other value is passed
// through unmodified.
func NormalizeBillingPeriod(period string) string {
	if len(period) == 7 {
		return period + "-01"
	}
	return period
}

// ParseAmount validates a monetary value and returns its canonical string
// form. An empty value is treated as zero.
func ParseAmount(raw string) (string, error) {
	if raw == "" {
		return "0", nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}
