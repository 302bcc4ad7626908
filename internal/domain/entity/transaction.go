package entity

import "time"

// Canonical transaction statuses. Unrecognized source values are carried
// through uppercased rather than rejected.
const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Canonical transaction types
const (
	TypeInvoicePayment = "INVOICE_PAYMENT"
)

// Transaction represents a payment transaction applied to an invoice. The
// transaction ID is externally supplied, never generated.
type Transaction struct {
	ID            uint64    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	InvoiceID     uint64    `json:"invoice_id"`
	Timestamp     string    `json:"timestamp"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	Type          string    `json:"type"`
	Platform      string    `json:"platform"`
	CreatedAt     time.Time `json:"created_at"`
}

// TransactionFragment carries the transaction fields resolved from one
// import row
type TransactionFragment struct {
	TransactionID string
	Timestamp     string
	Amount        string
	Status        string
	Type          string
	Platform      string
}
