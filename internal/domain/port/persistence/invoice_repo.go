package persistence

import (
	"context"

	"github.com/jdvillegas/billing-processor/internal/domain/entity"
)

// InvoiceRepository defines persistence operations for invoices
type InvoiceRepository interface {
	// UpsertByNumber inserts the invoice for the given customer or, on
	// natural-key conflict, updates its invoiced amount only. Reports the
	// surrogate id and whether a new row was written.
	UpsertByNumber(ctx context.Context, customerID uint64, fragment entity.InvoiceFragment) (id uint64, inserted bool, err error)
}
