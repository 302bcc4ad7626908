package persistence

import (
	"context"

	"github.com/jdvillegas/billing-processor/internal/domain/entity"
)

// TransactionRepository defines persistence operations for transactions
type TransactionRepository interface {
	// InsertIgnoreConflict inserts the transaction for the given invoice,
	// silently no-oping when the external transaction id already exists.
	// Reports whether a row was actually written.
	InsertIgnoreConflict(ctx context.Context, invoiceID uint64, fragment entity.TransactionFragment) (inserted bool, err error)
}
