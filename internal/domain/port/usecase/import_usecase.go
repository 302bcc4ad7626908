package usecase

import (
	"context"

	"github.com/jdvillegas/billing-processor/internal/domain/entity"
)

// Row is one parsed record of an uploaded file: column name to raw value.
// Line-oriented files surface each line under the implicit
// "identification_number" field.
type Row map[string]string

// RowSource yields the rows of an uploaded file one at a time. The delimited
// implementation streams, so the visitor must not retain rows across calls
// unless it copies them. A non-nil error from fn stops iteration and is
// returned unchanged; a read failure aborts with the read error.
type RowSource interface {
	ForEach(fn func(Row) error) error
}

// BillingImportResult aggregates the counters of one multi-entity import run.
// Customer and invoice counters only track rows actually written; the
// transaction counter increments once per processed row regardless of
// conflict-ignore, preserving the observed reporting behavior.
type BillingImportResult struct {
	Rows         int64 `json:"rows"`
	Customers    int64 `json:"customers"`
	Invoices     int64 `json:"invoices"`
	Transactions int64 `json:"transactions"`
}

// CustomerImportResult aggregates the counters of one legacy customer import.
// Skipped rows are counted but never reported individually.
type CustomerImportResult struct {
	Rows    int64 `json:"rows"`
	Created int64 `json:"created"`
	Skipped int64 `json:"skipped"`
}

// ImportUseCase defines the bulk-import operations
type ImportUseCase interface {
	// ImportBilling processes rows strictly in order, upserting customer,
	// then invoice, then transaction per row. The first row failure aborts
	// the run; rows committed before it stay committed.
	ImportBilling(ctx context.Context, src RowSource) (*BillingImportResult, error)

	// ImportCustomers is the legacy single-entity path: rows failing
	// resolution or the numeric-identifier check are silently dropped, the
	// rest are written in one parameterized batch upsert.
	ImportCustomers(ctx context.Context, src RowSource) (*CustomerImportResult, error)

	// NormalizeCustomers resolves and deduplicates rows by identification
	// number, last occurrence winning, and returns the surviving records in
	// first-seen key order.
	NormalizeCustomers(ctx context.Context, src RowSource) ([]entity.CustomerFragment, error)
}
