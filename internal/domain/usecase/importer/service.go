package importer

import (
	"context"

	"github.com/jdvillegas/billing-processor/internal/domain/entity"
	errs "github.com/jdvillegas/billing-processor/internal/domain/error"
	coreport "github.com/jdvillegas/billing-processor/internal/domain/port/core"
	"github.com/jdvillegas/billing-processor/internal/domain/port/persistence"
	"github.com/jdvillegas/billing-processor/internal/domain/port/usecase"
)

// Service orchestrates the bulk-import pipelines. Rows are processed
// strictly in order: each row's invoice upsert needs the customer surrogate
// id of the same row, and its transaction insert needs the invoice surrogate
// id, so there is no batching and no parallelism across rows.
type Service struct {
	customers    persistence.CustomerRepository
	invoices     persistence.InvoiceRepository
	transactions persistence.TransactionRepository
	logger       coreport.Logger
}

// NewService creates a new import service
func NewService(
	customers persistence.CustomerRepository,
	invoices persistence.InvoiceRepository,
	transactions persistence.TransactionRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		customers:    customers,
		invoices:     invoices,
		transactions: transactions,
		logger:       logger,
	}
}

// ImportBilling processes each row as customer upsert, invoice upsert, then
// transaction conflict-ignore insert. Rows are not pre-validated: a row
// missing a required derived field fails at the write, which aborts the whole
// run. There is no transaction boundary across rows, so rows processed before
// the failure stay committed.
func (s *Service) ImportBilling(ctx context.Context, src usecase.RowSource) (*usecase.BillingImportResult, error) {
	result := &usecase.BillingImportResult{}

	err := src.ForEach(func(row usecase.Row) error {
		result.Rows++
		rowNum := int(result.Rows)

		customer := ResolveCustomer(row)
		customerID, inserted, err := s.customers.UpsertByIdentification(ctx, customer)
		if err != nil {
			return errs.NewImportError(rowNum, "customer", customer.IdentificationNumber, err)
		}
		if inserted {
			result.Customers++
		}

		invoice := ResolveInvoice(row)
		invoice.BillingPeriod = entity.NormalizeBillingPeriod(invoice.BillingPeriod)
		if invoice.InvoicedAmount, err = entity.ParseAmount(invoice.InvoicedAmount); err != nil {
			return errs.NewImportError(rowNum, "invoice", invoice.InvoiceNumber, err)
		}
		if invoice.PaidAmount, err = entity.ParseAmount(invoice.PaidAmount); err != nil {
			return errs.NewImportError(rowNum, "invoice", invoice.InvoiceNumber, err)
		}
		invoiceID, inserted, err := s.invoices.UpsertByNumber(ctx, customerID, invoice)
		if err != nil {
			return errs.NewImportError(rowNum, "invoice", invoice.InvoiceNumber, err)
		}
		if inserted {
			result.Invoices++
		}

		transaction := ResolveTransaction(row)
		transaction.Status = entity.MapStatus(transaction.Status)
		transaction.Type = entity.MapType(transaction.Type)
		if transaction.Amount, err = entity.ParseAmount(transaction.Amount); err != nil {
			return errs.NewImportError(rowNum, "transaction", transaction.TransactionID, err)
		}
		if _, err := s.transactions.InsertIgnoreConflict(ctx, invoiceID, transaction); err != nil {
			return errs.NewImportError(rowNum, "transaction", transaction.TransactionID, err)
		}
		// The transaction counter increments even when the insert was
		// ignored on conflict; customer and invoice counters don't.
		result.Transactions++
		return nil
	})
	if err != nil {
		s.logger.Error("Billing import aborted", map[string]any{
			"rows_processed": result.Rows,
			"error":          err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Billing import completed", map[string]any{
		"rows":         result.Rows,
		"customers":    result.Customers,
		"invoices":     result.Invoices,
		"transactions": result.Transactions,
	})
	return result, nil
}

// ImportCustomers is the legacy single-entity import. Rows whose
// identification number is missing or non-numeric are dropped silently
// (counted, never reported individually); the surviving records are written
// in one parameterized batch upsert.
func (s *Service) ImportCustomers(ctx context.Context, src usecase.RowSource) (*usecase.CustomerImportResult, error) {
	result := &usecase.CustomerImportResult{}
	var fragments []entity.CustomerFragment

	err := src.ForEach(func(row usecase.Row) error {
		result.Rows++
		fragment := ResolveCustomer(row)
		if fragment.Name == "" {
			// Line-oriented files carry the identifier only
			fragment.Name = fragment.IdentificationNumber
		}
		if !fragment.IsNumericIdentification() {
			result.Skipped++
			return nil
		}
		fragments = append(fragments, fragment)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(fragments) == 0 {
		return nil, errs.ErrEmptyImportFile
	}

	// A single multi-row upsert statement cannot touch the same key twice,
	// so duplicate identifications collapse first, last occurrence wins.
	fragments = DeduplicateCustomers(fragments)

	created, err := s.customers.BatchUpsert(ctx, fragments)
	if err != nil {
		s.logger.Error("Customer batch upsert failed", map[string]any{
			"rows":  result.Rows,
			"error": err.Error(),
		})
		return nil, err
	}
	result.Created = created

	s.logger.Info("Customer import completed", map[string]any{
		"rows":    result.Rows,
		"created": result.Created,
		"skipped": result.Skipped,
	})
	return result, nil
}

// NormalizeCustomers resolves rows with the legacy validation rules and
// deduplicates them by identification number, last occurrence winning. Used
// by the normalize-only export; the multi-entity import relies on the
// store's own conflict resolution instead.
func (s *Service) NormalizeCustomers(ctx context.Context, src usecase.RowSource) ([]entity.CustomerFragment, error) {
	var records []entity.CustomerFragment

	err := src.ForEach(func(row usecase.Row) error {
		fragment := ResolveCustomer(row)
		if fragment.Name == "" {
			fragment.Name = fragment.IdentificationNumber
		}
		if !fragment.IsNumericIdentification() {
			return nil
		}
		records = append(records, fragment)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, errs.ErrEmptyImportFile
	}

	return DeduplicateCustomers(records), nil
}
