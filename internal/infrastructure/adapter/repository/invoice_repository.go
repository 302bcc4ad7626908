package repository

import (
	"context"
	"fmt"

	"github.com/jdvillegas/billing-processor/internal/domain/entity"
	errs "github.com/jdvillegas/billing-processor/internal/domain/error"
	coreport "github.com/jdvillegas/billing-processor/internal/domain/port/core"
	"gorm.io/gorm"
)

// InvoiceRepository implements the InvoiceRepository interface using GORM
type InvoiceRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewInvoiceRepository creates a new InvoiceRepository instance
func NewInvoiceRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *InvoiceRepository {
	return &InvoiceRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// UpsertByNumber inserts the invoice for the given customer or, on
// natural-key conflict, updates its invoiced amount only. Paid amount and
// billing period of an existing invoice are left untouched.
func (r *InvoiceRepository) UpsertByNumber(ctx context.Context, customerID uint64, fragment entity.InvoiceFragment) (uint64, bool, error) {
	if fragment.InvoiceNumber == "" {
		return 0, false, fmt.Errorf("%w: invoice_number is empty", errs.ErrConstraintViolation)
	}
	if customerID == 0 {
		return 0, false, fmt.Errorf("%w: invoice %s has no owning customer", errs.ErrConstraintViolation, fragment.InvoiceNumber)
	}

	now := r.timeProvider.Now()
	var res upsertResult
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO invoices (invoice_number, customer_id, billing_period, invoiced_amount, paid_amount, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (invoice_number)
		 DO UPDATE SET invoiced_amount = EXCLUDED.invoiced_amount, updated_at = EXCLUDED.updated_at
		 RETURNING id, (xmax = 0) AS inserted`,
		fragment.InvoiceNumber, customerID, fragment.BillingPeriod,
		fragment.InvoicedAmount, fragment.PaidAmount, now, now,
	).Scan(&res).Error
	if err != nil {
		r.logger.Error("Database error when upserting invoice", map[string]any{
			"invoice_number": fragment.InvoiceNumber,
			"customer_id":    customerID,
			"error":          err.Error(),
		})
		if r.errorClassifier.IsConstraintError(err) {
			return 0, false, fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
		}
		if r.errorClassifier.IsConnectionError(err) {
			return 0, false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
		}
		return 0, false, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	return res.ID, res.Inserted, nil
}
