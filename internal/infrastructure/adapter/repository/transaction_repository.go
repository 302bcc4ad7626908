package repository

import (
	"context"
	"fmt"

	"github.com/jdvillegas/billing-processor/internal/domain/entity"
	errs "github.com/jdvillegas/billing-processor/internal/domain/error"
	coreport "github.com/jdvillegas/billing-processor/internal/domain/port/core"
	"github.com/jdvillegas/billing-processor/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements the TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// InsertIgnoreConflict inserts the transaction for the given invoice. A
// transaction id collision is silently dropped, never updated; reports
// whether a row was actually written.
func (r *TransactionRepository) InsertIgnoreConflict(ctx context.Context, invoiceID uint64, fragment entity.TransactionFragment) (bool, error) {
	if fragment.TransactionID == "" {
		return false, fmt.Errorf("%w: transaction_id is empty", errs.ErrConstraintViolation)
	}
	if invoiceID == 0 {
		return false, fmt.Errorf("%w: transaction %s has no owning invoice", errs.ErrConstraintViolation, fragment.TransactionID)
	}

	transactionModel := model.Transaction{
		TransactionID: fragment.TransactionID,
		InvoiceID:     invoiceID,
		Timestamp:     fragment.Timestamp,
		Amount:        fragment.Amount,
		Status:        fragment.Status,
		Type:          fragment.Type,
		Platform:      fragment.Platform,
		CreatedAt:     r.timeProvider.Now(),
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "transaction_id"}},
		DoNothing: true,
	}).Create(&transactionModel)
	if result.Error != nil {
		r.logger.Error("Database error when inserting transaction", map[string]any{
			"transaction_id": fragment.TransactionID,
			"invoice_id":     invoiceID,
			"error":          result.Error.Error(),
		})
		if r.errorClassifier.IsConstraintError(result.Error) {
			return false, fmt.Errorf("%w: %s", errs.ErrConstraintViolation, result.Error.Error())
		}
		if r.errorClassifier.IsConnectionError(result.Error) {
			return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
		}
		return false, fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Duplicate transaction ignored", map[string]any{
			"transaction_id": fragment.TransactionID,
			"invoice_id":     invoiceID,
		})
		return false, nil
	}

	return true, nil
}
