package repository

import (
	"context"
	"testing"

	"github.com/jdvillegas/billing-processor/internal/domain/entity"
	errs "github.com/jdvillegas/billing-processor/internal/domain/error"
	"github.com/jdvillegas/billing-processor/internal/infrastructure/adapter/logger"
	timeadapter "github.com/jdvillegas/billing-processor/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceUpsertGuards(t *testing.T) {
	repo := NewInvoiceRepository(nil, timeadapter.NewRealTimeProvider(), logger.NewNoopLogger())
	ctx := context.Background()

	t.Run("Empty invoice number", func(t *testing.T) {
		id, inserted, err := repo.UpsertByNumber(ctx, 7, entity.InvoiceFragment{
			BillingPeriod:  "2024-05-01",
			InvoicedAmount: "1500",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
		assert.Contains(t, err.Error(), "invoice_number")
		assert.Zero(t, id)
		assert.False(t, inserted)
	})

	t.Run("Missing owning customer", func(t *testing.T) {
		id, inserted, err := repo.UpsertByNumber(ctx, 0, entity.InvoiceFragment{
			InvoiceNumber:  "FAC-001",
			BillingPeriod:  "2024-05-01",
			InvoicedAmount: "1500",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
		assert.Contains(t, err.Error(), "FAC-001")
		assert.Zero(t, id)
		assert.False(t, inserted)
	})
}
