package persistence

import (
	"context"

	"github.com/jdvillegas/billing-processor/internal/domain/entity"
)

// CustomerPatch carries a partial update for a customer. Nil fields keep the
// stored value unchanged.
type CustomerPatch struct {
	IdentificationNumber *string
	Name                 *string
	Address              *string
	Phone                *string
	Email                *string
}

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	// List returns all customers ordered by surrogate id
	List(ctx context.Context) ([]entity.Customer, error)

	// Create inserts a new customer and returns the stored row
	Create(ctx context.Context, fragment entity.CustomerFragment) (*entity.Customer, error)

	// PartialUpdate applies the non-nil patch fields to the customer with the
	// given id. Returns nil (no error) when the customer doesn't exist.
	PartialUpdate(ctx context.Context, id uint64, patch CustomerPatch) (*entity.Customer, error)

	// Delete removes the customer with the given id and returns the deleted
	// row, or nil when the customer doesn't exist.
	Delete(ctx context.Context, id uint64) (*entity.Customer, error)

	// UpsertByIdentification inserts the customer or, on natural-key conflict,
	// refreshes its name only. Reports the surrogate id and whether a new row
	// was written.
	UpsertByIdentification(ctx context.Context, fragment entity.CustomerFragment) (id uint64, inserted bool, err error)

	// BatchUpsert writes a batch of customers with upsert-on-conflict
	// semantics in one parameterized statement, returning the number of rows
	// written.
	BatchUpsert(ctx context.Context, fragments []entity.CustomerFragment) (int64, error)
}
