package usecase

import (
	"context"

	"github.com/jdvillegas/billing-processor/internal/domain/entity"
	"github.com/jdvillegas/billing-processor/internal/domain/port/persistence"
)

// CustomerUseCase defines methods for customer CRUD operations
type CustomerUseCase interface {
	// ListCustomers returns all customers ordered by id
	ListCustomers(ctx context.Context) ([]entity.Customer, error)

	// CreateCustomer validates the fragment and inserts a new customer
	CreateCustomer(ctx context.Context, fragment entity.CustomerFragment) (*entity.Customer, error)

	// UpdateCustomer applies a partial update; nil patch fields keep the
	// stored value. Returns nil when the customer doesn't exist.
	UpdateCustomer(ctx context.Context, id uint64, patch persistence.CustomerPatch) (*entity.Customer, error)

	// DeleteCustomer removes a customer and returns the deleted row, or nil
	// when the customer doesn't exist.
	DeleteCustomer(ctx context.Context, id uint64) (*entity.Customer, error)
}
