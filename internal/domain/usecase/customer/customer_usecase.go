package customer

import (
	"context"

	"github.com/jdvillegas/billing-processor/internal/domain/entity"
	coreport "github.com/jdvillegas/billing-processor/internal/domain/port/core"
	"github.com/jdvillegas/billing-processor/internal/domain/port/persistence"
)

// UseCase handles customer CRUD business logic
type UseCase struct {
	customerRepo persistence.CustomerRepository
	logger       coreport.Logger
}

// NewUseCase creates a new customer use case
func NewUseCase(customerRepo persistence.CustomerRepository, logger coreport.Logger) *UseCase {
	return &UseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// ListCustomers returns all customers ordered by id
func (u *UseCase) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return u.customerRepo.List(ctx)
}

// CreateCustomer validates the fragment and inserts a new customer
func (u *UseCase) CreateCustomer(ctx context.Context, fragment entity.CustomerFragment) (*entity.Customer, error) {
	if err := fragment.Validate(); err != nil {
		return nil, err
	}

	created, err := u.customerRepo.Create(ctx, fragment)
	if err != nil {
		u.logger.Error("Failed to create customer", map[string]any{
			"identification_number": fragment.IdentificationNumber,
			"error":                 err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Customer created", map[string]any{
		"customer_id":           created.ID,
		"identification_number": created.IdentificationNumber,
	})
	return created, nil
}

// UpdateCustomer applies a partial update. Nil patch fields keep the stored
// value; a missing customer yields nil without error, matching the API
// contract of returning null.
func (u *UseCase) UpdateCustomer(ctx context.Context, id uint64, patch persistence.CustomerPatch) (*entity.Customer, error) {
	updated, err := u.customerRepo.PartialUpdate(ctx, id, patch)
	if err != nil {
		u.logger.Error("Failed to update customer", map[string]any{
			"customer_id": id,
			"error":       err.Error(),
		})
		return nil, err
	}
	return updated, nil
}

// DeleteCustomer removes a customer, returning the deleted row or nil when
// it didn't exist
func (u *UseCase) DeleteCustomer(ctx context.Context, id uint64) (*entity.Customer, error) {
	deleted, err := u.customerRepo.Delete(ctx, id)
	if err != nil {
		u.logger.Error("Failed to delete customer", map[string]any{
			"customer_id": id,
			"error":       err.Error(),
		})
		return nil, err
	}
	if deleted != nil {
		u.logger.Info("Customer deleted", map[string]any{
			"customer_id": id,
		})
	}
	return deleted, nil
}
