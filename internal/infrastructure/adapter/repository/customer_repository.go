package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jdvillegas/billing-processor/internal/domain/entity"
	errs "github.com/jdvillegas/billing-processor/internal/domain/error"
	coreport "github.com/jdvillegas/billing-processor/internal/domain/port/core"
	"github.com/jdvillegas/billing-processor/internal/domain/port/persistence"
	"github.com/jdvillegas/billing-processor/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CustomerRepository implements the CustomerRepository interface using GORM
type CustomerRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCustomerRepository creates a new CustomerRepository instance
func NewCustomerRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *CustomerRepository {
	return &CustomerRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a customer model to an entity
func modelToEntity(customerModel *model.Customer) *entity.Customer {
	return &entity.Customer{
		ID:                   customerModel.ID,
		IdentificationNumber: customerModel.IdentificationNumber,
		Name:                 customerModel.Name,
		Address:              customerModel.Address,
		Phone:                customerModel.Phone,
		Email:                customerModel.Email,
		CreatedAt:            customerModel.CreatedAt,
		UpdatedAt:            customerModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *CustomerRepository) handleDatabaseError(operation string, err error, naturalKey string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"identification_number": naturalKey,
		"error":                 err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrCustomerNotFound
	}

	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}

	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// List retrieves all customers ordered by surrogate id
func (r *CustomerRepository) List(ctx context.Context) ([]entity.Customer, error) {
	var customerModels []model.Customer
	result := r.db.WithContext(ctx).Order("id").Find(&customerModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing customers", result.Error, "")
	}

	customers := make([]entity.Customer, 0, len(customerModels))
	for i := range customerModels {
		customers = append(customers, *modelToEntity(&customerModels[i]))
	}
	return customers, nil
}

// Create inserts a new customer and returns the stored row
func (r *CustomerRepository) Create(ctx context.Context, fragment entity.CustomerFragment) (*entity.Customer, error) {
	now := r.timeProvider.Now()
	customerModel := model.Customer{
		IdentificationNumber: fragment.IdentificationNumber,
		Name:                 fragment.Name,
		Address:              fragment.Address,
		Phone:                fragment.Phone,
		Email:                fragment.Email,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	result := r.db.WithContext(ctx).Create(&customerModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("creating customer", result.Error, fragment.IdentificationNumber)
	}

	r.logger.Info("Customer created", map[string]any{
		"customer_id":           customerModel.ID,
		"identification_number": customerModel.IdentificationNumber,
	})
	return modelToEntity(&customerModel), nil
}

// PartialUpdate applies the non-nil patch fields to the customer with the
// given id. A missing customer yields (nil, nil) so the API can answer null.
func (r *CustomerRepository) PartialUpdate(ctx context.Context, id uint64, patch persistence.CustomerPatch) (*entity.Customer, error) {
	updates := map[string]any{}
	if patch.IdentificationNumber != nil {
		updates["identification_number"] = *patch.IdentificationNumber
	}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}

	var customerModel model.Customer
	if err := r.db.WithContext(ctx).First(&customerModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, r.handleDatabaseError("updating customer", err, "")
	}

	if len(updates) > 0 {
		updates["updated_at"] = r.timeProvider.Now()
		result := r.db.WithContext(ctx).Model(&customerModel).Updates(updates)
		if result.Error != nil {
			return nil, r.handleDatabaseError("updating customer", result.Error, customerModel.IdentificationNumber)
		}
	}

	return modelToEntity(&customerModel), nil
}

// Delete removes the customer with the given id, returning the deleted row
// or (nil, nil) when it didn't exist
func (r *CustomerRepository) Delete(ctx context.Context, id uint64) (*entity.Customer, error) {
	var customerModel model.Customer
	if err := r.db.WithContext(ctx).First(&customerModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, r.handleDatabaseError("deleting customer", err, "")
	}

	result := r.db.WithContext(ctx).Delete(&model.Customer{}, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("deleting customer", result.Error, customerModel.IdentificationNumber)
	}

	return modelToEntity(&customerModel), nil
}

// upsertResult scans the RETURNING clause of the upsert statements. The
// xmax system column is zero only for rows created by the current statement,
// which is how a single round trip can report insert-versus-update.
type upsertResult struct {
	ID       uint64
	Inserted bool
}

// UpsertByIdentification inserts the customer or, on natural-key conflict,
// refreshes its name only
func (r *CustomerRepository) UpsertByIdentification(ctx context.Context, fragment entity.CustomerFragment) (uint64, bool, error) {
	if fragment.IdentificationNumber == "" {
		return 0, false, fmt.Errorf("%w: customer identification_number is empty", errs.ErrConstraintViolation)
	}

	now := r.timeProvider.Now()
	var res upsertResult
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO customers (identification_number, name, address, phone, email, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (identification_number)
		 DO UPDATE SET name = EXCLUDED.name, updated_at = EXCLUDED.updated_at
		 RETURNING id, (xmax = 0) AS inserted`,
		fragment.IdentificationNumber, fragment.Name, fragment.Address,
		fragment.Phone, fragment.Email, now, now,
	).Scan(&res).Error
	if err != nil {
		return 0, false, r.handleDatabaseError("upserting customer", err, fragment.IdentificationNumber)
	}

	return res.ID, res.Inserted, nil
}

// BatchUpsert writes a batch of customers in one parameterized statement
// with upsert-on-conflict semantics, returning the number of rows written
func (r *CustomerRepository) BatchUpsert(ctx context.Context, fragments []entity.CustomerFragment) (int64, error) {
	if len(fragments) == 0 {
		return 0, nil
	}

	now := r.timeProvider.Now()
	customerModels := make([]model.Customer, 0, len(fragments))
	for _, fragment := range fragments {
		customerModels = append(customerModels, model.Customer{
			IdentificationNumber: fragment.IdentificationNumber,
			Name:                 fragment.Name,
			Address:              fragment.Address,
			Phone:                fragment.Phone,
			Email:                fragment.Email,
			CreatedAt:            now,
			UpdatedAt:            now,
		})
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identification_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(&customerModels)
	if result.Error != nil {
		return 0, r.handleDatabaseError("batch upserting customers", result.Error, "")
	}

	return result.RowsAffected, nil
}
