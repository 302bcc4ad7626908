package customer

import (
	"context"
	"testing"

	"github.com/jdvillegas/billing-processor/internal/domain/entity"
	errs "github.com/jdvillegas/billing-processor/internal/domain/error"
	"github.com/jdvillegas/billing-processor/internal/domain/port/persistence"
	coremocks "github.com/jdvillegas/billing-processor/mocks/port/core"
	persistencemocks "github.com/jdvillegas/billing-processor/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListCustomers(t *testing.T) {
	ctx := context.Background()

	mockRepo := persistencemocks.NewMockCustomerRepository(t)
	mockLogger := coremocks.NewMockLogger(t)

	expected := []entity.Customer{
		{ID: 1, IdentificationNumber: "900123", Name: "Maria"},
		{ID: 2, IdentificationNumber: "900456", Name: "Pedro"},
	}
	mockRepo.EXPECT().List(mock.Anything).Return(expected, nil).Once()

	useCase := NewUseCase(mockRepo, mockLogger)

	customers, err := useCase.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, customers)
}

func TestCreateCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful creation", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockCustomerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		fragment := entity.CustomerFragment{IdentificationNumber: "900123", Name: "Maria"}
		created := &entity.Customer{ID: 1, IdentificationNumber: "900123", Name: "Maria"}

		mockRepo.EXPECT().Create(mock.Anything, fragment).Return(created, nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		useCase := NewUseCase(mockRepo, mockLogger)

		customer, err := useCase.CreateCustomer(ctx, fragment)
		require.NoError(t, err)
		assert.Equal(t, created, customer)
	})

	t.Run("Missing required field", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockCustomerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		useCase := NewUseCase(mockRepo, mockLogger)

		customer, err := useCase.CreateCustomer(ctx, entity.CustomerFragment{Name: "Maria"})
		assert.Nil(t, customer)
		assert.ErrorIs(t, err, errs.ErrMissingRequiredField)
	})

	t.Run("Repository failure", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockCustomerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		fragment := entity.CustomerFragment{IdentificationNumber: "900123", Name: "Maria"}
		mockRepo.EXPECT().Create(mock.Anything, fragment).Return(nil, errs.ErrConstraintViolation).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		useCase := NewUseCase(mockRepo, mockLogger)

		customer, err := useCase.CreateCustomer(ctx, fragment)
		assert.Nil(t, customer)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})
}

func TestUpdateCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful partial update", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockCustomerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		name := "Renamed"
		patch := persistence.CustomerPatch{Name: &name}
		updated := &entity.Customer{ID: 1, IdentificationNumber: "900123", Name: "Renamed"}

		mockRepo.EXPECT().PartialUpdate(mock.Anything, uint64(1), patch).Return(updated, nil).Once()

		useCase := NewUseCase(mockRepo, mockLogger)

		customer, err := useCase.UpdateCustomer(ctx, 1, patch)
		require.NoError(t, err)
		assert.Equal(t, updated, customer)
	})

	t.Run("Missing customer yields nil without error", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockCustomerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().PartialUpdate(mock.Anything, uint64(999), mock.Anything).Return(nil, nil).Once()

		useCase := NewUseCase(mockRepo, mockLogger)

		customer, err := useCase.UpdateCustomer(ctx, 999, persistence.CustomerPatch{})
		require.NoError(t, err)
		assert.Nil(t, customer)
	})
}

func TestDeleteCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful delete returns the removed row", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockCustomerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		deleted := &entity.Customer{ID: 1, IdentificationNumber: "900123", Name: "Maria"}
		mockRepo.EXPECT().Delete(mock.Anything, uint64(1)).Return(deleted, nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		useCase := NewUseCase(mockRepo, mockLogger)

		customer, err := useCase.DeleteCustomer(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, deleted, customer)
	})

	t.Run("Missing customer yields nil without error", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockCustomerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().Delete(mock.Anything, uint64(999)).Return(nil, nil).Once()

		useCase := NewUseCase(mockRepo, mockLogger)

		customer, err := useCase.DeleteCustomer(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, customer)
	})

	t.Run("Repository failure", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockCustomerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().Delete(mock.Anything, uint64(1)).Return(nil, errs.ErrDatabaseConnection).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		useCase := NewUseCase(mockRepo, mockLogger)

		customer, err := useCase.DeleteCustomer(ctx, 1)
		assert.Nil(t, customer)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
