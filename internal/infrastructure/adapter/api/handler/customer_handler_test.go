package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jdvillegas/billing-processor/internal/domain/entity"
	errs "github.com/jdvillegas/billing-processor/internal/domain/error"
	"github.com/jdvillegas/billing-processor/internal/domain/port/persistence"
	usecasemocks "github.com/jdvillegas/billing-processor/mocks/port/usecase"
	"github.com/jdvillegas/billing-processor/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func customerRouter(t *testing.T, useCase *usecasemocks.MockCustomerUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewCustomerHandler(useCase, logger.NewNoopLogger())

	router := gin.New()
	router.GET("/clientes", h.List)
	router.POST("/clientes", h.Create)
	router.PATCH("/clientes/:id", h.Update)
	router.DELETE("/clientes/:id", h.Delete)
	return router
}

func TestCustomerList(t *testing.T) {
	t.Run("Returns all customers", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockCustomerUseCase(t)
		mockUseCase.EXPECT().ListCustomers(mock.Anything).Return([]entity.Customer{
			{ID: 1, IdentificationNumber: "900123", Name: "Maria"},
		}, nil).Once()

		router := customerRouter(t, mockUseCase)
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/clientes", nil)
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var customers []entity.Customer
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &customers))
		require.Len(t, customers, 1)
		assert.Equal(t, "900123", customers[0].IdentificationNumber)
	})

	t.Run("Use case failure yields 500", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockCustomerUseCase(t)
		mockUseCase.EXPECT().ListCustomers(mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

		router := customerRouter(t, mockUseCase)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/clientes", nil))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestCustomerCreate(t *testing.T) {
	t.Run("Creates the customer", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockCustomerUseCase(t)
		mockUseCase.EXPECT().CreateCustomer(mock.Anything, entity.CustomerFragment{
			IdentificationNumber: "900123",
			Name:                 "Maria",
		}).Return(&entity.Customer{ID: 1, IdentificationNumber: "900123", Name: "Maria"}, nil).Once()

		router := customerRouter(t, mockUseCase)
		body := bytes.NewBufferString(`{"identification_number":"900123","name":"Maria"}`)
		req := httptest.NewRequest(http.MethodPost, "/clientes", body)
		req.Header.Set("Content-Type", "application/json")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var created entity.Customer
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
		assert.Equal(t, uint64(1), created.ID)
	})

	t.Run("Missing required field yields 400 with its code", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockCustomerUseCase(t)
		mockUseCase.EXPECT().CreateCustomer(mock.Anything, mock.Anything).
			Return(nil, errs.ErrMissingRequiredField).Once()

		router := customerRouter(t, mockUseCase)
		body := bytes.NewBufferString(`{"name":"Maria"}`)
		req := httptest.NewRequest(http.MethodPost, "/clientes", body)
		req.Header.Set("Content-Type", "application/json")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, float64(errs.CodeMissingRequiredField), resp["code"])
	})

	t.Run("Malformed body yields 400", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockCustomerUseCase(t)

		router := customerRouter(t, mockUseCase)
		req := httptest.NewRequest(http.MethodPost, "/clientes", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestCustomerUpdate(t *testing.T) {
	t.Run("Patches only the supplied fields", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockCustomerUseCase(t)
		mockUseCase.EXPECT().UpdateCustomer(mock.Anything, uint64(1), mock.MatchedBy(func(patch persistence.CustomerPatch) bool {
			return patch.Name != nil && *patch.Name == "Renamed" &&
				patch.IdentificationNumber == nil && patch.Email == nil
		})).Return(&entity.Customer{ID: 1, Name: "Renamed"}, nil).Once()

		router := customerRouter(t, mockUseCase)
		body := bytes.NewBufferString(`{"name":"Renamed"}`)
		req := httptest.NewRequest(http.MethodPatch, "/clientes/1", body)
		req.Header.Set("Content-Type", "application/json")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Missing customer answers null", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockCustomerUseCase(t)
		mockUseCase.EXPECT().UpdateCustomer(mock.Anything, uint64(999), mock.Anything).
			Return(nil, nil).Once()

		router := customerRouter(t, mockUseCase)
		body := bytes.NewBufferString(`{"name":"Renamed"}`)
		req := httptest.NewRequest(http.MethodPatch, "/clientes/999", body)
		req.Header.Set("Content-Type", "application/json")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "null", recorder.Body.String())
	})

	t.Run("Malformed id yields 400", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockCustomerUseCase(t)

		router := customerRouter(t, mockUseCase)
		body := bytes.NewBufferString(`{"name":"Renamed"}`)
		req := httptest.NewRequest(http.MethodPatch, "/clientes/abc", body)
		req.Header.Set("Content-Type", "application/json")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, float64(errs.CodeInvalidCustomerID), resp["code"])
	})
}

func TestCustomerDelete(t *testing.T) {
	t.Run("Returns the deleted row", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockCustomerUseCase(t)
		mockUseCase.EXPECT().DeleteCustomer(mock.Anything, uint64(1)).
			Return(&entity.Customer{ID: 1, IdentificationNumber: "900123"}, nil).Once()

		router := customerRouter(t, mockUseCase)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/clientes/1", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var deleted entity.Customer
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &deleted))
		assert.Equal(t, "900123", deleted.IdentificationNumber)
	})

	t.Run("Missing customer answers null", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockCustomerUseCase(t)
		mockUseCase.EXPECT().DeleteCustomer(mock.Anything, uint64(999)).Return(nil, nil).Once()

		router := customerRouter(t, mockUseCase)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/clientes/999", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "null", recorder.Body.String())
	})
}
