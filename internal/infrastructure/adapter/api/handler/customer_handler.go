package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jdvillegas/billing-processor/internal/domain/entity"
	domainerr "github.com/jdvillegas/billing-processor/internal/domain/error"
	coreport "github.com/jdvillegas/billing-processor/internal/domain/port/core"
	"github.com/jdvillegas/billing-processor/internal/domain/port/persistence"
	"github.com/jdvillegas/billing-processor/internal/domain/port/usecase"
	"github.com/jdvillegas/billing-processor/internal/infrastructure/adapter/api/dto"
)

// CustomerHandler handles customer CRUD HTTP requests
type CustomerHandler struct {
	customerUseCase usecase.CustomerUseCase
	logger          coreport.Logger
}

// NewCustomerHandler creates a new customer handler instance
func NewCustomerHandler(customerUseCase usecase.CustomerUseCase, logger coreport.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerUseCase: customerUseCase,
		logger:          logger,
	}
}

// List handles the GET /clientes endpoint
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerUseCase.ListCustomers(c.Request.Context())
	if err != nil {
		h.logger.Error("Error listing customers", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(err),
			Error: "Failed to list customers",
		})
		return
	}

	c.JSON(http.StatusOK, customers)
}

// Create handles the POST /clientes endpoint
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(domainerr.ErrMissingRequiredField),
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	created, err := h.customerUseCase.CreateCustomer(c.Request.Context(), entity.CustomerFragment{
		IdentificationNumber: req.IdentificationNumber,
		Name:                 req.Name,
		Address:              req.Address,
		Phone:                req.Phone,
		Email:                req.Email,
	})
	if err != nil {
		if errors.Is(err, domainerr.ErrMissingRequiredField) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:  domainerr.ErrorCode(err),
				Error: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(err),
			Error: "Failed to create customer",
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update handles the PATCH /clientes/:id endpoint. Fields absent from the
// body keep their stored values; a missing customer yields null, not an
// error.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(domainerr.ErrMissingRequiredField),
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	updated, err := h.customerUseCase.UpdateCustomer(c.Request.Context(), id, persistence.CustomerPatch{
		IdentificationNumber: req.IdentificationNumber,
		Name:                 req.Name,
		Address:              req.Address,
		Phone:                req.Phone,
		Email:                req.Email,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(err),
			Error: "Failed to update customer",
		})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles the DELETE /clientes/:id endpoint, answering the deleted
// row or null when the id didn't exist
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := h.customerID(c)
	if !ok {
		return
	}

	deleted, err := h.customerUseCase.DeleteCustomer(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(err),
			Error: "Failed to delete customer",
		})
		return
	}

	c.JSON(http.StatusOK, deleted)
}

// customerID parses the numeric id path parameter, answering 400 on
// malformed input
func (h *CustomerHandler) customerID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(domainerr.ErrInvalidCustomerID),
			Error: "Invalid customer ID format",
		})
		return 0, false
	}
	return id, true
}
