package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	coreport "github.com/jdvillegas/billing-processor/internal/domain/port/core"
	"github.com/jdvillegas/billing-processor/internal/infrastructure/adapter/api/dto"
)

// HealthHandler handles the liveness endpoint
type HealthHandler struct {
	timeProvider coreport.TimeProvider
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(timeProvider coreport.TimeProvider) *HealthHandler {
	return &HealthHandler{timeProvider: timeProvider}
}

// Check handles the GET /health endpoint
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		OK:        true,
		Timestamp: h.timeProvider.Now().UTC().Format(time.RFC3339),
	})
}
