package handler

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerr "github.com/jdvillegas/billing-processor/internal/domain/error"
	coreport "github.com/jdvillegas/billing-processor/internal/domain/port/core"
	"github.com/jdvillegas/billing-processor/internal/domain/port/usecase"
	"github.com/jdvillegas/billing-processor/internal/infrastructure/adapter/api/dto"
	"github.com/jdvillegas/billing-processor/internal/infrastructure/adapter/fileparse"
)

// ImportHandler handles the upload and normalize HTTP requests
type ImportHandler struct {
	importUseCase usecase.ImportUseCase
	uploadDir     string
	outputDir     string
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewImportHandler creates a new import handler instance
func NewImportHandler(
	importUseCase usecase.ImportUseCase,
	uploadDir string,
	outputDir string,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *ImportHandler {
	return &ImportHandler{
		importUseCase: importUseCase,
		uploadDir:     uploadDir,
		outputDir:     outputDir,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// UploadCustomers handles the POST /clientes/upload endpoint (legacy
// single-entity import)
func (h *ImportHandler) UploadCustomers(c *gin.Context) {
	path, ext, ok := h.saveUpload(c)
	if !ok {
		return
	}
	defer h.cleanupUpload(path)

	file, err := os.Open(path)
	if err != nil {
		h.respondError(c, fmt.Errorf("%w: %s", domainerr.ErrInternalServer, err.Error()))
		return
	}
	defer file.Close()

	src, err := fileparse.SourceForExtension(file, ext)
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.importUseCase.ImportCustomers(c.Request.Context(), src)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CustomerImportResponse{
		Message: fmt.Sprintf("%d customers imported successfully", result.Created),
		Created: result.Created,
	})
}

// UploadBilling handles the POST /facturacion/upload endpoint (multi-entity
// import: customer, invoice, transaction per row)
func (h *ImportHandler) UploadBilling(c *gin.Context) {
	path, ext, ok := h.saveUpload(c)
	if !ok {
		return
	}
	defer h.cleanupUpload(path)

	// Billing rows need the full delimited column set, so only CSV is
	// accepted on this endpoint.
	if !strings.EqualFold(ext, ".csv") {
		h.respondError(c, fmt.Errorf("%w: billing import accepts .csv files only", domainerr.ErrUnsupportedFileType))
		return
	}

	file, err := os.Open(path)
	if err != nil {
		h.respondError(c, fmt.Errorf("%w: %s", domainerr.ErrInternalServer, err.Error()))
		return
	}
	defer file.Close()

	src, err := fileparse.SourceForExtension(file, ext)
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.importUseCase.ImportBilling(c.Request.Context(), src)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BillingImportResponse{
		Message:      fmt.Sprintf("%d rows imported successfully", result.Rows),
		Rows:         result.Rows,
		Customers:    result.Customers,
		Invoices:     result.Invoices,
		Transactions: result.Transactions,
	})
}

// Normalize handles the POST /facturacion/normalize endpoint. The cleaned
// CSV is written server side; the response reports count and filename only.
func (h *ImportHandler) Normalize(c *gin.Context) {
	path, ext, ok := h.saveUpload(c)
	if !ok {
		return
	}
	defer h.cleanupUpload(path)

	file, err := os.Open(path)
	if err != nil {
		h.respondError(c, fmt.Errorf("%w: %s", domainerr.ErrInternalServer, err.Error()))
		return
	}
	defer file.Close()

	src, err := fileparse.SourceForExtension(file, ext)
	if err != nil {
		h.respondError(c, err)
		return
	}

	records, err := h.importUseCase.NormalizeCustomers(c.Request.Context(), src)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filename, err := fileparse.WriteNormalizedCustomers(h.outputDir, records, h.timeProvider.Now())
	if err != nil {
		h.logger.Error("Failed to write normalized file", map[string]any{
			"error": err.Error(),
		})
		h.respondError(c, fmt.Errorf("%w: %s", domainerr.ErrInternalServer, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.NormalizeResponse{
		Message:  fmt.Sprintf("%d records normalized successfully", len(records)),
		Records:  len(records),
		Filename: filename,
	})
}

// saveUpload stores the multipart file under the upload directory. The
// caller owns cleanup of the returned path.
func (h *ImportHandler) saveUpload(c *gin.Context) (path string, ext string, ok bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(domainerr.ErrMissingFile),
			Error: domainerr.ErrMissingFile.Error(),
		})
		return "", "", false
	}

	ext = filepath.Ext(fileHeader.Filename)
	path = filepath.Join(h.uploadDir, uuid.NewString()+ext)

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		h.respondError(c, fmt.Errorf("%w: %s", domainerr.ErrInternalServer, err.Error()))
		return "", "", false
	}
	if err := c.SaveUploadedFile(fileHeader, path); err != nil {
		h.logger.Error("Failed to save uploaded file", map[string]any{
			"filename": fileHeader.Filename,
			"error":    err.Error(),
		})
		h.respondError(c, fmt.Errorf("%w: %s", domainerr.ErrInternalServer, err.Error()))
		return "", "", false
	}

	return path, ext, true
}

// cleanupUpload removes the temporary upload on every exit path. Its own
// failure is logged and otherwise ignored.
func (h *ImportHandler) cleanupUpload(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		h.logger.Warn("Failed to remove uploaded file", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
	}
}

// respondError maps domain errors to HTTP statuses: client input errors get
// 400 with the descriptive message, everything else a generic 500.
func (h *ImportHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerr.ErrMissingFile),
		errors.Is(err, domainerr.ErrUnsupportedFileType),
		errors.Is(err, domainerr.ErrEmptyImportFile),
		errors.Is(err, domainerr.ErrMissingRequiredField):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(err),
			Error: err.Error(),
		})
	default:
		h.logger.Error("Import request failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:  domainerr.ErrorCode(err),
			Error: "Internal error while processing the file",
		})
	}
}
