package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdvillegas/billing-processor/internal/domain/entity"
	errs "github.com/jdvillegas/billing-processor/internal/domain/error"
	"github.com/jdvillegas/billing-processor/internal/domain/port/usecase"
	coremocks "github.com/jdvillegas/billing-processor/mocks/port/core"
	usecasemocks "github.com/jdvillegas/billing-processor/mocks/port/usecase"
	"github.com/jdvillegas/billing-processor/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type importRouterEnv struct {
	router    *gin.Engine
	uploadDir string
	outputDir string
}

func importRouter(t *testing.T, useCase *usecasemocks.MockImportUseCase, timeProvider *coremocks.MockTimeProvider) importRouterEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	uploadDir := t.TempDir()
	outputDir := t.TempDir()
	h := NewImportHandler(useCase, uploadDir, outputDir, timeProvider, logger.NewNoopLogger())

	router := gin.New()
	router.POST("/clientes/upload", h.UploadCustomers)
	router.POST("/facturacion/upload", h.UploadBilling)
	router.POST("/facturacion/normalize", h.Normalize)
	return importRouterEnv{router: router, uploadDir: uploadDir, outputDir: outputDir}
}

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadCustomers(t *testing.T) {
	t.Run("Imports a CSV and reports counters", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockImportUseCase(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUseCase.EXPECT().ImportCustomers(mock.Anything, mock.Anything).
			Return(&usecase.CustomerImportResult{Rows: 3, Created: 2, Skipped: 1}, nil).Once()

		env := importRouter(t, mockUseCase, mockTime)
		body, contentType := multipartUpload(t, "customers.csv", "identification_number,name\n900123,Maria\n")
		req := httptest.NewRequest(http.MethodPost, "/clientes/upload", body)
		req.Header.Set("Content-Type", contentType)

		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, float64(2), resp["created"])
		assert.Equal(t, "2 customers imported successfully", resp["message"])
	})

	t.Run("Temp upload is removed after the request", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockImportUseCase(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUseCase.EXPECT().ImportCustomers(mock.Anything, mock.Anything).
			Return(&usecase.CustomerImportResult{Rows: 1, Created: 1}, nil).Once()

		env := importRouter(t, mockUseCase, mockTime)
		body, contentType := multipartUpload(t, "customers.txt", "900123\n")
		req := httptest.NewRequest(http.MethodPost, "/clientes/upload", body)
		req.Header.Set("Content-Type", contentType)

		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		entries, err := os.ReadDir(env.uploadDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Missing file part yields 400", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockImportUseCase(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		env := importRouter(t, mockUseCase, mockTime)
		req := httptest.NewRequest(http.MethodPost, "/clientes/upload", nil)

		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, float64(errs.CodeMissingFile), resp["code"])
	})

	t.Run("Unsupported extension yields 400", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockImportUseCase(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		env := importRouter(t, mockUseCase, mockTime)
		body, contentType := multipartUpload(t, "customers.xlsx", "binary")
		req := httptest.NewRequest(http.MethodPost, "/clientes/upload", body)
		req.Header.Set("Content-Type", contentType)

		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, float64(errs.CodeUnsupportedFileType), resp["code"])
	})

	t.Run("Empty import file yields 400", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockImportUseCase(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUseCase.EXPECT().ImportCustomers(mock.Anything, mock.Anything).
			Return(nil, errs.ErrEmptyImportFile).Once()

		env := importRouter(t, mockUseCase, mockTime)
		body, contentType := multipartUpload(t, "customers.csv", "identification_number\n")
		req := httptest.NewRequest(http.MethodPost, "/clientes/upload", body)
		req.Header.Set("Content-Type", contentType)

		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, float64(errs.CodeEmptyImportFile), resp["code"])
	})
}

func TestUploadBilling(t *testing.T) {
	t.Run("Imports a CSV and reports per-entity counters", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockImportUseCase(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUseCase.EXPECT().ImportBilling(mock.Anything, mock.Anything).
			Return(&usecase.BillingImportResult{Rows: 2, Customers: 1, Invoices: 1, Transactions: 2}, nil).Once()

		env := importRouter(t, mockUseCase, mockTime)
		body, contentType := multipartUpload(t, "billing.csv", "identification_number,name\n900123,Maria\n")
		req := httptest.NewRequest(http.MethodPost, "/facturacion/upload", body)
		req.Header.Set("Content-Type", contentType)

		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, float64(2), resp["rows"])
		assert.Equal(t, float64(1), resp["customers"])
		assert.Equal(t, float64(1), resp["invoices"])
		assert.Equal(t, float64(2), resp["transactions"])
	})

	t.Run("TXT uploads are rejected before importing", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockImportUseCase(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		env := importRouter(t, mockUseCase, mockTime)
		body, contentType := multipartUpload(t, "billing.txt", "900123\n900456\n")
		req := httptest.NewRequest(http.MethodPost, "/facturacion/upload", body)
		req.Header.Set("Content-Type", contentType)

		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, float64(errs.CodeUnsupportedFileType), resp["code"])
		mockUseCase.AssertNotCalled(t, "ImportBilling", mock.Anything, mock.Anything)
	})

	t.Run("Aborted import yields 500 with the row error code", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockImportUseCase(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		importErr := errs.NewImportError(2, "invoice", "FAC-002", errs.ErrConstraintViolation)
		mockUseCase.EXPECT().ImportBilling(mock.Anything, mock.Anything).
			Return(nil, importErr).Once()

		env := importRouter(t, mockUseCase, mockTime)
		body, contentType := multipartUpload(t, "billing.csv", "identification_number\n900123\n")
		req := httptest.NewRequest(http.MethodPost, "/facturacion/upload", body)
		req.Header.Set("Content-Type", contentType)

		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, float64(errs.CodeConstraintViolation), resp["code"])
	})
}

func TestNormalize(t *testing.T) {
	t.Run("Writes the cleaned file and reports its name", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockImportUseCase(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		records := []entity.CustomerFragment{
			{IdentificationNumber: "900123", Name: "Maria"},
			{IdentificationNumber: "900456", Name: "Pedro"},
		}
		mockUseCase.EXPECT().NormalizeCustomers(mock.Anything, mock.Anything).Return(records, nil).Once()
		mockTime.EXPECT().Now().Return(time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)).Once()

		env := importRouter(t, mockUseCase, mockTime)
		body, contentType := multipartUpload(t, "customers.csv", "identification_number,name\n900123,Maria\n")
		req := httptest.NewRequest(http.MethodPost, "/facturacion/normalize", body)
		req.Header.Set("Content-Type", contentType)

		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, float64(2), resp["records"])

		filename, ok := resp["filename"].(string)
		require.True(t, ok)
		_, err := os.Stat(env.outputDir + "/" + filename)
		assert.NoError(t, err)
	})

	t.Run("Normalize failure propagates as 400 for empty files", func(t *testing.T) {
		mockUseCase := usecasemocks.NewMockImportUseCase(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockUseCase.EXPECT().NormalizeCustomers(mock.Anything, mock.Anything).
			Return(nil, errs.ErrEmptyImportFile).Once()

		env := importRouter(t, mockUseCase, mockTime)
		body, contentType := multipartUpload(t, "customers.txt", "\n")
		req := httptest.NewRequest(http.MethodPost, "/facturacion/normalize", body)
		req.Header.Set("Content-Type", contentType)

		recorder := httptest.NewRecorder()
		env.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
