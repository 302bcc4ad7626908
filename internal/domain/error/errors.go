package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidCustomerID    = 4001
	CodeMissingRequiredField = 4002
	CodeConstraintViolation  = 4005
	CodeMissingFile          = 4101
	CodeUnsupportedFileType  = 4102
	CodeEmptyImportFile      = 4103
	CodeCustomerNotFound     = 4340
	CodeInvoiceNotFound      = 4341

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidCustomerID is returned when a path id is not a positive integer
	ErrInvalidCustomerID = errors.New("customer ID must be a positive integer")

	// ErrMissingRequiredField is returned when a create or import payload lacks a mandatory field
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrMissingFile is returned when an upload request carries no file part
	ErrMissingFile = errors.New("no file was uploaded")

	// ErrUnsupportedFileType is returned for upload extensions other than .csv and .txt
	ErrUnsupportedFileType = errors.New("unsupported file type, use CSV or TXT")

	// ErrEmptyImportFile is returned when an uploaded file yields no importable rows
	ErrEmptyImportFile = errors.New("file is empty or contains no valid rows")

	// ErrCustomerNotFound is returned when the requested customer doesn't exist
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInvoiceNotFound is returned when the requested invoice doesn't exist
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCustomerID):
		return CodeInvalidCustomerID
	case errors.Is(err, ErrMissingRequiredField):
		return CodeMissingRequiredField
	case errors.Is(err, ErrMissingFile):
		return CodeMissingFile
	case errors.Is(err, ErrUnsupportedFileType):
		return CodeUnsupportedFileType
	case errors.Is(err, ErrEmptyImportFile):
		return CodeEmptyImportFile
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrCustomerNotFound):
		return CodeCustomerNotFound
	case errors.Is(err, ErrInvoiceNotFound):
		return CodeInvoiceNotFound
	default:
		return CodeInternalServer
	}
}

// ImportError represents a failure while processing one row of an uploaded
// file. The import aborts on the first such failure; rows written before it
// stay committed.
type ImportError struct {
	Row    int
	Entity string
	Key    string
	Err    error
}

// Error implements the error interface for ImportError
func (e *ImportError) Error() string {
	return fmt.Sprintf("import failed at row %d (%s, key %q): %v", e.Row, e.Entity, e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e *ImportError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ImportError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "import_error",
		"row":        e.Row,
		"entity":     e.Entity,
		"key":        e.Key,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewImportError creates a detailed import error for one failed row
func NewImportError(row int, entity, key string, err error) error {
	return &ImportError{
		Row:    row,
		Entity: entity,
		Key:    key,
		Err:    err,
	}
}
