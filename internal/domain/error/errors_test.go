package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrInvalidCustomerID.Error() != "customer ID must be a positive integer" {
		t.Errorf("ErrInvalidCustomerID has unexpected message: %s", ErrInvalidCustomerID.Error())
	}
	if ErrMissingFile.Error() != "no file was uploaded" {
		t.Errorf("ErrMissingFile has unexpected message: %s", ErrMissingFile.Error())
	}
	if ErrUnsupportedFileType.Error() != "unsupported file type, use CSV or TXT" {
		t.Errorf("ErrUnsupportedFileType has unexpected message: %s", ErrUnsupportedFileType.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidCustomerID", ErrInvalidCustomerID, 4001},
		{"MissingRequiredField", ErrMissingRequiredField, 4002},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"MissingFile", ErrMissingFile, 4101},
		{"UnsupportedFileType", ErrUnsupportedFileType, 4102},
		{"EmptyImportFile", ErrEmptyImportFile, 4103},
		{"CustomerNotFound", ErrCustomerNotFound, 4340},
		{"InvoiceNotFound", ErrInvoiceNotFound, 4341},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"DatabaseConnection", ErrDatabaseConnection, 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrMissingRequiredField), 4002},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestImportError(t *testing.T) {
	baseErr := ErrConstraintViolation
	importErr := &ImportError{
		Row:    3,
		Entity: "invoice",
		Key:    "FAC-001",
		Err:    baseErr,
	}

	// Test Error method
	expectedErrMsg := `import failed at row 3 (invoice, key "FAC-001"): database constraint violation`
	if importErr.Error() != expectedErrMsg {
		t.Errorf("ImportError.Error() = %s, want %s", importErr.Error(), expectedErrMsg)
	}

	// Test Unwrap method
	if !errors.Is(importErr, baseErr) {
		t.Errorf("errors.Is(importErr, baseErr) = false, want true")
	}

	// Test LogFields method
	fields := importErr.LogFields()
	if fields["row"] != 3 {
		t.Errorf("LogFields()[row] = %v, want 3", fields["row"])
	}
	if fields["entity"] != "invoice" {
		t.Errorf("LogFields()[entity] = %v, want invoice", fields["entity"])
	}
	if fields["error_code"] != 4005 {
		t.Errorf("LogFields()[error_code] = %v, want 4005", fields["error_code"])
	}
}

func TestNewImportError(t *testing.T) {
	err := NewImportError(7, "customer", "900123", ErrMissingRequiredField)

	var importErr *ImportError
	if !errors.As(err, &importErr) {
		t.Fatalf("NewImportError did not return an *ImportError")
	}
	if importErr.Row != 7 || importErr.Entity != "customer" || importErr.Key != "900123" {
		t.Errorf("unexpected fields: %+v", importErr)
	}
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Errorf("errors.Is(err, ErrMissingRequiredField) = false, want true")
	}
}
