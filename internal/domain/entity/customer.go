package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/jdvillegas/billing-processor/internal/domain/error"
)

// Customer represents a billed customer identified by its identification number
type Customer struct {
	ID                   uint64    `json:"id"`
	IdentificationNumber string    `json:"identification_number"`
	Name                 string    `json:"name"`
	Address              string    `json:"address"`
	Phone                string    `json:"phone"`
	Email                string    `json:"email"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// CustomerFragment carries the customer fields resolved from one import row.
// The identification number is the natural key; the surrogate ID is assigned
// by the store.
type CustomerFragment struct {
	IdentificationNumber string
	Name                 string
	Address              string
	Phone                string
	Email                string
}

// Validate checks that the fragment carries the fields required to upsert a
// customer. Only the natural key and the name are mandatory; the remaining
// attributes may be empty.
func (f *CustomerFragment) Validate() error {
	if strings.TrimSpace(f.IdentificationNumber) == "" {
		return fmt.Errorf("%w: identification_number", errs.ErrMissingRequiredField)
	}
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: name", errs.ErrMissingRequiredField)
	}
	return nil
}

// IsNumericIdentification reports whether the identification number is a pure
// numeric string. The legacy customer import only accepts numeric identifiers.
func (f *CustomerFragment) IsNumericIdentification() bool {
	if f.IdentificationNumber == "" {
		return false
	}
	for _, r := range f.IdentificationNumber {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
