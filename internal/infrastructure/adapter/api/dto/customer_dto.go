package dto

// CreateCustomerRequest represents the API request for creating a customer
type CreateCustomerRequest struct {
	IdentificationNumber string `json:"identification_number"`
	Name                 string `json:"name"`
	Address              string `json:"address"`
	Phone                string `json:"phone"`
	Email                string `json:"email"`
}

// UpdateCustomerRequest represents a partial update. Pointer fields
// distinguish "not supplied" from "set to empty": a missing field keeps the
// stored value unchanged.
type UpdateCustomerRequest struct {
	IdentificationNumber *string `json:"identification_number"`
	Name                 *string `json:"name"`
	Address              *string `json:"address"`
	Phone                *string `json:"phone"`
	Email                *string `json:"email"`
}
