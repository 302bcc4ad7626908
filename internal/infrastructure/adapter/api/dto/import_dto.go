package dto

// CustomerImportResponse represents the response of the legacy customer
// upload endpoint
type CustomerImportResponse struct {
	Message string `json:"message"`
	Created int64  `json:"created"`
}

// BillingImportResponse represents the response of the multi-entity upload
// endpoint
type BillingImportResponse struct {
	Message      string `json:"message"`
	Rows         int64  `json:"rows"`
	Customers    int64  `json:"customers"`
	Invoices     int64  `json:"invoices"`
	Transactions int64  `json:"transactions"`
}

// NormalizeResponse represents the response of the normalize-only endpoint.
// The cleaned file stays on the server; only its name is reported.
type NormalizeResponse struct {
	Message  string `json:"message"`
	Records  int    `json:"records"`
	Filename string `json:"filename"`
}

// HealthResponse represents the liveness response
type HealthResponse struct {
	OK        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
}
