package model

import (
	"time"
)

// Invoice represents the database model for invoices
type Invoice struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	InvoiceNumber  string    `gorm:"uniqueIndex;not null;size:64"`
	CustomerID     uint64    `gorm:"not null;index"`
	BillingPeriod  string    `gorm:"size:10"`
	InvoicedAmount string    `gorm:"not null;size:32"`
	PaidAmount     string    `gorm:"not null;size:32"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`

	// Define relationships
	Customer Customer `gorm:"foreignKey:CustomerID;references:ID"`
}

// TableName specifies the table name for Invoice
func (Invoice) TableName() string {
	return "invoices"
}
