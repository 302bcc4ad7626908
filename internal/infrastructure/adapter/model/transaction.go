package model

import (
	"time"
)

// Transaction represents the database model for transactions. The
// transaction id is externally supplied; collisions are dropped by
// conflict-ignore insert, never updated.
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	TransactionID string    `gorm:"uniqueIndex;not null;size:255"`
	InvoiceID     uint64    `gorm:"not null;index"`
	Timestamp     string    `gorm:"size:64"`
	Amount        string    `gorm:"not null;size:32"`
	Status        string    `gorm:"not null;size:50"`
	Type          string    `gorm:"not null;size:50"`
	Platform      string    `gorm:"size:100"`
	CreatedAt     time.Time `gorm:"not null"`

	// Define relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
