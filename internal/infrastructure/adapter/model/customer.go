package model

import (
	"time"
)

// Customer represents the database model for customers
type Customer struct {
	ID                   uint64    `gorm:"primaryKey;autoIncrement"`
	IdentificationNumber string    `gorm:"uniqueIndex;not null;size:64"`
	Name                 string    `gorm:"not null;size:255"`
	Address              string    `gorm:"size:255"`
	Phone                string    `gorm:"size:64"`
	Email                string    `gorm:"size:255"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`
}

// TableName specifies the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
