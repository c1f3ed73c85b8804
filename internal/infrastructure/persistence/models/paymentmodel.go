package models

import (
	"time"
)

// PaymentModel is the database persistence model for payments. Payment rows
// are append-only; there is no soft delete.
type PaymentModel struct {
	ID          uint      `gorm:"primarykey"`
	SID         string    `gorm:"column:sid;uniqueIndex;not null;size:32"`
	MemberID    uint      `gorm:"not null;index"`
	AmountCents int64     `gorm:"not null"`
	Method      string    `gorm:"not null;size:20"`
	Status      string    `gorm:"not null;size:20;index"`
	PaidAt      time.Time `gorm:"not null;index"`
	CreatedAt   time.Time
}

// TableName specifies the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}
