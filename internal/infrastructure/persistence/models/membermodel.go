package models

import (
	"time"

	"gorm.io/gorm"
)

// MemberModel is the database persistence model for gym members. Status is
// not stored; it is derived at read time from the active assignment. Email is
// unique by convention only: the desk re-enrolls former (soft-deleted)
// members under the same address, so the schema must not enforce it.
type MemberModel struct {
	ID               uint   `gorm:"primarykey"`
	SID              string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	FirstName        string `gorm:"not null;size:100"`
	LastName         string `gorm:"not null;size:100"`
	Email            string `gorm:"index;not null;size:255"`
	Phone            string `gorm:"size:50"`
	Address          string `gorm:"size:500"`
	EmergencyContact string `gorm:"size:255"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (MemberModel) TableName() string {
	return "members"
}
