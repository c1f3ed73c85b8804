package models

import (
	"time"

	"gorm.io/gorm"
)

// AssignmentModel is the database persistence model for plan assignments.
// Dates are stored at UTC day granularity.
type AssignmentModel struct {
	ID        uint      `gorm:"primarykey"`
	SID       string    `gorm:"column:sid;uniqueIndex;not null;size:32"`
	MemberID  uint      `gorm:"not null;index"`
	PlanID    uint      `gorm:"not null;index"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null;index"`
	Active    bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (AssignmentModel) TableName() string {
	return "membership_assignments"
}
