package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlanModel is the database persistence model for membership plans. This is
// the anti-corruption layer between domain and database.
type PlanModel struct {
	ID             uint   `gorm:"primarykey"`
	SID            string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	Name           string `gorm:"not null;size:100"`
	Description    string `gorm:"size:500"`
	PriceCents     int64  `gorm:"not null"`
	DurationMonths int    `gorm:"not null"`
	Features       datatypes.JSON
	Status         string `gorm:"not null;size:20;default:active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return "plans"
}

// BeforeCreate hook for GORM
func (p *PlanModel) BeforeCreate(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = "active"
	}
	return nil
}
