package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	JobStatusDraft  = "draft"
	JobStatusActive = "active"

	JobPaymentUnpaid = "unpaid"
	JobPaymentPaid   = "paid"
)

// Job is the slice of a job posting this service owns: activation state driven
// by payment settlement. Listing content lives with the main application.
type Job struct {
	ID            string         `gorm:"size:64;primaryKey" json:"id"`
	EmployerID    string         `gorm:"size:64;not null;index" json:"employer_id"`
	Title         string         `gorm:"size:255" json:"title"`
	Status        string         `gorm:"size:20;not null;default:'draft'" json:"status"`
	PaymentStatus string         `gorm:"size:20;not null;default:'unpaid'" json:"payment_status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Job) TableName() string {
	return "jobs"
}
