package models

import (
	"time"
)

// CreditsBalance is an employer's job-posting credit balance. Both counters are
// cumulative and only ever incremented by the settlement transaction.
type CreditsBalance struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	EmployerID     string    `gorm:"size:64;uniqueIndex;not null" json:"employer_id"`
	Balance        int       `gorm:"not null;default:0" json:"balance"`
	TotalPurchased int       `gorm:"not null;default:0" json:"total_purchased"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (CreditsBalance) TableName() string {
	return "credits_balances"
}
