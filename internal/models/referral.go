package models

import "time"

const (
	ReferralStatusPending   = "pending"
	ReferralStatusCompleted = "completed"
)

type Referral struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	ReferrerID    string     `json:"referrer_id" gorm:"type:uuid;index;not null"`
	ReferredEmail string     `json:"referred_email" gorm:"not null"`
	Status        string     `json:"status" gorm:"not null;default:'pending'"`
	CreditAmount  float64    `json:"credit_amount" gorm:"not null;default:0"`
	CompletedAt   *time.Time `json:"completed_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ReferralStatusCount is one row of a GROUP BY status aggregate.
type ReferralStatusCount struct {
	Status string
	Count  int64
}

type ReferralStats struct {
	ReferralCode  string  `json:"referral_code"`
	Total         int64   `json:"total"`
	Completed     int64   `json:"completed"`
	Pending       int64   `json:"pending"`
	CreditsEarned float64 `json:"credits_earned"`
}
