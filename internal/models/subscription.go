package models

import "time"

const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusCanceled = "canceled"
)

type Subscription struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	UserID               *string   `json:"user_id" gorm:"type:uuid;index"`
	Email                string    `json:"email" gorm:"index;not null"`
	PlanID               string    `json:"plan_id" gorm:"not null"`
	PlanName             string    `json:"plan_name" gorm:"not null"`
	MonthlyPrice         float64   `json:"monthly_price" gorm:"not null"`
	StripeSessionID      string    `json:"-" gorm:"uniqueIndex;not null"`
	StripeSubscriptionID string    `json:"-" gorm:"index"`
	Status               string    `json:"status" gorm:"not null;default:'active'"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
