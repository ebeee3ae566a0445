package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	GiftKindCard     = "gift_card"
	GiftKindMealPlan = "gift_meal_plan"
)

type GiftCard struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Code            string     `json:"code" gorm:"uniqueIndex;not null"`
	Kind            string     `json:"kind" gorm:"not null"`
	OptionID        string     `json:"option_id" gorm:"not null"`
	Amount          float64    `json:"amount" gorm:"not null"`
	PurchaserEmail  string     `json:"purchaser_email" gorm:"index;not null"`
	RecipientEmail  string     `json:"recipient_email" gorm:"not null"`
	RecipientName   string     `json:"recipient_name"`
	Message         string     `json:"message"`
	StripeSessionID string     `json:"-" gorm:"uniqueIndex;not null"`
	RedeemedAt      *time.Time `json:"redeemed_at"`
	CreatedAt       time.Time  `json:"created_at"`
}
