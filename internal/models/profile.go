package models

import "time"

// Profile mirrors the row the auth provider creates for every signed-up user.
type Profile struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"not null"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	ReferralCode string    `json:"referral_code" gorm:"uniqueIndex"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ProfileSummary struct {
	Profile            Profile       `json:"profile"`
	ActiveSubscription *Subscription `json:"active_subscription,omitempty"`
	AddressCount       int64         `json:"address_count"`
	GiftCardsPurchased int64         `json:"gift_cards_purchased"`
}
