package models

import "time"

type Donation struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Email           string    `json:"email"`
	Amount          float64   `json:"amount" gorm:"not null"`
	Currency        string    `json:"currency" gorm:"not null;default:'usd'"`
	Frequency       string    `json:"frequency" gorm:"not null"`
	StripeSessionID string    `json:"-" gorm:"uniqueIndex;not null"`
	CreatedAt       time.Time `json:"created_at"`
}

type DashboardStats struct {
	Customers           int64   `json:"customers"`
	ActiveSubscriptions int64   `json:"active_subscriptions"`
	GiftCardsIssued     int64   `json:"gift_cards_issued"`
	DonationTotal       float64 `json:"donation_total"`
}
