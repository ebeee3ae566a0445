package models

import "time"

type Address struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"type:uuid;index;not null"`
	Label        string    `json:"label"`
	Street       string    `json:"street" gorm:"not null"`
	Unit         string    `json:"unit"`
	City         string    `json:"city" gorm:"not null"`
	State        string    `json:"state" gorm:"not null"`
	ZipCode      string    `json:"zip_code" gorm:"not null"`
	ZoneID       string    `json:"zone_id" gorm:"not null"`
	Instructions string    `json:"instructions"`
	IsDefault    bool      `json:"is_default" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AddressRequest struct {
	Label        string `json:"label" validate:"max=50"`
	Street       string `json:"street" validate:"required,max=200"`
	Unit         string `json:"unit" validate:"max=50"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state" validate:"required,len=2"`
	ZipCode      string `json:"zip_code" validate:"required,zipcode"`
	Instructions string `json:"instructions" validate:"max=500"`
}
