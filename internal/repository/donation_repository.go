package repository

import (
	"context"

	"github.com/mealbox/storefront-backend/internal/models"
	"gorm.io/gorm"
)

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) Create(ctx context.Context, donation *models.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *DonationRepository) ExistsBySessionID(ctx context.Context, sessionID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Donation{}).Where("stripe_session_id = ?", sessionID).Count(&count).Error
	return count > 0, err
}

func (r *DonationRepository) Total(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Donation{}).Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}
