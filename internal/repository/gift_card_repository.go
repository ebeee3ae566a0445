package repository

import (
	"context"

	"github.com/mealbox/storefront-backend/internal/models"
	"gorm.io/gorm"
)

type GiftCardRepository struct {
	db *gorm.DB
}

func NewGiftCardRepository(db *gorm.DB) *GiftCardRepository {
	return &GiftCardRepository{db: db}
}

func (r *GiftCardRepository) Create(ctx context.Context, card *models.GiftCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *GiftCardRepository) GetByCode(ctx context.Context, code string) (*models.GiftCard, error) {
	var card models.GiftCard
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&card).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *GiftCardRepository) ExistsBySessionID(ctx context.Context, sessionID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.GiftCard{}).Where("stripe_session_id = ?", sessionID).Count(&count).Error
	return count > 0, err
}

func (r *GiftCardRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.GiftCard{}).Count(&count).Error
	return count, err
}

func (r *GiftCardRepository) CountByPurchaser(ctx context.Context, email string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.GiftCard{}).Where("purchaser_email = ?", email).Count(&count).Error
	return count, err
}
