package service

import (
	"context"
	"time"

	"github.com/mealbox/storefront-backend/internal/models"
)

// The interfaces below are satisfied by the GORM repositories in
// internal/repository.

type ProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	GetByReferralCode(ctx context.Context, code string) (*models.Profile, error)
	Count(ctx context.Context) (int64, error)
}

type AddressStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.Address, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	Create(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, userID string, id uint) (bool, error)
	SetDefault(ctx context.Context, userID string, id uint) (bool, error)
}

type ReferralStore interface {
	CountByStatus(ctx context.Context, referrerID string) ([]models.ReferralStatusCount, error)
	SumCredits(ctx context.Context, referrerID string) (float64, error)
	Complete(ctx context.Context, referrerID, email string, credit float64, at time.Time) (bool, error)
}

type SubscriptionStore interface {
	Create(ctx context.Context, sub *models.Subscription) error
	ExistsBySessionID(ctx context.Context, sessionID string) (bool, error)
	GetActiveByUser(ctx context.Context, userID string) (*models.Subscription, error)
	CountActive(ctx context.Context) (int64, error)
	UpdateStatusByStripeID(ctx context.Context, stripeSubscriptionID, status string) (bool, error)
}

type GiftCardStore interface {
	Create(ctx context.Context, card *models.GiftCard) error
	GetByCode(ctx context.Context, code string) (*models.GiftCard, error)
	ExistsBySessionID(ctx context.Context, sessionID string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByPurchaser(ctx context.Context, email string) (int64, error)
}

type DonationStore interface {
	Create(ctx context.Context, donation *models.Donation) error
	ExistsBySessionID(ctx context.Context, sessionID string) (bool, error)
	Total(ctx context.Context) (float64, error)
}
