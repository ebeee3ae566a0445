package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mealbox/storefront-backend/internal/models"
)

var errBackend = errors.New("backend unavailable")

type fakeProfiles struct {
	byUserID map[string]models.Profile
	count    int64
	err      error
}

func (f *fakeProfiles) find(match func(models.Profile) bool) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.byUserID {
		if match(p) {
			p := p
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfiles) GetByUserID(_ context.Context, userID string) (*models.Profile, error) {
	return f.find(func(p models.Profile) bool { return p.UserID == userID })
}

func (f *fakeProfiles) GetByEmail(_ context.Context, email string) (*models.Profile, error) {
	return f.find(func(p models.Profile) bool { return p.Email == email })
}

func (f *fakeProfiles) GetByReferralCode(_ context.Context, code string) (*models.Profile, error) {
	return f.find(func(p models.Profile) bool { return p.ReferralCode == code })
}

func (f *fakeProfiles) Count(context.Context) (int64, error) {
	return f.count, f.err
}

type fakeReferrals struct {
	counts    []models.ReferralStatusCount
	credits   float64
	countErr  error
	sumErr    error
	completed []string
}

func (f *fakeReferrals) CountByStatus(context.Context, string) ([]models.ReferralStatusCount, error) {
	return f.counts, f.countErr
}

func (f *fakeReferrals) SumCredits(context.Context, string) (float64, error) {
	return f.credits, f.sumErr
}

func (f *fakeReferrals) Complete(_ context.Context, referrerID, email string, _ float64, _ time.Time) (bool, error) {
	f.completed = append(f.completed, referrerID+":"+email)
	return true, nil
}

type fakeSubscriptions struct {
	created  []*models.Subscription
	active   *models.Subscription
	count    int64
	err      error
	canceled []string
}

func (f *fakeSubscriptions) Create(_ context.Context, sub *models.Subscription) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, sub)
	return nil
}

func (f *fakeSubscriptions) ExistsBySessionID(_ context.Context, sessionID string) (bool, error) {
	for _, s := range f.created {
		if s.StripeSessionID == sessionID {
			return true, nil
		}
	}
	return false, f.err
}

func (f *fakeSubscriptions) GetActiveByUser(context.Context, string) (*models.Subscription, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.active == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.active, nil
}

func (f *fakeSubscriptions) CountActive(context.Context) (int64, error) {
	return f.count, f.err
}

func (f *fakeSubscriptions) UpdateStatusByStripeID(_ context.Context, id, status string) (bool, error) {
	if status == models.SubscriptionStatusCanceled {
		f.canceled = append(f.canceled, id)
	}
	return true, f.err
}

type fakeGiftCards struct {
	created []*models.GiftCard
	count   int64
	err     error
}

func (f *fakeGiftCards) Create(_ context.Context, card *models.GiftCard) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, card)
	return nil
}

func (f *fakeGiftCards) GetByCode(_ context.Context, code string) (*models.GiftCard, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.created {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGiftCards) ExistsBySessionID(_ context.Context, sessionID string) (bool, error) {
	for _, c := range f.created {
		if c.StripeSessionID == sessionID {
			return true, nil
		}
	}
	return false, f.err
}

func (f *fakeGiftCards) Count(context.Context) (int64, error) {
	return f.count, f.err
}

func (f *fakeGiftCards) CountByPurchaser(context.Context, string) (int64, error) {
	return f.count, f.err
}

type fakeDonations struct {
	created []*models.Donation
	total   float64
	err     error
}

func (f *fakeDonations) Create(_ context.Context, d *models.Donation) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, d)
	return nil
}

func (f *fakeDonations) ExistsBySessionID(_ context.Context, sessionID string) (bool, error) {
	for _, d := range f.created {
		if d.StripeSessionID == sessionID {
			return true, nil
		}
	}
	return false, f.err
}

func (f *fakeDonations) Total(context.Context) (float64, error) {
	return f.total, f.err
}

type fakeAddresses struct {
	rows     []models.Address
	countErr error
	nextID   uint
}

func (f *fakeAddresses) ListByUser(_ context.Context, userID string) ([]models.Address, error) {
	var out []models.Address
	for _, a := range f.rows {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAddresses) CountByUser(_ context.Context, userID string) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var n int64
	for _, a := range f.rows {
		if a.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeAddresses) Create(_ context.Context, a *models.Address) error {
	f.nextID++
	a.ID = f.nextID
	f.rows = append(f.rows, *a)
	return nil
}

func (f *fakeAddresses) Delete(_ context.Context, userID string, id uint) (bool, error) {
	for i, a := range f.rows {
		if a.ID == id && a.UserID == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAddresses) SetDefault(_ context.Context, userID string, id uint) (bool, error) {
	found := false
	for i := range f.rows {
		if f.rows[i].UserID != userID {
			continue
		}
		f.rows[i].IsDefault = f.rows[i].ID == id
		if f.rows[i].ID == id {
			found = true
		}
	}
	return found, nil
}

type fakeNotifier struct {
	sent []*models.GiftCard
	err  error
}

func (f *fakeNotifier) SendGiftCardEmail(card *models.GiftCard) error {
	f.sent = append(f.sent, card)
	return f.err
}
