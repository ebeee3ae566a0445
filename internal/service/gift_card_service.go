package service

import (
	"context"
	"errors"
	"net/url"

	"gorm.io/gorm"
)

type QRGenerator interface {
	GenerateQRCode(content string, size int) ([]byte, error)
}

type GiftCardService struct {
	giftCards   GiftCardStore
	qr          QRGenerator
	frontendURL string
}

func NewGiftCardService(giftCards GiftCardStore, qr QRGenerator, frontendURL string) *GiftCardService {
	return &GiftCardService{
		giftCards:   giftCards,
		qr:          qr,
		frontendURL: frontendURL,
	}
}

func RedeemURL(frontendURL, code string) string {
	return frontendURL + "/redeem?code=" + url.QueryEscape(code)
}

// QRCode renders a PNG pointing at the redemption page of an issued card.
func (s *GiftCardService) QRCode(ctx context.Context, code string, size int) ([]byte, error) {
	if code == "" {
		return nil, invalid("code", "gift card code is required")
	}
	if _, err := s.giftCards.GetByCode(ctx, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.qr.GenerateQRCode(RedeemURL(s.frontendURL, code), size)
}
