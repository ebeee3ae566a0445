package service

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/mealbox/storefront-backend/internal/catalog"
	"github.com/mealbox/storefront-backend/internal/models"
)

type ZoneService struct {
	catalog    *catalog.Catalog
	checkDelay time.Duration
}

// NewZoneService returns a resolver over the catalog's zone table. checkDelay
// is only applied by CheckZone so the storefront can show its loading state.
func NewZoneService(c *catalog.Catalog, checkDelay time.Duration) *ZoneService {
	return &ZoneService{
		catalog:    c,
		checkDelay: checkDelay,
	}
}

// NormalizeZip keeps the digits of zip and requires exactly five of them.
func NormalizeZip(zip string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r <= unicode.MaxASCII {
			return r
		}
		return -1
	}, zip)

	if len(digits) != 5 {
		return "", invalid("zip_code", "zip code must be exactly 5 digits")
	}
	return digits, nil
}

func (s *ZoneService) ResolveZone(zip string) (*models.DeliveryZone, error) {
	normalized, err := NormalizeZip(zip)
	if err != nil {
		return nil, err
	}

	zone, ok := s.catalog.GetZoneByZipCode(normalized)
	if !ok {
		return nil, ErrNotFound
	}
	return &zone, nil
}

// CheckZone is ResolveZone behind the configured cosmetic delay.
func (s *ZoneService) CheckZone(ctx context.Context, zip string) (*models.DeliveryZone, error) {
	if s.checkDelay > 0 {
		timer := time.NewTimer(s.checkDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return s.ResolveZone(zip)
}

func (s *ZoneService) IsSupported(zip string) bool {
	_, err := s.ResolveZone(zip)
	return err == nil
}

func (s *ZoneService) AllSupportedZips() []string {
	var zips []string
	for _, z := range s.catalog.Zones() {
		zips = append(zips, z.ZipCodes...)
	}
	return zips
}

func (s *ZoneService) Zones() []models.DeliveryZone {
	return s.catalog.Zones()
}
