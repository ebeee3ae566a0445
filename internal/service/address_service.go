package service

import (
	"context"
	"errors"
	"strings"

	"github.com/mealbox/storefront-backend/internal/models"
)

// ErrUndeliverable is returned when an address lies outside every zone.
var ErrUndeliverable = errors.New("we do not deliver to this zip code yet")

type AddressService struct {
	addresses AddressStore
	zones     *ZoneService
}

func NewAddressService(addresses AddressStore, zones *ZoneService) *AddressService {
	return &AddressService{
		addresses: addresses,
		zones:     zones,
	}
}

func (s *AddressService) ListAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	return s.addresses.ListByUser(ctx, userID)
}

// AddAddress stores a deliverable address. The user's first address becomes
// the default one.
func (s *AddressService) AddAddress(ctx context.Context, userID string, req models.AddressRequest) (*models.Address, error) {
	zip, err := NormalizeZip(req.ZipCode)
	if err != nil {
		return nil, err
	}
	zone, err := s.zones.ResolveZone(zip)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUndeliverable
		}
		return nil, err
	}

	count, err := s.addresses.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	address := &models.Address{
		UserID:       userID,
		Label:        strings.TrimSpace(req.Label),
		Street:       strings.TrimSpace(req.Street),
		Unit:         strings.TrimSpace(req.Unit),
		City:         strings.TrimSpace(req.City),
		State:        strings.ToUpper(req.State),
		ZipCode:      zip,
		ZoneID:       zone.ID,
		Instructions: strings.TrimSpace(req.Instructions),
		IsDefault:    count == 0,
	}
	if err := s.addresses.Create(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) DeleteAddress(ctx context.Context, userID string, id uint) error {
	ok, err := s.addresses.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *AddressService) SetDefault(ctx context.Context, userID string, id uint) error {
	ok, err := s.addresses.SetDefault(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
