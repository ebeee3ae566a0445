package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealbox/storefront-backend/internal/models"
)

func newAddressService(t *testing.T, store *fakeAddresses) *AddressService {
	t.Helper()
	return NewAddressService(store, NewZoneService(newTestCatalog(t), 0))
}

func TestAddressService_AddAddress(t *testing.T) {
	req := models.AddressRequest{
		Street:  " 3200 24th St ",
		City:    "San Francisco",
		State:   "ca",
		ZipCode: "94110",
	}

	t.Run("first address is default and zoned", func(t *testing.T) {
		store := &fakeAddresses{}
		svc := newAddressService(t, store)

		addr, err := svc.AddAddress(context.Background(), "user-1", req)
		require.NoError(t, err)
		assert.True(t, addr.IsDefault)
		assert.Equal(t, "sf-mission", addr.ZoneID)
		assert.Equal(t, "3200 24th St", addr.Street)
		assert.Equal(t, "CA", addr.State)

		second, err := svc.AddAddress(context.Background(), "user-1", req)
		require.NoError(t, err)
		assert.False(t, second.IsDefault)
	})

	t.Run("undeliverable zip", func(t *testing.T) {
		store := &fakeAddresses{}
		svc := newAddressService(t, store)

		r := req
		r.ZipCode = "99999"
		_, err := svc.AddAddress(context.Background(), "user-1", r)
		assert.ErrorIs(t, err, ErrUndeliverable)
		assert.Empty(t, store.rows)
	})

	t.Run("malformed zip", func(t *testing.T) {
		svc := newAddressService(t, &fakeAddresses{})

		r := req
		r.ZipCode = "941"
		_, err := svc.AddAddress(context.Background(), "user-1", r)
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr))
	})
}

func TestAddressService_DeleteAndDefault(t *testing.T) {
	store := &fakeAddresses{rows: []models.Address{
		{ID: 1, UserID: "user-1", IsDefault: true},
		{ID: 2, UserID: "user-1"},
		{ID: 3, UserID: "user-2"},
	}}
	svc := newAddressService(t, store)
	ctx := context.Background()

	require.NoError(t, svc.SetDefault(ctx, "user-1", 2))
	list, err := svc.ListAddresses(ctx, "user-1")
	require.NoError(t, err)
	for _, a := range list {
		assert.Equal(t, a.ID == 2, a.IsDefault)
	}

	assert.ErrorIs(t, svc.DeleteAddress(ctx, "user-1", 3), ErrNotFound)
	assert.NoError(t, svc.DeleteAddress(ctx, "user-1", 1))
	assert.ErrorIs(t, svc.SetDefault(ctx, "user-1", 1), ErrNotFound)
}
