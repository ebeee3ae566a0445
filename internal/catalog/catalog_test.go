package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealbox/storefront-backend/internal/models"
)

func TestLoad_BuiltInTablesAreValid(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Zones())
	assert.NotEmpty(t, c.Windows())
	assert.NotEmpty(t, c.Plans())
	assert.NotEmpty(t, c.GiftCards())
	assert.NotEmpty(t, c.GiftMealPlans())
}

func TestValidate_RejectsDuplicateZip(t *testing.T) {
	err := Validate(Tables{
		Zones: []models.DeliveryZone{
			{ID: "a", ZipCodes: []string{"94110"}, Fee: 10},
			{ID: "b", ZipCodes: []string{"94103", "94110"}, Fee: 8},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "94110")
}

func TestValidate_RejectsInvertedWindow(t *testing.T) {
	err := Validate(Tables{
		Windows: []models.DeliveryWindow{{ID: "late", StartHour: 20, EndHour: 18}},
	})
	require.Error(t, err)
}

func TestValidate_RejectsDanglingGiftMealPlan(t *testing.T) {
	err := Validate(Tables{
		Plans:         []models.SubscriptionPlan{{ID: "starter", MonthlyPrice: 10}},
		GiftMealPlans: []models.GiftMealPlanOption{{ID: "g", PlanID: "missing", Price: 10}},
	})
	require.Error(t, err)
}

func TestAccessors(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	t.Run("plan by id", func(t *testing.T) {
		p, ok := c.GetPlanByID("balanced")
		require.True(t, ok)
		assert.Equal(t, 5, p.MealsPerWeek)

		_, ok = c.GetPlanByID("nope")
		assert.False(t, ok)
	})

	t.Run("popular plan", func(t *testing.T) {
		p, ok := c.GetPopularPlan()
		require.True(t, ok)
		assert.True(t, p.Popular)
		assert.Equal(t, "balanced", p.ID)
	})

	t.Run("zone by zip", func(t *testing.T) {
		z, ok := c.GetZoneByZipCode("94110")
		require.True(t, ok)
		assert.Equal(t, "sf-mission", z.ID)
		assert.Equal(t, 10.0, z.Fee)

		_, ok = c.GetZoneByZipCode("99999")
		assert.False(t, ok)
	})

	t.Run("gift meal plan by id", func(t *testing.T) {
		g, ok := c.GetGiftMealPlanByID("gift-balanced-12w")
		require.True(t, ok)
		assert.Equal(t, "balanced", g.PlanID)
		assert.Equal(t, 12, g.Weeks)
	})

	t.Run("gift card by id", func(t *testing.T) {
		g, ok := c.GetGiftCardByID("gift-50")
		require.True(t, ok)
		assert.Equal(t, 50.0, g.Amount)
	})
}

func TestMenuFor_RotatesByISOWeek(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	// Wednesday of ISO week 2.
	wed := time.Date(2025, 1, 8, 15, 0, 0, 0, time.UTC)
	menu := c.MenuFor(wed)

	assert.Equal(t, 2, menu.Week)
	assert.Equal(t, 2%len(menuRotations), menu.Rotation)
	assert.Equal(t, "2025-01-06", menu.StartsOn)
	assert.Equal(t, menuRotations[menu.Rotation], menu.Items)

	next := c.MenuFor(wed.AddDate(0, 0, 7))
	assert.NotEqual(t, menu.Rotation, next.Rotation)
}

func TestMenuFor_SundayBelongsToPreviousMonday(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	sun := time.Date(2025, 1, 12, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-06", c.MenuFor(sun).StartsOn)
}

func TestAccessors_ReturnCopies(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	zones := c.Zones()
	zones[0].ID = "changed"
	zones[0].ZipCodes[0] = "00000"
	assert.NotEqual(t, "changed", c.Zones()[0].ID)
	assert.NotEqual(t, "00000", c.Zones()[0].ZipCodes[0])

	plans := c.Plans()
	plans[0].MonthlyPrice = 1
	plans[0].Features[0] = "changed"
	assert.NotEqual(t, 1.0, c.Plans()[0].MonthlyPrice)
	assert.NotEqual(t, "changed", c.Plans()[0].Features[0])

	windows := c.Windows()
	windows[0].StartHour = 23
	assert.NotEqual(t, 23, c.Windows()[0].StartHour)

	gifts := c.GiftCards()
	gifts[0].Amount = 1
	assert.NotEqual(t, 1.0, c.GiftCards()[0].Amount)

	mealPlans := c.GiftMealPlans()
	mealPlans[0].Price = 1
	assert.NotEqual(t, 1.0, c.GiftMealPlans()[0].Price)

	zone, ok := c.GetZoneByZipCode("94110")
	require.True(t, ok)
	zone.ZipCodes[0] = "00000"
	again, _ := c.GetZoneByZipCode("94110")
	assert.NotEqual(t, "00000", again.ZipCodes[0])

	menu := c.MenuFor(time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC))
	menu.Items[0].Name = "changed"
	assert.NotEqual(t, "changed", c.MenuFor(time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)).Items[0].Name)
}
