// Package catalog holds the storefront's static tables: delivery zones and
// windows, subscription plans, gift options and the rotating weekly menu.
// A Catalog is built once at start-up and never mutated afterwards.
package catalog

import (
	"fmt"
	"slices"
	"time"

	"github.com/mealbox/storefront-backend/internal/models"
)

type Tables struct {
	Zones         []models.DeliveryZone
	Windows       []models.DeliveryWindow
	Plans         []models.SubscriptionPlan
	GiftCards     []models.GiftCardOption
	GiftMealPlans []models.GiftMealPlanOption
	Menus         [][]models.MenuItem
}

type Catalog struct {
	t Tables
}

// Load builds the catalog from the built-in tables.
func Load() (*Catalog, error) {
	return New(Tables{
		Zones:         deliveryZones,
		Windows:       deliveryWindows,
		Plans:         subscriptionPlans,
		GiftCards:     giftCardOptions,
		GiftMealPlans: giftMealPlanOptions,
		Menus:         menuRotations,
	})
}

func New(t Tables) (*Catalog, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}
	return &Catalog{t: t}, nil
}

// Validate rejects tables whose lookups would be ambiguous: a zip code in
// more than one zone, repeated ids, or inverted window bounds.
func Validate(t Tables) error {
	zoneIDs := make(map[string]struct{}, len(t.Zones))
	zips := make(map[string]string)
	for _, z := range t.Zones {
		if _, dup := zoneIDs[z.ID]; dup {
			return fmt.Errorf("catalog: duplicate zone id %q", z.ID)
		}
		zoneIDs[z.ID] = struct{}{}
		if z.Fee < 0 {
			return fmt.Errorf("catalog: zone %q has negative fee", z.ID)
		}
		for _, zip := range z.ZipCodes {
			if len(zip) != 5 {
				return fmt.Errorf("catalog: zone %q has malformed zip %q", z.ID, zip)
			}
			if owner, dup := zips[zip]; dup {
				return fmt.Errorf("catalog: zip %s listed in zones %q and %q", zip, owner, z.ID)
			}
			zips[zip] = z.ID
		}
	}

	windowIDs := make(map[string]struct{}, len(t.Windows))
	for _, w := range t.Windows {
		if _, dup := windowIDs[w.ID]; dup {
			return fmt.Errorf("catalog: duplicate window id %q", w.ID)
		}
		windowIDs[w.ID] = struct{}{}
		if w.StartHour < 0 || w.EndHour > 24 || w.EndHour <= w.StartHour {
			return fmt.Errorf("catalog: window %q has invalid bounds %d-%d", w.ID, w.StartHour, w.EndHour)
		}
	}

	planIDs := make(map[string]struct{}, len(t.Plans))
	for _, p := range t.Plans {
		if _, dup := planIDs[p.ID]; dup {
			return fmt.Errorf("catalog: duplicate plan id %q", p.ID)
		}
		planIDs[p.ID] = struct{}{}
		if p.MonthlyPrice <= 0 {
			return fmt.Errorf("catalog: plan %q must have a positive price", p.ID)
		}
	}

	giftIDs := make(map[string]struct{})
	for _, g := range t.GiftCards {
		if _, dup := giftIDs[g.ID]; dup {
			return fmt.Errorf("catalog: duplicate gift option id %q", g.ID)
		}
		giftIDs[g.ID] = struct{}{}
		if g.Amount <= 0 {
			return fmt.Errorf("catalog: gift card %q must have a positive amount", g.ID)
		}
	}
	for _, g := range t.GiftMealPlans {
		if _, dup := giftIDs[g.ID]; dup {
			return fmt.Errorf("catalog: duplicate gift option id %q", g.ID)
		}
		giftIDs[g.ID] = struct{}{}
		if _, ok := planIDs[g.PlanID]; !ok {
			return fmt.Errorf("catalog: gift meal plan %q references unknown plan %q", g.ID, g.PlanID)
		}
		if g.Price <= 0 {
			return fmt.Errorf("catalog: gift meal plan %q must have a positive price", g.ID)
		}
	}

	return nil
}

// The slice accessors return copies; callers may modify them freely.

func (c *Catalog) Zones() []models.DeliveryZone {
	out := slices.Clone(c.t.Zones)
	for i := range out {
		out[i].ZipCodes = slices.Clone(out[i].ZipCodes)
	}
	return out
}

func (c *Catalog) Windows() []models.DeliveryWindow { return slices.Clone(c.t.Windows) }

func (c *Catalog) Plans() []models.SubscriptionPlan {
	out := slices.Clone(c.t.Plans)
	for i := range out {
		out[i].Features = slices.Clone(out[i].Features)
	}
	return out
}

func (c *Catalog) GiftCards() []models.GiftCardOption { return slices.Clone(c.t.GiftCards) }

func (c *Catalog) GiftMealPlans() []models.GiftMealPlanOption {
	return slices.Clone(c.t.GiftMealPlans)
}

func (c *Catalog) GetPlanByID(id string) (models.SubscriptionPlan, bool) {
	for _, p := range c.t.Plans {
		if p.ID == id {
			p.Features = slices.Clone(p.Features)
			return p, true
		}
	}
	return models.SubscriptionPlan{}, false
}

func (c *Catalog) GetPopularPlan() (models.SubscriptionPlan, bool) {
	for _, p := range c.t.Plans {
		if p.Popular {
			p.Features = slices.Clone(p.Features)
			return p, true
		}
	}
	return models.SubscriptionPlan{}, false
}

// GetZoneByZipCode expects an already normalised 5-digit zip.
func (c *Catalog) GetZoneByZipCode(zip string) (models.DeliveryZone, bool) {
	for _, z := range c.t.Zones {
		for _, code := range z.ZipCodes {
			if code == zip {
				z.ZipCodes = slices.Clone(z.ZipCodes)
				return z, true
			}
		}
	}
	return models.DeliveryZone{}, false
}

func (c *Catalog) GetWindowByID(id string) (models.DeliveryWindow, bool) {
	for _, w := range c.t.Windows {
		if w.ID == id {
			return w, true
		}
	}
	return models.DeliveryWindow{}, false
}

func (c *Catalog) GetGiftCardByID(id string) (models.GiftCardOption, bool) {
	for _, g := range c.t.GiftCards {
		if g.ID == id {
			return g, true
		}
	}
	return models.GiftCardOption{}, false
}

func (c *Catalog) GetGiftMealPlanByID(id string) (models.GiftMealPlanOption, bool) {
	for _, g := range c.t.GiftMealPlans {
		if g.ID == id {
			return g, true
		}
	}
	return models.GiftMealPlanOption{}, false
}

// MenuFor returns the menu served during the ISO week containing date.
func (c *Catalog) MenuFor(date time.Time) models.WeeklyMenu {
	_, week := date.ISOWeek()

	offset := (int(date.Weekday()) + 6) % 7
	monday := time.Date(date.Year(), date.Month(), date.Day()-offset, 0, 0, 0, 0, date.Location())

	menu := models.WeeklyMenu{
		Week:     week,
		StartsOn: monday.Format("2006-01-02"),
	}
	if len(c.t.Menus) == 0 {
		return menu
	}
	menu.Rotation = week % len(c.t.Menus)
	menu.Items = slices.Clone(c.t.Menus[menu.Rotation])
	return menu
}
