package models

type DeliveryZone struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	ZipCodes         []string `json:"zip_codes"`
	Fee              float64  `json:"fee"`
	EstimatedMinutes int      `json:"estimated_minutes"`
}

// DeliveryWindow covers the half-open hour range [StartHour, EndHour).
type DeliveryWindow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"`
	Label     string `json:"label"`
}

func (w DeliveryWindow) Contains(hour int) bool {
	return hour >= w.StartHour && hour < w.EndHour
}

type SubscriptionPlan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	MonthlyPrice  float64  `json:"monthly_price"`
	MealsPerWeek  int      `json:"meals_per_week"`
	Features      []string `json:"features"`
	Popular       bool     `json:"popular"`
	// StripePriceID is the plan's price in the Stripe dashboard, shown to
	// clients for reference. Checkout sessions are priced inline from the
	// submitted amount and never read it.
	StripePriceID string `json:"stripe_price_id"`
}

type GiftCardOption struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Label  string  `json:"label"`
}

type GiftMealPlanOption struct {
	ID     string  `json:"id"`
	PlanID string  `json:"plan_id"`
	Weeks  int     `json:"weeks"`
	Price  float64 `json:"price"`
	Label  string  `json:"label"`
}

type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Calories    int      `json:"calories"`
	Tags        []string `json:"tags,omitempty"`
}

const (
	MenuCategoryMain       = "main"
	MenuCategoryVegetarian = "vegetarian"
	MenuCategoryBreakfast  = "breakfast"
	MenuCategoryDessert    = "dessert"
)

type WeeklyMenu struct {
	Week     int        `json:"week"`
	Rotation int        `json:"rotation"`
	StartsOn string     `json:"starts_on"`
	Items    []MenuItem `json:"items"`
}
