package catalog

import "github.com/mealbox/storefront-backend/internal/models"

var giftCardOptions = []models.GiftCardOption{
	{ID: "gift-25", Amount: 25, Label: "$25 Gift Card"},
	{ID: "gift-50", Amount: 50, Label: "$50 Gift Card"},
	{ID: "gift-100", Amount: 100, Label: "$100 Gift Card"},
	{ID: "gift-150", Amount: 150, Label: "$150 Gift Card"},
}

var giftMealPlanOptions = []models.GiftMealPlanOption{
	{ID: "gift-starter-4w", PlanID: "starter", Weeks: 4, Price: 89, Label: "Starter plan for 4 weeks"},
	{ID: "gift-balanced-4w", PlanID: "balanced", Weeks: 4, Price: 149, Label: "Balanced plan for 4 weeks"},
	{ID: "gift-balanced-12w", PlanID: "balanced", Weeks: 12, Price: 419, Label: "Balanced plan for 12 weeks"},
	{ID: "gift-family-4w", PlanID: "family", Weeks: 4, Price: 259, Label: "Family plan for 4 weeks"},
}
