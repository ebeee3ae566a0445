package catalog

import "github.com/mealbox/storefront-backend/internal/models"

var subscriptionPlans = []models.SubscriptionPlan{
	{
		ID:           "starter",
		Name:         "Starter",
		MonthlyPrice: 89,
		MealsPerWeek: 3,
		Features: []string{
			"3 chef-prepared meals per week",
			"Choose from the weekly menu",
			"Skip or pause anytime",
		},
		StripePriceID: "price_starter_monthly",
	},
	{
		ID:           "balanced",
		Name:         "Balanced",
		MonthlyPrice: 149,
		MealsPerWeek: 5,
		Features: []string{
			"5 chef-prepared meals per week",
			"Free delivery in every zone",
			"Priority delivery windows",
			"Skip or pause anytime",
		},
		Popular:       true,
		StripePriceID: "price_balanced_monthly",
	},
	{
		ID:           "family",
		Name:         "Family",
		MonthlyPrice: 259,
		MealsPerWeek: 10,
		Features: []string{
			"10 family-size meals per week",
			"Free delivery in every zone",
			"Kids menu add-ons",
			"Dedicated support line",
		},
		StripePriceID: "price_family_monthly",
	},
}
