package catalog

import "github.com/mealbox/storefront-backend/internal/models"

var deliveryZones = []models.DeliveryZone{
	{
		ID:               "sf-downtown",
		Name:             "SF Downtown & Financial District",
		ZipCodes:         []string{"94102", "94104", "94105", "94108", "94111", "94133"},
		Fee:              8,
		EstimatedMinutes: 30,
	},
	{
		ID:               "sf-soma",
		Name:             "SoMa & Mission Bay",
		ZipCodes:         []string{"94103", "94107", "94158"},
		Fee:              8,
		EstimatedMinutes: 35,
	},
	{
		ID:               "sf-mission",
		Name:             "Mission & Noe Valley",
		ZipCodes:         []string{"94110", "94114", "94131"},
		Fee:              10,
		EstimatedMinutes: 40,
	},
	{
		ID:               "sf-west",
		Name:             "Sunset & Richmond",
		ZipCodes:         []string{"94116", "94118", "94121", "94122"},
		Fee:              12,
		EstimatedMinutes: 50,
	},
	{
		ID:               "east-bay",
		Name:             "Oakland & Berkeley",
		ZipCodes:         []string{"94607", "94609", "94610", "94612", "94704", "94705"},
		Fee:              15,
		EstimatedMinutes: 60,
	},
}
